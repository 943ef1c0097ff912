package app

import (
	"advisoryboard/internal/config"
	"advisoryboard/internal/persona"
	"advisoryboard/internal/service"
	"context"
	"fmt"

	"go.uber.org/zap"
)

// NewProvider returns the Gemini provider when an API key is configured
// and the offline provider otherwise
func NewProvider(ctx context.Context, aiCfg *config.AIConfig, logger *zap.Logger) (service.Provider, error) {
	if !aiCfg.IsEnabled() {
		logger.Warn("GEMINI_API_KEY not set, using offline provider")
		return service.NewOfflineProvider(), nil
	}
	return service.NewGeminiProvider(ctx, aiCfg)
}

// NewAggregator wires the persona set, provider and per-call timeout.
// personasFile may be empty to use the built-in board.
func NewAggregator(ctx context.Context, aiCfg *config.AIConfig, personasFile string, logger *zap.Logger) (*service.Aggregator, error) {
	personas, err := persona.Load(personasFile)
	if err != nil {
		return nil, fmt.Errorf("load personas: %w", err)
	}

	provider, err := NewProvider(ctx, aiCfg, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("Aggregator configured",
		zap.String("provider", provider.Name()),
		zap.Strings("personas", personas.Names()),
		zap.Duration("persona_timeout", aiCfg.PersonaTimeout))

	return service.NewAggregator(provider, personas, aiCfg.PersonaTimeout, logger)
}
