package service

import (
	"advisoryboard/internal/config"
	"advisoryboard/internal/model"
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiProvider generates persona replies with the Gemini API
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a Gemini-backed provider
func NewGeminiProvider(ctx context.Context, cfg *config.AIConfig) (*GeminiProvider, error) {
	if !cfg.IsEnabled() {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GeminiProvider{
		client: client,
		model:  cfg.Model,
	}, nil
}

// Generate sends the persona instruction as the system prompt and the idea as the user turn
func (p *GeminiProvider) Generate(ctx context.Context, req model.GenerationRequest) (string, error) {
	resp, err := p.client.Models.GenerateContent(ctx,
		p.model,
		genai.Text(req.UserMessage),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(req.SystemInstruction, genai.RoleUser),
		},
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyGeneration
	}
	return text, nil
}

func (p *GeminiProvider) Name() string {
	return "gemini:" + p.model
}
