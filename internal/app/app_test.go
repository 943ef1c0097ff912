package app

import (
	"advisoryboard/internal/config"
	"advisoryboard/internal/service"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewProviderFallsBackOffline(t *testing.T) {
	p, err := NewProvider(context.Background(), &config.AIConfig{}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &service.OfflineProvider{}, p)
}

func TestNewAggregatorWithPersonaFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	require.NoError(t, os.WriteFile(path, []byte("personas:\n  - name: Investor\n    prompt: You invest.\n  - name: Customer\n    prompt: You buy.\n"), 0o600))

	agg, err := NewAggregator(context.Background(), &config.AIConfig{PersonaTimeout: time.Second}, path, zap.NewNop())
	require.NoError(t, err)

	report, err := agg.Evaluate(context.Background(), "Robot baristas")
	require.NoError(t, err)
	require.Len(t, report.Results, 2)
	assert.Equal(t, "Investor", report.Results[0].Persona)
	assert.Equal(t, "Customer", report.Results[1].Persona)
	assert.NotNil(t, report.Results[0].Score)
}

func TestNewAggregatorBadPersonaFile(t *testing.T) {
	_, err := NewAggregator(context.Background(), &config.AIConfig{}, filepath.Join(t.TempDir(), "nope.yaml"), zap.NewNop())
	assert.Error(t, err)
}
