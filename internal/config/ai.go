package config

import (
	"os"
	"time"
)

// AIConfig holds all AI-related configuration
type AIConfig struct {
	APIKey string `json:"-"` // Never serialize

	// Model is the Gemini model every persona is asked through
	Model string `json:"model"`

	// PersonaTimeout bounds a single persona call, not the whole batch
	PersonaTimeout time.Duration `json:"personaTimeout"`
}

// DefaultAIConfig returns the AI configuration from the environment
func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		APIKey:         os.Getenv("GEMINI_API_KEY"),
		Model:          getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
		PersonaTimeout: getDuration("PERSONA_TIMEOUT", 30*time.Second),
	}
}

// IsEnabled returns true if the AI API is configured
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
