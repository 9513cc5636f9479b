package main

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "test-key")
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("WAYFINDER_PROVIDER", "")
	t.Setenv("WAYFINDER_MAX_STEPS", "")
	t.Setenv("WAYFINDER_STAGE_TIMEOUT", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "google", cfg.Provider)
	assert.Equal(t, 5, cfg.MaxAgentSteps)
	assert.Equal(t, 5*time.Minute, cfg.StageTimeout)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "google without key",
			cfg:     Config{Provider: "google", MaxAgentSteps: 5},
			wantErr: "GOOGLE_API_KEY",
		},
		{
			name:    "anthropic without key",
			cfg:     Config{Provider: "anthropic", MaxAgentSteps: 5},
			wantErr: "ANTHROPIC_API_KEY",
		},
		{
			name:    "openai without key",
			cfg:     Config{Provider: "openai", MaxAgentSteps: 5},
			wantErr: "OPENAI_API_KEY",
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "cohere", MaxAgentSteps: 5},
			wantErr: "unknown provider",
		},
		{
			name:    "bad max steps",
			cfg:     Config{Provider: "google", GoogleKey: "k", MaxAgentSteps: 0},
			wantErr: "WAYFINDER_MAX_STEPS",
		},
		{
			name: "valid",
			cfg:  Config{Provider: "anthropic", AnthropicKey: "k", MaxAgentSteps: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestConfigSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, (&Config{LogLevel: "debug"}).SlogLevel())
	assert.Equal(t, slog.LevelWarn, (&Config{LogLevel: "warn"}).SlogLevel())
	assert.Equal(t, slog.LevelError, (&Config{LogLevel: "error"}).SlogLevel())
	assert.Equal(t, slog.LevelInfo, (&Config{LogLevel: "anything"}).SlogLevel())
}
