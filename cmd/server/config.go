package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the server configuration loaded from environment variables.
type Config struct {
	// Server
	Port     string
	LogLevel string // debug, info, warn, error

	// Provider selection
	Provider string
	Model    string

	// API keys
	AnthropicKey string
	OpenAIKey    string
	GoogleKey    string
	TavilyKey    string

	// Pipeline config
	MaxAgentSteps int
	StageTimeout  time.Duration
}

// LoadConfig loads configuration from environment variables.
// A .env file is loaded first if present.
func LoadConfig() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Port:          getEnvOrDefault("PORT", "8000"),
		LogLevel:      getEnvOrDefault("LOG_LEVEL", "info"),
		Provider:      getEnvOrDefault("WAYFINDER_PROVIDER", "google"),
		Model:         os.Getenv("WAYFINDER_MODEL"),
		AnthropicKey:  os.Getenv("ANTHROPIC_API_KEY"),
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		GoogleKey:     os.Getenv("GOOGLE_API_KEY"),
		TavilyKey:     os.Getenv("TAVILY_API_KEY"),
		MaxAgentSteps: getEnvIntOrDefault("WAYFINDER_MAX_STEPS", 5),
		StageTimeout:  getEnvDurationOrDefault("WAYFINDER_STAGE_TIMEOUT", 5*time.Minute),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	switch c.Provider {
	case "google":
		if c.GoogleKey == "" {
			return fmt.Errorf("GOOGLE_API_KEY is required for google provider")
		}
	case "anthropic":
		if c.AnthropicKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required for anthropic provider")
		}
	case "openai":
		if c.OpenAIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for openai provider")
		}
	default:
		return fmt.Errorf("unknown provider: %s (must be google, anthropic, or openai)", c.Provider)
	}

	if c.MaxAgentSteps < 1 {
		return fmt.Errorf("WAYFINDER_MAX_STEPS must be at least 1")
	}

	return nil
}

// SlogLevel maps the configured log level to a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
