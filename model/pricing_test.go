package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	ai "github.com/wayfinder-ai/wayfinder"
)

func TestCalculateCost(t *testing.T) {
	pricing := ChatPricing{
		InputPerMillion:  1.00,
		OutputPerMillion: 2.00,
	}

	t.Run("calculates cost for standard usage", func(t *testing.T) {
		usage := ai.Usage{InputTokens: 1000, OutputTokens: 500}
		cost := CalculateCost(usage, pricing)
		// 1000/1M * $1 + 500/1M * $2 = $0.001 + $0.001 = $0.002
		assert.InDelta(t, 0.002, cost, 0.0001)
	})

	t.Run("returns zero for zero usage", func(t *testing.T) {
		cost := CalculateCost(ai.Usage{}, pricing)
		assert.Equal(t, 0.0, cost)
	})
}

func TestChatModelCost(t *testing.T) {
	usage := ai.Usage{InputTokens: 1_000_000, OutputTokens: 1_000_000}
	// gemini-2.5-flash: $0.15/M input, $0.60/M output
	assert.InDelta(t, 0.75, Gemini25Flash.Cost(usage), 0.0001)
}

func TestLookup(t *testing.T) {
	t.Run("finds known models", func(t *testing.T) {
		m, ok := Lookup("gemini-2.5-flash")
		assert.True(t, ok)
		assert.Equal(t, ai.ProviderGoogle, m.Provider())

		m, ok = Lookup("claude-sonnet-4-5")
		assert.True(t, ok)
		assert.Equal(t, ai.ProviderAnthropic, m.Provider())
	})

	t.Run("unknown model is not found", func(t *testing.T) {
		_, ok := Lookup("gpt-1")
		assert.False(t, ok)
	})
}

func TestDefaultFor(t *testing.T) {
	tests := []struct {
		provider ai.Provider
		want     string
	}{
		{ai.ProviderGoogle, "gemini-2.5-flash"},
		{ai.ProviderAnthropic, "claude-sonnet-4-5"},
		{ai.ProviderOpenAI, "gpt-5.2"},
	}

	for _, tt := range tests {
		t.Run(string(tt.provider), func(t *testing.T) {
			m, ok := DefaultFor(tt.provider)
			assert.True(t, ok)
			assert.Equal(t, tt.want, m.String())
		})
	}

	_, ok := DefaultFor(ai.Provider("vertex"))
	assert.False(t, ok)
}
