package wayfinder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testModel is a simple Model implementation for testing.
type testModel string

func (m testModel) String() string     { return string(m) }
func (m testModel) Provider() Provider { return ProviderGoogle }

func TestApplyOptions(t *testing.T) {
	t.Run("returns empty options when no options provided", func(t *testing.T) {
		opts := ApplyOptions()
		assert.NotNil(t, opts)
		assert.Nil(t, opts.Model)
		assert.Zero(t, opts.MaxTokens)
		assert.Nil(t, opts.Temperature)
		assert.Nil(t, opts.Tools)
		assert.Empty(t, opts.ToolChoice)
	})

	t.Run("applies multiple options", func(t *testing.T) {
		tools := []Tool{{Name: "web_search"}}
		opts := ApplyOptions(
			WithModel(testModel("gemini-2.5-flash")),
			WithMaxTokens(1000),
			WithTemperature(0.7),
			WithTools(tools),
			WithToolChoice(ToolChoiceRequired),
		)

		assert.Equal(t, "gemini-2.5-flash", opts.Model.String())
		assert.Equal(t, 1000, opts.MaxTokens)
		require.NotNil(t, opts.Temperature)
		assert.Equal(t, 0.7, *opts.Temperature)
		assert.Equal(t, tools, opts.Tools)
		assert.Equal(t, ToolChoiceRequired, opts.ToolChoice)
	})

	t.Run("later options override earlier ones", func(t *testing.T) {
		opts := ApplyOptions(
			WithModel(testModel("first")),
			WithModel(testModel("second")),
		)
		assert.Equal(t, "second", opts.Model.String())
	})
}

func TestWithTemperature(t *testing.T) {
	tests := []struct {
		name  string
		value float64
	}{
		{"zero temperature", 0.0},
		{"typical temperature", 0.7},
		{"max temperature", 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := ApplyOptions(WithTemperature(tt.value))
			require.NotNil(t, opts.Temperature)
			assert.Equal(t, tt.value, *opts.Temperature)
		})
	}
}

func TestNewToolResultMessage(t *testing.T) {
	results := []ToolResult{
		{ToolCallID: "call-1", Content: "ok"},
		{ToolCallID: "call-2", Content: "not found", IsError: true},
	}

	msg := NewToolResultMessage(results...)
	assert.Equal(t, RoleTool, msg.Role)
	assert.Equal(t, results, msg.ToolResults)
}

func TestUsageAdd(t *testing.T) {
	u := Usage{InputTokens: 10, OutputTokens: 20}
	u.Add(Usage{InputTokens: 5, OutputTokens: 7})
	assert.Equal(t, 15, u.InputTokens)
	assert.Equal(t, 27, u.OutputTokens)
}
