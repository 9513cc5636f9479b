package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ai "github.com/wayfinder-ai/wayfinder"
	"github.com/wayfinder-ai/wayfinder/event"
)

// testModel implements ai.Model for testing.
type testModel struct {
	id       string
	provider ai.Provider
}

func (m testModel) String() string        { return m.id }
func (m testModel) Provider() ai.Provider { return m.provider }

func TestErrMissingAPIKey(t *testing.T) {
	t.Run("Error with model", func(t *testing.T) {
		err := &ErrMissingAPIKey{Provider: "anthropic", Model: "claude-sonnet"}
		expected := `no API key configured for anthropic (required by model "claude-sonnet")`
		assert.Equal(t, expected, err.Error())
	})

	t.Run("Error without model", func(t *testing.T) {
		err := &ErrMissingAPIKey{Provider: "openai"}
		expected := "no API key configured for openai"
		assert.Equal(t, expected, err.Error())
	})
}

func TestErrNoModel(t *testing.T) {
	err := &ErrNoModel{Operation: "chat"}
	assert.Contains(t, err.Error(), "no model specified for chat")
}

func TestNew(t *testing.T) {
	t.Run("creates client with API keys", func(t *testing.T) {
		cfg := Config{
			APIKeys: APIKeys{
				Anthropic: "test-anthropic-key",
				OpenAI:    "test-openai-key",
			},
		}

		c := New(cfg)
		assert.NotNil(t, c)
	})

	t.Run("creates client with defaults", func(t *testing.T) {
		chatModel := testModel{id: "claude-sonnet", provider: ai.ProviderAnthropic}
		cfg := Config{
			APIKeys:  APIKeys{Anthropic: "test-key"},
			Defaults: Defaults{Chat: chatModel},
		}

		c := New(cfg)
		assert.NotNil(t, c)
	})
}

func TestChatErrors(t *testing.T) {
	t.Run("no model configured", func(t *testing.T) {
		c := New(Config{APIKeys: APIKeys{Anthropic: "key"}})

		_, err := c.Chat(context.Background(), []ai.Message{{Role: ai.RoleUser, Content: "hi"}})
		require.Error(t, err)
		var noModel *ErrNoModel
		assert.ErrorAs(t, err, &noModel)
	})

	t.Run("missing API key for model provider", func(t *testing.T) {
		c := New(Config{
			APIKeys:  APIKeys{OpenAI: "key"},
			Defaults: Defaults{Chat: testModel{id: "claude-sonnet", provider: ai.ProviderAnthropic}},
		})

		_, err := c.Chat(context.Background(), []ai.Message{{Role: ai.RoleUser, Content: "hi"}})
		require.Error(t, err)
		var missing *ErrMissingAPIKey
		assert.ErrorAs(t, err, &missing)
		assert.Equal(t, "anthropic", missing.Provider)
	})

	t.Run("unsupported provider", func(t *testing.T) {
		c := New(Config{
			Defaults: Defaults{Chat: testModel{id: "mystery", provider: ai.Provider("mystery")}},
		})

		_, err := c.Chat(context.Background(), []ai.Message{{Role: ai.RoleUser, Content: "hi"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported provider")
	})
}

func TestChatStreamErrors(t *testing.T) {
	t.Run("no model configured", func(t *testing.T) {
		c := New(Config{APIKeys: APIKeys{Google: "key"}})

		_, err := c.ChatStream(context.Background(), []ai.Message{{Role: ai.RoleUser, Content: "hi"}})
		require.Error(t, err)
		var noModel *ErrNoModel
		assert.ErrorAs(t, err, &noModel)
		assert.Equal(t, "chat_stream", noModel.Operation)
	})
}

func TestRichEvents(t *testing.T) {
	t.Run("deltas then done", func(t *testing.T) {
		raw := make(chan ai.StreamEvent, 4)
		raw <- ai.StreamEvent{Delta: "Hello"}
		raw <- ai.StreamEvent{Delta: " world"}
		raw <- ai.StreamEvent{Done: true, Response: &ai.Response{Content: "Hello world"}}
		close(raw)

		var got []event.Event
		for ev := range richEvents(raw) {
			got = append(got, ev)
		}

		require.Len(t, got, 4)
		assert.Equal(t, event.MessageStart, got[0].Type)
		assert.Equal(t, event.MessageDelta, got[1].Type)
		assert.Equal(t, "Hello", got[1].Delta)
		assert.Equal(t, event.MessageDelta, got[2].Type)
		assert.Equal(t, event.MessageEnd, got[3].Type)
		require.NotNil(t, got[3].Response)
		assert.Equal(t, "Hello world", got[3].Response.Content)

		// All events in one message share a message ID
		assert.Equal(t, got[0].MessageID, got[3].MessageID)
	})

	t.Run("error surfaces as run error", func(t *testing.T) {
		raw := make(chan ai.StreamEvent, 1)
		raw <- ai.StreamEvent{Err: assert.AnError}
		close(raw)

		var got []event.Event
		for ev := range richEvents(raw) {
			got = append(got, ev)
		}

		require.Len(t, got, 1)
		assert.Equal(t, event.RunError, got[0].Type)
		assert.ErrorIs(t, got[0].Error, assert.AnError)
	})

	t.Run("done without deltas still opens message", func(t *testing.T) {
		raw := make(chan ai.StreamEvent, 1)
		raw <- ai.StreamEvent{Done: true, Response: &ai.Response{
			Content:   "",
			ToolCalls: []ai.ToolCall{{ID: "call_1", Name: "web_search"}},
		}}
		close(raw)

		var got []event.Event
		for ev := range richEvents(raw) {
			got = append(got, ev)
		}

		require.Len(t, got, 2)
		assert.Equal(t, event.MessageStart, got[0].Type)
		assert.Equal(t, event.MessageEnd, got[1].Type)
	})
}

func TestWithDefaultChatOptions(t *testing.T) {
	c := New(Config{}, WithDefaultTemperature(0.7), WithDefaultMaxTokens(2048))
	assert.Len(t, c.defaultChatOpts, 2)
}
