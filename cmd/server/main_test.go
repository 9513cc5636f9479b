package main

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	ai "github.com/wayfinder-ai/wayfinder"
	"github.com/wayfinder-ai/wayfinder/client"
)

func TestLogClientEvents(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	events := make(chan client.Event, 4)
	events <- client.Event{
		Type:      client.EventRequestComplete,
		Operation: "chat",
		Provider:  ai.ProviderAnthropic,
		Model:     "claude-sonnet-4-5",
		Duration:  150 * time.Millisecond,
		Usage:     &ai.Usage{InputTokens: 1000, OutputTokens: 500},
	}
	events <- client.Event{
		Type:      client.EventRequestError,
		Operation: "chat_stream",
		Provider:  ai.ProviderGoogle,
		Model:     "mystery-model",
		Error:     errors.New("rate limited"),
	}
	close(events)

	logClientEvents(events)

	out := buf.String()
	assert.Contains(t, out, "llm request complete")
	assert.Contains(t, out, "input_tokens=1000")
	assert.Contains(t, out, "output_tokens=500")
	assert.Contains(t, out, "cost_usd=")
	assert.Contains(t, out, "llm request failed")
	assert.Contains(t, out, "rate limited")
}
