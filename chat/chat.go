// Package chat provides the canonical chat client interface.
//
// This package exists so the agent, workflow, and planner packages can
// share one interface without import cycles. The interface combines the
// blocking Chat call with the rich-event ChatStream call.
//
// The [github.com/wayfinder-ai/wayfinder/client.Client] type implements
// this interface.
package chat

import (
	"context"

	ai "github.com/wayfinder-ai/wayfinder"
	"github.com/wayfinder-ai/wayfinder/event"
)

// Client defines the interface for high-level chat clients.
type Client interface {
	// Chat sends a conversation and returns a complete response.
	Chat(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Response, error)

	// ChatStream sends a conversation and returns a channel of rich events.
	ChatStream(ctx context.Context, messages []ai.Message, opts ...ai.Option) (<-chan event.Event, error)
}
