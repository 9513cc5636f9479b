package client

import (
	ai "github.com/wayfinder-ai/wayfinder"
	"github.com/wayfinder-ai/wayfinder/chat"
	"github.com/wayfinder-ai/wayfinder/event"
)

// richEvents converts a provider-level stream of raw deltas into the rich
// event stream consumed by the agent and workflow packages. The message
// lifecycle is MessageStart, zero or more MessageDelta, then MessageEnd
// carrying the complete response. Errors surface as RunError.
func richEvents(ch <-chan ai.StreamEvent) <-chan event.Event {
	out := event.NewChannel()

	go func() {
		defer close(out)

		messageID := ai.GenerateMessageID()
		started := false

		for ev := range ch {
			if ev.Err != nil {
				out <- event.Event{Type: event.RunError, Error: ev.Err}
				return
			}
			if ev.Done {
				if !started {
					out <- event.Event{Type: event.MessageStart, MessageID: messageID}
				}
				out <- event.Event{
					Type:      event.MessageEnd,
					MessageID: messageID,
					Response:  ev.Response,
				}
				return
			}
			if ev.Delta == "" {
				continue
			}
			if !started {
				out <- event.Event{Type: event.MessageStart, MessageID: messageID}
				started = true
			}
			out <- event.Event{
				Type:      event.MessageDelta,
				MessageID: messageID,
				Delta:     ev.Delta,
			}
		}
	}()

	return out
}

var _ chat.Client = (*Client)(nil)
