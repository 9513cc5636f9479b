package agui

import (
	"errors"
	"testing"

	"github.com/ag-ui-protocol/ag-ui/sdks/community/go/pkg/core/events"

	ai "github.com/wayfinder-ai/wayfinder"
	"github.com/wayfinder-ai/wayfinder/event"
)

func TestNewMapper(t *testing.T) {
	t.Run("with provided IDs", func(t *testing.T) {
		m := NewMapper("thread-123", "run-456")
		if m.ThreadID() != "thread-123" {
			t.Errorf("expected thread ID 'thread-123', got %q", m.ThreadID())
		}
		if m.RunID() != "run-456" {
			t.Errorf("expected run ID 'run-456', got %q", m.RunID())
		}
	})

	t.Run("generates IDs when empty", func(t *testing.T) {
		m := NewMapper("", "")
		if m.ThreadID() == "" {
			t.Error("expected generated thread ID, got empty")
		}
		if m.RunID() == "" {
			t.Error("expected generated run ID, got empty")
		}
	})
}

func TestMapperRunLifecycle(t *testing.T) {
	m := NewMapper("thread-1", "run-1")

	tests := []struct {
		name string
		in   event.Event
		want events.EventType
	}{
		{"RunStart", event.Event{Type: event.RunStart}, events.EventTypeRunStarted},
		{"RunEnd", event.Event{Type: event.RunEnd}, events.EventTypeRunFinished},
		{"RunError", event.Event{Type: event.RunError, Error: errors.New("boom")}, events.EventTypeRunError},
		{"StepStart", event.Event{Type: event.StepStart, StepName: "research"}, events.EventTypeStepStarted},
		{"StepEnd", event.Event{Type: event.StepEnd, StepName: "research"}, events.EventTypeStepFinished},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := m.MapEvent(tt.in)
			if result == nil {
				t.Fatal("expected event, got nil")
			}
			if result.Type() != tt.want {
				t.Errorf("expected %s, got %s", tt.want, result.Type())
			}
		})
	}
}

func TestMapperRunErrorNilError(t *testing.T) {
	m := NewMapper("t", "r")
	result := m.MapEvent(event.Event{Type: event.RunError})
	if result == nil {
		t.Fatal("expected event, got nil")
	}
	if result.Type() != events.EventTypeRunError {
		t.Errorf("expected RUN_ERROR, got %s", result.Type())
	}
}

func TestMapperMessageLifecycle(t *testing.T) {
	m := NewMapper("thread-1", "run-1")

	start := m.MapEvent(event.Event{Type: event.MessageStart, MessageID: "msg-1"})
	if start == nil || start.Type() != events.EventTypeTextMessageStart {
		t.Fatalf("expected TEXT_MESSAGE_START, got %v", start)
	}

	content := m.MapEvent(event.Event{Type: event.MessageDelta, MessageID: "msg-1", Delta: "hello"})
	if content == nil || content.Type() != events.EventTypeTextMessageContent {
		t.Fatalf("expected TEXT_MESSAGE_CONTENT, got %v", content)
	}

	end := m.MapEvent(event.Event{Type: event.MessageEnd, MessageID: "msg-1"})
	if end == nil || end.Type() != events.EventTypeTextMessageEnd {
		t.Fatalf("expected TEXT_MESSAGE_END, got %v", end)
	}
}

func TestMapperToolCallLifecycle(t *testing.T) {
	m := NewMapper("thread-1", "run-1")
	tc := &ai.ToolCall{ID: "call-1", Name: "web_search", Arguments: `{"query":"x"}`}

	start := m.MapEvent(event.Event{Type: event.ToolCallStart, ToolCall: tc})
	if start == nil || start.Type() != events.EventTypeToolCallStart {
		t.Fatalf("expected TOOL_CALL_START, got %v", start)
	}

	args := m.MapEvent(event.Event{Type: event.ToolCallArgs, ToolCall: tc})
	if args == nil || args.Type() != events.EventTypeToolCallArgs {
		t.Fatalf("expected TOOL_CALL_ARGS, got %v", args)
	}

	end := m.MapEvent(event.Event{Type: event.ToolCallEnd, ToolCall: tc})
	if end == nil || end.Type() != events.EventTypeToolCallEnd {
		t.Fatalf("expected TOOL_CALL_END, got %v", end)
	}

	result := m.MapEvent(event.Event{
		Type:       event.ToolCallResult,
		ToolCall:   tc,
		ToolResult: &ai.ToolResult{ToolCallID: "call-1", Content: "results"},
	})
	if result == nil || result.Type() != events.EventTypeToolCallResult {
		t.Fatalf("expected TOOL_CALL_RESULT, got %v", result)
	}
}

func TestMapperNilPayloads(t *testing.T) {
	m := NewMapper("thread-1", "run-1")

	for _, typ := range []event.Type{
		event.ToolCallStart,
		event.ToolCallArgs,
		event.ToolCallEnd,
		event.ToolCallResult,
	} {
		if got := m.MapEvent(event.Event{Type: typ}); got != nil {
			t.Errorf("expected nil for %s without payload, got %s", typ, got.Type())
		}
	}

	if got := m.MapEvent(event.Event{Type: event.Type("unknown")}); got != nil {
		t.Errorf("expected nil for unknown type, got %s", got.Type())
	}
}
