package agui

import (
	"testing"

	"github.com/ag-ui-protocol/ag-ui/sdks/community/go/pkg/core/events"

	ai "github.com/wayfinder-ai/wayfinder"
)

func strPtr(s string) *string { return &s }

func TestToMessage(t *testing.T) {
	t.Run("user message", func(t *testing.T) {
		m := ToMessage(events.Message{Role: RoleUser, Content: strPtr("hello")})
		if m.Role != ai.RoleUser {
			t.Errorf("expected user role, got %s", m.Role)
		}
		if m.Content != "hello" {
			t.Errorf("expected 'hello', got %q", m.Content)
		}
	})

	t.Run("assistant with tool calls", func(t *testing.T) {
		m := ToMessage(events.Message{
			Role: RoleAssistant,
			ToolCalls: []events.ToolCall{{
				ID:   "call-1",
				Type: "function",
				Function: events.Function{
					Name:      "web_search",
					Arguments: `{"query":"x"}`,
				},
			}},
		})
		if len(m.ToolCalls) != 1 {
			t.Fatalf("expected 1 tool call, got %d", len(m.ToolCalls))
		}
		if m.ToolCalls[0].Name != "web_search" {
			t.Errorf("expected web_search, got %s", m.ToolCalls[0].Name)
		}
	})

	t.Run("tool result message", func(t *testing.T) {
		m := ToMessage(events.Message{
			Role:       RoleTool,
			Content:    strPtr("result body"),
			ToolCallID: strPtr("call-1"),
		})
		if len(m.ToolResults) != 1 {
			t.Fatalf("expected 1 tool result, got %d", len(m.ToolResults))
		}
		if m.ToolResults[0].ToolCallID != "call-1" {
			t.Errorf("expected call-1, got %s", m.ToolResults[0].ToolCallID)
		}
	})

	t.Run("unknown role defaults to user", func(t *testing.T) {
		m := ToMessage(events.Message{Role: "robot"})
		if m.Role != ai.RoleUser {
			t.Errorf("expected user fallback, got %s", m.Role)
		}
	})
}

func TestFromMessages(t *testing.T) {
	msgs := FromMessages([]ai.Message{
		{Role: ai.RoleSystem, Content: "be helpful"},
		{Role: ai.RoleUser, Content: "plan my trip"},
		{Role: ai.RoleAssistant, ToolCalls: []ai.ToolCall{{ID: "call-1", Name: "web_search", Arguments: "{}"}}},
		{Role: ai.RoleTool, ToolResults: []ai.ToolResult{{ToolCallID: "call-1", Content: "found it"}}},
	})

	if len(msgs) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(msgs))
	}
	if msgs[0].Role != RoleSystem {
		t.Errorf("expected system, got %s", msgs[0].Role)
	}
	if msgs[1].Content == nil || *msgs[1].Content != "plan my trip" {
		t.Error("user content not carried over")
	}
	if len(msgs[2].ToolCalls) != 1 || msgs[2].ToolCalls[0].Function.Name != "web_search" {
		t.Error("assistant tool call not carried over")
	}
	if msgs[3].ToolCallID == nil || *msgs[3].ToolCallID != "call-1" {
		t.Error("tool result call ID not carried over")
	}
	for i, m := range msgs {
		if m.ID == "" {
			t.Errorf("message %d missing generated ID", i)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	orig := []ai.Message{
		{Role: ai.RoleUser, Content: "hi"},
		{Role: ai.RoleAssistant, Content: "hello"},
	}

	back := ToMessages(FromMessages(orig))
	if len(back) != len(orig) {
		t.Fatalf("expected %d messages, got %d", len(orig), len(back))
	}
	for i := range orig {
		if back[i].Role != orig[i].Role || back[i].Content != orig[i].Content {
			t.Errorf("message %d changed in round trip: %+v", i, back[i])
		}
	}
}
