package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ai "github.com/wayfinder-ai/wayfinder"
	"github.com/wayfinder-ai/wayfinder/tool"
)

func TestToMCPTool(t *testing.T) {
	t.Run("converts tool with raw schema", func(t *testing.T) {
		schema := json.RawMessage(`{"type":"object","properties":{"query":{"type":"string"}}}`)
		wayTool := ai.Tool{
			Name:        "web_search",
			Description: "Search the web",
			Parameters:  schema,
		}

		mcpTool := ToMCPTool(wayTool)

		assert.Equal(t, "web_search", mcpTool.Name)
		assert.Equal(t, "Search the web", mcpTool.Description)
		assert.Equal(t, schema, mcpTool.RawInputSchema)
	})

	t.Run("handles nil parameters", func(t *testing.T) {
		mcpTool := ToMCPTool(ai.Tool{Name: "simple", Description: "Simple tool"})
		assert.Equal(t, "simple", mcpTool.Name)
	})
}

func TestToMCPTools(t *testing.T) {
	tools := []ai.Tool{
		{Name: "tool1", Description: "First tool"},
		{Name: "tool2", Description: "Second tool"},
	}

	mcpTools := ToMCPTools(tools)

	assert.Len(t, mcpTools, 2)
	assert.Equal(t, "tool1", mcpTools[0].Name)
	assert.Equal(t, "tool2", mcpTools[1].Name)
}

func TestNewServer(t *testing.T) {
	registry := tool.NewRegistry()
	require.NoError(t, tool.BindTo(registry, "echo", "Echo the input",
		func(ctx context.Context, args struct {
			Text string `json:"text" required:"true"`
		}) (string, error) {
			return args.Text, nil
		}))

	s := NewServer(registry, WithName("test-server"), WithVersion("0.1.0"))
	assert.NotNil(t, s)
}

func TestWrapHandler(t *testing.T) {
	t.Run("success returns text result", func(t *testing.T) {
		handler := func(ctx context.Context, call ai.ToolCall) (string, error) {
			assert.Equal(t, "greet", call.Name)
			assert.JSONEq(t, `{"name":"Ada"}`, call.Arguments)
			return "hello Ada", nil
		}

		req := mcp.CallToolRequest{}
		req.Params.Name = "greet"
		req.Params.Arguments = map[string]any{"name": "Ada"}

		result, err := wrapHandler("greet", handler)(context.Background(), req)
		require.NoError(t, err)
		require.False(t, result.IsError)

		text, ok := result.Content[0].(mcp.TextContent)
		require.True(t, ok)
		assert.Equal(t, "hello Ada", text.Text)
	})

	t.Run("handler error becomes error result", func(t *testing.T) {
		handler := func(ctx context.Context, call ai.ToolCall) (string, error) {
			return "", errors.New("tool blew up")
		}

		req := mcp.CallToolRequest{}
		req.Params.Name = "broken"

		result, err := wrapHandler("broken", handler)(context.Background(), req)
		require.NoError(t, err)
		require.True(t, result.IsError)

		text, ok := result.Content[0].(mcp.TextContent)
		require.True(t, ok)
		assert.Contains(t, text.Text, "tool blew up")
	})

	t.Run("nil arguments default to empty object", func(t *testing.T) {
		handler := func(ctx context.Context, call ai.ToolCall) (string, error) {
			assert.Equal(t, "{}", call.Arguments)
			return "ok", nil
		}

		req := mcp.CallToolRequest{}
		req.Params.Name = "noargs"

		result, err := wrapHandler("noargs", handler)(context.Background(), req)
		require.NoError(t, err)
		assert.False(t, result.IsError)
	})
}
