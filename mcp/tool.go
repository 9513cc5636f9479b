package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"

	ai "github.com/wayfinder-ai/wayfinder"
)

// ToMCPTool converts a wayfinder Tool to an MCP Tool. The wayfinder
// Tool.Parameters JSON schema becomes the MCP tool's raw input schema.
func ToMCPTool(t ai.Tool) mcp.Tool {
	return mcp.NewToolWithRawSchema(t.Name, t.Description, t.Parameters)
}

// ToMCPTools converts a slice of wayfinder Tools to MCP Tools.
func ToMCPTools(tools []ai.Tool) []mcp.Tool {
	result := make([]mcp.Tool, len(tools))
	for i, t := range tools {
		result[i] = ToMCPTool(t)
	}
	return result
}
