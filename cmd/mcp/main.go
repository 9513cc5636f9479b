// Command mcp exposes wayfinder's tools as an MCP server over stdio.
//
// MCP clients discover a web_search tool backed by the configured search
// provider, and a generate_travel_plan tool that runs the full planning
// pipeline when an LLM provider API key is configured.
//
// Usage:
//
//	go run ./cmd/mcp
//
// Configuration for Claude Desktop (~/Library/Application Support/Claude/claude_desktop_config.json):
//
//	{
//	    "mcpServers": {
//	        "wayfinder": {
//	            "command": "go",
//	            "args": ["run", "./cmd/mcp"],
//	            "cwd": "/path/to/wayfinder"
//	        }
//	    }
//	}
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	ai "github.com/wayfinder-ai/wayfinder"
	"github.com/wayfinder-ai/wayfinder/client"
	"github.com/wayfinder-ai/wayfinder/mcp"
	"github.com/wayfinder-ai/wayfinder/model"
	"github.com/wayfinder-ai/wayfinder/planner"
	"github.com/wayfinder-ai/wayfinder/search"
	"github.com/wayfinder-ai/wayfinder/tool"
)

func main() {
	godotenv.Load()

	provider := searchProvider()
	searchTool, searchHandler := tool.NewWebSearchTool(provider)
	registry := tool.NewRegistry().Add(tool.WithTool(searchTool, searchHandler))

	// The planning tool needs a chat provider. Without a key the server
	// still serves web_search.
	if c, ok := chatClient(); ok {
		p, err := planner.New(c, provider)
		if err != nil {
			log.Fatal(err)
		}
		planTool, planHandler := planner.NewPlanTool(p)
		registry.Add(tool.WithTool(planTool, planHandler))
	}

	if err := mcp.ServeStdio(registry,
		mcp.WithName("wayfinder-mcp-server"),
		mcp.WithVersion("1.0.0"),
	); err != nil {
		log.Fatal(err)
	}
}

func searchProvider() search.Provider {
	if key := os.Getenv("TAVILY_API_KEY"); key != "" {
		return search.NewTavily(key, "basic")
	}
	return search.NewDuckDuckGo()
}

func chatClient() (*client.Client, bool) {
	cfg := client.Config{
		APIKeys: client.APIKeys{
			Anthropic: os.Getenv("ANTHROPIC_API_KEY"),
			OpenAI:    os.Getenv("OPENAI_API_KEY"),
			Google:    os.Getenv("GOOGLE_API_KEY"),
		},
	}

	var p ai.Provider
	switch {
	case cfg.APIKeys.Google != "":
		p = ai.ProviderGoogle
	case cfg.APIKeys.Anthropic != "":
		p = ai.ProviderAnthropic
	case cfg.APIKeys.OpenAI != "":
		p = ai.ProviderOpenAI
	default:
		return nil, false
	}

	m, ok := model.DefaultFor(p)
	if !ok {
		return nil, false
	}
	cfg.Defaults.Chat = m

	return client.New(cfg), true
}
