// Package search provides web search providers for research agents.
//
// Available providers:
//
//   - Tavily: requires an API key, supports basic/advanced depth modes
//   - DuckDuckGo: free, no API key required (scrapes lite.duckduckgo.com)
//
// # Tavily Example
//
//	provider := search.NewTavily(os.Getenv("TAVILY_API_KEY"), "advanced")
//	results, err := provider.Search(ctx, "best time to visit Kyoto")
//
// # Custom Providers
//
// Implement the Provider interface to add your own search backend.
package search

import "context"

// Result is a single web search result.
type Result struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// Provider executes web searches.
type Provider interface {
	Search(ctx context.Context, query string) ([]Result, error)
}

// defaultMaxResults caps how many results a provider returns per query.
const defaultMaxResults = 5
