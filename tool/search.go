package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	ai "github.com/wayfinder-ai/wayfinder"
	"github.com/wayfinder-ai/wayfinder/search"
)

// WebSearchToolName is the tool name the model sees for web searches.
const WebSearchToolName = "web_search"

// webSearchArgs defines arguments for the web search tool.
type webSearchArgs struct {
	Query      string `json:"query" desc:"The search query" required:"true"`
	MaxResults int    `json:"max_results" desc:"Maximum number of results to return (default 5)"`
}

// NewWebSearchTool creates a tool that runs web searches through the given
// provider. Results are rendered as numbered plain text so the model can
// cite them directly.
func NewWebSearchTool(provider search.Provider) (ai.Tool, Handler) {
	schema := MustSchemaFor[webSearchArgs]()

	t := ai.Tool{
		Name:        WebSearchToolName,
		Description: "Search the web for current information. Returns titles, URLs, and snippets.",
		Parameters:  schema,
	}

	handler := func(ctx context.Context, call ai.ToolCall) (string, error) {
		var args webSearchArgs
		if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
			return "", err
		}
		if strings.TrimSpace(args.Query) == "" {
			return "", fmt.Errorf("web_search: query is required")
		}

		results, err := provider.Search(ctx, args.Query)
		if err != nil {
			return "", &ErrToolExecution{Name: WebSearchToolName, Err: err}
		}
		if args.MaxResults > 0 && len(results) > args.MaxResults {
			results = results[:args.MaxResults]
		}

		return FormatSearchResults(args.Query, results), nil
	}

	return t, handler
}

// FormatSearchResults renders search results as numbered plain text.
func FormatSearchResults(query string, results []search.Result) string {
	if len(results) == 0 {
		return fmt.Sprintf("No results found for %q.", query)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Search results for %q:\n", query)
	for i, r := range results {
		fmt.Fprintf(&b, "\n%d. %s\n   %s\n", i+1, r.Title, r.URL)
		if r.Snippet != "" {
			fmt.Fprintf(&b, "   %s\n", r.Snippet)
		}
	}
	return b.String()
}
