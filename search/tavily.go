package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const tavilyEndpoint = "https://api.tavily.com/search"

// Tavily calls the Tavily search API.
type Tavily struct {
	apiKey     string
	depth      string
	maxResults int
	endpoint   string
	client     *http.Client
}

// TavilyOption configures a Tavily provider.
type TavilyOption func(*Tavily)

// WithTavilyHTTPClient overrides the HTTP client, e.g. to change the timeout.
func WithTavilyHTTPClient(client *http.Client) TavilyOption {
	return func(t *Tavily) {
		t.client = client
	}
}

// WithTavilyMaxResults limits the number of results per query. Default is 5.
func WithTavilyMaxResults(n int) TavilyOption {
	return func(t *Tavily) {
		t.maxResults = n
	}
}

// WithTavilyEndpoint overrides the API endpoint. Used in tests.
func WithTavilyEndpoint(url string) TavilyOption {
	return func(t *Tavily) {
		t.endpoint = url
	}
}

// NewTavily constructs a Tavily search provider.
// Depth is Tavily's depth parameter ("basic" or "advanced"); empty means basic.
func NewTavily(apiKey string, depth string, opts ...TavilyOption) *Tavily {
	if depth == "" {
		depth = "basic"
	}
	t := &Tavily{
		apiKey:     apiKey,
		depth:      depth,
		maxResults: defaultMaxResults,
		endpoint:   tavilyEndpoint,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Search posts a query to Tavily.
func (t *Tavily) Search(ctx context.Context, query string) ([]Result, error) {
	if strings.TrimSpace(t.apiKey) == "" {
		return nil, errors.New("tavily: API key is missing")
	}

	body := map[string]any{
		"query":        query,
		"api_key":      t.apiKey,
		"search_depth": t.depth,
		"max_results":  t.maxResults,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	var resp *http.Response
	delay := 1 * time.Second
	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err = t.client.Do(req)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			break
		}
		resp.Body.Close()

		// Back off and retry on 429, doubling the delay each time up to 30 s.
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
		if delay < 30*time.Second {
			delay *= 2
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tavily http %d", resp.StatusCode)
	}

	var response struct {
		Results []struct {
			Title   string `json:"title"`
			URL     string `json:"url"`
			Content string `json:"content"`
		} `json:"results"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, err
	}

	// max_results is enforced server-side; the cap here only guards
	// against an over-long response.
	results := make([]Result, 0, len(response.Results))
	for _, r := range response.Results {
		results = append(results, Result{Title: r.Title, URL: r.URL, Snippet: r.Content})
		if len(results) >= t.maxResults {
			break
		}
	}
	return results, nil
}

var _ Provider = (*Tavily)(nil)
