package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTavily_Search(t *testing.T) {
	t.Run("returns results", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "kyoto temples", body["query"])
			assert.Equal(t, "test-key", body["api_key"])
			assert.Equal(t, "advanced", body["search_depth"])
			assert.Equal(t, float64(defaultMaxResults), body["max_results"])

			json.NewEncoder(w).Encode(map[string]any{
				"results": []map[string]string{
					{"title": "Kinkaku-ji", "url": "https://example.com/kinkakuji", "content": "The golden pavilion"},
					{"title": "Fushimi Inari", "url": "https://example.com/inari", "content": "Thousands of torii gates"},
				},
			})
		}))
		defer srv.Close()

		provider := NewTavily("test-key", "advanced", WithTavilyEndpoint(srv.URL))
		results, err := provider.Search(context.Background(), "kyoto temples")
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "Kinkaku-ji", results[0].Title)
		assert.Equal(t, "https://example.com/kinkakuji", results[0].URL)
		assert.Equal(t, "The golden pavilion", results[0].Snippet)
	})

	t.Run("missing API key", func(t *testing.T) {
		provider := NewTavily("", "")
		_, err := provider.Search(context.Background(), "anything")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "API key is missing")
	})

	t.Run("retries on 429", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			json.NewEncoder(w).Encode(map[string]any{
				"results": []map[string]string{
					{"title": "ok", "url": "https://example.com", "content": "snippet"},
				},
			})
		}))
		defer srv.Close()

		provider := NewTavily("test-key", "", WithTavilyEndpoint(srv.URL))
		results, err := provider.Search(context.Background(), "retry me")
		require.NoError(t, err)
		assert.Len(t, results, 1)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("caps results at max", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var many []map[string]string
			for i := 0; i < 10; i++ {
				many = append(many, map[string]string{"title": "t", "url": "u", "content": "c"})
			}
			json.NewEncoder(w).Encode(map[string]any{"results": many})
		}))
		defer srv.Close()

		provider := NewTavily("test-key", "", WithTavilyEndpoint(srv.URL), WithTavilyMaxResults(3))
		results, err := provider.Search(context.Background(), "many")
		require.NoError(t, err)
		assert.Len(t, results, 3)
	})

	t.Run("non-200 is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		provider := NewTavily("test-key", "", WithTavilyEndpoint(srv.URL))
		_, err := provider.Search(context.Background(), "boom")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tavily http 500")
	})
}

func TestDuckDuckGo_Search(t *testing.T) {
	t.Run("parses lite HTML", func(t *testing.T) {
		html := `<table>
			<tr><td><a rel="nofollow" class='result-link' href='https://example.com/one'>First Result</a></td></tr>
			<tr><td class='result-snippet'>Snippet one</td></tr>
			<tr><td><a rel="nofollow" class='result-link' href='https://example.com/two'>Second &amp; Result</a></td></tr>
			<tr><td class='result-snippet'>Snippet two</td></tr>
		</table>`
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "lisbon food", r.FormValue("q"))
			w.Write([]byte(html))
		}))
		defer srv.Close()

		provider := NewDuckDuckGo(WithDuckDuckGoEndpoint(srv.URL))
		results, err := provider.Search(context.Background(), "lisbon food")
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "First Result", results[0].Title)
		assert.Equal(t, "https://example.com/one", results[0].URL)
		assert.Equal(t, "Snippet one", results[0].Snippet)
		assert.Equal(t, "Second & Result", results[1].Title)
	})

	t.Run("empty query is an error", func(t *testing.T) {
		provider := NewDuckDuckGo()
		_, err := provider.Search(context.Background(), "   ")
		require.Error(t, err)
	})

	t.Run("fallback parse skips internal links", func(t *testing.T) {
		d := NewDuckDuckGo()
		html := `<a href="/settings">Settings page</a>
			<a href="https://duckduckgo.com/about">About DuckDuckGo</a>
			<a href="https://example.com/page">An External Page</a>`
		results := d.fallbackParse(html)
		require.Len(t, results, 1)
		assert.Equal(t, "https://example.com/page", results[0].URL)
	})
}

func TestCleanHTML(t *testing.T) {
	assert.Equal(t, "Fish & Chips", cleanHTML("<b>Fish &amp; Chips</b>"))
	assert.Equal(t, `He said "go"`, cleanHTML("He said &quot;go&quot;"))
}
