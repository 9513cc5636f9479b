package wayfinder

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaFor(t *testing.T) {
	t.Run("generates schema from struct tags", func(t *testing.T) {
		type args struct {
			Query      string `json:"query" desc:"Search query" required:"true"`
			MaxResults int    `json:"max_results" desc:"Maximum results"`
			Depth      string `json:"depth" enum:"basic,advanced"`
		}

		raw, err := SchemaFor[args]()
		require.NoError(t, err)

		var schema map[string]any
		require.NoError(t, json.Unmarshal(raw, &schema))

		assert.Equal(t, "object", schema["type"])

		props, ok := schema["properties"].(map[string]any)
		require.True(t, ok)

		query := props["query"].(map[string]any)
		assert.Equal(t, "string", query["type"])
		assert.Equal(t, "Search query", query["description"])

		maxResults := props["max_results"].(map[string]any)
		assert.Equal(t, "integer", maxResults["type"])

		depth := props["depth"].(map[string]any)
		assert.ElementsMatch(t, []any{"basic", "advanced"}, depth["enum"])

		required, ok := schema["required"].([]any)
		require.True(t, ok)
		assert.Equal(t, []any{"query"}, required)
	})

	t.Run("handles nested structs and slices", func(t *testing.T) {
		type leg struct {
			From string `json:"from"`
			To   string `json:"to"`
		}
		type args struct {
			Legs  []leg    `json:"legs"`
			Tags  []string `json:"tags"`
			Extra map[string]string
		}

		raw, err := SchemaFor[args]()
		require.NoError(t, err)

		var schema map[string]any
		require.NoError(t, json.Unmarshal(raw, &schema))
		props := schema["properties"].(map[string]any)

		legs := props["legs"].(map[string]any)
		assert.Equal(t, "array", legs["type"])
		items := legs["items"].(map[string]any)
		assert.Equal(t, "object", items["type"])

		tags := props["tags"].(map[string]any)
		assert.Equal(t, "array", tags["type"])
		assert.Equal(t, map[string]any{"type": "string"}, tags["items"])

		extra := props["Extra"].(map[string]any)
		assert.Equal(t, "object", extra["type"])
	})

	t.Run("rejects non-struct types", func(t *testing.T) {
		_, err := SchemaFor[string]()
		assert.Error(t, err)
	})

	t.Run("skips unexported and ignored fields", func(t *testing.T) {
		type args struct {
			Visible string `json:"visible"`
			Hidden  string `json:"-"`
			secret  string
		}
		_ = args{secret: ""}

		raw, err := SchemaFor[args]()
		require.NoError(t, err)

		var schema map[string]any
		require.NoError(t, json.Unmarshal(raw, &schema))
		props := schema["properties"].(map[string]any)
		assert.Len(t, props, 1)
		assert.Contains(t, props, "visible")
	})
}
