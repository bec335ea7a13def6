package shopify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeQuery(t *testing.T) {
	t.Run("keeps schema declaration order", func(t *testing.T) {
		args := map[string]any{
			"since_id": "100",
			"status":   "open",
			"limit":    float64(50),
		}
		got := EncodeQuery(args, "status", "limit", "since_id")
		assert.Equal(t, "status=open&limit=50&since_id=100", got)
	})

	t.Run("omits absent arguments entirely", func(t *testing.T) {
		args := map[string]any{"status": "any"}
		got := EncodeQuery(args, "status", "financial_status", "limit")
		assert.Equal(t, "status=any", got)
	})

	t.Run("omits falsy arguments", func(t *testing.T) {
		args := map[string]any{
			"title":    "",
			"limit":    float64(0),
			"verified": false,
			"topic":    nil,
		}
		assert.Empty(t, EncodeQuery(args, "title", "limit", "verified", "topic"))
	})

	t.Run("escapes values", func(t *testing.T) {
		args := map[string]any{"topic": "orders/create"}
		assert.Equal(t, "topic=orders%2Fcreate", EncodeQuery(args, "topic"))
	})

	t.Run("formats numbers without decimals", func(t *testing.T) {
		args := map[string]any{"limit": float64(250)}
		assert.Equal(t, "limit=250", EncodeQuery(args, "limit"))
	})

	t.Run("empty arguments yield empty string", func(t *testing.T) {
		assert.Empty(t, EncodeQuery(map[string]any{}, "status", "limit"))
	})
}

func TestWrap(t *testing.T) {
	payload := map[string]any{"title": "Board"}
	assert.Equal(t, map[string]any{"product": map[string]any{"title": "Board"}}, Wrap("product", payload))
}

func TestSplitID(t *testing.T) {
	args := map[string]any{
		"product_id": "123",
		"title":      "Board",
		"status":     "active",
	}

	id, payload := SplitID(args, "product_id")

	assert.Equal(t, "123", id)
	assert.NotContains(t, payload, "product_id")
	assert.Equal(t, map[string]any{"title": "Board", "status": "active"}, payload)

	// Original arguments are untouched.
	assert.Contains(t, args, "product_id")
}
