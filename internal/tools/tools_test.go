package tools_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tailabs/mcp-shopify/internal/config"
	"github.com/tailabs/mcp-shopify/internal/registry"
	"github.com/tailabs/mcp-shopify/internal/shopify"
	_ "github.com/tailabs/mcp-shopify/internal/tools"
)

type recordedCall struct {
	count  int
	method string
	path   string
	query  string
	body   string
}

func newCatalogClient(t *testing.T, rec *recordedCall, status int, respBody string) *shopify.Client {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.count++
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.RawQuery
		b, _ := io.ReadAll(r.Body)
		rec.body = string(b)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(respBody))
	}))
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		ShopDomain:        srv.URL,
		AccessToken:       "shpat_test_token",
		APIVersion:        "2024-01",
		HTTPClientTimeout: 5 * time.Second,
	}
	return shopify.NewClient(cfg, srv.Client())
}

func handlerFor(t *testing.T, name string, client *shopify.Client) server.ToolHandlerFunc {
	t.Helper()
	for _, reg := range registry.Tools() {
		if reg.GetTool().Name == name {
			return reg.GetHandler(client)
		}
	}
	t.Fatalf("tool %q not registered", name)
	return nil
}

func newRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected a text content block")
	return tc.Text
}

func TestRegistry(t *testing.T) {
	tools := registry.Tools()
	require.NotEmpty(t, tools)

	seen := map[string]bool{}
	for _, reg := range tools {
		tool := reg.GetTool()
		assert.False(t, seen[tool.Name], "duplicate tool name %q", tool.Name)
		assert.NotEmpty(t, tool.Description, "tool %q has no description", tool.Name)
		seen[tool.Name] = true
	}

	assert.Len(t, tools, 22)
	assert.False(t, seen["does_not_exist"])
}

// TestToolCatalog drives every registered tool with a minimally valid
// argument set and checks that exactly one request with the documented
// method, path, query and body shape reaches the remote.
func TestToolCatalog(t *testing.T) {
	tests := []struct {
		tool       string
		args       map[string]any
		wantMethod string
		wantPath   string
		wantQuery  string
		wantBody   map[string]any
	}{
		{
			tool:       "get_products",
			args:       map[string]any{},
			wantMethod: http.MethodGet,
			wantPath:   "/admin/api/2024-01/products.json",
		},
		{
			tool:       "create_product",
			args:       map[string]any{"title": "Board", "status": "draft"},
			wantMethod: http.MethodPost,
			wantPath:   "/admin/api/2024-01/products.json",
			wantBody:   map[string]any{"product": map[string]any{"title": "Board", "status": "draft"}},
		},
		{
			tool:       "update_product",
			args:       map[string]any{"product_id": "1", "title": "x"},
			wantMethod: http.MethodPut,
			wantPath:   "/admin/api/2024-01/products/1.json",
			wantBody:   map[string]any{"product": map[string]any{"title": "x"}},
		},
		{
			tool:       "delete_product",
			args:       map[string]any{"product_id": "42"},
			wantMethod: http.MethodDelete,
			wantPath:   "/admin/api/2024-01/products/42.json",
		},
		{
			tool:       "get_orders",
			args:       map[string]any{"status": "any"},
			wantMethod: http.MethodGet,
			wantPath:   "/admin/api/2024-01/orders.json",
			wantQuery:  "status=any",
		},
		{
			tool:       "cancel_order",
			args:       map[string]any{"order_id": "7", "reason": "customer"},
			wantMethod: http.MethodPost,
			wantPath:   "/admin/api/2024-01/orders/7/cancel.json",
			wantBody:   map[string]any{"reason": "customer"},
		},
		{
			tool:       "get_customers",
			args:       map[string]any{"limit": float64(50)},
			wantMethod: http.MethodGet,
			wantPath:   "/admin/api/2024-01/customers.json",
			wantQuery:  "limit=50",
		},
		{
			tool:       "create_customer",
			args:       map[string]any{"email": "jo@example.com"},
			wantMethod: http.MethodPost,
			wantPath:   "/admin/api/2024-01/customers.json",
			wantBody:   map[string]any{"customer": map[string]any{"email": "jo@example.com"}},
		},
		{
			tool:       "update_customer",
			args:       map[string]any{"customer_id": "9", "note": "vip"},
			wantMethod: http.MethodPut,
			wantPath:   "/admin/api/2024-01/customers/9.json",
			wantBody:   map[string]any{"customer": map[string]any{"note": "vip"}},
		},
		{
			tool:       "get_inventory_levels",
			args:       map[string]any{"location_ids": "1,2"},
			wantMethod: http.MethodGet,
			wantPath:   "/admin/api/2024-01/inventory_levels.json",
			wantQuery:  "location_ids=1%2C2",
		},
		{
			tool: "adjust_inventory_level",
			args: map[string]any{
				"inventory_item_id":    float64(101),
				"location_id":          float64(5),
				"available_adjustment": float64(-3),
			},
			wantMethod: http.MethodPost,
			wantPath:   "/admin/api/2024-01/inventory_levels/adjust.json",
			wantBody: map[string]any{
				"inventory_item_id":    float64(101),
				"location_id":          float64(5),
				"available_adjustment": float64(-3),
			},
		},
		{
			tool:       "get_collections",
			args:       map[string]any{},
			wantMethod: http.MethodGet,
			wantPath:   "/admin/api/2024-01/custom_collections.json",
		},
		{
			tool:       "create_collection",
			args:       map[string]any{"title": "Sale"},
			wantMethod: http.MethodPost,
			wantPath:   "/admin/api/2024-01/custom_collections.json",
			wantBody:   map[string]any{"custom_collection": map[string]any{"title": "Sale"}},
		},
		{
			tool:       "get_fulfillments",
			args:       map[string]any{"order_id": "3"},
			wantMethod: http.MethodGet,
			wantPath:   "/admin/api/2024-01/orders/3/fulfillments.json",
		},
		{
			tool:       "create_fulfillment",
			args:       map[string]any{"order_id": "3", "tracking_number": "TN123"},
			wantMethod: http.MethodPost,
			wantPath:   "/admin/api/2024-01/orders/3/fulfillments.json",
			wantBody:   map[string]any{"fulfillment": map[string]any{"tracking_number": "TN123"}},
		},
		{
			tool:       "get_price_rules",
			args:       map[string]any{},
			wantMethod: http.MethodGet,
			wantPath:   "/admin/api/2024-01/price_rules.json",
		},
		{
			tool:       "create_price_rule",
			args:       map[string]any{"title": "SUMMER", "value_type": "percentage", "value": "-10.0"},
			wantMethod: http.MethodPost,
			wantPath:   "/admin/api/2024-01/price_rules.json",
			wantBody: map[string]any{"price_rule": map[string]any{
				"title": "SUMMER", "value_type": "percentage", "value": "-10.0",
			}},
		},
		{
			tool:       "create_discount_code",
			args:       map[string]any{"price_rule_id": "11", "code": "SUMMERSALE10"},
			wantMethod: http.MethodPost,
			wantPath:   "/admin/api/2024-01/price_rules/11/discount_codes.json",
			wantBody:   map[string]any{"discount_code": map[string]any{"code": "SUMMERSALE10"}},
		},
		{
			tool:       "get_webhooks",
			args:       map[string]any{"topic": "orders/create"},
			wantMethod: http.MethodGet,
			wantPath:   "/admin/api/2024-01/webhooks.json",
			wantQuery:  "topic=orders%2Fcreate",
		},
		{
			tool:       "create_webhook",
			args:       map[string]any{"topic": "orders/create", "address": "https://example.com/hook"},
			wantMethod: http.MethodPost,
			wantPath:   "/admin/api/2024-01/webhooks.json",
			wantBody: map[string]any{"webhook": map[string]any{
				"topic": "orders/create", "address": "https://example.com/hook",
			}},
		},
		{
			tool:       "delete_webhook",
			args:       map[string]any{"webhook_id": "5"},
			wantMethod: http.MethodDelete,
			wantPath:   "/admin/api/2024-01/webhooks/5.json",
		},
		{
			tool:       "get_shop",
			args:       map[string]any{},
			wantMethod: http.MethodGet,
			wantPath:   "/admin/api/2024-01/shop.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			rec := &recordedCall{}
			client := newCatalogClient(t, rec, http.StatusOK, `{"ok":true}`)
			handler := handlerFor(t, tt.tool, client)

			res, err := handler(context.Background(), newRequest(tt.tool, tt.args))
			require.NoError(t, err)
			require.NotNil(t, res)
			assert.False(t, res.IsError)

			assert.Equal(t, 1, rec.count, "expected exactly one remote call")
			assert.Equal(t, tt.wantMethod, rec.method)
			assert.Equal(t, tt.wantPath, rec.path)
			assert.Equal(t, tt.wantQuery, rec.query)

			if tt.wantBody == nil {
				assert.Empty(t, rec.body)
			} else {
				var got map[string]any
				require.NoError(t, json.Unmarshal([]byte(rec.body), &got))
				assert.Equal(t, tt.wantBody, got)
			}
		})
	}
}

func TestCreateCollectionRouting(t *testing.T) {
	rules := []any{map[string]any{"column": "tag", "relation": "equals", "condition": "sale"}}

	tests := []struct {
		name      string
		args      map[string]any
		wantPath  string
		wantKey   string
	}{
		{
			name:     "rules force smart even with custom type flag",
			args:     map[string]any{"title": "Sale", "rules": rules, "collection_type": "custom"},
			wantPath: "/admin/api/2024-01/smart_collections.json",
			wantKey:  "smart_collection",
		},
		{
			name:     "rules alone pick smart",
			args:     map[string]any{"title": "Sale", "rules": rules},
			wantPath: "/admin/api/2024-01/smart_collections.json",
			wantKey:  "smart_collection",
		},
		{
			name:     "smart type flag without rules picks smart",
			args:     map[string]any{"title": "Sale", "collection_type": "smart"},
			wantPath: "/admin/api/2024-01/smart_collections.json",
			wantKey:  "smart_collection",
		},
		{
			name:     "no rules and no flag defaults to custom",
			args:     map[string]any{"title": "Sale"},
			wantPath: "/admin/api/2024-01/custom_collections.json",
			wantKey:  "custom_collection",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recordedCall{}
			client := newCatalogClient(t, rec, http.StatusOK, `{"ok":true}`)
			handler := handlerFor(t, "create_collection", client)

			_, err := handler(context.Background(), newRequest("create_collection", tt.args))
			require.NoError(t, err)

			assert.Equal(t, tt.wantPath, rec.path)

			var got map[string]any
			require.NoError(t, json.Unmarshal([]byte(rec.body), &got))
			require.Contains(t, got, tt.wantKey)

			// The routing flag never reaches the remote body.
			payload := got[tt.wantKey].(map[string]any)
			assert.NotContains(t, payload, "collection_type")
		})
	}
}

func TestGetCollectionsRouting(t *testing.T) {
	rec := &recordedCall{}
	client := newCatalogClient(t, rec, http.StatusOK, `{"smart_collections":[]}`)
	handler := handlerFor(t, "get_collections", client)

	_, err := handler(context.Background(),
		newRequest("get_collections", map[string]any{"collection_type": "smart", "limit": float64(5)}))
	require.NoError(t, err)

	assert.Equal(t, "/admin/api/2024-01/smart_collections.json", rec.path)
	assert.Equal(t, "limit=5", rec.query)
}

func TestDeleteToolsReturnConfirmation(t *testing.T) {
	tests := []struct {
		tool     string
		args     map[string]any
		wantText string
	}{
		{"delete_product", map[string]any{"product_id": "42"}, "Product 42 deleted successfully"},
		{"delete_webhook", map[string]any{"webhook_id": "5"}, "Webhook 5 deleted successfully"},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			rec := &recordedCall{}
			client := newCatalogClient(t, rec, http.StatusOK, `{}`)
			handler := handlerFor(t, tt.tool, client)

			res, err := handler(context.Background(), newRequest(tt.tool, tt.args))
			require.NoError(t, err)
			assert.Equal(t, tt.wantText, resultText(t, res))
		})
	}
}

func TestUpdateToolsNeverForwardIdentifier(t *testing.T) {
	rec := &recordedCall{}
	client := newCatalogClient(t, rec, http.StatusOK, `{"product":{}}`)
	handler := handlerFor(t, "update_product", client)

	_, err := handler(context.Background(),
		newRequest("update_product", map[string]any{"product_id": "1", "title": "x"}))
	require.NoError(t, err)

	assert.NotContains(t, rec.body, "product_id")
	assert.JSONEq(t, `{"product":{"title":"x"}}`, rec.body)
}

func TestListToolsOmitAbsentOptionalArgs(t *testing.T) {
	rec := &recordedCall{}
	client := newCatalogClient(t, rec, http.StatusOK, `{"orders":[]}`)
	handler := handlerFor(t, "get_orders", client)

	_, err := handler(context.Background(),
		newRequest("get_orders", map[string]any{"status": "open"}))
	require.NoError(t, err)

	assert.Equal(t, "status=open", rec.query)
}

func TestRemoteFailureSurfacesPayload(t *testing.T) {
	const payload = `{"errors":{"title":["can't be blank"]}}`

	rec := &recordedCall{}
	client := newCatalogClient(t, rec, http.StatusUnprocessableEntity, payload)
	handler := handlerFor(t, "create_product", client)

	res, err := handler(context.Background(),
		newRequest("create_product", map[string]any{"title": "Board"}))

	require.Error(t, err)
	assert.Nil(t, res)
	assert.Equal(t, payload, err.Error())
}

func TestMissingRequiredArgumentIsToolError(t *testing.T) {
	rec := &recordedCall{}
	client := newCatalogClient(t, rec, http.StatusOK, `{}`)
	handler := handlerFor(t, "delete_product", client)

	res, err := handler(context.Background(), newRequest("delete_product", map[string]any{}))
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.IsError)
	assert.Equal(t, 0, rec.count, "no remote call should be made")
}

func TestResultsArePrettyPrintedJSON(t *testing.T) {
	rec := &recordedCall{}
	client := newCatalogClient(t, rec, http.StatusOK, `{"shop":{"name":"Test Shop"}}`)
	handler := handlerFor(t, "get_shop", client)

	res, err := handler(context.Background(), newRequest("get_shop", map[string]any{}))
	require.NoError(t, err)

	text := resultText(t, res)
	assert.True(t, strings.Contains(text, "\n  "), "expected indented JSON, got %q", text)
	assert.JSONEq(t, `{"shop":{"name":"Test Shop"}}`, text)
}
