package tools

import (
	"context"

	"github.com/tailabs/mcp-shopify/internal/registry"
	"github.com/tailabs/mcp-shopify/internal/shopify"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func NewGetWebhooksTool() mcp.Tool {
	return mcp.NewTool("get_webhooks",
		mcp.WithDescription("Retrieve the webhook subscriptions registered for the shop."),
		mcp.WithString("topic",
			mcp.Description("Filter results to subscriptions for this topic, e.g. 'orders/create'."),
		),
		mcp.WithString("address",
			mcp.Description("Filter results to subscriptions delivering to this URL."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results to return, up to 250."),
		),
	)
}

func GetWebhooksHandler(client *shopify.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := shopify.EncodeQuery(request.GetArguments(), "topic", "address", "limit")

		raw, err := client.Get(ctx, "webhooks", query)
		if err != nil {
			return nil, err
		}

		return jsonResult(raw)
	}
}

// Tool registrar
type GetWebhooksTool struct{}

func (t *GetWebhooksTool) GetTool() mcp.Tool {
	return NewGetWebhooksTool()
}

func (t *GetWebhooksTool) GetHandler(client *shopify.Client) server.ToolHandlerFunc {
	return GetWebhooksHandler(client)
}

func init() {
	registry.RegisterTool(&GetWebhooksTool{})
}
