package tools

import (
	"context"

	"github.com/tailabs/mcp-shopify/internal/registry"
	"github.com/tailabs/mcp-shopify/internal/shopify"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func NewCreateWebhookTool() mcp.Tool {
	return mcp.NewTool("create_webhook",
		mcp.WithDescription("Subscribe a delivery URL to a webhook topic."),
		mcp.WithString("topic",
			mcp.Required(),
			mcp.Description("Event topic to subscribe to, e.g. 'orders/create'."),
		),
		mcp.WithString("address",
			mcp.Required(),
			mcp.Description("URL the webhook payloads are delivered to."),
		),
		mcp.WithString("format",
			mcp.DefaultString("json"),
			mcp.Description("Delivery payload format."),
			mcp.Enum("json", "xml"),
		),
	)
}

func CreateWebhookHandler(client *shopify.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if _, err := request.RequireString("topic"); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if _, err := request.RequireString("address"); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		raw, err := client.Post(ctx, "webhooks", shopify.Wrap("webhook", request.GetArguments()))
		if err != nil {
			return nil, err
		}

		return jsonResult(raw)
	}
}

// Tool registrar
type CreateWebhookTool struct{}

func (t *CreateWebhookTool) GetTool() mcp.Tool {
	return NewCreateWebhookTool()
}

func (t *CreateWebhookTool) GetHandler(client *shopify.Client) server.ToolHandlerFunc {
	return CreateWebhookHandler(client)
}

func init() {
	registry.RegisterTool(&CreateWebhookTool{})
}
