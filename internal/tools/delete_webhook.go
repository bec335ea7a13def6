package tools

import (
	"context"
	"fmt"

	"github.com/tailabs/mcp-shopify/internal/registry"
	"github.com/tailabs/mcp-shopify/internal/shopify"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func NewDeleteWebhookTool() mcp.Tool {
	return mcp.NewTool("delete_webhook",
		mcp.WithDescription("Delete a webhook subscription."),
		mcp.WithString("webhook_id",
			mcp.Required(),
			mcp.Description("ID of the webhook subscription to delete."),
		),
	)
}

func DeleteWebhookHandler(client *shopify.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		webhookID, err := request.RequireString("webhook_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if err := client.Delete(ctx, "webhooks/"+webhookID); err != nil {
			return nil, err
		}

		return mcp.NewToolResultText(fmt.Sprintf("Webhook %s deleted successfully", webhookID)), nil
	}
}

// Tool registrar
type DeleteWebhookTool struct{}

func (t *DeleteWebhookTool) GetTool() mcp.Tool {
	return NewDeleteWebhookTool()
}

func (t *DeleteWebhookTool) GetHandler(client *shopify.Client) server.ToolHandlerFunc {
	return DeleteWebhookHandler(client)
}

func init() {
	registry.RegisterTool(&DeleteWebhookTool{})
}
