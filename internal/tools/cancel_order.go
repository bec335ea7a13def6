package tools

import (
	"context"

	"github.com/tailabs/mcp-shopify/internal/registry"
	"github.com/tailabs/mcp-shopify/internal/shopify"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewCancelOrderTool creates the tool for cancelling an order.
func NewCancelOrderTool() mcp.Tool {
	return mcp.NewTool("cancel_order",
		mcp.WithDescription("Cancel an order. Orders with fulfillments cannot be cancelled."),
		mcp.WithString("order_id",
			mcp.Required(),
			mcp.Description("ID of the order to cancel."),
		),
		mcp.WithString("reason",
			mcp.Description("Reason for the cancellation."),
			mcp.Enum("customer", "inventory", "fraud", "declined", "other"),
		),
		mcp.WithBoolean("email",
			mcp.Description("Whether to send a cancellation email to the customer."),
		),
	)
}

// CancelOrderHandler posts to the cancel sub-resource. Unlike the create
// endpoints, the cancel body is sent unwrapped.
func CancelOrderHandler(client *shopify.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if _, err := request.RequireString("order_id"); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		orderID, payload := shopify.SplitID(request.GetArguments(), "order_id")

		raw, err := client.Post(ctx, "orders/"+orderID+"/cancel", payload)
		if err != nil {
			return nil, err
		}

		return jsonResult(raw)
	}
}

// Tool registrar
type CancelOrderTool struct{}

func (t *CancelOrderTool) GetTool() mcp.Tool {
	return NewCancelOrderTool()
}

func (t *CancelOrderTool) GetHandler(client *shopify.Client) server.ToolHandlerFunc {
	return CancelOrderHandler(client)
}

func init() {
	registry.RegisterTool(&CancelOrderTool{})
}
