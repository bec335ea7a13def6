package tools

import (
	"context"

	"github.com/tailabs/mcp-shopify/internal/registry"
	"github.com/tailabs/mcp-shopify/internal/shopify"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewCreateFulfillmentTool creates the tool for fulfilling an order.
func NewCreateFulfillmentTool() mcp.Tool {
	return mcp.NewTool("create_fulfillment",
		mcp.WithDescription("Create a fulfillment for an order."),
		mcp.WithString("order_id",
			mcp.Required(),
			mcp.Description("ID of the order to fulfill."),
		),
		mcp.WithNumber("location_id",
			mcp.Description("ID of the location fulfilling the order."),
		),
		mcp.WithString("tracking_number",
			mcp.Description("Shipment tracking number."),
		),
		mcp.WithString("tracking_company",
			mcp.Description("Name of the shipping carrier."),
		),
		mcp.WithBoolean("notify_customer",
			mcp.Description("Whether to send a shipping confirmation to the customer."),
		),
	)
}

// CreateFulfillmentHandler posts to the order's fulfillments sub-resource,
// with the parent order_id stripped from the wrapped body.
func CreateFulfillmentHandler(client *shopify.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if _, err := request.RequireString("order_id"); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		orderID, payload := shopify.SplitID(request.GetArguments(), "order_id")

		raw, err := client.Post(ctx, "orders/"+orderID+"/fulfillments", shopify.Wrap("fulfillment", payload))
		if err != nil {
			return nil, err
		}

		return jsonResult(raw)
	}
}

// Tool registrar
type CreateFulfillmentTool struct{}

func (t *CreateFulfillmentTool) GetTool() mcp.Tool {
	return NewCreateFulfillmentTool()
}

func (t *CreateFulfillmentTool) GetHandler(client *shopify.Client) server.ToolHandlerFunc {
	return CreateFulfillmentHandler(client)
}

func init() {
	registry.RegisterTool(&CreateFulfillmentTool{})
}
