package tools

import (
	"context"

	"github.com/tailabs/mcp-shopify/internal/registry"
	"github.com/tailabs/mcp-shopify/internal/shopify"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func NewGetOrdersTool() mcp.Tool {
	return mcp.NewTool("get_orders",
		mcp.WithDescription("Retrieve a list of orders from the shop."),
		mcp.WithString("status",
			mcp.Description("Filter orders by status. Shopify defaults to open when omitted."),
			mcp.Enum("open", "closed", "cancelled", "any"),
		),
		mcp.WithString("financial_status",
			mcp.Description("Filter orders by financial status, e.g. 'paid' or 'refunded'."),
		),
		mcp.WithString("fulfillment_status",
			mcp.Description("Filter orders by fulfillment status, e.g. 'shipped' or 'unshipped'."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results to return, up to 250."),
		),
		mcp.WithString("since_id",
			mcp.Description("Return only orders with an ID greater than this value."),
		),
		mcp.WithString("created_at_min",
			mcp.Description("Return orders created at or after this ISO 8601 timestamp."),
		),
		mcp.WithString("created_at_max",
			mcp.Description("Return orders created at or before this ISO 8601 timestamp."),
		),
	)
}

func GetOrdersHandler(client *shopify.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := shopify.EncodeQuery(request.GetArguments(),
			"status", "financial_status", "fulfillment_status",
			"limit", "since_id", "created_at_min", "created_at_max")

		raw, err := client.Get(ctx, "orders", query)
		if err != nil {
			return nil, err
		}

		return jsonResult(raw)
	}
}

// Tool registrar
type GetOrdersTool struct{}

func (t *GetOrdersTool) GetTool() mcp.Tool {
	return NewGetOrdersTool()
}

func (t *GetOrdersTool) GetHandler(client *shopify.Client) server.ToolHandlerFunc {
	return GetOrdersHandler(client)
}

func init() {
	registry.RegisterTool(&GetOrdersTool{})
}
