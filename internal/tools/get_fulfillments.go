package tools

import (
	"context"

	"github.com/tailabs/mcp-shopify/internal/registry"
	"github.com/tailabs/mcp-shopify/internal/shopify"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func NewGetFulfillmentsTool() mcp.Tool {
	return mcp.NewTool("get_fulfillments",
		mcp.WithDescription("Retrieve the fulfillments associated with an order."),
		mcp.WithString("order_id",
			mcp.Required(),
			mcp.Description("ID of the order whose fulfillments to list."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results to return, up to 250."),
		),
		mcp.WithString("since_id",
			mcp.Description("Return only fulfillments with an ID greater than this value."),
		),
	)
}

func GetFulfillmentsHandler(client *shopify.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if _, err := request.RequireString("order_id"); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		orderID, rest := shopify.SplitID(request.GetArguments(), "order_id")
		query := shopify.EncodeQuery(rest, "limit", "since_id")

		raw, err := client.Get(ctx, "orders/"+orderID+"/fulfillments", query)
		if err != nil {
			return nil, err
		}

		return jsonResult(raw)
	}
}

// Tool registrar
type GetFulfillmentsTool struct{}

func (t *GetFulfillmentsTool) GetTool() mcp.Tool {
	return NewGetFulfillmentsTool()
}

func (t *GetFulfillmentsTool) GetHandler(client *shopify.Client) server.ToolHandlerFunc {
	return GetFulfillmentsHandler(client)
}

func init() {
	registry.RegisterTool(&GetFulfillmentsTool{})
}
