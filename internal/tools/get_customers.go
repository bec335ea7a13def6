package tools

import (
	"context"

	"github.com/tailabs/mcp-shopify/internal/registry"
	"github.com/tailabs/mcp-shopify/internal/shopify"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func NewGetCustomersTool() mcp.Tool {
	return mcp.NewTool("get_customers",
		mcp.WithDescription("Retrieve a list of customers from the shop."),
		mcp.WithString("since_id",
			mcp.Description("Return only customers with an ID greater than this value."),
		),
		mcp.WithString("created_at_min",
			mcp.Description("Return customers created at or after this ISO 8601 timestamp."),
		),
		mcp.WithString("created_at_max",
			mcp.Description("Return customers created at or before this ISO 8601 timestamp."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results to return, up to 250."),
		),
	)
}

func GetCustomersHandler(client *shopify.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := shopify.EncodeQuery(request.GetArguments(),
			"since_id", "created_at_min", "created_at_max", "limit")

		raw, err := client.Get(ctx, "customers", query)
		if err != nil {
			return nil, err
		}

		return jsonResult(raw)
	}
}

// Tool registrar
type GetCustomersTool struct{}

func (t *GetCustomersTool) GetTool() mcp.Tool {
	return NewGetCustomersTool()
}

func (t *GetCustomersTool) GetHandler(client *shopify.Client) server.ToolHandlerFunc {
	return GetCustomersHandler(client)
}

func init() {
	registry.RegisterTool(&GetCustomersTool{})
}
