package tools

import (
	"context"

	"github.com/tailabs/mcp-shopify/internal/registry"
	"github.com/tailabs/mcp-shopify/internal/shopify"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func NewGetInventoryLevelsTool() mcp.Tool {
	return mcp.NewTool("get_inventory_levels",
		mcp.WithDescription("Retrieve inventory levels. Shopify requires at least one of inventory_item_ids or location_ids."),
		mcp.WithString("inventory_item_ids",
			mcp.Description("Comma-separated list of inventory item IDs to filter by."),
		),
		mcp.WithString("location_ids",
			mcp.Description("Comma-separated list of location IDs to filter by."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results to return, up to 250."),
		),
	)
}

func GetInventoryLevelsHandler(client *shopify.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := shopify.EncodeQuery(request.GetArguments(),
			"inventory_item_ids", "location_ids", "limit")

		raw, err := client.Get(ctx, "inventory_levels", query)
		if err != nil {
			return nil, err
		}

		return jsonResult(raw)
	}
}

// Tool registrar
type GetInventoryLevelsTool struct{}

func (t *GetInventoryLevelsTool) GetTool() mcp.Tool {
	return NewGetInventoryLevelsTool()
}

func (t *GetInventoryLevelsTool) GetHandler(client *shopify.Client) server.ToolHandlerFunc {
	return GetInventoryLevelsHandler(client)
}

func init() {
	registry.RegisterTool(&GetInventoryLevelsTool{})
}
