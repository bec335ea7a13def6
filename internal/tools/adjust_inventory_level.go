package tools

import (
	"context"

	"github.com/tailabs/mcp-shopify/internal/registry"
	"github.com/tailabs/mcp-shopify/internal/shopify"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewAdjustInventoryLevelTool creates the tool for relative inventory
// adjustments at a location.
func NewAdjustInventoryLevelTool() mcp.Tool {
	return mcp.NewTool("adjust_inventory_level",
		mcp.WithDescription("Adjust the available quantity of an inventory item at a location by a relative amount."),
		mcp.WithNumber("inventory_item_id",
			mcp.Required(),
			mcp.Description("ID of the inventory item."),
		),
		mcp.WithNumber("location_id",
			mcp.Required(),
			mcp.Description("ID of the location holding the inventory."),
		),
		mcp.WithNumber("available_adjustment",
			mcp.Required(),
			mcp.Description("Amount to adjust the available quantity by, negative to subtract."),
		),
	)
}

// AdjustInventoryLevelHandler posts to the adjust endpoint. The body is sent
// unwrapped; this endpoint takes no singular resource key.
func AdjustInventoryLevelHandler(client *shopify.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if _, err := request.RequireFloat("inventory_item_id"); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if _, err := request.RequireFloat("location_id"); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if _, err := request.RequireFloat("available_adjustment"); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		raw, err := client.Post(ctx, "inventory_levels/adjust", request.GetArguments())
		if err != nil {
			return nil, err
		}

		return jsonResult(raw)
	}
}

// Tool registrar
type AdjustInventoryLevelTool struct{}

func (t *AdjustInventoryLevelTool) GetTool() mcp.Tool {
	return NewAdjustInventoryLevelTool()
}

func (t *AdjustInventoryLevelTool) GetHandler(client *shopify.Client) server.ToolHandlerFunc {
	return AdjustInventoryLevelHandler(client)
}

func init() {
	registry.RegisterTool(&AdjustInventoryLevelTool{})
}
