package tools

import (
	"context"
	"fmt"

	"github.com/tailabs/mcp-shopify/internal/registry"
	"github.com/tailabs/mcp-shopify/internal/shopify"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func NewDeleteProductTool() mcp.Tool {
	return mcp.NewTool("delete_product",
		mcp.WithDescription("Delete a product and all its variants from the shop."),
		mcp.WithString("product_id",
			mcp.Required(),
			mcp.Description("ID of the product to delete."),
		),
	)
}

func DeleteProductHandler(client *shopify.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		productID, err := request.RequireString("product_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if err := client.Delete(ctx, "products/"+productID); err != nil {
			return nil, err
		}

		return mcp.NewToolResultText(fmt.Sprintf("Product %s deleted successfully", productID)), nil
	}
}

// Tool registrar
type DeleteProductTool struct{}

func (t *DeleteProductTool) GetTool() mcp.Tool {
	return NewDeleteProductTool()
}

func (t *DeleteProductTool) GetHandler(client *shopify.Client) server.ToolHandlerFunc {
	return DeleteProductHandler(client)
}

func init() {
	registry.RegisterTool(&DeleteProductTool{})
}
