package tools

import (
	"context"

	"github.com/tailabs/mcp-shopify/internal/registry"
	"github.com/tailabs/mcp-shopify/internal/shopify"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func NewUpdateProductTool() mcp.Tool {
	return mcp.NewTool("update_product",
		mcp.WithDescription("Update an existing product."),
		mcp.WithString("product_id",
			mcp.Required(),
			mcp.Description("ID of the product to update."),
		),
		mcp.WithString("title",
			mcp.Description("New title for the product."),
		),
		mcp.WithString("body_html",
			mcp.Description("New product description as HTML."),
		),
		mcp.WithString("vendor",
			mcp.Description("New vendor name."),
		),
		mcp.WithString("product_type",
			mcp.Description("New product categorization."),
		),
		mcp.WithString("tags",
			mcp.Description("New comma-separated list of tags, replacing the existing ones."),
		),
		mcp.WithString("status",
			mcp.Description("New status of the product."),
			mcp.Enum("active", "draft", "archived"),
		),
	)
}

// UpdateProductHandler addresses the single-product endpoint with the
// identifier and never forwards it in the body.
func UpdateProductHandler(client *shopify.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if _, err := request.RequireString("product_id"); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		productID, payload := shopify.SplitID(request.GetArguments(), "product_id")

		raw, err := client.Put(ctx, "products/"+productID, shopify.Wrap("product", payload))
		if err != nil {
			return nil, err
		}

		return jsonResult(raw)
	}
}

// Tool registrar
type UpdateProductTool struct{}

func (t *UpdateProductTool) GetTool() mcp.Tool {
	return NewUpdateProductTool()
}

func (t *UpdateProductTool) GetHandler(client *shopify.Client) server.ToolHandlerFunc {
	return UpdateProductHandler(client)
}

func init() {
	registry.RegisterTool(&UpdateProductTool{})
}
