package tools

import (
	"context"

	"github.com/tailabs/mcp-shopify/internal/registry"
	"github.com/tailabs/mcp-shopify/internal/shopify"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewCreateProductTool creates the tool for adding a new product.
func NewCreateProductTool() mcp.Tool {
	return mcp.NewTool("create_product",
		mcp.WithDescription("Create a new product in the shop."),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Title of the new product."),
		),
		mcp.WithString("body_html",
			mcp.Description("Product description as HTML."),
		),
		mcp.WithString("vendor",
			mcp.Description("Name of the product's vendor."),
		),
		mcp.WithString("product_type",
			mcp.Description("Categorization of the product, e.g. 'Snowboard'."),
		),
		mcp.WithString("tags",
			mcp.Description("Comma-separated list of tags."),
		),
		mcp.WithString("status",
			mcp.DefaultString("draft"),
			mcp.Description("Status of the product. Shopify defaults new products to draft."),
			mcp.Enum("active", "draft", "archived"),
		),
	)
}

// CreateProductHandler forwards the full argument object wrapped under the
// singular resource key, the Admin API's convention for create endpoints.
func CreateProductHandler(client *shopify.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if _, err := request.RequireString("title"); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		raw, err := client.Post(ctx, "products", shopify.Wrap("product", request.GetArguments()))
		if err != nil {
			return nil, err
		}

		return jsonResult(raw)
	}
}

// Tool registrar
type CreateProductTool struct{}

func (t *CreateProductTool) GetTool() mcp.Tool {
	return NewCreateProductTool()
}

func (t *CreateProductTool) GetHandler(client *shopify.Client) server.ToolHandlerFunc {
	return CreateProductHandler(client)
}

func init() {
	registry.RegisterTool(&CreateProductTool{})
}
