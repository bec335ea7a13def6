package tools

import (
	"context"

	"github.com/tailabs/mcp-shopify/internal/registry"
	"github.com/tailabs/mcp-shopify/internal/shopify"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func NewGetProductsTool() mcp.Tool {
	return mcp.NewTool("get_products",
		mcp.WithDescription("Retrieve a list of products from the shop."),
		mcp.WithString("title",
			mcp.Description("Filter results to products with this title."),
		),
		mcp.WithString("status",
			mcp.Description("Filter results by product status."),
			mcp.Enum("active", "draft", "archived"),
		),
		mcp.WithString("collection_id",
			mcp.Description("Filter results to products in the collection with this ID."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results to return, up to 250."),
		),
		mcp.WithString("since_id",
			mcp.Description("Return only products with an ID greater than this value."),
		),
	)
}

func GetProductsHandler(client *shopify.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := shopify.EncodeQuery(request.GetArguments(),
			"title", "status", "collection_id", "limit", "since_id")

		raw, err := client.Get(ctx, "products", query)
		if err != nil {
			return nil, err
		}

		return jsonResult(raw)
	}
}

// Tool registrar
type GetProductsTool struct{}

func (t *GetProductsTool) GetTool() mcp.Tool {
	return NewGetProductsTool()
}

func (t *GetProductsTool) GetHandler(client *shopify.Client) server.ToolHandlerFunc {
	return GetProductsHandler(client)
}

// Auto-register tool
func init() {
	registry.RegisterTool(&GetProductsTool{})
}
