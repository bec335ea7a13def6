package tools

import (
	"context"

	"github.com/tailabs/mcp-shopify/internal/registry"
	"github.com/tailabs/mcp-shopify/internal/shopify"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func NewGetShopTool() mcp.Tool {
	return mcp.NewTool("get_shop",
		mcp.WithDescription("Retrieve the shop's configuration and metadata."),
	)
}

func GetShopHandler(client *shopify.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw, err := client.Get(ctx, "shop", "")
		if err != nil {
			return nil, err
		}

		return jsonResult(raw)
	}
}

// Tool registrar
type GetShopTool struct{}

func (t *GetShopTool) GetTool() mcp.Tool {
	return NewGetShopTool()
}

func (t *GetShopTool) GetHandler(client *shopify.Client) server.ToolHandlerFunc {
	return GetShopHandler(client)
}

func init() {
	registry.RegisterTool(&GetShopTool{})
}
