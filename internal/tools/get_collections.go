package tools

import (
	"context"

	"github.com/tailabs/mcp-shopify/internal/registry"
	"github.com/tailabs/mcp-shopify/internal/shopify"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func NewGetCollectionsTool() mcp.Tool {
	return mcp.NewTool("get_collections",
		mcp.WithDescription("Retrieve a list of custom or smart collections."),
		mcp.WithString("collection_type",
			mcp.DefaultString("custom"),
			mcp.Description("Which collection kind to list. Smart collections are rule-driven, custom collections are curated by hand."),
			mcp.Enum("custom", "smart"),
		),
		mcp.WithString("title",
			mcp.Description("Filter results to collections with this title."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results to return, up to 250."),
		),
		mcp.WithString("since_id",
			mcp.Description("Return only collections with an ID greater than this value."),
		),
	)
}

// GetCollectionsHandler picks the remote endpoint from the collection_type
// flag; the Admin API keeps smart and custom collections on separate paths.
func GetCollectionsHandler(client *shopify.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		resource := "custom_collections"
		if request.GetString("collection_type", "custom") == "smart" {
			resource = "smart_collections"
		}

		query := shopify.EncodeQuery(request.GetArguments(), "title", "limit", "since_id")

		raw, err := client.Get(ctx, resource, query)
		if err != nil {
			return nil, err
		}

		return jsonResult(raw)
	}
}

// Tool registrar
type GetCollectionsTool struct{}

func (t *GetCollectionsTool) GetTool() mcp.Tool {
	return NewGetCollectionsTool()
}

func (t *GetCollectionsTool) GetHandler(client *shopify.Client) server.ToolHandlerFunc {
	return GetCollectionsHandler(client)
}

func init() {
	registry.RegisterTool(&GetCollectionsTool{})
}
