package tools

import (
	"context"

	"github.com/tailabs/mcp-shopify/internal/registry"
	"github.com/tailabs/mcp-shopify/internal/shopify"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/samber/lo"
)

// NewCreateCollectionTool creates the tool for adding a collection. A single
// tool covers both smart and custom collections; the endpoint is chosen from
// the arguments.
func NewCreateCollectionTool() mcp.Tool {
	return mcp.NewTool("create_collection",
		mcp.WithDescription("Create a new collection. Providing rules creates a smart collection, otherwise collection_type decides."),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Title of the new collection."),
		),
		mcp.WithString("body_html",
			mcp.Description("Collection description as HTML."),
		),
		mcp.WithString("collection_type",
			mcp.DefaultString("custom"),
			mcp.Description("Which collection kind to create when no rules are given."),
			mcp.Enum("custom", "smart"),
		),
		mcp.WithArray("rules",
			mcp.Description("Smart collection rules, each an object with column, relation and condition. Example: [{\"column\": \"tag\", \"relation\": \"equals\", \"condition\": \"sale\"}]"),
		),
		mcp.WithBoolean("disjunctive",
			mcp.Description("Whether products must match any rule rather than all rules. Smart collections only."),
		),
	)
}

// CreateCollectionHandler routes to the smart-collection endpoint whenever a
// rules argument is present, regardless of collection_type; otherwise the
// collection_type flag decides, defaulting to custom. The routing-only
// collection_type flag is stripped from the body.
func CreateCollectionHandler(client *shopify.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if _, err := request.RequireString("title"); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		args := request.GetArguments()
		payload := lo.OmitByKeys(args, []string{"collection_type"})

		_, hasRules := args["rules"]
		smart := hasRules || args["collection_type"] == "smart"

		resource, key := "custom_collections", "custom_collection"
		if smart {
			resource, key = "smart_collections", "smart_collection"
		}

		raw, err := client.Post(ctx, resource, shopify.Wrap(key, payload))
		if err != nil {
			return nil, err
		}

		return jsonResult(raw)
	}
}

// Tool registrar
type CreateCollectionTool struct{}

func (t *CreateCollectionTool) GetTool() mcp.Tool {
	return NewCreateCollectionTool()
}

func (t *CreateCollectionTool) GetHandler(client *shopify.Client) server.ToolHandlerFunc {
	return CreateCollectionHandler(client)
}

func init() {
	registry.RegisterTool(&CreateCollectionTool{})
}
