package tools

import (
	"context"

	"github.com/tailabs/mcp-shopify/internal/registry"
	"github.com/tailabs/mcp-shopify/internal/shopify"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func NewGetPriceRulesTool() mcp.Tool {
	return mcp.NewTool("get_price_rules",
		mcp.WithDescription("Retrieve a list of price rules, the parent resource of discount codes."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results to return, up to 250."),
		),
		mcp.WithString("since_id",
			mcp.Description("Return only price rules with an ID greater than this value."),
		),
	)
}

func GetPriceRulesHandler(client *shopify.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := shopify.EncodeQuery(request.GetArguments(), "limit", "since_id")

		raw, err := client.Get(ctx, "price_rules", query)
		if err != nil {
			return nil, err
		}

		return jsonResult(raw)
	}
}

// Tool registrar
type GetPriceRulesTool struct{}

func (t *GetPriceRulesTool) GetTool() mcp.Tool {
	return NewGetPriceRulesTool()
}

func (t *GetPriceRulesTool) GetHandler(client *shopify.Client) server.ToolHandlerFunc {
	return GetPriceRulesHandler(client)
}

func init() {
	registry.RegisterTool(&GetPriceRulesTool{})
}
