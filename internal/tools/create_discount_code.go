package tools

import (
	"context"

	"github.com/tailabs/mcp-shopify/internal/registry"
	"github.com/tailabs/mcp-shopify/internal/shopify"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func NewCreateDiscountCodeTool() mcp.Tool {
	return mcp.NewTool("create_discount_code",
		mcp.WithDescription("Create a discount code under an existing price rule."),
		mcp.WithString("price_rule_id",
			mcp.Required(),
			mcp.Description("ID of the price rule the code belongs to."),
		),
		mcp.WithString("code",
			mcp.Required(),
			mcp.Description("The code customers enter at checkout, e.g. 'SUMMERSALE10'."),
		),
	)
}

// CreateDiscountCodeHandler posts to the price rule's discount_codes
// sub-resource, with the parent price_rule_id stripped from the wrapped body.
func CreateDiscountCodeHandler(client *shopify.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if _, err := request.RequireString("price_rule_id"); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if _, err := request.RequireString("code"); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		priceRuleID, payload := shopify.SplitID(request.GetArguments(), "price_rule_id")

		raw, err := client.Post(ctx, "price_rules/"+priceRuleID+"/discount_codes", shopify.Wrap("discount_code", payload))
		if err != nil {
			return nil, err
		}

		return jsonResult(raw)
	}
}

// Tool registrar
type CreateDiscountCodeTool struct{}

func (t *CreateDiscountCodeTool) GetTool() mcp.Tool {
	return NewCreateDiscountCodeTool()
}

func (t *CreateDiscountCodeTool) GetHandler(client *shopify.Client) server.ToolHandlerFunc {
	return CreateDiscountCodeHandler(client)
}

func init() {
	registry.RegisterTool(&CreateDiscountCodeTool{})
}
