package tools

import (
	"context"

	"github.com/tailabs/mcp-shopify/internal/registry"
	"github.com/tailabs/mcp-shopify/internal/shopify"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewCreatePriceRuleTool creates the tool for defining a price rule. A price
// rule specifies a discount's effect; discount codes are attached to it
// afterwards with create_discount_code.
func NewCreatePriceRuleTool() mcp.Tool {
	return mcp.NewTool("create_price_rule",
		mcp.WithDescription("Create a new price rule describing a discount's effect."),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Title of the price rule."),
		),
		mcp.WithString("target_type",
			mcp.Required(),
			mcp.Description("What the discount applies to."),
			mcp.Enum("line_item", "shipping_line"),
		),
		mcp.WithString("target_selection",
			mcp.Required(),
			mcp.Description("Whether the discount applies to all targets or an entitled subset."),
			mcp.Enum("all", "entitled"),
		),
		mcp.WithString("allocation_method",
			mcp.Required(),
			mcp.Description("How the discount value is allocated over the targets."),
			mcp.Enum("across", "each"),
		),
		mcp.WithString("value_type",
			mcp.Required(),
			mcp.Description("Whether value is a fixed amount or a percentage."),
			mcp.Enum("fixed_amount", "percentage"),
		),
		mcp.WithString("value",
			mcp.Required(),
			mcp.Description("Discount value as a negative decimal string, e.g. '-10.0'."),
		),
		mcp.WithString("customer_selection",
			mcp.Required(),
			mcp.Description("Which customers the rule applies to."),
			mcp.Enum("all", "prerequisite"),
		),
		mcp.WithString("starts_at",
			mcp.Required(),
			mcp.Description("ISO 8601 timestamp from which the rule is active."),
		),
		mcp.WithString("ends_at",
			mcp.Description("ISO 8601 timestamp at which the rule expires."),
		),
	)
}

func CreatePriceRuleHandler(client *shopify.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if _, err := request.RequireString("title"); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		raw, err := client.Post(ctx, "price_rules", shopify.Wrap("price_rule", request.GetArguments()))
		if err != nil {
			return nil, err
		}

		return jsonResult(raw)
	}
}

// Tool registrar
type CreatePriceRuleTool struct{}

func (t *CreatePriceRuleTool) GetTool() mcp.Tool {
	return NewCreatePriceRuleTool()
}

func (t *CreatePriceRuleTool) GetHandler(client *shopify.Client) server.ToolHandlerFunc {
	return CreatePriceRuleHandler(client)
}

func init() {
	registry.RegisterTool(&CreatePriceRuleTool{})
}
