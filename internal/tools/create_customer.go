package tools

import (
	"context"

	"github.com/tailabs/mcp-shopify/internal/registry"
	"github.com/tailabs/mcp-shopify/internal/shopify"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func NewCreateCustomerTool() mcp.Tool {
	return mcp.NewTool("create_customer",
		mcp.WithDescription("Create a new customer in the shop."),
		mcp.WithString("email",
			mcp.Required(),
			mcp.Description("Email address of the customer."),
		),
		mcp.WithString("first_name",
			mcp.Description("First name of the customer."),
		),
		mcp.WithString("last_name",
			mcp.Description("Last name of the customer."),
		),
		mcp.WithString("phone",
			mcp.Description("Phone number of the customer in E.164 format."),
		),
		mcp.WithString("tags",
			mcp.Description("Comma-separated list of tags to attach to the customer."),
		),
		mcp.WithString("note",
			mcp.Description("A note about the customer, visible to staff."),
		),
	)
}

func CreateCustomerHandler(client *shopify.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if _, err := request.RequireString("email"); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		raw, err := client.Post(ctx, "customers", shopify.Wrap("customer", request.GetArguments()))
		if err != nil {
			return nil, err
		}

		return jsonResult(raw)
	}
}

// Tool registrar
type CreateCustomerTool struct{}

func (t *CreateCustomerTool) GetTool() mcp.Tool {
	return NewCreateCustomerTool()
}

func (t *CreateCustomerTool) GetHandler(client *shopify.Client) server.ToolHandlerFunc {
	return CreateCustomerHandler(client)
}

func init() {
	registry.RegisterTool(&CreateCustomerTool{})
}
