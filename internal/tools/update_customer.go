package tools

import (
	"context"

	"github.com/tailabs/mcp-shopify/internal/registry"
	"github.com/tailabs/mcp-shopify/internal/shopify"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func NewUpdateCustomerTool() mcp.Tool {
	return mcp.NewTool("update_customer",
		mcp.WithDescription("Update an existing customer."),
		mcp.WithString("customer_id",
			mcp.Required(),
			mcp.Description("ID of the customer to update."),
		),
		mcp.WithString("email",
			mcp.Description("New email address for the customer."),
		),
		mcp.WithString("first_name",
			mcp.Description("New first name."),
		),
		mcp.WithString("last_name",
			mcp.Description("New last name."),
		),
		mcp.WithString("phone",
			mcp.Description("New phone number in E.164 format."),
		),
		mcp.WithString("tags",
			mcp.Description("New comma-separated list of tags, replacing the existing ones."),
		),
		mcp.WithString("note",
			mcp.Description("New staff-visible note."),
		),
	)
}

func UpdateCustomerHandler(client *shopify.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if _, err := request.RequireString("customer_id"); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		customerID, payload := shopify.SplitID(request.GetArguments(), "customer_id")

		raw, err := client.Put(ctx, "customers/"+customerID, shopify.Wrap("customer", payload))
		if err != nil {
			return nil, err
		}

		return jsonResult(raw)
	}
}

// Tool registrar
type UpdateCustomerTool struct{}

func (t *UpdateCustomerTool) GetTool() mcp.Tool {
	return NewUpdateCustomerTool()
}

func (t *UpdateCustomerTool) GetHandler(client *shopify.Client) server.ToolHandlerFunc {
	return UpdateCustomerHandler(client)
}

func init() {
	registry.RegisterTool(&UpdateCustomerTool{})
}
