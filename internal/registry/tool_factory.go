package registry

import (
	"github.com/tailabs/mcp-shopify/internal/shopify"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ToolRegistrar is implemented by every tool. Handlers are built around the
// shared Admin API client rather than ambient state, so tests can point the
// whole catalog at a fake server.
type ToolRegistrar interface {
	GetTool() mcp.Tool
	GetHandler(client *shopify.Client) server.ToolHandlerFunc
}

var globalToolRegistry = make([]ToolRegistrar, 0)

func RegisterTool(tool ToolRegistrar) {
	globalToolRegistry = append(globalToolRegistry, tool)
}

// Tools returns all registered tools in registration order.
func Tools() []ToolRegistrar {
	return globalToolRegistry
}

func RegisterAllTools(s *server.MCPServer, client *shopify.Client) {
	for _, tool := range globalToolRegistry {
		s.AddTool(tool.GetTool(), tool.GetHandler(client))
	}
}
