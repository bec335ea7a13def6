package tools

import (
	"bytes"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// jsonResult returns the raw Admin API response pretty-printed as a single
// text content block. Nothing is filtered or truncated; page_info cursors
// stay in the payload for the caller to interpret.
func jsonResult(raw json.RawMessage) (*mcp.CallToolResult, error) {
	var indented bytes.Buffer
	if err := json.Indent(&indented, raw, "", "  "); err != nil {
		return mcp.NewToolResultText(string(raw)), nil
	}
	return mcp.NewToolResultText(indented.String()), nil
}
