package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/aretw0/davnotes/pkg/core"
)

// CheckLoginTool verifies that the WebDAV credentials work.
type CheckLoginTool struct {
	svc *core.Service
}

// NewCheckLoginTool creates a new CheckLoginTool.
func NewCheckLoginTool(svc *core.Service) *CheckLoginTool {
	return &CheckLoginTool{svc: svc}
}

// Handle returns the tool definition.
func (t *CheckLoginTool) Handle() mcp.Tool {
	return mcp.NewTool("check_webdav_login",
		mcp.WithDescription("Check if WebDAV login is successful. Returns a message indicating success or failure."),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

// Handler checks the connection.
func (t *CheckLoginTool) Handler(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return textResult(t.svc.CheckConnection(ctx))
}
