package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/aretw0/davnotes/pkg/core"
)

// EnsureRootTool creates /Notes when it is missing.
type EnsureRootTool struct {
	svc *core.Service
}

// NewEnsureRootTool creates a new EnsureRootTool.
func NewEnsureRootTool(svc *core.Service) *EnsureRootTool {
	return &EnsureRootTool{svc: svc}
}

// Handle returns the tool definition.
func (t *EnsureRootTool) Handle() mcp.Tool {
	return mcp.NewTool("ensure_notes_folder_exists",
		mcp.WithDescription("Ensure that the /Notes folder exists. Creates it if it doesn't exist."),
		mcp.WithIdempotentHintAnnotation(true),
	)
}

// Handler ensures the root directory.
func (t *EnsureRootTool) Handler(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return textResult(t.svc.EnsureRoot(ctx))
}
