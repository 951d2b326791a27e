package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/aretw0/davnotes/pkg/core"
)

// ListUncategorizedTool lists notes directly inside /Notes.
type ListUncategorizedTool struct {
	svc *core.Service
}

// NewListUncategorizedTool creates a new ListUncategorizedTool.
func NewListUncategorizedTool(svc *core.Service) *ListUncategorizedTool {
	return &ListUncategorizedTool{svc: svc}
}

// Handle returns the tool definition.
func (t *ListUncategorizedTool) Handle() mcp.Tool {
	return mcp.NewTool("list_uncategorized_notes",
		mcp.WithDescription("List all Markdown (.md) files directly inside /Notes (not in subfolders). Returns a JSON array of filenames."),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

// Handler lists the notes.
func (t *ListUncategorizedTool) Handler(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(t.svc.ListUncategorized(ctx))
}
