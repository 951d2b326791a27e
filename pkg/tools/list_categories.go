package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/aretw0/davnotes/pkg/core"
)

// ListCategoriesTool lists the category directories.
type ListCategoriesTool struct {
	svc *core.Service
}

// NewListCategoriesTool creates a new ListCategoriesTool.
func NewListCategoriesTool(svc *core.Service) *ListCategoriesTool {
	return &ListCategoriesTool{svc: svc}
}

// Handle returns the tool definition.
func (t *ListCategoriesTool) Handle() mcp.Tool {
	return mcp.NewTool("list_categories",
		mcp.WithDescription("List all categories (directories) inside /Notes. Returns a JSON array of names."),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

// Handler lists the categories.
func (t *ListCategoriesTool) Handler(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(t.svc.ListCategories(ctx))
}
