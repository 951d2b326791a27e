package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/aretw0/davnotes/pkg/core"
)

// EditCategoryTool renames a category.
type EditCategoryTool struct {
	svc *core.Service
}

// NewEditCategoryTool creates a new EditCategoryTool.
func NewEditCategoryTool(svc *core.Service) *EditCategoryTool {
	return &EditCategoryTool{svc: svc}
}

// Handle returns the tool definition.
func (t *EditCategoryTool) Handle() mcp.Tool {
	return mcp.NewTool("edit_category",
		mcp.WithDescription("Rename an existing category inside /Notes. Fails if the new name is taken."),
		mcp.WithString("old_name", mcp.Required(), mcp.Description("Current name of the category")),
		mcp.WithString("new_name", mcp.Required(), mcp.Description("New name for the category")),
	)
}

// Handler renames the category.
func (t *EditCategoryTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	oldName, bad := requireString(request, "old_name")
	if bad != nil {
		return bad, nil
	}
	newName, bad := requireString(request, "new_name")
	if bad != nil {
		return bad, nil
	}
	return textResult(t.svc.RenameCategory(ctx, oldName, newName))
}
