package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/aretw0/davnotes/pkg/core"
)

// DeleteCategoryTool deletes a category and its notes.
type DeleteCategoryTool struct {
	svc *core.Service
}

// NewDeleteCategoryTool creates a new DeleteCategoryTool.
func NewDeleteCategoryTool(svc *core.Service) *DeleteCategoryTool {
	return &DeleteCategoryTool{svc: svc}
}

// Handle returns the tool definition.
func (t *DeleteCategoryTool) Handle() mcp.Tool {
	return mcp.NewTool("delete_category",
		mcp.WithDescription("Delete a category folder inside /Notes, including every note in it."),
		mcp.WithString("category_name", mcp.Required(), mcp.Description("Name of the category")),
		mcp.WithDestructiveHintAnnotation(true),
	)
}

// Handler deletes the category.
func (t *DeleteCategoryTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, bad := requireString(request, "category_name")
	if bad != nil {
		return bad, nil
	}
	return textResult(t.svc.DeleteCategory(ctx, name))
}
