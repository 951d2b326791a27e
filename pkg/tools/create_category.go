package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/aretw0/davnotes/pkg/core"
)

// CreateCategoryTool creates a category directory.
type CreateCategoryTool struct {
	svc *core.Service
}

// NewCreateCategoryTool creates a new CreateCategoryTool.
func NewCreateCategoryTool(svc *core.Service) *CreateCategoryTool {
	return &CreateCategoryTool{svc: svc}
}

// Handle returns the tool definition.
func (t *CreateCategoryTool) Handle() mcp.Tool {
	return mcp.NewTool("create_category",
		mcp.WithDescription("Create a new category inside /Notes by creating a subdirectory. Existing categories are left untouched."),
		mcp.WithString("category_name", mcp.Required(), mcp.Description("Name of the category")),
		mcp.WithIdempotentHintAnnotation(true),
	)
}

// Handler creates the category.
func (t *CreateCategoryTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, bad := requireString(request, "category_name")
	if bad != nil {
		return bad, nil
	}
	return textResult(t.svc.CreateCategory(ctx, name))
}
