package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/aretw0/davnotes/pkg/core"
)

// ListNotesTool lists the notes of one category.
type ListNotesTool struct {
	svc *core.Service
}

// NewListNotesTool creates a new ListNotesTool.
func NewListNotesTool(svc *core.Service) *ListNotesTool {
	return &ListNotesTool{svc: svc}
}

// Handle returns the tool definition.
func (t *ListNotesTool) Handle() mcp.Tool {
	return mcp.NewTool("list_notes_of_a_category",
		mcp.WithDescription("List all notes (.md) in a given category inside /Notes. Returns a JSON array of filenames."),
		mcp.WithString("category_name",
			mcp.Required(),
			mcp.Description("The subfolder name inside /Notes"),
		),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

// Handler lists the notes in the category.
func (t *ListNotesTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category, bad := requireString(request, "category_name")
	if bad != nil {
		return bad, nil
	}
	return jsonResult(t.svc.ListNotes(ctx, category))
}
