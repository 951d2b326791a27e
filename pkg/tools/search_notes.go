package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/aretw0/davnotes/pkg/core"
)

// SearchNotesTool finds notes by glob across every category.
type SearchNotesTool struct {
	svc *core.Service
}

// NewSearchNotesTool creates a new SearchNotesTool.
func NewSearchNotesTool(svc *core.Service) *SearchNotesTool {
	return &SearchNotesTool{svc: svc}
}

// Handle returns the tool definition.
func (t *SearchNotesTool) Handle() mcp.Tool {
	return mcp.NewTool("search_notes",
		mcp.WithDescription(`Find notes whose path matches a glob. Paths are "note.md" for uncategorized notes `+
			`and "category/note.md" otherwise; "**" matches across the category level, e.g. "**/todo*.md".`),
		mcp.WithString("pattern", mcp.Required(), mcp.Description("doublestar glob pattern")),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

// Handler searches the notes.
func (t *SearchNotesTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pattern, bad := requireString(request, "pattern")
	if bad != nil {
		return bad, nil
	}
	return jsonResult(t.svc.SearchNotes(ctx, pattern))
}
