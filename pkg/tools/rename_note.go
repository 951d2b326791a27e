package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/aretw0/davnotes/pkg/core"
)

// RenameNoteTool renames a note within its category.
type RenameNoteTool struct {
	svc *core.Service
}

// NewRenameNoteTool creates a new RenameNoteTool.
func NewRenameNoteTool(svc *core.Service) *RenameNoteTool {
	return &RenameNoteTool{svc: svc}
}

// Handle returns the tool definition.
func (t *RenameNoteTool) Handle() mcp.Tool {
	return mcp.NewTool("rename_note",
		mcp.WithDescription("Rename a Markdown (.md) note inside /Notes or a category. Overwrites the target if it already exists."),
		mcp.WithString("filename", mcp.Required(), mcp.Description("Current name of the note file")),
		mcp.WithString("new_filename", mcp.Required(), mcp.Description("New name, must end in .md")),
		categoryParam(),
		mcp.WithDestructiveHintAnnotation(true),
	)
}

// Handler renames the note.
func (t *RenameNoteTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filename, bad := requireString(request, "filename")
	if bad != nil {
		return bad, nil
	}
	newFilename, bad := requireString(request, "new_filename")
	if bad != nil {
		return bad, nil
	}
	return textResult(t.svc.RenameNote(ctx, filename, newFilename, request.GetString("category", "")))
}
