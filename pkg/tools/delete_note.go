package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/aretw0/davnotes/pkg/core"
)

// DeleteNoteTool permanently deletes a note.
type DeleteNoteTool struct {
	svc *core.Service
}

// NewDeleteNoteTool creates a new DeleteNoteTool.
func NewDeleteNoteTool(svc *core.Service) *DeleteNoteTool {
	return &DeleteNoteTool{svc: svc}
}

// Handle returns the tool definition.
func (t *DeleteNoteTool) Handle() mcp.Tool {
	return mcp.NewTool("delete_note",
		mcp.WithDescription("Delete a note file inside /Notes."),
		mcp.WithString("filename", mcp.Required(), mcp.Description("Name of the note file")),
		categoryParam(),
		mcp.WithDestructiveHintAnnotation(true),
	)
}

// Handler deletes the note.
func (t *DeleteNoteTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filename, bad := requireString(request, "filename")
	if bad != nil {
		return bad, nil
	}
	return textResult(t.svc.DeleteNote(ctx, filename, request.GetString("category", "")))
}
