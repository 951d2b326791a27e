package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/aretw0/davnotes/pkg/core"
)

// EditNoteTool replaces the content of a note.
type EditNoteTool struct {
	svc *core.Service
}

// NewEditNoteTool creates a new EditNoteTool.
func NewEditNoteTool(svc *core.Service) *EditNoteTool {
	return &EditNoteTool{svc: svc}
}

// Handle returns the tool definition.
func (t *EditNoteTool) Handle() mcp.Tool {
	return mcp.NewTool("edit_note",
		mcp.WithDescription("Edit a Markdown (.md) note, updating its content. Always overwrites the old file."),
		mcp.WithString("filename", mcp.Required(), mcp.Description("Name of the note file")),
		mcp.WithString("new_content", mcp.Required(), mcp.Description("Full new Markdown content")),
		categoryParam(),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
	)
}

// Handler overwrites the note.
func (t *EditNoteTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filename, bad := requireString(request, "filename")
	if bad != nil {
		return bad, nil
	}
	// Empty content is a legitimate edit, so only presence is checked.
	content, err := request.RequireString("new_content")
	if err != nil {
		return errorResult(core.NewError(core.KindInvalid, "edit_note", "", err)), nil
	}
	return textResult(t.svc.EditNote(ctx, filename, content, request.GetString("category", "")))
}
