package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/aretw0/davnotes/pkg/core"
)

// ReadNoteTool returns the content of a note.
type ReadNoteTool struct {
	svc *core.Service
}

// NewReadNoteTool creates a new ReadNoteTool.
func NewReadNoteTool(svc *core.Service) *ReadNoteTool {
	return &ReadNoteTool{svc: svc}
}

// Handle returns the tool definition.
func (t *ReadNoteTool) Handle() mcp.Tool {
	return mcp.NewTool("read_note",
		mcp.WithDescription("Read a Markdown (.md) note and return its content."),
		mcp.WithString("filename",
			mcp.Required(),
			mcp.Description(`Name of the note file, e.g. "note1.md"`),
		),
		categoryParam(),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

// Handler reads the note.
func (t *ReadNoteTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filename, bad := requireString(request, "filename")
	if bad != nil {
		return bad, nil
	}
	return textResult(t.svc.ReadNote(ctx, filename, request.GetString("category", "")))
}
