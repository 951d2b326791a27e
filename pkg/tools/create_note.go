package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/aretw0/davnotes/pkg/core"
)

// CreateNoteTool uploads a new note.
type CreateNoteTool struct {
	svc *core.Service
}

// NewCreateNoteTool creates a new CreateNoteTool.
func NewCreateNoteTool(svc *core.Service) *CreateNoteTool {
	return &CreateNoteTool{svc: svc}
}

// Handle returns the tool definition.
func (t *CreateNoteTool) Handle() mcp.Tool {
	return mcp.NewTool("create_note",
		mcp.WithDescription("Create a new Markdown (.md) note. Without a category it is stored in /Notes/<filename>, "+
			"otherwise in /Notes/<category>/<filename>; the category folder is created if needed."),
		mcp.WithString("filename", mcp.Required(), mcp.Description("Name of the note file, must end in .md")),
		mcp.WithString("content", mcp.Required(), mcp.Description("Markdown content of the note")),
		categoryParam(),
	)
}

// Handler creates the note.
func (t *CreateNoteTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filename, bad := requireString(request, "filename")
	if bad != nil {
		return bad, nil
	}
	content, err := request.RequireString("content")
	if err != nil {
		return errorResult(core.NewError(core.KindInvalid, "create_note", "", err)), nil
	}
	return textResult(t.svc.CreateNote(ctx, filename, content, request.GetString("category", "")))
}
