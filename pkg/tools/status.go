package tools

import (
	"context"

	"github.com/aretw0/introspection"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/aretw0/davnotes/pkg/core"
)

// StatusTool reports the introspection state of the store.
type StatusTool struct {
	svc *core.Service
}

// NewStatusTool creates a new StatusTool.
func NewStatusTool(svc *core.Service) *StatusTool {
	return &StatusTool{svc: svc}
}

// Handle returns the tool definition.
func (t *StatusTool) Handle() mcp.Tool {
	return mcp.NewTool("store_status",
		mcp.WithDescription("Report which backend is in use and per-operation call and failure counters."),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

// Handler returns the state as JSON.
func (t *StatusTool) Handler(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(Snapshot(t.svc), nil)
}

// Snapshot collects the state of the service and its client.
func Snapshot(svc *core.Service) map[string]any {
	out := map[string]any{"service": svc.State()}
	if intro, ok := svc.Client().(introspection.Introspectable); ok {
		out["client"] = intro.State()
	}
	return out
}
