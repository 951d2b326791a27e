// Package tools exposes the note store to MCP hosts.
//
// Each tool lives in its own file and implements Tool. Failures never escape as
// protocol errors: they are returned as tool results flagged IsError, with the
// text "<kind>: <message>" so an agent can tell not_found from auth problems.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/davnotes/pkg/core"
)

// Tool is a single MCP tool backed by the note Service.
type Tool interface {
	Handle() mcp.Tool
	Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// All returns every tool in registration order.
func All(svc *core.Service) []Tool {
	return []Tool{
		NewCheckLoginTool(svc),
		NewEnsureRootTool(svc),
		NewListUncategorizedTool(svc),
		NewListCategoriesTool(svc),
		NewListNotesTool(svc),
		NewReadNoteTool(svc),
		NewEditNoteTool(svc),
		NewCreateNoteTool(svc),
		NewDeleteNoteTool(svc),
		NewRenameNoteTool(svc),
		NewCreateCategoryTool(svc),
		NewEditCategoryTool(svc),
		NewDeleteCategoryTool(svc),
		NewSearchNotesTool(svc),
		NewStatusTool(svc),
	}
}

// NewServer registers every tool on a new MCP server.
func NewServer(svc *core.Service, version string, logger *slog.Logger) *server.MCPServer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := server.NewMCPServer("notes-mcp", version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	for _, t := range All(svc) {
		s.AddTool(t.Handle(), logged(t, logger))
	}
	return s
}

// logged wraps a tool handler with a debug line per call.
func logged(t Tool, logger *slog.Logger) server.ToolHandlerFunc {
	name := t.Handle().Name
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		res, err := t.Handler(ctx, request)
		isErr := err != nil || (res != nil && res.IsError)
		logger.Debug("tool call", "tool", name, "error", isErr, "duration", time.Since(start))
		return res, err
	}
}

// errorResult turns a Service failure into an IsError tool result.
func errorResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("%s: %v", core.KindOf(err), err))
}

// requireString reads a required argument, reporting a missing one as invalid.
func requireString(request mcp.CallToolRequest, key string) (string, *mcp.CallToolResult) {
	v, err := request.RequireString(key)
	if err != nil || v == "" {
		return "", mcp.NewToolResultError(fmt.Sprintf("%s: missing required parameter: %s", core.KindInvalid, key))
	}
	return v, nil
}

// textResult returns msg or the error as a tool result.
func textResult(msg string, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		return errorResult(err), nil
	}
	return mcp.NewToolResultText(msg), nil
}

// jsonResult encodes v as the tool result text.
func jsonResult(v any, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		return errorResult(err), nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return errorResult(core.NewError(core.KindLocalIO, "encode", "", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func categoryParam() mcp.ToolOption {
	return mcp.WithString("category",
		mcp.Description("Optional category folder. If omitted, the note lives directly in /Notes."),
	)
}
