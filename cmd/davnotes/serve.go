package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/aretw0/davnotes"
	"github.com/aretw0/davnotes/pkg/tools"
)

var ensureRoot bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the note tools over MCP stdio",
	Long: `Serve exposes every note and category operation as an MCP tool on stdin/stdout.
The WebDAV client is created once and shared by all tool calls.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		svc := openService(ctx, davnotes.WithAutoRoot(ensureRoot))

		version := strings.TrimSpace(davnotes.Version)
		mcpServer := tools.NewServer(svc, version, slog.Default())

		stdio := server.NewStdioServer(mcpServer)
		stdio.SetErrorLogger(log.New(os.Stderr, "mcp: ", log.LstdFlags))

		slog.Info("serving notes over stdio", "version", version)
		if err := stdio.Listen(ctx, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
			fatal("MCP server stopped", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().BoolVar(&ensureRoot, "ensure-root", true, "Create /Notes on startup if it is missing")
}
