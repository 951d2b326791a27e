// Package davnotes is the Composition Root for the davnotes application.
//
// It connects the note store (Domain Layer) with the remote file adapters
// (Persistence Layer) using the Hexagonal Architecture pattern.
//
// Notes are Markdown files kept on a WebDAV server under /Notes. A category is
// a single directory level below /Notes; there are no nested categories.
//
// Features:
//
//   - **Hexagonal Architecture**: the core Service only talks to core.FileClient.
//   - **WebDAV Adapter**: Nextcloud, ownCloud and any RFC 4918 server via gowebdav.
//   - **Memory Adapter**: an in-process store for tests and dry runs.
//   - **Typed Errors**: every operation fails with a *core.Error carrying a Kind.
//   - **MCP Tools**: the operations are exposed to agent hosts by pkg/tools.
//
// Usage:
//
//	cfg, err := config.Load(config.Sources{DotEnv: ".env"})
//
//	svc, err := davnotes.New(ctx, cfg,
//		davnotes.WithAutoRoot(true),
//		davnotes.WithLogger(logger),
//	)
//
//	msg, err := svc.CreateNote(ctx, "todo.md", "- buy milk", "Work")
package davnotes
