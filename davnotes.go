package davnotes

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/davnotes/internal/platform"
	"github.com/aretw0/davnotes/pkg/config"
	"github.com/aretw0/davnotes/pkg/core"
)

// --- Configuration ---

// Option defines a functional option for configuring davnotes.
type Option = platform.Option

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithClient allows injecting a custom file client.
func WithClient(client core.FileClient) Option {
	return platform.WithClient(client)
}

// WithAdapter allows specifying the storage adapter to use by name.
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return platform.WithTimeout(d)
}

// WithAutoRoot creates the /Notes directory on startup when missing.
func WithAutoRoot(auto bool) Option {
	return platform.WithAutoRoot(auto)
}

// WithTempDir sets where transfer files are staged.
func WithTempDir(dir string) Option {
	return platform.WithTempDir(dir)
}

// --- Factory ---

// New creates the note Service. Build it once and reuse it for the process lifetime.
func New(ctx context.Context, cfg config.Config, opts ...Option) (*core.Service, error) {
	return platform.New(ctx, cfg, opts...)
}

// Init builds only the file client described by cfg.
func Init(cfg config.Config, opts ...Option) (core.FileClient, error) {
	return platform.Init(cfg, opts...)
}

// FindConfig looks upwards from dir for a davnotes.yaml file.
func FindConfig(dir string) (string, error) {
	return platform.FindConfig(dir)
}
