package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/davnotes/pkg/core"
)

// options holds the internal configuration for the davnotes service.
type options struct {
	client   core.FileClient
	logger   *slog.Logger
	adapter  string
	timeout  time.Duration
	autoRoot bool
	tempDir  string
}

// Option defines a functional option for configuring davnotes.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithLogger sets the logger for the service and its adapter.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithClient allows injecting a custom file client (e.g. mock, pre-configured WebDAV).
// If provided, the adapter named in the configuration is not built.
func WithClient(client core.FileClient) Option {
	return func(o *options) {
		o.client = client
	}
}

// WithAdapter overrides the adapter named in the configuration ("webdav" or "memory").
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithTimeout overrides the request timeout from the configuration.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithAutoRoot creates /Notes during construction when it is missing.
func WithAutoRoot(auto bool) Option {
	return func(o *options) {
		o.autoRoot = auto
	}
}

// WithTempDir sets where transfer files are staged. Defaults to os.TempDir.
func WithTempDir(dir string) Option {
	return func(o *options) {
		o.tempDir = dir
	}
}
