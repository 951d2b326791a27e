package platform

import (
	"fmt"

	"github.com/aretw0/davnotes/pkg/adapters/memory"
	"github.com/aretw0/davnotes/pkg/adapters/webdav"
	"github.com/aretw0/davnotes/pkg/config"
	"github.com/aretw0/davnotes/pkg/core"
)

// Init builds the file client described by cfg.
// It returns the injected client unchanged when WithClient is used.
func Init(cfg config.Config, opts ...Option) (core.FileClient, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return initClient(cfg, o)
}

func initClient(cfg config.Config, o *options) (core.FileClient, error) {
	if o.client != nil {
		return o.client, nil
	}
	if o.adapter != "" {
		cfg.Adapter = o.adapter
	}
	if o.timeout > 0 {
		cfg.Timeout = o.timeout
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	switch cfg.Adapter {
	case config.AdapterWebDAV:
		return initWebDAV(cfg, o), nil
	case config.AdapterMemory:
		o.logger.Debug("using in-memory store, nothing will be persisted")
		return memory.NewClient(), nil
	default:
		return nil, fmt.Errorf("unknown adapter: %s", cfg.Adapter)
	}
}

// initWebDAV handles the initialization logic for the WebDAV adapter.
func initWebDAV(cfg config.Config, o *options) core.FileClient {
	url := cfg.BaseURL()
	o.logger.Debug("connecting to webdav", "url", url, "username", cfg.Username)
	return webdav.NewClient(webdav.Config{
		URL:      url,
		Username: cfg.Username,
		Password: cfg.Password,
		Timeout:  cfg.Timeout,
		Logger:   o.logger,
	})
}
