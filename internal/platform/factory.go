package platform

import (
	"context"
	"fmt"

	"github.com/aretw0/davnotes/pkg/config"
	"github.com/aretw0/davnotes/pkg/core"
)

// New builds the note Service once for the lifetime of the process.
//
//	svc, err := davnotes.New(ctx, cfg, davnotes.WithLogger(logger))
func New(ctx context.Context, cfg config.Config, opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	client, err := initClient(cfg, o)
	if err != nil {
		return nil, err
	}

	svcOpts := []core.ServiceOption{core.WithServiceLogger(o.logger)}
	if o.tempDir != "" {
		svcOpts = append(svcOpts, core.WithTempDir(o.tempDir))
	}
	service := core.NewService(client, svcOpts...)

	if o.autoRoot {
		if _, err := service.EnsureRoot(ctx); err != nil {
			return nil, fmt.Errorf("failed to prepare %s: %w", core.RootDir, err)
		}
	}

	return service, nil
}
