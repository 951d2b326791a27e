package platform_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/davnotes/internal/platform"
	"github.com/aretw0/davnotes/pkg/adapters/memory"
	"github.com/aretw0/davnotes/pkg/adapters/webdav"
	"github.com/aretw0/davnotes/pkg/config"
	"github.com/aretw0/davnotes/pkg/core"
)

func TestInit(t *testing.T) {
	t.Run("Builds WebDAV Client From Config", func(t *testing.T) {
		cfg := config.Default()
		cfg.Hostname = "https://cloud.example.com/remote.php/dav/files/"
		cfg.Username = "alice"

		client, err := platform.Init(cfg)
		require.NoError(t, err)

		dav, ok := client.(*webdav.Client)
		require.True(t, ok, "expected webdav client, got %T", client)
		state := dav.State().(webdav.ClientState)
		assert.Equal(t, "https://cloud.example.com/remote.php/dav/files/alice", state.Host)
	})

	t.Run("Rejects WebDAV Without Hostname", func(t *testing.T) {
		_, err := platform.Init(config.Default())
		assert.ErrorContains(t, err, "hostname is required")
	})

	t.Run("Adapter Option Overrides Config", func(t *testing.T) {
		client, err := platform.Init(config.Default(), platform.WithAdapter(config.AdapterMemory))
		require.NoError(t, err)
		assert.IsType(t, &memory.Client{}, client)
	})

	t.Run("Injected Client Wins", func(t *testing.T) {
		injected := memory.NewClient()
		client, err := platform.Init(config.Config{Adapter: "bogus"}, platform.WithClient(injected))
		require.NoError(t, err)
		assert.Same(t, injected, client)
	})

	t.Run("Unknown Adapter", func(t *testing.T) {
		_, err := platform.Init(config.Config{Adapter: "ftp"})
		assert.ErrorContains(t, err, "unknown adapter: ftp")
	})
}

func TestNew(t *testing.T) {
	ctx := context.Background()

	t.Run("AutoRoot Creates Notes Directory", func(t *testing.T) {
		client := memory.NewClient()
		svc, err := platform.New(ctx, config.Default(), platform.WithClient(client), platform.WithAutoRoot(true))
		require.NoError(t, err)
		require.NotNil(t, svc)

		exists, err := client.Exists(ctx, core.RootDir)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("AutoRoot Surfaces Connection Failure", func(t *testing.T) {
		client := memory.NewClient()
		client.SetOffline(true)

		_, err := platform.New(ctx, config.Default(), platform.WithClient(client), platform.WithAutoRoot(true))
		require.Error(t, err)
		assert.Equal(t, core.KindConnection, core.KindOf(err))
	})

	t.Run("Without AutoRoot Nothing Is Created", func(t *testing.T) {
		client := memory.NewClient()
		_, err := platform.New(ctx, config.Default(), platform.WithClient(client))
		require.NoError(t, err)

		exists, err := client.Exists(ctx, core.RootDir)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
