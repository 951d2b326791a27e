package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/davnotes/pkg/config"
)

func envFrom(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := config.Load(config.Sources{LookupEnv: envFrom(nil)})
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("Layering", func(t *testing.T) {
		dir := t.TempDir()
		file := writeFile(t, dir, "davnotes.yaml", `
hostname: https://file.example/remote.php/dav/files/
username: from-file
password: file-secret
timeout: 5s
adapter: memory
`)
		dotenv := writeFile(t, dir, ".env", "webdav_username=from-dotenv\nWEBDAV_PASSWORD=dotenv-secret\n")

		cfg, err := config.Load(config.Sources{
			File:      file,
			DotEnv:    dotenv,
			LookupEnv: envFrom(map[string]string{"WEBDAV_PASSWORD": "env-secret"}),
		})
		require.NoError(t, err)

		assert.Equal(t, "https://file.example/remote.php/dav/files/", cfg.Hostname)
		assert.Equal(t, "from-dotenv", cfg.Username, ".env overrides the file")
		assert.Equal(t, "env-secret", cfg.Password, "environment overrides .env")
		assert.Equal(t, 5*time.Second, cfg.Timeout)
		assert.Equal(t, config.AdapterMemory, cfg.Adapter)
		assert.True(t, cfg.AppendUsername)
	})

	t.Run("Missing DotEnv Is Ignored", func(t *testing.T) {
		_, err := config.Load(config.Sources{
			DotEnv:    filepath.Join(t.TempDir(), ".env"),
			LookupEnv: envFrom(nil),
		})
		assert.NoError(t, err)
	})

	t.Run("Missing File Fails", func(t *testing.T) {
		_, err := config.Load(config.Sources{
			File:      filepath.Join(t.TempDir(), "nope.yaml"),
			LookupEnv: envFrom(nil),
		})
		assert.Error(t, err)
	})

	t.Run("Typed Variables", func(t *testing.T) {
		cfg, err := config.Load(config.Sources{LookupEnv: envFrom(map[string]string{
			"WEBDAV_APPEND_USERNAME": "false",
			"WEBDAV_TIMEOUT":         "1m",
			"DAVNOTES_LOG_LEVEL":     "debug",
		})})
		require.NoError(t, err)
		assert.False(t, cfg.AppendUsername)
		assert.Equal(t, time.Minute, cfg.Timeout)
		assert.Equal(t, "debug", cfg.LogLevel)

		_, err = config.Load(config.Sources{LookupEnv: envFrom(map[string]string{"WEBDAV_TIMEOUT": "soon"})})
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantErr string
	}{
		{"Memory Needs Nothing", config.Config{Adapter: config.AdapterMemory}, ""},
		{"WebDAV Complete", config.Config{Adapter: config.AdapterWebDAV, Hostname: "https://h/", Username: "u"}, ""},
		{"WebDAV Missing Host", config.Config{Adapter: config.AdapterWebDAV, Username: "u"}, "hostname is required"},
		{"WebDAV Missing User", config.Config{Adapter: config.AdapterWebDAV, Hostname: "https://h/"}, "username is required"},
		{"Unknown Adapter", config.Config{Adapter: "ftp"}, "unknown adapter: ftp"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBaseURL(t *testing.T) {
	cfg := config.Config{Hostname: "https://cloud.example/remote.php/dav/files", Username: "alice", AppendUsername: true}
	assert.Equal(t, "https://cloud.example/remote.php/dav/files/alice", cfg.BaseURL())

	cfg.Hostname += "/"
	assert.Equal(t, "https://cloud.example/remote.php/dav/files/alice", cfg.BaseURL())

	cfg.AppendUsername = false
	assert.Equal(t, "https://cloud.example/remote.php/dav/files/", cfg.BaseURL())
}
