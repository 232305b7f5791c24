package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/topnotch/storefront/pkg/config/configloader"
)

const minimalYAML = `
server:
  port: 8080
  timeout:
    read: 5s
    write: 5s
    idle: 30s
    readHeader: 2s
shutdown:
  timeout: 5s
`

func load(t *testing.T, yaml string) (*Config, error) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	return configloader.Load[*Config]("storefront",
		configloader.WithConfigFile(path),
		configloader.WithEnvFile(filepath.Join(dir, "missing.env")))
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "")

	// when
	cfg, err := load(t, minimalYAML)

	// then
	require.NoError(t, err)
	assert.Equal(t, "storefront", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "@TopnotchonlineTV", cfg.YouTube.ChannelHandle)
	assert.Equal(t, int64(20), cfg.YouTube.MaxResults)
	assert.Equal(t, 5*time.Second, cfg.YouTube.Timeout)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 1<<20, cfg.HTTPServer.MaxHeaderBytes)
	assert.False(t, cfg.Nats.Enabled())
	assert.False(t, cfg.GRPC.Enabled())
	assert.Empty(t, cfg.YouTube.APIKey)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("STOREFRONT_APP_ENV", "production")
	t.Setenv("STOREFRONT_SERVER_PORT", "9000")
	t.Setenv("STOREFRONT_YOUTUBE_APIKEY", "secret")

	cfg, err := load(t, minimalYAML)

	require.NoError(t, err)
	assert.True(t, cfg.App.IsProduction())
	assert.Equal(t, 9000, cfg.HTTPServer.Port)
	assert.Equal(t, "secret", cfg.YouTube.APIKey)
	assert.NotContains(t, cfg.String(), "secret")
}

func TestLoad_LegacyYouTubeKey(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "legacy")

	cfg, err := load(t, minimalYAML)

	require.NoError(t, err)
	assert.Equal(t, "legacy", cfg.YouTube.APIKey)
}

func TestLoad_EmptyFileUsesDefaults(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "")

	cfg, err := load(t, "")

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTPServer.Timeout.Read)
	assert.Equal(t, 10*time.Second, cfg.Shutdown.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_PProfOnLoopbackInProduction(t *testing.T) {
	cfg, err := load(t, minimalYAML+"app:\n  env: production\npprof:\n  enabled: true\n")

	require.NoError(t, err)
	assert.Equal(t, "localhost:6060", cfg.PProf.Addr)
}

func TestLoad_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		yaml string
	}{
		{name: "port out of range", yaml: "server:\n  port: 70000\n"},
		{name: "read header beyond read", yaml: "server:\n  timeout:\n    read: 1s\n    readHeader: 2s\n"},
		{name: "unknown environment", yaml: minimalYAML + "app:\n  env: staging\n"},
		{name: "too many videos", yaml: minimalYAML + "youtube:\n  maxResults: 51\n"},
		{name: "unknown log level", yaml: minimalYAML + "log:\n  level: verbose\n"},
		{name: "public pprof in production", yaml: minimalYAML + "app:\n  env: production\npprof:\n  enabled: true\n  addr: 0.0.0.0:6060\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := load(t, tc.yaml)
			assert.Error(t, err)
		})
	}
}
