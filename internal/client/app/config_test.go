package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "sqlite", cfg.Vault.Driver)
	require.Equal(t, "web", cfg.API.Platform)
	require.Empty(t, cfg.API.BaseURL)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
env: prod
log_format: json
api:
  base_url: https://eprometna.hr/api
vault:
  driver: memory
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, "https://eprometna.hr/api", cfg.API.BaseURL)
	require.Equal(t, "memory", cfg.Vault.Driver)
}

func TestLoadRejectsUnknownVaultDriver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("vault:\n  driver: redis\n"), 0o600))

	_, err := Load(path)
	require.ErrorContains(t, err, "unknown vault driver")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorContains(t, err, "does not exist")
}
