package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.Backend.BaseURL)
	assert.Equal(t, time.Duration(0), cfg.Backend.Timeout)
	assert.Equal(t, "AAPL", cfg.Dashboard.SeedKeyword)
	assert.Equal(t, SessionStoreMemory, cfg.Session.Store)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, 8080, cfg.API.Port)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
backend:
  base_url: http://analytics:9000
  timeout: 15s
session:
  store: redis
  ttl: 1h
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://analytics:9000", cfg.Backend.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, SessionStoreRedis, cfg.Session.Store)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
}

func TestBackendBaseURLFromEnvironment(t *testing.T) {
	t.Run("BACKEND_BASE_URL", func(t *testing.T) {
		t.Setenv("BACKEND_BASE_URL", "http://env-backend:8000")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "http://env-backend:8000", cfg.Backend.BaseURL)
	})

	t.Run("API_BASE alias", func(t *testing.T) {
		t.Setenv("API_BASE", "http://alias-backend:8000")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "http://alias-backend:8000", cfg.Backend.BaseURL)
	})
}
