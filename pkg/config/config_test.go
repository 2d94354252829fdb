package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	App    App    `mapstructure:"app"`
	API    API    `mapstructure:"api"`
	Logger Logger `mapstructure:"logger"`
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("reads values from file", func(t *testing.T) {
		path := writeFile(t, "app:\n  name: dashboard\napi:\n  port: 9090\n")

		var cfg testConfig
		require.NoError(t, Load(path, &cfg, Options{}))

		assert.Equal(t, "dashboard", cfg.App.Name)
		assert.Equal(t, 9090, cfg.API.Port)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := writeFile(t, "api:\n  port: 9090\n")
		t.Setenv("API_PORT", "7070")

		var cfg testConfig
		require.NoError(t, Load(path, &cfg, Options{}))

		assert.Equal(t, 7070, cfg.API.Port)
	})

	t.Run("missing file falls back to defaults", func(t *testing.T) {
		var cfg testConfig
		err := Load(filepath.Join(t.TempDir(), "missing.yaml"), &cfg, Options{
			Defaults: map[string]interface{}{"logger.level": "info", "api.port": 8080},
		})
		require.NoError(t, err)

		assert.Equal(t, "info", cfg.Logger.Level)
		assert.Equal(t, 8080, cfg.API.Port)
	})

	t.Run("env alias is honoured", func(t *testing.T) {
		t.Setenv("SERVICE_NAME", "from-alias")

		var cfg testConfig
		err := Load("", &cfg, Options{
			Defaults:   map[string]interface{}{"app.name": "default"},
			EnvAliases: map[string][]string{"app.name": {"APP_NAME", "SERVICE_NAME"}},
		})
		require.NoError(t, err)

		assert.Equal(t, "from-alias", cfg.App.Name)
	})
}
