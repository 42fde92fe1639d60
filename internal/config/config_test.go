package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults without file or environment", func(t *testing.T) {
		// Given: no config file
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When: loading
		conf, err := Load(path)

		// Then: the default level is used
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
	})

	t.Run("Empty path reads only the environment", func(t *testing.T) {
		t.Setenv("TICTACTOE_LOG_LEVEL", "debug")

		conf, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
	})

	t.Run("Reads the file", func(t *testing.T) {
		// Given: a config file with a log level
		path := writeConfig(t, "log-level: warn\n")

		// When: loading
		conf, err := Load(path)

		// Then: the file value is used
		require.NoError(t, err)
		assert.Equal(t, "warn", conf.LogLevel)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "log-level: warn\n")
		t.Setenv("TICTACTOE_LOG_LEVEL", "error")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "error", conf.LogLevel)
	})

	t.Run("Rejects unknown log level", func(t *testing.T) {
		// Given: a level the logger does not know
		path := writeConfig(t, "log-level: verbose\n")

		// When: loading
		conf, err := Load(path)

		// Then: validation fails
		require.Error(t, err)
		assert.Nil(t, conf)
		assert.Contains(t, err.Error(), "invalid config")
	})

	t.Run("Rejects malformed file", func(t *testing.T) {
		path := writeConfig(t, "log-level: [\n")

		_, err := Load(path)

		require.Error(t, err)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("Panics on invalid config", func(t *testing.T) {
		t.Setenv("TICTACTOE_LOG_LEVEL", "loud")

		assert.Panics(t, func() {
			MustLoad("")
		})
	})

	t.Run("Returns config", func(t *testing.T) {
		assert.NotPanics(t, func() {
			conf := MustLoad("")
			assert.NotNil(t, conf)
		})
	})
}
