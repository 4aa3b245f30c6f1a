package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"lei_validator/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, config.DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, config.DefaultLoggerLevel, cfg.Logger.Level)
	assert.Equal(t, config.DefaultLoggerFormat, cfg.Logger.Format)
	assert.False(t, cfg.Validator.LooseParsing)
}

func TestLoadConfig_PartialOverlay(t *testing.T) {
	path := writeConfig(t, `
server:
  port: ":9090"
validator:
  loose_parsing: true
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.True(t, cfg.Validator.LooseParsing)
	// Omitted sections keep their defaults.
	assert.Equal(t, config.DefaultLoggerLevel, cfg.Logger.Level)
	assert.Equal(t, config.DefaultServerReadTimeoutSeconds, cfg.Server.ReadTimeoutSeconds)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [not a mapping")

	_, err := config.LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	path := writeConfig(t, `
logger:
  level: "verbose"
`)

	_, err := config.LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logger.level")
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yml"))
	assert.Error(t, err)
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
