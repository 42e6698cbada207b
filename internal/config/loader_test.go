package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mixerrors "github.com/wexinc/mixadd/internal/errors"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, DefaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := NewLoader().LoadConfig("nonexistent/.mixadd.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, mixerrors.ErrConfig)
	assert.Contains(t, err.Error(), "configuration file not found")
}

func TestLoadConfig_ValidFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
registry:
  url: http://localhost:4000/api/packages
  timeout: 3s
manifest:
  file: apps/web/mix.exs
commands:
  list: mix deps --all
  fetch: ""
  format: mix format --check-formatted
`)

	cfg, err := NewLoader().LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:4000/api/packages", cfg.Registry.URL)
	assert.Equal(t, 3*time.Second, cfg.Registry.Timeout)
	assert.Equal(t, "apps/web/mix.exs", cfg.Manifest.File)
	assert.Equal(t, "mix deps --all", cfg.Commands.List)
	assert.Empty(t, cfg.Commands.Fetch)
	assert.Equal(t, "mix format --check-formatted", cfg.Commands.Format)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
registry:
  timeout: 1m
`)

	cfg, err := NewLoader().LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, time.Minute, cfg.Registry.Timeout)
	assert.Equal(t, DefaultRegistryURL, cfg.Registry.URL)
	assert.Equal(t, DefaultFetchCommand, cfg.Commands.Fetch)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "registry:\n\turl: [")

	_, err := NewLoader().LoadConfig(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, mixerrors.ErrConfig)
	assert.Contains(t, err.Error(), "failed to parse configuration")
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
registry:
  url: not-a-url
`)

	_, err := NewLoader().LoadConfig(path)
	require.Error(t, err)

	var mixErr *mixerrors.Error
	require.ErrorAs(t, err, &mixErr)
	assert.Equal(t, "registry.url", mixErr.Details["field"])
}

func TestLoadConfigFromDir_NoFileUsesDefaults(t *testing.T) {
	cfg, err := NewLoader().LoadConfigFromDir(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, NewConfig(), cfg)
}

func TestLoadConfigFromDir_EnvOverrides(t *testing.T) {
	t.Setenv("MIXADD_REGISTRY_TIMEOUT", "45s")
	t.Setenv("MIXADD_COMMANDS_FORMAT", "mix format --migrate")

	cfg, err := NewLoader().LoadConfigFromDir(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 45*time.Second, cfg.Registry.Timeout)
	assert.Equal(t, "mix format --migrate", cfg.Commands.Format)
}

func TestLoadConfigFromDir_EnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
manifest:
  file: other.exs
`)
	t.Setenv("MIXADD_MANIFEST_FILE", "env.exs")

	cfg, err := NewLoader().LoadConfigFromDir(dir)
	require.NoError(t, err)
	assert.Equal(t, "env.exs", cfg.Manifest.File)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "manifest:\n  file: custom.exs\n")

	fromDir, err := Load("", dir)
	require.NoError(t, err)
	assert.Equal(t, "custom.exs", fromDir.Manifest.File)

	explicit, err := Load(path, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "custom.exs", explicit.Manifest.File)
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(NewConfig())
	require.NoError(t, err)
	assert.Contains(t, string(data), "timeout: 15s")

	dir := t.TempDir()
	writeConfig(t, dir, string(data))

	cfg, err := NewLoader().LoadConfigFromDir(dir)
	require.NoError(t, err)
	assert.Equal(t, NewConfig(), cfg)
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFile)

	require.NoError(t, WriteDefault(path, false))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# mixadd configuration")
	assert.Contains(t, string(content), "url: https://hex.pm/api/packages")

	err = WriteDefault(path, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, mixerrors.ErrConfig)

	assert.NoError(t, WriteDefault(path, true))
}
