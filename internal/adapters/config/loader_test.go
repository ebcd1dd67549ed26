package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pantry/internal/adapters/config"
	"go.trai.ch/pantry/internal/core/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	settings, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, config.DefaultItemsTimeout, settings.ItemsTimeout)
	assert.Equal(t, config.DefaultListTimeout, settings.ListTimeout)
	assert.Equal(t, config.DefaultPendingCap, settings.PendingQueueCap)
	assert.Equal(t, config.DefaultDebounceWindow, settings.DebounceWindow)
	assert.NotEmpty(t, settings.StorageDir)
	assert.Empty(t, settings.Namespaces)
}

func TestLoad_FullFile(t *testing.T) {
	path := writeConfig(t, `
storage_dir: /tmp/pantry-test
cache:
  namespaces:
    products:
      ttl: 30m
      tier: durable
    user:
      ttl: never
      tier: durable
sync:
  items_timeout: 20s
  list_timeout: 3s
bus:
  pending_queue_cap: 8
storage:
  debounce_window: 100ms
`)

	settings, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/pantry-test", settings.StorageDir)
	assert.Equal(t, 20*time.Second, settings.ItemsTimeout)
	assert.Equal(t, 3*time.Second, settings.ListTimeout)
	assert.Equal(t, 8, settings.PendingQueueCap)
	assert.Equal(t, 100*time.Millisecond, settings.DebounceWindow)

	require.Contains(t, settings.Namespaces, "products")
	assert.Equal(t, 30*time.Minute, settings.Namespaces["products"].TTL)
	assert.Equal(t, "durable", settings.Namespaces["products"].Tier)

	// "never" maps to a zero TTL, which the cache wiring treats as no expiry.
	require.Contains(t, settings.Namespaces, "user")
	assert.Zero(t, settings.Namespaces["user"].TTL)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "sync:\n  list_timeout: 2s\n")

	settings, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, settings.ListTimeout)
	assert.Equal(t, config.DefaultItemsTimeout, settings.ItemsTimeout)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "cache: [not a map")

	_, err := config.Load(path)
	require.ErrorContains(t, err, domain.ErrSettingsParse.Error())
}

func TestLoad_BadDuration(t *testing.T) {
	path := writeConfig(t, "sync:\n  items_timeout: soon\n")

	_, err := config.Load(path)
	require.ErrorContains(t, err, domain.ErrSettingsParse.Error())
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "bus:\n  pending_queue_cap: 4\n")
	t.Setenv(config.EnvConfigPath, path)

	settings, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 4, settings.PendingQueueCap)
}
