package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pantry/internal/adapters/config"
	"go.trai.ch/pantry/internal/app"
	_ "go.trai.ch/pantry/internal/wiring" // Register providers
)

func TestAppWiring(t *testing.T) {
	// Point settings at a throwaway storage dir so the durable tier does not
	// touch the user's config directory.
	tmpDir := t.TempDir()
	cfg := filepath.Join(tmpDir, "pantry.yaml")
	yaml := "storage_dir: " + filepath.Join(tmpDir, "store") + "\n"
	require.NoError(t, os.WriteFile(cfg, []byte(yaml), 0o600))
	t.Setenv(config.EnvConfigPath, cfg)

	// Verify that the application graph can be constructed.
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
	require.NotNil(t, components.Settings)
	t.Cleanup(func() {
		require.NoError(t, components.App.Shutdown())
	})
}
