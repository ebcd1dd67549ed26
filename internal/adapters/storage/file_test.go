package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pantry/internal/adapters/storage"
)

func TestFileTier_RoundTrip(t *testing.T) {
	tier, err := storage.NewFileTier(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, tier.Write("cache_user", []byte(`{"id":"ana"}`)))

	got, ok, err := tier.Read("cache_user")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"id":"ana"}`, string(got))
}

func TestFileTier_ReadMissing(t *testing.T) {
	tier, err := storage.NewFileTier(t.TempDir())
	require.NoError(t, err)

	_, ok, err := tier.Read("nope")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileTier_Delete(t *testing.T) {
	tier, err := storage.NewFileTier(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, tier.Write("k", []byte("v")))
	require.NoError(t, tier.Delete("k"))
	require.NoError(t, tier.Delete("k"), "deleting an absent key is not an error")

	_, ok, err := tier.Read("k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileTier_KeysByPrefix(t *testing.T) {
	tier, err := storage.NewFileTier(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, tier.Write("cache_lists_l1", []byte("a")))
	require.NoError(t, tier.Write("cache_lists_l2", []byte("b")))
	require.NoError(t, tier.Write("prefs_l1", []byte("c")))

	keys, err := tier.Keys("cache_")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"cache_lists_l1", "cache_lists_l2"}, keys)

	all, err := tier.Keys("")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestFileTier_Clear(t *testing.T) {
	dir := t.TempDir()
	tier, err := storage.NewFileTier(dir)
	require.NoError(t, err)

	require.NoError(t, tier.Write("a", []byte("1")))
	require.NoError(t, tier.Write("b", []byte("2")))
	require.NoError(t, tier.Clear())

	keys, err := tier.Keys("")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestFileTier_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "storage")
	tier, err := storage.NewFileTier(dir)
	require.NoError(t, err)
	require.NoError(t, tier.Write("k", []byte("v")))

	_, err = os.Stat(filepath.Join(dir, "k.json"))
	assert.NoError(t, err)
}

func TestMemoryTier_RoundTrip(t *testing.T) {
	tier := storage.NewMemoryTier()

	require.NoError(t, tier.Write("k", []byte("v")))

	got, ok, err := tier.Read("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("v"), got)

	// The stored copy must be isolated from caller mutations.
	got[0] = 'x'
	again, _, err := tier.Read("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), again)
}

func TestMemoryTier_KeysAndClear(t *testing.T) {
	tier := storage.NewMemoryTier()
	require.NoError(t, tier.Write("cache_a", []byte("1")))
	require.NoError(t, tier.Write("other", []byte("2")))

	keys, err := tier.Keys("cache_")
	require.NoError(t, err)
	assert.Equal(t, []string{"cache_a"}, keys)

	require.NoError(t, tier.Clear())
	all, err := tier.Keys("")
	require.NoError(t, err)
	assert.Empty(t, all)
}
