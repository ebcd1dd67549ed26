package cache_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pantry/internal/adapters/storage"
	"go.trai.ch/pantry/internal/cache"
)

func TestStore_SetGet(t *testing.T) {
	s := cache.New()

	s.Set("lists", []string{"a", "b"}, "mine")

	got := s.Get("lists", "mine")
	require.NotNil(t, got)
	assert.Equal(t, []string{"a", "b"}, got)

	assert.Nil(t, s.Get("lists", "other"))
	assert.Nil(t, s.Get("unknown", ""))
}

func TestStore_TTLExpiry(t *testing.T) {
	s := cache.New()
	now := time.Now()
	s.SetNow(func() time.Time { return now })

	s.Set("lists", "fresh", "l1") // lists namespace: 2 minute TTL

	now = now.Add(time.Minute)
	assert.Equal(t, "fresh", s.Get("lists", "l1"))

	now = now.Add(2 * time.Minute)
	assert.Nil(t, s.Get("lists", "l1"), "expired entry must read as a miss")
	assert.Nil(t, s.Get("lists", "l1"), "eviction is sticky")
}

func TestStore_NeverExpires(t *testing.T) {
	s := cache.New()
	now := time.Now()
	s.SetNow(func() time.Time { return now })

	s.Set("user", "ana", "")

	now = now.Add(1000 * time.Hour)
	assert.Equal(t, "ana", s.Get("user", ""))
}

func TestStore_PerWriteTTLOverride(t *testing.T) {
	s := cache.New()
	now := time.Now()
	s.SetNow(func() time.Time { return now })

	s.Set("lists", "pinned", "l1", cache.SetOptions{TTL: cache.NeverExpires})

	now = now.Add(24 * time.Hour)
	assert.Equal(t, "pinned", s.Get("lists", "l1"))
}

func TestStore_Invalidate(t *testing.T) {
	s := cache.New()
	s.Set("lists", "a", "l1")
	s.Set("lists", "b", "l2")

	s.Invalidate("lists", "l1")

	assert.Nil(t, s.Get("lists", "l1"))
	assert.Equal(t, "b", s.Get("lists", "l2"))
}

func TestStore_InvalidateNamespace(t *testing.T) {
	s := cache.New()
	s.Set("lists", "a", "l1")
	s.Set("lists", "bare", "")
	s.Set("group", "g", "g1")

	s.InvalidateNamespace("lists")

	assert.Nil(t, s.Get("lists", "l1"))
	assert.Nil(t, s.Get("lists", ""))
	assert.Equal(t, "g", s.Get("group", "g1"), "other namespaces are untouched")
}

func TestStore_InvalidateNamespace_PrefixIsolation(t *testing.T) {
	s := cache.New()
	s.Set("group", "doc", "g1")
	s.Set("groups", "all", "")

	s.InvalidateNamespace("group")

	assert.Nil(t, s.Get("group", "g1"))
	assert.Equal(t, "all", s.Get("groups", ""), "namespace sharing a prefix must survive")
}

func TestStore_StorageMirrorAndRehydration(t *testing.T) {
	tier := storage.NewMemoryTier()

	s := cache.New(cache.WithSessionTier(tier),
		cache.WithNamespace("lists", cache.NamespaceConfig{TTL: time.Minute, Tier: cache.TierSession}))
	s.Set("lists", map[string]string{"name": "Groceries"}, "l1")

	// A fresh store over the same tier simulates a new process.
	s2 := cache.New(cache.WithSessionTier(tier),
		cache.WithNamespace("lists", cache.NamespaceConfig{TTL: time.Minute, Tier: cache.TierSession}))

	got, ok := cache.Value[map[string]string](s2, "lists", "l1")
	require.True(t, ok)
	assert.Equal(t, "Groceries", got["name"])
}

func TestStore_RehydrationDropsExpired(t *testing.T) {
	tier := storage.NewMemoryTier()
	ns := cache.NamespaceConfig{TTL: time.Minute, Tier: cache.TierSession}

	now := time.Now()
	s := cache.New(cache.WithSessionTier(tier), cache.WithNamespace("lists", ns))
	s.SetNow(func() time.Time { return now })
	s.Set("lists", "stale", "l1")

	s2 := cache.New(cache.WithSessionTier(tier), cache.WithNamespace("lists", ns))
	s2.SetNow(func() time.Time { return now.Add(2 * time.Minute) })

	assert.Nil(t, s2.Get("lists", "l1"))
	_, ok, err := tier.Read("cache_lists_l1")
	require.NoError(t, err)
	assert.False(t, ok, "expired storage entry must be deleted on read")
}

func TestStore_CorruptStorageEntryDropped(t *testing.T) {
	tier := storage.NewMemoryTier()
	require.NoError(t, tier.Write("cache_lists_l1", []byte("{not json")))

	s := cache.New(cache.WithSessionTier(tier),
		cache.WithNamespace("lists", cache.NamespaceConfig{TTL: time.Minute, Tier: cache.TierSession}))

	assert.Nil(t, s.Get("lists", "l1"))
	_, ok, err := tier.Read("cache_lists_l1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_InvalidateExternal(t *testing.T) {
	s := cache.New()
	s.Set("lists", "a", "l1")
	s.Set("user", "ana", "")

	s.InvalidateExternal([]string{"cache_lists_l1", "cache_user", "unrelated_key"})

	assert.Nil(t, s.Get("lists", "l1"))
	assert.Nil(t, s.Get("user", ""))
}

func TestStore_ClearAll(t *testing.T) {
	session := storage.NewMemoryTier()
	durable := storage.NewMemoryTier()
	require.NoError(t, durable.Write("prefs_l1", []byte(`{"viewMode":"list"}`)))

	s := cache.New(cache.WithSessionTier(session), cache.WithDurableTier(durable))
	s.Set("lists", "a", "l1")
	s.Set("user", "ana", "")

	s.ClearAll()

	assert.Nil(t, s.Get("lists", "l1"))
	assert.Nil(t, s.Get("user", ""))

	_, ok, err := durable.Read("prefs_l1")
	require.NoError(t, err)
	assert.True(t, ok, "non-cache keys in the durable tier must survive")
}

func TestValue_DecodesRawMessage(t *testing.T) {
	s := cache.New()
	raw, err := json.Marshal([]int{1, 2, 3})
	require.NoError(t, err)
	s.Set("lists", json.RawMessage(raw), "l1")

	got, ok := cache.Value[[]int](s, "lists", "l1")
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, got)
}
