package cache_test

import (
	"context"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pantry/internal/cache"
	"go.trai.ch/zerr"
)

var errFetch = zerr.New("fetch failed")

func TestGetOrFetch(t *testing.T) {
	t.Run("fetches on miss and caches", func(t *testing.T) {
		s := cache.New()
		calls := 0

		fetch := func(context.Context) (string, error) {
			calls++
			return "fetched", nil
		}

		got, err := cache.GetOrFetch(context.Background(), s, "lists", "l1", fetch)
		require.NoError(t, err)
		assert.Equal(t, "fetched", got)

		got, err = cache.GetOrFetch(context.Background(), s, "lists", "l1", fetch)
		require.NoError(t, err)
		assert.Equal(t, "fetched", got)
		assert.Equal(t, 1, calls, "second read must come from the cache")
	})

	t.Run("propagates fetch errors without caching", func(t *testing.T) {
		s := cache.New()
		_, err := cache.GetOrFetch(context.Background(), s, "lists", "l1", func(context.Context) (string, error) {
			return "", errFetch
		})
		require.ErrorIs(t, err, errFetch)
		assert.Nil(t, s.Get("lists", "l1"))
	})

	t.Run("nil results are not stored", func(t *testing.T) {
		s := cache.New()
		calls := 0
		fetch := func(context.Context) (*int, error) {
			calls++
			return nil, nil
		}

		got, err := cache.GetOrFetch(context.Background(), s, "lists", "l1", fetch)
		require.NoError(t, err)
		assert.Nil(t, got)

		_, err = cache.GetOrFetch(context.Background(), s, "lists", "l1", fetch)
		require.NoError(t, err)
		assert.Equal(t, 2, calls, "a nil result must not satisfy later reads")
	})
}

func TestGetStaleWhileRevalidate(t *testing.T) {
	t.Run("returns cached value immediately, refreshes behind", func(t *testing.T) {
		synctest.Test(t, func(t *testing.T) {
			s := cache.New()
			s.Set("products", []string{"old"}, "g1")

			var updated [][]string
			got, ok := cache.GetStaleWhileRevalidate(context.Background(), s, "products", "g1",
				func(context.Context) ([]string, error) { return []string{"new"}, nil },
				func(fresh []string) { updated = append(updated, fresh) },
			)
			require.True(t, ok)
			assert.Equal(t, []string{"old"}, got)

			synctest.Wait()
			require.Len(t, updated, 1, "a changed refresh invokes onUpdate exactly once")
			assert.Equal(t, []string{"new"}, updated[0])

			fresh, ok := cache.Value[[]string](s, "products", "g1")
			require.True(t, ok)
			assert.Equal(t, []string{"new"}, fresh)
		})
	})

	t.Run("unchanged refresh never invokes onUpdate", func(t *testing.T) {
		synctest.Test(t, func(t *testing.T) {
			s := cache.New()
			s.Set("products", []string{"same"}, "g1")

			calls := 0
			_, ok := cache.GetStaleWhileRevalidate(context.Background(), s, "products", "g1",
				func(context.Context) ([]string, error) { return []string{"same"}, nil },
				func([]string) { calls++ },
			)
			require.True(t, ok)

			synctest.Wait()
			assert.Zero(t, calls)
		})
	})

	t.Run("cold cache invokes onUpdate with first result", func(t *testing.T) {
		synctest.Test(t, func(t *testing.T) {
			s := cache.New()

			var got []string
			cached, ok := cache.GetStaleWhileRevalidate(context.Background(), s, "products", "g1",
				func(context.Context) ([]string, error) { return []string{"first"}, nil },
				func(fresh []string) { got = fresh },
			)
			assert.False(t, ok)
			assert.Nil(t, cached)

			synctest.Wait()
			assert.Equal(t, []string{"first"}, got)
		})
	})

	t.Run("refresh failure is swallowed", func(t *testing.T) {
		synctest.Test(t, func(t *testing.T) {
			s := cache.New()
			s.Set("products", []string{"old"}, "g1")

			calls := 0
			got, ok := cache.GetStaleWhileRevalidate(context.Background(), s, "products", "g1",
				func(context.Context) ([]string, error) { return nil, errFetch },
				func([]string) { calls++ },
			)
			require.True(t, ok)
			assert.Equal(t, []string{"old"}, got)

			synctest.Wait()
			assert.Zero(t, calls)
			fresh, _ := cache.Value[[]string](s, "products", "g1")
			assert.Equal(t, []string{"old"}, fresh, "failed refresh leaves the cached value alone")
		})
	})
}
