package viewcache_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"thumathina/internal/core/application/viewcache"
	"thumathina/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countingFetch(value any) (ports.FetchFunc, *int) {
	calls := 0
	return func(context.Context) (any, error) {
		calls++
		return value, nil
	}, &calls
}

func TestCache_Read(t *testing.T) {
	ctx := context.Background()
	key := ports.OrdersAllScope()

	t.Run("absent entry fetches from the store", func(t *testing.T) {
		cache := viewcache.NewCache()
		fetch, calls := countingFetch("orders-v1")

		value, err := cache.Read(ctx, key, fetch)

		require.NoError(t, err)
		assert.Equal(t, "orders-v1", value)
		assert.Equal(t, 1, *calls)
		assert.True(t, cache.Contains(key))
	})

	t.Run("clean entry is served without refetch", func(t *testing.T) {
		cache := viewcache.NewCache()
		fetch, calls := countingFetch("orders-v1")

		_, err := cache.Read(ctx, key, fetch)
		require.NoError(t, err)
		value, err := cache.Read(ctx, key, fetch)

		require.NoError(t, err)
		assert.Equal(t, "orders-v1", value)
		assert.Equal(t, 1, *calls, "second read must hit the cache")
	})

	t.Run("dirty entry forces a refetch", func(t *testing.T) {
		cache := viewcache.NewCache()
		fetch, calls := countingFetch("orders-v1")

		_, err := cache.Read(ctx, key, fetch)
		require.NoError(t, err)

		cache.Invalidate(key)
		assert.False(t, cache.Contains(key))

		_, err = cache.Read(ctx, key, fetch)
		require.NoError(t, err)
		assert.Equal(t, 2, *calls)
		assert.True(t, cache.Contains(key))
	})

	t.Run("fetch error leaves the scope dirty and uncached", func(t *testing.T) {
		cache := viewcache.NewCache()
		fetchErr := errors.New("store unreachable")

		_, err := cache.Read(ctx, key, func(context.Context) (any, error) {
			return nil, fetchErr
		})

		require.ErrorIs(t, err, fetchErr)
		assert.False(t, cache.Contains(key))

		// A later successful read recovers.
		fetch, _ := countingFetch("orders-v2")
		value, err := cache.Read(ctx, key, fetch)
		require.NoError(t, err)
		assert.Equal(t, "orders-v2", value)
	})

	t.Run("scopes are independent", func(t *testing.T) {
		cache := viewcache.NewCache()
		fetchAll, callsAll := countingFetch("all")
		fetchEligible, callsEligible := countingFetch("eligible")

		_, err := cache.Read(ctx, ports.OrdersAllScope(), fetchAll)
		require.NoError(t, err)
		_, err = cache.Read(ctx, ports.OrdersDriverEligibleScope(), fetchEligible)
		require.NoError(t, err)

		cache.Invalidate(ports.OrdersDriverEligibleScope())

		_, err = cache.Read(ctx, ports.OrdersAllScope(), fetchAll)
		require.NoError(t, err)
		_, err = cache.Read(ctx, ports.OrdersDriverEligibleScope(), fetchEligible)
		require.NoError(t, err)

		assert.Equal(t, 1, *callsAll, "untouched scope stays clean")
		assert.Equal(t, 2, *callsEligible)
	})
}

func TestCache_SupersededFetch(t *testing.T) {
	ctx := context.Background()
	key := ports.OrdersDriverEligibleScope()

	t.Run("invalidation during a fetch discards the stale result", func(t *testing.T) {
		cache := viewcache.NewCache()

		// The fetch starts, then the scope is invalidated before the fetch
		// completes. The stale result must not be stored as clean.
		value, err := cache.Read(ctx, key, func(context.Context) (any, error) {
			cache.Invalidate(key)
			return "stale", nil
		})

		require.NoError(t, err)
		assert.Equal(t, "stale", value, "the caller still receives its result")
		assert.False(t, cache.Contains(key), "the stale result must not clear the dirty flag")

		fetch, calls := countingFetch("fresh")
		stored, err := cache.Read(ctx, key, fetch)
		require.NoError(t, err)
		assert.Equal(t, "fresh", stored)
		assert.Equal(t, 1, *calls)
	})

	t.Run("cancelled fetch does not clear the dirty flag", func(t *testing.T) {
		cache := viewcache.NewCache()
		cancelCtx, cancel := context.WithCancel(ctx)

		_, err := cache.Read(cancelCtx, key, func(context.Context) (any, error) {
			cancel()
			return "abandoned", nil
		})

		require.ErrorIs(t, err, context.Canceled)
		assert.False(t, cache.Contains(key))
	})
}

func TestCache_ConcurrentReads(t *testing.T) {
	ctx := context.Background()
	key := ports.PendingApplicationsScope()
	cache := viewcache.NewCache()

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := cache.Read(ctx, key, func(context.Context) (any, error) {
				return "pending", nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.True(t, cache.Contains(key))
}
