//go:build integration

package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/marcelsud/hookdash/endpoint"
	"github.com/marcelsud/hookdash/endpoint/mocks"
	"github.com/marcelsud/hookdash/endpoint/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCache_Integration(t *testing.T) {
	ctx := context.Background()
	client, cleanup := SetupRedisContainer(t, ctx)
	defer cleanup()

	now := time.Now().UTC()
	stored := endpoint.Endpoint{
		ID: "ep-1", OwnerID: "user-1", Name: "Stripe", Active: true,
		Response: endpoint.DefaultResponse(), RequestCount: 2, CreatedAt: now, UpdatedAt: now,
	}

	t.Run("second lookup is served from Redis", func(t *testing.T) {
		backing := mocks.NewRepository(t)
		backing.On("Select", ctx, "ep-1").Return(stored, nil).Once()
		cache := redis.NewCacheWithClient(backing, client, time.Minute)

		first, err := cache.Select(ctx, "ep-1")
		require.NoError(t, err)
		second, err := cache.Select(ctx, "ep-1")
		require.NoError(t, err)

		assert.Equal(t, first, second)
		ttl, err := client.TTL(ctx, "endpoint:ep-1").Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
	})

	t.Run("increment adjusts the cached counter", func(t *testing.T) {
		backing := mocks.NewRepository(t)
		backing.On("IncrementRequestCount", ctx, "ep-1").Return(nil)
		cache := redis.NewCacheWithClient(backing, client, time.Minute)

		require.NoError(t, cache.IncrementRequestCount(ctx, "ep-1"))

		e, err := cache.Select(ctx, "ep-1")
		require.NoError(t, err)
		assert.Equal(t, int64(3), e.RequestCount)
	})

	t.Run("increment on an uncached endpoint creates nothing", func(t *testing.T) {
		backing := mocks.NewRepository(t)
		backing.On("IncrementRequestCount", ctx, "ep-cold").Return(nil)
		cache := redis.NewCacheWithClient(backing, client, time.Minute)

		require.NoError(t, cache.IncrementRequestCount(ctx, "ep-cold"))

		n, err := client.Exists(ctx, "endpoint:ep-cold").Result()
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("update invalidates", func(t *testing.T) {
		updated := stored
		updated.Active = false
		backing := mocks.NewRepository(t)
		backing.On("Update", ctx, updated).Return(nil)
		backing.On("Select", ctx, "ep-1").Return(updated, nil).Once()
		cache := redis.NewCacheWithClient(backing, client, time.Minute)

		require.NoError(t, cache.Update(ctx, updated))
		e, err := cache.Select(ctx, "ep-1")

		require.NoError(t, err)
		assert.False(t, e.Active)
	})

	t.Run("delete invalidates and misses fall through", func(t *testing.T) {
		backing := mocks.NewRepository(t)
		backing.On("Delete", ctx, "ep-1").Return(nil)
		backing.On("Select", ctx, "ep-1").Return(endpoint.Endpoint{}, endpoint.ErrNotFound)
		cache := redis.NewCacheWithClient(backing, client, time.Minute)

		require.NoError(t, cache.Delete(ctx, "ep-1"))
		_, err := cache.Select(ctx, "ep-1")

		assert.Equal(t, endpoint.ErrNotFound, err)
	})

	t.Run("a miss that read the row before a deactivation does not fill", func(t *testing.T) {
		before := stored
		before.ID = "ep-race"
		after := before
		after.Active = false

		backing := mocks.NewRepository(t)
		cache := redis.NewCacheWithClient(backing, client, time.Minute)
		backing.On("Update", ctx, after).Return(nil)
		backing.On("Select", ctx, "ep-race").Return(before, nil).Once().Run(func(mock.Arguments) {
			require.NoError(t, cache.Update(ctx, after))
		})
		backing.On("Select", ctx, "ep-race").Return(after, nil).Once()

		first, err := cache.Select(ctx, "ep-race")
		require.NoError(t, err)
		assert.True(t, first.Active)

		n, err := client.Exists(ctx, "endpoint:ep-race").Result()
		require.NoError(t, err)
		assert.Zero(t, n)

		second, err := cache.Select(ctx, "ep-race")
		require.NoError(t, err)
		assert.False(t, second.Active)
	})

	t.Run("a miss that read the row before a delete does not fill", func(t *testing.T) {
		gone := stored
		gone.ID = "ep-gone"

		backing := mocks.NewRepository(t)
		cache := redis.NewCacheWithClient(backing, client, time.Minute)
		backing.On("Delete", ctx, "ep-gone").Return(nil)
		backing.On("Select", ctx, "ep-gone").Return(gone, nil).Once().Run(func(mock.Arguments) {
			require.NoError(t, cache.Delete(ctx, "ep-gone"))
		})
		backing.On("Select", ctx, "ep-gone").Return(endpoint.Endpoint{}, endpoint.ErrNotFound).Once()

		_, err := cache.Select(ctx, "ep-gone")
		require.NoError(t, err)

		_, err = cache.Select(ctx, "ep-gone")
		assert.Equal(t, endpoint.ErrNotFound, err)
	})

	t.Run("fills resume once the fence expires", func(t *testing.T) {
		e := stored
		e.ID = "ep-fenced"

		backing := mocks.NewRepository(t)
		backing.On("Update", ctx, e).Return(nil)
		backing.On("Select", ctx, "ep-fenced").Return(e, nil)
		cache := redis.NewCacheWithClient(backing, client, time.Minute)

		require.NoError(t, cache.Update(ctx, e))
		fence, err := client.PTTL(ctx, "endpoint:ep-fenced:fence").Result()
		require.NoError(t, err)
		assert.Greater(t, fence, time.Duration(0))
		assert.LessOrEqual(t, fence, redis.FenceTTL)

		require.NoError(t, client.Del(ctx, "endpoint:ep-fenced:fence").Err())
		_, err = cache.Select(ctx, "ep-fenced")
		require.NoError(t, err)

		n, err := client.Exists(ctx, "endpoint:ep-fenced").Result()
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})
}
