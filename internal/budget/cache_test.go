package budget_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/adapter"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/budget"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/domain"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/mocks"
)

// testClock is a mock clock whose time the test moves
type testClock struct {
	*mocks.MockClock
	now time.Time
}

func newTestClock(ctrl *gomock.Controller, now time.Time) *testClock {
	c := &testClock{MockClock: mocks.NewMockClock(ctrl), now: now}
	c.EXPECT().Now().DoAndReturn(func() time.Time { return c.now }).AnyTimes()
	return c
}

func (c *testClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func setupRedis(t *testing.T) (*miniredis.Miniredis, *budget.RedisCache) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := adapter.NewRedisClient(adapter.RedisOptions{Addr: mr.Addr(), DialTimeout: 100 * time.Millisecond})
	t.Cleanup(func() { _ = client.Close() })

	return mr, budget.NewRedisCache(client, 100*time.Millisecond)
}

func TestRedisCache(t *testing.T) {
	ctx := context.Background()

	t.Run("set get del", func(t *testing.T) {
		mr, cache := setupRedis(t)

		_, ok, err := cache.Get(ctx, "budget:spend:a:2024-01-15")
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, cache.SetWithTTL(ctx, "budget:spend:a:2024-01-15", 1_500_000, time.Hour))
		value, ok, err := cache.Get(ctx, "budget:spend:a:2024-01-15")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, int64(1_500_000), value)
		assert.Equal(t, time.Hour, mr.TTL("budget:spend:a:2024-01-15"))

		require.NoError(t, cache.Del(ctx, "budget:spend:a:2024-01-15"))
		assert.False(t, mr.Exists("budget:spend:a:2024-01-15"))
	})

	t.Run("entries expire", func(t *testing.T) {
		mr, cache := setupRedis(t)

		require.NoError(t, cache.SetWithTTL(ctx, "k", 1, time.Minute))
		mr.FastForward(time.Minute)

		_, ok, err := cache.Get(ctx, "k")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("malformed entry is a miss", func(t *testing.T) {
		mr, cache := setupRedis(t)
		require.NoError(t, mr.Set("k", "not-a-number"))

		_, ok, err := cache.Get(ctx, "k")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unreachable redis fails", func(t *testing.T) {
		mr, cache := setupRedis(t)
		mr.Close()

		_, _, err := cache.Get(ctx, "k")
		assert.Error(t, err)
		assert.Error(t, cache.Ping(ctx))
	})
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	clock := newTestClock(ctrl, time.Date(2024, 1, 15, 23, 0, 0, 0, time.UTC))
	cache := budget.NewMemoryCache(clock)

	assert.Equal(t, budget.ModeMemory, cache.Mode())

	require.NoError(t, cache.SetWithTTL(ctx, "k", 42, domain.UntilNextUTCMidnight(clock.now)))
	value, ok, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(42), value)

	// Same TTL semantics as Redis: the entry is gone at midnight
	clock.advance(time.Hour)
	_, ok, err = cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.SetWithTTL(ctx, "k", 1, time.Hour))
	require.NoError(t, cache.Del(ctx, "k"))
	_, ok, _ = cache.Get(ctx, "k")
	assert.False(t, ok)
}

func TestFallbackCache(t *testing.T) {
	ctx := context.Background()

	t.Run("serves from redis while healthy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		clock := newTestClock(ctrl, time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC))
		mr, primary := setupRedis(t)
		cache := budget.NewFallbackCache(primary, budget.NewMemoryCache(clock), mocks.NewMockAlertEmitter(ctrl), clock, time.Minute)

		require.NoError(t, cache.SetWithTTL(ctx, "k", 7, time.Hour))
		assert.True(t, mr.Exists("k"))
		assert.Equal(t, budget.ModeRedis, cache.Mode())
	})

	t.Run("degrades on redis failure and recovers after a recheck", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		clock := newTestClock(ctrl, time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC))
		alerts := mocks.NewMockAlertEmitter(ctrl)
		mr, primary := setupRedis(t)
		cache := budget.NewFallbackCache(primary, budget.NewMemoryCache(clock), alerts, clock, time.Minute)

		// Written before the outage; goes stale while spend is tracked in memory
		require.NoError(t, cache.SetWithTTL(ctx, "k", 100, time.Hour))

		mr.Close()
		alerts.EXPECT().
			Emit(gomock.Any(), domain.AlertKindBudgetCacheDegraded, domain.AlertSeverityWarning, "", gomock.Any(), gomock.Any()).
			Times(1)

		_, ok, err := cache.Get(ctx, "k")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, budget.ModeMemoryFallback, cache.Mode())

		require.NoError(t, cache.SetWithTTL(ctx, "k", 250, time.Hour))
		value, ok, err := cache.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, int64(250), value)

		require.NoError(t, mr.Restart())

		// Not due for a recheck yet
		clock.advance(30 * time.Second)
		_, _, err = cache.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, budget.ModeMemoryFallback, cache.Mode())

		clock.advance(time.Minute)
		_, ok, err = cache.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, budget.ModeRedis, cache.Mode())
		assert.False(t, ok, "stale pre-outage value must be dropped on recovery")
	})
}
