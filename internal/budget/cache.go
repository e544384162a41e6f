package budget

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/adapter"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/alert"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/domain"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/logger"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/metrics"
)

// Cache modes
const (
	ModeRedis          = "redis"
	ModeMemory         = "memory"
	ModeMemoryFallback = "memory-fallback"
)

// DEFAULT_OP_TIMEOUT bounds a Redis command when no timeout is configured
const DEFAULT_OP_TIMEOUT = 200 * time.Millisecond

// DEFAULT_RECHECK_INTERVAL is how often a degraded FallbackCache pings Redis
const DEFAULT_RECHECK_INTERVAL = 30 * time.Second

// Cache stores daily spend figures
//
//go:generate mockgen -source=cache.go -destination=../mocks/budget_cache.go -package=mocks -mock_names=Cache=MockBudgetCache
type Cache interface {
	// Get returns the value of key and whether it was found
	Get(ctx context.Context, key string) (int64, bool, error)
	// SetWithTTL stores value under key until ttl elapses
	SetWithTTL(ctx context.Context, key string, value int64, ttl time.Duration) error
	// Del removes key
	Del(ctx context.Context, key string) error
	// Mode names the backend currently serving the cache
	Mode() string
}

// spendKey is the cache key of an account's finalized spend on the UTC day of t
func spendKey(accountID string, t time.Time) string {
	return fmt.Sprintf("budget:spend:%s:%s", accountID, domain.UTCDay(t))
}

// RedisCache is the shared cache all instances enforce the cap through
type RedisCache struct {
	client    adapter.RedisClient
	opTimeout time.Duration
}

// NewRedisCache creates a Redis-backed cache
func NewRedisCache(client adapter.RedisClient, opTimeout time.Duration) *RedisCache {
	if opTimeout <= 0 {
		opTimeout = DEFAULT_OP_TIMEOUT
	}
	return &RedisCache{client: client, opTimeout: opTimeout}
}

func (c *RedisCache) Get(ctx context.Context, key string) (int64, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, c.opTimeout)
	defer cancel()

	raw, err := c.client.Get(ctx, key)
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to get %s from redis: %w", key, err)
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		// A corrupt entry is a miss; the caller recomputes and overwrites it
		logger.WarnCtx(ctx, "Ignoring malformed budget cache entry", zap.String("key", key), zap.String("value", raw))
		return 0, false, nil
	}

	return value, true, nil
}

func (c *RedisCache) SetWithTTL(ctx context.Context, key string, value int64, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, c.opTimeout)
	defer cancel()

	if err := c.client.Set(ctx, key, strconv.FormatInt(value, 10), ttl); err != nil {
		return fmt.Errorf("failed to set %s in redis: %w", key, err)
	}
	return nil
}

func (c *RedisCache) Del(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, c.opTimeout)
	defer cancel()

	if err := c.client.Del(ctx, key); err != nil {
		return fmt.Errorf("failed to delete %s from redis: %w", key, err)
	}
	return nil
}

// Ping checks that Redis answers
func (c *RedisCache) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.opTimeout)
	defer cancel()

	return c.client.Ping(ctx)
}

func (c *RedisCache) Mode() string {
	return ModeRedis
}

type memoryEntry struct {
	value     int64
	expiresAt time.Time
}

// MemoryCache is an instance-local cache with the same key and TTL semantics as RedisCache
type MemoryCache struct {
	clock   adapter.Clock
	mu      sync.Mutex
	entries map[string]memoryEntry
}

// NewMemoryCache creates an in-process cache
func NewMemoryCache(clock adapter.Clock) *MemoryCache {
	return &MemoryCache{
		clock:   clock,
		entries: make(map[string]memoryEntry),
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) (int64, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return 0, false, nil
	}
	if !c.clock.Now().Before(entry.expiresAt) {
		delete(c.entries, key)
		return 0, false, nil
	}

	return entry.value, true, nil
}

func (c *MemoryCache) SetWithTTL(_ context.Context, key string, value int64, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = memoryEntry{value: value, expiresAt: c.clock.Now().Add(ttl)}
	return nil
}

func (c *MemoryCache) Del(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
	return nil
}

func (c *MemoryCache) Mode() string {
	return ModeMemory
}

// clear empties the cache
func (c *MemoryCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]memoryEntry)
}

// FallbackCache serves from Redis and switches to an instance-local map when Redis fails.
//
// While degraded, instances no longer share spend figures, so every instance enforces the
// daily cap on its own and an agent can spend up to dailyCap × instanceCount in a day.
// The switch is logged, alerted and exported on the budget cache_degraded gauge.
type FallbackCache struct {
	primary       *RedisCache
	fallback      *MemoryCache
	alerts        alert.Emitter
	clock         adapter.Clock
	recheckInterval time.Duration

	mu        sync.Mutex
	degraded  bool
	lastRecheck time.Time
	// touched holds the keys written or deleted while degraded
	touched map[string]struct{}
}

// NewFallbackCache creates a cache that prefers primary and degrades to fallback
func NewFallbackCache(primary *RedisCache, fallback *MemoryCache, alerts alert.Emitter, clock adapter.Clock, recheckInterval time.Duration) *FallbackCache {
	if recheckInterval <= 0 {
		recheckInterval = DEFAULT_RECHECK_INTERVAL
	}
	metrics.BudgetCacheDegraded.Set(0)

	return &FallbackCache{
		primary:       primary,
		fallback:      fallback,
		alerts:        alerts,
		clock:         clock,
		recheckInterval: recheckInterval,
		touched:       make(map[string]struct{}),
	}
}

func (c *FallbackCache) Mode() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.degraded {
		return ModeMemoryFallback
	}
	return ModeRedis
}

func (c *FallbackCache) Get(ctx context.Context, key string) (int64, bool, error) {
	if c.usePrimary(ctx) {
		value, ok, err := c.primary.Get(ctx, key)
		if err == nil {
			return value, ok, nil
		}
		c.degrade(ctx, "get", err)
	}
	c.touch(key)
	return c.fallback.Get(ctx, key)
}

func (c *FallbackCache) SetWithTTL(ctx context.Context, key string, value int64, ttl time.Duration) error {
	if c.usePrimary(ctx) {
		err := c.primary.SetWithTTL(ctx, key, value, ttl)
		if err == nil {
			return nil
		}
		c.degrade(ctx, "set", err)
	}
	c.touch(key)
	return c.fallback.SetWithTTL(ctx, key, value, ttl)
}

func (c *FallbackCache) Del(ctx context.Context, key string) error {
	if c.usePrimary(ctx) {
		err := c.primary.Del(ctx, key)
		if err == nil {
			return nil
		}
		c.degrade(ctx, "del", err)
	}
	c.touch(key)
	return c.fallback.Del(ctx, key)
}

func (c *FallbackCache) touch(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.degraded {
		c.touched[key] = struct{}{}
	}
}

// usePrimary reports whether Redis should serve the next command, probing it when a degraded
// cache is due for a check
func (c *FallbackCache) usePrimary(ctx context.Context) bool {
	c.mu.Lock()
	if !c.degraded {
		c.mu.Unlock()
		return true
	}
	now := c.clock.Now()
	if now.Sub(c.lastRecheck) < c.recheckInterval {
		c.mu.Unlock()
		return false
	}
	c.lastRecheck = now
	c.mu.Unlock()

	if err := c.primary.Ping(ctx); err != nil {
		logger.DebugCtx(ctx, "Budget cache still degraded", zap.Error(err))
		return false
	}

	c.recover(ctx)
	return true
}

func (c *FallbackCache) degrade(ctx context.Context, op string, err error) {
	metrics.BudgetCacheErrors.WithLabelValues(op).Inc()

	c.mu.Lock()
	if c.degraded {
		c.mu.Unlock()
		return
	}
	c.degraded = true
	c.lastRecheck = c.clock.Now()
	c.mu.Unlock()

	metrics.BudgetCacheDegraded.Set(1)
	logger.WarnCtx(ctx, "Budget cache degraded to in-process fallback; daily caps are enforced per instance",
		zap.String("op", op),
		zap.Error(err))
	c.alerts.Emit(ctx, domain.AlertKindBudgetCacheDegraded, domain.AlertSeverityWarning, "",
		"budget cache degraded to in-process fallback",
		map[string]any{"op": op, "error": err.Error()})
}

// recover switches back to Redis. Redis entries for keys touched while degraded may predate
// spend recorded during the outage, so they are dropped and recomputed.
func (c *FallbackCache) recover(ctx context.Context) {
	c.mu.Lock()
	if !c.degraded {
		c.mu.Unlock()
		return
	}
	c.degraded = false
	keys := make([]string, 0, len(c.touched))
	for key := range c.touched {
		keys = append(keys, key)
	}
	c.touched = make(map[string]struct{})
	c.mu.Unlock()

	c.fallback.clear()
	for _, key := range keys {
		if err := c.primary.Del(ctx, key); err != nil {
			logger.WarnCtx(ctx, "Failed to drop stale budget cache entry", zap.String("key", key), zap.Error(err))
		}
	}

	metrics.BudgetCacheDegraded.Set(0)
	logger.InfoCtx(ctx, "Budget cache recovered", zap.Int("staleKeysDropped", len(keys)))
}
