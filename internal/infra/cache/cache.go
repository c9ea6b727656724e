package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/dgraph-io/ristretto"
	"golang.org/x/sync/singleflight"
)

// Cache is an in-process TTL cache. A zero TTL keeps the entry until it is
// evicted or deleted.
type Cache interface {
	Get(ctx context.Context, key string) (any, bool)
	Set(ctx context.Context, key string, value any, ttl time.Duration) bool
	Delete(ctx context.Context, key string)
	GetOrSet(ctx context.Context, key string, ttl time.Duration, loader func() (any, error)) (any, error)
}

// RistrettoCache is a Cache backed by ristretto. Concurrent misses on the
// same key share a single load. A load that overlaps a Delete is returned
// to its callers but never cached.
type RistrettoCache struct {
	store       *ristretto.Cache
	singleGroup singleflight.Group
	config      *CacheConfig

	mu    sync.Mutex
	epoch uint64
}

type CacheConfig struct {
	// MaxCost bounds the total cost of the entries. Byte slices cost their
	// length, anything else costs 1.
	MaxCost     int64
	NumCounters int64
	BufferItems int64
}

func DefaultConfig() *CacheConfig {
	return &CacheConfig{
		MaxCost:     64 << 20, // 64MB
		NumCounters: 1e5,
		BufferItems: 64,
	}
}

func New(config *CacheConfig) (*RistrettoCache, error) {
	if config == nil {
		config = DefaultConfig()
	}

	store, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: config.NumCounters,
		MaxCost:     config.MaxCost,
		BufferItems: config.BufferItems,
		Cost:        costOf,
		OnEvict: func(item *ristretto.Item) {
			slog.Debug("cache entry evicted", slog.Int64("cost", item.Cost))
		},
	})
	if err != nil {
		return nil, err
	}

	return &RistrettoCache{
		store:  store,
		config: config,
	}, nil
}

func (c *RistrettoCache) Get(ctx context.Context, key string) (any, bool) {
	if ctx.Err() != nil {
		return nil, false
	}
	return c.store.Get(key)
}

// Set admits the value asynchronously; a Get right after Set may still miss.
func (c *RistrettoCache) Set(ctx context.Context, key string, value any, ttl time.Duration) bool {
	if ctx.Err() != nil {
		return false
	}
	return c.store.SetWithTTL(key, value, 0, ttl)
}

// Delete takes effect immediately, including over a pending Set. It runs
// even on a cancelled context so a completed write is never left shadowed.
func (c *RistrettoCache) Delete(_ context.Context, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.epoch++
	c.store.Del(key)
	c.singleGroup.Forget(key)
}

func (c *RistrettoCache) GetOrSet(ctx context.Context, key string, ttl time.Duration, loader func() (any, error)) (any, error) {
	if value, found := c.Get(ctx, key); found {
		return value, nil
	}

	value, err, _ := c.singleGroup.Do(key, func() (any, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if value, found := c.Get(ctx, key); found {
			return value, nil
		}

		c.mu.Lock()
		epoch := c.epoch
		c.mu.Unlock()

		value, err := loader()
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		if c.epoch == epoch {
			c.Set(ctx, key, value, ttl)
		}
		c.mu.Unlock()
		return value, nil
	})

	return value, err
}

// Wait blocks until buffered writes are applied.
func (c *RistrettoCache) Wait() {
	c.store.Wait()
}

func costOf(value any) int64 {
	if b, ok := value.([]byte); ok && len(b) > 0 {
		return int64(len(b))
	}
	return 1
}
