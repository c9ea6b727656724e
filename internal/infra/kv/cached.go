package kv

import (
	"bytes"
	"context"
	"fmt"
	"formbuilder-server/internal/infra/cache"
	"time"
)

func NewCachedStore(next Store, c cache.Cache, ttl time.Duration) *CachedStore {
	return &CachedStore{
		next:  next,
		cache: c,
		ttl:   ttl,
	}
}

var _ Store = (*CachedStore)(nil)

// CachedStore reads through an in-process cache and drops the cached entry
// on every write. Missing keys are never cached.
type CachedStore struct {
	next  Store
	cache cache.Cache
	ttl   time.Duration
}

func (s *CachedStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.cache.GetOrSet(ctx, key, s.ttl, func() (any, error) {
		return s.next.Get(ctx, key)
	})
	if err != nil {
		return nil, err
	}

	blob, ok := value.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected cached value %T for %s", value, key)
	}
	return bytes.Clone(blob), nil
}

func (s *CachedStore) Put(ctx context.Context, key string, value []byte) error {
	if err := s.next.Put(ctx, key, value); err != nil {
		return err
	}

	s.cache.Delete(ctx, key)
	return nil
}
