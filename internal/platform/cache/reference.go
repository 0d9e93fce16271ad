// Package cache provides a small TTL cache for reference data (currencies,
// financial years, active exchange rates). Reference entities change rarely;
// repeated validations within the stale-time window reuse the cached copy
// instead of re-fetching.
package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Reference is a TTL-bounded read-through cache keyed by string.
type Reference[V any] struct {
	lru *expirable.LRU[string, V]
}

// NewReference creates a cache holding up to size entries for at most ttl.
func NewReference[V any](size int, ttl time.Duration) *Reference[V] {
	return &Reference[V]{
		lru: expirable.NewLRU[string, V](size, nil, ttl),
	}
}

// GetOrLoad returns the cached value for key, loading and caching it when
// absent or expired. Loader errors are never cached.
func (c *Reference[V]) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (V, error)) (V, error) {
	if v, ok := c.lru.Get(key); ok {
		return v, nil
	}
	v, err := loader(ctx)
	if err != nil {
		var zero V
		return zero, err
	}
	c.lru.Add(key, v)
	return v, nil
}

// Invalidate drops a single key, forcing the next read to reload.
func (c *Reference[V]) Invalidate(key string) {
	c.lru.Remove(key)
}

// Purge drops every cached entry.
func (c *Reference[V]) Purge() {
	c.lru.Purge()
}
