package params

import (
	"context"
	"sync"
	"time"
)

// Cached wraps a Provider with a per-name TTL cache. Hits within the TTL
// skip the underlying provider entirely; errors are never cached, so a
// transient store outage heals on the next lookup.
type Cached struct {
	Source Provider
	TTL    time.Duration

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time

	mu      sync.RWMutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	value     string
	fetchedAt time.Time
}

// NewCached wraps source with a TTL cache.
func NewCached(source Provider, ttl time.Duration) *Cached {
	return &Cached{
		Source:  source,
		TTL:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

func (c *Cached) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *Cached) Get(ctx context.Context, name string) (string, error) {
	c.mu.RLock()
	entry, ok := c.entries[name]
	c.mu.RUnlock()

	if ok && c.now().Sub(entry.fetchedAt) < c.TTL {
		return entry.value, nil
	}

	v, err := c.Source.Get(ctx, name)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	if c.entries == nil {
		c.entries = make(map[string]cacheEntry)
	}
	c.entries[name] = cacheEntry{value: v, fetchedAt: c.now()}
	c.mu.Unlock()

	return v, nil
}

// Invalidate drops a cached entry, forcing the next Get through to the
// source. Used after a parameter is rewritten.
func (c *Cached) Invalidate(name string) {
	c.mu.Lock()
	delete(c.entries, name)
	c.mu.Unlock()
}
