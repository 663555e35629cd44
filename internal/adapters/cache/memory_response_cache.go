package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

type entry struct {
	value   string
	expires time.Time
}

// MemoryResponseCache maps request keys (e.g. short links) to the raw
// responses they resolved to. Entries expire after the configured TTL.
// Keys are expected to be normalized by the caller.
//
// The cache is safe for concurrent use.
type MemoryResponseCache struct {
	mu    sync.Mutex
	items map[string]entry
	ttl   time.Duration
	now   func() time.Time
}

func NewMemoryResponseCache(ttl time.Duration) *MemoryResponseCache {
	return &MemoryResponseCache{
		items: make(map[string]entry),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Fetch the cached response for key. Expired entries are dropped.
func (c *MemoryResponseCache) Get(_ context.Context, key string) (string, bool, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", false, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e, found := c.items[key]
	if !found {
		return "", false, nil
	}
	if !c.now().Before(e.expires) {
		delete(c.items, key)
		return "", false, nil
	}

	return e.value, true, nil
}

// Store a key -> response mapping. Blank keys are ignored.
func (c *MemoryResponseCache) Put(_ context.Context, key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" || c.ttl <= 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = entry{value: value, expires: c.now().Add(c.ttl)}
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (c *MemoryResponseCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items)
}
