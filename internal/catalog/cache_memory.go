package catalog

import (
	"context"
	"sync"
)

// MemCache keeps cache entries in process memory. Concurrent writers are
// last-writer-wins, which is acceptable for an advisory TTL cache.
type MemCache struct {
	mu sync.RWMutex
	m  map[string][]byte
}

func NewMemCache() *MemCache {
	return &MemCache{m: make(map[string][]byte)}
}

func (c *MemCache) Ping(ctx context.Context) error { return nil }

func (c *MemCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	payload, ok := c.m[key]
	if !ok {
		return nil, false, nil
	}

	out := make([]byte, len(payload))
	copy(out, payload)
	return out, true, nil
}

func (c *MemCache) Put(ctx context.Context, key string, payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored := make([]byte, len(payload))
	copy(stored, payload)
	c.m[key] = stored
	return nil
}
