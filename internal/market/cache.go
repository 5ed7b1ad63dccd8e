package market

import (
	"sync"
	"time"
)

const DefaultCacheTTL = 10 * time.Second

type cacheEntry struct {
	price     float64
	fetchedAt time.Time
}

// Cache is a small in-memory price cache. An entry is readable only while its
// age is below the TTL; stale entries are treated as absent and overwritten by
// the next Set. The key space is bounded by the number of held symbols, so no
// eviction is performed.
type Cache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]cacheEntry
}

func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

func (c *Cache) Get(key string) (float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return 0, false
	}
	if c.now().Sub(e.fetchedAt) >= c.ttl {
		return 0, false
	}
	return e.price, true
}

func (c *Cache) Set(key string, price float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{price: price, fetchedAt: c.now()}
}
