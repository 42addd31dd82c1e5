package etherscan

import (
	"container/list"
	"sync"
	"time"
)

// CacheConfig configures the per-client validated-result cache.
type CacheConfig struct {
	// MaxSize bounds the entry count; inserting beyond it evicts the
	// least-recently-used entry.
	MaxSize int
	// DefaultTTL applies to entries stored without an explicit TTL.
	DefaultTTL time.Duration
	// Enabled toggles the cache. A disabled cache accepts writes as
	// no-ops and always misses on read.
	Enabled bool
}

// CacheStats is a point-in-time snapshot for observability.
type CacheStats struct {
	Size    int
	MaxSize int
	Enabled bool
}

// DefaultCacheConfig is used when no WithCache option is given.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{MaxSize: 256, DefaultTTL: 10 * time.Second, Enabled: true}
}

type cacheEntry struct {
	key      string
	value    interface{}
	storedAt time.Time
	ttl      time.Duration
}

// resultCache is an LRU+TTL store of validated responses keyed by request
// signature. Private to one client; guarded by a single mutex since the
// critical sections are tiny.
type resultCache struct {
	mu      sync.Mutex
	cfg     CacheConfig
	entries map[string]*list.Element
	order   *list.List // front = most recently used
}

func newResultCache(cfg CacheConfig) *resultCache {
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = DefaultCacheConfig().MaxSize
	}
	if cfg.DefaultTTL <= 0 {
		cfg.DefaultTTL = DefaultCacheConfig().DefaultTTL
	}
	return &resultCache{
		cfg:     cfg,
		entries: make(map[string]*list.Element),
		order:   list.New(),
	}
}

// get returns a non-expired entry, refreshing its recency. Expired entries
// are purged on read rather than waiting for a sweep.
func (c *resultCache) get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.cfg.Enabled {
		return nil, false
	}
	elem, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	entry := elem.Value.(*cacheEntry)
	if time.Since(entry.storedAt) > entry.ttl {
		c.removeElement(elem)
		return nil, false
	}
	c.order.MoveToFront(elem)
	return entry.value, true
}

// set stores a validated value. A zero ttl falls back to DefaultTTL.
// Updating an existing key refreshes value and recency without counting
// against capacity twice.
func (c *resultCache) set(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.cfg.Enabled {
		return
	}
	if ttl <= 0 {
		ttl = c.cfg.DefaultTTL
	}
	if elem, ok := c.entries[key]; ok {
		entry := elem.Value.(*cacheEntry)
		entry.value = value
		entry.storedAt = time.Now()
		entry.ttl = ttl
		c.order.MoveToFront(elem)
		return
	}
	if c.order.Len() >= c.cfg.MaxSize {
		c.evictOldest()
	}
	elem := c.order.PushFront(&cacheEntry{
		key:      key,
		value:    value,
		storedAt: time.Now(),
		ttl:      ttl,
	})
	c.entries[key] = elem
}

func (c *resultCache) delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		return false
	}
	c.removeElement(elem)
	return true
}

func (c *resultCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*list.Element)
	c.order.Init()
}

func (c *resultCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *resultCache) stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CacheStats{Size: c.order.Len(), MaxSize: c.cfg.MaxSize, Enabled: c.cfg.Enabled}
}

// updateConfig applies a new configuration. Shrinking MaxSize evicts down
// to the new bound immediately; disabling clears all entries so no stale
// state survives a disable/enable cycle.
func (c *resultCache) updateConfig(cfg CacheConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cfg.MaxSize <= 0 {
		cfg.MaxSize = c.cfg.MaxSize
	}
	if cfg.DefaultTTL <= 0 {
		cfg.DefaultTTL = c.cfg.DefaultTTL
	}
	c.cfg = cfg
	if !cfg.Enabled {
		c.entries = make(map[string]*list.Element)
		c.order.Init()
		return
	}
	for c.order.Len() > cfg.MaxSize {
		c.evictOldest()
	}
}

func (c *resultCache) evictOldest() {
	if elem := c.order.Back(); elem != nil {
		c.removeElement(elem)
	}
}

func (c *resultCache) removeElement(elem *list.Element) {
	entry := elem.Value.(*cacheEntry)
	delete(c.entries, entry.key)
	c.order.Remove(elem)
}
