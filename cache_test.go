package etherscan

import (
	"fmt"
	"testing"
	"time"
)

func TestCacheSetGet(t *testing.T) {
	c := newResultCache(DefaultCacheConfig())

	if _, ok := c.get("missing"); ok {
		t.Error("get() on empty cache reported a hit")
	}

	c.set("key1", "value1", 0)
	v, ok := c.get("key1")
	if !ok {
		t.Fatal("get() after set() reported a miss")
	}
	if v != "value1" {
		t.Errorf("get() = %v, want value1", v)
	}
	if got := c.len(); got != 1 {
		t.Errorf("len() = %d, want 1", got)
	}
}

func TestCacheExpiration(t *testing.T) {
	c := newResultCache(CacheConfig{MaxSize: 10, DefaultTTL: time.Minute, Enabled: true})

	c.set("short", "v", 10*time.Millisecond)
	if _, ok := c.get("short"); !ok {
		t.Fatal("entry missing immediately after set")
	}
	time.Sleep(25 * time.Millisecond)
	if _, ok := c.get("short"); ok {
		t.Error("expired entry still served")
	}
	// Expired entries are purged on read.
	if got := c.len(); got != 0 {
		t.Errorf("len() after expired read = %d, want 0", got)
	}
}

func TestCacheLRUEviction(t *testing.T) {
	c := newResultCache(CacheConfig{MaxSize: 2, DefaultTTL: time.Minute, Enabled: true})

	c.set("a", 1, 0)
	c.set("b", 2, 0)
	// Touch "a" so "b" becomes the eviction candidate.
	if _, ok := c.get("a"); !ok {
		t.Fatal("entry a missing")
	}
	c.set("c", 3, 0)

	if _, ok := c.get("b"); ok {
		t.Error("least-recently-used entry b survived eviction")
	}
	if _, ok := c.get("a"); !ok {
		t.Error("recently used entry a was evicted")
	}
	if _, ok := c.get("c"); !ok {
		t.Error("newest entry c missing")
	}
	if got := c.len(); got != 2 {
		t.Errorf("len() = %d, want 2", got)
	}
}

func TestCacheUpdateExistingKey(t *testing.T) {
	c := newResultCache(CacheConfig{MaxSize: 2, DefaultTTL: time.Minute, Enabled: true})

	c.set("a", 1, 0)
	c.set("b", 2, 0)
	c.set("a", 10, 0)

	if got := c.len(); got != 2 {
		t.Errorf("len() after in-place update = %d, want 2", got)
	}
	v, ok := c.get("a")
	if !ok || v != 10 {
		t.Errorf("get(a) = %v, %v, want 10, true", v, ok)
	}
}

func TestCacheDelete(t *testing.T) {
	c := newResultCache(DefaultCacheConfig())

	c.set("a", 1, 0)
	if !c.delete("a") {
		t.Error("delete(a) = false, want true")
	}
	if c.delete("a") {
		t.Error("second delete(a) = true, want false")
	}
	if _, ok := c.get("a"); ok {
		t.Error("deleted entry still served")
	}
}

func TestCacheClear(t *testing.T) {
	c := newResultCache(DefaultCacheConfig())

	for i := 0; i < 5; i++ {
		c.set(fmt.Sprintf("key%d", i), i, 0)
	}
	c.clear()
	if got := c.len(); got != 0 {
		t.Errorf("len() after clear = %d, want 0", got)
	}
	if _, ok := c.get("key0"); ok {
		t.Error("cleared entry still served")
	}
}

func TestCacheDisabled(t *testing.T) {
	cfg := DefaultCacheConfig()
	cfg.Enabled = false
	c := newResultCache(cfg)

	c.set("a", 1, 0)
	if _, ok := c.get("a"); ok {
		t.Error("disabled cache served an entry")
	}
	if got := c.len(); got != 0 {
		t.Errorf("len() on disabled cache = %d, want 0", got)
	}
}

func TestCacheUpdateConfigShrink(t *testing.T) {
	c := newResultCache(CacheConfig{MaxSize: 5, DefaultTTL: time.Minute, Enabled: true})
	for i := 0; i < 5; i++ {
		c.set(fmt.Sprintf("key%d", i), i, 0)
	}

	c.updateConfig(CacheConfig{MaxSize: 2, DefaultTTL: time.Minute, Enabled: true})
	if got := c.len(); got != 2 {
		t.Errorf("len() after shrink = %d, want 2", got)
	}
	// The most recently inserted entries survive.
	for _, key := range []string{"key3", "key4"} {
		if _, ok := c.get(key); !ok {
			t.Errorf("entry %s evicted, want it kept", key)
		}
	}
}

func TestCacheUpdateConfigDisableClears(t *testing.T) {
	c := newResultCache(DefaultCacheConfig())
	c.set("a", 1, 0)

	c.updateConfig(CacheConfig{MaxSize: 256, DefaultTTL: time.Minute, Enabled: false})
	if got := c.len(); got != 0 {
		t.Errorf("len() after disable = %d, want 0", got)
	}

	// Re-enabling starts from an empty cache.
	c.updateConfig(CacheConfig{MaxSize: 256, DefaultTTL: time.Minute, Enabled: true})
	if _, ok := c.get("a"); ok {
		t.Error("entry survived a disable/enable cycle")
	}
}

func TestCacheStatsSnapshot(t *testing.T) {
	c := newResultCache(CacheConfig{MaxSize: 10, DefaultTTL: time.Minute, Enabled: true})
	c.set("a", 1, 0)
	c.set("b", 2, 0)

	got := c.stats()
	want := CacheStats{Size: 2, MaxSize: 10, Enabled: true}
	if got != want {
		t.Errorf("stats() = %+v, want %+v", got, want)
	}
}

func TestCacheZeroConfigDefaults(t *testing.T) {
	c := newResultCache(CacheConfig{Enabled: true})
	if c.cfg.MaxSize != DefaultCacheConfig().MaxSize {
		t.Errorf("MaxSize = %d, want default %d", c.cfg.MaxSize, DefaultCacheConfig().MaxSize)
	}
	if c.cfg.DefaultTTL != DefaultCacheConfig().DefaultTTL {
		t.Errorf("DefaultTTL = %v, want default %v", c.cfg.DefaultTTL, DefaultCacheConfig().DefaultTTL)
	}
}
