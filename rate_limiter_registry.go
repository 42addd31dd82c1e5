package etherscan

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

// LimiterRegistry hands out credit limiters keyed by a one-way hash of the
// API credential, so every client constructed with the same key shares one
// limiter and instantiating multiple clients cannot defeat rate limiting.
// Entries are reference counted: a limiter is torn down only when the last
// owning client releases it.
//
// Clients use a process-wide default registry unless WithLimiterRegistry
// injects an isolated one (useful in tests to avoid cross-test leakage).
type LimiterRegistry struct {
	mu      sync.Mutex
	entries map[string]*limiterEntry
}

type limiterEntry struct {
	limiter *creditLimiter
	refs    int
}

// NewLimiterRegistry returns an empty, isolated registry.
func NewLimiterRegistry() *LimiterRegistry {
	return &LimiterRegistry{entries: make(map[string]*limiterEntry)}
}

var defaultLimiterRegistry = NewLimiterRegistry()

// credentialHash derives the registry key. The raw credential is never
// stored or logged; only this hash identifies it.
func credentialHash(apiKey string) string {
	sum := sha256.Sum256([]byte(apiKey))
	return hex.EncodeToString(sum[:])
}

// acquire returns the limiter for hash, creating it on first acquisition
// with the given settings. Later acquisitions reuse the existing limiter
// (its original settings win) and bump the reference count.
func (r *LimiterRegistry) acquire(hash string, rps float64, dailyQuota int, refillInterval time.Duration) *creditLimiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry, ok := r.entries[hash]; ok {
		entry.refs++
		return entry.limiter
	}
	entry := &limiterEntry{
		limiter: newCreditLimiter(rps, dailyQuota, refillInterval),
		refs:    1,
	}
	r.entries[hash] = entry
	return entry.limiter
}

// release drops one reference; at zero the limiter is stopped and the
// entry removed. Queued work already waiting on the limiter drains rather
// than being dropped.
func (r *LimiterRegistry) release(hash string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[hash]
	if !ok {
		return
	}
	entry.refs--
	if entry.refs > 0 {
		return
	}
	entry.limiter.stop()
	delete(r.entries, hash)
}

// RefCount reports the live reference count for a credential hash.
func (r *LimiterRegistry) RefCount(hash string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if entry, ok := r.entries[hash]; ok {
		return entry.refs
	}
	return 0
}

// Len reports the number of distinct credentials currently registered.
func (r *LimiterRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
