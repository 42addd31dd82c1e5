package etherscan

import (
	"testing"
	"time"
)

func TestCredentialHash(t *testing.T) {
	a := credentialHash("key-one")
	b := credentialHash("key-two")
	if a == b {
		t.Error("different credentials produced the same hash")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a))
	}
	if a != credentialHash("key-one") {
		t.Error("hash is not deterministic")
	}
}

func TestRegistrySharesLimiterPerCredential(t *testing.T) {
	r := NewLimiterRegistry()
	hash := credentialHash("shared-key")

	l1 := r.acquire(hash, 5, 1000, time.Hour)
	l2 := r.acquire(hash, 99, 5, time.Minute)
	if l1 != l2 {
		t.Error("same credential produced distinct limiters")
	}
	// The first acquisition's settings win.
	if l1.capacity != 1000 {
		t.Errorf("capacity = %d, want the first caller's 1000", l1.capacity)
	}
	if got := r.RefCount(hash); got != 2 {
		t.Errorf("RefCount = %d, want 2", got)
	}
	r.release(hash)
	r.release(hash)
}

func TestRegistryIsolatesCredentials(t *testing.T) {
	r := NewLimiterRegistry()
	h1 := credentialHash("key-one")
	h2 := credentialHash("key-two")

	l1 := r.acquire(h1, 5, 0, 0)
	l2 := r.acquire(h2, 5, 0, 0)
	if l1 == l2 {
		t.Error("distinct credentials share a limiter")
	}
	if got := r.Len(); got != 2 {
		t.Errorf("Len = %d, want 2", got)
	}
	r.release(h1)
	r.release(h2)
}

func TestRegistryReleaseTearsDownAtZero(t *testing.T) {
	r := NewLimiterRegistry()
	hash := credentialHash("key")

	r.acquire(hash, 5, 0, 0)
	r.acquire(hash, 5, 0, 0)

	r.release(hash)
	if got := r.RefCount(hash); got != 1 {
		t.Errorf("RefCount after first release = %d, want 1", got)
	}
	r.release(hash)
	if got := r.RefCount(hash); got != 0 {
		t.Errorf("RefCount after final release = %d, want 0", got)
	}
	if got := r.Len(); got != 0 {
		t.Errorf("Len after final release = %d, want 0", got)
	}
}

func TestRegistryReleaseUnknownHash(t *testing.T) {
	r := NewLimiterRegistry()
	r.release("never-acquired")
	if got := r.Len(); got != 0 {
		t.Errorf("Len = %d, want 0", got)
	}
}
