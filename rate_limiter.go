package etherscan

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// maxConcurrentCalls bounds simultaneous in-flight network calls per
// credential, independent of the per-second pacing.
const maxConcurrentCalls = 2

// creditLimiter is the single choke point every network call for one API
// key passes through. It combines three controls:
//
//   - per-second pacing: minimum spacing of 1/rps between dispatches
//     (token bucket with burst 1, via golang.org/x/time/rate)
//   - bounded concurrency: at most maxConcurrentCalls in flight
//   - a reservoir: a daily credit quota refilled in full every
//     refillInterval; when exhausted, callers queue until the next refill
//
// It delays work, never drops it. Shared across all clients built with the
// same credential via limiterRegistry.
type creditLimiter struct {
	pacer *rate.Limiter
	slots chan struct{}

	mu        sync.Mutex
	reservoir int
	capacity  int
	refilled  chan struct{}

	ticker   *time.Ticker
	quit     chan struct{}
	stopOnce sync.Once
}

func newCreditLimiter(rps float64, dailyQuota int, refillInterval time.Duration) *creditLimiter {
	if rps <= 0 {
		rps = 5
	}
	l := &creditLimiter{
		pacer:     rate.NewLimiter(rate.Limit(rps), 1),
		slots:     make(chan struct{}, maxConcurrentCalls),
		reservoir: dailyQuota,
		capacity:  dailyQuota,
		refilled:  make(chan struct{}),
		quit:      make(chan struct{}),
	}
	for i := 0; i < maxConcurrentCalls; i++ {
		l.slots <- struct{}{}
	}
	if dailyQuota > 0 && refillInterval > 0 {
		l.ticker = time.NewTicker(refillInterval)
		go l.refillLoop()
	}
	return l
}

func (l *creditLimiter) refillLoop() {
	for {
		select {
		case <-l.ticker.C:
			l.mu.Lock()
			l.reservoir = l.capacity
			close(l.refilled)
			l.refilled = make(chan struct{})
			l.mu.Unlock()
		case <-l.quit:
			return
		}
	}
}

// Acquire blocks until a credit, a pacing token and a concurrency slot are
// all available, or the context is done. Every successful Acquire must be
// paired with Release.
func (l *creditLimiter) Acquire(ctx context.Context) error {
	if l.capacity > 0 {
		for {
			l.mu.Lock()
			if l.reservoir > 0 {
				l.reservoir--
				l.mu.Unlock()
				break
			}
			refilled := l.refilled
			l.mu.Unlock()
			select {
			case <-refilled:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	if err := l.pacer.Wait(ctx); err != nil {
		l.refund()
		return err
	}
	select {
	case <-l.slots:
		return nil
	case <-ctx.Done():
		l.refund()
		return ctx.Err()
	}
}

// refund returns a credit taken by an Acquire that never dispatched, so a
// canceled wait cannot shrink the daily quota. Going from empty to
// non-empty wakes callers queued on the reservoir.
func (l *creditLimiter) refund() {
	if l.capacity <= 0 {
		return
	}
	l.mu.Lock()
	if l.reservoir < l.capacity {
		l.reservoir++
		if l.reservoir == 1 {
			close(l.refilled)
			l.refilled = make(chan struct{})
		}
	}
	l.mu.Unlock()
}

// Release returns the concurrency slot taken by Acquire.
func (l *creditLimiter) Release() {
	l.slots <- struct{}{}
}

// remaining reports the current reservoir level; 0 capacity means
// unlimited.
func (l *creditLimiter) remaining() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.reservoir
}

// stop halts the refill loop. Callers already queued keep their place;
// stop is invoked only once no client references the limiter anymore.
func (l *creditLimiter) stop() {
	l.stopOnce.Do(func() {
		if l.ticker != nil {
			l.ticker.Stop()
		}
		close(l.quit)
	})
}
