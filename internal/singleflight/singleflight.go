// Package singleflight collapses concurrent identical requests into one
// underlying call. Unlike the classic form it removes entries on
// settlement, so a call issued after a prior one settles always starts a
// fresh execution, and waiters honor context cancellation.
package singleflight

import (
	"context"
	"sync"
)

// Group manages in-flight calls keyed by request signature.
type Group struct {
	mu sync.Mutex
	m  map[string]*call
}

type call struct {
	done chan struct{}
	val  interface{}
	err  error
}

// New creates an empty Group.
func New() *Group {
	return &Group{m: make(map[string]*call)}
}

// Do executes fn if no call for key is in flight, otherwise waits for the
// in-flight call and returns its result. All concurrent callers for a key
// observe the identical success or failure of exactly one fn invocation.
// The entry is removed the instant fn settles, before waiters are
// released, so the very next Do for the same key invokes fn again.
//
// A waiter whose context ends before settlement returns ctx.Err(); the
// underlying call keeps running for the remaining waiters.
func (g *Group) Do(ctx context.Context, key string, fn func() (interface{}, error)) (interface{}, error) {
	g.mu.Lock()
	if c, ok := g.m[key]; ok {
		g.mu.Unlock()
		select {
		case <-c.done:
			return c.val, c.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	c := &call{done: make(chan struct{})}
	g.m[key] = c
	g.mu.Unlock()

	c.val, c.err = fn()

	g.mu.Lock()
	delete(g.m, key)
	g.mu.Unlock()
	close(c.done)

	return c.val, c.err
}

// Len reports the number of in-flight calls.
func (g *Group) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.m)
}

// Clear forgets all in-flight entries. Pending calls still settle and
// release their waiters; they just no longer absorb new callers.
func (g *Group) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.m = make(map[string]*call)
}
