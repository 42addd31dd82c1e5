package singleflight

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestDoBasic(t *testing.T) {
	g := New()
	v, err := g.Do(context.Background(), "key", func() (interface{}, error) {
		return "value", nil
	})
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if v != "value" {
		t.Errorf("Do() = %v, want value", v)
	}
}

func TestDoError(t *testing.T) {
	g := New()
	sentinel := errors.New("boom")
	_, err := g.Do(context.Background(), "key", func() (interface{}, error) {
		return nil, sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Errorf("Do() error = %v, want sentinel", err)
	}
}

func TestDoCoalescesConcurrentCallers(t *testing.T) {
	g := New()
	var executions atomic.Int32
	release := make(chan struct{})

	const callers = 8
	var wg sync.WaitGroup
	results := make([]interface{}, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = g.Do(context.Background(), "key", func() (interface{}, error) {
				executions.Add(1)
				<-release
				return "shared", nil
			})
		}(i)
	}
	// Give every goroutine time to join the in-flight call.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if n := executions.Load(); n != 1 {
		t.Errorf("fn executed %d times, want 1", n)
	}
	for i := 0; i < callers; i++ {
		if errs[i] != nil {
			t.Errorf("caller %d error = %v", i, errs[i])
		}
		if results[i] != "shared" {
			t.Errorf("caller %d = %v, want shared", i, results[i])
		}
	}
}

func TestDoRemovesEntryOnSettlement(t *testing.T) {
	g := New()
	var executions atomic.Int32
	fn := func() (interface{}, error) {
		executions.Add(1)
		return nil, nil
	}

	if _, err := g.Do(context.Background(), "key", fn); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if _, err := g.Do(context.Background(), "key", fn); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if n := executions.Load(); n != 2 {
		t.Errorf("fn executed %d times across sequential calls, want 2", n)
	}
	if g.Len() != 0 {
		t.Errorf("Len() = %d after settlement, want 0", g.Len())
	}
}

func TestDoDistinctKeysRunIndependently(t *testing.T) {
	g := New()
	var executions atomic.Int32
	var wg sync.WaitGroup
	for _, key := range []string{"a", "b", "c"} {
		wg.Add(1)
		go func(key string) {
			defer wg.Done()
			g.Do(context.Background(), key, func() (interface{}, error) {
				executions.Add(1)
				time.Sleep(10 * time.Millisecond)
				return key, nil
			})
		}(key)
	}
	wg.Wait()
	if n := executions.Load(); n != 3 {
		t.Errorf("fn executed %d times, want 3", n)
	}
}

func TestDoWaiterHonorsContext(t *testing.T) {
	g := New()
	started := make(chan struct{})
	release := make(chan struct{})

	go g.Do(context.Background(), "key", func() (interface{}, error) {
		close(started)
		<-release
		return "late", nil
	})
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := g.Do(ctx, "key", func() (interface{}, error) {
		t.Error("waiter executed fn while another call was in flight")
		return nil, nil
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("waiter error = %v, want deadline exceeded", err)
	}
	close(release)
}

func TestClearDetachesPendingCalls(t *testing.T) {
	g := New()
	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		g.Do(context.Background(), "key", func() (interface{}, error) {
			close(started)
			<-release
			return nil, nil
		})
	}()
	<-started

	g.Clear()
	if g.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", g.Len())
	}

	// A new call for the same key starts a fresh execution instead of
	// joining the detached one.
	var executions atomic.Int32
	fresh := make(chan struct{})
	go func() {
		g.Do(context.Background(), "key", func() (interface{}, error) {
			executions.Add(1)
			return nil, nil
		})
		close(fresh)
	}()
	select {
	case <-fresh:
	case <-time.After(time.Second):
		t.Fatal("post-Clear call joined the detached execution")
	}
	if n := executions.Load(); n != 1 {
		t.Errorf("fresh execution count = %d, want 1", n)
	}

	close(release)
	<-done
}
