package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestResolveCachesValue(t *testing.T) {
	var calls int32
	loader := NewLoader(func(ctx context.Context, key string) (string, error) {
		atomic.AddInt32(&calls, 1)
		return "value-" + key, nil
	})

	ctx := context.Background()

	value, err := loader.Resolve(ctx, "a")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if value != "value-a" {
		t.Errorf("Expected 'value-a', got '%s'", value)
	}

	// Second resolve must come from the cache
	value, err = loader.Resolve(ctx, "a")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if value != "value-a" {
		t.Errorf("Expected 'value-a', got '%s'", value)
	}

	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("Expected exactly 1 fetch, got %d", n)
	}
}

func TestConcurrentResolvesShareOneFetch(t *testing.T) {
	var calls int32
	release := make(chan struct{})

	loader := NewLoader(func(ctx context.Context, key string) (int, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return 42, nil
	})

	const workers = 50
	results := make([]int, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = loader.Resolve(context.Background(), "k")
		}(i)
	}

	// Let all workers pile up on the same in-flight entry before it settles
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("Expected exactly 1 fetch for %d concurrent resolves, got %d", workers, n)
	}

	for i := 0; i < workers; i++ {
		if errs[i] != nil {
			t.Fatalf("Worker %d: expected no error, got %v", i, errs[i])
		}
		if results[i] != 42 {
			t.Errorf("Worker %d: expected 42, got %d", i, results[i])
		}
	}
}

func TestFailureIsNotCached(t *testing.T) {
	var calls int32
	loader := NewLoader(func(ctx context.Context, key string) (string, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			return "", errors.New("network down")
		}
		return "recovered", nil
	})

	ctx := context.Background()

	if _, err := loader.Resolve(ctx, "k"); err == nil {
		t.Fatal("Expected error from first resolve, got nil")
	}

	if loader.Has("k") {
		t.Error("Failed entry should not remain in the cache")
	}

	value, err := loader.Resolve(ctx, "k")
	if err != nil {
		t.Fatalf("Expected retry to succeed, got %v", err)
	}
	if value != "recovered" {
		t.Errorf("Expected 'recovered', got '%s'", value)
	}

	if n := atomic.LoadInt32(&calls); n != 2 {
		t.Errorf("Expected 2 fetches (failure then retry), got %d", n)
	}
}

func TestInvalidateForcesRefetch(t *testing.T) {
	var calls int32
	loader := NewLoader(func(ctx context.Context, key string) (int32, error) {
		return atomic.AddInt32(&calls, 1), nil
	})

	ctx := context.Background()

	first, _ := loader.Resolve(ctx, "k")
	loader.Invalidate("k")
	second, _ := loader.Resolve(ctx, "k")

	if first == second {
		t.Errorf("Expected a fresh fetch after invalidate, got the same value %d", first)
	}
}

func TestHasAndPeek(t *testing.T) {
	loader := NewLoader(func(ctx context.Context, key string) (string, error) {
		return "v", nil
	})

	if loader.Has("missing") {
		t.Error("Has should be false for a missing key")
	}
	if _, ok := loader.Peek("missing"); ok {
		t.Error("Peek should report false for a missing key")
	}

	if _, err := loader.Resolve(context.Background(), "k"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !loader.Has("k") {
		t.Error("Has should be true after a successful resolve")
	}
	value, ok := loader.Peek("k")
	if !ok || value != "v" {
		t.Errorf("Peek = (%q, %v), expected (\"v\", true)", value, ok)
	}
	if loader.Len() != 1 {
		t.Errorf("Expected 1 entry, got %d", loader.Len())
	}
}

func TestCancelledWaiterDoesNotAbortFetch(t *testing.T) {
	release := make(chan struct{})
	loader := NewLoader(func(ctx context.Context, key string) (string, error) {
		<-release
		return "late", nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := loader.Resolve(ctx, "k"); err == nil {
		t.Fatal("Expected context error for cancelled waiter, got nil")
	}

	// The detached fetch still completes and populates the cache
	close(release)

	deadline := time.After(2 * time.Second)
	for !loader.Has("k") {
		select {
		case <-deadline:
			t.Fatal("Fetch result never landed in the cache after waiter cancellation")
		case <-time.After(10 * time.Millisecond):
		}
	}

	value, err := loader.Resolve(context.Background(), "k")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if value != "late" {
		t.Errorf("Expected 'late', got '%s'", value)
	}
}
