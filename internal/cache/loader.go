package cache

import (
	"context"
	"sync"
	"time"
)

// FetchFunc loads the value for a key from the network
type FetchFunc[K comparable, V any] func(ctx context.Context, key K) (V, error)

// Loader memoizes fetches by key. For any key there is at most one
// outstanding fetch at a time; concurrent Resolve calls for the same key
// share the single in-flight request and receive the identical value.
// Failed fetches are not cached: the entry is cleared so a later Resolve
// retries. Entries are never evicted, which is acceptable for the
// lifetime of a single app session (known limitation, not enforced here).
type Loader[K comparable, V any] struct {
	fetch FetchFunc[K, V]

	mu      sync.Mutex
	entries map[K]*entry[V]
}

// entry holds either a settled value or an in-flight fetch. The done
// channel is closed exactly once, when the fetch settles.
type entry[V any] struct {
	done       chan struct{}
	value      V
	err        error
	insertedAt time.Time
}

// NewLoader creates a loader backed by the given fetch function
func NewLoader[K comparable, V any](fetch FetchFunc[K, V]) *Loader[K, V] {
	return &Loader[K, V]{
		fetch:   fetch,
		entries: make(map[K]*entry[V]),
	}
}

// Resolve returns the cached value for key, starting a fetch if none is
// cached or in flight. Cancelling ctx abandons the wait but not the
// fetch itself: a fetch with no remaining waiters still completes and
// populates the cache for the next caller.
func (l *Loader[K, V]) Resolve(ctx context.Context, key K) (V, error) {
	l.mu.Lock()
	if e, ok := l.entries[key]; ok {
		l.mu.Unlock()
		return e.wait(ctx)
	}

	e := &entry[V]{
		done:       make(chan struct{}),
		insertedAt: time.Now(),
	}
	l.entries[key] = e
	l.mu.Unlock()

	go l.run(key, e)

	return e.wait(ctx)
}

// run performs the fetch for a fresh entry and settles it
func (l *Loader[K, V]) run(key K, e *entry[V]) {
	// Detached from any caller context: the cache does not support
	// cancellation of in-flight fetches.
	value, err := l.fetch(context.Background(), key)

	l.mu.Lock()
	if err != nil {
		// Do not cache failures. Only clear the slot if this entry
		// still owns it; Invalidate may have raced us.
		if l.entries[key] == e {
			delete(l.entries, key)
		}
	}
	l.mu.Unlock()

	e.value = value
	e.err = err
	close(e.done)
}

// Has reports whether key has settled successfully in the cache
func (l *Loader[K, V]) Has(key K) bool {
	_, ok := l.Peek(key)
	return ok
}

// Peek returns the settled value for key without triggering a fetch.
// It reports false for missing, in-flight, and failed entries.
func (l *Loader[K, V]) Peek(key K) (V, bool) {
	l.mu.Lock()
	e, ok := l.entries[key]
	l.mu.Unlock()

	var zero V
	if !ok {
		return zero, false
	}

	select {
	case <-e.done:
		if e.err != nil {
			return zero, false
		}
		return e.value, true
	default:
		return zero, false
	}
}

// Invalidate drops the settled entry for key so the next Resolve
// refetches. An in-flight entry is left alone; its result will land and
// can be invalidated afterwards.
func (l *Loader[K, V]) Invalidate(key K) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok {
		return
	}

	select {
	case <-e.done:
		delete(l.entries, key)
	default:
	}
}

// Len returns the number of cached or in-flight entries
func (l *Loader[K, V]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// wait blocks until the entry settles or ctx is cancelled
func (e *entry[V]) wait(ctx context.Context) (V, error) {
	select {
	case <-e.done:
		return e.value, e.err
	case <-ctx.Done():
		var zero V
		return zero, ctx.Err()
	}
}
