package stack

import (
	"sync"
	"time"

	"github.com/vidscope/vidscope-desktop/internal/model"
)

// Rotation constants
const (
	DefaultRotationInterval = 5 * time.Second
	MaxOverlayCards         = 4
)

// RotationStack is the Trending This Week rotation: a cyclic pointer
// over a fixed session snapshot of videos, advanced by a timer tick and
// by manual selection of a background card. Sequences shorter than two
// items never tick and never start a timer.
type RotationStack struct {
	mu       sync.Mutex
	sequence []*model.Video
	pointer  int

	interval  time.Duration
	stop      chan struct{}
	onAdvance func(pointer int)
}

// NewRotationStack creates a rotation over a fixed snapshot sequence
func NewRotationStack(sequence []*model.Video) *RotationStack {
	r := &RotationStack{interval: DefaultRotationInterval}
	r.sequence = append(r.sequence, sequence...)
	return r
}

// SetAdvanceCallback sets the callback invoked after every pointer move
func (r *RotationStack) SetAdvanceCallback(callback func(pointer int)) {
	r.mu.Lock()
	r.onAdvance = callback
	r.mu.Unlock()
}

// Tick advances the pointer by one, wrapping around. Sequences shorter
// than two items are left untouched. Returns the resulting pointer.
func (r *RotationStack) Tick() int {
	r.mu.Lock()
	if len(r.sequence) < 2 {
		pointer := r.pointer
		r.mu.Unlock()
		return pointer
	}

	r.pointer = (r.pointer + 1) % len(r.sequence)
	pointer := r.pointer
	callback := r.onAdvance
	r.mu.Unlock()

	if callback != nil {
		callback(pointer)
	}
	return pointer
}

// Select jumps the pointer to the background card at relative offset,
// then resumes the timer from the new position.
func (r *RotationStack) Select(offset int) int {
	r.mu.Lock()
	if len(r.sequence) == 0 {
		r.mu.Unlock()
		return 0
	}

	offset %= len(r.sequence)
	if offset < 0 {
		offset += len(r.sequence)
	}
	r.pointer = (r.pointer + offset) % len(r.sequence)
	pointer := r.pointer
	callback := r.onAdvance
	running := r.stop != nil
	interval := r.interval
	r.mu.Unlock()

	if callback != nil {
		callback(pointer)
	}

	// Restart the timer so the full interval elapses before the next
	// automatic advance.
	if running {
		r.Stop()
		r.Start(interval)
	}
	return pointer
}

// Pointer returns the current pointer position
func (r *RotationStack) Pointer() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pointer
}

// Len returns the snapshot length
func (r *RotationStack) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sequence)
}

// Front returns the element at the pointer, or false for an empty
// sequence.
func (r *RotationStack) Front() (*model.Video, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.sequence) == 0 {
		return nil, false
	}
	return r.sequence[r.pointer], true
}

// Overlay returns up to MaxOverlayCards elements starting one past the
// pointer, wrapping around and excluding the front card.
func (r *RotationStack) Overlay() []*model.Video {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.sequence)
	if n < 2 {
		return nil
	}

	count := MaxOverlayCards
	if count > n-1 {
		count = n - 1
	}

	overlay := make([]*model.Video, 0, count)
	for k := 0; k < count; k++ {
		overlay = append(overlay, r.sequence[(r.pointer+1+k)%n])
	}
	return overlay
}

// Start begins timer-driven rotation at the given interval. It is a
// no-op when a timer is already running or the sequence has fewer than
// two items. Every Start must be paired with Stop on tab change or
// teardown so switched-away views never leave a timer advancing the
// pointer.
func (r *RotationStack) Start(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultRotationInterval
	}

	r.mu.Lock()
	if r.stop != nil || len(r.sequence) < 2 {
		r.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	r.stop = stop
	r.interval = interval
	r.mu.Unlock()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				r.Tick()
			case <-stop:
				return
			}
		}
	}()
}

// Stop tears the rotation timer down. Safe to call repeatedly and when
// no timer is running.
func (r *RotationStack) Stop() {
	r.mu.Lock()
	stop := r.stop
	r.stop = nil
	r.mu.Unlock()

	if stop != nil {
		close(stop)
	}
}

// Running reports whether the rotation timer is active
func (r *RotationStack) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stop != nil
}
