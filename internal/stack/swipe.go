package stack

import (
	"sync"

	"github.com/vidscope/vidscope-desktop/internal/model"
)

// SwipeStack is the Sunday Picks discard stack: an ordered queue of
// candidate videos consumed front-first by discard gestures. Accepting
// the front card signals navigation and leaves the queue untouched; the
// stack is simply abandoned afterwards. Only the front card is
// interactive, the card behind it is a visual preview.
type SwipeStack struct {
	mu    sync.Mutex
	queue []model.VideoRef
}

// NewSwipeStack creates a stack over the given candidate queue
func NewSwipeStack(queue []model.VideoRef) *SwipeStack {
	s := &SwipeStack{}
	s.queue = append(s.queue, queue...)
	return s
}

// Front returns the interactive front card, or false when empty
func (s *SwipeStack) Front() (model.VideoRef, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.queue) == 0 {
		return model.VideoRef{}, false
	}
	return s.queue[0], true
}

// Preview returns the card rendered behind the front one. It is display
// only; gesture input against it must be rejected by the caller.
func (s *SwipeStack) Preview() (model.VideoRef, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.queue) < 2 {
		return model.VideoRef{}, false
	}
	return s.queue[1], true
}

// Discard pops the front card. On an empty stack it is a no-op.
func (s *SwipeStack) Discard() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.queue) == 0 {
		return
	}
	s.queue = s.queue[1:]
}

// Accept returns the front card for navigation without mutating the
// queue. On an empty stack it reports false.
func (s *SwipeStack) Accept() (model.VideoRef, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.queue) == 0 {
		return model.VideoRef{}, false
	}
	return s.queue[0], true
}

// Len returns the number of remaining candidates
func (s *SwipeStack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// IsEmpty reports whether the stack has been exhausted
func (s *SwipeStack) IsEmpty() bool {
	return s.Len() == 0
}
