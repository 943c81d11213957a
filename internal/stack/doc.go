package stack

// Package stack holds the two small interactive state machines behind
// Discover: the Sunday Picks discard stack consuming swipe gestures, and
// the Trending This Week cyclic rotation with its timer lifecycle.
