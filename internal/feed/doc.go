package feed

// Package feed implements the Discover feed controller: one fetch per
// mode/query change, client-side sort for the default grid, per-item
// category enrichment through the dedup cache, and a generation guard so
// a stale response can never clobber a newer query's state.
