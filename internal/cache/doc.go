package cache

// Package cache implements the deduplicating async loader that backs all
// reference resolution in the app: video ids to hydrated videos, YouTube
// ids to working thumbnail URLs, and video ids to category display names.
// The central guarantee is at-most-one-concurrent-fetch-per-key.
