package api

// Package api implements the JSON-over-HTTP client for the discovery
// backend: videos, categories, submissions, lists, and feeds. Endpoints,
// auth, and persistence live server-side; this package only shapes
// requests and decodes responses.
