package model

// Package model defines domain data structures used across the app: video
// references and hydrated videos, user lists, feed queries, and mode/sort
// enums. Structures are designed for direct binding in the UI and explicit
// handling of the resolved/unresolved reference shapes.
