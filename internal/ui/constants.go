package ui

import "time"

// Window constants
const (
	WindowWidth  = 960
	WindowHeight = 640
)

// Card layout constants
const (
	CardWidth       = 280
	CardHeight      = 200
	ThumbnailWidth  = 256
	ThumbnailHeight = 144
)

// Swipe card icons
const (
	IconDiscard  = "✕"
	IconAccept   = "▶"
	IconSettings = "⚙"
)

// UI update pacing
const (
	UIUpdateDebounce = 100 * time.Millisecond
)
