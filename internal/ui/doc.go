package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user interactions to the feed controller, the swipe and rotation
// stacks, and the list service, and renders video cards, dialogs, and tabs.
// All UI strings are localized via Localization.
