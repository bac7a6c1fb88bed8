package main

// Native notification names, as seen by the relay.
const (
	NativeThemeChanged = "system:theme-changed"
)

// Event name constants for Wails runtime events
const (
	EventThemeChanged     = "theme-changed"
	EventThemeModeChanged = "theme-mode-changed"
)
