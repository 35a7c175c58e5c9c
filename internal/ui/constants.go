package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconReset    = "⟳"
	IconClose    = "×"
	IconError    = "❌"
	IconBug      = "🐞"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Layout sizing
const (
	NavMinWidth float32 = 140

	SettingsWidth  float32 = 640
	SettingsHeight float32 = 420

	PanelWindowWidth  float32 = 320
	PanelWindowHeight float32 = 240

	ErrorPanelMaxHeight float32 = 160

	// Share of the width kept by the central area when the side region shows
	SideSplitOffset = 0.75
)

// Frame timing
const (
	DefaultFrameInterval = 100 * time.Millisecond
)
