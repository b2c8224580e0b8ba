package ui

// UI-wide constants to avoid magic numbers scattered across the codebase.

// Window sizing when not fullscreen
const (
	WindowWidth  float32 = 1280
	WindowHeight float32 = 800
)

// Layout sizing
const (
	ContentPadding      float32 = 20
	CountdownTextSize   float32 = 20
	PlaceholderTextSize float32 = 28
	StatusTextSize      float32 = 14
)

// Auth dialog sizing
const (
	AuthDialogWidth float32 = 560
)


// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 460
)

// MaxListedFailures caps how many skipped file names the placeholder lists
const MaxListedFailures = 5
