package ui

// Package ui contains the Fyne display surface: a fullscreen window showing
// the current slide with a countdown underneath, or a placeholder while images
// load. All UI strings are localized via Localization.
