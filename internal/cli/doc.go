package cli

// Package cli holds the gallery-viewer command: flag parsing, configuration
// loading and the wiring that starts the slideshow.
