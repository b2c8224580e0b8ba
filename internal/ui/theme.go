package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// SlideshowTheme is a dark theme with a black backdrop so letterboxing around
// photos is invisible
type SlideshowTheme struct{}

// NewSlideshowTheme creates a new slideshow theme
func NewSlideshowTheme() fyne.Theme {
	return &SlideshowTheme{}
}

// Color returns theme colors; the variant is always dark
func (t *SlideshowTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.Black
	case theme.ColorNameForeground:
		return color.RGBA{R: 230, G: 230, B: 230, A: 255} // Soft white text
	case theme.ColorNameError:
		return color.RGBA{R: 229, G: 57, B: 53, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 0, G: 97, B: 254, A: 255}
	}

	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *SlideshowTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *SlideshowTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *SlideshowTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 16
	case theme.SizeNameHeadingText:
		return PlaceholderTextSize
	}

	return theme.DefaultTheme().Size(name)
}
