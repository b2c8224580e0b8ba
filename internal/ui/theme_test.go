package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

func TestSlideshowTheme_BlackBackground(t *testing.T) {
	th := NewSlideshowTheme()

	for _, variant := range []fyne.ThemeVariant{theme.VariantDark, theme.VariantLight} {
		got := th.Color(theme.ColorNameBackground, variant)
		if got != color.Black {
			t.Errorf("background for variant %d = %v, want black", variant, got)
		}
	}
}

func TestSlideshowTheme_Sizes(t *testing.T) {
	th := NewSlideshowTheme()

	if got := th.Size(theme.SizeNameHeadingText); got != PlaceholderTextSize {
		t.Errorf("heading size = %v, want %v", got, PlaceholderTextSize)
	}
	if got := th.Size(theme.SizeNamePadding); got != theme.DefaultTheme().Size(theme.SizeNamePadding) {
		t.Errorf("padding should fall back to default theme, got %v", got)
	}
}
