package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestSwapInterval(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if got := settings.GetSwapInterval(); got != 5*time.Second {
		t.Errorf("Expected default swap interval 5s, got %v", got)
	}

	// Test setting custom value
	settings.SetSwapInterval(12 * time.Second)
	if got := settings.GetSwapInterval(); got != 12*time.Second {
		t.Errorf("Expected swap interval 12s, got %v", got)
	}

	// Test rounding and boundary values
	settings.SetSwapInterval(2600 * time.Millisecond)
	if got := settings.GetSwapInterval(); got != 3*time.Second {
		t.Errorf("Expected interval rounded to 3s, got %v", got)
	}

	settings.SetSwapInterval(0)
	if got := settings.GetSwapInterval(); got != time.Second {
		t.Errorf("Swap interval should be clamped to minimum 1s, got %v", got)
	}

	settings.SetSwapInterval(5 * time.Hour)
	if got := settings.GetSwapInterval(); got != time.Hour {
		t.Errorf("Swap interval should be clamped to maximum 1h, got %v", got)
	}
}

func TestExtensions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	exts := settings.GetExtensions()
	expected := []string{".jpg", ".jpeg", ".png"}
	if len(exts) != len(expected) {
		t.Fatalf("Expected %d default extensions, got %v", len(expected), exts)
	}
	for i := range expected {
		if exts[i] != expected[i] {
			t.Errorf("Extension %d: expected %s, got %s", i, expected[i], exts[i])
		}
	}

	// Test setting custom value
	settings.SetExtensions([]string{".webp", "gif"})
	exts = settings.GetExtensions()
	if len(exts) != 2 || exts[0] != ".webp" || exts[1] != ".gif" {
		t.Errorf("Expected [.webp .gif], got %v", exts)
	}

	// Test empty list defaults back
	settings.SetExtensions(nil)
	if got := settings.GetExtensions(); len(got) != 3 {
		t.Errorf("Empty extension list should restore defaults, got %v", got)
	}
}

func TestRootFolder(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if root := settings.GetRootFolder(); root != DefaultRootFolder {
		t.Errorf("Expected default root %q, got %q", DefaultRootFolder, root)
	}

	settings.SetRootFolder("  /Camera Uploads ")
	if root := settings.GetRootFolder(); root != "/Camera Uploads" {
		t.Errorf("Expected root '/Camera Uploads', got %q", root)
	}
}

func TestFullscreen(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if !settings.GetFullscreen() {
		t.Error("Fullscreen should be enabled by default")
	}

	settings.SetFullscreen(false)
	if settings.GetFullscreen() {
		t.Error("Expected fullscreen to be disabled")
	}
}

func TestMaxDimension(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetMaxDimension(); got != DefaultMaxDimension {
		t.Errorf("Expected default max dimension %d, got %d", DefaultMaxDimension, got)
	}

	settings.SetMaxDimension(1920)
	if got := settings.GetMaxDimension(); got != 1920 {
		t.Errorf("Expected max dimension 1920, got %d", got)
	}

	settings.SetMaxDimension(-5)
	if got := settings.GetMaxDimension(); got != 0 {
		t.Errorf("Negative max dimension should be clamped to 0, got %d", got)
	}

	settings.SetMaxDimension(100000)
	if got := settings.GetMaxDimension(); got != MaxImageDimension {
		t.Errorf("Max dimension should be clamped to %d, got %d", MaxImageDimension, got)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
