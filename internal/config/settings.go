package config

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/gallery-viewer/internal/dropbox"
	"github.com/ytget/gallery-viewer/internal/imaging"
	"github.com/ytget/gallery-viewer/internal/slideshow"
)

// Settings keys for Fyne preferences
const (
	KeySwapInterval = "swap_interval_seconds"
	KeyExtensions   = "image_extensions"
	KeyRootFolder   = "root_folder"
	KeyFullscreen   = "fullscreen"
	KeyMaxDimension = "max_image_dimension"
	KeyLanguage     = "app_language"
)

// Default values
const (
	DefaultSwapIntervalSeconds = int(slideshow.DefaultSwapInterval / time.Second)
	DefaultRootFolder          = ""
	DefaultFullscreen          = true
	DefaultMaxDimension        = imaging.DefaultMaxDimension
	DefaultLanguage            = "system"
)

// Limits
const (
	MinSwapIntervalSeconds = 1
	MaxSwapIntervalSeconds = 3600
	MaxImageDimension      = 16384
)

// DefaultExtensions is the default accepted suffix list in its stored form
var DefaultExtensions = strings.Join(dropbox.DefaultExtensions, ",")

// Settings manages persisted application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetSwapInterval returns how long each image stays on screen
func (s *Settings) GetSwapInterval() time.Duration {
	value := s.app.Preferences().Int(KeySwapInterval)
	if value <= 0 {
		s.SetSwapInterval(slideshow.DefaultSwapInterval)
		return slideshow.DefaultSwapInterval
	}
	return time.Duration(value) * time.Second
}

// SetSwapInterval stores the swap interval, rounded to whole seconds and
// clamped to the supported range
func (s *Settings) SetSwapInterval(d time.Duration) {
	seconds := int(d.Round(time.Second) / time.Second)
	if seconds < MinSwapIntervalSeconds {
		seconds = MinSwapIntervalSeconds
	}
	if seconds > MaxSwapIntervalSeconds {
		seconds = MaxSwapIntervalSeconds
	}
	s.app.Preferences().SetInt(KeySwapInterval, seconds)
}

// GetExtensions returns the accepted file suffixes
func (s *Settings) GetExtensions() []string {
	exts := dropbox.ParseExtensions(s.app.Preferences().String(KeyExtensions))
	if len(exts) == 0 {
		s.app.Preferences().SetString(KeyExtensions, DefaultExtensions)
		return dropbox.ParseExtensions(DefaultExtensions)
	}
	return exts
}

// SetExtensions stores the accepted suffixes; an empty list restores the default
func (s *Settings) SetExtensions(exts []string) {
	list := strings.Join(exts, ",")
	if len(dropbox.ParseExtensions(list)) == 0 {
		list = DefaultExtensions
	}
	s.app.Preferences().SetString(KeyExtensions, list)
}

// GetRootFolder returns the folder to list; "" is the account root
func (s *Settings) GetRootFolder() string {
	return s.app.Preferences().StringWithFallback(KeyRootFolder, DefaultRootFolder)
}

// SetRootFolder sets the folder to list
func (s *Settings) SetRootFolder(root string) {
	s.app.Preferences().SetString(KeyRootFolder, strings.TrimSpace(root))
}

// GetFullscreen returns whether the window starts fullscreen
func (s *Settings) GetFullscreen() bool {
	return s.app.Preferences().BoolWithFallback(KeyFullscreen, DefaultFullscreen)
}

// SetFullscreen sets whether the window starts fullscreen
func (s *Settings) SetFullscreen(fullscreen bool) {
	s.app.Preferences().SetBool(KeyFullscreen, fullscreen)
}

// GetMaxDimension returns the longest side decoded images are scaled down to;
// 0 disables scaling
func (s *Settings) GetMaxDimension() int {
	return s.app.Preferences().IntWithFallback(KeyMaxDimension, DefaultMaxDimension)
}

// SetMaxDimension sets the decode size cap
func (s *Settings) SetMaxDimension(px int) {
	if px < 0 {
		px = 0
	}
	if px > MaxImageDimension {
		px = MaxImageDimension
	}
	s.app.Preferences().SetInt(KeyMaxDimension, px)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
