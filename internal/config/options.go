package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/ytget/gallery-viewer/internal/dropbox"
)

// EnvPrefix namespaces environment overrides, e.g. GALLERY_INTERVAL=10s
const EnvPrefix = "GALLERY"

// Option keys shared by flags and environment variables
const (
	OptVerbose     = "verbose"
	OptWindowed    = "windowed"
	OptConsoleAuth = "console-auth"
	OptClientID    = "client-id"
	OptInterval    = "interval"
	OptRoot        = "root"
	OptExtensions  = "extensions"
	OptLanguage    = "language"
)

// Options are per-run overrides from flags and environment. Zero values mean
// "use the stored setting".
type Options struct {
	Verbose     bool
	Windowed    bool
	ConsoleAuth bool
	ClientID    string
	Interval    time.Duration
	Root        string
	Extensions  string
	Language    string
}

// NewViper returns a viper instance reading GALLERY_* environment variables
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadOptions reads the run options from v
func LoadOptions(v *viper.Viper) Options {
	return Options{
		Verbose:     v.GetBool(OptVerbose),
		Windowed:    v.GetBool(OptWindowed),
		ConsoleAuth: v.GetBool(OptConsoleAuth),
		ClientID:    strings.TrimSpace(v.GetString(OptClientID)),
		Interval:    v.GetDuration(OptInterval),
		Root:        v.GetString(OptRoot),
		Extensions:  v.GetString(OptExtensions),
		Language:    strings.TrimSpace(v.GetString(OptLanguage)),
	}
}

// Runtime is the effective configuration of one run
type Runtime struct {
	SwapInterval time.Duration
	Extensions   []string
	Root         string
	Fullscreen   bool
	MaxDimension int
	ClientID     string
	Language     string
	ConsoleAuth  bool
	Verbose      bool
}

// Resolve merges run options over stored settings. Overrides are not persisted.
func Resolve(opts Options, s *Settings) Runtime {
	rt := Runtime{
		SwapInterval: s.GetSwapInterval(),
		Extensions:   s.GetExtensions(),
		Root:         s.GetRootFolder(),
		Fullscreen:   s.GetFullscreen(),
		MaxDimension: s.GetMaxDimension(),
		ClientID:     dropbox.DefaultClientID,
		Language:     s.GetLanguage(),
		ConsoleAuth:  opts.ConsoleAuth,
		Verbose:      opts.Verbose,
	}

	if opts.Interval > 0 {
		rt.SwapInterval = opts.Interval
	}
	if exts := dropbox.ParseExtensions(opts.Extensions); len(exts) > 0 {
		rt.Extensions = exts
	}
	if root := strings.TrimSpace(opts.Root); root != "" {
		rt.Root = root
	}
	if opts.Windowed {
		rt.Fullscreen = false
	}
	if opts.Language != "" {
		rt.Language = opts.Language
	}
	if opts.ClientID != "" {
		rt.ClientID = opts.ClientID
	}
	return rt
}
