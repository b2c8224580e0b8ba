package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ytget/gallery-viewer/internal/config"
)

// AppName is the command name and the configuration directory name
const AppName = "gallery-viewer"

// Version information
var (
	version    = "dev"
	commitHash = "unknown"
	buildTime  = "unknown"
)

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, commit, buildTimeStr string) {
	version = v
	commitHash = commit
	buildTime = buildTimeStr
}

// versionString formats the version shown by --version
func versionString() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commitHash, buildTime)
}

// RunFunc starts the viewer with resolved options
type RunFunc func(cmd *cobra.Command, opts config.Options) error

// NewRootCommand builds the root command. Flags are bound to v so that
// GALLERY_* environment variables fill in anything not given on the command line.
func NewRootCommand(v *viper.Viper, run RunFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   AppName,
		Short: "Fullscreen slideshow of the images in your Dropbox",
		Long: `Shows every image in your Dropbox as a fullscreen slideshow.

On start the viewer asks you to authorize access to Dropbox, lists image files
recursively, downloads them and swaps the displayed image on a fixed timer.
A countdown to the next image is shown under the picture.

Keys:
  Esc, Q    quit
  F, F11    toggle fullscreen
  S         settings

Examples:
  gallery-viewer                          # Whole account, 5 second interval
  gallery-viewer --root /Photos/2024      # Only one folder
  gallery-viewer --interval 10s --windowed`,
		Version:       versionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, config.LoadOptions(v))
		},
	}

	flags := cmd.Flags()
	flags.BoolP(config.OptVerbose, "v", false, "verbose output")
	flags.Bool(config.OptWindowed, false, "start in a window instead of fullscreen")
	flags.Bool(config.OptConsoleAuth, false, "read the authorization code from the terminal instead of a dialog")
	flags.String(config.OptClientID, "", "Dropbox app key (default: built-in app)")
	flags.Duration(config.OptInterval, 0, "time each image stays on screen (default: stored setting, 5s)")
	flags.String(config.OptRoot, "", "Dropbox folder to show, recursively (default: whole account)")
	flags.String(config.OptExtensions, "", "comma-separated accepted file suffixes (default: .jpg,.jpeg,.png)")
	flags.String(config.OptLanguage, "", "interface language: system, en, ru or pt (default: stored setting)")

	if err := v.BindPFlags(flags); err != nil {
		// BindPFlags only fails on a nil flag set
		panic(err)
	}

	return cmd
}

// Execute runs the gallery-viewer command
func Execute() error {
	return NewRootCommand(config.NewViper(), run).Execute()
}
