package cli

import (
	"context"
	"fmt"
	"image"
	"net/url"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/ytget/gallery-viewer/internal/config"
	"github.com/ytget/gallery-viewer/internal/dropbox"
	"github.com/ytget/gallery-viewer/internal/imaging"
	"github.com/ytget/gallery-viewer/internal/loader"
	"github.com/ytget/gallery-viewer/internal/logger"
	"github.com/ytget/gallery-viewer/internal/model"
	"github.com/ytget/gallery-viewer/internal/slideshow"
	"github.com/ytget/gallery-viewer/internal/ui"
)

// AppID identifies the application to Fyne (preferences storage, notifications)
const AppID = "com.ytget.gallery-viewer"

// run opens the window, starts the background load and blocks until the
// window is closed
func run(cmd *cobra.Command, opts config.Options) error {
	logger.Init(opts.Verbose)
	logger.Info("gallery viewer starting", "version", version)

	a := app.NewWithID(AppID)
	a.Settings().SetTheme(ui.NewSlideshowTheme())

	settings := config.NewSettings(a)
	rt := config.Resolve(opts, settings)
	logger.Debug("configuration resolved",
		"interval", rt.SwapInterval,
		"root", rt.Root,
		"extensions", rt.Extensions,
		"fullscreen", rt.Fullscreen,
		"max_dimension", rt.MaxDimension,
	)

	loc := ui.NewLocalization()
	loc.SetLanguage(rt.Language)

	w := a.NewWindow(loc.GetText(ui.KeyAppTitle))
	w.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))
	w.SetFullScreen(rt.Fullscreen)

	view := ui.NewSlideshowUI(w, a, settings, loc)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	svc := newLoader(rt, a, w, loc)
	svc.SetUpdateCallback(func(task *model.LoadTask) {
		view.OnLoadUpdate(task, svc.Batch())
	})

	ctrl := slideshow.NewController(rt.SwapInterval, time.Now())
	player := slideshow.NewPlayer(ctrl, fyne.Do, view.Render)
	svc.SetCompleteCallback(player.Deliver)

	go player.Run(ctx)
	task := svc.Start(ctx)
	logger.Debug("load started", "task", task.ID)

	w.ShowAndRun()

	if last := svc.Task(); last.Status.IsActive() {
		logger.Info("window closed before the load finished", "status", last.Status, "progress", last.GetProgressString())
	}
	return nil
}

// newLoader wires the Dropbox source and the decoder into a load service
func newLoader(rt config.Runtime, a fyne.App, w fyne.Window, loc *ui.Localization) *loader.Service {
	var prompter dropbox.CodePrompter = ui.NewDialogPrompter(w, loc)
	if rt.ConsoleAuth {
		prompter = dropbox.NewConsolePrompter(os.Stdin, os.Stderr)
	}

	oauthConfig := dropbox.NewOAuthConfig(rt.ClientID)
	auth := dropbox.NewAuthorizer(oauthConfig, prompter, dropbox.WithBrowser(browserOpener(a)))
	client := dropbox.NewClient(oauthConfig,
		dropbox.WithRoot(rt.Root),
		dropbox.WithExtensions(rt.Extensions),
	)

	return loader.NewService(dropbox.NewSource(auth, client), decoder(rt.MaxDimension))
}

// browserOpener opens http(s) URLs through the desktop integration of a
func browserOpener(a fyne.App) func(string) error {
	return func(rawURL string) error {
		u, err := url.Parse(rawURL)
		if err != nil {
			return fmt.Errorf("invalid url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("refusing to open non-http url scheme %q", u.Scheme)
		}
		return a.OpenURL(u)
	}
}

// decoder returns a DecodeFunc that downsizes images larger than maxDim
func decoder(maxDim int) loader.DecodeFunc {
	return func(data []byte) (image.Image, error) {
		img, err := imaging.DecodeFit(data, maxDim)
		if err != nil {
			return nil, fmt.Errorf("decode image: %w", err)
		}
		return img, nil
	}
}
