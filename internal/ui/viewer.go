package ui

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/gallery-viewer/internal/config"
	"github.com/ytget/gallery-viewer/internal/logger"
	"github.com/ytget/gallery-viewer/internal/model"
	"github.com/ytget/gallery-viewer/internal/slideshow"
)

// SlideshowUI is the main window content: the current slide with a countdown,
// or a placeholder while images load.
// Render, applyTask and ApplyLanguage must run on the Fyne goroutine.
type SlideshowUI struct {
	window       fyne.Window
	app          fyne.App
	localization *Localization
	settings     *config.Settings

	image       *canvas.Image
	countdown   *canvas.Text
	headline    *canvas.Text
	status      *canvas.Text
	detail      *canvas.Text
	progress    *widget.ProgressBar
	slideView   *fyne.Container
	placeholder *fyne.Container

	settingsDialog *SettingsDialog

	current   image.Image
	lastTask  *model.LoadTask
	lastBatch *model.Batch
	quit      func()
}

// NewSlideshowUI builds the slideshow content and installs it into window
func NewSlideshowUI(window fyne.Window, app fyne.App, settings *config.Settings, loc *Localization) *SlideshowUI {
	if loc == nil {
		loc = NewLocalization()
	}

	ui := &SlideshowUI{
		window:       window,
		app:          app,
		localization: loc,
		settings:     settings,
		quit:         app.Quit,
	}

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *SlideshowUI) setupUI() {
	foreground := theme.Color(theme.ColorNameForeground)

	ui.image = canvas.NewImageFromImage(nil)
	ui.image.FillMode = canvas.ImageFillContain
	ui.image.ScaleMode = canvas.ImageScaleSmooth

	ui.countdown = canvas.NewText("", foreground)
	ui.countdown.Alignment = fyne.TextAlignCenter
	ui.countdown.TextSize = CountdownTextSize

	// Image fills the space left above the countdown
	ui.slideView = container.NewBorder(nil, ui.countdown, nil, nil, ui.image)
	ui.slideView.Hide()

	ui.headline = canvas.NewText(ui.localization.GetText(KeyDownloading), foreground)
	ui.headline.Alignment = fyne.TextAlignCenter
	ui.headline.TextSize = PlaceholderTextSize
	ui.headline.TextStyle = fyne.TextStyle{Bold: true}

	ui.status = canvas.NewText("", theme.Color(theme.ColorNamePlaceHolder))
	ui.status.Alignment = fyne.TextAlignCenter
	ui.status.TextSize = StatusTextSize

	ui.detail = canvas.NewText("", theme.Color(theme.ColorNamePlaceHolder))
	ui.detail.Alignment = fyne.TextAlignCenter
	ui.detail.TextSize = StatusTextSize

	ui.progress = widget.NewProgressBar()
	ui.progress.Hide()

	ui.placeholder = container.NewCenter(container.NewVBox(ui.headline, ui.status, ui.progress, ui.detail))

	padded := layout.NewCustomPaddedLayout(ContentPadding, ContentPadding, ContentPadding, ContentPadding)
	content := container.New(padded, container.NewStack(ui.slideView, ui.placeholder))

	ui.window.SetContent(content)
	ui.window.Canvas().SetOnTypedKey(ui.handleKey)
}

// Render draws one frame of the slideshow
func (ui *SlideshowUI) Render(view slideshow.View) {
	if view.Loading {
		if ui.slideView.Visible() {
			ui.slideView.Hide()
			ui.current = nil
		}
		ui.placeholder.Show()
		return
	}

	if view.Slide.Image != ui.current {
		ui.current = view.Slide.Image
		ui.image.Image = view.Slide.Image
		ui.image.Refresh()
		logger.Debug("slide shown", "index", view.Index, "total", view.Total, "name", view.Slide.Name)
	}

	text := strconv.Itoa(view.Remaining)
	if ui.countdown.Text != text {
		ui.countdown.Text = text
		ui.countdown.Refresh()
	}

	if !ui.slideView.Visible() {
		ui.placeholder.Hide()
		ui.slideView.Show()
	}
}

// OnLoadUpdate receives load progress from the loader goroutine
func (ui *SlideshowUI) OnLoadUpdate(task *model.LoadTask, batch *model.Batch) {
	fyne.Do(func() {
		ui.onTaskUpdate(task, batch)
	})
}

// applyTask updates the placeholder text for the given load state
func (ui *SlideshowUI) applyTask(task *model.LoadTask, batch *model.Batch) {
	ui.lastTask, ui.lastBatch = task, batch

	headline := ui.localization.GetText(KeyDownloading)
	status := ""
	detail := ""
	showProgress := false

	switch task.Status {
	case model.LoadStatusAuthorizing:
		status = ui.localization.GetText(KeyAuthorizing)
	case model.LoadStatusListing:
		status = ui.localization.GetText(KeyListing)
	case model.LoadStatusDownloading:
		status = task.GetProgressString()
		showProgress = true
		if current := currentImage(batch); current != nil {
			detail = current.Name
		}
	case model.LoadStatusError:
		headline = ui.localization.GetText(KeyLoadFailed)
		status = task.LastError
	case model.LoadStatusCompleted:
		switch {
		case task.Total == 0:
			headline = ui.localization.GetText(KeyNoImages)
		case task.Fetched == 0:
			headline = ui.localization.GetText(KeyLoadFailed)
		}
		if task.Failed > 0 {
			status = fmt.Sprintf(ui.localization.GetText(KeySkippedSummary), task.Fetched, task.Failed)
			detail = failureNames(batch)
		}
	}

	ui.setText(ui.headline, headline)
	ui.setText(ui.status, status)
	ui.setText(ui.detail, detail)
	if showProgress {
		ui.progress.SetValue(task.Progress())
		ui.progress.Show()
	} else {
		ui.progress.Hide()
	}
}

// onTaskUpdate is applyTask plus the completion notification
func (ui *SlideshowUI) onTaskUpdate(task *model.LoadTask, batch *model.Batch) {
	ui.applyTask(task, batch)
	if task.Status == model.LoadStatusCompleted {
		ui.sendCompletionNotification(task)
	}
}

// ApplyLanguage switches the UI language and redraws the placeholder
func (ui *SlideshowUI) ApplyLanguage(lang string) {
	ui.localization.SetLanguage(lang)
	logger.Debug("language applied", "requested", lang, "language", ui.localization.GetCurrentLanguage())

	if ui.lastTask != nil {
		ui.applyTask(ui.lastTask, ui.lastBatch)
	} else {
		ui.setText(ui.headline, ui.localization.GetText(KeyDownloading))
	}
}

func currentImage(batch *model.Batch) *model.RemoteImage {
	if batch == nil {
		return nil
	}
	return batch.Current()
}

// failureNames lists the names of failed images, shortened after MaxListedFailures
func failureNames(batch *model.Batch) string {
	if batch == nil {
		return ""
	}

	failures := batch.Failures()
	names := make([]string, 0, MaxListedFailures+1)
	for i, img := range failures {
		if i == MaxListedFailures {
			names = append(names, fmt.Sprintf("+%d", len(failures)-MaxListedFailures))
			break
		}
		names = append(names, img.Name)
	}
	return strings.Join(names, ", ")
}

// sendCompletionNotification sends a system notification once images are ready
func (ui *SlideshowUI) sendCompletionNotification(task *model.LoadTask) {
	if task.Fetched == 0 {
		return
	}

	ui.app.SendNotification(&fyne.Notification{
		Title:   ui.localization.GetText(KeyAppTitle),
		Content: fmt.Sprintf("%s: %d", ui.localization.GetText(KeyImagesLoaded), task.Fetched),
	})
}

func (ui *SlideshowUI) setText(t *canvas.Text, text string) {
	if t.Text == text {
		return
	}
	t.Text = text
	t.Refresh()
}

// handleKey handles window-level shortcuts
func (ui *SlideshowUI) handleKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyEscape, fyne.KeyQ:
		logger.Info("quit requested")
		ui.quit()
	case fyne.KeyF, fyne.KeyF11:
		ui.window.SetFullScreen(!ui.window.FullScreen())
	case fyne.KeyS:
		ui.showSettings()
	}
}

// showSettings opens the settings dialog, creating it on first use
func (ui *SlideshowUI) showSettings() {
	if ui.settings == nil {
		return
	}
	if ui.settingsDialog == nil {
		ui.settingsDialog = NewSettingsDialog(ui.settings, ui.window, ui.localization, ui.onSettingsSaved)
	}
	ui.settingsDialog.Show()
}

// onSettingsSaved applies the settings that can change while running
func (ui *SlideshowUI) onSettingsSaved() {
	// rebuilt on next open so its labels follow the new language
	ui.settingsDialog = nil
	ui.ApplyLanguage(ui.settings.GetLanguage())
	ui.window.SetFullScreen(ui.settings.GetFullscreen())
}
