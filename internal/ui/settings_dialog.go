package ui

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/gallery-viewer/internal/config"
	"github.com/ytget/gallery-viewer/internal/dropbox"
	"github.com/ytget/gallery-viewer/internal/logger"
)

// SettingsDialog edits the stored slideshow defaults
type SettingsDialog struct {
	settings     *config.Settings
	window       fyne.Window
	localization *Localization
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	intervalEntry     *widget.Entry
	rootEntry         *widget.Entry
	extensionsEntry   *widget.Entry
	maxDimensionEntry *widget.Entry
	fullscreenCheck   *widget.Check
	languageSelect    *widget.Select

	// language display label -> code
	languageCodes map[string]string
}

// NewSettingsDialog creates a new settings dialog. onSaved may be nil.
func NewSettingsDialog(settings *config.Settings, window fyne.Window, loc *Localization, onSaved func()) *SettingsDialog {
	if loc == nil {
		loc = NewLocalization()
	}
	sd := &SettingsDialog{
		settings:     settings,
		window:       window,
		localization: loc,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.intervalEntry = widget.NewEntry()
	sd.intervalEntry.SetPlaceHolder(strconv.Itoa(config.MinSwapIntervalSeconds) + "-" + strconv.Itoa(config.MaxSwapIntervalSeconds))

	sd.rootEntry = widget.NewEntry()
	sd.rootEntry.SetPlaceHolder("/")

	sd.extensionsEntry = widget.NewEntry()
	sd.extensionsEntry.SetPlaceHolder(config.DefaultExtensions)

	sd.maxDimensionEntry = widget.NewEntry()
	sd.maxDimensionEntry.SetPlaceHolder("0-" + strconv.Itoa(config.MaxImageDimension))

	sd.fullscreenCheck = widget.NewCheck(sd.localization.GetText(KeyFullscreen), nil)

	// Language selection, ordered by code
	options := sd.settings.GetLanguageOptions()
	codes := make([]string, 0, len(options))
	for code := range options {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	sd.languageCodes = make(map[string]string, len(codes))
	labels := make([]string, 0, len(codes))
	for _, code := range codes {
		sd.languageCodes[options[code]] = code
		labels = append(labels, options[code])
	}
	sd.languageSelect = widget.NewSelect(labels, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeySettingsSlideshow)),
		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeySwapInterval)),
		sd.intervalEntry,

		widget.NewLabel(sd.localization.GetText(KeyRootFolder)),
		sd.rootEntry,

		widget.NewLabel(sd.localization.GetText(KeyExtensions)),
		sd.extensionsEntry,

		widget.NewLabel(sd.localization.GetText(KeyMaxDimension)),
		sd.maxDimensionEntry,

		widget.NewSeparator(),
		widget.NewLabel(sd.localization.GetText(KeySettingsInterface)),
		widget.NewSeparator(),

		sd.fullscreenCheck,
		widget.NewLabel(sd.localization.GetText(KeyLanguage)),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettingsTitle),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.intervalEntry.SetText(strconv.Itoa(int(sd.settings.GetSwapInterval() / time.Second)))
	sd.rootEntry.SetText(sd.settings.GetRootFolder())
	sd.extensionsEntry.SetText(strings.Join(sd.settings.GetExtensions(), ","))
	sd.maxDimensionEntry.SetText(strconv.Itoa(sd.settings.GetMaxDimension()))
	sd.fullscreenCheck.SetChecked(sd.settings.GetFullscreen())

	lang := sd.settings.GetLanguage()
	if label, ok := sd.settings.GetLanguageOptions()[lang]; ok {
		sd.languageSelect.SetSelected(label)
	}
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Invalid numbers keep the stored value
	if seconds, err := strconv.Atoi(strings.TrimSpace(sd.intervalEntry.Text)); err == nil {
		sd.settings.SetSwapInterval(time.Duration(seconds) * time.Second)
	}
	if px, err := strconv.Atoi(strings.TrimSpace(sd.maxDimensionEntry.Text)); err == nil {
		sd.settings.SetMaxDimension(px)
	}

	sd.settings.SetRootFolder(sd.rootEntry.Text)
	sd.settings.SetExtensions(dropbox.ParseExtensions(sd.extensionsEntry.Text))
	sd.settings.SetFullscreen(sd.fullscreenCheck.Checked)

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	logger.Info("settings saved",
		"interval", sd.settings.GetSwapInterval(),
		"root", sd.settings.GetRootFolder(),
		"extensions", sd.settings.GetExtensions(),
		"max_dimension", sd.settings.GetMaxDimension(),
		"language", sd.settings.GetLanguage(),
	)

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(
		sd.localization.GetText(KeySettingsTitle),
		sd.localization.GetText(KeySettingsSaved),
		sd.window,
	)
}
