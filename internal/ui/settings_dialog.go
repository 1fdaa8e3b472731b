package ui

import (
	"maps"
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/issog/navdrawer/internal/config"
	"github.com/issog/navdrawer/internal/i18n"
	"github.com/issog/navdrawer/internal/model"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *i18n.Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// label -> language code
	languageCodes map[string]string

	// UI components
	languageSelect *widget.Select
	durationSelect *widget.Select
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *i18n.Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:      settings,
		localization:  localization,
		window:        window,
		onSaved:       onSaved,
		languageCodes: make(map[string]string),
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *i18n.Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window, onSaved)
	sd.Show()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Language selection, shown by display name
	languageLabels := sd.settings.GetLanguageOptions()
	languageOptions := []string{}
	for _, code := range slices.Sorted(maps.Keys(languageLabels)) {
		label := languageLabels[code]
		sd.languageCodes[label] = code
		languageOptions = append(languageOptions, label)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	// Snackbar duration selection
	durationOptions := []string{}
	for _, duration := range sd.settings.GetSnackbarDurationOptions() {
		durationOptions = append(durationOptions, string(duration))
	}
	sd.durationSelect = widget.NewSelect(durationOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.Text(i18n.KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewLabel(sd.localization.Text(i18n.KeySnackbarDuration)+":"),
		sd.durationSelect,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.Text(i18n.KeySettings),
		sd.localization.Text(i18n.KeySave),
		sd.localization.Text(i18n.KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(400, 260))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	if label, ok := sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()]; ok {
		sd.languageSelect.SetSelected(label)
	}
	sd.durationSelect.SetSelected(string(sd.settings.GetSnackbarDuration()))
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Save language
	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	// Save snackbar duration
	if sd.durationSelect.Selected != "" {
		sd.settings.SetSnackbarDuration(model.SnackbarDuration(sd.durationSelect.Selected))
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
