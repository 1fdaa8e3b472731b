package config

import (
	"fyne.io/fyne/v2"

	"github.com/issog/navdrawer/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage         = "app_language"
	KeySnackbarDuration = "snackbar_duration"
)

// Default values
const (
	DefaultLanguage         = "system"
	DefaultSnackbarDuration = model.SnackbarShort
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
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
	if lang == "" {
		lang = DefaultLanguage
	}
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetSnackbarDuration returns the display duration class for snackbars
func (s *Settings) GetSnackbarDuration() model.SnackbarDuration {
	value := s.app.Preferences().String(KeySnackbarDuration)
	if value == "" {
		s.SetSnackbarDuration(DefaultSnackbarDuration)
		return DefaultSnackbarDuration
	}
	return model.ParseSnackbarDuration(value)
}

// SetSnackbarDuration sets the snackbar duration class
func (s *Settings) SetSnackbarDuration(duration model.SnackbarDuration) {
	s.app.Preferences().SetString(KeySnackbarDuration, string(model.ParseSnackbarDuration(string(duration))))
}

// GetSnackbarDurationOptions returns available snackbar duration options
func (s *Settings) GetSnackbarDurationOptions() []model.SnackbarDuration {
	return []model.SnackbarDuration{model.SnackbarShort, model.SnackbarLong, model.SnackbarIndefinite}
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
