package i18n

import (
	"embed"
	"fmt"
	"path"
	"sync"

	"fyne.io/fyne/v2/lang"
	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Text keys for localization
const (
	KeyAppName           = "app_name"
	KeyMenu              = "menu"
	KeyHome              = "home"
	KeyFavourite         = "favourite"
	KeyProfile           = "profile"
	KeyDrawerHeader      = "hello_from_nav_drawer"
	KeySwipeToOpen       = "swipe_to_open"
	KeySwipeToClose      = "swipe_to_close"
	KeyComingSoon        = "coming_soon"
	KeySubscribeQuestion = "subscribe_question"
	KeySubscribedInfo    = "subscribed_info"
	KeyDismiss           = "dismiss"
	KeyFile              = "file"
	KeySettings          = "settings"
	KeyLanguage          = "language"
	KeySnackbarDuration  = "snackbar_duration"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
)

// LanguageSystem selects the language from the platform
const LanguageSystem = "system"

var (
	supportedLanguages = []language.Tag{language.English, language.Russian, language.Portuguese}
	languageMatcher    = language.NewMatcher(supportedLanguages)
)

// Localization manages UI text translations
type Localization struct {
	bundle       *goi18n.Bundle
	systemLocale func() string // platform language tag, e.g. "pt-BR"

	mu              sync.RWMutex
	localizer       *goi18n.Localizer
	currentLanguage string
}

// NewLocalization loads the embedded message files and selects English
func NewLocalization() (*Localization, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}

	for _, entry := range entries {
		name := path.Join("locales", entry.Name())
		content, err := localeFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if _, err := bundle.ParseMessageFileBytes(content, name); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
	}

	l := &Localization{bundle: bundle, systemLocale: systemLanguage}
	l.SetLanguage(language.English.String())
	return l, nil
}

func systemLanguage() string {
	return lang.SystemLocale().LanguageString()
}

// SetLanguage sets the current language. LanguageSystem and the empty code
// use the platform locale. Unknown codes resolve to the closest supported
// language, English if nothing matches.
func (l *Localization) SetLanguage(code string) {
	if code == LanguageSystem || code == "" {
		code = l.systemLocale()
	}

	tag := language.English
	if parsed, err := language.Parse(code); err == nil {
		tag = parsed
	}

	_, index, confidence := languageMatcher.Match(tag)
	if confidence == language.No {
		index = 0
	}
	matched := supportedLanguages[index]

	l.mu.Lock()
	defer l.mu.Unlock()
	l.currentLanguage = matched.String()
	l.localizer = goi18n.NewLocalizer(l.bundle, matched.String(), language.English.String())
}

// CurrentLanguage returns the current language code
func (l *Localization) CurrentLanguage() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.currentLanguage
}

// AvailableLanguages returns map of available languages with their display names
func (l *Localization) AvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// Text returns localized text for the given key, or the key itself when
// no translation exists
func (l *Localization) Text(key string) string {
	return l.localize(&goi18n.LocalizeConfig{MessageID: key})
}

// Format returns localized text for the given key with template data
func (l *Localization) Format(key string, data map[string]any) string {
	return l.localize(&goi18n.LocalizeConfig{MessageID: key, TemplateData: data})
}

func (l *Localization) localize(config *goi18n.LocalizeConfig) string {
	l.mu.RLock()
	localizer := l.localizer
	l.mu.RUnlock()

	msg, err := localizer.Localize(config)
	if err != nil || msg == "" {
		return config.MessageID
	}
	return msg
}
