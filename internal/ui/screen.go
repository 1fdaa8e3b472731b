package ui

import (
	"errors"
	"fmt"
	"log"
	"maps"
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/atomic"

	"github.com/issog/navdrawer/internal/backpress"
	"github.com/issog/navdrawer/internal/config"
	"github.com/issog/navdrawer/internal/i18n"
	"github.com/issog/navdrawer/internal/navstate"
	"github.com/issog/navdrawer/internal/snackbar"
)

// ErrScreenDisposed is returned when a disposed screen is activated again
var ErrScreenDisposed = errors.New("screen is disposed")

// NavDrawerScreen is the main screen: a top bar with a menu button, a
// content area with a hint, a modal drawer and a snackbar host.
type NavDrawerScreen struct {
	window       fyne.Window
	app          fyne.App
	state        *navstate.State
	dispatcher   *backpress.Dispatcher
	localization *i18n.Localization
	settings     *config.Settings
	mobile       *MobileUI
	gestures     *GestureHandler
	disposed     *atomic.Bool

	// UI components
	menuButton  *widget.Button
	titleLabel  *widget.Label
	hintLabel   *widget.Label
	sheet       *DrawerSheet
	scrim       *Scrim
	drawerLayer *fyne.Container
	snackbarBar *SnackbarBar
	toast       *ToastOverlay
}

// NewNavDrawerScreen builds the screen, sets it as window content and
// registers its back handler with dispatcher
func NewNavDrawerScreen(window fyne.Window, app fyne.App, dispatcher *backpress.Dispatcher, localization *i18n.Localization, settings *config.Settings) (*NavDrawerScreen, error) {
	s := &NavDrawerScreen{
		window:       window,
		app:          app,
		dispatcher:   dispatcher,
		localization: localization,
		settings:     settings,
		mobile:       NewMobileUI(app),
		toast:        NewToastOverlay(),
		disposed:     atomic.NewBool(false),
	}

	s.state = navstate.New(localization, s.toast)
	s.state.SetSnackbarDuration(settings.GetSnackbarDuration())
	s.gestures = NewGestureHandler(s.onGesture)

	s.setupUI()

	s.state.SetOnChange(func() {
		fyne.Do(s.render)
	})
	s.state.Snackbar().SetUpdateCallback(func(data *snackbar.Data) {
		fyne.Do(func() {
			s.snackbarBar.SetData(data)
		})
	})

	if err := s.Activate(); err != nil {
		return nil, err
	}

	s.setupInput()
	s.render()

	log.Printf("NavDrawerScreen initialized")
	return s, nil
}

// setupUI creates and arranges all UI components
func (s *NavDrawerScreen) setupUI() {
	s.createMenu()

	// Top bar
	s.menuButton = widget.NewButtonWithIcon("", theme.MenuIcon(), s.state.OnMenuClick)
	s.menuButton.Importance = widget.LowImportance
	s.titleLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	barHeight := canvas.NewRectangle(nil)
	barHeight.SetMinSize(fyne.NewSize(0, MinTouchTargetSize))
	topBar := container.NewStack(
		barHeight,
		container.NewBorder(nil, nil, s.menuButton, nil, s.titleLabel),
	)

	// Content
	s.hintLabel = widget.NewLabel("")
	s.hintLabel.Alignment = fyne.TextAlignCenter

	// Drawer
	s.sheet = NewDrawerSheet(s.gestures, s.state.OnItemSelected)
	s.sheet.SetWidth(s.mobile.DrawerWidth(s.window.Canvas().Size().Width))
	s.sheet.SetBackgroundColor(s.app.Settings().ThemeVariant())
	s.scrim = NewScrim(s.gestures, s.state.Drawer().Close)
	s.drawerLayer = container.NewBorder(nil, nil, s.sheet, nil, s.scrim)
	s.drawerLayer.Hide()

	// Snackbar host
	s.snackbarBar = NewSnackbarBar()

	content := container.NewBorder(
		topBar,        // top
		s.snackbarBar, // bottom
		nil,           // left
		nil,           // right
		container.NewStack(
			container.NewCenter(s.hintLabel),
			s.drawerLayer,
			s.toast.Container(),
		),
	)

	s.window.SetContent(content)
}

// setupInput routes the platform back key and Escape to the dispatcher
func (s *NavDrawerScreen) setupInput() {
	s.window.Canvas().SetOnTypedKey(func(event *fyne.KeyEvent) {
		switch event.Name {
		case mobile.KeyBack, fyne.KeyEscape:
			s.dispatcher.OnBackPressed()
		}
	})

	lifecycle := s.app.Lifecycle()
	lifecycle.SetOnEnteredForeground(func() {
		if err := s.Activate(); err != nil {
			log.Printf("Failed to activate back handler: %v", err)
		}
	})
	lifecycle.SetOnExitedForeground(s.Deactivate)

	s.window.SetOnClosed(s.Dispose)
}

// createMenu creates the application menu
func (s *NavDrawerScreen) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(s.localization.Text(i18n.KeySettings), s.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(s.localization.Text(i18n.KeyLanguage))

	languages := s.localization.AvailableLanguages()
	for _, code := range slices.Sorted(maps.Keys(languages)) {
		name := languages[code]
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			s.onLanguageChange(langCode)
		})

		// Mark current language
		if s.localization.CurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(s.localization.Text(i18n.KeyFile), settingsItem),
		languageMenu,
	)

	s.window.SetMainMenu(mainMenu)
}

// Activate attaches the back handler to the dispatcher. It is called on
// creation and whenever the app returns to the foreground.
func (s *NavDrawerScreen) Activate() error {
	if s.disposed.Load() {
		return ErrScreenDisposed
	}
	if err := s.state.BackHandler().Attach(s.dispatcher); err != nil {
		return fmt.Errorf("attach back handler: %w", err)
	}
	s.state.Sync()
	return nil
}

// Deactivate detaches the back handler while the app is in the background
func (s *NavDrawerScreen) Deactivate() {
	s.state.BackHandler().Detach()
}

// Dispose cancels pending notification flows, releases the back handler
// and stops reacting to lifecycle events. Safe to call more than once.
func (s *NavDrawerScreen) Dispose() {
	if !s.disposed.CompareAndSwap(false, true) {
		return
	}

	lifecycle := s.app.Lifecycle()
	lifecycle.SetOnEnteredForeground(nil)
	lifecycle.SetOnExitedForeground(nil)

	s.state.Close()
	log.Printf("NavDrawerScreen disposed")
}

// State returns the screen state holder
func (s *NavDrawerScreen) State() *navstate.State {
	return s.state
}

// render updates all widgets from the current state
func (s *NavDrawerScreen) render() {
	s.state.Sync()

	s.window.SetTitle(s.localization.Text(i18n.KeyAppName))
	s.titleLabel.SetText(s.localization.Text(i18n.KeyAppName))
	s.menuButton.SetText(s.menuLabel())
	s.snackbarBar.SetDismissLabel(s.localization.Text(i18n.KeyDismiss))
	s.hintLabel.SetText(s.state.ContentHint())
	s.sheet.Update(s.localization.Text(i18n.KeyDrawerHeader), s.state.Items(), s.state.IsSelected)

	if s.state.Drawer().IsOpen() {
		s.sheet.SetWidth(s.mobile.DrawerWidth(s.window.Canvas().Size().Width))
		s.drawerLayer.Show()
	} else {
		s.drawerLayer.Hide()
	}
}

// menuLabel returns the menu button text; phones show the icon only
func (s *NavDrawerScreen) menuLabel() string {
	if s.mobile.IsMobileDevice() {
		return ""
	}
	return s.localization.Text(i18n.KeyMenu)
}

// onGesture handles swipes on the drawer and the scrim
func (s *NavDrawerScreen) onGesture(gesture GestureType) {
	if !s.state.Drawer().GesturesEnabled() {
		return
	}

	switch gesture {
	case GestureSwipeLeft:
		s.state.Drawer().Close()
	case GestureSwipeRight:
		s.state.Drawer().Open()
	}
}

// onLanguageChange handles language change
func (s *NavDrawerScreen) onLanguageChange(langCode string) {
	s.localization.SetLanguage(langCode)
	s.settings.SetLanguage(langCode)

	s.refreshUITexts()
}

// refreshUITexts updates all UI texts with current language
func (s *NavDrawerScreen) refreshUITexts() {
	// Rebuild drawer entries; selection is kept by ID
	s.state.SetItems(navstate.DefaultMenuItems(s.localization))
	s.render()

	// Recreate menu to update checkmarks
	s.createMenu()
}

// onShowSettings shows the settings dialog
func (s *NavDrawerScreen) onShowSettings() {
	ShowSettingsDialog(s.window, s.settings, s.localization, s.onSettingsSaved)
}

// onSettingsSaved applies saved settings to the running screen
func (s *NavDrawerScreen) onSettingsSaved() {
	s.localization.SetLanguage(s.settings.GetLanguage())
	s.state.SetSnackbarDuration(s.settings.GetSnackbarDuration())
	s.refreshUITexts()

	dialog.ShowInformation(
		s.localization.Text(i18n.KeySettings),
		s.localization.Text(i18n.KeySettingsSaved),
		s.window,
	)
}
