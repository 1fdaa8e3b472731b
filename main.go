package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/issog/navdrawer/internal/backpress"
	"github.com/issog/navdrawer/internal/config"
	"github.com/issog/navdrawer/internal/i18n"
	"github.com/issog/navdrawer/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.issog.navdrawer"
	AppName = "My Nav Drawer"

	WindowWidth  = 480
	WindowHeight = 800
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply theme
	myApp.Settings().SetTheme(ui.NewNavDrawerTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize settings and localization
	settings := config.NewSettings(myApp)
	localization, err := i18n.NewLocalization()
	if err != nil {
		log.Fatalf("failed to load translations: %v", err)
	}
	localization.SetLanguage(settings.GetLanguage())

	// Back presses no screen consumes close the window
	dispatcher := backpress.NewDispatcher(myWindow.Close)

	// Create and setup UI
	if _, err := ui.NewNavDrawerScreen(myWindow, myApp, dispatcher, localization, settings); err != nil {
		log.Fatalf("failed to create screen: %v", err)
	}

	// Show and run
	myWindow.ShowAndRun()
}
