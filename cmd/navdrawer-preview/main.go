// Command navdrawer-preview renders the navigation drawer screen off-screen
// and writes closed.png and open.png snapshots.
package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/issog/navdrawer/internal/backpress"
	"github.com/issog/navdrawer/internal/config"
	"github.com/issog/navdrawer/internal/drawer"
	"github.com/issog/navdrawer/internal/i18n"
	"github.com/issog/navdrawer/internal/platform"
	"github.com/issog/navdrawer/internal/ui"
)

var (
	// Flags
	outDir     = flag.String("out", ".", "Destination directory")
	language   = flag.String("lang", i18n.LanguageSystem, "Interface language (en, ru, pt)")
	width      = flag.Int("width", 480, "Window width")
	height     = flag.Int("height", 800, "Window height")
	openViewer = flag.Bool("open", false, "Open the drawer snapshot in the default viewer")
)

func main() {
	log.SetFlags(0)
	flag.Parse()

	if err := platform.CreateDirectoryIfNotExists(*outDir); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	previewApp := test.NewApp()
	previewApp.Settings().SetTheme(ui.NewNavDrawerTheme())

	window := test.NewWindow(nil)
	window.Resize(fyne.NewSize(float32(*width), float32(*height)))

	localization, err := i18n.NewLocalization()
	if err != nil {
		log.Fatalf("failed to load translations: %v", err)
	}
	localization.SetLanguage(*language)

	dispatcher := backpress.NewDispatcher(func() {})
	screen, err := ui.NewNavDrawerScreen(window, previewApp, dispatcher, localization, config.NewSettings(previewApp))
	if err != nil {
		log.Fatalf("failed to create screen: %v", err)
	}
	defer screen.Dispose()

	if err := platform.WritePNG(filepath.Join(*outDir, "closed.png"), window.Canvas().Capture()); err != nil {
		log.Fatalf("failed to write snapshot: %v", err)
	}

	screen.State().Drawer().Apply(drawer.OpOpen)
	openPath := filepath.Join(*outDir, "open.png")
	if err := platform.WritePNG(openPath, window.Canvas().Capture()); err != nil {
		log.Fatalf("failed to write snapshot: %v", err)
	}

	fmt.Printf("Snapshots written to %s\n", *outDir)

	if *openViewer {
		if err := platform.OpenFileWithDefaultApp(openPath); err != nil {
			log.Printf("failed to open snapshot: %v", err)
		}
	}
}
