package ui

import (
	"fyne.io/fyne/v2"
)

// MobileUI provides mobile-specific UI enhancements
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return m.app != nil && m.app.Driver().Device().IsMobile()
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	if !m.IsMobileDevice() {
		return true
	}
	orientation := m.app.Driver().Device().Orientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}

// DrawerWidth returns the drawer sheet width for the given canvas width.
// On phones in portrait the sheet covers most of the screen.
func (m *MobileUI) DrawerWidth(canvasWidth float32) float32 {
	if !m.IsMobileDevice() || m.IsLandscape() || canvasWidth <= 0 {
		return DrawerSheetWidth
	}

	width := canvasWidth * MobileDrawerSheetRatio
	if width > DrawerSheetWidth {
		return DrawerSheetWidth
	}
	return width
}
