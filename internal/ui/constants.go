package ui

import (
	"image/color"
	"time"
)

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Layout sizing
const (
	DrawerSheetWidth       float32 = 300
	MobileDrawerSheetRatio float32 = 0.8

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
)

// Toast notification sizing and behavior
const (
	ToastMargin   float32 = 24
	ToastAutoHide         = 2 * time.Second
)

// Colors
var (
	ScrimColor              = color.NRGBA{R: 0, G: 0, B: 0, A: 0x66}
	DrawerSheetColor        = color.NRGBA{R: 0xF7, G: 0xF2, B: 0xFA, A: 0xFF}
	DrawerSheetColorDark    = color.NRGBA{R: 0x21, G: 0x1F, B: 0x26, A: 0xFF}
	SnackbarBackgroundColor = color.NRGBA{R: 0xE8, G: 0xDE, B: 0xF8, A: 0xFF}
	ToastBackgroundColor    = color.NRGBA{R: 0x32, G: 0x2F, B: 0x35, A: 0xE6}
	ToastTextColor          = color.NRGBA{R: 0xF4, G: 0xEF, B: 0xF4, A: 0xFF}
)
