package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// NavDrawerTheme is a Material-like purple theme with touch-friendly sizes
type NavDrawerTheme struct{}

// NewNavDrawerTheme creates the application theme
func NewNavDrawerTheme() fyne.Theme {
	return &NavDrawerTheme{}
}

// Color returns theme colors
func (t *NavDrawerTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		if variant == theme.VariantDark {
			return color.RGBA{R: 208, G: 188, B: 255, A: 255}
		}
		return color.RGBA{R: 103, G: 80, B: 164, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 20, G: 18, B: 24, A: 255}
		}
		return color.RGBA{R: 254, G: 247, B: 255, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 230, G: 224, B: 233, A: 255}
		}
		return color.RGBA{R: 29, G: 27, B: 32, A: 255}
	case theme.ColorNameShadow:
		return ScrimColor
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *NavDrawerTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *NavDrawerTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with touch adjustments
func (t *NavDrawerTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 6
	case theme.SizeNameInnerPadding:
		return 12
	case theme.SizeNameText:
		return 15
	case theme.SizeNameHeadingText:
		return 22
	case theme.SizeNameInputRadius:
		return 12 // rounded item indicator
	case theme.SizeNameSelectionRadius:
		return 12
	}

	return theme.DefaultTheme().Size(name)
}
