package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2/theme"

	"github.com/issog/navdrawer/internal/model"
)

func TestNavDrawerThemePrimary(t *testing.T) {
	th := NewNavDrawerTheme()

	light := th.Color(theme.ColorNamePrimary, theme.VariantLight)
	expected := color.RGBA{R: 103, G: 80, B: 164, A: 255}
	if light != expected {
		t.Errorf("Expected primary %v, got %v", expected, light)
	}

	dark := th.Color(theme.ColorNamePrimary, theme.VariantDark)
	if dark == light {
		t.Error("Dark primary should differ from light primary")
	}
}

func TestNavDrawerThemeFallsBack(t *testing.T) {
	th := NewNavDrawerTheme()

	got := th.Size(theme.SizeNameScrollBar)
	if got != theme.DefaultTheme().Size(theme.SizeNameScrollBar) {
		t.Errorf("Expected default scrollbar size, got %v", got)
	}
	if th.Size(theme.SizeNamePadding) != 6 {
		t.Errorf("Expected padding 6, got %v", th.Size(theme.SizeNamePadding))
	}
}

func TestMenuIcon(t *testing.T) {
	for _, ref := range []string{model.MenuHome, model.MenuFavourite, model.MenuProfile} {
		if MenuIcon(ref) == nil {
			t.Errorf("Expected icon for %s", ref)
		}
	}

	if MenuIcon("unknown").Name() != theme.DocumentIcon().Name() {
		t.Error("Unknown reference should use the document icon")
	}
}
