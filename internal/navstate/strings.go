package navstate

import (
	"github.com/issog/navdrawer/internal/i18n"
	"github.com/issog/navdrawer/internal/model"
)

// Strings looks up localized texts by key
type Strings interface {
	Text(key string) string
	Format(key string, data map[string]any) string
}

// Toaster shows short fire-and-forget messages
type Toaster interface {
	Show(message string)
}

// DefaultMenuItems builds the fixed drawer entries with localized labels
func DefaultMenuItems(s Strings) []model.MenuItem {
	return []model.MenuItem{
		model.NewMenuItem(model.MenuHome, s.Text(i18n.KeyHome)),
		model.NewMenuItem(model.MenuFavourite, s.Text(i18n.KeyFavourite)),
		model.NewMenuItem(model.MenuProfile, s.Text(i18n.KeyProfile)),
	}
}
