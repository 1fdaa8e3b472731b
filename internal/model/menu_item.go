package model

// Menu item identifiers. They double as icon references and i18n keys.
const (
	MenuHome      = "home"
	MenuFavourite = "favourite"
	MenuProfile   = "profile"
)

// MenuItem is one entry of the navigation drawer
type MenuItem struct {
	ID    string // stable identifier, survives relabeling
	Title string // localized label
	Icon  string // icon reference resolved by the UI layer
}

// NewMenuItem creates a menu item whose icon reference equals its ID
func NewMenuItem(id, title string) MenuItem {
	return MenuItem{ID: id, Title: title, Icon: id}
}

// Same reports whether both items refer to the same menu entry
func (m MenuItem) Same(other MenuItem) bool {
	return m.ID == other.ID
}

// IndexOf returns the position of the item with the given ID, or -1
func IndexOf(items []MenuItem, id string) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
