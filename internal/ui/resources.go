package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/issog/navdrawer/internal/model"
)

const favouriteIconSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path fill="#000000" d="M12 21.35l-1.45-1.32C5.4 15.36 2 12.28 2 8.5 2 5.42 4.42 3 7.5 3c1.74 0 3.41.81 4.5 2.09C13.09 3.81 14.76 3 16.5 3 19.58 3 22 5.42 22 8.5c0 3.78-3.4 6.86-8.55 11.54L12 21.35z"/></svg>`

// favouriteIcon is not part of the Fyne icon set
var favouriteIcon = theme.NewThemedResource(fyne.NewStaticResource("favourite.svg", []byte(favouriteIconSVG)))

// MenuIcon resolves a menu item icon reference to a resource. Unknown
// references get the default document icon.
func MenuIcon(ref string) fyne.Resource {
	switch ref {
	case model.MenuHome:
		return theme.HomeIcon()
	case model.MenuFavourite:
		return favouriteIcon
	case model.MenuProfile:
		return theme.AccountIcon()
	default:
		return theme.DocumentIcon()
	}
}
