package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/issog/navdrawer/internal/model"
)

// DrawerSheet is the modal drawer panel: a header followed by one row per
// menu item. Horizontal swipes on the sheet are reported to the gesture
// handler.
type DrawerSheet struct {
	widget.BaseWidget

	header     *widget.Label
	itemsBox   *fyne.Container
	background *canvas.Rectangle
	content    *fyne.Container
	buttons    []*widget.Button

	gestures *GestureHandler
	onSelect func(model.MenuItem)
}

// Interface compliance
var (
	_ fyne.Draggable   = (*DrawerSheet)(nil)
	_ mobile.Touchable = (*DrawerSheet)(nil)
)

// NewDrawerSheet creates an empty drawer sheet
func NewDrawerSheet(gestures *GestureHandler, onSelect func(model.MenuItem)) *DrawerSheet {
	ds := &DrawerSheet{
		gestures: gestures,
		onSelect: onSelect,
	}
	ds.ExtendBaseWidget(ds)

	ds.header = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ds.itemsBox = container.NewVBox()

	ds.background = canvas.NewRectangle(DrawerSheetColor)
	ds.background.SetMinSize(fyne.NewSize(DrawerSheetWidth, 0))

	ds.content = container.NewStack(
		ds.background,
		container.NewBorder(
			container.NewPadded(ds.header),
			nil, nil, nil,
			container.NewVScroll(ds.itemsBox),
		),
	)

	return ds
}

// CreateRenderer implements fyne.Widget
func (ds *DrawerSheet) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(ds.content)
}

// SetWidth sets the minimum width of the sheet
func (ds *DrawerSheet) SetWidth(width float32) {
	ds.background.SetMinSize(fyne.NewSize(width, 0))
	ds.background.Refresh()
}

// SetBackgroundColor sets the sheet surface colour
func (ds *DrawerSheet) SetBackgroundColor(variant fyne.ThemeVariant) {
	if variant == theme.VariantDark {
		ds.background.FillColor = DrawerSheetColorDark
	} else {
		ds.background.FillColor = DrawerSheetColor
	}
	ds.background.Refresh()
}

// Update rebuilds the sheet for header and items. The selected item is
// rendered highlighted.
func (ds *DrawerSheet) Update(header string, items []model.MenuItem, isSelected func(model.MenuItem) bool) {
	ds.header.SetText(header)

	ds.buttons = make([]*widget.Button, 0, len(items))
	objects := make([]fyne.CanvasObject, 0, len(items))
	for _, item := range items {
		item := item // Capture for closure
		btn := widget.NewButtonWithIcon(item.Title, MenuIcon(item.Icon), func() {
			if ds.onSelect != nil {
				ds.onSelect(item)
			}
		})
		btn.Alignment = widget.ButtonAlignLeading
		if isSelected != nil && isSelected(item) {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.LowImportance
		}
		ds.buttons = append(ds.buttons, btn)
		objects = append(objects, btn)
	}

	ds.itemsBox.Objects = objects
	ds.itemsBox.Refresh()
}

// Buttons returns the item rows in display order
func (ds *DrawerSheet) Buttons() []*widget.Button {
	return ds.buttons
}

// Header returns the header text
func (ds *DrawerSheet) Header() string {
	return ds.header.Text
}

// Dragged implements fyne.Draggable
func (ds *DrawerSheet) Dragged(event *fyne.DragEvent) {
	ds.gestures.Dragged(event)
}

// DragEnd implements fyne.Draggable
func (ds *DrawerSheet) DragEnd() {
	ds.gestures.DragEnd()
}

// TouchDown implements mobile.Touchable
func (ds *DrawerSheet) TouchDown(event *mobile.TouchEvent) {
	ds.gestures.TouchDown(event)
}

// TouchUp implements mobile.Touchable
func (ds *DrawerSheet) TouchUp(event *mobile.TouchEvent) {
	ds.gestures.TouchUp(event)
}

// TouchCancel implements mobile.Touchable
func (ds *DrawerSheet) TouchCancel(event *mobile.TouchEvent) {
	ds.gestures.TouchCancel(event)
}

// Scrim dims the content behind an open drawer. Tapping it closes the
// drawer; swipes on it are reported like swipes on the sheet.
type Scrim struct {
	widget.BaseWidget

	rect     *canvas.Rectangle
	gestures *GestureHandler
	onTap    func()
}

// Interface compliance
var (
	_ fyne.Tappable  = (*Scrim)(nil)
	_ fyne.Draggable = (*Scrim)(nil)
)

// NewScrim creates a scrim calling onTap when tapped
func NewScrim(gestures *GestureHandler, onTap func()) *Scrim {
	s := &Scrim{
		rect:     canvas.NewRectangle(ScrimColor),
		gestures: gestures,
		onTap:    onTap,
	}
	s.ExtendBaseWidget(s)
	return s
}

// CreateRenderer implements fyne.Widget
func (s *Scrim) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.rect)
}

// Tapped implements fyne.Tappable
func (s *Scrim) Tapped(*fyne.PointEvent) {
	if s.onTap != nil {
		s.onTap()
	}
}

// Dragged implements fyne.Draggable
func (s *Scrim) Dragged(event *fyne.DragEvent) {
	s.gestures.Dragged(event)
}

// DragEnd implements fyne.Draggable
func (s *Scrim) DragEnd() {
	s.gestures.DragEnd()
}
