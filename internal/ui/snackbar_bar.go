package ui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/issog/navdrawer/internal/snackbar"
)

// SnackbarBar renders the snackbar currently shown by a snackbar.Host at
// the bottom of the screen. It is hidden while no snackbar is visible.
type SnackbarBar struct {
	widget.BaseWidget

	message    *widget.Label
	actionBtn  *widget.Button
	dismissBtn *widget.Button
	content    *fyne.Container

	mu   sync.Mutex // held while the bar is updated
	data *snackbar.Data
}

// NewSnackbarBar creates a hidden snackbar bar
func NewSnackbarBar() *SnackbarBar {
	sb := &SnackbarBar{}
	sb.ExtendBaseWidget(sb)

	sb.message = widget.NewLabel("")
	sb.message.Wrapping = fyne.TextWrapWord

	sb.actionBtn = widget.NewButton("", sb.onAction)
	sb.actionBtn.Importance = widget.HighImportance

	sb.dismissBtn = widget.NewButtonWithIcon("", theme.CancelIcon(), sb.onDismiss)
	sb.dismissBtn.Importance = widget.LowImportance

	background := canvas.NewRectangle(SnackbarBackgroundColor)
	background.CornerRadius = theme.InputRadiusSize()

	sb.content = container.NewPadded(container.NewStack(
		background,
		container.NewBorder(nil, nil, nil,
			container.NewHBox(sb.actionBtn, sb.dismissBtn),
			sb.message,
		),
	))

	sb.Hide()
	return sb
}

// CreateRenderer implements fyne.Widget
func (sb *SnackbarBar) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(sb.content)
}

// SetData shows data, or hides the bar when data is nil
func (sb *SnackbarBar) SetData(data *snackbar.Data) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	sb.data = data
	if data == nil {
		sb.Hide()
		return
	}

	sb.message.SetText(data.Message)

	if data.ActionLabel != "" {
		sb.actionBtn.SetText(data.ActionLabel)
		sb.actionBtn.Show()
	} else {
		sb.actionBtn.Hide()
	}

	if data.WithDismissAction {
		sb.dismissBtn.Show()
	} else {
		sb.dismissBtn.Hide()
	}

	sb.Show()
	sb.Refresh()
}

// SetDismissLabel sets the text of the dismiss button
func (sb *SnackbarBar) SetDismissLabel(label string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.dismissBtn.SetText(label)
}

// Data returns the snackbar being displayed, nil when hidden
func (sb *SnackbarBar) Data() *snackbar.Data {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.data
}

// Message returns the displayed message text
func (sb *SnackbarBar) Message() string {
	return sb.message.Text
}

// ActionButton returns the action button
func (sb *SnackbarBar) ActionButton() *widget.Button {
	return sb.actionBtn
}

// DismissButton returns the dismiss button
func (sb *SnackbarBar) DismissButton() *widget.Button {
	return sb.dismissBtn
}

func (sb *SnackbarBar) onAction() {
	if data := sb.Data(); data != nil {
		data.PerformAction()
	}
}

func (sb *SnackbarBar) onDismiss() {
	if data := sb.Data(); data != nil {
		data.Dismiss()
	}
}
