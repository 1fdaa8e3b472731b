package ui

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"go.uber.org/atomic"
)

// ToastOverlay shows short messages near the bottom of the window and hides
// them after ToastAutoHide. A newer message replaces the visible one.
type ToastOverlay struct {
	text       *canvas.Text
	background *canvas.Rectangle
	bubble     *fyne.Container
	container  *fyne.Container

	generation *atomic.Uint64
	autoHide   time.Duration

	mu      sync.Mutex // held while the bubble is updated
	last    string
	visible bool
}

// NewToastOverlay creates a hidden toast overlay
func NewToastOverlay() *ToastOverlay {
	t := &ToastOverlay{
		generation: atomic.NewUint64(0),
		autoHide:   ToastAutoHide,
	}

	t.text = canvas.NewText("", ToastTextColor)
	t.text.Alignment = fyne.TextAlignCenter
	t.text.TextSize = theme.TextSize()

	t.background = canvas.NewRectangle(ToastBackgroundColor)
	t.background.CornerRadius = theme.InputRadiusSize() * 2

	t.bubble = container.NewStack(t.background, container.NewPadded(t.text))
	t.bubble.Hide()

	margin := canvas.NewRectangle(nil)
	margin.SetMinSize(fyne.NewSize(0, ToastMargin))

	t.container = container.NewVBox(
		layout.NewSpacer(),
		container.NewCenter(t.bubble),
		margin,
	)

	return t
}

// Container returns the overlay's canvas object
func (t *ToastOverlay) Container() fyne.CanvasObject {
	return t.container
}

// Show displays message; it is safe to call from any goroutine
func (t *ToastOverlay) Show(message string) {
	t.mu.Lock()
	t.last = message
	t.mu.Unlock()

	gen := t.generation.Inc()
	fyne.Do(func() {
		t.mu.Lock()
		defer t.mu.Unlock()

		t.text.Text = message
		t.text.Refresh()
		t.bubble.Show()
		t.visible = true
	})

	time.AfterFunc(t.autoHide, func() {
		fyne.Do(func() {
			// Only hide if no newer toast was shown
			if t.generation.Load() != gen {
				return
			}

			t.mu.Lock()
			defer t.mu.Unlock()
			t.bubble.Hide()
			t.visible = false
		})
	})
}

// LastMessage returns the most recently shown message
func (t *ToastOverlay) LastMessage() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.last
}

// Visible reports whether a toast is on screen
func (t *ToastOverlay) Visible() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.visible
}

// Text returns the text of the bubble
func (t *ToastOverlay) Text() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.text.Text
}
