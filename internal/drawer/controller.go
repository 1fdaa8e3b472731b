package drawer

import (
	"log"

	"github.com/issog/navdrawer/internal/model"
)

// Op is a drawer operation that can be replayed with Apply
type Op int

const (
	OpOpen Op = iota
	OpClose
	OpToggle
)

// String returns the operation name
func (o Op) String() string {
	switch o {
	case OpOpen:
		return "open"
	case OpClose:
		return "close"
	case OpToggle:
		return "toggle"
	default:
		return "unknown"
	}
}

// Controller holds the drawer value for one screen. It is meant to be used
// from the UI goroutine only.
type Controller struct {
	value    model.DrawerValue
	onUpdate func(model.DrawerValue) // callback for UI updates
}

// NewController creates a controller in the closed state
func NewController() *Controller {
	return &Controller{value: model.DrawerClosed}
}

// SetUpdateCallback sets the function called after every real transition
func (c *Controller) SetUpdateCallback(callback func(model.DrawerValue)) {
	c.onUpdate = callback
}

// Value returns the current drawer value
func (c *Controller) Value() model.DrawerValue {
	return c.value
}

// IsOpen reports whether the drawer is open
func (c *Controller) IsOpen() bool {
	return c.value.IsOpen()
}

// IsClosed reports whether the drawer is closed
func (c *Controller) IsClosed() bool {
	return c.value.IsClosed()
}

// GesturesEnabled reports whether swipe gestures on the drawer region are
// honored. Swiping is only allowed while the drawer is open.
func (c *Controller) GesturesEnabled() bool {
	return c.IsOpen()
}

// Open opens the drawer. Opening an open drawer does nothing.
func (c *Controller) Open() {
	c.set(model.DrawerOpen)
}

// Close closes the drawer. Closing a closed drawer does nothing.
func (c *Controller) Close() {
	c.set(model.DrawerClosed)
}

// Toggle opens a closed drawer and closes an open one
func (c *Controller) Toggle() {
	if c.IsClosed() {
		c.Open()
	} else {
		c.Close()
	}
}

// Apply runs the operations in order and returns the resulting value
func (c *Controller) Apply(ops ...Op) model.DrawerValue {
	for _, op := range ops {
		switch op {
		case OpOpen:
			c.Open()
		case OpClose:
			c.Close()
		case OpToggle:
			c.Toggle()
		}
	}
	return c.value
}

func (c *Controller) set(value model.DrawerValue) {
	if c.value == value {
		return
	}
	c.value = value
	log.Printf("Drawer %s", value)

	if c.onUpdate != nil {
		c.onUpdate(value)
	}
}
