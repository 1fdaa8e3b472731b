package backpress

import (
	"errors"
	"log"
	"sync"

	"go.uber.org/atomic"
)

// ErrNoDispatcher is returned when a handler is attached without a host
var ErrNoDispatcher = errors.New("no back dispatcher was provided")

// Callback is one back interceptor. It only consumes the signal while
// enabled.
type Callback struct {
	enabled atomic.Bool
	handle  func()

	mu          sync.Mutex
	dispatchers []*Dispatcher
}

// NewCallback creates a callback with the given initial enabled flag
func NewCallback(enabled bool, handle func()) *Callback {
	c := &Callback{handle: handle}
	c.enabled.Store(enabled)
	return c
}

// IsEnabled reports whether the callback currently intercepts back
func (c *Callback) IsEnabled() bool {
	return c.enabled.Load()
}

// SetEnabled switches interception on or off without re-registering
func (c *Callback) SetEnabled(enabled bool) {
	c.enabled.Store(enabled)
}

// HandleBack runs the callback's handler
func (c *Callback) HandleBack() {
	if c.handle != nil {
		c.handle()
	}
}

// Remove detaches the callback from every dispatcher it was added to.
// Calling Remove on a detached callback does nothing.
func (c *Callback) Remove() {
	c.mu.Lock()
	dispatchers := c.dispatchers
	c.dispatchers = nil
	c.mu.Unlock()

	for _, d := range dispatchers {
		d.remove(c)
	}
}

func (c *Callback) addDispatcher(d *Dispatcher) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dispatchers = append(c.dispatchers, d)
}

// Dispatcher delivers back signals to registered callbacks, newest first
type Dispatcher struct {
	mu        sync.Mutex
	callbacks []*Callback
	fallback  func() // default back action (e.g. close the window)
}

// NewDispatcher creates a dispatcher. fallback runs when no enabled callback
// consumes the signal and may be nil.
func NewDispatcher(fallback func()) *Dispatcher {
	return &Dispatcher{fallback: fallback}
}

// AddCallback registers a callback. Adding the same callback twice keeps a
// single registration.
func (d *Dispatcher) AddCallback(cb *Callback) {
	d.mu.Lock()
	for _, existing := range d.callbacks {
		if existing == cb {
			d.mu.Unlock()
			return
		}
	}
	d.callbacks = append(d.callbacks, cb)
	d.mu.Unlock()

	cb.addDispatcher(d)
}

// Len returns the number of registered callbacks, enabled or not
func (d *Dispatcher) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.callbacks)
}

// HasEnabledCallbacks reports whether a back signal would be intercepted
func (d *Dispatcher) HasEnabledCallbacks() bool {
	return d.topEnabled() != nil
}

// OnBackPressed delivers one back signal. It returns true when a callback
// consumed it and false when the fallback ran instead.
func (d *Dispatcher) OnBackPressed() bool {
	if cb := d.topEnabled(); cb != nil {
		cb.HandleBack()
		return true
	}

	log.Printf("Back not intercepted, running default action")
	if d.fallback != nil {
		d.fallback()
	}
	return false
}

func (d *Dispatcher) topEnabled() *Callback {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := len(d.callbacks) - 1; i >= 0; i-- {
		if d.callbacks[i].IsEnabled() {
			return d.callbacks[i]
		}
	}
	return nil
}

func (d *Dispatcher) remove(cb *Callback) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, existing := range d.callbacks {
		if existing == cb {
			d.callbacks = append(d.callbacks[:i], d.callbacks[i+1:]...)
			return
		}
	}
}
