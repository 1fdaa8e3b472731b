package backpress

import (
	"log"
	"sync"

	"go.uber.org/atomic"
)

// onBackSlot wraps the handler func so a nil func can be stored
type onBackSlot struct {
	fn func()
}

// Handler is the screen-side back interceptor. The underlying Callback is
// created once; Update only refreshes its enabled flag and the function it
// calls through.
type Handler struct {
	callback *Callback
	current  atomic.Value // onBackSlot, always the latest one passed to Update

	mu         sync.Mutex
	dispatcher *Dispatcher
}

// NewHandler creates a detached handler
func NewHandler(enabled bool, onBack func()) *Handler {
	h := &Handler{}
	h.current.Store(onBackSlot{fn: onBack})
	h.callback = NewCallback(enabled, h.invoke)
	return h
}

// Update must be called on every render with the current enabled flag and
// callback.
func (h *Handler) Update(enabled bool, onBack func()) {
	h.current.Store(onBackSlot{fn: onBack})
	h.callback.SetEnabled(enabled)
}

// Enabled reports whether the handler currently intercepts back
func (h *Handler) Enabled() bool {
	return h.callback.IsEnabled()
}

// Attach registers the handler with d. Attaching to the dispatcher it is
// already registered with does nothing; attaching to another one moves the
// registration.
func (h *Handler) Attach(d *Dispatcher) error {
	if d == nil {
		return ErrNoDispatcher
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.dispatcher == d {
		return nil
	}
	if h.dispatcher != nil {
		h.callback.Remove()
	}

	d.AddCallback(h.callback)
	h.dispatcher = d
	log.Printf("Back handler attached (enabled=%v)", h.callback.IsEnabled())
	return nil
}

// Detach releases the registration. Safe to call more than once.
func (h *Handler) Detach() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.dispatcher == nil {
		return
	}
	h.callback.Remove()
	h.dispatcher = nil
	log.Printf("Back handler detached")
}

// Attached reports whether the handler is registered with a dispatcher
func (h *Handler) Attached() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dispatcher != nil
}

func (h *Handler) invoke() {
	if slot, ok := h.current.Load().(onBackSlot); ok && slot.fn != nil {
		slot.fn()
	}
}
