package snackbar

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/issog/navdrawer/internal/model"
)

// Visuals describes what a snackbar displays
type Visuals struct {
	Message           string
	ActionLabel       string // empty means no action button
	WithDismissAction bool
	Duration          model.SnackbarDuration
}

// Data is one shown snackbar instance
type Data struct {
	ID string
	Visuals

	result chan model.SnackbarResult
	once   sync.Once
}

func newData(v Visuals) *Data {
	return &Data{
		ID:      uuid.NewString(),
		Visuals: v,
		result:  make(chan model.SnackbarResult, 1),
	}
}

// PerformAction resolves the snackbar as ActionPerformed
func (d *Data) PerformAction() {
	d.resolve(model.SnackbarActionPerformed)
}

// Dismiss resolves the snackbar as Dismissed
func (d *Data) Dismiss() {
	d.resolve(model.SnackbarDismissed)
}

// resolve delivers the first outcome only; later calls are ignored
func (d *Data) resolve(result model.SnackbarResult) {
	d.once.Do(func() {
		d.result <- result
	})
}

// Host shows snackbars one after another
type Host struct {
	slot chan struct{} // held by the visible snackbar

	mu         sync.Mutex
	current    *Data
	onUpdate   func(*Data) // callback for UI updates, nil data means hidden
	timeoutFor func(model.SnackbarDuration) (time.Duration, bool)
}

// NewHost creates an empty snackbar host
func NewHost() *Host {
	return &Host{
		slot:       make(chan struct{}, 1),
		timeoutFor: model.SnackbarDuration.Timeout,
	}
}

// SetUpdateCallback sets the function called whenever the visible snackbar
// changes
func (h *Host) SetUpdateCallback(callback func(*Data)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onUpdate = callback
}

// SetTimeoutFunc overrides how duration classes map to display time
func (h *Host) SetTimeoutFunc(fn func(model.SnackbarDuration) (time.Duration, bool)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if fn == nil {
		fn = model.SnackbarDuration.Timeout
	}
	h.timeoutFor = fn
}

// Current returns the visible snackbar or nil
func (h *Host) Current() *Data {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

// Show displays a snackbar and blocks until it resolves. If another one is
// visible, Show waits for it first. When ctx is done the snackbar is hidden
// and the context error is returned.
func (h *Host) Show(ctx context.Context, v Visuals) (model.SnackbarResult, error) {
	select {
	case h.slot <- struct{}{}:
	case <-ctx.Done():
		return model.SnackbarTimedOut, fmt.Errorf("waiting for snackbar slot: %w", ctx.Err())
	}
	defer func() { <-h.slot }()

	data := newData(v)
	h.setCurrent(data)
	log.Printf("Snackbar %s shown: %q", data.ID, v.Message)

	h.mu.Lock()
	timeoutFor := h.timeoutFor
	h.mu.Unlock()
	if timeout, ok := timeoutFor(v.Duration); ok {
		timer := time.AfterFunc(timeout, func() {
			data.resolve(model.SnackbarTimedOut)
		})
		defer timer.Stop()
	}

	var (
		result model.SnackbarResult
		err    error
	)
	select {
	case result = <-data.result:
	case <-ctx.Done():
		// Swallow any late action/dismiss on this instance
		data.once.Do(func() {})
		err = ctx.Err()
	}

	h.clearCurrent(data)

	if err != nil {
		log.Printf("Snackbar %s cancelled: %v", data.ID, err)
		return model.SnackbarTimedOut, fmt.Errorf("snackbar %s: %w", data.ID, err)
	}

	log.Printf("Snackbar %s resolved: %s", data.ID, result)
	return result, nil
}

func (h *Host) setCurrent(data *Data) {
	h.mu.Lock()
	h.current = data
	callback := h.onUpdate
	h.mu.Unlock()

	if callback != nil {
		callback(data)
	}
}

func (h *Host) clearCurrent(data *Data) {
	h.mu.Lock()
	if h.current != data {
		h.mu.Unlock()
		return
	}
	h.current = nil
	callback := h.onUpdate
	h.mu.Unlock()

	if callback != nil {
		callback(nil)
	}
}
