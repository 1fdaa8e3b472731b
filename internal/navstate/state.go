package navstate

import (
	"context"
	"sync"

	"github.com/issog/navdrawer/internal/backpress"
	"github.com/issog/navdrawer/internal/drawer"
	"github.com/issog/navdrawer/internal/i18n"
	"github.com/issog/navdrawer/internal/model"
	"github.com/issog/navdrawer/internal/snackbar"
)

// State is the state holder of the navigation drawer screen
type State struct {
	drawer   *drawer.Controller
	snackbar *snackbar.Host
	back     *backpress.Handler
	strings  Strings
	toaster  Toaster

	mu       sync.Mutex
	items    []model.MenuItem
	selected string // ID of the selected item
	duration model.SnackbarDuration
	onChange func() // callback for UI updates

	// notification flows
	ctx     context.Context
	cancel  context.CancelFunc
	pending context.CancelFunc
	flows   sync.WaitGroup
}

// New creates the state for a fresh screen: drawer closed, first item
// selected, back handler created but not attached.
func New(strings Strings, toaster Toaster) *State {
	ctx, cancel := context.WithCancel(context.Background())

	s := &State{
		drawer:   drawer.NewController(),
		snackbar: snackbar.NewHost(),
		strings:  strings,
		toaster:  toaster,
		items:    DefaultMenuItems(strings),
		duration: model.SnackbarShort,
		ctx:      ctx,
		cancel:   cancel,
	}
	s.selected = s.items[0].ID
	s.back = backpress.NewHandler(s.drawer.IsOpen(), s.OnBackPress)

	s.drawer.SetUpdateCallback(func(model.DrawerValue) {
		s.Sync()
		s.changed()
	})

	return s
}

// Drawer returns the drawer controller
func (s *State) Drawer() *drawer.Controller {
	return s.drawer
}

// Snackbar returns the snackbar host
func (s *State) Snackbar() *snackbar.Host {
	return s.snackbar
}

// BackHandler returns the back interceptor to attach to the window
func (s *State) BackHandler() *backpress.Handler {
	return s.back
}

// SetOnChange sets the function called after any state change that needs a
// re-render
func (s *State) SetOnChange(callback func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = callback
}

// SetSnackbarDuration sets the duration class of future snackbars
func (s *State) SetSnackbarDuration(duration model.SnackbarDuration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.duration = duration
}

// Sync refreshes the back handler from the drawer value. The screen calls
// it on every render.
func (s *State) Sync() {
	s.back.Update(s.drawer.IsOpen(), s.OnBackPress)
}

// OnMenuClick toggles the drawer
func (s *State) OnMenuClick() {
	s.drawer.Toggle()
}

// OnBackPress closes the drawer. It is the back handler's callback.
func (s *State) OnBackPress() {
	s.drawer.Close()
}

// ContentHint returns the text shown in the content area
func (s *State) ContentHint() string {
	if s.drawer.IsClosed() {
		return s.strings.Text(i18n.KeySwipeToOpen)
	}
	return s.strings.Text(i18n.KeySwipeToClose)
}

// Items returns a copy of the drawer entries
func (s *State) Items() []model.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.MenuItem(nil), s.items...)
}

// SetItems replaces the drawer entries, e.g. after a language change. The
// selection is kept when its ID is still present.
func (s *State) SetItems(items []model.MenuItem) {
	if len(items) == 0 {
		return
	}

	s.mu.Lock()
	s.items = append([]model.MenuItem(nil), items...)
	if model.IndexOf(s.items, s.selected) < 0 {
		s.selected = s.items[0].ID
	}
	s.mu.Unlock()

	s.changed()
}

// Selected returns the selected item
func (s *State) Selected() model.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := model.IndexOf(s.items, s.selected); i >= 0 {
		return s.items[i]
	}
	return s.items[0]
}

// IsSelected reports whether item is the selected entry
func (s *State) IsSelected(item model.MenuItem) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected == item.ID
}

// Close cancels pending notification flows and releases the back handler
func (s *State) Close() {
	s.cancel()
	s.back.Detach()
}

// Wait blocks until all notification flows have finished
func (s *State) Wait() {
	s.flows.Wait()
}

func (s *State) changed() {
	s.mu.Lock()
	callback := s.onChange
	s.mu.Unlock()

	if callback != nil {
		callback()
	}
}
