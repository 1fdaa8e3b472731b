package navstate

import (
	"sync"
	"testing"
	"time"

	"github.com/issog/navdrawer/internal/backpress"
	"github.com/issog/navdrawer/internal/i18n"
	"github.com/issog/navdrawer/internal/model"
	"github.com/issog/navdrawer/internal/snackbar"
)

const waitTimeout = 2 * time.Second

// recordingToaster collects shown toast messages
type recordingToaster struct {
	mu       sync.Mutex
	messages []string
}

func (r *recordingToaster) Show(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
}

func (r *recordingToaster) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.messages...)
}

func newTestState(t *testing.T) (*State, *recordingToaster) {
	t.Helper()
	loc, err := i18n.NewLocalization()
	if err != nil {
		t.Fatalf("NewLocalization() error: %v", err)
	}
	toaster := &recordingToaster{}
	s := New(loc, toaster)
	t.Cleanup(func() {
		s.Close()
		s.Wait()
	})
	return s, toaster
}

func waitForSnackbar(t *testing.T, s *State, message string) *snackbar.Data {
	t.Helper()
	deadline := time.Now().Add(waitTimeout)
	for time.Now().Before(deadline) {
		if data := s.Snackbar().Current(); data != nil && data.Message == message {
			return data
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("Snackbar %q was not shown within %v", message, waitTimeout)
	return nil
}

func itemByID(t *testing.T, s *State, id string) model.MenuItem {
	t.Helper()
	items := s.Items()
	i := model.IndexOf(items, id)
	if i < 0 {
		t.Fatalf("No menu item with ID %s", id)
	}
	return items[i]
}

func TestNew(t *testing.T) {
	s, _ := newTestState(t)

	if !s.Drawer().IsClosed() {
		t.Errorf("Expected drawer closed, got %s", s.Drawer().Value())
	}
	if s.BackHandler().Enabled() {
		t.Error("Back handler should be disabled while the drawer is closed")
	}

	items := s.Items()
	expectedIDs := []string{model.MenuHome, model.MenuFavourite, model.MenuProfile}
	expectedTitles := []string{"Home", "Favourite", "Profile"}
	if len(items) != len(expectedIDs) {
		t.Fatalf("Expected %d items, got %d", len(expectedIDs), len(items))
	}
	for i := range expectedIDs {
		if items[i].ID != expectedIDs[i] || items[i].Title != expectedTitles[i] {
			t.Errorf("Item %d: expected %s/%s, got %s/%s", i, expectedIDs[i], expectedTitles[i], items[i].ID, items[i].Title)
		}
	}

	if s.Selected().ID != model.MenuHome {
		t.Errorf("Expected Home selected by default, got %s", s.Selected().ID)
	}
	if s.ContentHint() != "Swipe to open" {
		t.Errorf("Expected hint 'Swipe to open', got '%s'", s.ContentHint())
	}
}

func TestOnMenuClick(t *testing.T) {
	s, _ := newTestState(t)

	s.OnMenuClick()
	if !s.Drawer().IsOpen() {
		t.Fatalf("Expected drawer open after menu click, got %s", s.Drawer().Value())
	}
	if s.ContentHint() != "Swipe to close" {
		t.Errorf("Expected hint 'Swipe to close', got '%s'", s.ContentHint())
	}

	s.OnMenuClick()
	if !s.Drawer().IsClosed() {
		t.Errorf("Expected drawer closed after second click, got %s", s.Drawer().Value())
	}
}

func TestBackHandlerTracksDrawer(t *testing.T) {
	s, _ := newTestState(t)

	ops := []func(){
		s.OnMenuClick,
		s.Drawer().Open,
		s.Drawer().Close,
		s.Drawer().Close,
		s.OnMenuClick,
		s.OnBackPress,
		s.Drawer().Toggle,
		s.Drawer().Open,
	}

	for i, op := range ops {
		op()
		if s.BackHandler().Enabled() != s.Drawer().IsOpen() {
			t.Errorf("Step %d: back handler enabled=%v but drawer %s",
				i, s.BackHandler().Enabled(), s.Drawer().Value())
		}
	}
}

func TestBack_OpenDrawerIsClosed(t *testing.T) {
	s, _ := newTestState(t)
	fallbacks := 0
	d := backpress.NewDispatcher(func() { fallbacks++ })
	if err := s.BackHandler().Attach(d); err != nil {
		t.Fatalf("Attach() error: %v", err)
	}

	s.OnMenuClick()
	if !d.OnBackPressed() {
		t.Error("Expected back to be consumed while the drawer is open")
	}

	if !s.Drawer().IsClosed() {
		t.Errorf("Expected drawer closed after back, got %s", s.Drawer().Value())
	}
	if fallbacks != 0 {
		t.Errorf("Default back handler should not run, ran %d times", fallbacks)
	}
	if s.Snackbar().Current() != nil {
		t.Error("Back must not show any message")
	}
}

func TestBack_ClosedDrawerFallsThrough(t *testing.T) {
	s, _ := newTestState(t)
	fallbacks := 0
	d := backpress.NewDispatcher(func() { fallbacks++ })
	if err := s.BackHandler().Attach(d); err != nil {
		t.Fatalf("Attach() error: %v", err)
	}

	if d.OnBackPressed() {
		t.Error("Expected back to pass through while the drawer is closed")
	}
	if fallbacks != 1 {
		t.Errorf("Expected default back handler to run once, ran %d times", fallbacks)
	}
	if !s.Drawer().IsClosed() {
		t.Errorf("Drawer should stay closed, got %s", s.Drawer().Value())
	}
}

func TestClose_DetachesBackHandler(t *testing.T) {
	s, _ := newTestState(t)
	d := backpress.NewDispatcher(nil)
	_ = s.BackHandler().Attach(d)

	s.Close()

	if d.Len() != 0 {
		t.Errorf("Expected no registrations after Close, got %d", d.Len())
	}
}

func TestSetItemsKeepsSelection(t *testing.T) {
	s, _ := newTestState(t)
	s.OnItemSelected(itemByID(t, s, model.MenuProfile))

	s.SetItems([]model.MenuItem{
		model.NewMenuItem(model.MenuHome, "Início"),
		model.NewMenuItem(model.MenuFavourite, "Favoritos"),
		model.NewMenuItem(model.MenuProfile, "Perfil"),
	})

	selected := s.Selected()
	if selected.ID != model.MenuProfile || selected.Title != "Perfil" {
		t.Errorf("Expected relabeled Profile selected, got %s/%s", selected.ID, selected.Title)
	}

	s.SetItems([]model.MenuItem{model.NewMenuItem("other", "Other")})
	if s.Selected().ID != "other" {
		t.Errorf("Expected selection to fall back to the first item, got %s", s.Selected().ID)
	}

	s.SetItems(nil)
	if len(s.Items()) != 1 {
		t.Errorf("Empty SetItems should be ignored, got %d items", len(s.Items()))
	}
}

func TestOnChange(t *testing.T) {
	s, _ := newTestState(t)
	changes := 0
	s.SetOnChange(func() { changes++ })

	s.OnMenuClick()
	s.OnMenuClick()
	s.Drawer().Close() // no-op, no change

	if changes != 2 {
		t.Errorf("Expected 2 change notifications, got %d", changes)
	}
}
