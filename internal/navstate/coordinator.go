package navstate

import (
	"context"
	"log"

	"github.com/issog/navdrawer/internal/i18n"
	"github.com/issog/navdrawer/internal/model"
	"github.com/issog/navdrawer/internal/snackbar"
)

// OnItemSelected closes the drawer, selects item and starts its
// notification flow: a "coming soon" snackbar with a subscribe action,
// followed by a confirmation toast when the user acted on it or dismissed
// it. An expired snackbar gets no confirmation.
//
// A flow still waiting on its snackbar is superseded: its snackbar is
// hidden and its confirmation dropped.
func (s *State) OnItemSelected(item model.MenuItem) {
	s.drawer.Close()

	s.mu.Lock()
	s.selected = item.ID
	if s.pending != nil {
		s.pending()
	}
	ctx, cancel := context.WithCancel(s.ctx)
	s.pending = cancel
	duration := s.duration
	s.mu.Unlock()

	s.changed()

	visuals := snackbar.Visuals{
		Message:           s.strings.Format(i18n.KeyComingSoon, map[string]any{"Item": item.Title}),
		ActionLabel:       s.strings.Text(i18n.KeySubscribeQuestion),
		WithDismissAction: true,
		Duration:          duration,
	}

	log.Printf("Menu item selected: %s", item.ID)
	s.flows.Add(1)
	go s.notify(ctx, cancel, visuals)
}

func (s *State) notify(ctx context.Context, cancel context.CancelFunc, visuals snackbar.Visuals) {
	defer s.flows.Done()
	defer cancel()

	result, err := s.snackbar.Show(ctx, visuals)
	if err != nil {
		log.Printf("Notification flow stopped: %v", err)
		return
	}

	if !result.ShouldConfirm() {
		log.Printf("Snackbar %s, no confirmation", result)
		return
	}

	if s.toaster != nil {
		s.toaster.Show(s.strings.Text(i18n.KeySubscribedInfo))
	}
}
