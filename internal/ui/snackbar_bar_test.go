package ui

import (
	"context"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/issog/navdrawer/internal/model"
	"github.com/issog/navdrawer/internal/snackbar"
)

func TestSnackbarBarFollowsHost(t *testing.T) {
	test.NewApp()
	bar := NewSnackbarBar()

	host := snackbar.NewHost()
	host.SetUpdateCallback(bar.SetData)

	results := make(chan model.SnackbarResult, 1)
	go func() {
		result, err := host.Show(context.Background(), snackbar.Visuals{
			Message:           "Coming soon for Home",
			ActionLabel:       "Subscribe?",
			WithDismissAction: true,
			Duration:          model.SnackbarIndefinite,
		})
		if err != nil {
			t.Errorf("Show() error: %v", err)
		}
		results <- result
	}()

	// The bar is updated from the Show goroutine
	waitFor(t, func() bool { return bar.Data() != nil })

	if bar.Message() != "Coming soon for Home" {
		t.Errorf("Expected message 'Coming soon for Home', got %q", bar.Message())
	}
	if !bar.ActionButton().Visible() || bar.ActionButton().Text != "Subscribe?" {
		t.Errorf("Expected visible action 'Subscribe?', got %q", bar.ActionButton().Text)
	}

	test.Tap(bar.ActionButton())

	if result := <-results; result != model.SnackbarActionPerformed {
		t.Errorf("Expected %s, got %s", model.SnackbarActionPerformed, result)
	}
	waitFor(t, func() bool { return bar.Data() == nil })
}

func TestSnackbarBarWithoutAction(t *testing.T) {
	test.NewApp()
	bar := NewSnackbarBar()

	host := snackbar.NewHost()
	host.SetUpdateCallback(bar.SetData)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		host.Show(ctx, snackbar.Visuals{Message: "Saved", Duration: model.SnackbarIndefinite})
	}()

	waitFor(t, func() bool { return bar.Data() != nil })
	if bar.ActionButton().Visible() {
		t.Error("Action button should be hidden without an action label")
	}
	if bar.DismissButton().Visible() {
		t.Error("Dismiss button should be hidden without a dismiss action")
	}

	cancel()
	<-done
	if bar.Data() != nil {
		t.Error("Bar should be cleared after the snackbar is cancelled")
	}
}
