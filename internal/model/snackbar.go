package model

import (
	"strings"
	"time"
)

// SnackbarResult is the outcome of one shown snackbar
type SnackbarResult int

const (
	// SnackbarTimedOut means the snackbar expired without user interaction
	SnackbarTimedOut SnackbarResult = iota

	// SnackbarDismissed means the user pressed the dismiss affordance
	SnackbarDismissed

	// SnackbarActionPerformed means the user pressed the action button
	SnackbarActionPerformed
)

// String returns the string representation of SnackbarResult
func (r SnackbarResult) String() string {
	switch r {
	case SnackbarTimedOut:
		return "TimedOut"
	case SnackbarDismissed:
		return "Dismissed"
	case SnackbarActionPerformed:
		return "ActionPerformed"
	default:
		return "Unknown"
	}
}

// ShouldConfirm returns true if the outcome is followed by a confirmation
// toast. An expired snackbar is not.
func (r SnackbarResult) ShouldConfirm() bool {
	return r == SnackbarActionPerformed || r == SnackbarDismissed
}

// SnackbarDuration is the display duration class of a snackbar
type SnackbarDuration string

const (
	SnackbarShort      SnackbarDuration = "short"
	SnackbarLong       SnackbarDuration = "long"
	SnackbarIndefinite SnackbarDuration = "indefinite"
)

// Display durations per class
const (
	SnackbarShortTimeout = 4 * time.Second
	SnackbarLongTimeout  = 10 * time.Second
)

// Timeout returns the auto-dismiss delay. The boolean is false for
// Indefinite, which never expires on its own.
func (d SnackbarDuration) Timeout() (time.Duration, bool) {
	switch d {
	case SnackbarLong:
		return SnackbarLongTimeout, true
	case SnackbarIndefinite:
		return 0, false
	default:
		return SnackbarShortTimeout, true
	}
}

// ParseSnackbarDuration maps a configuration value to a duration class.
// Unknown values fall back to Short.
func ParseSnackbarDuration(s string) SnackbarDuration {
	switch SnackbarDuration(strings.ToLower(strings.TrimSpace(s))) {
	case SnackbarLong:
		return SnackbarLong
	case SnackbarIndefinite:
		return SnackbarIndefinite
	default:
		return SnackbarShort
	}
}
