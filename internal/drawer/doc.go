package drawer

// Package drawer owns the open/closed state of the navigation drawer and
// notifies the screen on every real transition.
