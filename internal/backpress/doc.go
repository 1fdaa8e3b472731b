package backpress

// Package backpress routes the platform back signal (Android back button,
// Escape on desktop) to the innermost enabled callback, falling back to the
// window's default action when no callback wants it.
//
// A Dispatcher belongs to the hosting window. Screens register a Handler,
// refresh it on every render with Update and release it with Detach.
