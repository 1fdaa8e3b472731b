package navstate

// Package navstate holds the state of the navigation drawer screen: drawer
// value, menu items and selection, the snackbar host and the back handler.
// Widgets render from it and forward user input to its On* methods.
