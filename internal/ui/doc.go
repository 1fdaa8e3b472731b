package ui

// Package ui contains the Fyne user interface of the navigation drawer
// screen: top bar, drawer sheet with scrim, content hint, snackbar bar and
// toast overlay. Widgets render from navstate.State and forward input to it;
// the platform back key is routed through a backpress.Dispatcher.
