package snackbar

// Package snackbar implements the snackbar host: it shows one transient
// message at a time and hands the waiting caller exactly one outcome per
// message (action, dismiss, timeout) or the context error when the caller
// gives up.
