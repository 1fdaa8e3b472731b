package model

// Package model defines the value types shared by the screen: the drawer
// value, menu items and the snackbar duration/result enums.
