package model

// DrawerValue represents the open/closed state of the navigation drawer
type DrawerValue int

const (
	// DrawerClosed is the initial state of every new screen
	DrawerClosed DrawerValue = iota

	// DrawerOpen means the drawer sheet is visible over the content
	DrawerOpen
)

// String returns the string representation of DrawerValue
func (v DrawerValue) String() string {
	switch v {
	case DrawerClosed:
		return "Closed"
	case DrawerOpen:
		return "Open"
	default:
		return "Unknown"
	}
}

// IsOpen returns true if the drawer is open
func (v DrawerValue) IsOpen() bool {
	return v == DrawerOpen
}

// IsClosed returns true if the drawer is closed
func (v DrawerValue) IsClosed() bool {
	return v == DrawerClosed
}
