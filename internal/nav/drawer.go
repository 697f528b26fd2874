package nav

// Drawer tracks whether the narrow-terminal overlay navigation is visible.
// The visual slide is a plain two-state render driven by IsOpen; there is
// no animation state here. The shell closes the drawer on any successful
// navigation and on a backdrop click.
type Drawer struct {
	open bool
}

// NewDrawer returns a closed drawer.
func NewDrawer() *Drawer {
	return &Drawer{}
}

// Open shows the drawer.
func (d *Drawer) Open() { d.open = true }

// Close hides the drawer.
func (d *Drawer) Close() { d.open = false }

// Toggle flips the drawer and returns the new state.
func (d *Drawer) Toggle() bool {
	d.open = !d.open
	return d.open
}

// IsOpen reports whether the drawer is visible.
func (d *Drawer) IsOpen() bool { return d.open }
