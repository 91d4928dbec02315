package ui

// Base provides size and focus bookkeeping for component models.
// Embed this in component models to get standard methods automatically.
//
// Example:
//
//	type Model struct {
//	    ui.Base
//	    viewport viewport.Model
//	}
type Base struct {
	width, height int
	focused       bool
}

// SetFocused sets whether the component receives keyboard input.
func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

// IsFocused returns whether the component is focused.
func (b Base) IsFocused() bool {
	return b.focused
}

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Size returns the component dimensions.
func (b Base) Size() (width, height int) {
	return b.width, b.height
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}

// Contains reports whether the cell (x, y), relative to the component's
// top-left corner, falls inside it.
func (b Base) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}
