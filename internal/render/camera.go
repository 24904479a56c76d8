package render

// Camera translates between grid coordinates and screen coordinates when the
// terminal is smaller than the grid.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera showing the top-left corner of the grid.
func NewCamera(viewW, viewH int) *Camera {
	return &Camera{ViewWidth: viewW, ViewHeight: viewH}
}

// Resize changes the viewport size, keeping the current offset.
func (c *Camera) Resize(viewW, viewH int) {
	c.ViewWidth, c.ViewHeight = viewW, viewH
}

// Follow centers the view on (cx, cy) but never scrolls past the grid edges,
// so a grid that fits on screen always stays anchored at (0, 0).
func (c *Camera) Follow(cx, cy, gridW, gridH int) {
	c.OffsetX = clampOffset(cx-c.ViewWidth/2, gridW-c.ViewWidth)
	c.OffsetY = clampOffset(cy-c.ViewHeight/2, gridH-c.ViewHeight)
}

func clampOffset(off, maxOff int) int {
	return max(min(off, maxOff), 0)
}

// WorldToScreen converts grid (wx, wy) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx = wx - c.OffsetX
	sy = wy - c.OffsetY
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld converts screen (sx, sy) to grid coordinates.
func (c *Camera) ScreenToWorld(sx, sy int) (int, int) {
	return sx + c.OffsetX, sy + c.OffsetY
}
