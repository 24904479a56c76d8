package system

import "tile-roguelike/internal/gamemap"

// Resources is the per-tick state shared by every system that does not live
// in a component storage.
type Resources struct {
	Map *gamemap.GameMap
	// DX, DY is the movement delta requested by this tick's input. Zero
	// means no movement was requested.
	DX, DY int
}

// SetDelta records the movement requested for the current tick.
func (r *Resources) SetDelta(dx, dy int) {
	r.DX, r.DY = dx, dy
}

// ClearInput drops any pending delta so it is not replayed next tick.
func (r *Resources) ClearInput() {
	r.DX, r.DY = 0, 0
}

// HasInput reports whether a movement delta is pending.
func (r *Resources) HasInput() bool {
	return r.DX != 0 || r.DY != 0
}
