package gamemap

import "fmt"

// Default play-area size.
const (
	DefaultWidth  = 80
	DefaultHeight = 50
)

// Rect is an axis-aligned rectangle used for rooms.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect builds a rectangle from its top-left corner and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// GameMap holds the tile grid for the play area as one row-major slice.
type GameMap struct {
	Width, Height int
	Tiles         []TileType
	Rooms         []Rect
}

// New creates a GameMap filled with fill.
func New(width, height int, fill TileType) *GameMap {
	tiles := make([]TileType, width*height)
	if fill != TileWall {
		for i := range tiles {
			tiles[i] = fill
		}
	}
	return &GameMap{Width: width, Height: height, Tiles: tiles}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Index maps (x, y) to its position in Tiles. Callers must bounds-check first:
// an out-of-range coordinate panics instead of wrapping onto another row.
func (m *GameMap) Index(x, y int) int {
	if !m.InBounds(x, y) {
		panic(fmt.Sprintf("gamemap: index (%d,%d) outside %dx%d grid", x, y, m.Width, m.Height))
	}
	return y*m.Width + x
}

// TileAt returns the tile at (x, y). Panics if out of bounds.
func (m *GameMap) TileAt(x, y int) TileType {
	return m.Tiles[m.Index(x, y)]
}

// Set replaces the tile at (x, y). Panics if out of bounds.
func (m *GameMap) Set(x, y int, t TileType) {
	m.Tiles[m.Index(x, y)] = t
}

// IsWalkable returns true when (x, y) is in bounds and walkable.
func (m *GameMap) IsWalkable(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.TileAt(x, y).Walkable()
}
