package render

import (
	"tile-roguelike/internal/component"
	"tile-roguelike/internal/ecs"
	"tile-roguelike/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// Cell is one (x, y, glyph, fg, bg) draw instruction in grid coordinates.
type Cell struct {
	X, Y  int
	Glyph rune
	FG    tcell.Color
	BG    tcell.Color
}

// Sink receives the cells produced each tick.
type Sink interface {
	SetCell(c Cell)
}

// Extract emits every grid cell in row-major order, then every entity that
// has both a Position and a Renderable, in creation order. Entities are
// drawn after tiles so they overwrite the terrain beneath them.
func Extract(w *ecs.World, gmap *gamemap.GameMap, sink Sink) {
	for y := range gmap.Height {
		for x := range gmap.Width {
			sink.SetCell(TileCell(x, y, gmap.TileAt(x, y)))
		}
	}

	positions := ecs.Read[component.Position](w)
	renderables := ecs.Read[component.Renderable](w)
	for id := range ecs.Join(positions, renderables) {
		pos, _ := positions.Get(id)
		rend, _ := renderables.Get(id)
		sink.SetCell(Cell{X: pos.X, Y: pos.Y, Glyph: rend.Glyph, FG: rend.FG, BG: rend.BG})
	}
}

// Buffer is an in-memory Sink. It keeps every cell in arrival order.
type Buffer struct {
	Cells []Cell
}

func (b *Buffer) SetCell(c Cell) { b.Cells = append(b.Cells, c) }

// Reset drops all recorded cells and keeps the backing array.
func (b *Buffer) Reset() { b.Cells = b.Cells[:0] }

// At returns the last cell written at (x, y).
func (b *Buffer) At(x, y int) (Cell, bool) {
	for i := len(b.Cells) - 1; i >= 0; i-- {
		if c := b.Cells[i]; c.X == x && c.Y == y {
			return c, true
		}
	}
	return Cell{}, false
}
