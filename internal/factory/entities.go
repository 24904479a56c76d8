package factory

import (
	"tile-roguelike/internal/component"
	"tile-roguelike/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// NewPlayer creates the keyboard-controlled entity at (x, y).
func NewPlayer(w *ecs.World, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Attach(id, component.Position{X: x, Y: y})
	w.Attach(id, component.Renderable{
		Glyph: '@',
		FG:    tcell.ColorYellow,
		BG:    tcell.ColorBlack,
	})
	w.Attach(id, component.Player{})
	return id
}

// NewLeftMover creates a drifting demo entity at (x, y).
func NewLeftMover(w *ecs.World, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Attach(id, component.Position{X: x, Y: y})
	w.Attach(id, component.Renderable{
		Glyph: '☺',
		FG:    tcell.ColorRed,
		BG:    tcell.ColorBlack,
	})
	w.Attach(id, component.LeftMover{})
	return id
}

// SpawnLeftMovers lines up n drifters along row y, seven columns apart,
// skipping any that would start off the grid.
func SpawnLeftMovers(w *ecs.World, n, y, width int) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, n)
	for i := range n {
		x := i * 7
		if x >= width {
			break
		}
		ids = append(ids, NewLeftMover(w, x, y))
	}
	return ids
}
