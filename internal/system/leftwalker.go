package system

import (
	"tile-roguelike/internal/component"
	"tile-roguelike/internal/ecs"
)

// LeftWalker drifts every LeftMover one column left per tick, wrapping at the
// left edge. It ignores walls.
type LeftWalker struct{}

func (LeftWalker) Name() string { return "left_walker" }

func (LeftWalker) Data() ecs.SystemData {
	return ecs.SystemData{
		Reads:  []ecs.ComponentType{component.CLeftMover},
		Writes: []ecs.ComponentType{component.CPosition},
	}
}

func (LeftWalker) Run(a *ecs.Access, res *Resources) {
	if res.Map == nil {
		return
	}
	positions := ecs.WriteStorage[component.Position](a)
	movers := ecs.ReadStorage[component.LeftMover](a)
	for id := range ecs.Join(positions, movers) {
		pos, _ := positions.Mut(id)
		pos.X--
		if pos.X < 0 {
			pos.X = res.Map.Width - 1
		}
	}
}
