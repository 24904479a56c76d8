package system

import (
	"tile-roguelike/internal/component"
	"tile-roguelike/internal/ecs"
	"tile-roguelike/internal/gamemap"
)

// TryMove returns where pos ends up after a (dx, dy) step on gmap and whether
// the step was taken. A destination off the grid or on a wall leaves pos
// unchanged. The wall check is made against the unclamped destination; only
// then is the result clamped to the grid.
func TryMove(gmap *gamemap.GameMap, pos component.Position, dx, dy int) (component.Position, bool) {
	nx, ny := pos.X+dx, pos.Y+dy
	if !gmap.InBounds(nx, ny) || !gmap.IsWalkable(nx, ny) {
		return pos, false
	}
	return component.Position{
		X: min(max(nx, 0), gmap.Width-1),
		Y: min(max(ny, 0), gmap.Height-1),
	}, true
}

// Movement applies the pending input delta to every player-controlled entity.
type Movement struct{}

func (Movement) Name() string { return "movement" }

func (Movement) Data() ecs.SystemData {
	return ecs.SystemData{
		Reads:  []ecs.ComponentType{component.CPlayer},
		Writes: []ecs.ComponentType{component.CPosition},
	}
}

func (Movement) Run(a *ecs.Access, res *Resources) {
	if !res.HasInput() || res.Map == nil {
		return
	}
	positions := ecs.WriteStorage[component.Position](a)
	players := ecs.ReadStorage[component.Player](a)
	for id := range ecs.Join(positions, players) {
		pos, _ := positions.Mut(id)
		*pos, _ = TryMove(res.Map, *pos, res.DX, res.DY)
	}
}
