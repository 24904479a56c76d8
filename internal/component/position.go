package component

import "tile-roguelike/internal/ecs"

const CPosition ecs.ComponentType = 1

// Position is an entity's grid cell.
type Position struct {
	X, Y int
}

func (Position) Type() ecs.ComponentType { return CPosition }
