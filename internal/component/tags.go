package component

import "tile-roguelike/internal/ecs"

const (
	CPlayer    ecs.ComponentType = 3
	CLeftMover ecs.ComponentType = 4
)

// Player marks the entity driven by keyboard input.
type Player struct{}

func (Player) Type() ecs.ComponentType { return CPlayer }

// LeftMover marks entities that drift one tile left every tick.
type LeftMover struct{}

func (LeftMover) Type() ecs.ComponentType { return CLeftMover }
