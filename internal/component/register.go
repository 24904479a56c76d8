package component

import "tile-roguelike/internal/ecs"

// Register creates a storage in w for every component type in this package.
func Register(w *ecs.World) {
	ecs.Register[Position](w)
	ecs.Register[Renderable](w)
	ecs.Register[Player](w)
	ecs.Register[LeftMover](w)
}
