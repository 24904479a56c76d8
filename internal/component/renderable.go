package component

import (
	"tile-roguelike/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CRenderable ecs.ComponentType = 2

// Renderable is what the renderer draws at the entity's Position.
type Renderable struct {
	Glyph rune
	FG    tcell.Color
	BG    tcell.Color
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }
