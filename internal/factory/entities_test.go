package factory

import (
	"testing"

	"tile-roguelike/internal/component"
	"tile-roguelike/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

func newWorld() *ecs.World {
	w := ecs.NewWorld()
	component.Register(w)
	return w
}

func TestNewPlayerComponents(t *testing.T) {
	w := newWorld()
	id := NewPlayer(w, 40, 25)

	if !w.Alive(id) {
		t.Fatal("player entity must be alive")
	}
	pos, ok := ecs.Read[component.Position](w).Get(id)
	if !ok {
		t.Fatal("player must have a Position")
	}
	if pos.X != 40 || pos.Y != 25 {
		t.Errorf("position = (%d,%d); want (40,25)", pos.X, pos.Y)
	}
	rend, ok := ecs.Read[component.Renderable](w).Get(id)
	if !ok {
		t.Fatal("player must have a Renderable")
	}
	if rend.Glyph != '@' || rend.FG != tcell.ColorYellow || rend.BG != tcell.ColorBlack {
		t.Errorf("renderable = %+v; want '@' yellow on black", rend)
	}
	if !w.Has(id, component.CPlayer) {
		t.Error("player must carry the Player tag")
	}
	if w.Has(id, component.CLeftMover) {
		t.Error("player must not carry the LeftMover tag")
	}
}

func TestSpawnLeftMovers(t *testing.T) {
	w := newWorld()
	ids := SpawnLeftMovers(w, 10, 20, 80)
	if len(ids) != 10 {
		t.Fatalf("spawned %d; want 10", len(ids))
	}
	positions := ecs.Read[component.Position](w)
	for i, id := range ids {
		pos, _ := positions.Get(id)
		if pos.X != i*7 || pos.Y != 20 {
			t.Errorf("mover %d at (%d,%d); want (%d,20)", i, pos.X, pos.Y, i*7)
		}
		if !w.Has(id, component.CLeftMover) || w.Has(id, component.CPlayer) {
			t.Errorf("mover %d has wrong tags", i)
		}
	}
}

func TestSpawnLeftMoversNarrowGrid(t *testing.T) {
	w := newWorld()
	if ids := SpawnLeftMovers(w, 10, 0, 20); len(ids) != 3 {
		t.Fatalf("spawned %d on a 20-wide grid; want 3 (x=0,7,14)", len(ids))
	}
}
