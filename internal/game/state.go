package game

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"tile-roguelike/internal/component"
	"tile-roguelike/internal/config"
	"tile-roguelike/internal/ecs"
	"tile-roguelike/internal/factory"
	"tile-roguelike/internal/gamemap"
	"tile-roguelike/internal/generate"
	"tile-roguelike/internal/render"
	"tile-roguelike/internal/system"
	"tile-roguelike/internal/telemetry"
)

// State is one independent run: the world, its grid and the fixed system
// sequence. It is not safe for concurrent use.
type State struct {
	world      *ecs.World
	gmap       *gamemap.GameMap
	dispatcher *ecs.Dispatcher[*system.Resources]
	res        *system.Resources
	player     ecs.EntityID
	ticks      uint64
	seed       int64
	logger     *slog.Logger
}

// NewState generates the map described by cfg, spawns the player at the
// generator's start point plus the demo drifters, and wires the systems.
func NewState(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*State, error) {
	gen, seed, err := cfg.GeneratorConfig()
	if err != nil {
		return nil, fmt.Errorf("generator config: %w", err)
	}
	s, err := newStateFrom(ctx, gen, cfg.Demo, logger)
	if err != nil {
		return nil, err
	}
	s.seed = seed
	logger.Info("map generated",
		"strategy", gen.Strategy.String(),
		"seed", seed,
		"width", s.gmap.Width,
		"height", s.gmap.Height,
		"rooms", len(s.gmap.Rooms),
	)
	return s, nil
}

func newStateFrom(ctx context.Context, gen *generate.Config, demo config.DemoConfig, logger *slog.Logger) (*State, error) {
	gmap, px, py := generate.Generate(ctx, gen)

	w := ecs.NewWorld()
	component.Register(w)
	player := factory.NewPlayer(w, px, py)
	factory.SpawnLeftMovers(w, demo.LeftMovers, demo.LeftMoverRow, gmap.Width)

	d, err := ecs.NewDispatcher[*system.Resources](w, system.Movement{}, system.LeftWalker{})
	if err != nil {
		return nil, fmt.Errorf("build dispatcher: %w", err)
	}
	return &State{
		world:      w,
		gmap:       gmap,
		dispatcher: d,
		res:        &system.Resources{Map: gmap},
		player:     player,
		logger:     logger,
	}, nil
}

// Tick advances the run by one frame: consume key (nil for none), run every
// system in order, apply deferred structural changes, then emit the grid and
// all drawable entities into sink. A nil sink skips extraction.
func (s *State) Tick(ctx context.Context, key *KeyPress, sink render.Sink) {
	_, span := telemetry.Tracer("game").Start(ctx, "game.tick")
	defer span.End()

	s.ticks++
	s.res.ClearInput()
	if key != nil {
		if dx, dy, ok := key.Delta(); ok {
			s.res.SetDelta(dx, dy)
		}
	}

	s.dispatcher.Dispatch(s.res)
	s.world.Maintain()

	if sink != nil {
		render.Extract(s.world, s.gmap, sink)
	}

	pos := s.PlayerPosition()
	span.SetAttributes(
		attribute.Int64("tick", int64(s.ticks)),
		attribute.Bool("tick.input", s.res.HasInput()),
		attribute.Int("player.x", pos.X),
		attribute.Int("player.y", pos.Y),
	)
	s.logger.Debug("tick", "n", s.ticks, "dx", s.res.DX, "dy", s.res.DY, "x", pos.X, "y", pos.Y)
}

// World returns the entity store the systems run against.
func (s *State) World() *ecs.World { return s.world }

// Map returns the generated tile grid.
func (s *State) Map() *gamemap.GameMap { return s.gmap }

// Player returns the keyboard-controlled entity.
func (s *State) Player() ecs.EntityID { return s.player }

// Ticks returns how many ticks have run.
func (s *State) Ticks() uint64 { return s.ticks }

// Seed returns the map seed, or 0 when the state was not built by NewState.
func (s *State) Seed() int64 { return s.seed }

// Systems returns the system names in run order.
func (s *State) Systems() []string { return s.dispatcher.Systems() }

// PlayerPosition returns the player's cell, or the zero Position if the
// player entity has no Position.
func (s *State) PlayerPosition() component.Position {
	pos, _ := ecs.Read[component.Position](s.world).Get(s.player)
	return pos
}
