package generate

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"tile-roguelike/internal/gamemap"
	"tile-roguelike/internal/telemetry"
)

// Strategy selects how the grid is filled.
type Strategy uint8

const (
	StrategyRandomSplatter Strategy = iota
	StrategyRoomsAndCorridors
)

func (s Strategy) String() string {
	switch s {
	case StrategyRandomSplatter:
		return "random_splatter"
	case StrategyRoomsAndCorridors:
		return "rooms_and_corridors"
	}
	return fmt.Sprintf("strategy(%d)", uint8(s))
}

// ParseStrategy accepts the names produced by Strategy.String.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "random_splatter", "splatter", "":
		return StrategyRandomSplatter, nil
	case "rooms_and_corridors", "rooms":
		return StrategyRoomsAndCorridors, nil
	}
	return 0, fmt.Errorf("unknown map strategy %q", s)
}

// Default splatter parameters.
const (
	DefaultIterations = 400
	DefaultSpawnX     = 40
	DefaultSpawnY     = 25
)

// Tunnel is an explicit straight corridor: horizontal tunnels run from From
// to To along row At, vertical ones along column At.
type Tunnel struct {
	Horizontal bool
	From, To   int
	At         int
}

// RandomRooms places rooms at random when Config.Rooms is empty.
type RandomRooms struct {
	MaxRooms int
	MinSize  int
	MaxSize  int
}

// Config drives procedural generation for the play area.
type Config struct {
	Width, Height  int
	Strategy       Strategy
	SpawnX, SpawnY int // protected tile for the splatter strategy
	Iterations     int
	Rooms          []gamemap.Rect
	RandomRooms    RandomRooms
	Tunnels        []Tunnel
	CorridorStyle  CorridorStyle
	Rand           *rand.Rand
}

// DefaultConfig returns the 80x50 random-splatter setup.
func DefaultConfig(rng *rand.Rand) *Config {
	return &Config{
		Width:      gamemap.DefaultWidth,
		Height:     gamemap.DefaultHeight,
		Strategy:   StrategyRandomSplatter,
		SpawnX:     DefaultSpawnX,
		SpawnY:     DefaultSpawnY,
		Iterations: DefaultIterations,
		Rand:       rng,
	}
}

// Generate builds the grid and returns it with the player start position.
func Generate(ctx context.Context, cfg *Config) (*gamemap.GameMap, int, int) {
	_, span := telemetry.Tracer("generate").Start(ctx, "map.generate")
	defer span.End()
	start := time.Now()

	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	var (
		gmap   *gamemap.GameMap
		px, py int
	)
	switch cfg.Strategy {
	case StrategyRoomsAndCorridors:
		gmap, px, py = roomsAndCorridors(cfg)
	default:
		gmap = randomSplatter(cfg)
		px, py = cfg.SpawnX, cfg.SpawnY
	}

	span.SetAttributes(
		attribute.String("map.strategy", cfg.Strategy.String()),
		attribute.Int("map.width", gmap.Width),
		attribute.Int("map.height", gmap.Height),
		attribute.Int("map.room_count", len(gmap.Rooms)),
		attribute.Int64("map.generation_us", time.Since(start).Microseconds()),
	)
	return gmap, px, py
}
