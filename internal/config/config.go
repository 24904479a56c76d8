// Package config loads the YAML run configuration and its environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"tile-roguelike/internal/gamemap"
	"tile-roguelike/internal/generate"
)

// Environment variables that override file values.
const (
	EnvSeed        = "ROGUELIKE_SEED"
	EnvMapStrategy = "ROGUELIKE_MAP_STRATEGY"
	EnvLogLevel    = "ROGUELIKE_LOG_LEVEL"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Map       MapConfig       `yaml:"map"`
	Demo      DemoConfig      `yaml:"demo"`
	Game      GameConfig      `yaml:"game"`
	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Server    ServerConfig    `yaml:"server"`
}

type MapConfig struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Strategy string `yaml:"strategy"`
	// Seed 0 picks a time-based seed at startup.
	Seed          int64             `yaml:"seed"`
	Iterations    int               `yaml:"iterations"`
	SpawnX        int               `yaml:"spawn_x"`
	SpawnY        int               `yaml:"spawn_y"`
	Rooms         []RoomConfig      `yaml:"rooms"`
	RandomRooms   RandomRoomsConfig `yaml:"random_rooms"`
	Tunnels       []TunnelConfig    `yaml:"tunnels"`
	CorridorStyle string            `yaml:"corridor_style"`
}

// RoomConfig is a room given as origin and size.
type RoomConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

type RandomRoomsConfig struct {
	MaxRooms int `yaml:"max_rooms"`
	MinSize  int `yaml:"min_size"`
	MaxSize  int `yaml:"max_size"`
}

type TunnelConfig struct {
	Horizontal bool `yaml:"horizontal"`
	From       int  `yaml:"from"`
	To         int  `yaml:"to"`
	At         int  `yaml:"at"`
}

// DemoConfig controls the autonomous entities spawned next to the player.
type DemoConfig struct {
	LeftMovers   int `yaml:"left_movers"`
	LeftMoverRow int `yaml:"left_mover_row"`
}

type GameConfig struct {
	FrameInterval time.Duration `yaml:"frame_interval"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

type TelemetryConfig struct {
	Enabled bool `yaml:"enabled"`
}

type ServerConfig struct {
	Addr        string `yaml:"addr"`
	HostKeyPath string `yaml:"host_key"`
	MaxSessions int    `yaml:"max_sessions"`
}

// Default returns the 80x50 random-splatter setup with ten drifters on row 20.
func Default() *Config {
	return &Config{
		Map: MapConfig{
			Width:      gamemap.DefaultWidth,
			Height:     gamemap.DefaultHeight,
			Strategy:   generate.StrategyRandomSplatter.String(),
			Iterations: generate.DefaultIterations,
			SpawnX:     generate.DefaultSpawnX,
			SpawnY:     generate.DefaultSpawnY,
			RandomRooms: RandomRoomsConfig{
				MaxRooms: 30,
				MinSize:  6,
				MaxSize:  10,
			},
			CorridorStyle: "l_shaped",
		},
		Demo: DemoConfig{LeftMovers: 10, LeftMoverRow: 20},
		Game: GameConfig{FrameInterval: 50 * time.Millisecond},
		Log: LogConfig{
			Level:      "info",
			File:       "log/roguelike.log",
			MaxSizeMB:  10,
			MaxBackups: 5,
			MaxAgeDays: 7,
		},
		Server: ServerConfig{
			Addr:        ":2222",
			HostKeyPath: "server_host_key",
			MaxSessions: 16,
		},
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. An empty path uses the defaults alone.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvSeed, v, err)
		}
		c.Map.Seed = seed
	}
	if v, ok := lookup(EnvMapStrategy); ok && v != "" {
		c.Map.Strategy = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
	return nil
}

// Validate reports the first setting that cannot produce a playable run.
func (c *Config) Validate() error {
	m := c.Map
	if m.Width < 3 || m.Height < 3 {
		return fmt.Errorf("%w: map must be at least 3x3, got %dx%d", ErrInvalid, m.Width, m.Height)
	}
	strategy, err := generate.ParseStrategy(m.Strategy)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := generate.ParseCorridorStyle(m.CorridorStyle); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if strategy == generate.StrategyRandomSplatter {
		if m.SpawnX < 1 || m.SpawnX > m.Width-2 || m.SpawnY < 1 || m.SpawnY > m.Height-2 {
			return fmt.Errorf("%w: spawn (%d,%d) is not inside the border", ErrInvalid, m.SpawnX, m.SpawnY)
		}
		if m.Iterations < 0 {
			return fmt.Errorf("%w: iterations %d is negative", ErrInvalid, m.Iterations)
		}
	}
	for i, r := range m.Rooms {
		if r.W < 1 || r.H < 1 {
			return fmt.Errorf("%w: room %d has size %dx%d", ErrInvalid, i, r.W, r.H)
		}
	}
	if rr := m.RandomRooms; rr.MaxRooms > 0 && (rr.MinSize < 1 || rr.MaxSize < rr.MinSize) {
		return fmt.Errorf("%w: random room sizes %d..%d", ErrInvalid, rr.MinSize, rr.MaxSize)
	}
	if c.Demo.LeftMovers < 0 || c.Demo.LeftMoverRow < 0 || (c.Demo.LeftMovers > 0 && c.Demo.LeftMoverRow >= m.Height) {
		return fmt.Errorf("%w: left movers %d on row %d", ErrInvalid, c.Demo.LeftMovers, c.Demo.LeftMoverRow)
	}
	if c.Game.FrameInterval <= 0 {
		return fmt.Errorf("%w: frame interval must be positive", ErrInvalid)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// SlogLevel parses Level ("debug", "info", "warn", "error").
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", l.Level, err)
	}
	return level, nil
}

// GeneratorConfig converts the map section into a generator input. It also
// returns the seed actually used so a run can be reproduced.
func (c *Config) GeneratorConfig() (*generate.Config, int64, error) {
	m := c.Map
	strategy, err := generate.ParseStrategy(m.Strategy)
	if err != nil {
		return nil, 0, err
	}
	style, err := generate.ParseCorridorStyle(m.CorridorStyle)
	if err != nil {
		return nil, 0, err
	}
	seed := m.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gen := &generate.Config{
		Width:      m.Width,
		Height:     m.Height,
		Strategy:   strategy,
		SpawnX:     m.SpawnX,
		SpawnY:     m.SpawnY,
		Iterations: m.Iterations,
		RandomRooms: generate.RandomRooms{
			MaxRooms: m.RandomRooms.MaxRooms,
			MinSize:  m.RandomRooms.MinSize,
			MaxSize:  m.RandomRooms.MaxSize,
		},
		CorridorStyle: style,
		Rand:          rand.New(rand.NewSource(seed)),
	}
	for _, r := range m.Rooms {
		gen.Rooms = append(gen.Rooms, gamemap.NewRect(r.X, r.Y, r.W, r.H))
	}
	for _, t := range m.Tunnels {
		gen.Tunnels = append(gen.Tunnels, generate.Tunnel{Horizontal: t.Horizontal, From: t.From, To: t.To, At: t.At})
	}
	return gen, seed, nil
}
