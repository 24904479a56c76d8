package generate

import (
	"fmt"
	"strings"

	"tile-roguelike/internal/gamemap"
)

// CorridorStyle selects the shape of the tunnels joining room centers.
type CorridorStyle uint8

const (
	CorridorLShaped  CorridorStyle = iota // coin flip between the two L orientations
	CorridorZShaped                       // vertical, horizontal at the midpoint, vertical
	CorridorStraight                      // horizontal at the first row, then vertical
)

// ParseCorridorStyle maps a config name to a CorridorStyle.
func ParseCorridorStyle(s string) (CorridorStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l", "l_shaped", "":
		return CorridorLShaped, nil
	case "z", "z_shaped":
		return CorridorZShaped, nil
	case "straight":
		return CorridorStraight, nil
	}
	return 0, fmt.Errorf("unknown corridor style %q", s)
}

// carveCorridor digs a tunnel between (x1,y1) and (x2,y2).
func carveCorridor(gmap *gamemap.GameMap, x1, y1, x2, y2 int, cfg *Config) {
	switch cfg.CorridorStyle {
	case CorridorZShaped:
		carveZShaped(gmap, x1, y1, x2, y2)
	case CorridorStraight:
		carveH(gmap, x1, x2, y1)
		carveV(gmap, y1, y2, x2)
	default: // LShaped
		if cfg.Rand.Intn(2) == 0 {
			carveH(gmap, x1, x2, y1)
			carveV(gmap, y1, y2, x2)
		} else {
			carveV(gmap, y1, y2, x1)
			carveH(gmap, x1, x2, y2)
		}
	}
}

// carveH carves row y from min(x1,x2) to max(x1,x2). Cells off the grid are skipped.
func carveH(gmap *gamemap.GameMap, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		if gmap.InBounds(x, y) {
			gmap.Set(x, y, gamemap.TileFloor)
		}
	}
}

// carveV carves column x from min(y1,y2) to max(y1,y2). Cells off the grid are skipped.
func carveV(gmap *gamemap.GameMap, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		if gmap.InBounds(x, y) {
			gmap.Set(x, y, gamemap.TileFloor)
		}
	}
}

func carveZShaped(gmap *gamemap.GameMap, x1, y1, x2, y2 int) {
	midY := (y1 + y2) / 2
	carveV(gmap, y1, midY, x1)
	carveH(gmap, x1, x2, midY)
	carveV(gmap, midY, y2, x2)
}

func carveTunnel(gmap *gamemap.GameMap, t Tunnel) {
	if t.Horizontal {
		carveH(gmap, t.From, t.To, t.At)
		return
	}
	carveV(gmap, t.From, t.To, t.At)
}
