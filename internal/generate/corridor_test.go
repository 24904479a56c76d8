package generate

import (
	"math/rand"
	"testing"

	"tile-roguelike/internal/gamemap"
)

// allFloorRow checks that every tile at y between x1 and x2 (inclusive) is floor.
func allFloorRow(gmap *gamemap.GameMap, x1, x2, y int) bool {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		if !gmap.IsWalkable(x, y) {
			return false
		}
	}
	return true
}

// allFloorCol checks that every tile at x between y1 and y2 (inclusive) is floor.
func allFloorCol(gmap *gamemap.GameMap, y1, y2, x int) bool {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		if !gmap.IsWalkable(x, y) {
			return false
		}
	}
	return true
}

func floorCount(gmap *gamemap.GameMap) int {
	n := 0
	for _, t := range gmap.Tiles {
		if t == gamemap.TileFloor {
			n++
		}
	}
	return n
}

func TestCarveH(t *testing.T) {
	cases := []struct {
		name   string
		x1, x2 int
	}{
		{"ascending", 3, 8},
		{"reversed", 8, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gmap := gamemap.New(20, 20, gamemap.TileWall)
			carveH(gmap, tc.x1, tc.x2, 5)
			if !allFloorRow(gmap, 3, 8, 5) {
				t.Error("expected floor from x=3 to x=8 at y=5")
			}
			if gmap.IsWalkable(2, 5) || gmap.IsWalkable(9, 5) {
				t.Error("tiles just outside the segment must remain walls")
			}
			if n := floorCount(gmap); n != 6 {
				t.Errorf("carved %d tiles; want 6", n)
			}
		})
	}
}

func TestCarveV(t *testing.T) {
	cases := []struct {
		name   string
		y1, y2 int
	}{
		{"ascending", 2, 7},
		{"reversed", 7, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gmap := gamemap.New(20, 20, gamemap.TileWall)
			carveV(gmap, tc.y1, tc.y2, 4)
			if !allFloorCol(gmap, 2, 7, 4) {
				t.Error("expected floor from y=2 to y=7 at x=4")
			}
			if gmap.IsWalkable(4, 1) || gmap.IsWalkable(4, 8) {
				t.Error("tiles just outside the segment must remain walls")
			}
		})
	}
}

func TestCarveSkipsOutOfRange(t *testing.T) {
	gmap := gamemap.New(10, 10, gamemap.TileWall)
	// Runs off both ends of the row and column; must neither panic nor wrap.
	carveH(gmap, -5, 15, 3)
	carveV(gmap, -5, 15, 6)
	carveH(gmap, 0, 9, 40)
	carveV(gmap, 0, 9, -1)

	if !allFloorRow(gmap, 0, 9, 3) {
		t.Error("in-range part of the horizontal tunnel should be floor")
	}
	if !allFloorCol(gmap, 0, 9, 6) {
		t.Error("in-range part of the vertical tunnel should be floor")
	}
	if n := floorCount(gmap); n != 19 {
		t.Errorf("floor count = %d; want 19 (no wrapped writes)", n)
	}
}

func TestCarveZShaped(t *testing.T) {
	gmap := gamemap.New(20, 20, gamemap.TileWall)
	carveZShaped(gmap, 2, 2, 8, 10)
	midY := (2 + 10) / 2

	if !allFloorCol(gmap, 2, midY, 2) {
		t.Errorf("first vertical segment (x=2, y=2..%d) should be floor", midY)
	}
	if !allFloorRow(gmap, 2, 8, midY) {
		t.Errorf("horizontal segment (y=%d, x=2..8) should be floor", midY)
	}
	if !allFloorCol(gmap, midY, 10, 8) {
		t.Errorf("last vertical segment (x=8, y=%d..10) should be floor", midY)
	}
}

func TestCorridorStyleStraight(t *testing.T) {
	gmap := gamemap.New(20, 20, gamemap.TileWall)
	cfg := &Config{CorridorStyle: CorridorStraight, Rand: rand.New(rand.NewSource(0))}
	carveCorridor(gmap, 2, 2, 8, 8, cfg)

	if !allFloorRow(gmap, 2, 8, 2) {
		t.Error("horizontal segment at y=2 should be floor")
	}
	if !allFloorCol(gmap, 2, 8, 8) {
		t.Error("vertical segment at x=8 should be floor")
	}
}

func TestCorridorStyleLShapedConnectsEndpoints(t *testing.T) {
	// Several seeds so both coin-flip branches run.
	for seed := range 10 {
		gmap := gamemap.New(20, 20, gamemap.TileWall)
		cfg := &Config{CorridorStyle: CorridorLShaped, Rand: rand.New(rand.NewSource(int64(seed)))}
		carveCorridor(gmap, 2, 2, 10, 8, cfg)

		if !gmap.IsWalkable(2, 2) || !gmap.IsWalkable(10, 8) {
			t.Errorf("seed %d: both endpoints should be floor", seed)
		}
		// An L always passes through one of the two corners.
		if !gmap.IsWalkable(10, 2) && !gmap.IsWalkable(2, 8) {
			t.Errorf("seed %d: neither L corner was carved", seed)
		}
	}
}

func TestParseCorridorStyle(t *testing.T) {
	cases := []struct {
		in      string
		want    CorridorStyle
		wantErr bool
	}{
		{"", CorridorLShaped, false},
		{"L_Shaped", CorridorLShaped, false},
		{"z", CorridorZShaped, false},
		{"straight", CorridorStraight, false},
		{"spiral", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseCorridorStyle(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseCorridorStyle(%q) err = %v; wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("ParseCorridorStyle(%q) = %v; want %v", tc.in, got, tc.want)
		}
	}
}
