package generate

import "tile-roguelike/internal/gamemap"

// roomsAndCorridors starts from solid wall, carves every room and joins each
// room to the previous one. The player starts in the first room.
func roomsAndCorridors(cfg *Config) (*gamemap.GameMap, int, int) {
	gmap := gamemap.New(cfg.Width, cfg.Height, gamemap.TileWall)

	rooms := cfg.Rooms
	if len(rooms) == 0 && cfg.RandomRooms.MaxRooms > 0 {
		rooms = placeRandomRooms(gmap, cfg)
	}

	for i, room := range rooms {
		carveRoom(gmap, room)
		if i > 0 {
			px, py := rooms[i-1].Center()
			nx, ny := room.Center()
			carveCorridor(gmap, px, py, nx, ny, cfg)
		}
		gmap.Rooms = append(gmap.Rooms, room)
	}
	for _, t := range cfg.Tunnels {
		carveTunnel(gmap, t)
	}

	px, py := 1, 1
	if len(gmap.Rooms) > 0 {
		px, py = gmap.Rooms[0].Center()
	}
	return gmap, px, py
}

// carveRoom turns the interior x1+1..=x2, y1+1..=y2 into floor.
func carveRoom(gmap *gamemap.GameMap, room gamemap.Rect) {
	for y := room.Y1 + 1; y <= room.Y2; y++ {
		for x := room.X1 + 1; x <= room.X2; x++ {
			if gmap.InBounds(x, y) {
				gmap.Set(x, y, gamemap.TileFloor)
			}
		}
	}
}

// placeRandomRooms tries MaxRooms random rectangles and keeps the ones that
// do not touch an already accepted room.
func placeRandomRooms(gmap *gamemap.GameMap, cfg *Config) []gamemap.Rect {
	rr := cfg.RandomRooms
	minSize := max(rr.MinSize, 2)
	maxSize := max(rr.MaxSize, minSize)

	var rooms []gamemap.Rect
	for range rr.MaxRooms {
		w := minSize + cfg.Rand.Intn(maxSize-minSize+1)
		h := minSize + cfg.Rand.Intn(maxSize-minSize+1)
		if w >= gmap.Width-1 || h >= gmap.Height-1 {
			continue
		}
		x := cfg.Rand.Intn(gmap.Width - w - 1)
		y := cfg.Rand.Intn(gmap.Height - h - 1)
		room := gamemap.NewRect(x, y, w, h)

		ok := true
		for _, other := range rooms {
			if room.Intersects(other) {
				ok = false
				break
			}
		}
		if ok {
			rooms = append(rooms, room)
		}
	}
	return rooms
}
