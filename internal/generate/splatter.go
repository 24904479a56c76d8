package generate

import "tile-roguelike/internal/gamemap"

// randomSplatter fills the grid with floor, walls off the border, then drops
// Iterations random walls anywhere but the spawn tile.
// Nothing guarantees the floor stays connected.
func randomSplatter(cfg *Config) *gamemap.GameMap {
	gmap := gamemap.New(cfg.Width, cfg.Height, gamemap.TileFloor)

	for x := 0; x < gmap.Width; x++ {
		gmap.Set(x, 0, gamemap.TileWall)
		gmap.Set(x, gmap.Height-1, gamemap.TileWall)
	}
	for y := 0; y < gmap.Height; y++ {
		gmap.Set(0, y, gamemap.TileWall)
		gmap.Set(gmap.Width-1, y, gamemap.TileWall)
	}

	protected := -1
	if gmap.InBounds(cfg.SpawnX, cfg.SpawnY) {
		protected = gmap.Index(cfg.SpawnX, cfg.SpawnY)
	}

	iterations := cfg.Iterations
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	for range iterations {
		x := 1 + cfg.Rand.Intn(gmap.Width-2)
		y := 1 + cfg.Rand.Intn(gmap.Height-2)
		idx := gmap.Index(x, y)
		if idx != protected {
			gmap.Tiles[idx] = gamemap.TileWall
		}
	}
	return gmap
}
