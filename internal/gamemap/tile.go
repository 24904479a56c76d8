package gamemap

// TileType identifies the kind of a map tile.
type TileType uint8

const (
	TileWall TileType = iota
	TileFloor
)

// Walkable reports whether an entity may stand on the tile.
func (t TileType) Walkable() bool {
	return t == TileFloor
}

func (t TileType) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	}
	return "unknown"
}
