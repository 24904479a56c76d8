package render

import (
	"tile-roguelike/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// TileStyle is how one tile type is drawn.
type TileStyle struct {
	Glyph rune
	FG    tcell.Color
	BG    tcell.Color
}

// TileStyles maps each tile type to its glyph and colors.
var TileStyles = map[gamemap.TileType]TileStyle{
	gamemap.TileFloor: {Glyph: '.', FG: tcell.NewRGBColor(128, 128, 128), BG: tcell.ColorBlack},
	gamemap.TileWall:  {Glyph: '#', FG: tcell.NewRGBColor(0, 255, 0), BG: tcell.ColorBlack},
}

// TileCell returns the draw instruction for a tile at (x, y).
func TileCell(x, y int, t gamemap.TileType) Cell {
	st, ok := TileStyles[t]
	if !ok {
		st = TileStyle{Glyph: '?', FG: tcell.ColorRed, BG: tcell.ColorBlack}
	}
	return Cell{X: x, Y: y, Glyph: st.Glyph, FG: st.FG, BG: st.BG}
}
