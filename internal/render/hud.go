package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// DrawStatus writes text on the reserved row below the map, truncated to the
// screen width.
func (r *Renderer) DrawStatus(text string) {
	w, h := r.screen.Size()
	if h <= StatusRows {
		return
	}
	r.drawText(0, h-StatusRows, w, text, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

func (r *Renderer) drawText(x, y, limit int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		cw := max(runewidth.RuneWidth(ch), 1)
		if col+cw > limit {
			return
		}
		r.screen.SetContent(col, y, ch, nil, style)
		col += cw
	}
}
