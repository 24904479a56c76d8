package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// StatusRows is the number of screen rows reserved below the map.
const StatusRows = 1

// Renderer is a Sink that draws cells onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(w, max(h-StatusRows, 0)),
	}
}

// Begin clears the screen for a new frame and refits the viewport to the
// current terminal size, keeping (fx, fy) on screen.
func (r *Renderer) Begin(fx, fy, gridW, gridH int) {
	w, h := r.screen.Size()
	r.camera.Resize(w, max(h-StatusRows, 0))
	r.camera.Follow(fx, fy, gridW, gridH)
	r.screen.Clear()
}

// SetCell draws c if it falls inside the viewport.
func (r *Renderer) SetCell(c Cell) {
	sx, sy, onScreen := r.camera.WorldToScreen(c.X, c.Y)
	if !onScreen {
		return
	}
	style := tcell.StyleDefault.Foreground(c.FG).Background(c.BG)
	r.putGlyph(sx, sy, c.Glyph, style)
}

// Show flushes the frame to the terminal.
func (r *Renderer) Show() { r.screen.Show() }

// Sync redraws the whole terminal, used after a resize.
func (r *Renderer) Sync() { r.screen.Sync() }

// putGlyph draws a single glyph at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph rune, style tcell.Style) {
	r.screen.SetContent(x, y, glyph, nil, style)
	if runewidth.RuneWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
