package game

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"tile-roguelike/internal/render"
)

// Game hosts one State on a tcell screen: an input goroutine feeds key events
// and a frame ticker drives one Tick per frame.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	state    *State
	frame    time.Duration
	logger   *slog.Logger
	cells    render.Buffer
}

// NewTerminal opens the local terminal as a tcell screen and wraps it.
func NewTerminal(state *State, frame time.Duration, logger *slog.Logger) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return New(screen, state, frame, logger), nil
}

// New wraps an initialized screen. Run finalizes it.
func New(screen tcell.Screen, state *State, frame time.Duration, logger *slog.Logger) *Game {
	return &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		state:    state,
		frame:    frame,
		logger:   logger,
	}
}

// Run is the frame loop. It returns when ctx is cancelled, the player quits
// or the screen stops delivering events.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Fini()

	done := make(chan struct{})
	defer close(done)
	eventCh := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(eventCh)
				return
			}
			select {
			case eventCh <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(g.frame)
	defer ticker.Stop()

	g.logger.Info("game started", "frame", g.frame, "systems", g.state.Systems())
	g.drawFrame(ctx, nil)

	// Only the latest key of each frame is applied.
	var pending *KeyPress
	for {
		select {
		case <-ctx.Done():
			g.logger.Info("game stopped", "reason", ctx.Err(), "ticks", g.state.Ticks())
			return ctx.Err()
		case ev, ok := <-eventCh:
			if !ok {
				g.logger.Info("screen closed", "ticks", g.state.Ticks())
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				g.renderer.Sync()
			case *tcell.EventKey:
				kp := KeyPressFromEvent(ev)
				if kp.IsQuit() {
					g.logger.Info("player quit", "ticks", g.state.Ticks())
					return nil
				}
				pending = &kp
			}
		case <-ticker.C:
			g.drawFrame(ctx, pending)
			pending = nil
		}
	}
}

// drawFrame runs one tick into the cell buffer, then draws it with the
// viewport following the player's new position.
func (g *Game) drawFrame(ctx context.Context, key *KeyPress) {
	g.cells.Reset()
	g.state.Tick(ctx, key, &g.cells)

	pos := g.state.PlayerPosition()
	gmap := g.state.Map()
	g.renderer.Begin(pos.X, pos.Y, gmap.Width, gmap.Height)
	for _, c := range g.cells.Cells {
		g.renderer.SetCell(c)
	}
	g.renderer.DrawStatus(fmt.Sprintf("tick %d  @(%d,%d)  arrows/hjkl/wasd move, q quits",
		g.state.Ticks(), pos.X, pos.Y))
	g.renderer.Show()
}
