// Package ssh adapts gliderlabs/ssh sessions to tcell terminals so every
// connection can host its own game.
package ssh

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// DefaultTerm is used when the client does not send TERM.
const DefaultTerm = "xterm-256color"

// ErrNoPTY is returned for sessions opened without a pseudo-terminal.
var ErrNoPTY = errors.New("session has no pty")

// Tty implements tcell.Tty over one SSH session.
type Tty struct {
	session gossh.Session
	winCh   <-chan gossh.Window

	mu       sync.Mutex
	window   gossh.Window
	onResize func()
	watching bool
}

// NewTty wraps s. The session must have requested a pty; its initial window
// size is taken from the pty request.
func NewTty(s gossh.Session) (*Tty, error) {
	pty, winCh, ok := s.Pty()
	if !ok {
		return nil, ErrNoPTY
	}
	return &Tty{session: s, winCh: winCh, window: pty.Window}, nil
}

func (t *Tty) Read(b []byte) (int, error)  { return t.session.Read(b) }
func (t *Tty) Write(b []byte) (int, error) { return t.session.Write(b) }
func (t *Tty) Close() error                { return t.session.Close() }

// Start, Stop and Drain are no-ops: the channel is opened and torn down by
// the SSH server, and writes are not buffered.
func (t *Tty) Start() error { return nil }
func (t *Tty) Stop() error  { return nil }
func (t *Tty) Drain() error { return nil }

// WindowSize returns the latest size reported by the client.
func (t *Tty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb for window-change requests. The first call starts
// a goroutine that follows the session's window channel until it closes.
func (t *Tty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onResize = cb
	start := !t.watching && t.winCh != nil
	t.watching = true
	t.mu.Unlock()

	if start {
		go t.watch()
	}
}

func (t *Tty) watch() {
	for win := range t.winCh {
		t.mu.Lock()
		t.window = win
		cb := t.onResize
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}

// Term returns the TERM value the client sent, or DefaultTerm.
func Term(s gossh.Session) string {
	for _, env := range s.Environ() {
		if v, ok := strings.CutPrefix(env, "TERM="); ok && v != "" {
			return v
		}
	}
	if pty, _, ok := s.Pty(); ok && pty.Term != "" {
		return pty.Term
	}
	return DefaultTerm
}

// termMu serializes screen creation: tcell reads TERM from the process
// environment.
var termMu sync.Mutex

// NewScreen builds and initializes a tcell screen on tty for the given
// terminal type.
func NewScreen(tty *Tty, term string) (tcell.Screen, error) {
	termMu.Lock()
	if err := os.Setenv("TERM", term); err != nil {
		termMu.Unlock()
		return nil, fmt.Errorf("set TERM=%q: %w", term, err)
	}
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return screen, nil
}
