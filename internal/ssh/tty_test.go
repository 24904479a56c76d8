package ssh

import (
	"bytes"
	"errors"
	"testing"
	"time"

	gossh "github.com/gliderlabs/ssh"
)

// fakeSession implements only the parts of gossh.Session the adapter uses.
type fakeSession struct {
	gossh.Session
	env    []string
	pty    gossh.Pty
	hasPty bool
	winCh  chan gossh.Window
	out    bytes.Buffer
	closed bool
}

func (f *fakeSession) Environ() []string { return f.env }
func (f *fakeSession) Pty() (gossh.Pty, <-chan gossh.Window, bool) {
	return f.pty, f.winCh, f.hasPty
}
func (f *fakeSession) Write(b []byte) (int, error) { return f.out.Write(b) }
func (f *fakeSession) Close() error                { f.closed = true; return nil }

func newFake() *fakeSession {
	return &fakeSession{
		pty:    gossh.Pty{Term: "vt100", Window: gossh.Window{Width: 80, Height: 24}},
		hasPty: true,
		winCh:  make(chan gossh.Window, 1),
	}
}

func TestNewTtyRequiresPty(t *testing.T) {
	f := newFake()
	f.hasPty = false
	if _, err := NewTty(f); !errors.Is(err, ErrNoPTY) {
		t.Fatalf("NewTty() err = %v; want ErrNoPTY", err)
	}
}

func TestTtyWindowSizeFollowsResize(t *testing.T) {
	f := newFake()
	tty, err := NewTty(f)
	if err != nil {
		t.Fatal(err)
	}
	if ws, _ := tty.WindowSize(); ws.Width != 80 || ws.Height != 24 {
		t.Fatalf("initial size = %+v", ws)
	}

	resized := make(chan struct{}, 1)
	tty.NotifyResize(func() { resized <- struct{}{} })
	f.winCh <- gossh.Window{Width: 120, Height: 40}

	select {
	case <-resized:
	case <-time.After(time.Second):
		t.Fatal("resize callback not invoked")
	}
	if ws, _ := tty.WindowSize(); ws.Width != 120 || ws.Height != 40 {
		t.Errorf("size after resize = %+v", ws)
	}
	close(f.winCh)
}

func TestTtyPassesThroughIO(t *testing.T) {
	f := newFake()
	tty, _ := NewTty(f)
	if _, err := tty.Write([]byte("frame")); err != nil {
		t.Fatal(err)
	}
	if f.out.String() != "frame" {
		t.Errorf("session got %q", f.out.String())
	}
	if err := tty.Close(); err != nil || !f.closed {
		t.Errorf("Close() = %v, closed = %v", err, f.closed)
	}
}

func TestTerm(t *testing.T) {
	cases := []struct {
		name string
		env  []string
		pty  string
		want string
	}{
		{"from env", []string{"LANG=C", "TERM=screen"}, "vt100", "screen"},
		{"from pty request", nil, "vt100", "vt100"},
		{"default", []string{"TERM="}, "", DefaultTerm},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFake()
			f.env = tc.env
			f.pty.Term = tc.pty
			if got := Term(f); got != tc.want {
				t.Errorf("Term() = %q; want %q", got, tc.want)
			}
		})
	}
}

func TestNewScreenRejectsUnsettableTerm(t *testing.T) {
	tty, err := NewTty(newFake())
	if err != nil {
		t.Fatal(err)
	}
	screen, err := NewScreen(tty, "xterm\x00evil")
	if err == nil {
		screen.Fini()
		t.Fatal("expected an error when TERM cannot be set")
	}
}
