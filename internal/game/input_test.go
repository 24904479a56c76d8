package game

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestKeyAliases(t *testing.T) {
	cases := []struct {
		name   string
		ev     *tcell.EventKey
		dx, dy int
	}{
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), -1, 0},
		{"vi h", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), -1, 0},
		{"wasd a", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), -1, 0},
		{"numpad 4", tcell.NewEventKey(tcell.KeyRune, '4', tcell.ModNone), -1, 0},
		{"arrow right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), 1, 0},
		{"shifted L", tcell.NewEventKey(tcell.KeyRune, 'L', tcell.ModShift), 1, 0},
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), 0, -1},
		{"vi k", tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), 0, -1},
		{"numpad 8", tcell.NewEventKey(tcell.KeyRune, '8', tcell.ModNone), 0, -1},
		{"arrow down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), 0, 1},
		{"wasd s", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), 0, 1},
		{"numpad 5", tcell.NewEventKey(tcell.KeyRune, '5', tcell.ModNone), 0, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dx, dy, ok := KeyPressFromEvent(tc.ev).Delta()
			if !ok || dx != tc.dx || dy != tc.dy {
				t.Errorf("Delta() = (%d,%d,%v); want (%d,%d,true)", dx, dy, ok, tc.dx, tc.dy)
			}
		})
	}
}

func TestKeyAliasesAreUnitSteps(t *testing.T) {
	for k, d := range keyAliases {
		if abs(d.dx)+abs(d.dy) != 1 {
			t.Errorf("%+v maps to (%d,%d); want a unit cardinal step", k, d.dx, d.dy)
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func TestUnknownKeysHaveNoDelta(t *testing.T) {
	for _, kp := range []KeyPress{RuneKey('x'), RuneKey('2'), NamedKey(tcell.KeyEnter), NamedKey(tcell.KeyEscape)} {
		if _, _, ok := kp.Delta(); ok {
			t.Errorf("%+v should not be bound", kp)
		}
	}
}

func TestIsQuit(t *testing.T) {
	cases := []struct {
		kp   KeyPress
		quit bool
	}{
		{NamedKey(tcell.KeyEscape), true},
		{NamedKey(tcell.KeyCtrlC), true},
		{RuneKey('q'), true},
		{RuneKey('Q'), true},
		{RuneKey('h'), false},
		{NamedKey(tcell.KeyLeft), false},
	}
	for _, tc := range cases {
		if got := tc.kp.IsQuit(); got != tc.quit {
			t.Errorf("%+v.IsQuit() = %v; want %v", tc.kp, got, tc.quit)
		}
	}
}
