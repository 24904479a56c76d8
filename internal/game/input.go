package game

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyPress is one abstract key event. Named keys carry Key; printable keys
// carry Key == tcell.KeyRune and the Rune.
type KeyPress struct {
	Key  tcell.Key
	Rune rune
}

// KeyPressFromEvent normalizes a tcell key event. Letters are folded to
// lower case so the alias table matches with or without shift.
func KeyPressFromEvent(ev *tcell.EventKey) KeyPress {
	if ev.Key() == tcell.KeyRune {
		return RuneKey(ev.Rune())
	}
	return KeyPress{Key: ev.Key()}
}

// RuneKey returns the KeyPress for a printable character.
func RuneKey(r rune) KeyPress {
	return KeyPress{Key: tcell.KeyRune, Rune: unicode.ToLower(r)}
}

// NamedKey returns the KeyPress for a non-printable key.
func NamedKey(k tcell.Key) KeyPress {
	return KeyPress{Key: k}
}

type delta struct{ dx, dy int }

var (
	west  = delta{-1, 0}
	east  = delta{1, 0}
	north = delta{0, -1}
	south = delta{0, 1}
)

// keyAliases maps every recognized key to one of the four unit steps:
// arrows, vi keys, WASD and the numpad digits.
var keyAliases = map[KeyPress]delta{
	NamedKey(tcell.KeyLeft): west,
	RuneKey('h'):            west,
	RuneKey('a'):            west,
	RuneKey('4'):            west,

	NamedKey(tcell.KeyRight): east,
	RuneKey('l'):             east,
	RuneKey('d'):             east,
	RuneKey('6'):             east,

	NamedKey(tcell.KeyUp): north,
	RuneKey('k'):          north,
	RuneKey('w'):          north,
	RuneKey('8'):          north,

	NamedKey(tcell.KeyDown): south,
	RuneKey('j'):            south,
	RuneKey('s'):            south,
	RuneKey('5'):            south,
}

// Delta returns the movement step bound to k. ok is false for keys with no
// binding.
func (k KeyPress) Delta() (dx, dy int, ok bool) {
	d, ok := keyAliases[k]
	return d.dx, d.dy, ok
}

// IsQuit reports whether k asks the host to stop.
func (k KeyPress) IsQuit() bool {
	switch k.Key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return k.Rune == 'q'
	}
	return false
}
