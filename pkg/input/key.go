package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Key identifies a physical key. Letters are stored upper case so bindings
// ignore shift.
type Key struct {
	Code tcell.Key
	Rune rune
}

func RuneKey(r rune) Key {
	return Key{Code: tcell.KeyRune, Rune: unicode.ToUpper(r)}
}

func KeyOf(ev *tcell.EventKey) Key {
	if ev.Key() == tcell.KeyRune {
		return RuneKey(ev.Rune())
	}
	return Key{Code: ev.Key()}
}

var (
	KeyLeft  = Key{Code: tcell.KeyLeft}
	KeyRight = Key{Code: tcell.KeyRight}
	KeyUp    = Key{Code: tcell.KeyUp}
	KeyDown  = Key{Code: tcell.KeyDown}
	KeySpace = RuneKey(' ')
	KeyA     = RuneKey('a')
	KeyD     = RuneKey('d')
	KeyS     = RuneKey('s')
	KeyW     = RuneKey('w')
	KeyP     = RuneKey('p')
)

func (k Key) String() string {
	switch {
	case k == KeySpace:
		return "Space"
	case k.Code == tcell.KeyRune:
		return string(k.Rune)
	case k == KeyLeft:
		return "←"
	case k == KeyRight:
		return "→"
	case k == KeyUp:
		return "↑"
	case k == KeyDown:
		return "↓"
	}

	if name, ok := tcell.KeyNames[k.Code]; ok {
		return name
	}
	return "?"
}
