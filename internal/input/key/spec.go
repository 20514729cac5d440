package key

import (
	"strings"

	"github.com/dshills/linedit/internal/renderer/backend"
)

// Spec is a parsed key specification.
type Spec struct {
	Key  backend.Key
	Rune rune
	Mod  backend.ModMask
}

// Matches reports whether a terminal event is this key. Shift is ignored
// for runes since the rune already carries the case.
func (s Spec) Matches(ev backend.Event) bool {
	if ev.Type != backend.EventKey || ev.Key != s.Key {
		return false
	}
	if s.Key != backend.KeyRune {
		return ev.Mod == s.Mod
	}
	const mask = backend.ModCtrl | backend.ModAlt | backend.ModMeta
	return ev.Rune == s.Rune && ev.Mod&mask == s.Mod&mask
}

// String formats the spec in modifier style, e.g. "Alt+q".
func (s Spec) String() string {
	var parts []string
	if s.Mod.Has(backend.ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if s.Mod.Has(backend.ModAlt) {
		parts = append(parts, "Alt")
	}
	if s.Mod.Has(backend.ModMeta) {
		parts = append(parts, "Meta")
	}
	if s.Mod.Has(backend.ModShift) && s.Key != backend.KeyRune {
		parts = append(parts, "Shift")
	}
	if s.Key == backend.KeyRune {
		parts = append(parts, string(s.Rune))
	} else {
		parts = append(parts, keyNames[s.Key])
	}
	return strings.Join(parts, "+")
}

// keyNames are the canonical names for special keys.
var keyNames = map[backend.Key]string{
	backend.KeyEscape:    "Escape",
	backend.KeyEnter:     "Enter",
	backend.KeyTab:       "Tab",
	backend.KeyBackspace: "Backspace",
	backend.KeyDelete:    "Delete",
	backend.KeyHome:      "Home",
	backend.KeyEnd:       "End",
	backend.KeyUp:        "Up",
	backend.KeyDown:      "Down",
	backend.KeyLeft:      "Left",
	backend.KeyRight:     "Right",
}
