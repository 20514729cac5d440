package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/dshills/linedit/internal/renderer/backend"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification string.
func Parse(spec string) (Spec, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Spec{}, ErrEmptySpec
	}

	// Check for Vim-style <...> notation
	if len(spec) > 2 && strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseVimStyle(spec[1 : len(spec)-1])
	}

	// Check for modifier+key format (Ctrl+S, Alt+F4)
	if len(spec) > 1 && strings.Contains(spec, "+") {
		return parseModifierStyle(spec)
	}

	return parseKey(spec, backend.ModNone)
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Spec {
	s, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return s
}

// parseVimStyle parses Vim-style notation like "C-s", "A-q", "CR", "Esc"
func parseVimStyle(inner string) (Spec, error) {
	parts := strings.Split(strings.TrimSpace(inner), "-")

	var mods backend.ModMask
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "c":
			mods |= backend.ModCtrl
		case "a", "m":
			mods |= backend.ModAlt
		case "s":
			mods |= backend.ModShift
		case "d":
			mods |= backend.ModMeta
		default:
			return Spec{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
	}

	return parseKey(parts[len(parts)-1], mods)
}

// parseModifierStyle parses "Ctrl+S" style notation
func parseModifierStyle(spec string) (Spec, error) {
	parts := strings.Split(spec, "+")

	var mods backend.ModMask
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "ctrl", "control", "c":
			mods |= backend.ModCtrl
		case "alt", "option", "opt", "a":
			mods |= backend.ModAlt
		case "shift", "s":
			mods |= backend.ModShift
		case "meta", "cmd", "super", "win":
			mods |= backend.ModMeta
		default:
			return Spec{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
	}

	return parseKey(parts[len(parts)-1], mods)
}

// parseKey parses a key part with already-known modifiers
func parseKey(keyPart string, mods backend.ModMask) (Spec, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return Spec{}, ErrInvalidSpec
	}

	switch strings.ToLower(keyPart) {
	case "cr", "return", "enter":
		return Spec{Key: backend.KeyEnter, Mod: mods}, nil
	case "esc", "escape":
		return Spec{Key: backend.KeyEscape, Mod: mods}, nil
	case "tab":
		return Spec{Key: backend.KeyTab, Mod: mods}, nil
	case "bs", "backspace":
		return Spec{Key: backend.KeyBackspace, Mod: mods}, nil
	case "del", "delete":
		return Spec{Key: backend.KeyDelete, Mod: mods}, nil
	case "home":
		return Spec{Key: backend.KeyHome, Mod: mods}, nil
	case "end":
		return Spec{Key: backend.KeyEnd, Mod: mods}, nil
	case "up":
		return Spec{Key: backend.KeyUp, Mod: mods}, nil
	case "down":
		return Spec{Key: backend.KeyDown, Mod: mods}, nil
	case "left":
		return Spec{Key: backend.KeyLeft, Mod: mods}, nil
	case "right":
		return Spec{Key: backend.KeyRight, Mod: mods}, nil
	case "space":
		return Spec{Key: backend.KeyRune, Rune: ' ', Mod: mods}, nil
	}

	runes := []rune(keyPart)
	if len(runes) != 1 {
		return Spec{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
	}

	r := runes[0]
	// Control chords are reported with lower-case letters
	if mods.Has(backend.ModCtrl) {
		r = unicode.ToLower(r)
	}
	return Spec{Key: backend.KeyRune, Rune: r, Mod: mods}, nil
}
