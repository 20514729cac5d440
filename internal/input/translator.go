package input

import (
	"github.com/dshills/linedit/internal/input/key"
	"github.com/dshills/linedit/internal/renderer/backend"
)

// DefaultQuitKey is the key that ends an interactive session.
const DefaultQuitKey = "alt+q"

// Config configures a Translator.
type Config struct {
	// Quit is the key that requests exit.
	Quit key.Spec

	// TabSpaces is the number of spaces a Tab key inserts.
	// Zero inserts a literal tab.
	TabSpaces int
}

// DefaultConfig returns the default translation config.
func DefaultConfig() Config {
	return Config{
		Quit: key.MustParse(DefaultQuitKey),
	}
}

// Result is the outcome of translating one event.
type Result struct {
	// Intents are applied in order, each as its own mutation.
	Intents []Intent

	// Quit requests the session to end.
	Quit bool

	// Repaint requests a frame even though nothing was edited.
	Repaint bool
}

// Translator maps terminal events to edit intents. It tracks bracketed
// paste state and is used from the event loop goroutine only.
type Translator struct {
	cfg     Config
	pasting bool
}

// NewTranslator creates a translator.
func NewTranslator(cfg Config) *Translator {
	return &Translator{cfg: cfg}
}

// SetConfig replaces the translation config.
func (t *Translator) SetConfig(cfg Config) {
	t.cfg = cfg
}

// Pasting reports whether the translator is between paste markers.
func (t *Translator) Pasting() bool {
	return t.pasting
}

// Translate maps one event.
func (t *Translator) Translate(ev backend.Event) Result {
	switch ev.Type {
	case backend.EventPaste:
		t.pasting = ev.Focused
		return Result{}
	case backend.EventResize:
		return Result{Repaint: true}
	case backend.EventKey:
		return t.translateKey(ev)
	default:
		return Result{}
	}
}

func (t *Translator) translateKey(ev backend.Event) Result {
	if !t.pasting && t.cfg.Quit.Matches(ev) {
		return Result{Quit: true}
	}

	src := SourceKeyboard
	if t.pasting {
		src = SourcePaste
	}
	// Modifier chords are commands, not text, unless they are part of a paste.
	plain := t.pasting || ev.Mod&^backend.ModShift == backend.ModNone

	var intents []Intent
	switch {
	case !plain:
	case ev.Key == backend.KeyEnter:
		intents = append(intents, InsertNewline().From(src))
	case ev.Key == backend.KeyBackspace:
		intents = append(intents, DeleteBackward().From(src))
	case ev.Key == backend.KeyTab:
		intents = t.tab(src)
	case ev.Key == backend.KeyRune:
		intents = append(intents, InsertChar(ev.Rune).From(src))
	}

	return Result{Intents: intents}
}

func (t *Translator) tab(src Source) []Intent {
	if t.cfg.TabSpaces <= 0 {
		return []Intent{InsertChar('\t').From(src)}
	}
	intents := make([]Intent, t.cfg.TabSpaces)
	for i := range intents {
		intents[i] = InsertChar(' ').From(src)
	}
	return intents
}
