package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Terminal is the tcell-backed Backend used for interactive sessions.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen
}

// NewTerminal opens the controlling terminal. The screen is not touched
// until Init.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalWithScreen(screen), nil
}

// NewTerminalWithScreen wraps an existing screen, such as a tcell
// simulation screen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// locked runs fn with the screen while holding the terminal lock.
func (t *Terminal) locked(fn func(s tcell.Screen)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fn(t.screen)
}

func (t *Terminal) Init() error {
	var err error
	t.locked(func(s tcell.Screen) {
		if err = s.Init(); err == nil {
			// Pasted text arrives as key events between paste markers.
			s.EnablePaste()
		}
	})
	return err
}

func (t *Terminal) Shutdown() { t.locked(tcell.Screen.Fini) }
func (t *Terminal) Clear()    { t.locked(tcell.Screen.Clear) }
func (t *Terminal) Show()     { t.locked(tcell.Screen.Show) }

func (t *Terminal) HideCursor() { t.locked(tcell.Screen.HideCursor) }

func (t *Terminal) Size() (width, height int) {
	t.locked(func(s tcell.Screen) { width, height = s.Size() })
	return width, height
}

func (t *Terminal) SetCell(x, y int, cell Cell) {
	t.locked(func(s tcell.Screen) {
		s.SetContent(x, y, cell.Rune, nil, convertAttr(cell.Attr))
	})
}

func (t *Terminal) ShowCursor(x, y int) {
	t.locked(func(s tcell.Screen) { s.ShowCursor(x, y) })
}

// PollEvent blocks without the lock so painting can continue while the
// loop waits for input.
func (t *Terminal) PollEvent() Event {
	ev := t.screen.PollEvent()
	if ev == nil {
		// screen finalized
		return Event{Type: EventNone}
	}
	return convertEvent(ev)
}

// PostEvent queues ev. Key events are delivered as keys; anything else
// becomes an interrupt that PollEvent reports as EventNone, which is
// enough to wake the loop. Delivery is best effort.
func (t *Terminal) PostEvent(ev Event) {
	if ev.Type != EventKey {
		_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
		return
	}
	key, r, mod := convertToTcellKey(ev)
	_ = t.screen.PostEvent(tcell.NewEventKey(key, r, mod))
}

func convertAttr(a Attr) tcell.Style {
	return tcell.StyleDefault.
		Bold(a.Has(AttrBold)).
		Reverse(a.Has(AttrReverse))
}

func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		key, r, mod := convertKey(e.Key(), e.Rune(), convertMod(e.Modifiers()))
		return Event{Type: EventKey, Key: key, Rune: r, Mod: mod}
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}
	case *tcell.EventPaste:
		// Focused carries start (true) or end (false) of the paste.
		return Event{Type: EventPaste, Focused: e.Start()}
	case *tcell.EventFocus:
		return Event{Type: EventFocus, Focused: e.Focused}
	case *tcell.EventMouse:
		return Event{Type: EventMouse, Mod: convertMod(e.Modifiers())}
	}
	return Event{Type: EventNone}
}

// specialKeys pairs the named keys the translator understands.
var specialKeys = []struct {
	tk  tcell.Key
	key Key
}{
	{tcell.KeyEscape, KeyEscape},
	{tcell.KeyEnter, KeyEnter},
	{tcell.KeyTab, KeyTab},
	{tcell.KeyBackspace2, KeyBackspace},
	{tcell.KeyBackspace, KeyBackspace},
	{tcell.KeyDelete, KeyDelete},
	{tcell.KeyHome, KeyHome},
	{tcell.KeyEnd, KeyEnd},
	{tcell.KeyUp, KeyUp},
	{tcell.KeyDown, KeyDown},
	{tcell.KeyLeft, KeyLeft},
	{tcell.KeyRight, KeyRight},
}

// convertKey maps a tcell key to ours. Control letters become the
// lower-case rune with ModCtrl, so "ctrl+q" matches however the terminal
// reports it.
func convertKey(k tcell.Key, r rune, mod ModMask) (Key, rune, ModMask) {
	if k == tcell.KeyRune {
		return KeyRune, r, mod
	}
	// Enter, Tab and Backspace share codes with ctrl+m, ctrl+i and ctrl+h,
	// so the named keys are matched first.
	for _, sk := range specialKeys {
		if sk.tk == k {
			return sk.key, 0, mod
		}
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return KeyRune, 'a' + rune(k-tcell.KeyCtrlA), mod | ModCtrl
	}
	return KeyNone, 0, mod
}

func convertToTcellKey(ev Event) (tcell.Key, rune, tcell.ModMask) {
	mod := convertToTcellMod(ev.Mod)
	for _, sk := range specialKeys {
		if sk.key == ev.Key {
			return sk.tk, 0, mod
		}
	}
	if ev.Mod.Has(ModCtrl) && ev.Rune >= 'a' && ev.Rune <= 'z' {
		return tcell.KeyCtrlA + tcell.Key(ev.Rune-'a'), 0, mod
	}
	return tcell.KeyRune, ev.Rune, mod
}

var modPairs = []struct {
	tm  tcell.ModMask
	mod ModMask
}{
	{tcell.ModShift, ModShift},
	{tcell.ModCtrl, ModCtrl},
	{tcell.ModAlt, ModAlt},
	{tcell.ModMeta, ModMeta},
}

func convertMod(m tcell.ModMask) ModMask {
	var out ModMask
	for _, p := range modPairs {
		if m&p.tm != 0 {
			out |= p.mod
		}
	}
	return out
}

func convertToTcellMod(m ModMask) tcell.ModMask {
	var out tcell.ModMask
	for _, p := range modPairs {
		if m.Has(p.mod) {
			out |= p.tm
		}
	}
	return out
}
