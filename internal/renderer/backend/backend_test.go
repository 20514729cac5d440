package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestNullBackendInit(t *testing.T) {
	b := NewNullBackend(80, 24)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	w, h := b.Size()
	if w != 80 || h != 24 {
		t.Errorf("expected size (80, 24), got (%d, %d)", w, h)
	}
}

func TestNullBackendSetGetCell(t *testing.T) {
	b := NewNullBackend(10, 3)
	b.Init()

	cell := Cell{Rune: 'X', Attr: AttrReverse}
	b.SetCell(4, 1, cell)

	if got := b.GetCell(4, 1); got != cell {
		t.Errorf("cell mismatch: expected %+v, got %+v", cell, got)
	}

	// Out of bounds should be ignored/return empty
	b.SetCell(-1, 0, cell)
	b.SetCell(100, 0, cell)
	if got := b.GetCell(-1, 0); got != EmptyCell() {
		t.Error("out of bounds should return empty cell")
	}
}

func TestNullBackendRowAndClear(t *testing.T) {
	b := NewNullBackend(10, 2)
	b.Init()

	for i, r := range "hi" {
		b.SetCell(i, 0, Cell{Rune: r})
	}
	if got := b.Row(0); got != "hi" {
		t.Errorf("expected row %q, got %q", "hi", got)
	}

	b.Clear()
	if got := b.Row(0); got != "" {
		t.Errorf("expected cleared row, got %q", got)
	}
	if got := b.Row(5); got != "" {
		t.Errorf("off-screen row should be empty, got %q", got)
	}
}

func TestNullBackendCursor(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.ShowCursor(10, 5)
	x, y, visible := b.CursorPosition()
	if x != 10 || y != 5 || !visible {
		t.Errorf("expected cursor at (10, 5) visible, got (%d, %d) visible=%v", x, y, visible)
	}

	b.HideCursor()
	if _, _, visible := b.CursorPosition(); visible {
		t.Error("cursor should be hidden")
	}
}

func TestNullBackendResize(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.Resize(40, 12)

	w, h := b.Size()
	if w != 40 || h != 12 {
		t.Errorf("expected size (40, 12), got (%d, %d)", w, h)
	}
	ev := b.PollEvent()
	if ev.Type != EventResize || ev.Width != 40 || ev.Height != 12 {
		t.Errorf("expected resize event, got %+v", ev)
	}
}

func TestNullBackendPostEvent(t *testing.T) {
	b := NewNullBackend(80, 24)

	b.PostEvent(Event{Type: EventKey, Key: KeyRune, Rune: 'a'})

	ev := b.PollEvent()
	if ev.Type != EventKey || ev.Rune != 'a' {
		t.Errorf("expected key event 'a', got %+v", ev)
	}
}

func TestModMaskHas(t *testing.T) {
	m := ModCtrl | ModAlt

	if !m.Has(ModCtrl) || !m.Has(ModAlt) {
		t.Error("mask should contain ctrl and alt")
	}
	if m.Has(ModShift) {
		t.Error("mask should not contain shift")
	}
}

func TestEventTypeString(t *testing.T) {
	if EventKey.String() != "key" || EventNone.String() != "none" {
		t.Error("unexpected event type names")
	}
}

func TestConvertKey(t *testing.T) {
	tests := []struct {
		name     string
		key      tcell.Key
		r        rune
		wantKey  Key
		wantRune rune
		wantMod  ModMask
	}{
		{"rune", tcell.KeyRune, 'x', KeyRune, 'x', ModNone},
		{"enter", tcell.KeyEnter, 0, KeyEnter, 0, ModNone},
		{"backspace", tcell.KeyBackspace, 0, KeyBackspace, 0, ModNone},
		{"backspace2", tcell.KeyBackspace2, 0, KeyBackspace, 0, ModNone},
		{"ctrl letter", tcell.KeyCtrlQ, 0, KeyRune, 'q', ModCtrl},
		{"unknown", tcell.KeyF5, 0, KeyNone, 0, ModNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, r, m := convertKey(tt.key, tt.r, ModNone)
			if k != tt.wantKey || r != tt.wantRune || m != tt.wantMod {
				t.Errorf("expected (%d, %q, %d), got (%d, %q, %d)", tt.wantKey, tt.wantRune, tt.wantMod, k, r, m)
			}
		})
	}
}

func TestConvertToTcellKeyRoundTrip(t *testing.T) {
	events := []Event{
		{Type: EventKey, Key: KeyEnter},
		{Type: EventKey, Key: KeyRune, Rune: 'z', Mod: ModAlt},
		{Type: EventKey, Key: KeyRune, Rune: 'q', Mod: ModCtrl},
	}

	for _, ev := range events {
		k, r, m := convertToTcellKey(ev)
		key, gotRune, gotMod := convertKey(k, r, convertMod(m))
		if key != ev.Key || gotRune != ev.Rune || gotMod != ev.Mod {
			t.Errorf("round trip of %+v produced (%d, %q, %d)", ev, key, gotRune, gotMod)
		}
	}
}

func TestConvertAttr(t *testing.T) {
	_, _, attrs := convertAttr(AttrReverse | AttrBold).Decompose()
	if attrs&tcell.AttrReverse == 0 || attrs&tcell.AttrBold == 0 {
		t.Error("expected reverse and bold attributes")
	}
}
