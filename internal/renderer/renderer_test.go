package renderer

import (
	"strings"
	"testing"

	"github.com/dshills/linedit/internal/engine/buffer"
	"github.com/dshills/linedit/internal/renderer/backend"
)

func newTestRenderer(t *testing.T, width, height int, opts Options) (*Renderer, *backend.NullBackend) {
	t.Helper()
	be := backend.NewNullBackend(width, height)
	if err := be.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return New(be, opts), be
}

func TestRenderContent(t *testing.T) {
	r, be := newTestRenderer(t, 20, 5, DefaultOptions())

	r.Render(buffer.NewFromString("package main\nfunc main() {\n}").Snapshot())

	want := []string{"package main", "func main() {", "}", ""}
	for y, line := range want {
		if got := be.Row(y); got != line {
			t.Errorf("row %d: expected %q, got %q", y, line, got)
		}
	}
	if be.Shows() != 1 || r.Frames() != 1 {
		t.Errorf("expected one frame shown, got shows=%d frames=%d", be.Shows(), r.Frames())
	}
}

func TestRenderCursorPosition(t *testing.T) {
	r, be := newTestRenderer(t, 20, 5, DefaultOptions())

	buf := buffer.New()
	buf.InsertString("ab\ncd")
	r.Render(buf.Snapshot())

	x, y, visible := be.CursorPosition()
	if x != 2 || y != 1 || !visible {
		t.Errorf("expected cursor at (2, 1), got (%d, %d) visible=%v", x, y, visible)
	}

	buf.Insert('\n')
	r.Render(buf.Snapshot())
	if x, y, _ := be.CursorPosition(); x != 0 || y != 2 {
		t.Errorf("expected cursor at (0, 2) after newline, got (%d, %d)", x, y)
	}
}

func TestRenderWideRunes(t *testing.T) {
	r, be := newTestRenderer(t, 20, 3, DefaultOptions())

	r.Render(buffer.NewFromString("日本x").Snapshot())

	if x, _, _ := be.CursorPosition(); x != 5 {
		t.Errorf("expected cursor at column 5, got %d", x)
	}
	if got := be.GetCell(4, 0).Rune; got != 'x' {
		t.Errorf("expected 'x' at column 4, got %q", got)
	}
}

func TestRenderTabs(t *testing.T) {
	r, be := newTestRenderer(t, 20, 3, Options{TabWidth: 4})

	r.Render(buffer.NewFromString("a\tb").Snapshot())

	if got := be.Row(0); got != "a   b" {
		t.Errorf("expected tab expanded to stop 4, got %q", got)
	}
	if x, _, _ := be.CursorPosition(); x != 5 {
		t.Errorf("expected cursor at column 5, got %d", x)
	}
}

func TestRenderClipsToScreen(t *testing.T) {
	r, be := newTestRenderer(t, 4, 2, DefaultOptions())

	r.Render(buffer.NewFromString("abcdefgh\n1\n2\n3").Snapshot())

	if got := be.Row(0); got != "abcd" {
		t.Errorf("expected clipped row, got %q", got)
	}
	x, y, _ := be.CursorPosition()
	if x != 1 || y != 1 {
		t.Errorf("expected cursor clamped to (1, 1), got (%d, %d)", x, y)
	}
}

func TestRenderStatusLine(t *testing.T) {
	r, be := newTestRenderer(t, 60, 4, Options{ShowStatus: true})

	buf := buffer.NewFromString("a\nb\nc\nd")
	r.Render(buf.Snapshot())

	status := be.Row(3)
	if !strings.HasPrefix(status, "buffer [ cursor: 7, line: 3") {
		t.Errorf("unexpected status line %q", status)
	}
	if !be.GetCell(59, 3).Attr.Has(backend.AttrReverse) {
		t.Error("status line should be reverse video across the row")
	}
	// Only three rows are left for text.
	if got := be.Row(2); got != "c" {
		t.Errorf("expected row 2 %q, got %q", "c", got)
	}
}

func TestResizeUpdatesCursorBounds(t *testing.T) {
	r, _ := newTestRenderer(t, 80, 24, DefaultOptions())

	r.Resize(10, 5)

	lines, columns := r.Cursor().Bounds()
	if lines != 4 || columns != 9 {
		t.Errorf("expected bounds (4, 9), got (%d, %d)", lines, columns)
	}
	if w, h := r.Size(); w != 10 || h != 5 {
		t.Errorf("expected size (10, 5), got (%d, %d)", w, h)
	}
}

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		s    string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"日本", 4},
		{"\t", 8},
		{"ab\t", 8},
		{"é", 1},
	}
	for _, tt := range tests {
		if got := displayWidth(tt.s, DefaultTabWidth); got != tt.want {
			t.Errorf("displayWidth(%q): expected %d, got %d", tt.s, tt.want, got)
		}
	}
}
