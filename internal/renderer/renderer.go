package renderer

import (
	"strings"

	"github.com/dshills/linedit/internal/engine/buffer"
	"github.com/dshills/linedit/internal/engine/cursor"
	"github.com/dshills/linedit/internal/renderer/backend"
)

// DefaultTabWidth is the tab stop distance used when none is configured.
const DefaultTabWidth = 8

// Options configures the renderer.
type Options struct {
	// ShowStatus reserves the bottom row for the buffer inspection view.
	ShowStatus bool

	// TabWidth is the distance between tab stops.
	TabWidth int
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		ShowStatus: false,
		TabWidth:   DefaultTabWidth,
	}
}

// Renderer draws buffer snapshots onto a backend.
// It is driven from the event loop goroutine only.
type Renderer struct {
	backend backend.Backend
	opts    Options
	cursor  *cursor.Cursor
	width   int
	height  int
	frames  int
}

// New creates a renderer sized to the backend.
func New(be backend.Backend, opts Options) *Renderer {
	if opts.TabWidth <= 0 {
		opts.TabWidth = DefaultTabWidth
	}
	r := &Renderer{
		backend: be,
		opts:    opts,
		cursor:  cursor.New(0, 0),
	}
	r.Resize(be.Size())
	return r
}

// SetOptions replaces the options; the next frame uses them.
func (r *Renderer) SetOptions(opts Options) {
	if opts.TabWidth <= 0 {
		opts.TabWidth = DefaultTabWidth
	}
	r.opts = opts
	r.Resize(r.width, r.height)
}

// Resize updates the screen dimensions and the cursor bounds.
func (r *Renderer) Resize(width, height int) {
	r.width = max(width, 0)
	r.height = max(height, 0)
	r.cursor.Resize(r.textHeight()-1, r.width-1)
}

// Size returns the dimensions the renderer draws into.
func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

// Cursor returns the screen cursor placed by the last frame.
func (r *Renderer) Cursor() *cursor.Cursor {
	return r.cursor
}

// Frames returns the number of frames drawn.
func (r *Renderer) Frames() int {
	return r.frames
}

// textHeight returns the rows available for buffer text.
func (r *Renderer) textHeight() int {
	if r.opts.ShowStatus && r.height > 1 {
		return r.height - 1
	}
	return r.height
}

// Render draws one frame.
func (r *Renderer) Render(snap buffer.Snapshot) {
	r.backend.Clear()

	rows := strings.Split(snap.Content, "\r\n")
	for y := 0; y < len(rows) && y < r.textHeight(); y++ {
		r.drawRow(y, rows[y], backend.AttrNone)
	}

	if r.opts.ShowStatus && r.height > 1 {
		r.drawStatus(snap.Debug)
	}

	col := displayWidth(snap.BeforeCursor, r.opts.TabWidth)
	r.cursor.Set(snap.Position.Line, col)
	if r.width > 0 && r.height > 0 {
		r.backend.ShowCursor(r.cursor.Column(), r.cursor.Line())
	}

	r.backend.Show()
	r.frames++
}

// drawRow writes text on row y, clipped to the screen width.
func (r *Renderer) drawRow(y int, text string, attr backend.Attr) {
	forEachCell(text, r.opts.TabWidth, func(ch rune, x, w int) {
		if x >= r.width {
			return
		}
		r.backend.SetCell(x, y, backend.Cell{Rune: ch, Attr: attr})
		// Blank the trailing cells of a tab.
		for i := 1; i < w && ch == ' ' && x+i < r.width; i++ {
			r.backend.SetCell(x+i, y, backend.Cell{Rune: ' ', Attr: attr})
		}
	})
}

// drawStatus fills the bottom row with the inspection view in reverse video.
func (r *Renderer) drawStatus(text string) {
	y := r.height - 1
	for x := 0; x < r.width; x++ {
		r.backend.SetCell(x, y, backend.Cell{Rune: ' ', Attr: backend.AttrReverse})
	}
	r.drawRow(y, text, backend.AttrReverse)
}
