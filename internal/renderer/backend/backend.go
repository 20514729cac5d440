// Package backend provides the terminal abstraction the editor paints on and
// reads input events from.
package backend

import "strings"

// Attr is a set of text attributes for a cell.
type Attr uint8

// Cell attributes.
const (
	AttrNone    Attr = 0
	AttrBold    Attr = 1 << iota
	AttrReverse      // Reverse video (swap fg/bg)
)

// Has returns true if the attribute set contains attr.
func (a Attr) Has(attr Attr) bool {
	return a&attr != 0
}

// Cell is one screen position.
type Cell struct {
	Rune rune
	Attr Attr
}

// EmptyCell returns a blank cell.
func EmptyCell() Cell {
	return Cell{Rune: ' '}
}

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	EventPaste
	EventFocus
)

var eventNames = [...]string{"none", "key", "mouse", "resize", "paste", "focus"}

func (t EventType) String() string {
	if t < 0 || int(t) >= len(eventNames) {
		return "none"
	}
	return eventNames[t]
}

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key  Key
	Rune rune
	Mod  ModMask

	// Resize event fields
	Width, Height int

	// Focus gained/lost, or paste start/end for EventPaste
	Focused bool
}

// Key represents a keyboard key.
type Key int

// Key constants for special keys. Control chords arrive as KeyRune with
// ModCtrl set and the lower-case letter in Rune.
const (
	KeyNone Key = iota
	KeyRune     // Regular character (use Rune field)
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has returns true if the mask contains the given modifier.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// Backend is the screen the renderer paints on and the source of input
// events. Positions outside the screen are ignored by SetCell.
type Backend interface {
	// Init enters raw mode. It must be called before anything else.
	Init() error
	// Shutdown restores the terminal.
	Shutdown()

	Size() (width, height int)
	SetCell(x, y int, cell Cell)
	Clear()
	// Show flushes pending cells to the display.
	Show()
	ShowCursor(x, y int)
	HideCursor()

	// PollEvent blocks until the next event.
	PollEvent() Event
	// PostEvent queues a synthetic event, waking a blocked PollEvent.
	PostEvent(ev Event)
}

// NullBackend keeps the screen in memory. Tests paint on it and inspect
// the result.
type NullBackend struct {
	width, height int
	grid          []Cell // row-major, width*height
	cursorX       int
	cursorY       int
	cursorVisible bool
	shows         int
	events        chan Event
}

// NewNullBackend creates a width x height screen.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, 100),
	}
}

func (b *NullBackend) Init() error {
	b.grid = make([]Cell, b.width*b.height)
	b.Clear()
	return nil
}

func (b *NullBackend) Shutdown() {}

func (b *NullBackend) Size() (int, int) {
	return b.width, b.height
}

func (b *NullBackend) index(x, y int) (int, bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height || b.grid == nil {
		return 0, false
	}
	return y*b.width + x, true
}

func (b *NullBackend) SetCell(x, y int, cell Cell) {
	if i, ok := b.index(x, y); ok {
		b.grid[i] = cell
	}
}

// GetCell returns the cell at x, y, or a blank cell off screen.
func (b *NullBackend) GetCell(x, y int) Cell {
	if i, ok := b.index(x, y); ok {
		return b.grid[i]
	}
	return EmptyCell()
}

func (b *NullBackend) Clear() {
	for i := range b.grid {
		b.grid[i] = EmptyCell()
	}
}

func (b *NullBackend) Show() { b.shows++ }

func (b *NullBackend) ShowCursor(x, y int) {
	b.cursorX, b.cursorY, b.cursorVisible = x, y, true
}

func (b *NullBackend) HideCursor() { b.cursorVisible = false }

func (b *NullBackend) PollEvent() Event {
	return <-b.events
}

// PostEvent drops the event when the queue is full.
func (b *NullBackend) PostEvent(ev Event) {
	select {
	case b.events <- ev:
	default:
	}
}

// Row returns row y as a string with trailing blanks trimmed.
func (b *NullBackend) Row(y int) string {
	if _, ok := b.index(0, y); !ok {
		return ""
	}
	row := make([]rune, b.width)
	for x := range row {
		row[x] = b.grid[y*b.width+x].Rune
	}
	return strings.TrimRight(string(row), " ")
}

func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	return b.cursorX, b.cursorY, b.cursorVisible
}

// Shows counts calls to Show, one per painted frame.
func (b *NullBackend) Shows() int {
	return b.shows
}

// Resize reallocates the screen and queues a resize event, as a terminal
// window change would.
func (b *NullBackend) Resize(width, height int) {
	b.width, b.height = width, height
	b.Init()
	b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}
