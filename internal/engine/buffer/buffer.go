package buffer

import (
	"fmt"
	"strings"
)

// Newline is the line terminator stored in the buffer.
const Newline = '\n'

// Buffer is a mutable sequence of code points with an incrementally
// maintained line index and a cursor.
//
// After every public operation:
//   - lines is never empty; an empty buffer holds the single line (0, 0)
//   - every line but the last ends at the offset of its newline
//   - line is the index of the line owning cursor, recomputed whenever the
//     cursor is moved to a caller supplied position
type Buffer struct {
	content []rune
	lines   []LineRange
	cursor  int
	line    int
}

// New creates an empty buffer with one zero-length line.
func New() *Buffer {
	return &Buffer{
		lines: []LineRange{{start: 0, end: 0}},
	}
}

// NewFromString creates a buffer holding s, scanning it once to build the
// line index. The cursor is placed after the last character and the current
// line is the last line.
//
// A trailing newline yields a final zero-length line (n, n) where n is the
// offset just past the newline.
func NewFromString(s string) *Buffer {
	content := []rune(s)
	lines := []LineRange{{start: 0, end: 0}}
	line, lineStart, cursor := 0, 0, 0

	for i, r := range content {
		cursor = i + 1
		if r == Newline {
			lines[line] = LineRange{start: lineStart, end: i}
			line++
			lineStart = i + 1
			if len(lines) == line {
				lines = append(lines, LineRange{start: lineStart, end: lineStart})
			}
			continue
		}
		lines[line].end = i
	}

	return &Buffer{
		content: content,
		lines:   lines,
		cursor:  cursor,
		line:    len(lines) - 1,
	}
}

// Len returns the number of code points in the buffer.
func (b *Buffer) Len() int {
	return len(b.content)
}

// IsEmpty returns true if the buffer holds no text.
func (b *Buffer) IsEmpty() bool {
	return len(b.content) == 0
}

// Cursor returns the cursor offset.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// CurrentLine returns the index of the line holding the cursor.
func (b *Buffer) CurrentLine() int {
	return b.line
}

// LineCount returns the number of entries in the line index.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the range of line i.
func (b *Buffer) Line(i int) (LineRange, bool) {
	if i < 0 || i >= len(b.lines) {
		return LineRange{}, false
	}
	return b.lines[i], true
}

// Lines returns a copy of the line index.
func (b *Buffer) Lines() []LineRange {
	out := make([]LineRange, len(b.lines))
	copy(out, b.lines)
	return out
}

// Text returns the raw content with newlines as stored.
func (b *Buffer) Text() string {
	return string(b.content)
}

// RuneAt returns the code point at offset.
func (b *Buffer) RuneAt(offset int) (rune, bool) {
	if offset < 0 || offset >= len(b.content) {
		return 0, false
	}
	return b.content[offset], true
}

// Content renders the buffer for display. Lines are emitted in order and
// every stored newline is written as "\r\n". The stored content and line
// index are left untouched.
//
// A line starting at Len() is the trailing sentinel and is skipped.
func (b *Buffer) Content() string {
	if len(b.content) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(b.content) + len(b.lines))
	for _, l := range b.lines {
		if l.start >= len(b.content) {
			continue
		}
		hi := min(l.end+1, len(b.content))
		if hi <= l.start {
			continue
		}
		span := b.content[l.start:hi]
		if span[len(span)-1] == Newline {
			sb.WriteString(string(span[:len(span)-1]))
			sb.WriteString("\r\n")
			continue
		}
		sb.WriteString(string(span))
	}
	return sb.String()
}

// String returns the inspection view including the content:
//
//	buffer [ cursor: 1, line: 0, content: 'a', lines: '[(0, 0)]']
func (b *Buffer) String() string {
	return fmt.Sprintf("buffer [ cursor: %d, line: %d, content: '%s', lines: '%s']",
		b.cursor, b.line, string(b.content), b.lineTable())
}

// Debug returns the inspection view without the content.
func (b *Buffer) Debug() string {
	return fmt.Sprintf("buffer [ cursor: %d, line: %d, lines: '%s']",
		b.cursor, b.line, b.lineTable())
}

// lineTable formats the line index as "[(s, e), (s, e)]".
func (b *Buffer) lineTable() string {
	parts := make([]string, len(b.lines))
	for i, l := range b.lines {
		parts[i] = l.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// sync moves the cursor to pos and resynchronizes the current line: the
// first line whose end is at or past the cursor wins. If no line qualifies
// the current line is left as it was.
func (b *Buffer) sync(pos int) {
	b.cursor = b.clamp(pos)
	for i, l := range b.lines {
		if l.end >= b.cursor {
			b.line = i
			return
		}
	}
}

// clamp bounds an offset to [0, Len()].
func (b *Buffer) clamp(pos int) int {
	return min(max(pos, 0), len(b.content))
}
