package buffer

import "fmt"

// Point is a line and column position. Both are 0-indexed and the column
// counts code points from the start of the line.
type Point struct {
	Line   int
	Column int
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Column)
}

// Position returns the cursor as a line and column. The column is measured
// from the start of the current line and never goes negative.
func (b *Buffer) Position() Point {
	l := b.lines[b.line]
	return Point{Line: b.line, Column: max(b.cursor-l.start, 0)}
}

// Slice returns the text in [start, end). Offsets are clamped to the content.
func (b *Buffer) Slice(start, end int) string {
	start, end = b.clamp(start), b.clamp(end)
	if start >= end {
		return ""
	}
	return string(b.content[start:end])
}

// BeforeCursor returns the text between the start of the current line and
// the cursor.
func (b *Buffer) BeforeCursor() string {
	return b.Slice(b.lines[b.line].start, b.cursor)
}
