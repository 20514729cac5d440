package cursor

import "fmt"

// Cursor is a line/column position clamped to [0, lines] x [0, columns].
type Cursor struct {
	line    int
	column  int
	lines   int
	columns int
}

// New creates a cursor at (0, 0) with the given inclusive bounds.
// Negative bounds are treated as 0.
func New(lines, columns int) *Cursor {
	return &Cursor{lines: max(lines, 0), columns: max(columns, 0)}
}

// Line returns the current line.
func (c *Cursor) Line() int {
	return c.line
}

// Column returns the current column.
func (c *Cursor) Column() int {
	return c.column
}

// Bounds returns the inclusive line and column limits.
func (c *Cursor) Bounds() (lines, columns int) {
	return c.lines, c.columns
}

// Left moves one column left unless already at column 0.
func (c *Cursor) Left() {
	if c.column == 0 {
		return
	}
	c.column--
}

// Right moves one column right unless already at the column bound.
func (c *Cursor) Right() {
	if c.column == c.columns {
		return
	}
	c.column++
}

// Up moves one line up unless already at line 0.
func (c *Cursor) Up() {
	if c.line == 0 {
		return
	}
	c.line--
}

// Down moves one line down unless already at the line bound.
func (c *Cursor) Down() {
	if c.line == c.lines {
		return
	}
	c.line++
}

// Set places the cursor at (line, column), clamped to the bounds.
func (c *Cursor) Set(line, column int) {
	c.line = clamp(line, c.lines)
	c.column = clamp(column, c.columns)
}

// Resize changes the bounds and pulls the position back inside them.
func (c *Cursor) Resize(lines, columns int) {
	c.lines = max(lines, 0)
	c.columns = max(columns, 0)
	c.Set(c.line, c.column)
}

// String returns the position as "cursor[line:L,column:C]".
func (c *Cursor) String() string {
	return fmt.Sprintf("cursor[line:%d,column:%d]", c.line, c.column)
}

func clamp(v, hi int) int {
	return min(max(v, 0), hi)
}
