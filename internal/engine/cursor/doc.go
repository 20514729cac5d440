// Package cursor provides the two-dimensional screen cursor.
//
// A Cursor is a line/column counter pair with inclusive upper bounds fixed
// at construction. Moves at a bound are no-ops; the cursor never wraps and
// never reports an error. It has no knowledge of buffer offsets and is used
// only to keep track of where the terminal cursor should be painted.
//
// Basic usage:
//
//	c := cursor.New(23, 79) // bounds for a 24x80 screen
//	c.Down()
//	c.Right()
//	fmt.Println(c) // cursor[line:1,column:1]
package cursor
