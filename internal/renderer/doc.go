// Package renderer paints a buffer snapshot onto a terminal backend.
//
// Each frame clears the screen, writes the buffer's display content from
// the top-left corner (rows split on CRLF), optionally draws a status line
// with the buffer's inspection view, and places the terminal cursor where
// the buffer cursor is. Screen columns are display widths, so wide runes
// take two cells and tabs expand to the next tab stop.
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term, renderer.DefaultOptions())
//	r.Render(buf.Snapshot())
package renderer
