// Package buffer provides the line-indexed text buffer at the heart of the
// editor. A Buffer stores its text as a flat sequence of code points and
// maintains, incrementally, the start and end offset of every line together
// with a cursor offset and the index of the line holding that cursor.
//
// The package provides:
//
//   - LineRange: the inclusive [start, end] span of one line
//   - Buffer: the character store, the line index and the cursor
//   - Snapshot: an immutable copy of what a renderer needs for one frame
//
// Basic usage:
//
//	buf := buffer.NewFromString("package main")
//	buf.Insert('\n')     // newline at the cursor
//	buf.Remove()         // delete the character before the cursor
//	screen := buf.Content() // text with CRLF line endings for display
//
// Offsets:
//
// Every offset is a code point index into the content, not a byte offset.
// There is no grapheme clustering. Offsets supplied by callers are clamped
// to [0, Len()].
//
// Line boundaries:
//
// A line's end offset is the offset of its terminating newline, when it has
// one. The line that owns an offset is the first line whose end is greater
// than or equal to it. A buffer whose text ends in a newline carries a final
// zero-length line starting just past that newline.
//
// Thread Safety:
//
// A Buffer is not safe for concurrent use. It is owned by exactly one event
// loop which applies one edit at a time and reads the content back after
// each edit.
package buffer
