package buffer

import "slices"

// Insert inserts ch at the cursor.
func (b *Buffer) Insert(ch rune) {
	b.InsertAt(b.cursor, ch)
}

// InsertString inserts s one code point at a time at the cursor.
func (b *Buffer) InsertString(s string) {
	for _, r := range s {
		b.Insert(r)
	}
}

// InsertAt inserts ch at offset pos and leaves the cursor just after it.
//
// A newline closes the current line at the insertion point, makes the next
// line current (creating a zero-length line when none exists yet) and pushes
// every later line one position to the right. Any other character only
// extends the current line's end.
//
// A line is only appended when the current line was the last one. A newline
// inserted on any earlier line makes the existing next line current without
// adding an entry, so that line's range no longer covers its text.
func (b *Buffer) InsertAt(pos int, ch rune) {
	b.sync(pos)

	b.content = slices.Insert(b.content, b.cursor, ch)
	b.lines[b.line].end = b.cursor
	b.cursor++

	if ch != Newline {
		return
	}

	b.line++
	if b.line >= len(b.lines) {
		b.lines = append(b.lines, LineRange{start: b.cursor, end: b.cursor})
	}
	for i := b.line + 1; i < len(b.lines); i++ {
		b.lines[i].shift(1)
	}
}

// Remove deletes the character immediately before the cursor.
// It is a no-op when the cursor is at 0.
func (b *Buffer) Remove() {
	if b.cursor == 0 {
		return
	}
	b.RemoveAt(b.cursor - 1)
}

// RemoveAt deletes the character stored at offset pos and leaves the cursor
// at pos. It is a no-op when the cursor is at 0 before the call, or when pos
// is at or beyond the end of the content.
//
// Removing a newline merges the current line with the next one.
func (b *Buffer) RemoveAt(pos int) {
	if b.cursor == 0 || pos >= len(b.content) {
		return
	}
	b.sync(pos)

	ch := b.content[b.cursor]
	b.content = slices.Delete(b.content, b.cursor, b.cursor+1)

	if ch != Newline {
		b.lines[b.line].shrink()
		return
	}

	b.shrinkFrom(b.line)

	next := b.line + 1
	if next >= len(b.lines) {
		return
	}
	cur := &b.lines[b.line]
	if cur.end < b.lines[next].end {
		cur.end = b.lines[next].end
	}
	// The merged end still counts the removed newline when it lands on the
	// cursor.
	if cur.end == b.cursor && cur.end != 0 {
		cur.end--
	}
	b.lines = slices.Delete(b.lines, next, next+1)
}

// shrinkFrom pulls every line from index first onward back by one position
// after a newline at the cursor was removed. The first line only loses its
// end. While the current line is not the last line, a zero-length line
// sitting exactly on the cursor is left alone so a just-opened empty line
// does not go negative.
func (b *Buffer) shrinkFrom(first int) {
	last := len(b.lines) - 1
	for i := first; i < len(b.lines); i++ {
		l := &b.lines[i]
		if b.line != last && l.start == l.end && l.start == b.cursor {
			continue
		}
		if i == first {
			l.shrink()
			continue
		}
		l.shift(-1)
	}
}
