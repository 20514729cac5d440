package buffer

// Snapshot is an immutable copy of the state a renderer needs for one frame.
// It does not change when the buffer it was taken from is edited.
type Snapshot struct {
	Content      string
	Cursor       int
	Position     Point
	BeforeCursor string
	Lines        []LineRange
	Debug        string
}

// Snapshot captures the current rendering state of the buffer.
func (b *Buffer) Snapshot() Snapshot {
	return Snapshot{
		Content:      b.Content(),
		Cursor:       b.cursor,
		Position:     b.Position(),
		BeforeCursor: b.BeforeCursor(),
		Lines:        b.Lines(),
		Debug:        b.Debug(),
	}
}

// LineCount returns the number of lines in the snapshot's index.
func (s Snapshot) LineCount() int {
	return len(s.Lines)
}
