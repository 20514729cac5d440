package buffer

import "fmt"

// LineRange is the inclusive span [Start, End] of one line within the
// buffer content.
//
// For every line except the last, End is the offset of the line's
// terminating newline. A zero-length line has Start == End and that offset
// does not hold a real character yet.
type LineRange struct {
	start int
	end   int
}

// NewLineRange creates a line range. Negative offsets are clamped to 0.
func NewLineRange(start, end int) LineRange {
	return LineRange{start: max(start, 0), end: max(end, 0)}
}

// Start returns the offset of the first character of the line.
func (r LineRange) Start() int {
	return r.start
}

// End returns the offset of the last character of the line, which is its
// newline for every line but the last.
func (r LineRange) End() int {
	return r.end
}

// Contains returns true if offset falls inside the inclusive span.
func (r LineRange) Contains(offset int) bool {
	return offset >= r.start && offset <= r.end
}

// Equals returns true if both ranges cover the same span.
func (r LineRange) Equals(other LineRange) bool {
	return r.start == other.start && r.end == other.end
}

// String returns the range as "(start, end)".
func (r LineRange) String() string {
	return fmt.Sprintf("(%d, %d)", r.start, r.end)
}

// shift moves both offsets by delta, saturating at zero.
func (r *LineRange) shift(delta int) {
	r.start = max(r.start+delta, 0)
	r.end = max(r.end+delta, 0)
}

// shrink pulls the end offset back by one, saturating at zero.
func (r *LineRange) shrink() {
	if r.end > 0 {
		r.end--
	}
}
