package input

import (
	"fmt"

	"github.com/dshills/linedit/internal/engine/buffer"
)

// Kind identifies an edit intent.
type Kind uint8

const (
	// KindInsertChar inserts Intent.Char at the cursor.
	KindInsertChar Kind = iota
	// KindInsertNewline inserts a line terminator at the cursor.
	KindInsertNewline
	// KindDeleteBackward deletes the character before the cursor.
	KindDeleteBackward
	// KindInsertAt inserts Intent.Char at Intent.Pos.
	KindInsertAt
	// KindDeleteAt deletes the character at Intent.Pos.
	KindDeleteAt
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindInsertChar:
		return "insert"
	case KindInsertNewline:
		return "newline"
	case KindDeleteBackward:
		return "backspace"
	case KindInsertAt:
		return "insert_at"
	case KindDeleteAt:
		return "remove_at"
	default:
		return "unknown"
	}
}

// Source indicates the origin of an intent.
type Source uint8

const (
	// SourceKeyboard indicates the intent came from a key press.
	SourceKeyboard Source = iota
	// SourcePaste indicates the intent came from bracketed paste.
	SourcePaste
	// SourceScript indicates the intent came from a script.
	SourceScript
)

// String returns a string representation of the source.
func (s Source) String() string {
	switch s {
	case SourceKeyboard:
		return "keyboard"
	case SourcePaste:
		return "paste"
	case SourceScript:
		return "script"
	default:
		return "unknown"
	}
}

// Intent is a single edit to apply to a buffer. Pos is used only by the
// positional kinds.
type Intent struct {
	Kind   Kind
	Char   rune
	Pos    int
	Source Source
}

// InsertChar returns an intent inserting r. A newline rune becomes an
// InsertNewline intent.
func InsertChar(r rune) Intent {
	if r == buffer.Newline {
		return InsertNewline()
	}
	return Intent{Kind: KindInsertChar, Char: r}
}

// InsertNewline returns an intent inserting a line terminator.
func InsertNewline() Intent {
	return Intent{Kind: KindInsertNewline, Char: buffer.Newline}
}

// DeleteBackward returns an intent deleting the character before the cursor.
func DeleteBackward() Intent {
	return Intent{Kind: KindDeleteBackward}
}

// InsertAt returns an intent inserting r at offset pos. Newlines keep
// this kind; the buffer splits the line itself.
func InsertAt(pos int, r rune) Intent {
	return Intent{Kind: KindInsertAt, Char: r, Pos: pos}
}

// DeleteAt returns an intent deleting the character at offset pos.
func DeleteAt(pos int) Intent {
	return Intent{Kind: KindDeleteAt, Pos: pos}
}

// From returns a copy of the intent tagged with src.
func (i Intent) From(src Source) Intent {
	i.Source = src
	return i
}

// Apply performs the intent as one buffer mutation.
func (i Intent) Apply(b *buffer.Buffer) {
	switch i.Kind {
	case KindInsertChar:
		b.Insert(i.Char)
	case KindInsertNewline:
		b.Insert(buffer.Newline)
	case KindDeleteBackward:
		b.Remove()
	case KindInsertAt:
		b.InsertAt(i.Pos, i.Char)
	case KindDeleteAt:
		b.RemoveAt(i.Pos)
	}
}

// String returns a human-readable representation of the intent.
func (i Intent) String() string {
	switch i.Kind {
	case KindInsertChar:
		return fmt.Sprintf("insert(%q)", i.Char)
	case KindInsertAt:
		return fmt.Sprintf("insert_at(%d, %q)", i.Pos, i.Char)
	case KindDeleteAt:
		return fmt.Sprintf("remove_at(%d)", i.Pos)
	}
	return i.Kind.String()
}
