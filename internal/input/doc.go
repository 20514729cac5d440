// Package input turns terminal events into edit intents.
//
// An edit intent is one of three mutations the buffer understands:
// insert a character, insert a newline, or delete the character before the
// cursor. Each intent is applied as a single Buffer call; the host repaints
// after every one.
//
// # Mapping
//
// The Translator applies the following rules to key events:
//
//   - Enter inserts a newline
//   - Backspace deletes before the cursor
//   - A rune typed with no modifier or with Shift inserts that rune
//   - Tab inserts a tab, or a configured number of spaces
//   - The configured quit key (Alt+q by default) requests exit
//
// Runes arriving between bracketed-paste markers are inserted as typed and
// never trigger quit. Everything else is ignored.
//
// # Usage
//
//	tr := input.NewTranslator(input.DefaultConfig())
//	res := tr.Translate(ev)
//	for _, in := range res.Intents {
//		in.Apply(buf)
//	}
package input
