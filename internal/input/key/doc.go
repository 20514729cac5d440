// Package key parses key specifications such as "alt+q" or "<C-q>" and
// matches them against terminal key events.
//
// Supported formats:
//   - Single character: "q", "Q"
//   - Key names: "Enter", "Escape", "Tab", "Backspace", "Delete"
//   - With modifiers: "Ctrl+Q", "Alt+q", "ctrl+alt+x"
//   - Vim-style: "<C-q>", "<A-q>", "<Esc>", "<CR>"
package key
