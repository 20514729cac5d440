// Package script drives a buffer from a Lua script.
//
// Scripts run in a sandboxed gopher-lua state with only the base, table,
// string and math libraries. The following globals operate on the buffer:
//
//	insert(s)          insert each character of s at the cursor
//	newline()          insert a line terminator at the cursor
//	backspace([n])     delete n characters before the cursor (default 1)
//	insert_at(pos, s)  move the cursor to pos and insert s there
//	remove_at(pos)     delete the character at pos, leaving the cursor there
//	content()          the rendered content, lines joined by CRLF
//	text()             the raw content
//	cursor()           the cursor offset
//	line()             the current line index
//	lines()            an array of {start, finish} line ranges
//
// Offsets are zero-based code point offsets. Each character is one buffer
// mutation, applied in order.
//
// Every buffer operation counts against the operation limit. Plain Lua
// computation does not; only the timeout bounds it. A script that exceeds
// either limit is aborted with an Error.
package script
