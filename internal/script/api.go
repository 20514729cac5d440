package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/linedit/internal/input"
)

// installAPI registers the buffer globals.
func (e *Engine) installAPI() {
	funcs := map[string]lua.LGFunction{
		"insert":    e.luaInsert,
		"newline":   e.luaNewline,
		"backspace": e.luaBackspace,
		"insert_at": e.luaInsertAt,
		"remove_at": e.luaRemoveAt,
		"content":   e.luaContent,
		"text":      e.luaText,
		"cursor":    e.luaCursor,
		"line":      e.luaLine,
		"lines":     e.luaLines,
	}
	for name, fn := range funcs {
		e.L.SetGlobal(name, e.L.NewFunction(fn))
	}
}

// step counts one buffer operation and aborts the script past the limit.
func (e *Engine) step(L *lua.LState) {
	e.operations++
	if e.operationLimit > 0 && e.operations > e.operationLimit {
		e.limitHit = true
		L.RaiseError("%s", ErrOperationLimit.Error())
	}
}

// apply performs one intent as one counted operation and reports it to
// the intent hook.
func (e *Engine) apply(L *lua.LState, in input.Intent) {
	e.step(L)
	in = in.From(input.SourceScript)
	in.Apply(e.buf)
	if e.onIntent != nil {
		e.onIntent(in)
	}
}

// insert(s)
func (e *Engine) luaInsert(L *lua.LState) int {
	s := L.CheckString(1)
	for _, r := range s {
		e.apply(L, input.InsertChar(r))
	}
	return 0
}

// newline()
func (e *Engine) luaNewline(L *lua.LState) int {
	e.apply(L, input.InsertNewline())
	return 0
}

// backspace([n])
func (e *Engine) luaBackspace(L *lua.LState) int {
	n := L.OptInt(1, 1)
	for range max(n, 0) {
		e.apply(L, input.DeleteBackward())
	}
	return 0
}

// insert_at(pos, s)
func (e *Engine) luaInsertAt(L *lua.LState) int {
	pos := L.CheckInt(1)
	s := L.CheckString(2)

	// The first character moves the cursor to pos; the rest follow it.
	first := true
	for _, r := range s {
		if first {
			e.apply(L, input.InsertAt(pos, r))
			first = false
			continue
		}
		e.apply(L, input.InsertChar(r))
	}
	return 0
}

// remove_at(pos)
func (e *Engine) luaRemoveAt(L *lua.LState) int {
	e.apply(L, input.DeleteAt(L.CheckInt(1)))
	return 0
}

// content() -> string
func (e *Engine) luaContent(L *lua.LState) int {
	L.Push(lua.LString(e.buf.Content()))
	return 1
}

// text() -> string
func (e *Engine) luaText(L *lua.LState) int {
	L.Push(lua.LString(e.buf.Text()))
	return 1
}

// cursor() -> int
func (e *Engine) luaCursor(L *lua.LState) int {
	L.Push(lua.LNumber(e.buf.Cursor()))
	return 1
}

// line() -> int
func (e *Engine) luaLine(L *lua.LState) int {
	L.Push(lua.LNumber(e.buf.CurrentLine()))
	return 1
}

// lines() -> {{start=, finish=}, ...}
func (e *Engine) luaLines(L *lua.LState) int {
	tbl := L.NewTable()
	for _, lr := range e.buf.Lines() {
		row := L.NewTable()
		row.RawSetString("start", lua.LNumber(lr.Start()))
		row.RawSetString("finish", lua.LNumber(lr.End()))
		tbl.Append(row)
	}
	L.Push(tbl)
	return 1
}
