package script

import (
	"fmt"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// openSafeLibraries opens only libraries without host access.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	// io, os, debug and package stay closed.
}

// installSandbox removes loaders and redirects print.
func (e *Engine) installSandbox() {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		e.L.SetGlobal(name, lua.LNil)
	}

	e.L.SetGlobal("print", e.L.NewFunction(func(L *lua.LState) int {
		n := L.GetTop()
		parts := make([]string, 0, n)
		for i := 1; i <= n; i++ {
			parts = append(parts, L.ToStringMeta(L.Get(i)).String())
		}
		fmt.Fprintln(e.out, strings.Join(parts, "\t"))
		return 0
	}))
}
