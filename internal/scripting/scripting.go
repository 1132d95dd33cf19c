package scripting

import (
	"context"
	"sort"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/vimreg/internal/register"
)

// Runtime is an embedded Lua interpreter bound to a register store.
type Runtime struct {
	L     *lua.LState
	store *register.Store
}

// NewRuntime creates a Lua runtime with the `reg` module installed.
func NewRuntime(store *register.Store) *Runtime {
	r := &Runtime{
		L:     lua.NewState(),
		store: store,
	}
	r.installModule()
	return r
}

// Close releases the Lua state.
func (r *Runtime) Close() {
	r.L.Close()
}

// Run executes a Lua snippet.
func (r *Runtime) Run(script string) error {
	return r.L.DoString(script)
}

// RunFile executes a Lua file.
func (r *Runtime) RunFile(path string) error {
	return r.L.DoFile(path)
}

// installModule builds the global `reg` table.
func (r *Runtime) installModule() {
	mod := r.L.SetFuncs(r.L.NewTable(), map[string]lua.LGFunction{
		"get":    r.luaGet,
		"set":    r.luaSet,
		"append": r.luaAppend,
		"clear":  r.luaClear,
		"names":  r.luaNames,
		"select": r.luaSelect,
	})
	r.L.SetGlobal("reg", mod)
}

// checkName reads a register name argument.
func (r *Runtime) checkName(L *lua.LState, n int) rune {
	s := L.CheckString(n)
	runes := []rune(s)
	if len(runes) != 1 || !register.IsValidName(runes[0]) {
		L.ArgError(n, "invalid register name: "+s)
		return 0
	}
	return runes[0]
}

// luaGet returns a register's text and mode: reg.get("a") -> text, mode.
func (r *Runtime) luaGet(L *lua.LState) int {
	name := r.checkName(L, 1)

	e, err := r.store.Get(context.Background(), name, register.GetOptions{})
	if err != nil {
		L.RaiseError("reg.get: %v", err)
		return 0
	}

	text := ""
	switch c := e.Content.(type) {
	case register.Text:
		text = string(c)
	case register.MultiText:
		for i, part := range c {
			if i > 0 {
				text += "\n"
			}
			text += part
		}
	case register.Recording:
		L.RaiseError("reg.get: register %s holds a macro recording", string(name))
		return 0
	}

	L.Push(lua.LString(text))
	L.Push(lua.LString(e.Mode.String()))
	return 2
}

// luaSet writes a register: reg.set("a", "text" [, "linewise"]).
func (r *Runtime) luaSet(L *lua.LState) int {
	name := r.checkName(L, 1)
	text := L.CheckString(2)
	mode := register.ModeCharacterWise
	if L.GetTop() >= 3 {
		m, ok := parseMode(L.CheckString(3))
		if !ok {
			L.ArgError(3, "unknown register mode: "+L.CheckString(3))
			return 0
		}
		mode = m
	}

	err := r.store.Put(context.Background(), name, register.Text(text), mode, register.PutOptions{})
	if err != nil {
		L.RaiseError("reg.set: %v", err)
	}
	return 0
}

// luaAppend appends to a named register: reg.append("a", "more").
func (r *Runtime) luaAppend(L *lua.LState) int {
	name := r.checkName(L, 1)
	text := L.CheckString(2)

	if !register.IsNamedRegister(register.Normalize(name)) {
		L.ArgError(1, "append requires a named register a-z")
		return 0
	}

	upper := register.Normalize(name) - 'a' + 'A'
	err := r.store.Put(context.Background(), upper, register.Text(text), register.ModeCharacterWise, register.PutOptions{})
	if err != nil {
		L.RaiseError("reg.append: %v", err)
	}
	return 0
}

// luaClear empties a register: reg.clear("a").
func (r *Runtime) luaClear(L *lua.LState) int {
	name := r.checkName(L, 1)
	err := r.store.Put(context.Background(), name, register.Text(""), register.ModeCharacterWise, register.PutOptions{})
	if err != nil {
		L.RaiseError("reg.clear: %v", err)
	}
	return 0
}

// luaNames returns the names of all non-empty registers, sorted:
// reg.names() -> {"\"", "a", ...}.
func (r *Runtime) luaNames(L *lua.LState) int {
	var names []string
	for name, e := range r.store.Entries() {
		if t, ok := e.Content.(register.Text); ok && t == "" {
			continue
		}
		names = append(names, string(name))
	}
	sort.Strings(names)

	out := L.NewTable()
	for _, n := range names {
		out.Append(lua.LString(n))
	}
	L.Push(out)
	return 1
}

// luaSelect records a pending register selection: reg.select("a").
func (r *Runtime) luaSelect(L *lua.LState) int {
	name := r.checkName(L, 1)
	if err := r.store.Select(name); err != nil {
		L.RaiseError("reg.select: %v", err)
	}
	return 0
}

func parseMode(s string) (register.Mode, bool) {
	switch s {
	case "characterwise":
		return register.ModeCharacterWise, true
	case "linewise":
		return register.ModeLineWise, true
	case "blockwise":
		return register.ModeBlockWise, true
	default:
		return 0, false
	}
}
