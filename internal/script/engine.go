package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/dragstorm/internal/drag"
)

// Callback function names looked up in the script's global scope.
const (
	FnDragStart = "on_drag_start"
	FnDrag      = "on_drag"
	FnDragStop  = "on_drag_stop"
)

// Engine runs Lua-defined drag callbacks. A script defines any of the
// global functions on_drag_start, on_drag, and on_drag_stop; each
// receives the phase record as a table and vetoes the phase by returning
// false. Any other return, or no function at all, accepts.
//
// The underlying Lua state is not safe for concurrent use; an Engine
// belongs to a single event loop, which matches the synchronous drag
// pipeline.
type Engine struct {
	state  *lua.LState
	logger drag.Logger
}

// New creates an engine with an empty script environment.
func New() *Engine {
	return &Engine{
		state:  lua.NewState(),
		logger: nopLogger{},
	}
}

// SetLogger sets the logger used for script error diagnostics.
func (e *Engine) SetLogger(logger drag.Logger) {
	if logger == nil {
		logger = nopLogger{}
	}
	e.logger = logger
}

// Load executes a script file, installing its callback globals.
func (e *Engine) Load(path string) error {
	if err := e.state.DoFile(path); err != nil {
		return fmt.Errorf("loading drag script %s: %w", path, err)
	}
	return nil
}

// LoadString executes script source, installing its callback globals.
func (e *Engine) LoadString(src string) error {
	if err := e.state.DoString(src); err != nil {
		return fmt.Errorf("loading drag script: %w", err)
	}
	return nil
}

// Close releases the Lua state.
func (e *Engine) Close() {
	e.state.Close()
}

// Callbacks returns drag callbacks backed by the loaded script.
func (e *Engine) Callbacks() drag.Callbacks {
	return drag.Callbacks{
		OnStart: e.callback(FnDragStart),
		OnDrag:  e.callback(FnDrag),
		OnStop:  e.callback(FnDragStop),
	}
}

// callback wraps a global Lua function as a drag callback. Only an
// explicit false return vetoes; script errors are logged and accept so
// a broken script never freezes the draggable.
func (e *Engine) callback(name string) drag.Callback {
	return func(_ drag.PointerEvent, rec drag.Record) bool {
		fn, ok := e.state.GetGlobal(name).(*lua.LFunction)
		if !ok {
			return true
		}

		err := e.state.CallByParam(lua.P{
			Fn:      fn,
			NRet:    1,
			Protect: true,
		}, recordToTable(e.state, rec))
		if err != nil {
			e.logger.Warn("drag script %s failed: %v", name, err)
			return true
		}

		ret := e.state.Get(-1)
		e.state.Pop(1)
		return ret != lua.LFalse
	}
}

// recordToTable converts a drag record into a Lua table.
func recordToTable(L *lua.LState, rec drag.Record) *lua.LTable {
	tbl := L.NewTable()
	L.SetField(tbl, "node", lua.LString(rec.NodeID))
	L.SetField(tbl, "x", lua.LNumber(rec.X))
	L.SetField(tbl, "y", lua.LNumber(rec.Y))
	L.SetField(tbl, "delta_x", lua.LNumber(rec.DeltaX))
	L.SetField(tbl, "delta_y", lua.LNumber(rec.DeltaY))
	L.SetField(tbl, "last_x", lua.LNumber(rec.LastX))
	L.SetField(tbl, "last_y", lua.LNumber(rec.LastY))
	return tbl
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}
