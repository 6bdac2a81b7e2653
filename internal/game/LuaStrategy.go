package game

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	lua "github.com/yuin/gopher-lua"
)

const luaEntryPoint = "nextHeading"

// ExampleLuaStrategy chases the food along the x axis first, then y.
const ExampleLuaStrategy = `
function nextHeading(state)
	if state.head.x ~= state.food.x then
		if state.head.x < state.food.x then return "RIGHT" end
		return "LEFT"
	end
	if state.head.y < state.food.y then return "DOWN" end
	if state.head.y > state.food.y then return "UP" end
	return nil
end
`

// LuaStrategy runs a user supplied script. The Lua state is not safe for
// concurrent use; each session needs its own strategy.
type LuaStrategy struct {
	Name  string
	state *lua.LState
}

func LoadLuaStrategy(path string) (*LuaStrategy, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read strategy %s: %w", path, err)
	}
	return NewLuaStrategy(path, string(source))
}

func NewLuaStrategy(name, source string) (*LuaStrategy, error) {
	luaState := lua.NewState()
	if err := luaState.DoString(source); err != nil {
		luaState.Close()
		return nil, fmt.Errorf("could not parse lua strategy %s: %w", name, err)
	}
	if luaState.GetGlobal(luaEntryPoint).Type() != lua.LTFunction {
		luaState.Close()
		return nil, fmt.Errorf("lua strategy %s does not define %s(state)", name, luaEntryPoint)
	}

	return &LuaStrategy{Name: name, state: luaState}, nil
}

func (s *LuaStrategy) Close() {
	s.state.Close()
}

func (s *LuaStrategy) NextHeading(view Snapshot) (Heading, bool) {
	h, ok, err := s.call(view)
	if err != nil {
		log.Warn("Lua strategy failed", "strategy", s.Name, "error", err)
		return Up, false
	}
	return h, ok
}

func (s *LuaStrategy) call(view Snapshot) (Heading, bool, error) {
	L := s.state
	L.Push(L.GetGlobal(luaEntryPoint))
	L.Push(s.stateTable(view))
	if err := L.PCall(1, 1, nil); err != nil {
		return Up, false, fmt.Errorf("could not execute lua strategy: %w", err)
	}

	ret := L.Get(-1)
	L.Pop(1)

	switch ret.Type() {
	case lua.LTNil:
		return Up, false, nil
	case lua.LTString:
		h, err := ParseHeading(lua.LVAsString(ret))
		if err != nil {
			return Up, false, err
		}
		return h, true, nil
	}
	return Up, false, errors.New("lua return value was type " + ret.Type().String() + ", expected string")
}

func (s *LuaStrategy) stateTable(view Snapshot) *lua.LTable {
	L := s.state
	tbl := L.NewTable()
	tbl.RawSetString("head", cellTable(L, view.Head))
	tbl.RawSetString("food", cellTable(L, view.Food))
	tbl.RawSetString("direction", lua.LString(view.Direction.String()))
	tbl.RawSetString("width", lua.LNumber(view.Grid.Width))
	tbl.RawSetString("height", lua.LNumber(view.Grid.Height))

	body := L.NewTable()
	for _, c := range view.Body {
		body.Append(cellTable(L, c))
	}
	tbl.RawSetString("body", body)
	return tbl
}

func cellTable(L *lua.LState, c Cell) *lua.LTable {
	t := L.NewTable()
	t.RawSetString("x", lua.LNumber(c.X))
	t.RawSetString("y", lua.LNumber(c.Y))
	return t
}
