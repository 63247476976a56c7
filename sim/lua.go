// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package sim

import (
	"github.com/db47h/alucheck"
	"github.com/pkg/errors"
	lua "github.com/yuin/gopher-lua"
)

// LuaModel is a Model scripted in Lua. The script must define a global
// function
//
//	eval(ui_in, uio_in) -> uo_out, uio_out
//
// called on every rising edge of clk while ena and rst_n are high. Both
// outputs are registered: they hold their value between edges and are cleared
// while rst_n is low.
//
// Since Lua 5.1 has no bitwise operators, the script environment provides
// band, bor, bxor, bnot, lshift and rshift on 8 bits values.
//
type LuaModel struct {
	L    *lua.LState
	eval lua.LValue

	prev   bool
	out    uint8
	status uint8
}

// NewLuaModel returns a LuaModel running the given script.
//
func NewLuaModel(src string) (*LuaModel, error) {
	return newLuaModel(func(L *lua.LState) error { return L.DoString(src) })
}

// LoadLuaModel returns a LuaModel running the script in the named file.
//
func LoadLuaModel(filename string) (*LuaModel, error) {
	m, err := newLuaModel(func(L *lua.LState) error { return L.DoFile(filename) })
	if err != nil {
		return nil, errors.Wrap(err, filename)
	}
	return m, nil
}

func newLuaModel(load func(*lua.LState) error) (*LuaModel, error) {
	L := lua.NewState()
	for name, fn := range bitLib {
		L.SetGlobal(name, L.NewFunction(fn))
	}
	if err := load(L); err != nil {
		L.Close()
		return nil, errors.Wrap(err, "failed to load model")
	}
	eval := L.GetGlobal("eval")
	if eval.Type() != lua.LTFunction {
		L.Close()
		return nil, errors.New("model does not define an eval function")
	}
	return &LuaModel{L: L, eval: eval}, nil
}

func bitOp2(f func(a, b int) int) lua.LGFunction {
	return func(L *lua.LState) int {
		L.Push(lua.LNumber(f(L.CheckInt(1), L.CheckInt(2)) & 0xFF))
		return 1
	}
}

var bitLib = map[string]lua.LGFunction{
	"band":   bitOp2(func(a, b int) int { return a & b }),
	"bor":    bitOp2(func(a, b int) int { return a | b }),
	"bxor":   bitOp2(func(a, b int) int { return a ^ b }),
	"lshift": bitOp2(func(a, b int) int { return a << uint(b) }),
	"rshift": bitOp2(func(a, b int) int { return (a & 0xFF) >> uint(b) }),
	"bnot": func(L *lua.LState) int {
		L.Push(lua.LNumber(^L.CheckInt(1) & 0xFF))
		return 1
	},
}

// Step implements Model.
//
func (m *LuaModel) Step(l *Lines) error {
	clk := l[alucheck.Clk] != 0
	rising := clk && !m.prev
	m.prev = clk
	switch {
	case l[alucheck.RstN] == 0:
		m.out, m.status = 0, 0
	case rising && l[alucheck.Ena] != 0:
		out, status, err := m.call(l[alucheck.UIIn], l[alucheck.UIOIn])
		if err != nil {
			return err
		}
		m.out, m.status = out, status
	}
	l[alucheck.UOOut], l[alucheck.UIOOut] = m.out, m.status
	return nil
}

func (m *LuaModel) call(ui, uio uint8) (out, status uint8, err error) {
	err = m.L.CallByParam(lua.P{Fn: m.eval, NRet: 2, Protect: true}, lua.LNumber(ui), lua.LNumber(uio))
	if err != nil {
		return 0, 0, errors.Wrap(err, "eval")
	}
	defer m.L.Pop(2)
	if out, err = byteValue(m.L.Get(-2)); err != nil {
		return 0, 0, errors.Wrap(err, "eval: uo_out")
	}
	if status, err = byteValue(m.L.Get(-1)); err != nil {
		return 0, 0, errors.Wrap(err, "eval: uio_out")
	}
	return out, status, nil
}

func byteValue(v lua.LValue) (uint8, error) {
	n, ok := v.(lua.LNumber)
	if !ok {
		return 0, errors.Errorf("got %s, expected a number", v.Type())
	}
	if n < 0 || n > 0xFF || n != lua.LNumber(int(n)) {
		return 0, errors.Errorf("value %v out of byte range", n)
	}
	return uint8(n), nil
}

// Close implements Model.
//
func (m *LuaModel) Close() error {
	m.L.Close()
	return nil
}
