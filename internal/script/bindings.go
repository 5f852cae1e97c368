// Package script loads binding declarations from Lua. A bindings script
// is the moddable alternative to the JSON document: it runs in a
// restricted Lua state exposing only binding constructors and bind().
//
// Example script:
//
//	bind("Jump", key("Space"))
//	bind("Sprint", key("W", "shift"))
//	bind("Attack", mouse_button("Left"))
//	bind("LookX", mouse_axis("X"))
//	bind("MoveForward", pad_axis("LeftY", "-"))
//	bind("Pause", pad_button("Start"))
package script

import (
	"errors"
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/inputforge/internal/input/action"
	"github.com/dshills/inputforge/internal/input/binding"
	"github.com/dshills/inputforge/internal/input/gamepad"
	"github.com/dshills/inputforge/internal/input/inputmap"
	"github.com/dshills/inputforge/internal/input/key"
	"github.com/dshills/inputforge/internal/input/mouse"
)

// ErrScript indicates the bindings script failed to run or declared an
// invalid binding.
var ErrScript = errors.New("bindings script error")

// bindingTypeName is the metatable name for binding userdata.
const bindingTypeName = "inputforge.binding"

// LoadFile runs a bindings script from disk and returns the declared map.
func LoadFile(path string) (*inputmap.Map, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bindings script: %w", err)
	}
	return Load(string(src), path)
}

// Load runs bindings script source and returns the declared map. name is
// used in error messages.
func Load(src, name string) (*inputmap.Map, error) {
	// gopher-lua's LState is not goroutine-safe; this one is private to
	// the call and discarded afterward.
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	m := inputmap.New()
	var declErr error

	fail := func(format string, args ...any) int {
		if declErr == nil {
			declErr = fmt.Errorf(format, args...)
		}
		L.RaiseError(format, args...)
		return 0
	}

	newBinding := func(b binding.Binding) lua.LValue {
		ud := L.NewUserData()
		ud.Value = b
		L.SetMetatable(ud, L.GetTypeMetatable(bindingTypeName))
		return ud
	}

	L.NewTypeMetatable(bindingTypeName)

	L.SetGlobal("key", L.NewFunction(func(L *lua.LState) int {
		k := key.FromName(L.CheckString(1))
		if k == key.KeyNone {
			return fail("unknown key %q", L.CheckString(1))
		}
		var mods key.Modifier
		for i := 2; i <= L.GetTop(); i++ {
			mod := key.ModifierFromName(L.CheckString(i))
			if mod == key.ModNone {
				return fail("unknown modifier %q", L.CheckString(i))
			}
			mods = mods.With(mod)
		}
		L.Push(newBinding(binding.KeyWithModifiers(k, mods)))
		return 1
	}))

	L.SetGlobal("mouse_button", L.NewFunction(func(L *lua.LState) int {
		b := mouse.ButtonFromName(L.CheckString(1))
		if b == mouse.ButtonNone {
			return fail("unknown mouse button %q", L.CheckString(1))
		}
		var mods key.Modifier
		for i := 2; i <= L.GetTop(); i++ {
			mod := key.ModifierFromName(L.CheckString(i))
			if mod == key.ModNone {
				return fail("unknown modifier %q", L.CheckString(i))
			}
			mods = mods.With(mod)
		}
		L.Push(newBinding(binding.MouseButtonWithModifiers(b, mods)))
		return 1
	}))

	L.SetGlobal("mouse_axis", L.NewFunction(func(L *lua.LState) int {
		a := mouse.AxisFromName(L.CheckString(1))
		if a == mouse.AxisNone {
			return fail("unknown mouse axis %q", L.CheckString(1))
		}
		L.Push(newBinding(binding.MouseAxis(a)))
		return 1
	}))

	L.SetGlobal("pad_button", L.NewFunction(func(L *lua.LState) int {
		b := gamepad.ButtonFromName(L.CheckString(1))
		if b == gamepad.ButtonNone {
			return fail("unknown gamepad button %q", L.CheckString(1))
		}
		L.Push(newBinding(binding.GamepadButton(b)))
		return 1
	}))

	L.SetGlobal("pad_axis", L.NewFunction(func(L *lua.LState) int {
		a := gamepad.AxisFromName(L.CheckString(1))
		if a == gamepad.AxisNone {
			return fail("unknown gamepad axis %q", L.CheckString(1))
		}
		sign := gamepad.Positive
		if L.GetTop() >= 2 && L.CheckString(2) == "-" {
			sign = gamepad.Negative
		}
		L.Push(newBinding(binding.GamepadAxis(a, sign)))
		return 1
	}))

	L.SetGlobal("bind", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		a, ok := action.FromName(name)
		if !ok {
			return fail("unknown action %q", name)
		}
		for i := 2; i <= L.GetTop(); i++ {
			ud, ok := L.Get(i).(*lua.LUserData)
			if !ok {
				return fail("bind(%q): argument %d is not a binding", name, i)
			}
			b, ok := ud.Value.(binding.Binding)
			if !ok {
				return fail("bind(%q): argument %d is not a binding", name, i)
			}
			m.Bind(a, b)
		}
		return 0
	}))

	if err := L.DoString(src); err != nil {
		if declErr != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrScript, name, declErr)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrScript, name, err)
	}
	return m, nil
}
