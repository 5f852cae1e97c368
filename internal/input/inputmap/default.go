package inputmap

import (
	"github.com/dshills/inputforge/internal/input/action"
	"github.com/dshills/inputforge/internal/input/binding"
	"github.com/dshills/inputforge/internal/input/gamepad"
	"github.com/dshills/inputforge/internal/input/key"
	"github.com/dshills/inputforge/internal/input/mouse"
)

// Default returns the stock binding table used when no persisted
// configuration is available.
func Default() *Map {
	m := New()

	m.SetBindings(action.MoveForward, []binding.Binding{
		binding.Key(key.KeyW),
		binding.GamepadAxis(gamepad.AxisLeftY, gamepad.Negative),
	})
	m.SetBindings(action.MoveBackward, []binding.Binding{
		binding.Key(key.KeyS),
		binding.GamepadAxis(gamepad.AxisLeftY, gamepad.Positive),
	})
	m.SetBindings(action.MoveLeft, []binding.Binding{
		binding.Key(key.KeyA),
		binding.GamepadAxis(gamepad.AxisLeftX, gamepad.Negative),
	})
	m.SetBindings(action.MoveRight, []binding.Binding{
		binding.Key(key.KeyD),
		binding.GamepadAxis(gamepad.AxisLeftX, gamepad.Positive),
	})
	m.SetBindings(action.Jump, []binding.Binding{
		binding.Key(key.KeySpace),
		binding.GamepadButton(gamepad.ButtonA),
	})
	m.SetBindings(action.Sprint, []binding.Binding{
		binding.KeyWithModifiers(key.KeyW, key.ModShift),
		binding.GamepadButton(gamepad.ButtonLeftStick),
	})
	m.SetBindings(action.Crouch, []binding.Binding{
		binding.Key(key.KeyC),
		binding.GamepadButton(gamepad.ButtonB),
	})
	m.SetBindings(action.Attack, []binding.Binding{
		binding.MouseButton(mouse.ButtonLeft),
		binding.GamepadAxis(gamepad.AxisRightTrigger, gamepad.Positive),
	})
	m.SetBindings(action.Interact, []binding.Binding{
		binding.Key(key.KeyE),
		binding.GamepadButton(gamepad.ButtonX),
	})
	m.SetBindings(action.Reload, []binding.Binding{
		binding.Key(key.KeyR),
		binding.GamepadButton(gamepad.ButtonY),
	})
	m.SetBindings(action.LookX, []binding.Binding{
		binding.MouseAxis(mouse.AxisX),
		binding.GamepadAxis(gamepad.AxisRightX, gamepad.Positive),
	})
	m.SetBindings(action.LookY, []binding.Binding{
		binding.MouseAxis(mouse.AxisY),
		binding.GamepadAxis(gamepad.AxisRightY, gamepad.Positive),
	})
	m.SetBindings(action.Zoom, []binding.Binding{
		binding.MouseAxis(mouse.AxisWheel),
	})
	m.SetBindings(action.Pause, []binding.Binding{
		binding.Key(key.KeyEscape),
		binding.GamepadButton(gamepad.ButtonStart),
	})
	m.SetBindings(action.ToggleInventory, []binding.Binding{
		binding.Key(key.KeyTab),
		binding.GamepadButton(gamepad.ButtonBack),
	})

	return m
}
