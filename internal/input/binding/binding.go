// Package binding defines the association of one physical input source
// with an action: a key, mouse button, mouse axis, gamepad button, or
// gamepad axis half, with optional required modifiers on digital sources.
package binding

import (
	"fmt"
	"strings"

	"github.com/dshills/inputforge/internal/input/gamepad"
	"github.com/dshills/inputforge/internal/input/key"
	"github.com/dshills/inputforge/internal/input/mouse"
)

// Source identifies the physical input category of a binding.
type Source uint8

const (
	// SourceNone represents an empty binding.
	SourceNone Source = iota

	// SourceKey is a keyboard key, optionally modifier-qualified.
	SourceKey

	// SourceMouseButton is a mouse button, optionally modifier-qualified.
	SourceMouseButton

	// SourceMouseAxis is a mouse movement or wheel axis.
	SourceMouseAxis

	// SourceGamepadButton is a gamepad button.
	SourceGamepadButton

	// SourceGamepadAxis is one signed half of a gamepad axis.
	SourceGamepadAxis
)

var sourceNames = map[Source]string{
	SourceNone:          "none",
	SourceKey:           "key",
	SourceMouseButton:   "mouse_button",
	SourceMouseAxis:     "mouse_axis",
	SourceGamepadButton: "gamepad_button",
	SourceGamepadAxis:   "gamepad_axis",
}

// String returns the wire name of the source tag.
func (s Source) String() string {
	if name, ok := sourceNames[s]; ok {
		return name
	}
	return fmt.Sprintf("source(%d)", uint8(s))
}

// SourceFromName returns the Source for a wire name.
func SourceFromName(name string) (Source, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range sourceNames {
		if n == name {
			return s, true
		}
	}
	return SourceNone, false
}

// Binding is a tagged variant over the physical input sources. Only the
// fields relevant to Source are set; unused fields stay zero so bindings
// compare with ==.
type Binding struct {
	Source Source

	// Key payload (SourceKey).
	Key key.Key

	// Mods are required modifiers for key and mouse-button bindings.
	// Extra held modifiers do not invalidate a match; missing ones do.
	Mods key.Modifier

	// MouseButton payload (SourceMouseButton).
	MouseButton mouse.Button

	// MouseAxis payload (SourceMouseAxis).
	MouseAxis mouse.Axis

	// GamepadButton payload (SourceGamepadButton).
	GamepadButton gamepad.Button

	// GamepadAxis payload (SourceGamepadAxis), with the half selected by Sign.
	GamepadAxis gamepad.Axis
	Sign        gamepad.Sign
}

// Key returns a binding for a plain keyboard key.
func Key(k key.Key) Binding {
	return Binding{Source: SourceKey, Key: k}
}

// KeyWithModifiers returns a binding for a modifier-qualified key.
func KeyWithModifiers(k key.Key, mods key.Modifier) Binding {
	return Binding{Source: SourceKey, Key: k, Mods: mods}
}

// MouseButton returns a binding for a mouse button.
func MouseButton(b mouse.Button) Binding {
	return Binding{Source: SourceMouseButton, MouseButton: b}
}

// MouseButtonWithModifiers returns a binding for a modifier-qualified
// mouse button.
func MouseButtonWithModifiers(b mouse.Button, mods key.Modifier) Binding {
	return Binding{Source: SourceMouseButton, MouseButton: b, Mods: mods}
}

// MouseAxis returns a binding for a mouse analog axis.
func MouseAxis(a mouse.Axis) Binding {
	return Binding{Source: SourceMouseAxis, MouseAxis: a}
}

// GamepadButton returns a binding for a gamepad button.
func GamepadButton(b gamepad.Button) Binding {
	return Binding{Source: SourceGamepadButton, GamepadButton: b}
}

// GamepadAxis returns a binding for one signed half of a gamepad axis.
func GamepadAxis(a gamepad.Axis, sign gamepad.Sign) Binding {
	return Binding{Source: SourceGamepadAxis, GamepadAxis: a, Sign: sign}
}

// IsDigital returns true for sources producing on/off values.
func (b Binding) IsDigital() bool {
	switch b.Source {
	case SourceKey, SourceMouseButton, SourceGamepadButton:
		return true
	}
	return false
}

// IsAnalog returns true for sources producing continuous values.
func (b Binding) IsAnalog() bool {
	switch b.Source {
	case SourceMouseAxis, SourceGamepadAxis:
		return true
	}
	return false
}

// IsKeyboard returns true if the binding reads the keyboard. Used by text
// routing to bypass keyboard bindings while a text field is focused.
func (b Binding) IsKeyboard() bool {
	return b.Source == SourceKey
}

// IsZero returns true for the empty binding.
func (b Binding) IsZero() bool {
	return b.Source == SourceNone
}

// Validate returns an error if the binding's payload does not match its
// source tag.
func (b Binding) Validate() error {
	switch b.Source {
	case SourceKey:
		if !b.Key.IsValid() {
			return fmt.Errorf("key binding: invalid key %d", uint16(b.Key))
		}
	case SourceMouseButton:
		if !b.MouseButton.IsValid() {
			return fmt.Errorf("mouse button binding: invalid button %d", uint8(b.MouseButton))
		}
	case SourceMouseAxis:
		if !b.MouseAxis.IsValid() {
			return fmt.Errorf("mouse axis binding: invalid axis %d", uint8(b.MouseAxis))
		}
	case SourceGamepadButton:
		if !b.GamepadButton.IsValid() {
			return fmt.Errorf("gamepad button binding: invalid button %d", uint8(b.GamepadButton))
		}
	case SourceGamepadAxis:
		if !b.GamepadAxis.IsValid() {
			return fmt.Errorf("gamepad axis binding: invalid axis %d", uint8(b.GamepadAxis))
		}
		if !b.Sign.IsValid() {
			return fmt.Errorf("gamepad axis binding: invalid sign %d", int8(b.Sign))
		}
	default:
		return fmt.Errorf("invalid binding source %d", uint8(b.Source))
	}
	return nil
}

// String returns a display representation like "Ctrl+Shift+S",
// "Mouse Left", "Mouse X", "Pad A", or "Pad LeftY-".
func (b Binding) String() string {
	switch b.Source {
	case SourceKey:
		if b.Mods.IsEmpty() {
			return b.Key.String()
		}
		return b.Mods.String() + "+" + b.Key.String()
	case SourceMouseButton:
		name := "Mouse " + b.MouseButton.String()
		if b.Mods.IsEmpty() {
			return name
		}
		return b.Mods.String() + "+" + name
	case SourceMouseAxis:
		return "Mouse " + b.MouseAxis.String()
	case SourceGamepadButton:
		return "Pad " + b.GamepadButton.String()
	case SourceGamepadAxis:
		return "Pad " + b.GamepadAxis.String() + b.Sign.String()
	}
	return "Unbound"
}
