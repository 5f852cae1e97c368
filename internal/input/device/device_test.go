package device

import (
	"testing"

	"github.com/dshills/inputforge/internal/input/gamepad"
	"github.com/dshills/inputforge/internal/input/key"
	"github.com/dshills/inputforge/internal/input/mouse"
)

func TestKeyboardEdges(t *testing.T) {
	kb := NewKeyboardState()

	kb.Press(key.KeyW)
	if !kb.IsHeld(key.KeyW) || !kb.JustPressed(key.KeyW) {
		t.Error("press not recorded")
	}

	// Repeat press while held is not a new edge.
	kb.Clear()
	kb.Press(key.KeyW)
	if kb.JustPressed(key.KeyW) {
		t.Error("repeat press reported as edge")
	}
	if !kb.IsHeld(key.KeyW) {
		t.Error("held state lost on repeat")
	}

	kb.Release(key.KeyW)
	if kb.IsHeld(key.KeyW) || !kb.JustReleased(key.KeyW) {
		t.Error("release not recorded")
	}

	// Releasing an up key is a no-op.
	kb.Clear()
	kb.Release(key.KeyW)
	if kb.JustReleased(key.KeyW) {
		t.Error("release of up key reported as edge")
	}
}

func TestKeyboardClearKeepsHeld(t *testing.T) {
	kb := NewKeyboardState()
	kb.Press(key.KeyA)
	kb.Type('a')
	kb.SetModifiers(key.ModShift)

	kb.Clear()

	if !kb.IsHeld(key.KeyA) {
		t.Error("Clear dropped held key")
	}
	if kb.JustPressed(key.KeyA) {
		t.Error("Clear kept just-pressed edge")
	}
	if len(kb.Typed()) != 0 {
		t.Error("Clear kept typed runes")
	}
	if kb.Modifiers() != key.ModShift {
		t.Error("Clear dropped modifier state")
	}
}

func TestKeyboardJustPressedOrder(t *testing.T) {
	kb := NewKeyboardState()
	kb.Press(key.KeyZ)
	kb.Press(key.KeyA)
	kb.Press(key.KeyM)

	keys := kb.JustPressedKeys()
	if len(keys) != 3 || keys[0] != key.KeyA || keys[1] != key.KeyM || keys[2] != key.KeyZ {
		t.Errorf("JustPressedKeys() = %v, want numeric order", keys)
	}
}

func TestMouseAxisAccumulation(t *testing.T) {
	m := NewMouseState()
	m.AddAxis(mouse.AxisX, 0.3)
	m.AddAxis(mouse.AxisX, 0.2)

	if got := m.Axis(mouse.AxisX); got != 0.5 {
		t.Errorf("Axis(X) = %v, want 0.5", got)
	}

	m.Clear()
	if got := m.Axis(mouse.AxisX); got != 0 {
		t.Errorf("Axis(X) after Clear = %v, want 0", got)
	}
}

func TestMouseButtonEdges(t *testing.T) {
	m := NewMouseState()
	m.Press(mouse.ButtonLeft)
	if !m.IsHeld(mouse.ButtonLeft) || !m.JustPressed(mouse.ButtonLeft) {
		t.Error("press not recorded")
	}

	m.Clear()
	if !m.IsHeld(mouse.ButtonLeft) {
		t.Error("Clear dropped held button")
	}
	if m.JustPressed(mouse.ButtonLeft) {
		t.Error("Clear kept edge")
	}
}

func TestGamepadAggregation(t *testing.T) {
	snap := NewSnapshot()

	snap.Gamepad(0).SetButton(gamepad.ButtonA, true)
	if !snap.GamepadButtonHeld(gamepad.ButtonA) {
		t.Error("button on pad 0 not visible through snapshot")
	}
	if snap.GamepadButtonHeld(gamepad.ButtonB) {
		t.Error("unpressed button reported held")
	}

	// Largest magnitude wins across pads.
	snap.Gamepad(0).SetAxis(gamepad.AxisLeftX, 0.2)
	snap.Gamepad(1).SetAxis(gamepad.AxisLeftX, -0.8)
	if got := snap.GamepadAxis(gamepad.AxisLeftX); got != -0.8 {
		t.Errorf("GamepadAxis = %v, want -0.8", got)
	}

	snap.DisconnectGamepad(1)
	if got := snap.GamepadAxis(gamepad.AxisLeftX); got != 0.2 {
		t.Errorf("GamepadAxis after disconnect = %v, want 0.2", got)
	}
}

func TestGamepadButtonEdge(t *testing.T) {
	g := NewGamepadState()
	g.SetButton(gamepad.ButtonA, true)
	if !g.JustPressed(gamepad.ButtonA) {
		t.Error("first press not an edge")
	}

	g.Clear()
	g.SetButton(gamepad.ButtonA, true)
	if g.JustPressed(gamepad.ButtonA) {
		t.Error("held button reported as new edge")
	}

	g.SetButton(gamepad.ButtonA, false)
	if g.IsHeld(gamepad.ButtonA) {
		t.Error("release not recorded")
	}
}

func TestSnapshotClear(t *testing.T) {
	snap := NewSnapshot()
	snap.Keyboard.Press(key.KeySpace)
	snap.Mouse.Press(mouse.ButtonLeft)
	snap.Mouse.AddAxis(mouse.AxisY, 1)
	snap.Gamepad(0).SetButton(gamepad.ButtonA, true)

	snap.Clear()

	if snap.Keyboard.JustPressed(key.KeySpace) {
		t.Error("keyboard edge survived Clear")
	}
	if snap.Mouse.Axis(mouse.AxisY) != 0 {
		t.Error("mouse delta survived Clear")
	}
	if snap.Gamepad(0).JustPressed(gamepad.ButtonA) {
		t.Error("gamepad edge survived Clear")
	}
	if !snap.Keyboard.IsHeld(key.KeySpace) || !snap.Mouse.IsHeld(mouse.ButtonLeft) || !snap.Gamepad(0).IsHeld(gamepad.ButtonA) {
		t.Error("held state lost on Clear")
	}
}
