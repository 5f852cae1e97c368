// Package device holds the per-frame raw input snapshots produced by
// device pollers and consumed by the resolver.
//
// Pollers push events into a Snapshot before the frame's resolution pass;
// the snapshot is read-only during resolution; Clear resets edge state at
// end of frame. Nothing here blocks or performs I/O.
package device

import (
	"sort"

	"github.com/dshills/inputforge/internal/input/gamepad"
	"github.com/dshills/inputforge/internal/input/key"
	"github.com/dshills/inputforge/internal/input/mouse"
)

// KeyboardState is the keyboard's raw per-frame snapshot.
type KeyboardState struct {
	held         map[key.Key]bool
	justPressed  map[key.Key]bool
	justReleased map[key.Key]bool
	mods         key.Modifier
	typed        []rune
}

// NewKeyboardState creates an empty keyboard snapshot.
func NewKeyboardState() *KeyboardState {
	return &KeyboardState{
		held:         make(map[key.Key]bool),
		justPressed:  make(map[key.Key]bool),
		justReleased: make(map[key.Key]bool),
	}
}

// Press records a key going down.
func (k *KeyboardState) Press(kk key.Key) {
	if k.held[kk] {
		return // key repeat, not an edge
	}
	k.held[kk] = true
	k.justPressed[kk] = true
}

// Release records a key going up.
func (k *KeyboardState) Release(kk key.Key) {
	if !k.held[kk] {
		return
	}
	delete(k.held, kk)
	k.justReleased[kk] = true
}

// SetModifiers records the currently active modifier set.
func (k *KeyboardState) SetModifiers(mods key.Modifier) {
	k.mods = mods
}

// Type records a produced character for text routing.
func (k *KeyboardState) Type(r rune) {
	k.typed = append(k.typed, r)
}

// IsHeld returns true if the key is currently down.
func (k *KeyboardState) IsHeld(kk key.Key) bool {
	return k.held[kk]
}

// JustPressed returns true if the key went down this frame.
func (k *KeyboardState) JustPressed(kk key.Key) bool {
	return k.justPressed[kk]
}

// JustReleased returns true if the key went up this frame.
func (k *KeyboardState) JustReleased(kk key.Key) bool {
	return k.justReleased[kk]
}

// JustPressedKeys returns the keys pressed this frame in numeric order.
func (k *KeyboardState) JustPressedKeys() []key.Key {
	keys := make([]key.Key, 0, len(k.justPressed))
	for kk := range k.justPressed {
		keys = append(keys, kk)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Modifiers returns the currently active modifier set.
func (k *KeyboardState) Modifiers() key.Modifier {
	return k.mods
}

// Typed returns the characters produced this frame.
func (k *KeyboardState) Typed() []rune {
	return k.typed
}

// Clear resets edge state and typed characters. Held keys persist.
func (k *KeyboardState) Clear() {
	clear(k.justPressed)
	clear(k.justReleased)
	k.typed = k.typed[:0]
}

// MouseState is the mouse's raw per-frame snapshot. Axis values are
// deltas accumulated over the frame.
type MouseState struct {
	held         map[mouse.Button]bool
	justPressed  map[mouse.Button]bool
	justReleased map[mouse.Button]bool
	axes         map[mouse.Axis]float64
}

// NewMouseState creates an empty mouse snapshot.
func NewMouseState() *MouseState {
	return &MouseState{
		held:         make(map[mouse.Button]bool),
		justPressed:  make(map[mouse.Button]bool),
		justReleased: make(map[mouse.Button]bool),
		axes:         make(map[mouse.Axis]float64),
	}
}

// Press records a button going down.
func (m *MouseState) Press(b mouse.Button) {
	if m.held[b] {
		return
	}
	m.held[b] = true
	m.justPressed[b] = true
}

// Release records a button going up.
func (m *MouseState) Release(b mouse.Button) {
	if !m.held[b] {
		return
	}
	delete(m.held, b)
	m.justReleased[b] = true
}

// AddAxis accumulates movement on an axis for this frame.
func (m *MouseState) AddAxis(a mouse.Axis, delta float64) {
	m.axes[a] += delta
}

// IsHeld returns true if the button is currently down.
func (m *MouseState) IsHeld(b mouse.Button) bool {
	return m.held[b]
}

// JustPressed returns true if the button went down this frame.
func (m *MouseState) JustPressed(b mouse.Button) bool {
	return m.justPressed[b]
}

// JustPressedButtons returns the buttons pressed this frame in numeric order.
func (m *MouseState) JustPressedButtons() []mouse.Button {
	buttons := make([]mouse.Button, 0, len(m.justPressed))
	for b := range m.justPressed {
		buttons = append(buttons, b)
	}
	sort.Slice(buttons, func(i, j int) bool { return buttons[i] < buttons[j] })
	return buttons
}

// Axis returns the accumulated delta for an axis this frame.
func (m *MouseState) Axis(a mouse.Axis) float64 {
	return m.axes[a]
}

// Clear resets edge state and axis deltas. Held buttons persist.
func (m *MouseState) Clear() {
	clear(m.justPressed)
	clear(m.justReleased)
	clear(m.axes)
}

// GamepadState is one connected gamepad's raw per-frame snapshot. Axis
// values are absolute, already normalized and dead-zoned by the poller.
type GamepadState struct {
	held        map[gamepad.Button]bool
	justPressed map[gamepad.Button]bool
	axes        map[gamepad.Axis]float64
}

// NewGamepadState creates an empty gamepad snapshot.
func NewGamepadState() *GamepadState {
	return &GamepadState{
		held:        make(map[gamepad.Button]bool),
		justPressed: make(map[gamepad.Button]bool),
		axes:        make(map[gamepad.Axis]float64),
	}
}

// SetButton records a button's current state.
func (g *GamepadState) SetButton(b gamepad.Button, down bool) {
	if down && !g.held[b] {
		g.justPressed[b] = true
	}
	if down {
		g.held[b] = true
	} else {
		delete(g.held, b)
	}
}

// SetAxis records an axis's current normalized value.
func (g *GamepadState) SetAxis(a gamepad.Axis, v float64) {
	g.axes[a] = v
}

// IsHeld returns true if the button is currently down.
func (g *GamepadState) IsHeld(b gamepad.Button) bool {
	return g.held[b]
}

// JustPressed returns true if the button went down this frame.
func (g *GamepadState) JustPressed(b gamepad.Button) bool {
	return g.justPressed[b]
}

// Axis returns the current normalized value of an axis.
func (g *GamepadState) Axis(a gamepad.Axis) float64 {
	return g.axes[a]
}

// Clear resets edge state. Held buttons and axis positions persist.
func (g *GamepadState) Clear() {
	clear(g.justPressed)
}

// Snapshot aggregates all device snapshots for one frame.
type Snapshot struct {
	Keyboard *KeyboardState
	Mouse    *MouseState

	// gamepads by slot index, in connection order.
	gamepads map[int]*GamepadState
}

// NewSnapshot creates an empty snapshot with no gamepads connected.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Keyboard: NewKeyboardState(),
		Mouse:    NewMouseState(),
		gamepads: make(map[int]*GamepadState),
	}
}

// Gamepad returns the snapshot for a slot, creating it on first use.
func (s *Snapshot) Gamepad(slot int) *GamepadState {
	g, ok := s.gamepads[slot]
	if !ok {
		g = NewGamepadState()
		s.gamepads[slot] = g
	}
	return g
}

// DisconnectGamepad drops a slot's snapshot.
func (s *Snapshot) DisconnectGamepad(slot int) {
	delete(s.gamepads, slot)
}

// GamepadButtonHeld returns true if the button is down on any connected pad.
func (s *Snapshot) GamepadButtonHeld(b gamepad.Button) bool {
	for _, g := range s.gamepads {
		if g.IsHeld(b) {
			return true
		}
	}
	return false
}

// GamepadButtonJustPressed returns true if the button went down this frame
// on any connected pad.
func (s *Snapshot) GamepadButtonJustPressed(b gamepad.Button) bool {
	for _, g := range s.gamepads {
		if g.JustPressed(b) {
			return true
		}
	}
	return false
}

// GamepadAxis returns the largest-magnitude value of the axis across
// connected pads, so an idle second controller does not null out the first.
func (s *Snapshot) GamepadAxis(a gamepad.Axis) float64 {
	var best float64
	for _, g := range s.gamepads {
		v := g.Axis(a)
		if abs(v) > abs(best) {
			best = v
		}
	}
	return best
}

// Clear resets per-frame edge state on every device at end of frame.
func (s *Snapshot) Clear() {
	s.Keyboard.Clear()
	s.Mouse.Clear()
	for _, g := range s.gamepads {
		g.Clear()
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
