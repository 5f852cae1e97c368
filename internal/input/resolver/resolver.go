// Package resolver computes per-frame action state from raw device
// snapshots and the input maps currently in scope.
//
// Resolve is a pure function of its inputs: it retains no state, never
// fails, and resolves unknown or unbound actions to zero. Digital
// bindings combine via maximum (OR semantics), the digital result and
// each analog value are summed, and the total is clamped to [-1, 1].
package resolver

import (
	"math"

	"github.com/dshills/inputforge/internal/input/action"
	"github.com/dshills/inputforge/internal/input/binding"
	"github.com/dshills/inputforge/internal/input/device"
	"github.com/dshills/inputforge/internal/input/inputmap"
)

// activationThreshold is the magnitude above which an action is active.
const activationThreshold = 0.001

// record is one action's resolved state for a frame.
type record struct {
	value           float64
	active          bool
	justActivated   bool
	justDeactivated bool
}

// State is the resolved action state for one frame. It is recomputed in
// full every frame and never partially mutated. The zero-value State
// reports every action as zero and inactive.
type State struct {
	records map[action.Action]record
}

// NewState creates an empty state, useful as the first frame's previous.
func NewState() *State {
	return &State{records: make(map[action.Action]record)}
}

// Value returns the resolved value for an action in [-1, 1].
func (s *State) Value(a action.Action) float64 {
	if s == nil {
		return 0
	}
	return s.records[a].value
}

// IsActive returns true if the action's magnitude exceeds the activation
// threshold this frame.
func (s *State) IsActive(a action.Action) bool {
	if s == nil {
		return false
	}
	return s.records[a].active
}

// JustActivated returns true on the frame an action transitions from
// inactive to active.
func (s *State) JustActivated(a action.Action) bool {
	if s == nil {
		return false
	}
	return s.records[a].justActivated
}

// JustDeactivated returns true on the frame an action transitions from
// active to inactive.
func (s *State) JustDeactivated(a action.Action) bool {
	if s == nil {
		return false
	}
	return s.records[a].justDeactivated
}

// Actions returns every action with a record this frame.
func (s *State) Actions() []action.Action {
	if s == nil {
		return nil
	}
	actions := make([]action.Action, 0, len(s.records))
	for a := range s.records {
		actions = append(actions, a)
	}
	return actions
}

// Options modifies a resolution pass.
type Options struct {
	// SkipKeyboard bypasses keyboard-origin bindings, used while the
	// active context routes keys to text input. Mouse and gamepad
	// bindings resolve normally.
	SkipKeyboard bool

	// Suppress excludes bindings equal to any listed value, used to keep
	// a rebind-captured event out of resolution for its frame.
	Suppress []binding.Binding
}

// Resolve computes the action state for one frame.
//
// scope is the ordered input maps in resolution scope, top of the context
// stack first. prev is the previous frame's state for edge detection; nil
// is treated as all-inactive.
func Resolve(scope []*inputmap.Map, snap *device.Snapshot, prev *State, opts Options) *State {
	state := &State{records: make(map[action.Action]record)}

	for _, m := range scope {
		for _, a := range m.Actions() {
			if _, done := state.records[a]; done {
				continue
			}
			value := resolveAction(scope, a, snap, opts)
			active := math.Abs(value) > activationThreshold
			wasActive := prev.IsActive(a)
			state.records[a] = record{
				value:           value,
				active:          active,
				justActivated:   active && !wasActive,
				justDeactivated: !active && wasActive,
			}
		}
	}

	// Actions active last frame but no longer in scope (a consuming
	// context pushed over them) still get their deactivation edge.
	if prev != nil {
		for a, r := range prev.records {
			if !r.active {
				continue
			}
			if _, done := state.records[a]; done {
				continue
			}
			state.records[a] = record{justDeactivated: true}
		}
	}

	return state
}

// resolveAction merges every in-scope binding for one action.
func resolveAction(scope []*inputmap.Map, a action.Action, snap *device.Snapshot, opts Options) float64 {
	var digital float64
	var analog float64

	for _, m := range scope {
		for _, b := range m.BindingsFor(a) {
			if opts.SkipKeyboard && b.IsKeyboard() {
				continue
			}
			if suppressed(b, opts.Suppress) {
				continue
			}
			v := bindingValue(b, snap)
			if b.IsDigital() {
				// OR semantics: simultaneous digital sources cap at 1.
				digital = math.Max(digital, v)
			} else {
				analog += v
			}
		}
	}

	return clamp(digital+analog, -1, 1)
}

// bindingValue reads one binding's raw value from the matching device.
func bindingValue(b binding.Binding, snap *device.Snapshot) float64 {
	switch b.Source {
	case binding.SourceKey:
		if snap.Keyboard.IsHeld(b.Key) && modifiersSatisfied(b, snap) {
			return 1
		}
	case binding.SourceMouseButton:
		if snap.Mouse.IsHeld(b.MouseButton) && modifiersSatisfied(b, snap) {
			return 1
		}
	case binding.SourceMouseAxis:
		return snap.Mouse.Axis(b.MouseAxis)
	case binding.SourceGamepadButton:
		if snap.GamepadButtonHeld(b.GamepadButton) {
			return 1
		}
	case binding.SourceGamepadAxis:
		// The sign selects the axis direction that drives the action
		// positive; the device value is already dead-zoned.
		return snap.GamepadAxis(b.GamepadAxis) * float64(b.Sign)
	}
	return 0
}

// modifiersSatisfied checks that every required modifier is held. Extra
// held modifiers do not invalidate the match.
func modifiersSatisfied(b binding.Binding, snap *device.Snapshot) bool {
	return snap.Keyboard.Modifiers().HasAll(b.Mods)
}

func suppressed(b binding.Binding, suppress []binding.Binding) bool {
	for _, s := range suppress {
		if b == s {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
