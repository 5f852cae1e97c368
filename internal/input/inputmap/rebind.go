package inputmap

import (
	"github.com/google/uuid"

	"github.com/dshills/inputforge/internal/input/action"
	"github.com/dshills/inputforge/internal/input/binding"
)

// RebindPolicy controls how a captured binding is assigned.
type RebindPolicy uint8

const (
	// RebindAppend adds the captured binding to the action's list.
	RebindAppend RebindPolicy = iota

	// RebindReplace discards the action's list in favor of the capture.
	RebindReplace
)

// Capture is an armed rebind waiting for the next qualifying input event.
type Capture struct {
	// ID identifies this capture; a later StartRebind invalidates it.
	ID string

	// Action is the action being rebound.
	Action action.Action

	// Policy controls assignment on completion.
	Policy RebindPolicy
}

// StartRebind arms the map to capture the next qualifying input event for
// the given action. Only one rebind may be in flight; starting a new one
// cancels the earlier capture.
func (m *Map) StartRebind(a action.Action, policy RebindPolicy) *Capture {
	m.capture = &Capture{
		ID:     uuid.New().String(),
		Action: a,
		Policy: policy,
	}
	return m.capture
}

// PendingRebind returns the in-flight capture, or nil.
func (m *Map) PendingRebind() *Capture {
	return m.capture
}

// CompleteRebind assigns the captured binding to the armed action per the
// capture's policy and clears the capture. Returns the assigned binding
// and true, or the zero binding and false when no rebind is pending.
func (m *Map) CompleteRebind(captured binding.Binding) (binding.Binding, bool) {
	if m.capture == nil {
		return binding.Binding{}, false
	}
	armed := m.capture
	m.capture = nil

	switch armed.Policy {
	case RebindReplace:
		m.SetBindings(armed.Action, []binding.Binding{captured})
	default:
		m.Bind(armed.Action, captured)
	}
	return captured, true
}

// CancelRebind clears the in-flight capture without assigning anything.
// Safe to call when no rebind is pending.
func (m *Map) CancelRebind() {
	m.capture = nil
}
