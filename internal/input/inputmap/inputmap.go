package inputmap

import (
	"sort"

	"github.com/dshills/inputforge/internal/input/action"
	"github.com/dshills/inputforge/internal/input/binding"
)

// Map associates actions with ordered binding lists.
type Map struct {
	bindings map[action.Action][]binding.Binding

	// capture is the in-flight rebind, nil when none is pending.
	capture *Capture
}

// New creates an empty map.
func New() *Map {
	return &Map{
		bindings: make(map[action.Action][]binding.Binding),
	}
}

// BindingsFor returns the ordered binding list for an action. The result
// is a copy; it is empty (never nil-panicking) for unbound actions.
func (m *Map) BindingsFor(a action.Action) []binding.Binding {
	list := m.bindings[a]
	out := make([]binding.Binding, len(list))
	copy(out, list)
	return out
}

// SetBindings replaces the full binding list for an action. No validation
// is performed; conflicts are advisory and reported by DetectConflicts.
// An empty list marks the action unbound but keeps it in the map.
func (m *Map) SetBindings(a action.Action, list []binding.Binding) {
	copied := make([]binding.Binding, len(list))
	copy(copied, list)
	m.bindings[a] = copied
}

// Bind appends one binding to an action's list.
func (m *Map) Bind(a action.Action, b binding.Binding) {
	m.bindings[a] = append(m.bindings[a], b)
}

// Unbind removes the first occurrence of a binding from an action's list.
// Returns true if a binding was removed.
func (m *Map) Unbind(a action.Action, b binding.Binding) bool {
	list := m.bindings[a]
	for i, have := range list {
		if have == b {
			m.bindings[a] = append(list[:i], list[i+1:]...)
			return true
		}
	}
	return false
}

// Remove drops an action from the map entirely.
func (m *Map) Remove(a action.Action) {
	delete(m.bindings, a)
}

// Actions returns every action present in the map, sorted by name for
// deterministic iteration. Unbound (empty-list) actions are included.
func (m *Map) Actions() []action.Action {
	actions := make([]action.Action, 0, len(m.bindings))
	for a := range m.bindings {
		actions = append(actions, a)
	}
	sort.Slice(actions, func(i, j int) bool {
		return actions[i].String() < actions[j].String()
	})
	return actions
}

// Len returns the number of actions present in the map.
func (m *Map) Len() int {
	return len(m.bindings)
}

// Clone creates a deep copy of the map. The rebind capture is not copied.
func (m *Map) Clone() *Map {
	clone := New()
	for a, list := range m.bindings {
		copied := make([]binding.Binding, len(list))
		copy(copied, list)
		clone.bindings[a] = copied
	}
	return clone
}

// Equal reports whether two maps have the same actions with the same
// binding lists in the same order.
func (m *Map) Equal(other *Map) bool {
	if other == nil || len(m.bindings) != len(other.bindings) {
		return false
	}
	for a, list := range m.bindings {
		otherList, ok := other.bindings[a]
		if !ok || len(list) != len(otherList) {
			return false
		}
		for i, b := range list {
			if b != otherList[i] {
				return false
			}
		}
	}
	return true
}
