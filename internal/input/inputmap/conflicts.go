package inputmap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/inputforge/internal/input/action"
	"github.com/dshills/inputforge/internal/input/binding"
)

// Conflict reports one binding value claimed more than once: by two or
// more distinct actions, by one action listing it twice, or both.
//
// Actions holds the distinct actions involved, sorted by name. Count is
// the total number of occurrences across all lists, so a self-duplicate
// shows as len(Actions) == 1 with Count > 1, distinguishable from a
// cross-action conflict where len(Actions) > 1.
type Conflict struct {
	Binding binding.Binding
	Actions []action.Action
	Count   int
}

// String returns a display line like
// "Space: Jump, Sprint" or "Space: Jump (x2)".
func (c Conflict) String() string {
	names := make([]string, len(c.Actions))
	for i, a := range c.Actions {
		names[i] = a.String()
	}
	s := c.Binding.String() + ": " + strings.Join(names, ", ")
	if c.Count > len(c.Actions) {
		s += fmt.Sprintf(" (x%d)", c.Count)
	}
	return s
}

// DetectConflicts reports every binding value that appears more than once
// in the map. Output order is deterministic: conflicts sorted by binding
// display string, actions within each conflict sorted by name. Conflicts
// are advisory; the map remains fully usable while they exist.
func (m *Map) DetectConflicts() []Conflict {
	type usage struct {
		actions map[action.Action]bool
		count   int
	}
	seen := make(map[binding.Binding]*usage)

	for a, list := range m.bindings {
		for _, b := range list {
			u, ok := seen[b]
			if !ok {
				u = &usage{actions: make(map[action.Action]bool)}
				seen[b] = u
			}
			u.actions[a] = true
			u.count++
		}
	}

	conflicts := make([]Conflict, 0)
	for b, u := range seen {
		if u.count < 2 {
			continue
		}
		actions := make([]action.Action, 0, len(u.actions))
		for a := range u.actions {
			actions = append(actions, a)
		}
		sort.Slice(actions, func(i, j int) bool {
			return actions[i].String() < actions[j].String()
		})
		conflicts = append(conflicts, Conflict{
			Binding: b,
			Actions: actions,
			Count:   u.count,
		})
	}

	sort.Slice(conflicts, func(i, j int) bool {
		return conflicts[i].Binding.String() < conflicts[j].Binding.String()
	})
	return conflicts
}
