// Package action defines semantic, device-independent input actions.
//
// The built-in set covers the engine's stock actions. Games register
// additional actions by name; every action is an opaque comparable handle
// usable as a map key, with a stable name for display and persistence.
package action

import (
	"fmt"
	"sort"
	"sync"
)

// Action is an opaque handle for a semantic input action.
type Action uint16

// Built-in actions.
const (
	// None represents no action.
	None Action = iota

	MoveForward
	MoveBackward
	MoveLeft
	MoveRight
	Jump
	Sprint
	Crouch
	Attack
	Interact
	Reload
	LookX
	LookY
	Zoom
	Pause
	ToggleInventory

	builtinMax // sentinel, keep last
)

var builtinNames = map[Action]string{
	None:            "None",
	MoveForward:     "MoveForward",
	MoveBackward:    "MoveBackward",
	MoveLeft:        "MoveLeft",
	MoveRight:       "MoveRight",
	Jump:            "Jump",
	Sprint:          "Sprint",
	Crouch:          "Crouch",
	Attack:          "Attack",
	Interact:        "Interact",
	Reload:          "Reload",
	LookX:           "LookX",
	LookY:           "LookY",
	Zoom:            "Zoom",
	Pause:           "Pause",
	ToggleInventory: "ToggleInventory",
}

// registry maps registered action names to handles and back. Built-ins are
// seeded at init; games extend it via Register.
var registry = struct {
	mu     sync.RWMutex
	byName map[string]Action
	names  map[Action]string
	next   Action
}{
	byName: func() map[string]Action {
		m := make(map[string]Action, len(builtinNames))
		for a, name := range builtinNames {
			m[name] = a
		}
		return m
	}(),
	names: func() map[Action]string {
		m := make(map[Action]string, len(builtinNames))
		for a, name := range builtinNames {
			m[a] = name
		}
		return m
	}(),
	next: builtinMax,
}

// String returns the action's registered name.
func (a Action) String() string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	if name, ok := registry.names[a]; ok {
		return name
	}
	return fmt.Sprintf("Action(%d)", uint16(a))
}

// IsValid returns true if the action is registered.
func (a Action) IsValid() bool {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	_, ok := registry.names[a]
	return ok && a != None
}

// Register returns the handle for name, allocating a new one if the name
// has not been seen before. Registering an existing name (built-ins
// included) returns its current handle.
func Register(name string) Action {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	if a, ok := registry.byName[name]; ok {
		return a
	}
	a := registry.next
	registry.next++
	registry.byName[name] = a
	registry.names[a] = name
	return a
}

// FromName returns the handle for a registered action name.
func FromName(name string) (Action, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	a, ok := registry.byName[name]
	return a, ok
}

// Names returns every registered action name in sorted order, excluding None.
func Names() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	names := make([]string, 0, len(registry.byName))
	for name, a := range registry.byName {
		if a == None {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
