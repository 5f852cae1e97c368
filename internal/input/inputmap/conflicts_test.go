package inputmap

import (
	"testing"

	"github.com/dshills/inputforge/internal/input/action"
	"github.com/dshills/inputforge/internal/input/binding"
	"github.com/dshills/inputforge/internal/input/key"
	"github.com/dshills/inputforge/internal/input/mouse"
)

func TestDetectConflictsCrossAction(t *testing.T) {
	m := New()
	m.SetBindings(action.Jump, []binding.Binding{binding.Key(key.KeySpace)})
	m.SetBindings(action.Sprint, []binding.Binding{binding.Key(key.KeySpace)})

	conflicts := m.DetectConflicts()
	if len(conflicts) != 1 {
		t.Fatalf("got %d conflicts, want 1", len(conflicts))
	}

	c := conflicts[0]
	if c.Binding != binding.Key(key.KeySpace) {
		t.Errorf("conflict binding = %v, want Space", c.Binding)
	}
	if len(c.Actions) != 2 || c.Actions[0] != action.Jump || c.Actions[1] != action.Sprint {
		t.Errorf("conflict actions = %v, want [Jump Sprint]", c.Actions)
	}
	if c.Count != 2 {
		t.Errorf("conflict count = %d, want 2", c.Count)
	}
	if got := c.String(); got != "Space: Jump, Sprint" {
		t.Errorf("String() = %q", got)
	}
}

func TestDetectConflictsSelfDuplicate(t *testing.T) {
	m := New()
	m.SetBindings(action.Jump, []binding.Binding{
		binding.Key(key.KeySpace),
		binding.Key(key.KeySpace),
	})

	conflicts := m.DetectConflicts()
	if len(conflicts) != 1 {
		t.Fatalf("got %d conflicts, want 1", len(conflicts))
	}

	c := conflicts[0]
	if len(c.Actions) != 1 || c.Actions[0] != action.Jump {
		t.Errorf("conflict actions = %v, want [Jump]", c.Actions)
	}
	if c.Count != 2 {
		t.Errorf("conflict count = %d, want 2", c.Count)
	}
	if got := c.String(); got != "Space: Jump (x2)" {
		t.Errorf("String() = %q", got)
	}
}

func TestDetectConflictsNone(t *testing.T) {
	m := New()
	m.Bind(action.Jump, binding.Key(key.KeySpace))
	m.Bind(action.Attack, binding.MouseButton(mouse.ButtonLeft))

	if conflicts := m.DetectConflicts(); len(conflicts) != 0 {
		t.Errorf("got conflicts %v, want none", conflicts)
	}
}

func TestDetectConflictsModifiedKeyIsDistinct(t *testing.T) {
	m := New()
	m.Bind(action.MoveForward, binding.Key(key.KeyW))
	m.Bind(action.Sprint, binding.KeyWithModifiers(key.KeyW, key.ModShift))

	if conflicts := m.DetectConflicts(); len(conflicts) != 0 {
		t.Errorf("modified key reported as conflicting with bare key: %v", conflicts)
	}
}

func TestDetectConflictsDeterministicOrder(t *testing.T) {
	m := New()
	m.Bind(action.Jump, binding.Key(key.KeySpace))
	m.Bind(action.Sprint, binding.Key(key.KeySpace))
	m.Bind(action.Attack, binding.Key(key.KeyEnter))
	m.Bind(action.Interact, binding.Key(key.KeyEnter))

	for i := 0; i < 10; i++ {
		conflicts := m.DetectConflicts()
		if len(conflicts) != 2 {
			t.Fatalf("got %d conflicts, want 2", len(conflicts))
		}
		// "Enter" sorts before "Space".
		if conflicts[0].Binding != binding.Key(key.KeyEnter) || conflicts[1].Binding != binding.Key(key.KeySpace) {
			t.Fatalf("iteration %d: unstable order %v, %v", i, conflicts[0].Binding, conflicts[1].Binding)
		}
	}
}
