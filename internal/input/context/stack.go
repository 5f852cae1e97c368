package context

import (
	"github.com/dshills/inputforge/internal/input/inputmap"
)

// CursorController applies a cursor mode to the window layer. Invoked
// only when the top-of-stack cursor mode actually changes.
type CursorController interface {
	ApplyCursorMode(mode CursorMode)
}

// NopCursor is a CursorController that does nothing, for headless use.
type NopCursor struct{}

// ApplyCursorMode implements CursorController.
func (NopCursor) ApplyCursorMode(CursorMode) {}

// Stack is an ordered stack of contexts, bottom to top.
//
// The stack is never empty: the base context supplied at construction can
// never be popped, so Active always returns a valid context. The stack
// exclusively owns every context it holds.
type Stack struct {
	contexts []*Context
	cursor   CursorController
}

// NewStack creates a stack holding the base context and applies its
// cursor mode through the controller. A nil controller is replaced with
// NopCursor.
func NewStack(base *Context, cursor CursorController) *Stack {
	if cursor == nil {
		cursor = NopCursor{}
	}
	s := &Stack{
		contexts: []*Context{base},
		cursor:   cursor,
	}
	cursor.ApplyCursorMode(base.Cursor)
	return s
}

// Push appends a context to the top of the stack, applying its cursor
// mode if it differs from the previous top's.
func (s *Stack) Push(ctx *Context) {
	prev := s.Active()
	s.contexts = append(s.contexts, ctx)
	if ctx.Cursor != prev.Cursor {
		s.cursor.ApplyCursorMode(ctx.Cursor)
	}
}

// Pop removes and returns the top context. Popping the base context is a
// no-op returning nil, never an error: the stack cannot empty. The new
// top's cursor mode is re-applied if it differs from the removed one.
func (s *Stack) Pop() *Context {
	if len(s.contexts) <= 1 {
		return nil
	}
	removed := s.contexts[len(s.contexts)-1]
	s.contexts = s.contexts[:len(s.contexts)-1]

	top := s.Active()
	if top.Cursor != removed.Cursor {
		s.cursor.ApplyCursorMode(top.Cursor)
	}
	return removed
}

// Active returns the top context. Always succeeds.
func (s *Stack) Active() *Context {
	return s.contexts[len(s.contexts)-1]
}

// Depth returns the number of contexts on the stack, always >= 1.
func (s *Stack) Depth() int {
	return len(s.contexts)
}

// Find returns the topmost context with the given name, or nil.
func (s *Stack) Find(name string) *Context {
	for i := len(s.contexts) - 1; i >= 0; i-- {
		if s.contexts[i].Name == name {
			return s.contexts[i]
		}
	}
	return nil
}

// ResolutionScope returns the input maps in scope this frame, top first.
//
// The top context's map is always included. Scanning downward, each
// further context's map is included until and including the first one
// whose ConsumesInput is set; everything below a consuming context is
// excluded. A consuming top therefore resolves alone, and a fully
// pass-through stack resolves every layer.
func (s *Stack) ResolutionScope() []*inputmap.Map {
	scope := make([]*inputmap.Map, 0, len(s.contexts))
	for i := len(s.contexts) - 1; i >= 0; i-- {
		ctx := s.contexts[i]
		scope = append(scope, ctx.Map)
		if ctx.ConsumesInput {
			break
		}
	}
	return scope
}
