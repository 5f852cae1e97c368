// Package context layers named binding contexts into a stack that
// decides, each frame, which input maps resolve and what cursor and text
// routing applies.
package context

import (
	"fmt"

	"github.com/dshills/inputforge/internal/input/inputmap"
)

// CursorMode controls pointer behavior while a context is on top.
type CursorMode uint8

const (
	// CursorCaptured grabs and hides the pointer for camera-style input.
	CursorCaptured CursorMode = iota

	// CursorFree releases the pointer for menu-style input.
	CursorFree
)

// String returns the mode name.
func (m CursorMode) String() string {
	switch m {
	case CursorCaptured:
		return "captured"
	case CursorFree:
		return "free"
	default:
		return fmt.Sprintf("cursor(%d)", uint8(m))
	}
}

// Context bundles one layer of input behavior: a binding map plus the
// routing flags that apply while it is on the stack. Contexts are plain
// data; the stack owns them once pushed.
type Context struct {
	// Name identifies the context within a stack, for lookup and debugging.
	Name string

	// Map is the context's binding table. Rebind operations mutate it in
	// place; everything else treats it as read-only.
	Map *inputmap.Map

	// Cursor is applied whenever this context is on top of the stack.
	Cursor CursorMode

	// ConsumesInput blocks contexts beneath this one from resolving.
	ConsumesInput bool

	// TextInput routes keyboard input to text entry instead of
	// resolution while this context is on top.
	TextInput bool
}

// New creates a context with the given name and map and default flags
// (captured cursor, pass-through, no text input).
func New(name string, m *inputmap.Map) *Context {
	return &Context{
		Name: name,
		Map:  m,
	}
}

// WithCursor sets the cursor mode.
func (c *Context) WithCursor(mode CursorMode) *Context {
	c.Cursor = mode
	return c
}

// Consuming marks the context as blocking the layers beneath it.
func (c *Context) Consuming() *Context {
	c.ConsumesInput = true
	return c
}

// WithTextInput marks the context as routing keyboard input to text entry.
func (c *Context) WithTextInput() *Context {
	c.TextInput = true
	return c
}
