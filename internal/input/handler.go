package input

import (
	"github.com/dshills/inputforge/internal/input/action"
	"github.com/dshills/inputforge/internal/input/binding"
	"github.com/dshills/inputforge/internal/input/context"
	"github.com/dshills/inputforge/internal/input/device"
	"github.com/dshills/inputforge/internal/input/gamepad"
	"github.com/dshills/inputforge/internal/input/inputmap"
	"github.com/dshills/inputforge/internal/input/resolver"
)

// TextSink receives raw characters while the active context routes
// keyboard input to text entry. The core forwards them verbatim.
type TextSink interface {
	HandleText(r rune)
}

// Handler drives one frame of the input core.
type Handler struct {
	stack *context.Stack
	snap  *device.Snapshot
	prev  *resolver.State
	text  TextSink

	// captured is a binding captured for rebind this frame, applied to
	// the map at EndFrame so resolution never observes a mid-frame edit.
	captured *binding.Binding
}

// Option configures a Handler.
type Option func(*Handler)

// WithTextSink sets the collaborator receiving text-routed characters.
func WithTextSink(sink TextSink) Option {
	return func(h *Handler) {
		h.text = sink
	}
}

// NewHandler creates a handler over the given stack and snapshot.
func NewHandler(stack *context.Stack, snap *device.Snapshot, opts ...Option) *Handler {
	h := &Handler{
		stack: stack,
		snap:  snap,
		prev:  resolver.NewState(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Stack returns the context stack.
func (h *Handler) Stack() *context.Stack {
	return h.stack
}

// Snapshot returns the device snapshot fed by the pollers.
func (h *Handler) Snapshot() *device.Snapshot {
	return h.snap
}

// State returns the most recently resolved action state.
func (h *Handler) State() *resolver.State {
	return h.prev
}

// StartRebind arms a rebind capture on the active context's map. Call
// between frames; a later call before completion cancels the earlier one.
func (h *Handler) StartRebind(a action.Action, policy inputmap.RebindPolicy) *inputmap.Capture {
	h.captured = nil
	return h.stack.Active().Map.StartRebind(a, policy)
}

// CancelRebind clears any pending capture without assigning anything.
func (h *Handler) CancelRebind() {
	h.captured = nil
	h.stack.Active().Map.CancelRebind()
}

// Frame resolves the action state for the current snapshot.
//
// While a rebind is pending, the first qualifying press this frame is
// intercepted: it is withheld from resolution and assigned to the armed
// action at EndFrame. While the active context has text input set, typed
// characters are forwarded to the text sink and keyboard bindings are
// bypassed; mouse and gamepad bindings still resolve.
func (h *Handler) Frame() *resolver.State {
	top := h.stack.Active()
	var opts resolver.Options

	if top.Map.PendingRebind() != nil && h.captured == nil {
		if b, ok := h.captureBinding(); ok {
			h.captured = &b
		}
	}
	if h.captured != nil {
		opts.Suppress = append(opts.Suppress, *h.captured)
	}

	if top.TextInput {
		opts.SkipKeyboard = true
		if h.text != nil {
			for _, r := range h.snap.Keyboard.Typed() {
				h.text.HandleText(r)
			}
		}
	}

	state := resolver.Resolve(h.stack.ResolutionScope(), h.snap, h.prev, opts)
	h.prev = state
	return state
}

// EndFrame applies a completed rebind capture and clears per-frame edge
// state on every device snapshot.
func (h *Handler) EndFrame() {
	if h.captured != nil {
		h.stack.Active().Map.CompleteRebind(*h.captured)
		h.captured = nil
	}
	h.snap.Clear()
}

// captureBinding converts the first qualifying press this frame into a
// binding: keys first in numeric order, then mouse buttons, then gamepad
// buttons. Held modifiers qualify key and mouse captures.
func (h *Handler) captureBinding() (binding.Binding, bool) {
	mods := h.snap.Keyboard.Modifiers()

	if keys := h.snap.Keyboard.JustPressedKeys(); len(keys) > 0 {
		return binding.KeyWithModifiers(keys[0], mods), true
	}
	if buttons := h.snap.Mouse.JustPressedButtons(); len(buttons) > 0 {
		return binding.MouseButtonWithModifiers(buttons[0], mods), true
	}
	for _, b := range gamepad.Buttons() {
		if h.snap.GamepadButtonJustPressed(b) {
			return binding.GamepadButton(b), true
		}
	}
	return binding.Binding{}, false
}
