package input

import (
	"testing"

	"github.com/dshills/inputforge/internal/input/action"
	"github.com/dshills/inputforge/internal/input/binding"
	"github.com/dshills/inputforge/internal/input/context"
	"github.com/dshills/inputforge/internal/input/device"
	"github.com/dshills/inputforge/internal/input/gamepad"
	"github.com/dshills/inputforge/internal/input/inputmap"
	"github.com/dshills/inputforge/internal/input/key"
	"github.com/dshills/inputforge/internal/input/mouse"
)

type recordingSink struct {
	runes []rune
}

func (r *recordingSink) HandleText(ch rune) {
	r.runes = append(r.runes, ch)
}

func newTestHandler(m *inputmap.Map, opts ...Option) *Handler {
	stack := context.NewStack(context.New("gameplay", m), nil)
	return NewHandler(stack, device.NewSnapshot(), opts...)
}

func TestHandlerFrameResolves(t *testing.T) {
	m := inputmap.New()
	m.Bind(action.Jump, binding.Key(key.KeySpace))
	h := newTestHandler(m)

	h.Snapshot().Keyboard.Press(key.KeySpace)
	state := h.Frame()
	if !state.JustActivated(action.Jump) {
		t.Error("press did not activate the action")
	}
	h.EndFrame()

	// Held across the frame boundary: active, no new edge.
	state = h.Frame()
	if state.JustActivated(action.Jump) {
		t.Error("activation edge repeated")
	}
	if !state.IsActive(action.Jump) {
		t.Error("held key inactive after EndFrame")
	}
}

func TestHandlerTextRouting(t *testing.T) {
	sink := &recordingSink{}
	gameplayMap := inputmap.New()
	gameplayMap.Bind(action.Jump, binding.Key(key.KeySpace))
	gameplayMap.Bind(action.Attack, binding.MouseButton(mouse.ButtonLeft))

	h := newTestHandler(gameplayMap, WithTextSink(sink))
	chatMap := inputmap.New()
	chatMap.Bind(action.Attack, binding.MouseButton(mouse.ButtonLeft))
	h.Stack().Push(context.New("chat", chatMap).WithTextInput())

	h.Snapshot().Keyboard.Press(key.KeySpace)
	h.Snapshot().Keyboard.Type(' ')
	h.Snapshot().Keyboard.Type('h')
	h.Snapshot().Mouse.Press(mouse.ButtonLeft)

	state := h.Frame()
	if state.IsActive(action.Jump) {
		t.Error("keyboard binding resolved during text input")
	}
	if !state.IsActive(action.Attack) {
		t.Error("mouse binding blocked during text input")
	}
	if string(sink.runes) != " h" {
		t.Errorf("sink received %q, want %q", string(sink.runes), " h")
	}

	// Leaving the text context restores keyboard resolution.
	h.EndFrame()
	h.Stack().Pop()
	state = h.Frame()
	if !state.IsActive(action.Jump) {
		t.Error("keyboard binding still blocked after leaving text context")
	}
}

func TestHandlerRebindCapture(t *testing.T) {
	m := inputmap.New()
	m.Bind(action.Jump, binding.Key(key.KeySpace))
	h := newTestHandler(m)

	h.StartRebind(action.Jump, inputmap.RebindReplace)

	// The captured press is withheld from this frame's resolution.
	h.Snapshot().Keyboard.Press(key.KeyJ)
	state := h.Frame()
	if state.IsActive(action.Jump) {
		t.Error("captured press leaked into resolution")
	}

	// Assignment lands at EndFrame.
	if list := m.BindingsFor(action.Jump); len(list) != 1 || list[0] != binding.Key(key.KeySpace) {
		t.Errorf("map changed before EndFrame: %v", list)
	}
	h.EndFrame()
	list := m.BindingsFor(action.Jump)
	if len(list) != 1 || list[0] != binding.Key(key.KeyJ) {
		t.Errorf("bindings after rebind = %v, want [J]", list)
	}
	if m.PendingRebind() != nil {
		t.Error("capture still pending after EndFrame")
	}
}

func TestHandlerRebindWithModifiers(t *testing.T) {
	m := inputmap.New()
	h := newTestHandler(m)

	h.StartRebind(action.Sprint, inputmap.RebindAppend)
	h.Snapshot().Keyboard.SetModifiers(key.ModShift)
	h.Snapshot().Keyboard.Press(key.KeyW)
	h.Frame()
	h.EndFrame()

	list := m.BindingsFor(action.Sprint)
	if len(list) != 1 || list[0] != binding.KeyWithModifiers(key.KeyW, key.ModShift) {
		t.Errorf("bindings = %v, want [Shift+W]", list)
	}
}

func TestHandlerRebindGamepadButton(t *testing.T) {
	m := inputmap.New()
	h := newTestHandler(m)

	h.StartRebind(action.Jump, inputmap.RebindAppend)
	h.Snapshot().Gamepad(0).SetButton(gamepad.ButtonA, true)
	h.Frame()
	h.EndFrame()

	list := m.BindingsFor(action.Jump)
	if len(list) != 1 || list[0] != binding.GamepadButton(gamepad.ButtonA) {
		t.Errorf("bindings = %v, want [Pad A]", list)
	}
}

func TestHandlerRebindWaitsForPress(t *testing.T) {
	m := inputmap.New()
	m.Bind(action.Jump, binding.Key(key.KeySpace))
	h := newTestHandler(m)

	h.StartRebind(action.Jump, inputmap.RebindReplace)

	// Frames without a qualifying press leave the capture armed and
	// resolution untouched.
	h.Frame()
	h.EndFrame()
	if m.PendingRebind() == nil {
		t.Fatal("capture dropped without a press")
	}

	h.Snapshot().Keyboard.Press(key.KeyK)
	h.Frame()
	h.EndFrame()
	if list := m.BindingsFor(action.Jump); len(list) != 1 || list[0] != binding.Key(key.KeyK) {
		t.Errorf("bindings = %v, want [K]", list)
	}
}

func TestHandlerCancelRebind(t *testing.T) {
	m := inputmap.New()
	m.Bind(action.Jump, binding.Key(key.KeySpace))
	h := newTestHandler(m)

	h.StartRebind(action.Jump, inputmap.RebindReplace)
	h.CancelRebind()

	h.Snapshot().Keyboard.Press(key.KeyJ)
	h.Frame()
	h.EndFrame()

	if list := m.BindingsFor(action.Jump); len(list) != 1 || list[0] != binding.Key(key.KeySpace) {
		t.Errorf("cancelled rebind changed the map: %v", list)
	}
}
