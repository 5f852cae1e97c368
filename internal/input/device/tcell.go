package device

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/inputforge/internal/input/key"
	"github.com/dshills/inputforge/internal/input/mouse"
)

// TcellAdapter translates tcell terminal events into snapshot updates.
//
// Terminals deliver key presses without matching releases, so the adapter
// treats each key event as held for the frame it arrives in: EndFrame
// releases the keys pressed since the last call. Mouse buttons report
// full press/release transitions through the button mask and are tracked
// normally.
type TcellAdapter struct {
	snap *Snapshot

	// keys pressed this frame, to release at EndFrame
	frameKeys []key.Key

	// previous mouse state for transition detection
	prevButtons tcell.ButtonMask
	prevX       int
	prevY       int
	havePos     bool

	// Sensitivity scales mouse movement deltas into analog range.
	Sensitivity float64
}

// NewTcellAdapter creates an adapter feeding the given snapshot.
func NewTcellAdapter(snap *Snapshot) *TcellAdapter {
	return &TcellAdapter{
		snap:        snap,
		Sensitivity: 0.1,
	}
}

// HandleEvent applies one tcell event to the snapshot. Returns true if the
// event was recognized as an input event.
func (a *TcellAdapter) HandleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventKey:
		a.handleKey(e)
		return true
	case *tcell.EventMouse:
		a.handleMouse(e)
		return true
	}
	return false
}

// EndFrame releases the keys held for this frame. Call after the frame's
// resolution pass and state reads, before the snapshot's end-of-frame
// Clear; the adapter never clears the snapshot itself.
func (a *TcellAdapter) EndFrame() {
	for _, k := range a.frameKeys {
		a.snap.Keyboard.Release(k)
	}
	a.frameKeys = a.frameKeys[:0]
}

func (a *TcellAdapter) handleKey(e *tcell.EventKey) {
	mods := convertModifiers(e.Modifiers())
	a.snap.Keyboard.SetModifiers(mods)

	k := convertKey(e)
	if k != key.KeyNone {
		a.snap.Keyboard.Press(k)
		a.frameKeys = append(a.frameKeys, k)
	}

	if e.Key() == tcell.KeyRune {
		a.snap.Keyboard.Type(e.Rune())
	}
}

func (a *TcellAdapter) handleMouse(e *tcell.EventMouse) {
	mods := convertModifiers(e.Modifiers())
	a.snap.Keyboard.SetModifiers(mods)

	buttons := e.Buttons()
	for _, mb := range buttonMaskTable {
		now := buttons&mb.mask != 0
		was := a.prevButtons&mb.mask != 0
		switch {
		case now && !was:
			a.snap.Mouse.Press(mb.button)
		case !now && was:
			a.snap.Mouse.Release(mb.button)
		}
	}

	if buttons&tcell.WheelUp != 0 {
		a.snap.Mouse.AddAxis(mouse.AxisWheel, 1)
	}
	if buttons&tcell.WheelDown != 0 {
		a.snap.Mouse.AddAxis(mouse.AxisWheel, -1)
	}

	x, y := e.Position()
	if a.havePos {
		a.snap.Mouse.AddAxis(mouse.AxisX, float64(x-a.prevX)*a.Sensitivity)
		a.snap.Mouse.AddAxis(mouse.AxisY, float64(y-a.prevY)*a.Sensitivity)
	}
	a.prevX, a.prevY = x, y
	a.havePos = true
	a.prevButtons = buttons &^ (tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight)
}

var buttonMaskTable = []struct {
	mask   tcell.ButtonMask
	button mouse.Button
}{
	{tcell.Button1, mouse.ButtonLeft},
	{tcell.Button2, mouse.ButtonRight},
	{tcell.Button3, mouse.ButtonMiddle},
	{tcell.Button4, mouse.ButtonBack},
	{tcell.Button5, mouse.ButtonForward},
}

// convertModifiers maps a tcell modifier mask to the core modifier set.
func convertModifiers(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(key.ModSuper)
	}
	return mods
}

// convertKey maps a tcell key event to a physical key.
func convertKey(e *tcell.EventKey) key.Key {
	switch e.Key() {
	case tcell.KeyRune:
		return key.FromRune(e.Rune())
	case tcell.KeyEscape:
		return key.KeyEscape
	case tcell.KeyEnter:
		return key.KeyEnter
	case tcell.KeyTab:
		return key.KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.KeyBackspace
	case tcell.KeyDelete:
		return key.KeyDelete
	case tcell.KeyInsert:
		return key.KeyInsert
	case tcell.KeyHome:
		return key.KeyHome
	case tcell.KeyEnd:
		return key.KeyEnd
	case tcell.KeyPgUp:
		return key.KeyPageUp
	case tcell.KeyPgDn:
		return key.KeyPageDown
	case tcell.KeyUp:
		return key.KeyUp
	case tcell.KeyDown:
		return key.KeyDown
	case tcell.KeyLeft:
		return key.KeyLeft
	case tcell.KeyRight:
		return key.KeyRight
	case tcell.KeyF1:
		return key.KeyF1
	case tcell.KeyF2:
		return key.KeyF2
	case tcell.KeyF3:
		return key.KeyF3
	case tcell.KeyF4:
		return key.KeyF4
	case tcell.KeyF5:
		return key.KeyF5
	case tcell.KeyF6:
		return key.KeyF6
	case tcell.KeyF7:
		return key.KeyF7
	case tcell.KeyF8:
		return key.KeyF8
	case tcell.KeyF9:
		return key.KeyF9
	case tcell.KeyF10:
		return key.KeyF10
	case tcell.KeyF11:
		return key.KeyF11
	case tcell.KeyF12:
		return key.KeyF12
	}

	// Ctrl-letter combinations arrive as control key codes.
	if e.Key() >= tcell.KeyCtrlA && e.Key() <= tcell.KeyCtrlZ {
		return key.KeyA + key.Key(e.Key()-tcell.KeyCtrlA)
	}

	return key.KeyNone
}
