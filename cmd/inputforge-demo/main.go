// Package main is a terminal playground for the input core: it feeds
// tcell events through the device adapter, steps the frame loop, and
// shows resolved action values live.
//
// Keys: Escape pushes/pops a consuming menu context, F1 toggles a
// pass-through overlay context, F2 rebinds Jump to the next input,
// Ctrl-C quits.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/inputforge/internal/config"
	"github.com/dshills/inputforge/internal/input"
	"github.com/dshills/inputforge/internal/input/action"
	"github.com/dshills/inputforge/internal/input/binding"
	"github.com/dshills/inputforge/internal/input/context"
	"github.com/dshills/inputforge/internal/input/device"
	"github.com/dshills/inputforge/internal/input/inputmap"
	"github.com/dshills/inputforge/internal/input/key"
	"github.com/dshills/inputforge/internal/input/mouse"
)

func main() {
	os.Exit(run())
}

func run() int {
	var bindingsPath string
	flag.StringVar(&bindingsPath, "bindings", "", "Path to bindings JSON file")
	flag.Parse()

	bindings := inputmap.Default()
	if bindingsPath != "" {
		m, outcome, err := config.LoadBindings(bindingsPath)
		if outcome == config.OutcomeUseDefault {
			fmt.Fprintf(os.Stderr, "Warning: using default bindings: %v\n", err)
		}
		bindings = m
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init screen: %v\n", err)
		return 1
	}
	defer screen.Fini()
	screen.EnableMouse()

	cursor := &statusCursor{}
	gameplay := context.New("gameplay", bindings).WithCursor(context.CursorCaptured)
	stack := context.NewStack(gameplay, cursor)

	snap := device.NewSnapshot()
	adapter := device.NewTcellAdapter(snap)
	handler := input.NewHandler(stack, snap)

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	watched := []action.Action{
		action.MoveForward, action.MoveBackward, action.MoveLeft,
		action.MoveRight, action.Jump, action.Sprint, action.Attack,
		action.LookX, action.LookY, action.Pause,
	}

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return 0
			}
			if k, isKey := ev.(*tcell.EventKey); isKey {
				switch {
				case k.Key() == tcell.KeyCtrlC:
					return 0
				case k.Key() == tcell.KeyEscape:
					toggleMenu(stack)
					continue
				case k.Key() == tcell.KeyF1:
					toggleOverlay(stack)
					continue
				case k.Key() == tcell.KeyF2:
					handler.StartRebind(action.Jump, inputmap.RebindReplace)
					continue
				}
			}
			adapter.HandleEvent(ev)

		case <-ticker.C:
			state := handler.Frame()

			screen.Clear()
			drawText(screen, 0, 0, fmt.Sprintf("context: %-10s depth: %d  cursor: %s",
				stack.Active().Name, stack.Depth(), cursor.mode))
			for i, a := range watched {
				marker := " "
				if state.JustActivated(a) {
					marker = "+"
				} else if state.JustDeactivated(a) {
					marker = "-"
				}
				drawText(screen, 0, i+2, fmt.Sprintf("%s %-14s %+.3f  %s",
					marker, a.String(), state.Value(a), bindingSummary(stack.Active().Map, a)))
			}
			if pending := stack.Active().Map.PendingRebind(); pending != nil {
				drawText(screen, 0, len(watched)+3,
					fmt.Sprintf("rebinding %s: press any input...", pending.Action))
			}
			screen.Show()

			adapter.EndFrame()
			handler.EndFrame()
		}
	}
}

// toggleMenu pushes a consuming menu context, or pops it if on top.
func toggleMenu(stack *context.Stack) {
	if stack.Active().Name == "menu" {
		stack.Pop()
		return
	}
	menu := inputmap.New()
	menu.Bind(action.MoveForward, binding.Key(key.KeyUp))
	menu.Bind(action.MoveBackward, binding.Key(key.KeyDown))
	menu.Bind(action.Interact, binding.Key(key.KeyEnter))
	stack.Push(context.New("menu", menu).WithCursor(context.CursorFree).Consuming())
}

// toggleOverlay pushes a pass-through overlay context, or pops it.
func toggleOverlay(stack *context.Stack) {
	if stack.Active().Name == "overlay" {
		stack.Pop()
		return
	}
	overlay := inputmap.New()
	overlay.Bind(action.Zoom, binding.MouseAxis(mouse.AxisWheel))
	stack.Push(context.New("overlay", overlay).WithCursor(stack.Active().Cursor))
}

// statusCursor records the applied cursor mode for display; a real
// engine would grab or release the OS pointer here.
type statusCursor struct {
	mode context.CursorMode
}

func (c *statusCursor) ApplyCursorMode(mode context.CursorMode) {
	c.mode = mode
}

func bindingSummary(m *inputmap.Map, a action.Action) string {
	list := m.BindingsFor(a)
	if len(list) == 0 {
		return "(unbound)"
	}
	s := list[0].String()
	for _, b := range list[1:] {
		s += ", " + b.String()
	}
	return s
}

func drawText(screen tcell.Screen, x, y int, text string) {
	style := tcell.StyleDefault
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
