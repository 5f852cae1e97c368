// Package mouse defines mouse buttons and analog axes.
package mouse

import (
	"fmt"
	"strings"
)

// Button identifies a mouse button.
type Button uint8

const (
	// ButtonNone represents no button.
	ButtonNone Button = iota

	// ButtonLeft is the primary button.
	ButtonLeft

	// ButtonRight is the secondary button.
	ButtonRight

	// ButtonMiddle is the wheel button.
	ButtonMiddle

	// ButtonBack is the first side button.
	ButtonBack

	// ButtonForward is the second side button.
	ButtonForward

	buttonMax // sentinel, keep last
)

var buttonNames = map[Button]string{
	ButtonNone:    "None",
	ButtonLeft:    "Left",
	ButtonRight:   "Right",
	ButtonMiddle:  "Middle",
	ButtonBack:    "Back",
	ButtonForward: "Forward",
}

// String returns a human-readable name for the button.
func (b Button) String() string {
	if name, ok := buttonNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Button(%d)", uint8(b))
}

// IsValid returns true if the button is a known mouse button.
func (b Button) IsValid() bool {
	return b > ButtonNone && b < buttonMax
}

// ButtonFromName returns the Button for a given name (case-insensitive).
// Returns ButtonNone if the name is not recognized.
func ButtonFromName(name string) Button {
	name = strings.ToLower(strings.TrimSpace(name))
	for b, n := range buttonNames {
		if strings.ToLower(n) == name {
			return b
		}
	}
	return ButtonNone
}

// Buttons returns every valid button in numeric order.
func Buttons() []Button {
	buttons := make([]Button, 0, int(buttonMax)-1)
	for b := ButtonNone + 1; b < buttonMax; b++ {
		buttons = append(buttons, b)
	}
	return buttons
}

// Axis identifies a mouse analog axis. Axis values are per-frame deltas
// produced by the device layer.
type Axis uint8

const (
	// AxisNone represents no axis.
	AxisNone Axis = iota

	// AxisX is horizontal movement (positive right).
	AxisX

	// AxisY is vertical movement (positive down).
	AxisY

	// AxisWheel is the scroll wheel (positive away from the user).
	AxisWheel

	axisMax // sentinel, keep last
)

var axisNames = map[Axis]string{
	AxisNone:  "None",
	AxisX:     "X",
	AxisY:     "Y",
	AxisWheel: "Wheel",
}

// String returns a human-readable name for the axis.
func (a Axis) String() string {
	if name, ok := axisNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Axis(%d)", uint8(a))
}

// IsValid returns true if the axis is a known mouse axis.
func (a Axis) IsValid() bool {
	return a > AxisNone && a < axisMax
}

// AxisFromName returns the Axis for a given name (case-insensitive).
// Returns AxisNone if the name is not recognized.
func AxisFromName(name string) Axis {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range axisNames {
		if strings.ToLower(n) == name {
			return a
		}
	}
	return AxisNone
}
