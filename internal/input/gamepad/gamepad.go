// Package gamepad defines gamepad buttons, analog axes, and the raw value
// normalization applied by device pollers before resolution.
package gamepad

import (
	"fmt"
	"math"
	"strings"
)

// Button identifies a gamepad button using the common controller layout.
type Button uint8

const (
	// ButtonNone represents no button.
	ButtonNone Button = iota

	// Face buttons
	ButtonA
	ButtonB
	ButtonX
	ButtonY

	// Shoulder buttons
	ButtonLeftBumper
	ButtonRightBumper

	// Menu buttons
	ButtonBack
	ButtonStart
	ButtonGuide

	// Stick clicks
	ButtonLeftStick
	ButtonRightStick

	// Directional pad
	ButtonDPadUp
	ButtonDPadDown
	ButtonDPadLeft
	ButtonDPadRight

	buttonMax // sentinel, keep last
)

var buttonNames = map[Button]string{
	ButtonNone:        "None",
	ButtonA:           "A",
	ButtonB:           "B",
	ButtonX:           "X",
	ButtonY:           "Y",
	ButtonLeftBumper:  "LB",
	ButtonRightBumper: "RB",
	ButtonBack:        "Back",
	ButtonStart:       "Start",
	ButtonGuide:       "Guide",
	ButtonLeftStick:   "LS",
	ButtonRightStick:  "RS",
	ButtonDPadUp:      "DPadUp",
	ButtonDPadDown:    "DPadDown",
	ButtonDPadLeft:    "DPadLeft",
	ButtonDPadRight:   "DPadRight",
}

// String returns a human-readable name for the button.
func (b Button) String() string {
	if name, ok := buttonNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Button(%d)", uint8(b))
}

// IsValid returns true if the button is a known gamepad button.
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

// Axis identifies a gamepad analog axis. Stick axes report in [-1, 1],
// triggers in [0, 1].
type Axis uint8

const (
	// AxisNone represents no axis.
	AxisNone Axis = iota

	// AxisLeftX is the left stick horizontal axis (positive right).
	AxisLeftX

	// AxisLeftY is the left stick vertical axis (positive down).
	AxisLeftY

	// AxisRightX is the right stick horizontal axis (positive right).
	AxisRightX

	// AxisRightY is the right stick vertical axis (positive down).
	AxisRightY

	// AxisLeftTrigger is the left analog trigger.
	AxisLeftTrigger

	// AxisRightTrigger is the right analog trigger.
	AxisRightTrigger

	axisMax // sentinel, keep last
)

var axisNames = map[Axis]string{
	AxisNone:         "None",
	AxisLeftX:        "LeftX",
	AxisLeftY:        "LeftY",
	AxisRightX:       "RightX",
	AxisRightY:       "RightY",
	AxisLeftTrigger:  "LT",
	AxisRightTrigger: "RT",
}

// String returns a human-readable name for the axis.
func (a Axis) String() string {
	if name, ok := axisNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Axis(%d)", uint8(a))
}

// IsValid returns true if the axis is a known gamepad axis.
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

// Sign selects one direction of a signed axis when binding it to an action.
type Sign int8

const (
	// Positive selects the positive half of the axis range.
	Positive Sign = 1

	// Negative selects the negative half of the axis range.
	Negative Sign = -1
)

// String returns "+" or "-".
func (s Sign) String() string {
	if s < 0 {
		return "-"
	}
	return "+"
}

// IsValid returns true for Positive and Negative.
func (s Sign) IsValid() bool {
	return s == Positive || s == Negative
}

// Normalize converts a raw axis sample (-32768..32767) to [-1, 1].
func Normalize(raw int16) float64 {
	v := float64(raw) / math.MaxInt16
	if v < -1.0 {
		v = -1.0
	}
	return v
}

// NormalizeTrigger converts a raw trigger sample in [rawMin, rawMax] to [0, 1].
func NormalizeTrigger(raw, rawMin, rawMax int16) float64 {
	if rawMax == rawMin {
		return 0
	}
	v := float64(raw-rawMin) / float64(rawMax-rawMin)
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ApplyDeadZone returns 0 when the magnitude is inside the dead zone,
// otherwise rescales the remainder so the output still spans [-1, 1].
func ApplyDeadZone(v, threshold float64) float64 {
	if threshold <= 0 {
		return v
	}
	mag := math.Abs(v)
	if mag < threshold {
		return 0
	}
	scaled := (mag - threshold) / (1 - threshold)
	if scaled > 1 {
		scaled = 1
	}
	return math.Copysign(scaled, v)
}
