// Package gamepad reads the state of a single game controller.
//
// The button bits and the axis ranges are those of XInput, which is also the
// layout of the Xbox 360 wired controller's USB input report.
package gamepad

import (
	"fmt"
	"strings"
)

// Button is a digital button bit, or a combination of bits.
type Button uint16

// List of buttons in bit order.
const (
	DpadUp        Button = 0x0001
	DpadDown      Button = 0x0002
	DpadLeft      Button = 0x0004
	DpadRight     Button = 0x0008
	Start         Button = 0x0010
	Back          Button = 0x0020
	LeftThumb     Button = 0x0040
	RightThumb    Button = 0x0080
	LeftShoulder  Button = 0x0100
	RightShoulder Button = 0x0200
	Guide         Button = 0x0400
	A             Button = 0x1000
	B             Button = 0x2000
	X             Button = 0x4000
	Y             Button = 0x8000
)

// Buttons lists every defined button in bit order.
var Buttons = []Button{
	DpadUp, DpadDown, DpadLeft, DpadRight,
	Start, Back, LeftThumb, RightThumb,
	LeftShoulder, RightShoulder, Guide,
	A, B, X, Y,
}

var buttonNames = map[Button]string{
	DpadUp:        "D-Pad Up",
	DpadDown:      "D-Pad Down",
	DpadLeft:      "D-Pad Left",
	DpadRight:     "D-Pad Right",
	Start:         "Start",
	Back:          "Back",
	LeftThumb:     "Left Stick Button",
	RightThumb:    "Right Stick Button",
	LeftShoulder:  "Left Shoulder",
	RightShoulder: "Right Shoulder",
	Guide:         "Guide",
	A:             "A",
	B:             "B",
	X:             "X",
	Y:             "Y",
}

// String returns the button name. Combinations are joined with '+'.
func (b Button) String() string {
	if b == 0 {
		return "none"
	}
	if n, ok := buttonNames[b]; ok {
		return n
	}

	var s strings.Builder
	for _, bt := range Buttons {
		if b&bt == bt {
			if s.Len() > 0 {
				s.WriteString("+")
			}
			s.WriteString(buttonNames[bt])
			b &^= bt
		}
	}
	if b != 0 {
		if s.Len() > 0 {
			s.WriteString("+")
		}
		s.WriteString(fmt.Sprintf("%#x", uint16(b)))
	}
	return s.String()
}

// Range of the analog inputs.
const (
	StickRange   = 32768
	TriggerRange = 255
)

// Snapshot is the controller state produced by one poll.
type Snapshot struct {
	Buttons Button
	LeftX   int16
	LeftY   int16
	RightX  int16
	RightY  int16
	TrigL   uint8
	TrigR   uint8
}

func (s Snapshot) String() string {
	return fmt.Sprintf("buttons=%s left=(%d,%d) right=(%d,%d) triggers=(%d,%d)",
		s.Buttons, s.LeftX, s.LeftY, s.RightX, s.RightY, s.TrigL, s.TrigR)
}

// Poller is implemented by controller sources.
type Poller interface {
	// Poll returns the current controller state. The returned error wraps
	// ErrDisconnected when the controller can no longer be read.
	Poll() (Snapshot, error)
}
