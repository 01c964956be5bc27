package translate

import (
	"fmt"
	"io"

	"github.com/nealhardesty/controllerx/internal/gamepad"
)

// EscapeButton terminates the emulator when pressed.
const EscapeButton = gamepad.Start

// Keymap returns the target of a single button. The second return value is
// false for the escape button, for buttons without a target and for button
// combinations.
func Keymap(b gamepad.Button) (Target, bool) {
	switch b {
	case gamepad.DpadUp:
		return KeyUp, true
	case gamepad.DpadDown:
		return KeyDown, true
	case gamepad.DpadLeft:
		return KeyLeft, true
	case gamepad.DpadRight:
		return KeyRight, true
	case gamepad.Back:
		return KeySuper, true
	case gamepad.LeftThumb:
		return KeyMediaPlayPause, true
	case gamepad.RightThumb:
		return MouseMiddle, true
	case gamepad.LeftShoulder:
		return KeyMediaPrevious, true
	case gamepad.RightShoulder:
		return KeyMediaNext, true
	case gamepad.A:
		return KeyVolumeDown, true
	case gamepad.B:
		return KeyEsc, true
	case gamepad.X:
		return KeyAlt, true
	case gamepad.Y:
		return KeyVolumeUp, true
	}
	return NoTarget, false
}

// the analog inputs are not part of Keymap() but are listed with it
var analogKeymap = [][2]string{
	{"Right Stick", "Mouse Movement"},
	{"Left Stick", "Mouse Scroll"},
	{"Left Trigger", MouseRight.String()},
	{"Right Trigger", MouseLeft.String()},
}

// PrintKeymap writes the mapping table as a box.
func PrintKeymap(w io.Writer) {
	row := func(from, to string) {
		fmt.Fprintf(w, "  | %19s   ---   %-18s |  \n", from, to)
	}

	fmt.Fprintln(w, "   ---------------- Current Keymaps -----------------   ")
	for _, a := range analogKeymap {
		row(a[0], a[1])
	}
	for _, b := range gamepad.Buttons {
		if b == EscapeButton {
			row(b.String(), "Exit ControllerX")
			continue
		}
		if t, ok := Keymap(b); ok {
			row(b.String(), t.String())
		}
	}
	fmt.Fprintln(w, "   -------------------------------------------------   ")
}
