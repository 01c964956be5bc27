// Package translate turns controller snapshots into synthetic keyboard and
// mouse events.
//
// Each translator is a small state machine owned by the caller. The state
// transitions themselves are pure functions so that they can be tested
// without an output device.
package translate

import "fmt"

// Target is a key or mouse button that can be pressed and released.
type Target int

// List of valid Target values.
const (
	NoTarget Target = iota

	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySuper
	KeyTab
	KeyEnter
	KeyCtrl
	KeyEsc
	KeyAlt
	KeySpace
	KeyVolumeUp
	KeyVolumeDown
	KeyMediaPlayPause
	KeyMediaNext
	KeyMediaPrevious

	MouseLeft
	MouseRight
	MouseMiddle
)

var targetNames = map[Target]string{
	NoTarget:          "none",
	KeyUp:             "Up Arrow Key",
	KeyDown:           "Down Arrow Key",
	KeyLeft:           "Left Arrow Key",
	KeyRight:          "Right Arrow Key",
	KeySuper:          "Windows Start Menu",
	KeyTab:            "Tab",
	KeyEnter:          "Enter",
	KeyCtrl:           "Ctrl",
	KeyEsc:            "Esc",
	KeyAlt:            "Alt",
	KeySpace:          "Space",
	KeyVolumeUp:       "Volume Up",
	KeyVolumeDown:     "Volume Down",
	KeyMediaPlayPause: "Media Play/Pause",
	KeyMediaNext:      "Media Next",
	KeyMediaPrevious:  "Media Previous",
	MouseLeft:         "Left Mouse Click",
	MouseRight:        "Right Mouse Click",
	MouseMiddle:       "Middle Mouse Click",
}

func (t Target) String() string {
	if n, ok := targetNames[t]; ok {
		return n
	}
	return fmt.Sprintf("Target(%d)", int(t))
}

// IsMouse returns true if the target is a mouse button.
func (t Target) IsMouse() bool {
	return t >= MouseLeft && t <= MouseMiddle
}

// Kind of an Event.
type Kind int

// List of valid Kind values.
const (
	Press Kind = iota
	Release
	MoveTo
	Scroll
)

func (k Kind) String() string {
	switch k {
	case Press:
		return "press"
	case Release:
		return "release"
	case MoveTo:
		return "move"
	case Scroll:
		return "scroll"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Wheel identifies the mouse wheel of a Scroll event.
type Wheel int

// List of valid Wheel values.
const (
	VerticalWheel Wheel = iota
	HorizontalWheel
)

// Event is a single synthetic input event.
type Event struct {
	Kind Kind

	// Press and Release
	Target Target

	// MoveTo. absolute screen coordinates
	X, Y int

	// Scroll. amount is in wheel units, positive is up or right
	Wheel  Wheel
	Amount int
}

func (e Event) String() string {
	switch e.Kind {
	case Press, Release:
		return fmt.Sprintf("%s %s", e.Kind, e.Target)
	case MoveTo:
		return fmt.Sprintf("%s %d,%d", e.Kind, e.X, e.Y)
	case Scroll:
		if e.Wheel == HorizontalWheel {
			return fmt.Sprintf("%s horizontal %d", e.Kind, e.Amount)
		}
		return fmt.Sprintf("%s vertical %d", e.Kind, e.Amount)
	}
	return e.Kind.String()
}

// Sink is the host's synthetic input facility.
type Sink interface {
	// Position returns the current absolute pointer position.
	Position() (x, y int)

	// Send submits a batch of events in order. Every event in the batch is a
	// real action.
	Send(events ...Event) error
}
