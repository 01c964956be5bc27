// Package inject submits synthetic input events to the host.
//
// Plain keys and the Alt, Ctrl and Super modifiers are sent with keybd_event.
// Media keys, mouse buttons, pointer movement and the wheel are sent with
// robotgo.
package inject

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-vgo/robotgo"
	"github.com/micmonay/keybd_event"

	"github.com/nealhardesty/controllerx/internal/translate"
)

// WheelDelta is the number of wheel units in one scroll tick.
const WheelDelta = 120

// keyboard is the part of keybd_event.KeyBonding used by Host.
type keyboard interface {
	Clear()
	SetKeys(keys ...int)
	HasALT(b bool)
	HasCTRL(b bool)
	HasSuper(b bool)
	Press() error
	Release() error
}

// desktop is the part of robotgo used by Host.
type desktop interface {
	Location() (int, int)
	Move(x, y int)
	Toggle(button string, down bool) error
	KeyToggle(key string, down bool) error
	Scroll(x, y int)
}

var keyCodes = map[translate.Target]int{
	translate.KeyUp:    keybd_event.VK_UP,
	translate.KeyDown:  keybd_event.VK_DOWN,
	translate.KeyLeft:  keybd_event.VK_LEFT,
	translate.KeyRight: keybd_event.VK_RIGHT,
	translate.KeyTab:   keybd_event.VK_TAB,
	translate.KeyEnter: keybd_event.VK_ENTER,
	translate.KeySpace: keybd_event.VK_SPACE,
	translate.KeyEsc:   keybd_event.VK_ESC,
}

// robotgo key names
var desktopKeys = map[translate.Target]string{
	translate.KeyVolumeUp:       "audio_vol_up",
	translate.KeyVolumeDown:     "audio_vol_down",
	translate.KeyMediaPlayPause: "audio_play",
	translate.KeyMediaNext:      "audio_next",
	translate.KeyMediaPrevious:  "audio_prev",
}

// robotgo mouse button names
var mouseButtons = map[translate.Target]string{
	translate.MouseLeft:   "left",
	translate.MouseRight:  "right",
	translate.MouseMiddle: "center",
}

// Host implements translate.Sink for the local desktop.
type Host struct {
	kb keyboard
	dt desktop

	// wheel units not yet scrolled, indexed by translate.Wheel
	wheel [2]int
}

// NewHost is the preferred method of initialisation for the Host type.
func NewHost() (*Host, error) {
	kb, err := keybd_event.NewKeyBonding()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize keyboard: %w", err)
	}

	// the uinput device needs time to be registered before the first event
	if runtime.GOOS == "linux" {
		time.Sleep(2 * time.Second)
	}

	return newHost(&kb, robot{}), nil
}

func newHost(kb keyboard, dt desktop) *Host {
	return &Host{kb: kb, dt: dt}
}

// Position implements the translate.Sink interface.
func (h *Host) Position() (int, int) {
	return h.dt.Location()
}

// Send implements the translate.Sink interface.
func (h *Host) Send(events ...translate.Event) error {
	for _, e := range events {
		var err error

		switch e.Kind {
		case translate.Press:
			err = h.toggle(e.Target, true)
		case translate.Release:
			err = h.toggle(e.Target, false)
		case translate.MoveTo:
			h.dt.Move(e.X, e.Y)
		case translate.Scroll:
			h.scroll(e.Wheel, e.Amount)
		default:
			err = fmt.Errorf("unsupported event kind: %v", e.Kind)
		}

		if err != nil {
			return fmt.Errorf("%s: %w", e, err)
		}
	}
	return nil
}

func (h *Host) toggle(t translate.Target, down bool) error {
	if b, ok := mouseButtons[t]; ok {
		return h.dt.Toggle(b, down)
	}
	if k, ok := desktopKeys[t]; ok {
		return h.dt.KeyToggle(k, down)
	}

	h.kb.Clear()
	switch t {
	case translate.KeyAlt:
		h.kb.HasALT(true)
	case translate.KeyCtrl:
		h.kb.HasCTRL(true)
	case translate.KeySuper:
		h.kb.HasSuper(true)
	default:
		code, ok := keyCodes[t]
		if !ok {
			return fmt.Errorf("no key for %s", t)
		}
		h.kb.SetKeys(code)
	}

	if down {
		return h.kb.Press()
	}
	return h.kb.Release()
}

func (h *Host) scroll(w translate.Wheel, amount int) {
	h.wheel[w] += amount
	ticks := h.wheel[w] / WheelDelta
	if ticks == 0 {
		return
	}
	h.wheel[w] -= ticks * WheelDelta

	if w == translate.HorizontalWheel {
		h.dt.Scroll(ticks, 0)
	} else {
		h.dt.Scroll(0, ticks)
	}
}

// robot implements desktop with robotgo.
type robot struct{}

func (robot) Location() (int, int) {
	return robotgo.Location()
}

func (robot) Move(x, y int) {
	robotgo.Move(x, y)
}

func (robot) Toggle(button string, down bool) error {
	if down {
		return robotgo.Toggle(button)
	}
	return robotgo.Toggle(button, "up")
}

func (robot) KeyToggle(key string, down bool) error {
	if down {
		return robotgo.KeyToggle(key)
	}
	return robotgo.KeyToggle(key, "up")
}

func (robot) Scroll(x, y int) {
	robotgo.Scroll(x, y)
}
