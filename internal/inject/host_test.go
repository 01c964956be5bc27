package inject

import (
	"fmt"
	"strings"
	"testing"

	"github.com/micmonay/keybd_event"

	"github.com/nealhardesty/controllerx/internal/test"
	"github.com/nealhardesty/controllerx/internal/translate"
)

// fakeKeyboard logs keybd_event calls.
type fakeKeyboard struct {
	keys  []int
	alt   bool
	ctrl  bool
	super bool
	calls []string
}

func (k *fakeKeyboard) Clear() {
	k.keys = nil
	k.alt = false
	k.ctrl = false
	k.super = false
}

func (k *fakeKeyboard) SetKeys(keys ...int) { k.keys = keys }
func (k *fakeKeyboard) HasALT(b bool)       { k.alt = b }
func (k *fakeKeyboard) HasCTRL(b bool)      { k.ctrl = b }
func (k *fakeKeyboard) HasSuper(b bool)     { k.super = b }

func (k *fakeKeyboard) state() string {
	return fmt.Sprintf("keys=%v alt=%v ctrl=%v super=%v", k.keys, k.alt, k.ctrl, k.super)
}

func (k *fakeKeyboard) Press() error {
	k.calls = append(k.calls, "press "+k.state())
	return nil
}

func (k *fakeKeyboard) Release() error {
	k.calls = append(k.calls, "release "+k.state())
	return nil
}

// fakeDesktop logs robotgo calls.
type fakeDesktop struct {
	x, y  int
	calls []string
}

func (d *fakeDesktop) Location() (int, int) { return d.x, d.y }

func (d *fakeDesktop) Move(x, y int) {
	d.x, d.y = x, y
	d.calls = append(d.calls, fmt.Sprintf("move %d %d", x, y))
}

func (d *fakeDesktop) Toggle(button string, down bool) error {
	d.calls = append(d.calls, fmt.Sprintf("toggle %s %v", button, down))
	return nil
}

func (d *fakeDesktop) KeyToggle(key string, down bool) error {
	d.calls = append(d.calls, fmt.Sprintf("key %s %v", key, down))
	return nil
}

func (d *fakeDesktop) Scroll(x, y int) {
	d.calls = append(d.calls, fmt.Sprintf("scroll %d %d", x, y))
}

func TestHostKeys(t *testing.T) {
	kb := &fakeKeyboard{}
	dt := &fakeDesktop{}
	h := newHost(kb, dt)

	err := h.Send(
		translate.Event{Kind: translate.Press, Target: translate.KeyUp},
		translate.Event{Kind: translate.Release, Target: translate.KeyUp},
		translate.Event{Kind: translate.Press, Target: translate.KeyAlt},
		translate.Event{Kind: translate.Release, Target: translate.KeyAlt},
		translate.Event{Kind: translate.Press, Target: translate.KeyVolumeUp},
		translate.Event{Kind: translate.Release, Target: translate.KeyVolumeUp},
		translate.Event{Kind: translate.Press, Target: translate.KeyEsc},
		translate.Event{Kind: translate.Release, Target: translate.KeyEsc},
		translate.Event{Kind: translate.Press, Target: translate.KeySuper},
		translate.Event{Kind: translate.Release, Target: translate.KeySuper},
	)
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, kb.calls, []string{
		fmt.Sprintf("press keys=[%d] alt=false ctrl=false super=false", keybd_event.VK_UP),
		fmt.Sprintf("release keys=[%d] alt=false ctrl=false super=false", keybd_event.VK_UP),
		"press keys=[] alt=true ctrl=false super=false",
		"release keys=[] alt=true ctrl=false super=false",
		fmt.Sprintf("press keys=[%d] alt=false ctrl=false super=false", keybd_event.VK_ESC),
		fmt.Sprintf("release keys=[%d] alt=false ctrl=false super=false", keybd_event.VK_ESC),
		"press keys=[] alt=false ctrl=false super=true",
		"release keys=[] alt=false ctrl=false super=true",
	})
	test.ExpectEquality(t, dt.calls, []string{
		"key audio_vol_up true",
		"key audio_vol_up false",
	})
}

func TestHostMouse(t *testing.T) {
	dt := &fakeDesktop{x: 10, y: 20}
	h := newHost(&fakeKeyboard{}, dt)

	x, y := h.Position()
	test.ExpectEquality(t, x, 10)
	test.ExpectEquality(t, y, 20)

	err := h.Send(
		translate.Event{Kind: translate.Press, Target: translate.MouseLeft},
		translate.Event{Kind: translate.Release, Target: translate.MouseRight},
		translate.Event{Kind: translate.Press, Target: translate.MouseMiddle},
		translate.Event{Kind: translate.MoveTo, X: 30, Y: 40},
	)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, dt.calls, []string{
		"toggle left true",
		"toggle right false",
		"toggle center true",
		"move 30 40",
	})

	x, y = h.Position()
	test.ExpectEquality(t, x, 30)
	test.ExpectEquality(t, y, 40)
}

func TestHostWheel(t *testing.T) {
	dt := &fakeDesktop{}
	h := newHost(&fakeKeyboard{}, dt)

	vertical := translate.Event{Kind: translate.Scroll, Wheel: translate.VerticalWheel, Amount: 80}
	for i := 0; i < 3; i++ {
		test.ExpectSuccess(t, h.Send(vertical))
	}

	// 240 units make two ticks
	test.ExpectEquality(t, dt.calls, []string{"scroll 0 1", "scroll 0 1"})

	dt.calls = nil
	test.ExpectSuccess(t, h.Send(translate.Event{Kind: translate.Scroll, Wheel: translate.HorizontalWheel, Amount: -250}))
	test.ExpectEquality(t, dt.calls, []string{"scroll -2 0"})
	test.ExpectEquality(t, h.wheel, [2]int{0, -10})
}

func TestHostUnknownTarget(t *testing.T) {
	h := newHost(&fakeKeyboard{}, &fakeDesktop{})
	err := h.Send(translate.Event{Kind: translate.Press, Target: translate.NoTarget})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, strings.Contains(err.Error(), "no key for none"))
}
