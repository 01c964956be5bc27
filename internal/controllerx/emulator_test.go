package controllerx

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/nealhardesty/controllerx/internal/config"
	"github.com/nealhardesty/controllerx/internal/gamepad"
	"github.com/nealhardesty/controllerx/internal/test"
	"github.com/nealhardesty/controllerx/internal/translate"
)

// script is a Poller that returns its snapshots in order. Once they are used
// up, every poll returns the zero snapshot until the stop condition is true,
// after which the controller is disconnected.
type script struct {
	snapshots []gamepad.Snapshot
	stop      func() bool
	polls     int
}

func (s *script) Poll() (gamepad.Snapshot, error) {
	s.polls++
	if len(s.snapshots) > 0 {
		n := s.snapshots[0]
		s.snapshots = s.snapshots[1:]
		return n, nil
	}
	if s.stop == nil || s.stop() {
		return gamepad.Snapshot{}, fmt.Errorf("%w: unplugged", gamepad.ErrDisconnected)
	}
	return gamepad.Snapshot{}, nil
}

type recorder struct {
	events []translate.Event
}

func (r *recorder) Position() (int, int) {
	return 0, 0
}

func (r *recorder) Send(events ...translate.Event) error {
	r.events = append(r.events, events...)
	return nil
}

type terminal struct {
	modes []string
}

func (t *terminal) CBreakMode() error {
	t.modes = append(t.modes, "cbreak")
	return nil
}

func (t *terminal) CanonicalMode() error {
	t.modes = append(t.modes, "canonical")
	return nil
}

func press(t translate.Target) translate.Event {
	return translate.Event{Kind: translate.Press, Target: t}
}

func release(t translate.Target) translate.Event {
	return translate.Event{Kind: translate.Release, Target: t}
}

func newTestControllerX(t *testing.T, cfg config.Sensitivity, poller gamepad.Poller, in string) (*ControllerX, *recorder, *strings.Builder, *terminal) {
	t.Helper()

	sink := &recorder{}
	out := &strings.Builder{}
	term := &terminal{}
	c, err := NewControllerX(cfg, poller, sink, strings.NewReader(in), out, term)
	test.ExpectSuccess(t, err)
	c.interval = 0
	return c, sink, out, term
}

func TestDisconnect(t *testing.T) {
	poller := &script{snapshots: []gamepad.Snapshot{{Buttons: gamepad.DpadUp}}}
	c, sink, out, _ := newTestControllerX(t, config.Default(), poller, "")

	test.ExpectSuccess(t, c.Run())
	test.ExpectEquality(t, poller.polls, 2)
	test.ExpectSuccess(t, strings.Contains(out.String(), "ControllerX up and running..."))
	test.ExpectSuccess(t, strings.Contains(out.String(), "Error: controller not connected: unplugged"))
	test.ExpectEquality(t, sink.events, []translate.Event{
		press(translate.KeyUp),
		release(translate.KeyUp),
		release(translate.MouseLeft),
		release(translate.MouseRight),
	})
	test.ExpectFailure(t, c.isRunning())
}

func TestNoController(t *testing.T) {
	poller := gamepad.Unavailable(fmt.Errorf("%w: no compatible controller found", gamepad.ErrDisconnected))
	c, sink, out, _ := newTestControllerX(t, config.Default(), poller, "")

	test.ExpectSuccess(t, c.Run())
	test.ExpectSuccess(t, strings.Contains(out.String(), "no compatible controller found"))
	test.ExpectEquality(t, len(sink.events), 0)
}

func TestPollError(t *testing.T) {
	poller := gamepad.Unavailable(errors.New("broken"))
	c, _, _, _ := newTestControllerX(t, config.Default(), poller, "")
	test.ExpectFailure(t, c.Run())
}

func TestEscapeButton(t *testing.T) {
	poller := &script{
		snapshots: []gamepad.Snapshot{
			{Buttons: gamepad.A, TrigR: 255},
			{Buttons: translate.EscapeButton, TrigR: 255},
			{Buttons: gamepad.B},
		},
	}
	c, sink, _, _ := newTestControllerX(t, config.Default(), poller, "")

	test.ExpectSuccess(t, c.Run())
	test.ExpectEquality(t, poller.polls, 2)

	// the left mouse button is not released on the way out
	test.ExpectEquality(t, sink.events, []translate.Event{
		press(translate.KeyVolumeDown),
		release(translate.KeyVolumeDown),
		press(translate.MouseLeft),
		release(translate.MouseRight),
	})
}

func TestCommandMode(t *testing.T) {
	var out *strings.Builder
	poller := &script{
		stop: func() bool {
			return strings.Contains(out.String(), "Command mode exited.")
		},
	}

	var c *ControllerX
	var term *terminal
	c, _, out, term = newTestControllerX(t, config.Default(), poller, "\x1bOPprint_spec\n")

	test.ExpectSuccess(t, c.Run())

	s := out.String()
	for _, want := range []string{
		"Waiting for command...",
		"Analog Stick Deadzone: 0.15",
		"Mouse Move Sensitivity: 15",
		"Mouse Scroll Sensitivity: 80",
		"Trigger Threshold: 0.25",
		"Command mode exited.",
		"Press F1 to enter command mode again.",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("output does not contain %q", want)
		}
	}
	test.ExpectEquality(t, term.modes, []string{"canonical", "cbreak"})
}

func TestExitCommand(t *testing.T) {
	poller := &script{stop: func() bool { return false }}
	c, _, _, term := newTestControllerX(t, config.Default(), poller, ":exit\n")

	test.ExpectSuccess(t, c.Run())
	test.ExpectFailure(t, c.isRunning())
	test.ExpectEquality(t, term.modes, []string{"canonical", "cbreak"})
}

func TestLineBufferedHotkey(t *testing.T) {
	var out *strings.Builder
	poller := &script{
		stop: func() bool {
			return strings.Contains(out.String(), "Command mode exited.")
		},
	}

	var c *ControllerX
	c, _, out, _ = newTestControllerX(t, config.Default(), poller, ":\r\n\r\nprint_spec\r\n")

	test.ExpectSuccess(t, c.Run())

	// the blank remainder of the hotkey line is not taken as a command
	s := out.String()
	test.ExpectFailure(t, strings.Contains(s, "Command not found"))
	test.ExpectSuccess(t, strings.Contains(s, "Analog Stick Deadzone: 0.15"))
}

func TestPerButtonRelease(t *testing.T) {
	cfg := config.Default()
	cfg.ButtonEdges = config.PerButton

	poller := &script{
		snapshots: []gamepad.Snapshot{
			{Buttons: gamepad.A},
			{Buttons: gamepad.A | gamepad.X, TrigL: 255},
		},
	}
	c, sink, _, _ := newTestControllerX(t, cfg, poller, "")

	test.ExpectSuccess(t, c.Run())

	// keys held when the controller is lost are released
	test.ExpectEquality(t, sink.events, []translate.Event{
		press(translate.KeyVolumeDown),
		release(translate.MouseLeft),
		release(translate.MouseRight),
		press(translate.KeyAlt),
		press(translate.MouseRight),
		release(translate.KeyVolumeDown),
		release(translate.KeyAlt),
		release(translate.MouseRight),
	})
}

func TestInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Deadzone = 2
	_, err := NewControllerX(cfg, &script{}, &recorder{}, strings.NewReader(""), &strings.Builder{}, &terminal{})
	test.ExpectFailure(t, err)
}
