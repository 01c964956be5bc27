package translate

import (
	"errors"

	"github.com/nealhardesty/controllerx/internal/config"
	"github.com/nealhardesty/controllerx/internal/gamepad"
)

// ErrQuit is returned when the escape button is pressed.
var ErrQuit = errors.New("escape button pressed")

// ButtonTranslator converts the digital button bitmask into key and mouse
// button events. The zero value translates whole masks.
type ButtonTranslator struct {
	edges config.ButtonEdges

	// the most recent bitmask translated
	last gamepad.Button
}

// NewButtonTranslator is the preferred method of initialisation for the
// ButtonTranslator type.
func NewButtonTranslator(edges config.ButtonEdges) *ButtonTranslator {
	return &ButtonTranslator{edges: edges}
}

// Translate returns the events for the new bitmask. An unchanged bitmask
// produces no events. ErrQuit is returned, with no events, when the escape
// button is pressed.
func (t *ButtonTranslator) Translate(b gamepad.Button) ([]Event, error) {
	if b == t.last {
		return nil, nil
	}
	if t.edges == config.PerButton {
		return t.perButton(b)
	}
	return t.wholeMask(b)
}

func (t *ButtonTranslator) wholeMask(b gamepad.Button) ([]Event, error) {
	if b == EscapeButton {
		return nil, ErrQuit
	}
	t.last = b

	target, ok := Keymap(b)
	if !ok {
		return nil, nil
	}
	return []Event{
		{Kind: Press, Target: target},
		{Kind: Release, Target: target},
	}, nil
}

func (t *ButtonTranslator) perButton(b gamepad.Button) ([]Event, error) {
	changed := b ^ t.last
	if changed&b&EscapeButton != 0 {
		return nil, ErrQuit
	}

	var events []Event
	for _, bt := range gamepad.Buttons {
		if changed&bt == 0 {
			continue
		}
		target, ok := Keymap(bt)
		if !ok {
			continue
		}
		if b&bt != 0 {
			events = append(events, Event{Kind: Press, Target: target})
		} else {
			events = append(events, Event{Kind: Release, Target: target})
		}
	}
	t.last = b

	return events, nil
}

// Release returns the events that release every target still held down and
// forgets the last bitmask. Only per-button translation holds targets.
func (t *ButtonTranslator) Release() []Event {
	if t.edges != config.PerButton {
		t.last = 0
		return nil
	}

	events, _ := t.perButton(t.last & EscapeButton)
	t.last = 0
	return events
}
