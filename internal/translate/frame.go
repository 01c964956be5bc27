package translate

import (
	"fmt"

	"github.com/nealhardesty/controllerx/internal/config"
	"github.com/nealhardesty/controllerx/internal/gamepad"
)

// Translator runs every translator over one snapshot and submits the events
// to the sink. It owns the edge state of the buttons and both triggers.
type Translator struct {
	cfg  config.Sensitivity
	sink Sink

	buttons *ButtonTranslator

	// the right trigger drives the primary mouse button and the left trigger
	// drives the secondary one
	rightTrigger *TriggerTranslator
	leftTrigger  *TriggerTranslator
}

// NewTranslator is the preferred method of initialisation for the Translator
// type.
func NewTranslator(cfg config.Sensitivity, sink Sink) *Translator {
	return &Translator{
		cfg:          cfg,
		sink:         sink,
		buttons:      NewButtonTranslator(cfg.ButtonEdges),
		rightTrigger: NewTriggerTranslator(MouseLeft),
		leftTrigger:  NewTriggerTranslator(MouseRight),
	}
}

// Frame translates a snapshot. Buttons are translated first, followed by
// pointer movement, scrolling, and the right and left triggers. ErrQuit is
// returned, before anything is sent, when the escape button is pressed.
func (t *Translator) Frame(s gamepad.Snapshot) error {
	events, err := t.buttons.Translate(s.Buttons)
	if err != nil {
		return err
	}
	if err := t.send(events...); err != nil {
		return err
	}

	x, y := t.sink.Position()
	if ev, ok := Move(t.cfg, x, y, s.RightX, s.RightY); ok {
		if err := t.send(ev); err != nil {
			return err
		}
	}

	if err := t.send(ScrollEvents(t.cfg, s.LeftX, s.LeftY)...); err != nil {
		return err
	}

	if err := t.send(t.rightTrigger.Translate(t.cfg, s.TrigR)...); err != nil {
		return err
	}
	return t.send(t.leftTrigger.Translate(t.cfg, s.TrigL)...)
}

// Release sends the events that release every key and mouse button still
// held down.
func (t *Translator) Release() error {
	var events []Event
	events = append(events, t.buttons.Release()...)
	events = append(events, t.rightTrigger.Release()...)
	events = append(events, t.leftTrigger.Release()...)
	return t.send(events...)
}

func (t *Translator) send(events ...Event) error {
	if len(events) == 0 {
		return nil
	}
	if err := t.sink.Send(events...); err != nil {
		return fmt.Errorf("failed to send %s: %w", events[0], err)
	}
	return nil
}
