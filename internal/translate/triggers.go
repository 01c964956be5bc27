package translate

import (
	"fmt"

	"github.com/nealhardesty/controllerx/internal/config"
	"github.com/nealhardesty/controllerx/internal/gamepad"
)

// TriggerState is the last edge emitted for a trigger.
type TriggerState int

// List of valid TriggerState values.
const (
	TriggerUnknown TriggerState = iota
	TriggerDown
	TriggerUp
)

func (s TriggerState) String() string {
	switch s {
	case TriggerUnknown:
		return "unknown"
	case TriggerDown:
		return "down"
	case TriggerUp:
		return "up"
	}
	return fmt.Sprintf("TriggerState(%d)", int(s))
}

// Edge is the transition produced by StepTrigger.
type Edge int

// List of valid Edge values.
const (
	NoEdge Edge = iota
	RisingEdge
	FallingEdge
)

// Activated returns true if the trigger magnitude reaches the threshold.
func Activated(cfg config.Sensitivity, magnitude uint8) bool {
	var v float64
	switch cfg.TriggerNormalization {
	case config.IntegerTruncation:
		v = float64(int(magnitude) / gamepad.TriggerRange)
	default:
		v = float64(magnitude) / gamepad.TriggerRange
	}
	return v >= cfg.TriggerThreshold
}

// StepTrigger returns the new trigger state and the edge to emit, if any.
func StepTrigger(state TriggerState, activated bool) (TriggerState, Edge) {
	if activated {
		if state == TriggerDown {
			return state, NoEdge
		}
		return TriggerDown, RisingEdge
	}
	if state == TriggerUp {
		return state, NoEdge
	}
	return TriggerUp, FallingEdge
}

// TriggerTranslator converts a trigger magnitude into edge-triggered presses
// and releases of a mouse button.
type TriggerTranslator struct {
	button Target
	state  TriggerState
}

// NewTriggerTranslator is the preferred method of initialisation for the
// TriggerTranslator type.
func NewTriggerTranslator(button Target) *TriggerTranslator {
	return &TriggerTranslator{button: button}
}

// Translate returns the event for the magnitude, if any.
func (t *TriggerTranslator) Translate(cfg config.Sensitivity, magnitude uint8) []Event {
	var edge Edge
	t.state, edge = StepTrigger(t.state, Activated(cfg, magnitude))

	switch edge {
	case RisingEdge:
		return []Event{{Kind: Press, Target: t.button}}
	case FallingEdge:
		return []Event{{Kind: Release, Target: t.button}}
	}
	return nil
}

// Release returns the event that releases the button if it is held down.
func (t *TriggerTranslator) Release() []Event {
	if t.state != TriggerDown {
		return nil
	}
	t.state, _ = StepTrigger(t.state, false)
	return []Event{{Kind: Release, Target: t.button}}
}
