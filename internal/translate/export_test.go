package translate

import "github.com/nealhardesty/controllerx/internal/gamepad"

// Last returns the most recent bitmask translated.
func (t *ButtonTranslator) Last() gamepad.Button {
	return t.last
}

// State returns the last edge emitted.
func (t *TriggerTranslator) State() TriggerState {
	return t.state
}
