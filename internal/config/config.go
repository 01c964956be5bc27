// Package config holds the compiled-in tunables of the emulator. A
// Sensitivity value is built once at startup and passed by value to every
// translator; nothing in it changes while the emulator runs.
package config

import (
	"fmt"
	"io"
)

// ButtonEdges selects how digital button changes are detected.
type ButtonEdges int

const (
	// WholeMask compares the complete button bitmask with the last one seen
	// and taps the target of the new mask. Button combinations have no
	// target.
	WholeMask ButtonEdges = iota

	// PerButton compares every bit on its own. A pressed button holds its
	// target down until the button is released.
	PerButton
)

func (e ButtonEdges) String() string {
	switch e {
	case WholeMask:
		return "whole mask"
	case PerButton:
		return "per button"
	}
	return fmt.Sprintf("ButtonEdges(%d)", int(e))
}

// TriggerNormalization selects how a trigger magnitude is scaled before it is
// compared with the activation threshold.
type TriggerNormalization int

const (
	// Fractional scales the magnitude to 0.0..1.0.
	Fractional TriggerNormalization = iota

	// IntegerTruncation divides the magnitude by 255 in integer arithmetic.
	// Every magnitude below 255 becomes zero, so only a fully pressed
	// trigger can activate.
	IntegerTruncation
)

func (n TriggerNormalization) String() string {
	switch n {
	case Fractional:
		return "fractional"
	case IntegerTruncation:
		return "integer truncation"
	}
	return fmt.Sprintf("TriggerNormalization(%d)", int(n))
}

// Sensitivity is the immutable configuration of the translators.
type Sensitivity struct {
	// fraction of the stick range around the centre treated as no input
	Deadzone float64

	// pixels moved per poll at full stick deflection
	MoveSensitivity float64

	// wheel units scrolled per poll at full stick deflection
	ScrollSensitivity float64

	// fraction of the trigger range that activates a click
	TriggerThreshold float64

	ButtonEdges          ButtonEdges
	TriggerNormalization TriggerNormalization
}

// Default returns the compiled-in configuration.
func Default() Sensitivity {
	return Sensitivity{
		Deadzone:             0.15,
		MoveSensitivity:      15.0,
		ScrollSensitivity:    80.0,
		TriggerThreshold:     0.25,
		ButtonEdges:          WholeMask,
		TriggerNormalization: Fractional,
	}
}

// Validate checks that the fractions are in range and the sensitivities are
// not negative.
func (s Sensitivity) Validate() error {
	if s.Deadzone < 0 || s.Deadzone >= 1 {
		return fmt.Errorf("deadzone out of range [0,1): %v", s.Deadzone)
	}
	if s.TriggerThreshold < 0 || s.TriggerThreshold > 1 {
		return fmt.Errorf("trigger threshold out of range [0,1]: %v", s.TriggerThreshold)
	}
	if s.MoveSensitivity < 0 {
		return fmt.Errorf("negative mouse move sensitivity: %v", s.MoveSensitivity)
	}
	if s.ScrollSensitivity < 0 {
		return fmt.Errorf("negative mouse scroll sensitivity: %v", s.ScrollSensitivity)
	}
	return nil
}

// Print writes the configuration in the two-space indented style of the
// console.
func (s Sensitivity) Print(w io.Writer) {
	fmt.Fprintf(w, "  Analog Stick Deadzone: %v\n", s.Deadzone)
	fmt.Fprintf(w, "  Mouse Move Sensitivity: %v\n", s.MoveSensitivity)
	fmt.Fprintf(w, "  Mouse Scroll Sensitivity: %v\n", s.ScrollSensitivity)
	fmt.Fprintf(w, "  Trigger Threshold: %v\n", s.TriggerThreshold)
	fmt.Fprintf(w, "  Button Edges: %s\n", s.ButtonEdges)
	fmt.Fprintf(w, "  Trigger Normalization: %s\n", s.TriggerNormalization)
}
