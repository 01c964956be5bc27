package translate

import (
	"math"

	"github.com/nealhardesty/controllerx/internal/config"
	"github.com/nealhardesty/controllerx/internal/gamepad"
)

// AxisFraction scales a stick axis to -1.0..1.0.
func AxisFraction(v int16) float64 {
	return float64(v) / gamepad.StickRange
}

// OutsideDeadzone returns true if the axis fraction is strictly outside the
// deadzone.
func OutsideDeadzone(fraction, deadzone float64) bool {
	return math.Abs(fraction) > deadzone
}

// Move returns the event that moves the pointer from (x, y) according to the
// stick. Positive stick y moves the pointer up the screen. The second return
// value is false if both axes are inside the deadzone, in which case the
// pointer must not be touched.
func Move(cfg config.Sensitivity, x, y int, stickX, stickY int16) (Event, bool) {
	fx := AxisFraction(stickX)
	fy := AxisFraction(stickY)
	outX := OutsideDeadzone(fx, cfg.Deadzone)
	outY := OutsideDeadzone(fy, cfg.Deadzone)
	if !outX && !outY {
		return Event{}, false
	}

	nx := float64(x)
	ny := float64(y)
	if outX {
		nx += fx * cfg.MoveSensitivity
	}
	if outY {
		ny -= fy * cfg.MoveSensitivity
	}

	return Event{Kind: MoveTo, X: int(nx), Y: int(ny)}, true
}

// ScrollEvents returns the scroll events for the stick. The x axis turns the
// vertical wheel and the y axis turns the horizontal wheel. An axis inside
// the deadzone, or one whose amount truncates to zero, produces no event.
func ScrollEvents(cfg config.Sensitivity, stickX, stickY int16) []Event {
	var events []Event

	if fx := AxisFraction(stickX); OutsideDeadzone(fx, cfg.Deadzone) {
		if amount := int(fx * cfg.ScrollSensitivity); amount != 0 {
			events = append(events, Event{Kind: Scroll, Wheel: VerticalWheel, Amount: amount})
		}
	}

	if fy := AxisFraction(stickY); OutsideDeadzone(fy, cfg.Deadzone) {
		if amount := int(fy * cfg.ScrollSensitivity); amount != 0 {
			events = append(events, Event{Kind: Scroll, Wheel: HorizontalWheel, Amount: amount})
		}
	}

	return events
}
