package touch

import (
	"github.com/holoplot/go-evdev"
)

// FromDeviceEvent translates a kernel input event into the
// interpreter's vocabulary. The second return is false for events the
// state machine has no use for; callers drop those on the floor.
func FromDeviceEvent(ev *evdev.InputEvent) (Event, bool) {
	switch ev.Type {
	case evdev.EV_ABS:
		switch ev.Code {
		case evdev.ABS_X:
			return Event{Type: AxisSample, Axis: AxisX, Value: ev.Value}, true
		case evdev.ABS_Y:
			return Event{Type: AxisSample, Axis: AxisY, Value: ev.Value}, true
		}

	case evdev.EV_KEY:
		switch ev.Code {
		case evdev.BTN_TOUCH:
			// Touch begin is implied by the first axis packet of a
			// contact; only the lift matters here.
			if ev.Value == 0 {
				return Event{Type: ContactEnd}, true
			}
		case evdev.BTN_LEFT, evdev.BTN_RIGHT:
			return Event{Type: Click, Pressed: ev.Value == 1}, true
		}

	case evdev.EV_SYN:
		// SYN_DROPPED and friends are not packet boundaries.
		if ev.Code == evdev.SYN_REPORT {
			return Event{Type: Sync}, true
		}
	}

	return Event{}, false
}
