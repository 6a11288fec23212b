// Package touchpad provides access to the pad hardware: discovery of
// candidate devices, the raw event stream of a selected one, and its
// axis calibration.
package touchpad

import (
	"github.com/holoplot/go-evdev"
)

// Device is the interface the session reads a touchpad through.
// Both the evdev-backed hardware adapter and the replay device
// implement this interface.
type Device interface {
	// Device info
	Name() string
	Path() string

	// Calibration query
	AbsInfos() (map[evdev.EvCode]evdev.AbsInfo, error)

	// Event stream; blocks until an event arrives. Close unblocks a
	// pending read.
	NextEvent() (*evdev.InputEvent, error)

	// Exclusive access
	Grab() error
	Ungrab() error

	Close() error
}
