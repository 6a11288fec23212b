// Package pointerlock suspends a touchpad's normal pointer function
// for the duration of a session and restores it afterwards. Each
// desktop environment needs a different lever; they all reduce to an
// acquire/release pair.
package pointerlock

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Locker takes the pointer device out of normal service.
// Release must run on every session exit path, including errors and
// interrupts, or the user is left without a working pointer.
type Locker interface {
	// Name identifies the backend in logs and status output.
	Name() string

	Acquire() error
	Release() error
}

// Backend names accepted by ForSession.
const (
	BackendAuto      = "auto"
	BackendXInput    = "xinput"
	BackendGSettings = "gsettings"
	BackendGrab      = "grab"
	BackendNone      = "none"
)

// runCommand shells out to a desktop tool. Swapped in tests.
var runCommand = func(name string, arg ...string) ([]byte, error) {
	return exec.Command(name, arg...).Output()
}

// lookupEnv is swapped in tests.
var lookupEnv = os.Getenv

// ForSession picks the locker for the configured backend. Auto follows
// the session type the way the desktop expects: the GNOME settings
// toggle under Wayland, xinput everywhere else.
func ForSession(backend, deviceName string, dev GrabDevice) (Locker, error) {
	switch backend {
	case BackendAuto, "":
		if lookupEnv("XDG_SESSION_TYPE") == "wayland" {
			return &GnomeSettings{}, nil
		}
		return &XInput{Device: deviceName}, nil
	case BackendXInput:
		return &XInput{Device: deviceName}, nil
	case BackendGSettings:
		return &GnomeSettings{}, nil
	case BackendGrab:
		if dev == nil {
			return nil, errors.New("grab backend needs an open device")
		}
		return &Grab{Device: dev}, nil
	case BackendNone:
		return Noop{}, nil
	}
	return nil, fmt.Errorf("unknown pointer lock backend %q", backend)
}
