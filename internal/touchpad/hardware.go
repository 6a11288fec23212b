package touchpad

import (
	"path/filepath"

	"github.com/holoplot/go-evdev"
)

// HardwareDevice wraps a kernel evdev device to implement the Device
// interface.
type HardwareDevice struct {
	dev  *evdev.InputDevice
	path string
	name string
}

// OpenHardware opens the event device node at path.
func OpenHardware(path string) (*HardwareDevice, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, err
	}

	h := &HardwareDevice{dev: dev, path: path}
	if name, err := dev.Name(); err == nil && name != "" {
		h.name = name
	} else {
		h.name = filepath.Base(path)
	}
	return h, nil
}

// Name returns the device name the kernel reports, or the node
// basename when the kernel has none.
func (h *HardwareDevice) Name() string {
	return h.name
}

// Path returns the event device node path.
func (h *HardwareDevice) Path() string {
	return h.path
}

// AbsInfos returns the ranges of the device's absolute axes.
func (h *HardwareDevice) AbsInfos() (map[evdev.EvCode]evdev.AbsInfo, error) {
	return h.dev.AbsInfos()
}

// NextEvent blocks until the next input event arrives.
func (h *HardwareDevice) NextEvent() (*evdev.InputEvent, error) {
	return h.dev.ReadOne()
}

// Grab takes exclusive access; grabbed events no longer reach other
// readers, including the compositor.
func (h *HardwareDevice) Grab() error {
	return h.dev.Grab()
}

// Ungrab releases exclusive access.
func (h *HardwareDevice) Ungrab() error {
	return h.dev.Ungrab()
}

// Close closes the device node. A blocked NextEvent returns once the
// node is closed.
func (h *HardwareDevice) Close() error {
	return h.dev.Close()
}
