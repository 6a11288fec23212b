package pointerlock

import "fmt"

// XInput disables the device's pointer delivery through the X server.
// Events keep flowing on the evdev node, which is exactly what a
// session wants.
type XInput struct {
	// Device is the device name as the X server knows it.
	Device string
}

// Name returns "xinput".
func (x *XInput) Name() string {
	return BackendXInput
}

// Acquire disables the device as an X input source.
func (x *XInput) Acquire() error {
	if _, err := runCommand("xinput", "disable", x.Device); err != nil {
		return fmt.Errorf("xinput disable %q: %w", x.Device, err)
	}
	return nil
}

// Release re-enables the device.
func (x *XInput) Release() error {
	if _, err := runCommand("xinput", "enable", x.Device); err != nil {
		return fmt.Errorf("xinput enable %q: %w", x.Device, err)
	}
	return nil
}
