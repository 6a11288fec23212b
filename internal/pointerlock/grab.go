package pointerlock

import "fmt"

// GrabDevice is the slice of the device interface this backend needs.
type GrabDevice interface {
	Grab() error
	Ungrab() error
}

// Grab holds the kernel's exclusive grab on the pad node itself, so
// events stop reaching the compositor no matter which display server
// runs. The grabbing session keeps receiving them.
type Grab struct {
	Device GrabDevice
}

// Name returns "grab".
func (g *Grab) Name() string {
	return BackendGrab
}

// Acquire takes the exclusive grab.
func (g *Grab) Acquire() error {
	if err := g.Device.Grab(); err != nil {
		return fmt.Errorf("grabbing device: %w", err)
	}
	return nil
}

// Release drops the grab.
func (g *Grab) Release() error {
	if err := g.Device.Ungrab(); err != nil {
		return fmt.Errorf("releasing device grab: %w", err)
	}
	return nil
}
