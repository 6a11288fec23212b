package touchpad

import (
	"io"

	"github.com/holoplot/go-evdev"
)

// ReplayDevice feeds a recorded event stream through the Device
// interface, so a session can run without pad hardware. The stream
// ends with io.EOF from NextEvent.
type ReplayDevice struct {
	name  string
	r     io.Reader
	infos map[evdev.EvCode]evdev.AbsInfo
}

// OpenReplay reads the recording header from r and prepares the
// remaining stream for replay.
func OpenReplay(name string, r io.Reader) (*ReplayDevice, error) {
	cal, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}
	return &ReplayDevice{
		name: name,
		r:    r,
		infos: map[evdev.EvCode]evdev.AbsInfo{
			evdev.ABS_X: {Minimum: cal.X.Min, Maximum: cal.X.Max},
			evdev.ABS_Y: {Minimum: cal.Y.Min, Maximum: cal.Y.Max},
		},
	}, nil
}

// Name returns the name given to the replay.
func (d *ReplayDevice) Name() string {
	return d.name
}

// Path identifies the replay in place of a device node.
func (d *ReplayDevice) Path() string {
	return "replay:" + d.name
}

// AbsInfos returns the axis ranges recorded in the header.
func (d *ReplayDevice) AbsInfos() (map[evdev.EvCode]evdev.AbsInfo, error) {
	return d.infos, nil
}

// NextEvent returns the next recorded event, or io.EOF at the end of
// the stream.
func (d *ReplayDevice) NextEvent() (*evdev.InputEvent, error) {
	return ReadEvent(d.r)
}

// Grab is a no-op: nothing else is reading a replay.
func (d *ReplayDevice) Grab() error {
	return nil
}

// Ungrab is a no-op.
func (d *ReplayDevice) Ungrab() error {
	return nil
}

// Close closes the underlying stream when it is closable.
func (d *ReplayDevice) Close() error {
	if c, ok := d.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
