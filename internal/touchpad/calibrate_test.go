package touchpad

import (
	"errors"
	"io"
	"testing"

	"github.com/holoplot/go-evdev"

	"github.com/asterpro/absTouch/internal/touch"
)

type fakeDevice struct {
	name  string
	infos map[evdev.EvCode]evdev.AbsInfo
	err   error
}

var _ Device = (*fakeDevice)(nil)

func (f *fakeDevice) Name() string { return f.name }
func (f *fakeDevice) Path() string { return "/dev/input/event0" }

func (f *fakeDevice) AbsInfos() (map[evdev.EvCode]evdev.AbsInfo, error) {
	return f.infos, f.err
}

func (f *fakeDevice) NextEvent() (*evdev.InputEvent, error) { return nil, io.EOF }
func (f *fakeDevice) Grab() error                           { return nil }
func (f *fakeDevice) Ungrab() error                         { return nil }
func (f *fakeDevice) Close() error                          { return nil }

func TestCalibrate(t *testing.T) {
	dev := &fakeDevice{
		name: "Test Touchpad",
		infos: map[evdev.EvCode]evdev.AbsInfo{
			evdev.ABS_X: {Minimum: 0, Maximum: 3200},
			evdev.ABS_Y: {Minimum: 0, Maximum: 2100},
		},
	}

	cal, err := Calibrate(dev)
	if err != nil {
		t.Fatalf("Calibrate: %v", err)
	}
	if cal.X != (touch.AxisRange{Min: 0, Max: 3200}) {
		t.Errorf("x range = %+v, want {0 3200}", cal.X)
	}
	if cal.Y != (touch.AxisRange{Min: 0, Max: 2100}) {
		t.Errorf("y range = %+v, want {0 2100}", cal.Y)
	}
}

func TestCalibrateMissingAxis(t *testing.T) {
	dev := &fakeDevice{
		name: "Test Touchpad",
		infos: map[evdev.EvCode]evdev.AbsInfo{
			evdev.ABS_X: {Minimum: 0, Maximum: 3200},
		},
	}

	if _, err := Calibrate(dev); err == nil {
		t.Fatal("Calibrate accepted a device without a y axis")
	}
}

func TestCalibrateZeroWidthRange(t *testing.T) {
	dev := &fakeDevice{
		name: "Test Touchpad",
		infos: map[evdev.EvCode]evdev.AbsInfo{
			evdev.ABS_X: {Minimum: 100, Maximum: 100},
			evdev.ABS_Y: {Minimum: 0, Maximum: 2100},
		},
	}

	_, err := Calibrate(dev)
	if !errors.Is(err, touch.ErrBadRange) {
		t.Fatalf("Calibrate error = %v, want ErrBadRange", err)
	}
}

func TestCalibrateReadFailure(t *testing.T) {
	readErr := errors.New("ioctl failed")
	dev := &fakeDevice{name: "Test Touchpad", err: readErr}

	_, err := Calibrate(dev)
	if !errors.Is(err, readErr) {
		t.Fatalf("Calibrate error = %v, want wrapped %v", err, readErr)
	}
}
