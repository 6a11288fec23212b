package touchpad

import (
	"fmt"

	"github.com/holoplot/go-evdev"

	"github.com/asterpro/absTouch/internal/touch"
)

// Calibrate reads the ranges of both pad axes and validates them. It
// is a pure read, performed once before any event is interpreted; a
// device that cannot be calibrated cannot be used at all.
func Calibrate(dev Device) (touch.Calibration, error) {
	infos, err := dev.AbsInfos()
	if err != nil {
		return touch.Calibration{}, fmt.Errorf("reading axis ranges of %s: %w", dev.Name(), err)
	}

	x, ok := infos[evdev.ABS_X]
	if !ok {
		return touch.Calibration{}, fmt.Errorf("%s reports no absolute x axis", dev.Name())
	}
	y, ok := infos[evdev.ABS_Y]
	if !ok {
		return touch.Calibration{}, fmt.Errorf("%s reports no absolute y axis", dev.Name())
	}

	cal, err := touch.NewCalibration(
		touch.AxisRange{Min: x.Minimum, Max: x.Maximum},
		touch.AxisRange{Min: y.Minimum, Max: y.Maximum},
	)
	if err != nil {
		return touch.Calibration{}, fmt.Errorf("calibrating %s: %w", dev.Name(), err)
	}
	return cal, nil
}
