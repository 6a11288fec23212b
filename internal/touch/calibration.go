package touch

import (
	"errors"
	"fmt"
)

// ErrBadRange is returned when an axis reports a range that cannot be
// normalized over.
var ErrBadRange = errors.New("axis range must satisfy max > min")

// AxisRange holds the raw calibration bounds of one absolute axis, as
// reported by the device. Created once at session start; immutable.
type AxisRange struct {
	Min int32
	Max int32
}

// Normalize maps a raw axis reading into [0, 1]. Readings outside the
// calibrated range are clamped; some hardware reports samples slightly
// past its own advertised bounds.
func (r AxisRange) Normalize(value int32) float64 {
	if value <= r.Min {
		return 0
	}
	if value >= r.Max {
		return 1
	}
	return float64(value-r.Min) / float64(r.Max-r.Min)
}

// Calibration holds the validated ranges for both axes.
type Calibration struct {
	X AxisRange
	Y AxisRange
}

// NewCalibration validates both axis ranges. A zero-width or inverted
// range means the device cannot be normalized over and is fatal.
func NewCalibration(x, y AxisRange) (Calibration, error) {
	if x.Max <= x.Min {
		return Calibration{}, fmt.Errorf("x axis [%d, %d]: %w", x.Min, x.Max, ErrBadRange)
	}
	if y.Max <= y.Min {
		return Calibration{}, fmt.Errorf("y axis [%d, %d]: %w", y.Min, y.Max, ErrBadRange)
	}
	return Calibration{X: x, Y: y}, nil
}
