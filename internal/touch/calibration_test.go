package touch

import (
	"errors"
	"testing"
)

func TestNormalizeClamps(t *testing.T) {
	tests := []struct {
		name  string
		r     AxisRange
		value int32
		want  float64
	}{
		{"below min", AxisRange{Min: 0, Max: 1000}, -50, 0},
		{"at min", AxisRange{Min: 0, Max: 1000}, 0, 0},
		{"midpoint", AxisRange{Min: 0, Max: 1000}, 500, 0.5},
		{"at max", AxisRange{Min: 0, Max: 1000}, 1000, 1},
		{"above max", AxisRange{Min: 0, Max: 1000}, 1200, 1},
		{"negative min midpoint", AxisRange{Min: -100, Max: 100}, 0, 0.5},
		{"offset range", AxisRange{Min: 1000, Max: 3000}, 1500, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Normalize(tt.value); got != tt.want {
				t.Errorf("Normalize(%d) over [%d, %d] = %v, want %v",
					tt.value, tt.r.Min, tt.r.Max, got, tt.want)
			}
		})
	}
}

func TestNewCalibration(t *testing.T) {
	valid := AxisRange{Min: 0, Max: 1000}

	tests := []struct {
		name    string
		x, y    AxisRange
		wantErr bool
	}{
		{"both valid", valid, AxisRange{Min: -50, Max: 50}, false},
		{"zero width x", AxisRange{Min: 10, Max: 10}, valid, true},
		{"zero width y", valid, AxisRange{Min: 10, Max: 10}, true},
		{"inverted x", AxisRange{Min: 100, Max: 0}, valid, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal, err := NewCalibration(tt.x, tt.y)
			if tt.wantErr {
				if !errors.Is(err, ErrBadRange) {
					t.Fatalf("NewCalibration error = %v, want ErrBadRange", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewCalibration: %v", err)
			}
			if cal.X != tt.x || cal.Y != tt.y {
				t.Errorf("NewCalibration = %+v, want {%+v %+v}", cal, tt.x, tt.y)
			}
		})
	}
}
