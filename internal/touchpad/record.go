package touchpad

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"syscall"

	"github.com/holoplot/go-evdev"
	"github.com/lunixbochs/struc"

	"github.com/asterpro/absTouch/internal/touch"
)

// ErrNotRecording is returned when a replay source does not start with
// the recording header.
var ErrNotRecording = errors.New("not an abstouch recording")

var recordingMagic = [8]byte{'A', 'B', 'S', 'T', 'R', 'E', 'C', '1'}

var packOptions = &struc.Options{Order: binary.LittleEndian}

// recordingHeader opens a recording and carries the calibration of the
// pad the events came from, so replays need no live device.
type recordingHeader struct {
	Magic [8]byte
	XMin  int32
	XMax  int32
	YMin  int32
	YMax  int32
}

// eventFrame is the on-disk layout of one event: the kernel's 64-bit
// input_event struct, little-endian, 24 bytes.
type eventFrame struct {
	Sec   int64
	Usec  int64
	Type  uint16
	Code  uint16
	Value int32
}

// WriteHeader starts a recording on w.
func WriteHeader(w io.Writer, cal touch.Calibration) error {
	h := recordingHeader{
		Magic: recordingMagic,
		XMin:  cal.X.Min,
		XMax:  cal.X.Max,
		YMin:  cal.Y.Min,
		YMax:  cal.Y.Max,
	}
	return struc.PackWithOptions(w, &h, packOptions)
}

// ReadHeader consumes a recording header and returns the calibration
// it carries.
func ReadHeader(r io.Reader) (touch.Calibration, error) {
	var h recordingHeader
	if err := struc.UnpackWithOptions(r, &h, packOptions); err != nil {
		return touch.Calibration{}, fmt.Errorf("reading recording header: %w", err)
	}
	if !bytes.Equal(h.Magic[:], recordingMagic[:]) {
		return touch.Calibration{}, ErrNotRecording
	}
	return touch.NewCalibration(
		touch.AxisRange{Min: h.XMin, Max: h.XMax},
		touch.AxisRange{Min: h.YMin, Max: h.YMax},
	)
}

// WriteEvent appends one event to a recording.
func WriteEvent(w io.Writer, ev *evdev.InputEvent) error {
	f := eventFrame{
		Sec:   int64(ev.Time.Sec),
		Usec:  int64(ev.Time.Usec),
		Type:  uint16(ev.Type),
		Code:  uint16(ev.Code),
		Value: ev.Value,
	}
	return struc.PackWithOptions(w, &f, packOptions)
}

// ReadEvent reads the next event from a recording. io.EOF signals the
// clean end of the stream.
func ReadEvent(r io.Reader) (*evdev.InputEvent, error) {
	var f eventFrame
	if err := struc.UnpackWithOptions(r, &f, packOptions); err != nil {
		return nil, err
	}
	return &evdev.InputEvent{
		Time:  syscall.NsecToTimeval(f.Sec*1e9 + f.Usec*1e3),
		Type:  evdev.EvType(f.Type),
		Code:  evdev.EvCode(f.Code),
		Value: f.Value,
	}, nil
}

// RecordingDevice wraps a Device and copies every event that passes
// through it to a writer, for later replay.
type RecordingDevice struct {
	Device
	w io.Writer
}

// NewRecording starts a recording of dev on w. The header is written
// immediately from the device's calibration.
func NewRecording(dev Device, w io.Writer) (*RecordingDevice, error) {
	cal, err := Calibrate(dev)
	if err != nil {
		return nil, err
	}
	if err := WriteHeader(w, cal); err != nil {
		return nil, fmt.Errorf("starting recording: %w", err)
	}
	return &RecordingDevice{Device: dev, w: w}, nil
}

// NextEvent reads from the wrapped device and tees the event into the
// recording before handing it on.
func (r *RecordingDevice) NextEvent() (*evdev.InputEvent, error) {
	ev, err := r.Device.NextEvent()
	if err != nil {
		return nil, err
	}
	if err := WriteEvent(r.w, ev); err != nil {
		return nil, fmt.Errorf("recording event: %w", err)
	}
	return ev, nil
}
