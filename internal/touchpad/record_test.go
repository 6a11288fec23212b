package touchpad

import (
	"bytes"
	"errors"
	"io"
	"syscall"
	"testing"

	"github.com/holoplot/go-evdev"

	"github.com/asterpro/absTouch/internal/touch"
)

func testRecordingCal(t *testing.T) touch.Calibration {
	t.Helper()
	cal, err := touch.NewCalibration(
		touch.AxisRange{Min: 0, Max: 1000},
		touch.AxisRange{Min: -50, Max: 450},
	)
	if err != nil {
		t.Fatalf("NewCalibration: %v", err)
	}
	return cal
}

func TestRecordingRoundTrip(t *testing.T) {
	events := []evdev.InputEvent{
		{Type: evdev.EV_ABS, Code: evdev.ABS_X, Value: 120},
		{Type: evdev.EV_ABS, Code: evdev.ABS_Y, Value: 300},
		{Time: syscall.NsecToTimeval(1_500_000_000), Type: evdev.EV_SYN, Code: evdev.SYN_REPORT},
		{Type: evdev.EV_KEY, Code: evdev.BTN_TOUCH, Value: 0},
	}

	var buf bytes.Buffer
	if err := WriteHeader(&buf, testRecordingCal(t)); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}
	for i := range events {
		if err := WriteEvent(&buf, &events[i]); err != nil {
			t.Fatalf("WriteEvent %d: %v", i, err)
		}
	}

	replay, err := OpenReplay("test", &buf)
	if err != nil {
		t.Fatalf("OpenReplay: %v", err)
	}

	cal, err := Calibrate(replay)
	if err != nil {
		t.Fatalf("Calibrate on replay: %v", err)
	}
	if cal != testRecordingCal(t) {
		t.Errorf("replayed calibration = %+v, want %+v", cal, testRecordingCal(t))
	}

	for i := range events {
		got, err := replay.NextEvent()
		if err != nil {
			t.Fatalf("NextEvent %d: %v", i, err)
		}
		want := events[i]
		if got.Type != want.Type || got.Code != want.Code || got.Value != want.Value {
			t.Errorf("event %d = %+v, want %+v", i, got, want)
		}
		if got.Time != want.Time {
			t.Errorf("event %d time = %+v, want %+v", i, got.Time, want.Time)
		}
	}

	if _, err := replay.NextEvent(); err != io.EOF {
		t.Fatalf("NextEvent past end = %v, want io.EOF", err)
	}
}

func TestOpenReplayRejectsForeignData(t *testing.T) {
	junk := bytes.NewReader(bytes.Repeat([]byte{0xab}, 64))
	if _, err := OpenReplay("junk", junk); !errors.Is(err, ErrNotRecording) {
		t.Fatalf("OpenReplay error = %v, want ErrNotRecording", err)
	}

	short := bytes.NewReader([]byte{0x01, 0x02})
	if _, err := OpenReplay("short", short); err == nil {
		t.Fatal("OpenReplay accepted a truncated header")
	}
}

func TestRecordingDeviceTees(t *testing.T) {
	// Build a source recording, replay it through a RecordingDevice,
	// and check the copy replays identically.
	var src bytes.Buffer
	if err := WriteHeader(&src, testRecordingCal(t)); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}
	events := []evdev.InputEvent{
		{Type: evdev.EV_ABS, Code: evdev.ABS_X, Value: 10},
		{Type: evdev.EV_SYN, Code: evdev.SYN_REPORT},
	}
	for i := range events {
		if err := WriteEvent(&src, &events[i]); err != nil {
			t.Fatalf("WriteEvent %d: %v", i, err)
		}
	}

	source, err := OpenReplay("source", &src)
	if err != nil {
		t.Fatalf("OpenReplay: %v", err)
	}

	var copied bytes.Buffer
	rec, err := NewRecording(source, &copied)
	if err != nil {
		t.Fatalf("NewRecording: %v", err)
	}
	for {
		if _, err := rec.NextEvent(); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("NextEvent: %v", err)
		}
	}

	replay, err := OpenReplay("copy", &copied)
	if err != nil {
		t.Fatalf("OpenReplay on copy: %v", err)
	}
	for i := range events {
		got, err := replay.NextEvent()
		if err != nil {
			t.Fatalf("copy NextEvent %d: %v", i, err)
		}
		if got.Type != events[i].Type || got.Code != events[i].Code || got.Value != events[i].Value {
			t.Errorf("copied event %d = %+v, want %+v", i, got, events[i])
		}
	}
	if _, err := replay.NextEvent(); err != io.EOF {
		t.Fatalf("copy NextEvent past end = %v, want io.EOF", err)
	}
}
