// Package session drives one drawing session: pointer lock, the
// blocking event loop, and teardown.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/kataras/go-events"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/asterpro/absTouch/internal/pointerlock"
	"github.com/asterpro/absTouch/internal/touch"
	"github.com/asterpro/absTouch/internal/touchpad"
)

// EndReason says why a session stopped.
type EndReason uint8

const (
	// EndClick: the user pressed a pad button.
	EndClick EndReason = iota + 1
	// EndInterrupt: the surrounding process was asked to stop.
	EndInterrupt
	// EndStream: the event source ran out; replays end this way.
	EndStream
)

func (r EndReason) String() string {
	switch r {
	case EndClick:
		return "click"
	case EndInterrupt:
		return "interrupt"
	case EndStream:
		return "end of stream"
	}
	return "unknown"
}

// Session owns one run against one device. Event processing is
// single-threaded: every event drives at most one state transition, in
// arrival order.
type Session struct {
	dev    touchpad.Device
	lock   pointerlock.Locker
	interp *touch.Interpreter

	emmiter events.EventEmmiter
	logger  zerolog.Logger
}

// New assembles a session from an open device, a pointer lock backend,
// and a calibrated interpreter.
func New(dev touchpad.Device, lock pointerlock.Locker, interp *touch.Interpreter) *Session {
	return &Session{
		dev:     dev,
		lock:    lock,
		interp:  interp,
		emmiter: events.New(),
		logger:  log.With().Str("module", "session").Logger(),
	}
}

// OnPosition registers a listener for every position the interpreter
// reports. Listeners run synchronously on the event loop.
func (s *Session) OnPosition(listener func(p touch.Position)) {
	s.emmiter.On("position", func(payload ...any) {
		listener(payload[0].(touch.Position))
	})
}

// OnEnd registers a listener for the end of the session.
func (s *Session) OnEnd(listener func(reason EndReason)) {
	s.emmiter.On("end", func(payload ...any) {
		listener(payload[0].(EndReason))
	})
}

// Run locks the pointer and processes device events until a button
// press, an interrupt, or the end of the event stream. All three are
// normal ends of session and return nil; the lock is released on
// every path.
func (s *Session) Run(ctx context.Context) error {
	if err := s.lock.Acquire(); err != nil {
		return fmt.Errorf("acquiring pointer lock (%s): %w", s.lock.Name(), err)
	}
	defer func() {
		if err := s.lock.Release(); err != nil {
			s.logger.Warn().Err(err).Msg("releasing pointer lock")
		}
	}()

	// A blocked read does not notice context cancellation on its own;
	// closing the device node unblocks it.
	watchDone := make(chan struct{})
	defer close(watchDone)
	go func() {
		select {
		case <-ctx.Done():
			_ = s.dev.Close()
		case <-watchDone:
		}
	}()

	s.logger.Info().
		Str("device", s.dev.Name()).
		Str("path", s.dev.Path()).
		Str("lock", s.lock.Name()).
		Msg("session started")

	for {
		ev, err := s.dev.NextEvent()
		if err != nil {
			if ctx.Err() != nil {
				s.finish(EndInterrupt)
				return nil
			}
			if errors.Is(err, io.EOF) {
				s.finish(EndStream)
				return nil
			}
			return fmt.Errorf("reading device event: %w", err)
		}

		e, ok := touch.FromDeviceEvent(ev)
		if !ok {
			continue
		}

		step := s.interp.Advance(e)
		if step.Cancelled {
			s.finish(EndClick)
			return nil
		}
		if step.Emitted && step.Report.Kind == touch.Moved {
			s.emmiter.Emit("position", step.Report.Pos)
		}
	}
}

func (s *Session) finish(reason EndReason) {
	s.logger.Info().Str("reason", reason.String()).Msg("session ended")
	s.emmiter.Emit("end", reason)
}
