package touchpad

import (
	"context"
	"errors"

	"github.com/jochenvg/go-udev"
)

// WaitForTouchpad blocks until a touchpad is present, checking the
// current device set once before subscribing to hotplug events. It
// returns the context error when cancelled while waiting.
func WaitForTouchpad(ctx context.Context) (Candidate, error) {
	cand, err := First()
	if err == nil {
		return cand, nil
	}
	if !errors.Is(err, ErrNoTouchpad) {
		return Candidate{}, err
	}

	u := udev.Udev{}
	m := u.NewMonitorFromNetlink("udev")
	if m == nil {
		return Candidate{}, errors.New("udev monitor unavailable")
	}

	// The child context stops the monitor goroutine once a match is
	// found; the channel only closes on context cancellation.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ch, err := m.DeviceChan(ctx)
	if err != nil {
		return Candidate{}, err
	}

	for d := range ch {
		if d.Action() != "add" {
			continue
		}
		if d.PropertyValue("ID_INPUT_TOUCHPAD") != "1" {
			continue
		}
		if c, ok := candidateFromDevice(d); ok {
			return c, nil
		}
	}
	if err := ctx.Err(); err != nil {
		return Candidate{}, err
	}
	return Candidate{}, errors.New("udev monitor closed")
}
