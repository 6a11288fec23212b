package pointerlock

import (
	"errors"
	"fmt"
	"strings"
)

const (
	touchpadSchema = "org.gnome.desktop.peripherals.touchpad"
	sendEventsKey  = "send-events"
	sendEventsPath = "/org/gnome/desktop/peripherals/touchpad/send-events"
)

// ErrUnexpectedState is returned when the GNOME send-events key holds
// a value this backend does not know how to restore.
var ErrUnexpectedState = errors.New("unexpected touchpad state")

// GnomeSettings toggles the GNOME send-events setting for touchpads,
// remembering the prior value so Release can put it back.
type GnomeSettings struct {
	prior string
}

// Name returns "gsettings".
func (g *GnomeSettings) Name() string {
	return BackendGSettings
}

// Acquire reads the current send-events value, validates it, and
// writes 'disabled'.
func (g *GnomeSettings) Acquire() error {
	out, err := runCommand("gsettings", "get", touchpadSchema, sendEventsKey)
	if err != nil {
		return fmt.Errorf("reading %s %s: %w", touchpadSchema, sendEventsKey, err)
	}

	prior := strings.TrimSpace(string(out))
	// Arch-based distros leave the key empty until first written.
	if prior == "" {
		prior = "'enabled'"
	}
	switch prior {
	case "'enabled'", "'disabled'", "'disabled-on-external-mouse'":
	default:
		return fmt.Errorf("%w %s, is this GNOME?", ErrUnexpectedState, prior)
	}

	if _, err := runCommand("dconf", "write", sendEventsPath, "'disabled'"); err != nil {
		return fmt.Errorf("disabling touchpad events: %w", err)
	}
	g.prior = prior
	return nil
}

// Release restores the value found at Acquire time. A release without
// a prior acquire is a no-op.
func (g *GnomeSettings) Release() error {
	if g.prior == "" {
		return nil
	}
	if _, err := runCommand("dconf", "write", sendEventsPath, g.prior); err != nil {
		return fmt.Errorf("restoring touchpad events: %w", err)
	}
	g.prior = ""
	return nil
}
