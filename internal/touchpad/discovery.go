package touchpad

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jochenvg/go-udev"
)

// ErrNoTouchpad is returned when no device on the system carries the
// touchpad property.
var ErrNoTouchpad = errors.New("no touchpad found")

// Candidate is a touchpad the session could run against.
type Candidate struct {
	// Path is the event device node, e.g. /dev/input/event7.
	Path string

	// Name is the human-readable device name resolved through udev,
	// or the node basename when no ancestor carries one.
	Name string

	// Syspath is the udev device path, kept for diagnostics.
	Syspath string
}

// enumerateTouchpads lists devices carrying the touchpad property.
// Swapped in tests; the default implementation asks udev.
var enumerateTouchpads = udevTouchpads

// Discover returns all touchpads currently present, in udev
// enumeration order. ErrNoTouchpad when there are none.
func Discover() ([]Candidate, error) {
	cands, err := enumerateTouchpads()
	if err != nil {
		return nil, fmt.Errorf("enumerating input devices: %w", err)
	}
	if len(cands) == 0 {
		return nil, ErrNoTouchpad
	}
	return cands, nil
}

// First returns the touchpad a session uses when none is configured
// explicitly.
func First() (Candidate, error) {
	cands, err := Discover()
	if err != nil {
		return Candidate{}, err
	}
	return cands[0], nil
}

func udevTouchpads() ([]Candidate, error) {
	u := udev.Udev{}
	e := u.NewEnumerate()
	if err := e.AddMatchSubsystem("input"); err != nil {
		return nil, err
	}
	if err := e.AddMatchProperty("ID_INPUT_TOUCHPAD", "1"); err != nil {
		return nil, err
	}

	devices, err := e.Devices()
	if err != nil {
		return nil, err
	}

	var cands []Candidate
	for _, d := range devices {
		if c, ok := candidateFromDevice(d); ok {
			cands = append(cands, c)
		}
	}
	return cands, nil
}

// candidateFromDevice filters one udev match down to a usable event
// node. The touchpad property is also set on sibling nodes such as
// /dev/input/mouseN, which cannot deliver absolute events.
func candidateFromDevice(d *udev.Device) (Candidate, bool) {
	node := d.Devnode()
	if !isEventNode(node) {
		return Candidate{}, false
	}

	name := ancestorName(d)
	if name == "" {
		name = filepath.Base(node)
	}
	return Candidate{Path: node, Name: name, Syspath: d.Syspath()}, true
}

func isEventNode(node string) bool {
	return node != "" && strings.HasPrefix(filepath.Base(node), "event")
}

// ancestorName walks up the udev tree for a NAME property. The event
// node itself rarely carries one; its input parent does, quoted.
func ancestorName(d *udev.Device) string {
	for p := d; p != nil; p = p.Parent() {
		if name := p.PropertyValue("NAME"); name != "" {
			return strings.Trim(name, `"`)
		}
	}
	return ""
}
