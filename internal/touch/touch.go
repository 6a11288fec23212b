// Package touch turns raw touchpad events into normalized touch-position
// reports. It holds the calibration math and the interpretation state
// machine; it performs no I/O of its own.
package touch

// Position is a touch location in normalized pad coordinates.
// The zero value means "no contact".
type Position struct {
	// X and Y are normalized to [0, 1] across the pad surface.
	X float64
	Y float64

	// Present is true while a contact is on the pad. When false the
	// coordinates carry no meaning and are always zero.
	Present bool
}

// ReportKind indicates what one committed packet amounted to.
type ReportKind uint8

const (
	// NoChange indicates nothing new to report this cycle.
	NoChange ReportKind = iota + 1
	// Moved indicates the contact moved to a new position.
	Moved
)

// Report is the per-packet output of the interpreter. Exactly one Report
// is produced per sync marker consumed.
type Report struct {
	// Kind indicates whether the contact produced a new position.
	Kind ReportKind

	// Pos is the position the contact moved to.
	// Only meaningful for Moved reports.
	Pos Position
}

// Step is the outcome of feeding a single event to the interpreter.
type Step struct {
	// Report summarizes the packet that just completed.
	// Only meaningful when Emitted is true.
	Report Report

	// Emitted is true when the event was a sync marker and Report is set.
	Emitted bool

	// Cancelled is true when a physical button press asked to end the
	// session. This is the session's stop affordance, not an error.
	Cancelled bool
}
