package touch

// Interpreter folds raw touchpad events into position reports.
//
// It keeps three positions: the packet being assembled, the packet as
// of the last sync marker, and the position last handed to the
// consumer. Events between sync markers only mutate state; each sync
// marker commits the assembled packet atomically and emits exactly one
// Report. A button press does not mutate state at all; it asks the
// caller to end the session.
type Interpreter struct {
	cal Calibration

	// pending accumulates axis updates between sync markers.
	pending Position
	// committed is the position as of the last sync marker.
	committed Position
	// reported is the position last emitted to the consumer; it is the
	// anchor motion is measured against.
	reported Position
}

// NewInterpreter returns an interpreter with all three positions
// starting as "no contact".
func NewInterpreter(cal Calibration) *Interpreter {
	return &Interpreter{cal: cal}
}

// Advance feeds one event through the state machine. Unrecognized
// event types are a no-op.
func (in *Interpreter) Advance(ev Event) Step {
	switch ev.Type {
	case AxisSample:
		p := in.pending
		switch ev.Axis {
		case AxisX:
			p.X = in.cal.X.Normalize(ev.Value)
		case AxisY:
			p.Y = in.cal.Y.Normalize(ev.Value)
		default:
			return Step{}
		}
		p.Present = true
		in.pending = p

	case ContactEnd:
		// Contact end invalidates the whole position, not one axis.
		in.pending = Position{}

	case Click:
		if ev.Pressed {
			return Step{Cancelled: true}
		}

	case Sync:
		in.committed = in.pending
		return Step{Report: in.report(), Emitted: true}
	}

	return Step{}
}

// report applies the output rule for one committed packet and advances
// the anchor.
func (in *Interpreter) report() Report {
	if in.committed == in.reported {
		return Report{Kind: NoChange}
	}

	rep := Report{Kind: NoChange}
	if in.committed.Present && in.reported.Present {
		rep = Report{Kind: Moved, Pos: in.committed}
	}
	// When the anchor was absent and a contact just appeared, this is
	// the tap-start fix-up: the first committed position of a new
	// contact becomes the baseline rather than a motion. Very short
	// taps may deliver only one or two samples, and reporting the
	// first as a move would paint a stray point with no prior anchor.
	in.reported = in.committed
	return rep
}
