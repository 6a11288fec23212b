package touch

// Axis identifies one of the two absolute axes of the pad.
type Axis uint8

const (
	// AxisX runs along the long edge of the pad.
	AxisX Axis = iota + 1
	// AxisY runs along the short edge of the pad.
	AxisY
)

// EventType indicates the kind of a raw device event.
type EventType uint8

const (
	// AxisSample carries a new absolute reading on one axis.
	AxisSample EventType = iota + 1
	// ContactEnd signals that the touch contact has lifted.
	ContactEnd
	// Click signals a physical button transition.
	Click
	// Sync marks the end of one hardware report packet.
	Sync
)

// Event is a raw device event in the interpreter's vocabulary. Wire
// events with no counterpart here are dropped before they reach the
// interpreter.
type Event struct {
	// Type indicates what kind of event occurred.
	Type EventType

	// Axis is the axis a sample belongs to.
	// Only meaningful for AxisSample events.
	Axis Axis

	// Value is the raw integer reading on Axis.
	// Only meaningful for AxisSample events.
	Value int32

	// Pressed is true when the button went down, false when it came
	// back up. Only meaningful for Click events.
	Pressed bool
}
