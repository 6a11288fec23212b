package pointerlock

// Noop is the backend for replays and for callers that manage the
// pointer themselves.
type Noop struct{}

// Name returns "none".
func (Noop) Name() string {
	return BackendNone
}

// Acquire does nothing.
func (Noop) Acquire() error {
	return nil
}

// Release does nothing.
func (Noop) Release() error {
	return nil
}
