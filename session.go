package arbor

// GestureSession is the state of one down → move… → up interaction. The
// router creates it on mouse-down, passes it by reference to every event of
// the gesture, and drops it on mouse-up.
type GestureSession struct {
	// View receives move and up events; nil means the blank canvas.
	View CellView
	// MovedCount counts move events since mouse-down.
	MovedCount int

	data map[string]any
}

// Set stores a value in the session's data bag. Views use it to carry
// drag state between their mouse handlers.
func (s *GestureSession) Set(key string, v any) {
	if s.data == nil {
		s.data = make(map[string]any)
	}
	s.data[key] = v
}

// Get returns a value from the data bag, or nil.
func (s *GestureSession) Get(key string) any {
	return s.data[key]
}

// movedCount returns the move count of e's session, or 0 outside a gesture.
func movedCount(e *PointerEvent) int {
	if e.Session == nil {
		return 0
	}
	return e.Session.MovedCount
}
