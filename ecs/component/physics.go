package component

// Motion is the per-entity movement state driven by key presses.
type Motion struct {
	Speed int
	Stack DirectionStack
	// LastDirection is captured when the stack empties and only picks the
	// idle animation row.
	LastDirection Direction
}

func (m *Motion) Moving() bool {
	return m != nil && m.Speed != 0
}

// Current returns the direction of motion, if any.
func (m *Motion) Current() (Direction, bool) {
	if m == nil {
		return DirectionNone, false
	}
	return m.Stack.Current()
}

// Facing returns the held direction, or the last one released, or
// DirectionNone when the entity has never moved.
func (m *Motion) Facing() Direction {
	if m == nil {
		return DirectionNone
	}
	if d, ok := m.Stack.Current(); ok {
		return d
	}
	return m.LastDirection
}

var MotionComponent = NewComponent[Motion]()
