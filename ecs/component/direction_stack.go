package component

// DirectionStack is the ordered set of held directions. The tail is the
// direction of motion; each direction appears at most once.
type DirectionStack struct {
	dirs []Direction
}

// Push appends d unless it is already held. It reports whether the stack
// changed.
func (s *DirectionStack) Push(d Direction) bool {
	if s == nil || !d.Valid() || s.Contains(d) {
		return false
	}
	s.dirs = append(s.dirs, d)
	return true
}

// Remove deletes d wherever it sits. It reports whether d was held.
func (s *DirectionStack) Remove(d Direction) bool {
	if s == nil {
		return false
	}
	for i, held := range s.dirs {
		if held == d {
			s.dirs = append(s.dirs[:i], s.dirs[i+1:]...)
			return true
		}
	}
	return false
}

// Current returns the most recently pushed direction still held.
func (s *DirectionStack) Current() (Direction, bool) {
	if s == nil || len(s.dirs) == 0 {
		return DirectionNone, false
	}
	return s.dirs[len(s.dirs)-1], true
}

func (s *DirectionStack) Contains(d Direction) bool {
	if s == nil {
		return false
	}
	for _, held := range s.dirs {
		if held == d {
			return true
		}
	}
	return false
}

func (s *DirectionStack) Len() int {
	if s == nil {
		return 0
	}
	return len(s.dirs)
}

// Directions returns a copy of the held directions, oldest first.
func (s *DirectionStack) Directions() []Direction {
	if s == nil {
		return nil
	}
	return append([]Direction(nil), s.dirs...)
}

func (s *DirectionStack) Clear() {
	if s == nil {
		return
	}
	s.dirs = s.dirs[:0]
}
