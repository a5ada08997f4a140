package ecs

// store is the untyped view of a SparseSet used by queries and entity
// destruction.
type store interface {
	has(id entityID) bool
	remove(id entityID) bool
	ids() []entityID
}

// SparseSet is a dense, cache-friendly storage for one component type
// keyed by entity id.
type SparseSet[T any] struct {
	denseIDs    []entityID
	denseValues []*T
	sparse      []int
}

func newSparseSet[T any]() *SparseSet[T] {
	return &SparseSet[T]{}
}

func (s *SparseSet[T]) has(id entityID) bool {
	if s == nil || id == 0 || int(id) > len(s.sparse) {
		return false
	}
	idx := s.sparse[id-1]
	return idx >= 0 && idx < len(s.denseIDs) && s.denseIDs[idx] == id
}

func (s *SparseSet[T]) get(id entityID) (*T, bool) {
	if !s.has(id) {
		return nil, false
	}
	return s.denseValues[s.sparse[id-1]], true
}

func (s *SparseSet[T]) set(id entityID, v *T) {
	for int(id) > len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if s.has(id) {
		s.denseValues[s.sparse[id-1]] = v
		return
	}
	s.denseIDs = append(s.denseIDs, id)
	s.denseValues = append(s.denseValues, v)
	s.sparse[id-1] = len(s.denseIDs) - 1
}

func (s *SparseSet[T]) remove(id entityID) bool {
	if !s.has(id) {
		return false
	}
	idx := s.sparse[id-1]
	last := len(s.denseIDs) - 1
	lastID := s.denseIDs[last]

	s.denseIDs[idx] = lastID
	s.denseValues[idx] = s.denseValues[last]
	s.sparse[lastID-1] = idx

	s.denseIDs = s.denseIDs[:last]
	s.denseValues[last] = nil
	s.denseValues = s.denseValues[:last]
	s.sparse[id-1] = -1
	return true
}

func (s *SparseSet[T]) ids() []entityID {
	if s == nil {
		return nil
	}
	return s.denseIDs
}

func (s *SparseSet[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.denseIDs)
}
