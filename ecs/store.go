package ecs

// componentStore is sparse-set storage for one component kind: dense
// entity/value arrays plus a sparse index keyed by entity id, removal by
// swap-with-last. Values are held as *T behind any.
type componentStore struct {
	denseIDs  []entityID
	denseVals []any
	sparse    []int
}

func (s *componentStore) indexOf(id entityID) int {
	if s == nil || id == 0 || int(id)-1 >= len(s.sparse) {
		return -1
	}
	idx := s.sparse[id-1]
	if idx < 0 || idx >= len(s.denseIDs) || s.denseIDs[idx] != id {
		return -1
	}
	return idx
}

func (s *componentStore) has(id entityID) bool {
	return s.indexOf(id) >= 0
}

func (s *componentStore) get(id entityID) any {
	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}
	return s.denseVals[idx]
}

func (s *componentStore) set(id entityID, v any) {
	if s == nil || id == 0 {
		return
	}
	for int(id)-1 >= len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if idx := s.indexOf(id); idx >= 0 {
		s.denseVals[idx] = v
		return
	}
	s.denseIDs = append(s.denseIDs, id)
	s.denseVals = append(s.denseVals, v)
	s.sparse[id-1] = len(s.denseIDs) - 1
}

func (s *componentStore) remove(id entityID) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	last := len(s.denseIDs) - 1
	lastID := s.denseIDs[last]

	s.denseIDs[idx] = lastID
	s.denseVals[idx] = s.denseVals[last]
	s.sparse[lastID-1] = idx

	s.denseIDs = s.denseIDs[:last]
	s.denseVals = s.denseVals[:last]
	s.sparse[id-1] = -1
	return true
}

func (s *componentStore) len() int {
	if s == nil {
		return 0
	}
	return len(s.denseIDs)
}

// ids returns a copy of the dense id list so callers may mutate the store
// while iterating. Dense order is insertion order until a removal swaps.
func (s *componentStore) ids() []entityID {
	if s == nil || len(s.denseIDs) == 0 {
		return nil
	}
	out := make([]entityID, len(s.denseIDs))
	copy(out, s.denseIDs)
	return out
}
