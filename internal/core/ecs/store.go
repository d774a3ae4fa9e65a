package ecs

// Store is a typed, insertion-ordered entity collection.
// Iteration follows spawn order. Remove empties the slot immediately so scans
// later in the same tick skip it; Compact closes the gaps in one pass.
// Generic, no reflection.
type Store[T any] struct {
	ids   []EntityID
	data  []*T
	index map[EntityID]int
	holes int
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{
		ids:   make([]EntityID, 0, 64),
		data:  make([]*T, 0, 64),
		index: make(map[EntityID]int, 64),
	}
}

func (s *Store[T]) Add(id EntityID, c *T) {
	if i, ok := s.index[id]; ok {
		s.data[i] = c
		return
	}
	s.index[id] = len(s.data)
	s.ids = append(s.ids, id)
	s.data = append(s.data, c)
}

func (s *Store[T]) Get(id EntityID) (*T, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return s.data[i], true
}

func (s *Store[T]) Has(id EntityID) bool {
	_, ok := s.index[id]
	return ok
}

// Remove implements Removable.
func (s *Store[T]) Remove(id EntityID) {
	i, ok := s.index[id]
	if !ok {
		return
	}
	delete(s.index, id)
	s.data[i] = nil
	s.ids[i] = 0
	s.holes++
}

// Len returns the number of live entries.
func (s *Store[T]) Len() int {
	return len(s.index)
}

// Each visits live entries in insertion order. fn may remove entries
// (including the current one) from the store.
func (s *Store[T]) Each(fn func(EntityID, *T)) {
	for i := 0; i < len(s.data); i++ {
		if c := s.data[i]; c != nil {
			fn(s.ids[i], c)
		}
	}
}

// EachReverse visits live entries newest first.
func (s *Store[T]) EachReverse(fn func(EntityID, *T)) {
	for i := len(s.data) - 1; i >= 0; i-- {
		if c := s.data[i]; c != nil {
			fn(s.ids[i], c)
		}
	}
}

// Scan visits live entries in insertion order until fn returns false.
func (s *Store[T]) Scan(fn func(EntityID, *T) bool) {
	for i := 0; i < len(s.data); i++ {
		if c := s.data[i]; c != nil {
			if !fn(s.ids[i], c) {
				return
			}
		}
	}
}

// ScanReverse visits live entries newest first until fn returns false.
func (s *Store[T]) ScanReverse(fn func(EntityID, *T) bool) {
	for i := len(s.data) - 1; i >= 0; i-- {
		if c := s.data[i]; c != nil {
			if !fn(s.ids[i], c) {
				return
			}
		}
	}
}

// Find returns the first live entry for which match returns true.
func (s *Store[T]) Find(match func(*T) bool) (EntityID, *T, bool) {
	for i, c := range s.data {
		if c != nil && match(c) {
			return s.ids[i], c, true
		}
	}
	return 0, nil, false
}

// First returns the oldest live entry.
func (s *Store[T]) First() (EntityID, *T, bool) {
	return s.Find(func(*T) bool { return true })
}

// IDs returns a snapshot of live ids in insertion order.
func (s *Store[T]) IDs() []EntityID {
	out := make([]EntityID, 0, len(s.index))
	for i, c := range s.data {
		if c != nil {
			out = append(out, s.ids[i])
		}
	}
	return out
}

// Compact implements Compactable: a single pass that drops removed slots
// while keeping insertion order.
func (s *Store[T]) Compact() {
	if s.holes == 0 {
		return
	}
	n := 0
	for i, c := range s.data {
		if c == nil {
			continue
		}
		s.data[n] = c
		s.ids[n] = s.ids[i]
		s.index[s.ids[n]] = n
		n++
	}
	for i := n; i < len(s.data); i++ {
		s.data[i] = nil
	}
	s.data = s.data[:n]
	s.ids = s.ids[:n]
	s.holes = 0
}

// Clear drops every entry and returns the ids that were live so the caller
// can release them.
func (s *Store[T]) Clear() []EntityID {
	live := s.IDs()
	for i := range s.data {
		s.data[i] = nil
	}
	s.data = s.data[:0]
	s.ids = s.ids[:0]
	clear(s.index)
	s.holes = 0
	return live
}
