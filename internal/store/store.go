// Package store holds the in-memory record stores backing every list view.
// Records are seeded once from fixtures; updates are copy-on-write so that
// slices handed to the projection layer are never mutated underneath it.
package store

import "sync"

// Store is an ordered, identifier-keyed in-memory collection.
type Store[T any] struct {
	mu      sync.RWMutex
	records []T
	id      func(T) string
}

func New[T any](id func(T) string, seed []T) *Store[T] {
	records := make([]T, len(seed))
	copy(records, seed)
	return &Store[T]{records: records, id: id}
}

// List returns a snapshot copy preserving insertion order.
func (s *Store[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Get returns the record with the given id.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, record := range s.records {
		if s.id(record) == id {
			return record, true
		}
	}
	var zero T
	return zero, false
}

// Add appends a record.
func (s *Store[T]) Add(record T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
}

// Update replaces the record with the given id by applying fn to a copy.
// The backing slice is replaced wholesale, never mutated in place.
func (s *Store[T]) Update(id string, fn func(T) T) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, record := range s.records {
		if s.id(record) != id {
			continue
		}
		updated := fn(record)
		next := make([]T, len(s.records))
		copy(next, s.records)
		next[i] = updated
		s.records = next
		return updated, true
	}
	var zero T
	return zero, false
}

// Remove deletes the record with the given id.
func (s *Store[T]) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, record := range s.records {
		if s.id(record) != id {
			continue
		}
		next := make([]T, 0, len(s.records)-1)
		next = append(next, s.records[:i]...)
		next = append(next, s.records[i+1:]...)
		s.records = next
		return true
	}
	return false
}
