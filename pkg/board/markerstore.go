package board

import "github.com/google/uuid"

// MarkerStore is the board-side collection of markers. Deep deletion of a
// violation removes its marker here, discarding the rendered annotation.
type MarkerStore struct {
	markers []*Marker
	byID    map[uuid.UUID]*Marker
}

// NewMarkerStore creates an empty store.
func NewMarkerStore() *MarkerStore {
	return &MarkerStore{byID: make(map[uuid.UUID]*Marker)}
}

// Add inserts a marker. Adding the same marker twice is a no-op.
func (s *MarkerStore) Add(m *Marker) {
	if m == nil {
		return
	}
	if _, ok := s.byID[m.ID()]; ok {
		return
	}
	s.markers = append(s.markers, m)
	s.byID[m.ID()] = m
}

// Remove discards the marker with the given identifier.
func (s *MarkerStore) Remove(id uuid.UUID) {
	if _, ok := s.byID[id]; !ok {
		return
	}
	delete(s.byID, id)
	for i, m := range s.markers {
		if m.ID() == id {
			s.markers = append(s.markers[:i], s.markers[i+1:]...)
			break
		}
	}
}

// RemoveAll discards every marker.
func (s *MarkerStore) RemoveAll() {
	s.markers = nil
	s.byID = make(map[uuid.UUID]*Marker)
}

// Contains reports whether a marker with the given identifier is present.
func (s *MarkerStore) Contains(id uuid.UUID) bool {
	_, ok := s.byID[id]
	return ok
}

// Len returns the number of markers in the store.
func (s *MarkerStore) Len() int { return len(s.markers) }

// Markers returns the markers in insertion order. The returned slice is
// shared; callers must not modify it.
func (s *MarkerStore) Markers() []*Marker { return s.markers }
