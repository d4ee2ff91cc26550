package product

import (
	"sort"

	"github.com/google/uuid"
)

// Selection is the set of product ids picked in the catalog table.
type Selection struct {
	ids map[uuid.UUID]struct{}
}

// NewSelection creates a selection holding ids.
func NewSelection(ids ...uuid.UUID) *Selection {
	s := &Selection{ids: make(map[uuid.UUID]struct{}, len(ids))}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

// Has reports whether id is selected.
func (s *Selection) Has(id uuid.UUID) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of selected ids.
func (s *Selection) Len() int {
	return len(s.ids)
}

// Toggle adds id when absent and removes it otherwise.
func (s *Selection) Toggle(id uuid.UUID) {
	if s.Has(id) {
		delete(s.ids, id)
		return
	}
	s.ids[id] = struct{}{}
}

// ToggleAll clears the selection when every visible row is already selected,
// otherwise it selects exactly the visible rows.
func (s *Selection) ToggleAll(visible []uuid.UUID) {
	if s.AllSelected(visible) {
		s.Clear()
		return
	}
	s.ids = make(map[uuid.UUID]struct{}, len(visible))
	for _, id := range visible {
		s.ids[id] = struct{}{}
	}
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.ids = make(map[uuid.UUID]struct{})
}

// AllSelected reports whether there are visible rows and all of them are selected.
func (s *Selection) AllSelected(visible []uuid.UUID) bool {
	if len(visible) == 0 {
		return false
	}
	for _, id := range visible {
		if !s.Has(id) {
			return false
		}
	}
	return true
}

// SomeSelected reports whether at least one visible row is selected.
func (s *Selection) SomeSelected(visible []uuid.UUID) bool {
	for _, id := range visible {
		if s.Has(id) {
			return true
		}
	}
	return false
}

// Retain drops every id not in keep.
func (s *Selection) Retain(keep map[uuid.UUID]struct{}) {
	for id := range s.ids {
		if _, ok := keep[id]; !ok {
			delete(s.ids, id)
		}
	}
}

// IDs returns the selected ids in a stable order.
func (s *Selection) IDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})
	return ids
}
