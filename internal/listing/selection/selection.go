// Package selection holds a client's compare picks as an ordered set.
package selection

import "errors"

// MaxCompare caps how many listings can be compared at once.
const MaxCompare = 4

var ErrCompareFull = errors.New("compare selection is full")

// Set is an ordered set of listing IDs with a fixed capacity. The
// zero value is ready to use. Set is not safe for concurrent use.
type Set struct {
	ids []string
}

// Add appends id unless it is already selected. Adding a duplicate is
// a no-op; adding past MaxCompare returns ErrCompareFull.
func (s *Set) Add(id string) error {
	if s.Contains(id) {
		return nil
	}
	if len(s.ids) >= MaxCompare {
		return ErrCompareFull
	}
	s.ids = append(s.ids, id)
	return nil
}

// Remove drops id from the selection, keeping the order of the rest.
// Removing an absent id is a no-op.
func (s *Set) Remove(id string) {
	for i, have := range s.ids {
		if have == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return
		}
	}
}

// Toggle adds id if absent and removes it if present.
func (s *Set) Toggle(id string) error {
	if s.Contains(id) {
		s.Remove(id)
		return nil
	}
	return s.Add(id)
}

func (s *Set) Contains(id string) bool {
	for _, have := range s.ids {
		if have == id {
			return true
		}
	}
	return false
}

func (s *Set) Len() int { return len(s.ids) }

func (s *Set) Clear() { s.ids = nil }

// IDs returns the selection in insertion order. The returned slice is
// a copy.
func (s *Set) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}
