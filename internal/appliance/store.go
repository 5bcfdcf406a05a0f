package appliance

import "strings"

// Store is the ordered, in-memory collection of registered appliances.
// Records are kept in registration order and are never removed. The zero
// value is an empty store ready to use.
type Store struct {
	items []Appliance
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{}
}

// Add appends a to the end of the store and returns the new size.
func (s *Store) Add(a Appliance) int {
	s.items = append(s.items, a)
	return len(s.items)
}

// Len returns the number of registered appliances
func (s *Store) Len() int {
	return len(s.items)
}

// IsEmpty reports whether nothing has been registered yet
func (s *Store) IsEmpty() bool {
	return len(s.items) == 0
}

// All returns a copy of every appliance in registration order.
func (s *Store) All() []Appliance {
	out := make([]Appliance, len(s.items))
	copy(out, s.items)
	return out
}

// MatchName reports whether name contains query as a contiguous substring
// after both are lowercased. The empty query matches every name.
func MatchName(name, query string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(query))
}

// Filter returns the elements of items whose names match query, preserving order.
func Filter(items []Appliance, query string) []Appliance {
	var found []Appliance
	for _, a := range items {
		if MatchName(a.Name(), query) {
			found = append(found, a)
		}
	}
	return found
}
