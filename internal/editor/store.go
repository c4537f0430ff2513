package editor

import "sort"

// Entry is a single committed key-value pair.
type Entry struct {
	Key   string
	Value string
}

// Store is the flat key-value map being built. Keys are unique and a second
// write to a key replaces the first.
type Store struct {
	pairs map[string]string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{pairs: make(map[string]string)}
}

// Set inserts or replaces the value for key.
func (s *Store) Set(key, value string) {
	s.pairs[key] = value
}

// Get returns the value stored for key.
func (s *Store) Get(key string) (string, bool) {
	v, ok := s.pairs[key]
	return v, ok
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.pairs)
}

// Entries returns all pairs sorted by key. Ordering only matters for display.
func (s *Store) Entries() []Entry {
	entries := make([]Entry, 0, len(s.pairs))
	for k, v := range s.pairs {
		entries = append(entries, Entry{Key: k, Value: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})
	return entries
}

// Map returns a copy of the underlying map.
func (s *Store) Map() map[string]string {
	out := make(map[string]string, len(s.pairs))
	for k, v := range s.pairs {
		out[k] = v
	}
	return out
}
