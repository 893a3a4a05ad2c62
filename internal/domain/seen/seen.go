// Package seen tracks which aircraft and photos a run has already used.
package seen

import (
	"sync"
)

// Set records string keys seen within a run. It is safe for concurrent use;
// the run controller calls it under the session lock, the prefetcher may
// consult it from its own goroutine.
type Set struct {
	mu   sync.RWMutex
	keys map[string]struct{}
}

// NewSet creates an empty seen-set.
func NewSet() *Set {
	return &Set{keys: make(map[string]struct{})}
}

// Seen reports whether key was recorded.
func (s *Set) Seen(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.keys[key]
	return ok
}

// Record marks key as seen.
func (s *Set) Record(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys[key] = struct{}{}
}

// SeenAndRecord atomically checks whether key was seen and records it if not.
// Returns true if key was already seen, false if it was newly recorded.
func (s *Set) SeenAndRecord(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.keys[key]; ok {
		return true
	}
	s.keys[key] = struct{}{}
	return false
}

// Unrecord removes key, allowing it to be used again.
func (s *Set) Unrecord(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.keys, key)
}

// Reset clears the set. Used when every eligible aircraft has been shown and
// the round keeps going.
func (s *Set) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys = make(map[string]struct{})
}

// Size returns the number of recorded keys.
func (s *Set) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.keys)
}
