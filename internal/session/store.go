// Package session holds the results accumulated during one interactive
// session. State lives only in memory and is owned by the HTTP shell.
package session

import (
	"sync"

	"github.com/dgallion1/docsight/internal/document"
)

// Store is a thread-safe, append-only result list. Only Clear empties it.
type Store struct {
	mu      sync.Mutex
	results []document.AnalysisResult
}

func NewStore() *Store {
	return &Store{}
}

// Append assigns the result an id, stores it, and returns the stored copy.
// Insertion order is preserved.
func (s *Store) Append(r document.AnalysisResult) document.AnalysisResult {
	r.ID = document.NewID()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, r)
	return r
}

// List returns a copy of all results in insertion order.
func (s *Store) List() []document.AnalysisResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]document.AnalysisResult, len(s.results))
	copy(out, s.results)
	return out
}

// Len returns the number of accumulated results.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.results)
}

// Clear discards all results and reports how many were removed.
func (s *Store) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.results)
	s.results = nil
	return n
}

// CategoryCounts returns the running category-frequency breakdown.
func (s *Store) CategoryCounts() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := make(map[string]int)
	for _, r := range s.results {
		counts[r.Category]++
	}
	return counts
}
