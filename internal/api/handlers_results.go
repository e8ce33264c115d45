package api

import (
	"encoding/json"
	"net/http"
)

// handleListResults returns every accumulated result in insertion order,
// plus the running category breakdown.
func (s *Server) handleListResults(w http.ResponseWriter, r *http.Request) {
	results := s.store.List()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"results":    results,
		"categories": s.store.CategoryCounts(),
		"total":      len(results),
	})
}

// handleClearResults empties the session store.
func (s *Server) handleClearResults(w http.ResponseWriter, r *http.Request) {
	cleared := s.store.Clear()
	s.log.Info("results cleared", "count", cleared)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"cleared": cleared})
}
