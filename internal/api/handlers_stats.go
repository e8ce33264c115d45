package api

import (
	"encoding/json"
	"net/http"
)

func (s *Server) handleCategoryStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"categories": s.store.CategoryCounts(),
		"total":      s.store.Len(),
	})
}

func (s *Server) handleLLMStats(w http.ResponseWriter, r *http.Request) {
	if s.stats == nil {
		jsonError(w, "llm stats unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"provider": s.cfg.Provider,
		"model":    s.backend.Model(),
		"stats":    s.stats.Snapshot(),
	})
}
