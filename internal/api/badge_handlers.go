package api

import (
	"net/http"
)

func (s *Server) handleBadgesAvailable(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.Catalog.Badges())
}

// handleBadgesCheck runs the performance badge sweep and awards
// anything newly earned.
func (s *Server) handleBadgesCheck(w http.ResponseWriter, r *http.Request) {
	result, err := s.Ledger.CheckBadges(r.Context(), userFromContext(r.Context()))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleFeatures(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	features := user.Features
	if len(features) == 0 {
		features = s.Catalog.DefaultFeatures()
	}
	respondJSON(w, http.StatusOK, features)
}
