package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (s *Server) handleDailyChallenge(w http.ResponseWriter, r *http.Request) {
	view, err := s.Scheduler.Daily(r.Context(), userFromContext(r.Context()))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

func (s *Server) handleDailySubmit(w http.ResponseWriter, r *http.Request) {
	challengeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Challenge nicht gefunden")
		return
	}
	var req answerSubmit
	if err := decodeValid(r, &req); err != nil {
		respondServiceError(w, err)
		return
	}
	user := userFromContext(r.Context())
	outcome, err := s.Scheduler.SubmitDaily(r.Context(), user, challengeID, uuid.MustParse(req.TaskID), req.Answer)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, outcome)
}

func (s *Server) handleWeeklyChallenge(w http.ResponseWriter, r *http.Request) {
	view, err := s.Scheduler.Weekly(r.Context(), userFromContext(r.Context()))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

func (s *Server) handleWeeklySubmit(w http.ResponseWriter, r *http.Request) {
	var req answerSubmit
	if err := decodeValid(r, &req); err != nil {
		respondServiceError(w, err)
		return
	}
	user := userFromContext(r.Context())
	outcome, err := s.Scheduler.SubmitWeekly(r.Context(), user, uuid.MustParse(req.TaskID), req.Answer)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, outcome)
}
