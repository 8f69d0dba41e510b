package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mathevilla/server/internal/store"
)

func (s *Server) handleGrades(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"grades": s.Catalog.Grades()})
}

func (s *Server) handleTopics(w http.ResponseWriter, r *http.Request) {
	grade, err := strconv.Atoi(chi.URLParam(r, "grade"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Ungültige Klassenstufe")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"grade":  grade,
		"topics": s.Catalog.Topics(grade),
	})
}

func (s *Server) handleTasksByTopic(w http.ResponseWriter, r *http.Request) {
	grade, err := strconv.Atoi(chi.URLParam(r, "grade"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Ungültige Klassenstufe")
		return
	}
	topic := chi.URLParam(r, "topic")
	tasks, err := s.Tasks.List(r.Context(), store.TaskFilter{Grade: grade, Topic: topic, Limit: 100})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tasks)
}

func (s *Server) handleSingleTask(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Aufgabe nicht gefunden")
		return
	}
	task, err := s.Tasks.ByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, task)
}

type answerSubmit struct {
	TaskID string `json:"task_id" validate:"required,uuid"`
	Answer string `json:"answer" validate:"required"`
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req answerSubmit
	if err := decodeValid(r, &req); err != nil {
		respondServiceError(w, err)
		return
	}
	user := userFromContext(r.Context())
	task, err := s.Tasks.ByID(r.Context(), uuid.MustParse(req.TaskID))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	result, err := s.Ledger.RecordAnswer(r.Context(), user, task, req.Answer, "normal")
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// handlePracticeSubmit records the attempt for statistics but never
// moves XP, levels, or badges.
func (s *Server) handlePracticeSubmit(w http.ResponseWriter, r *http.Request) {
	var req answerSubmit
	if err := decodeValid(r, &req); err != nil {
		respondServiceError(w, err)
		return
	}
	user := userFromContext(r.Context())
	task, err := s.Tasks.ByID(r.Context(), uuid.MustParse(req.TaskID))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	result, err := s.Ledger.RecordAnswer(r.Context(), user, task, req.Answer, "practice")
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"is_correct":     result.Correct,
		"correct_answer": result.CorrectAnswer,
		"explanation":    result.Explanation,
		"mode":           "practice",
		"message":        "Übungsmodus - Kein Druck, nur Lernen!",
	})
}
