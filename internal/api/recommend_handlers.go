package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mathevilla/server/internal/recommend"
)

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	recs, err := s.Rec.Simple(r.Context(), user.ID, gradeOrDefault(user, 5))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, recs)
}

func (s *Server) handleAdaptiveRecommendations(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	recs, err := s.Rec.Adaptive(r.Context(), user.ID, gradeOrDefault(user, 7))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, recs)
}

// handleAIRecommendation sends only anonymized aggregates to the
// provider. Any failure degrades to a static German fallback inside
// the narrator, never an error response.
func (s *Server) handleAIRecommendation(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	stats, err := s.computeStats(r.Context(), user)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	summary := recommend.PerformanceSummary{
		Grade:       gradeOrDefault(user, 5),
		SuccessRate: stats.SuccessRate,
		Level:       stats.Level,
	}
	for _, t := range stats.Strengths {
		summary.Strengths = append(summary.Strengths, t.Topic)
	}
	for _, t := range stats.Weaknesses {
		summary.Weaknesses = append(summary.Weaknesses, t.Topic)
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"recommendation": s.Narrator.Narrate(r.Context(), summary),
	})
}

type explainMistakeRequest struct {
	TaskID        string `json:"task_id" validate:"required,uuid"`
	StudentAnswer string `json:"student_answer" validate:"required"`
}

func (s *Server) handleExplainMistake(w http.ResponseWriter, r *http.Request) {
	var req explainMistakeRequest
	if err := decodeValid(r, &req); err != nil {
		respondServiceError(w, err)
		return
	}
	task, err := s.Tasks.ByID(r.Context(), uuid.MustParse(req.TaskID))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	user := userFromContext(r.Context())
	explanation := s.Explainer.Explain(r.Context(), gradeOrDefault(user, 7),
		task.Question, req.StudentAnswer, task.CorrectAnswer, task.Explanation)
	respondJSON(w, http.StatusOK, explanation)
}

func (s *Server) handleReadiness(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	readiness, err := s.Rec.TestReadiness(r.Context(), user.ID, chi.URLParam(r, "topic"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, readiness)
}
