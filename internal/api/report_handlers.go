package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mathevilla/server/internal/curriculum"
	"github.com/mathevilla/server/internal/store"
)

// handleParentReport summarizes the last 30 days for a student.
// Accessible to admins and to the student themselves.
func (s *Server) handleParentReport(w http.ResponseWriter, r *http.Request) {
	studentID, err := uuid.Parse(chi.URLParam(r, "studentID"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Schüler nicht gefunden")
		return
	}
	caller := userFromContext(r.Context())
	if caller.Role != "admin" && caller.ID != studentID {
		respondError(w, http.StatusForbidden, "Kein Zugriff")
		return
	}

	student, err := s.Users.ByID(r.Context(), studentID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if student.Role != "student" {
		respondError(w, http.StatusNotFound, "Schüler nicht gefunden")
		return
	}

	since := time.Now().UTC().AddDate(0, 0, -30)
	subs, err := s.Submissions.Since(r.Context(), studentID, since)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	total, correct := len(subs), 0
	byTopic := map[string]*store.TopicStat{}
	var order []string
	for _, sub := range subs {
		ts, ok := byTopic[sub.Topic]
		if !ok {
			ts = &store.TopicStat{Topic: sub.Topic}
			byTopic[sub.Topic] = ts
			order = append(order, sub.Topic)
		}
		ts.Attempts++
		if sub.Correct {
			ts.Correct++
			correct++
		}
	}

	breakdown := make([]map[string]any, 0, len(order))
	for _, topic := range order {
		ts := byTopic[topic]
		breakdown = append(breakdown, map[string]any{
			"topic":     ts.Topic,
			"exercises": ts.Attempts,
			"correct":   ts.Correct,
			"rate":      round1(ts.Rate() * 100),
		})
	}

	badges := make([]curriculum.Badge, 0, len(student.Badges))
	for _, id := range student.Badges {
		if b, ok := s.Catalog.Badge(id); ok {
			badges = append(badges, b)
		} else {
			badges = append(badges, curriculum.Badge{Name: id})
		}
	}

	recommendation := "Mehr Übung in den schwächeren Themen würde helfen."
	if total == 0 || float64(correct)/float64(total) > 0.6 {
		recommendation = "Weiter so! Regelmäßiges Üben führt zum Erfolg."
	}

	successRate := 0.0
	if total > 0 {
		successRate = round1(float64(correct) / float64(total) * 100)
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"student_name": student.Name,
		"grade":        student.Grade,
		"period":       "Letzte 30 Tage",
		"summary": map[string]any{
			"total_exercises": total,
			"correct_answers": correct,
			"success_rate":    successRate,
			"xp_earned":       student.XP,
			"current_level":   student.Level,
			"badges_earned":   len(student.Badges),
		},
		"topic_breakdown": breakdown,
		"badges":          badges,
		"recommendation":  recommendation,
	})
}

type assignmentRequest struct {
	Title   string   `json:"title" validate:"required"`
	Grade   int      `json:"grade" validate:"required,min=5,max=10"`
	Topic   string   `json:"topic"`
	TaskIDs []string `json:"task_ids" validate:"required,min=1,dive,uuid"`
	DueDate string   `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

// handleCreateAssignment creates a task set targeted at a whole grade.
func (s *Server) handleCreateAssignment(w http.ResponseWriter, r *http.Request) {
	var req assignmentRequest
	if err := decodeValid(r, &req); err != nil {
		respondServiceError(w, err)
		return
	}
	admin := userFromContext(r.Context())
	assignment := &store.Assignment{
		Title:     req.Title,
		Grade:     req.Grade,
		Topic:     req.Topic,
		TaskIDs:   req.TaskIDs,
		CreatedBy: admin.ID.String(),
	}
	if req.DueDate != "" {
		due, _ := time.Parse("2006-01-02", req.DueDate)
		assignment.DueAt = due
	}
	if err := s.Assignments.Create(r.Context(), assignment); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"message":       "Aufgabe zugewiesen",
		"assignment_id": assignment.ID,
	})
}

// handleListAssignments serves the caller's assignments: students see
// their grade's, admins see all.
func (s *Server) handleListAssignments(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	grade := 0
	if user.Role != "admin" {
		grade = gradeOrDefault(user, 5)
	}
	assignments, err := s.Assignments.ByGrade(r.Context(), grade)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, assignments)
}
