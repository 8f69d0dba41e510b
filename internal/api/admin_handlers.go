package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mathevilla/server/internal/store"
)

func (s *Server) handleAdminStats(w http.ResponseWriter, r *http.Request) {
	students, err := s.Users.ListStudents(r.Context(), 0)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	global, err := s.Submissions.GlobalStats(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	taskCount, err := s.Tasks.Count(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	errorTopics, err := s.Submissions.GlobalTopicErrors(r.Context(), 5)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	difficult := make([]map[string]any, 0, len(errorTopics))
	for _, ts := range errorTopics {
		difficult = append(difficult, map[string]any{
			"topic":      ts.Topic,
			"error_rate": round1((1 - ts.Rate()) * 100),
		})
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"total_students":   len(students),
		"total_tasks":      taskCount,
		"total_answers":    global.TotalSubmissions,
		"success_rate":     round1(global.CorrectRate * 100),
		"difficult_topics": difficult,
	})
}

func (s *Server) handleAdminStudents(w http.ResponseWriter, r *http.Request) {
	grade, _ := strconv.Atoi(r.URL.Query().Get("grade"))
	students, err := s.Users.ListStudents(r.Context(), grade)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	out := make([]map[string]any, 0, len(students))
	for _, student := range students {
		stats, err := s.Submissions.TopicStats(r.Context(), student.ID)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		total, correct := 0, 0
		for _, ts := range stats {
			total += ts.Attempts
			correct += ts.Correct
		}
		successRate := 0.0
		if total > 0 {
			successRate = round1(float64(correct) / float64(total) * 100)
		}
		out = append(out, map[string]any{
			"id":              student.ID,
			"email":           student.Email,
			"name":            student.Name,
			"grade":           student.Grade,
			"xp":              student.XP,
			"level":           student.Level,
			"badges":          student.Badges,
			"created_at":      student.CreatedAt,
			"tasks_completed": total,
			"success_rate":    successRate,
		})
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleAdminStudentDetail(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Schüler nicht gefunden")
		return
	}
	student, err := s.Users.ByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if student.Role != "student" {
		respondError(w, http.StatusNotFound, "Schüler nicht gefunden")
		return
	}

	stats, err := s.Submissions.TopicStats(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	breakdown := make([]map[string]any, 0, len(stats))
	for _, ts := range stats {
		breakdown = append(breakdown, map[string]any{
			"topic":   ts.Topic,
			"total":   ts.Attempts,
			"correct": ts.Correct,
			"rate":    round1(ts.Rate() * 100),
		})
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"id":              student.ID,
		"email":           student.Email,
		"name":            student.Name,
		"grade":           student.Grade,
		"xp":              student.XP,
		"level":           student.Level,
		"badges":          student.Badges,
		"created_at":      student.CreatedAt,
		"topic_breakdown": breakdown,
	})
}

func (s *Server) handleAdminListTasks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	grade, _ := strconv.Atoi(q.Get("grade"))
	tasks, err := s.Tasks.List(r.Context(), store.TaskFilter{
		Grade:      grade,
		Topic:      q.Get("topic"),
		Difficulty: q.Get("difficulty"),
		Curriculum: q.Get("curriculum"),
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tasks)
}

type taskRequest struct {
	Grade         int      `json:"grade" validate:"required,min=5,max=10"`
	Topic         string   `json:"topic" validate:"required"`
	Question      string   `json:"question" validate:"required"`
	TaskType      string   `json:"task_type" validate:"omitempty,oneof=multiple_choice free_text text_input"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer" validate:"required"`
	Explanation   string   `json:"explanation"`
	XPReward      int      `json:"xp_reward" validate:"omitempty,gte=1"`
	Difficulty    string   `json:"difficulty" validate:"omitempty,oneof=leicht mittel schwer"`
	Curriculum    string   `json:"curriculum"`
}

func (req *taskRequest) toTask(createdBy string) *store.Task {
	taskType := req.TaskType
	if taskType == "" || taskType == "free_text" {
		taskType = "text_input"
	}
	xp := req.XPReward
	if xp == 0 {
		xp = 10
	}
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = "mittel"
	}
	return &store.Task{
		Grade:         req.Grade,
		Topic:         req.Topic,
		Question:      req.Question,
		Type:          taskType,
		Options:       req.Options,
		CorrectAnswer: req.CorrectAnswer,
		Explanation:   req.Explanation,
		XPReward:      xp,
		Difficulty:    difficulty,
		Curriculum:    req.Curriculum,
		CreatedBy:     createdBy,
	}
}

func (s *Server) handleAdminCreateTask(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := decodeValid(r, &req); err != nil {
		respondServiceError(w, err)
		return
	}
	task := req.toTask(userFromContext(r.Context()).ID.String())
	if err := s.Tasks.Create(r.Context(), task); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, task)
}

func (s *Server) handleAdminUpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Aufgabe nicht gefunden")
		return
	}
	var req taskRequest
	if err := decodeValid(r, &req); err != nil {
		respondServiceError(w, err)
		return
	}
	existing, err := s.Tasks.ByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	task := req.toTask(existing.CreatedBy)
	task.ID = id
	if err := s.Tasks.Update(r.Context(), task); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, task)
}

func (s *Server) handleAdminDeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Aufgabe nicht gefunden")
		return
	}
	if err := s.Tasks.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Aufgabe gelöscht"})
}

func (s *Server) handleAdminImportCSV(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "CSV-Datei fehlt")
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".csv") {
		respondError(w, http.StatusBadRequest, "Nur CSV-Dateien erlaubt")
		return
	}

	admin := userFromContext(r.Context())
	result, err := s.Importer.ImportCSV(r.Context(), file, admin.ID.String())
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleAdminUpdateFeatures(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Benutzer nicht gefunden")
		return
	}
	var req map[string]bool
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Ungültiger Request-Body")
		return
	}

	// Unknown flags are rejected, missing flags keep their default.
	features := s.Catalog.DefaultFeatures()
	for name, enabled := range req {
		if _, ok := features[name]; !ok {
			respondError(w, http.StatusBadRequest, "Unbekanntes Feature: "+name)
			return
		}
		features[name] = enabled
	}
	if err := s.Users.SetFeatures(r.Context(), userID, features); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Feature-Flags aktualisiert"})
}

func (s *Server) handleSeed(w http.ResponseWriter, r *http.Request) {
	result, err := s.Seeder.SeedBase(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleSeedAdditional(w http.ResponseWriter, r *http.Request) {
	result, err := s.Seeder.SeedAdditional(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleSeedNRW(w http.ResponseWriter, r *http.Request) {
	result, err := s.Seeder.SeedNRW(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
