package api

import (
	"context"
	"math"
	"net/http"
	"sort"
	"time"

	"github.com/mathevilla/server/internal/store"
)

type topicProgress struct {
	Topic          string  `json:"topic"`
	TotalTasks     int     `json:"total_tasks"`
	CompletedTasks int     `json:"completed_tasks"`
	CorrectAnswers int     `json:"correct_answers"`
	Percentage     float64 `json:"percentage"`
}

func (s *Server) handleProgressOverview(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	grade := gradeOrDefault(user, 5)

	subs, err := s.Submissions.Since(r.Context(), user.ID, time.Time{})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	topics := s.Catalog.Topics(grade)
	overview := make([]topicProgress, 0, len(topics))
	for _, topic := range topics {
		tasks, err := s.Tasks.List(r.Context(), store.TaskFilter{Grade: grade, Topic: topic})
		if err != nil {
			respondServiceError(w, err)
			return
		}

		seen := map[string]bool{}
		correct := 0
		for _, sub := range subs {
			if sub.Grade != grade || sub.Topic != topic {
				continue
			}
			seen[sub.TaskID.String()] = true
			if sub.Correct {
				correct++
			}
		}

		percentage := 0.0
		if len(tasks) > 0 {
			percentage = round1(float64(len(seen)) / float64(len(tasks)) * 100)
		}
		overview = append(overview, topicProgress{
			Topic:          topic,
			TotalTasks:     len(tasks),
			CompletedTasks: len(seen),
			CorrectAnswers: correct,
			Percentage:     percentage,
		})
	}
	respondJSON(w, http.StatusOK, overview)
}

type topicRate struct {
	Topic string  `json:"topic"`
	Rate  float64 `json:"rate"`
}

type userStats struct {
	TotalTasksCompleted int         `json:"total_tasks_completed"`
	CorrectAnswers      int         `json:"correct_answers"`
	SuccessRate         float64     `json:"success_rate"`
	XP                  int         `json:"xp"`
	Level               int         `json:"level"`
	Badges              []string    `json:"badges"`
	Strengths           []topicRate `json:"strengths"`
	Weaknesses          []topicRate `json:"weaknesses"`
}

func (s *Server) handleProgressStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.computeStats(r.Context(), userFromContext(r.Context()))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// computeStats aggregates lifetime totals plus the top strong and weak
// topics (rate ≥70% / <50%, at least 3 attempts, 3 each).
func (s *Server) computeStats(ctx context.Context, user *store.User) (*userStats, error) {
	topicStats, err := s.Submissions.TopicStats(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	total, correct := 0, 0
	var strengths, weaknesses []topicRate
	for _, ts := range topicStats {
		total += ts.Attempts
		correct += ts.Correct
		if ts.Attempts < 3 {
			continue
		}
		rate := ts.Rate()
		switch {
		case rate >= 0.7:
			strengths = append(strengths, topicRate{Topic: ts.Topic, Rate: round1(rate * 100)})
		case rate < 0.5:
			weaknesses = append(weaknesses, topicRate{Topic: ts.Topic, Rate: round1(rate * 100)})
		}
	}
	sort.Slice(strengths, func(i, j int) bool { return strengths[i].Rate > strengths[j].Rate })
	sort.Slice(weaknesses, func(i, j int) bool { return weaknesses[i].Rate < weaknesses[j].Rate })
	if len(strengths) > 3 {
		strengths = strengths[:3]
	}
	if len(weaknesses) > 3 {
		weaknesses = weaknesses[:3]
	}

	successRate := 0.0
	if total > 0 {
		successRate = round1(float64(correct) / float64(total) * 100)
	}
	return &userStats{
		TotalTasksCompleted: total,
		CorrectAnswers:      correct,
		SuccessRate:         successRate,
		XP:                  user.XP,
		Level:               user.Level,
		Badges:              user.Badges,
		Strengths:           strengths,
		Weaknesses:          weaknesses,
	}, nil
}

func gradeOrDefault(u *store.User, fallback int) int {
	if u.Grade != nil {
		return *u.Grade
	}
	return fallback
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
