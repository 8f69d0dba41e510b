// Package recommend selects practice tasks for a student: a simple
// weak-topic heuristic, an adaptive difficulty picker, and the test
// readiness indicator. The AI narrative lives in narrate.go.
package recommend

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/mathevilla/server/internal/curriculum"
	"github.com/mathevilla/server/internal/store"
)

const (
	// adaptiveWindow is how many recent submissions feed the
	// per-topic success rates.
	adaptiveWindow = 50

	// antiRepeatWindow is how many of the newest submissions block
	// their tasks from being recommended again.
	antiRepeatWindow = 10
)

// Recommendation is one weak-topic suggestion with sample tasks.
type Recommendation struct {
	Topic  string        `json:"topic"`
	Reason string        `json:"reason"`
	Tasks  []*store.Task `json:"tasks"`
}

// AdaptiveRecommendation points at one task chosen by difficulty.
type AdaptiveRecommendation struct {
	TaskID     string `json:"task_id"`
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
	Reason     string `json:"reason"`
}

// Readiness reports whether a student could take a test on a topic.
type Readiness struct {
	Topic          string  `json:"topic"`
	Status         string  `json:"status"` // "ready", "needs_review", "not_ready"
	Score          float64 `json:"score"`
	TasksCompleted int     `json:"tasks_completed"`
	Recommendation string  `json:"recommendation"`
}

// Recommender computes rule-based task suggestions.
type Recommender struct {
	tasks   store.TaskRepo
	subs    store.SubmissionRepo
	catalog *curriculum.Catalog
}

// New creates a Recommender over the given repositories.
func New(tasks store.TaskRepo, subs store.SubmissionRepo, catalog *curriculum.Catalog) *Recommender {
	return &Recommender{tasks: tasks, subs: subs, catalog: catalog}
}

// Simple returns up to three weak-topic recommendations. A topic is
// weak after at least two attempts with a success rate under 60%. When
// fewer than two weak topics exist, untried topics from the student's
// grade pad the list.
func (r *Recommender) Simple(ctx context.Context, userID uuid.UUID, grade int) ([]Recommendation, error) {
	stats, err := r.subs.TopicStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("topic stats: %w", err)
	}

	recs := []Recommendation{}
	tried := map[string]bool{}
	for _, st := range stats {
		tried[st.Topic] = true
		if st.Attempts < 2 {
			continue
		}
		rate := st.Rate()
		if rate >= 0.6 {
			continue
		}
		tasks, err := r.tasks.List(ctx, store.TaskFilter{Grade: grade, Topic: st.Topic, Limit: 3})
		if err != nil {
			return nil, fmt.Errorf("weak topic tasks: %w", err)
		}
		if len(tasks) == 0 {
			continue
		}
		recs = append(recs, Recommendation{
			Topic:  st.Topic,
			Reason: fmt.Sprintf("Du hast hier eine Erfolgsquote von %d%%. Übe weiter!", int(rate*100+0.5)),
			Tasks:  tasks,
		})
	}

	if len(recs) < 2 {
		for _, topic := range r.catalog.Topics(grade) {
			if tried[topic] {
				continue
			}
			tasks, err := r.tasks.List(ctx, store.TaskFilter{Grade: grade, Topic: topic, Limit: 3})
			if err != nil {
				return nil, fmt.Errorf("untried topic tasks: %w", err)
			}
			if len(tasks) == 0 {
				continue
			}
			recs = append(recs, Recommendation{
				Topic:  topic,
				Reason: "Dieses Thema hast du noch nicht ausprobiert.",
				Tasks:  tasks,
			})
			if len(recs) >= 3 {
				break
			}
		}
	}

	if len(recs) > 3 {
		recs = recs[:3]
	}
	return recs, nil
}

// Adaptive buckets each recently practiced topic by success rate and
// suggests tasks at the matching difficulty: struggling topics get
// leicht, middling get mittel, mastered get schwer. Tasks answered in
// the last few submissions are excluded. Students with no history get
// a cold-start set of easy tasks.
func (r *Recommender) Adaptive(ctx context.Context, userID uuid.UUID, grade int) ([]AdaptiveRecommendation, error) {
	recent, err := r.subs.Recent(ctx, userID, adaptiveWindow)
	if err != nil {
		return nil, fmt.Errorf("recent submissions: %w", err)
	}

	// Recent is newest first.
	var blocked []string
	for i, sub := range recent {
		if i >= antiRepeatWindow {
			break
		}
		blocked = append(blocked, sub.TaskID.String())
	}

	perf := map[string]*store.TopicStat{}
	var order []string
	for _, sub := range recent {
		st, ok := perf[sub.Topic]
		if !ok {
			st = &store.TopicStat{Topic: sub.Topic}
			perf[sub.Topic] = st
			order = append(order, sub.Topic)
		}
		st.Attempts++
		if sub.Correct {
			st.Correct++
		}
	}

	recs := []AdaptiveRecommendation{}
	for _, topic := range order {
		st := perf[topic]
		rate := st.Rate()

		var difficulty, reason string
		switch {
		case rate < 0.5:
			difficulty = "leicht"
			reason = fmt.Sprintf("Du brauchst mehr Übung bei '%s'", topic)
		case rate < 0.8:
			difficulty = "mittel"
			reason = fmt.Sprintf("Weiter üben bei '%s'", topic)
		default:
			difficulty = "schwer"
			reason = fmt.Sprintf("Super! Probier schwierigere Aufgaben bei '%s'", topic)
		}

		tasks, err := r.tasks.List(ctx, store.TaskFilter{
			Grade: grade, Topic: topic, Difficulty: difficulty, Limit: 3,
		})
		if err != nil {
			return nil, fmt.Errorf("adaptive tasks: %w", err)
		}
		for _, task := range tasks {
			if slices.Contains(blocked, task.ID.String()) {
				continue
			}
			recs = append(recs, AdaptiveRecommendation{
				TaskID:     task.ID.String(),
				Topic:      topic,
				Difficulty: difficulty,
				Reason:     reason,
			})
		}
	}

	// Cold start: nothing recommended yet, hand out easy tasks.
	if len(recs) == 0 {
		tasks, err := r.tasks.List(ctx, store.TaskFilter{Grade: grade, Difficulty: "leicht", Limit: 5})
		if err != nil {
			return nil, fmt.Errorf("cold start tasks: %w", err)
		}
		for _, task := range tasks {
			recs = append(recs, AdaptiveRecommendation{
				TaskID:     task.ID.String(),
				Topic:      task.Topic,
				Difficulty: "leicht",
				Reason:     "Starte mit dieser Aufgabe!",
			})
		}
	}

	if len(recs) > 10 {
		recs = recs[:10]
	}
	return recs, nil
}

// TestReadiness grades a topic by all-time success rate and volume.
// 80%+ over at least 10 attempts is ready; 60%+, or 50%+ on a thin
// sample, needs review; anything less is not ready.
func (r *Recommender) TestReadiness(ctx context.Context, userID uuid.UUID, topic string) (*Readiness, error) {
	stats, err := r.subs.TopicStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("topic stats: %w", err)
	}

	var st *store.TopicStat
	for i := range stats {
		if stats[i].Topic == topic {
			st = &stats[i]
			break
		}
	}
	if st == nil || st.Attempts == 0 {
		return &Readiness{
			Topic:          topic,
			Status:         "not_ready",
			Recommendation: "Beginne mit den Übungen zu diesem Thema.",
		}, nil
	}

	score := st.Rate() * 100
	res := &Readiness{
		Topic:          topic,
		Score:          score,
		TasksCompleted: st.Attempts,
	}
	switch {
	case score >= 80 && st.Attempts >= 10:
		res.Status = "ready"
		res.Recommendation = "Du bist bereit für den Test! 🎉"
	case score >= 60 || (score >= 50 && st.Attempts < 10):
		res.Status = "needs_review"
		res.Recommendation = "Fast geschafft! Übe noch ein bisschen."
	default:
		res.Status = "not_ready"
		res.Recommendation = "Übe dieses Thema noch mehr."
	}
	return res, nil
}
