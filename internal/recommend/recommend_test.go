package recommend

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mathevilla/server/internal/curriculum"
	"github.com/mathevilla/server/internal/store"
)

// fakeTasks implements store.TaskRepo over a fixed slice.
type fakeTasks struct {
	tasks []*store.Task
}

func (f *fakeTasks) Create(_ context.Context, t *store.Task) error {
	f.tasks = append(f.tasks, t)
	return nil
}

func (f *fakeTasks) CreateBulk(_ context.Context, ts []*store.Task) (int, error) {
	f.tasks = append(f.tasks, ts...)
	return len(ts), nil
}

func (f *fakeTasks) ByID(_ context.Context, id uuid.UUID) (*store.Task, error) {
	for _, t := range f.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeTasks) List(_ context.Context, filter store.TaskFilter) ([]*store.Task, error) {
	var out []*store.Task
	for _, t := range f.tasks {
		if filter.Grade != 0 && t.Grade != filter.Grade {
			continue
		}
		if filter.Topic != "" && t.Topic != filter.Topic {
			continue
		}
		if filter.Difficulty != "" && t.Difficulty != filter.Difficulty {
			continue
		}
		out = append(out, t)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (f *fakeTasks) Update(_ context.Context, _ *store.Task) error { return nil }
func (f *fakeTasks) Delete(_ context.Context, _ uuid.UUID) error   { return nil }
func (f *fakeTasks) Count(_ context.Context) (int, error)          { return len(f.tasks), nil }

// fakeSubs implements store.SubmissionRepo over a fixed history.
// rows are ordered oldest first; Recent reverses.
type fakeSubs struct {
	rows []*store.Submission
}

func (f *fakeSubs) Append(_ context.Context, s *store.Submission) error {
	f.rows = append(f.rows, s)
	return nil
}

func (f *fakeSubs) Recent(_ context.Context, userID uuid.UUID, limit int) ([]*store.Submission, error) {
	var out []*store.Submission
	for i := len(f.rows) - 1; i >= 0; i-- {
		s := f.rows[i]
		if s.UserID == userID && s.Mode == "normal" {
			out = append(out, s)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (f *fakeSubs) TopicStats(_ context.Context, userID uuid.UUID) ([]store.TopicStat, error) {
	agg := map[string]*store.TopicStat{}
	var order []string
	for _, s := range f.rows {
		if s.UserID != userID || s.Mode != "normal" {
			continue
		}
		st, ok := agg[s.Topic]
		if !ok {
			st = &store.TopicStat{Topic: s.Topic}
			agg[s.Topic] = st
			order = append(order, s.Topic)
		}
		st.Attempts++
		if s.Correct {
			st.Correct++
		}
	}
	out := make([]store.TopicStat, 0, len(order))
	for _, topic := range order {
		out = append(out, *agg[topic])
	}
	return out, nil
}

func (f *fakeSubs) CorrectByTopic(_ context.Context, _ uuid.UUID) (map[string]int, error) {
	return nil, nil
}

func (f *fakeSubs) Since(_ context.Context, _ uuid.UUID, _ time.Time) ([]*store.Submission, error) {
	return nil, nil
}

func (f *fakeSubs) GlobalTopicErrors(_ context.Context, _ int) ([]store.TopicStat, error) {
	return nil, nil
}

func (f *fakeSubs) GlobalStats(_ context.Context) (*store.GlobalStats, error) {
	return &store.GlobalStats{}, nil
}

func task(grade int, topic, difficulty string) *store.Task {
	return &store.Task{
		ID:            uuid.New(),
		Grade:         grade,
		Topic:         topic,
		Question:      "q",
		Type:          "text_input",
		CorrectAnswer: "a",
		XPReward:      10,
		Difficulty:    difficulty,
	}
}

func submit(userID uuid.UUID, t *store.Task, correct bool) *store.Submission {
	return &store.Submission{
		ID:      uuid.New(),
		UserID:  userID,
		TaskID:  t.ID,
		Grade:   t.Grade,
		Topic:   t.Topic,
		Correct: correct,
		Mode:    "normal",
	}
}

func TestAdaptiveBuckets(t *testing.T) {
	userID := uuid.New()
	tasks := &fakeTasks{}
	subs := &fakeSubs{}

	// Pools at every difficulty for three topics.
	pool := map[string][]*store.Task{}
	for _, topic := range []string{"Brüche", "Prozente", "Gleichungen"} {
		for _, d := range []string{"leicht", "mittel", "schwer"} {
			tk := task(7, topic, d)
			tasks.tasks = append(tasks.tasks, tk)
			pool[topic+"/"+d] = append(pool[topic+"/"+d], tk)
		}
	}

	// Brüche: 1/4 correct (struggling). Prozente: 3/4 (middling).
	// Gleichungen: 4/4 (mastered). Practice tasks to answer with are
	// separate so the anti-repeat filter doesn't hide the pools.
	history := map[string][]bool{
		"Brüche":      {true, false, false, false},
		"Prozente":    {true, true, true, false},
		"Gleichungen": {true, true, true, true},
	}
	for topic, results := range history {
		for _, correct := range results {
			answered := task(7, topic, "mittel")
			subs.rows = append(subs.rows, submit(userID, answered, correct))
		}
	}

	recs, err := New(tasks, subs, curriculum.Default()).Adaptive(context.Background(), userID, 7)
	if err != nil {
		t.Fatalf("adaptive: %v", err)
	}

	byTopic := map[string]string{}
	for _, r := range recs {
		byTopic[r.Topic] = r.Difficulty
	}
	want := map[string]string{
		"Brüche":      "leicht",
		"Prozente":    "mittel",
		"Gleichungen": "schwer",
	}
	for topic, difficulty := range want {
		if byTopic[topic] != difficulty {
			t.Errorf("%s recommended at %q, want %q", topic, byTopic[topic], difficulty)
		}
	}
	if len(recs) > 10 {
		t.Errorf("len = %d, want at most 10", len(recs))
	}
}

func TestAdaptiveBoundaryRates(t *testing.T) {
	// Exactly 0.5 is mittel, exactly 0.8 is schwer.
	tests := []struct {
		correct, total int
		want           string
	}{
		{2, 4, "mittel"},
		{4, 5, "schwer"},
		{1, 4, "leicht"},
	}
	for _, tt := range tests {
		userID := uuid.New()
		tasks := &fakeTasks{}
		for _, d := range []string{"leicht", "mittel", "schwer"} {
			tasks.tasks = append(tasks.tasks, task(7, "Brüche", d))
		}
		subs := &fakeSubs{}
		for i := 0; i < tt.total; i++ {
			answered := task(7, "Brüche", "mittel")
			subs.rows = append(subs.rows, submit(userID, answered, i < tt.correct))
		}

		recs, err := New(tasks, subs, curriculum.Default()).Adaptive(context.Background(), userID, 7)
		if err != nil {
			t.Fatalf("adaptive: %v", err)
		}
		if len(recs) == 0 || recs[0].Difficulty != tt.want {
			t.Errorf("%d/%d: got %+v, want difficulty %q", tt.correct, tt.total, recs, tt.want)
		}
	}
}

func TestAdaptiveAntiRepeat(t *testing.T) {
	userID := uuid.New()
	tasks := &fakeTasks{}
	subs := &fakeSubs{}

	// One schwer task that was just answered: it must not come back.
	answered := task(7, "Brüche", "schwer")
	tasks.tasks = append(tasks.tasks, answered)
	fresh := task(7, "Brüche", "schwer")
	tasks.tasks = append(tasks.tasks, fresh)

	subs.rows = append(subs.rows, submit(userID, answered, true))

	recs, err := New(tasks, subs, curriculum.Default()).Adaptive(context.Background(), userID, 7)
	if err != nil {
		t.Fatalf("adaptive: %v", err)
	}
	for _, r := range recs {
		if r.TaskID == answered.ID.String() {
			t.Errorf("recently answered task recommended again")
		}
	}
	found := false
	for _, r := range recs {
		if r.TaskID == fresh.ID.String() {
			found = true
		}
	}
	if !found {
		t.Error("fresh task at matching difficulty not recommended")
	}
}

func TestAdaptiveColdStart(t *testing.T) {
	userID := uuid.New()
	tasks := &fakeTasks{}
	for i := 0; i < 8; i++ {
		tasks.tasks = append(tasks.tasks, task(5, "Grundrechenarten", "leicht"))
	}

	recs, err := New(tasks, &fakeSubs{}, curriculum.Default()).Adaptive(context.Background(), userID, 5)
	if err != nil {
		t.Fatalf("adaptive: %v", err)
	}
	if len(recs) != 5 {
		t.Fatalf("cold start len = %d, want 5", len(recs))
	}
	for _, r := range recs {
		if r.Difficulty != "leicht" {
			t.Errorf("cold start difficulty = %q", r.Difficulty)
		}
		if r.Reason != "Starte mit dieser Aufgabe!" {
			t.Errorf("cold start reason = %q", r.Reason)
		}
	}
}

func TestSimpleWeakTopics(t *testing.T) {
	userID := uuid.New()
	tasks := &fakeTasks{}
	subs := &fakeSubs{}

	for _, topic := range []string{"Rationale Zahlen", "Dreiecke"} {
		for i := 0; i < 3; i++ {
			tasks.tasks = append(tasks.tasks, task(7, topic, "mittel"))
		}
	}

	// Rationale Zahlen: 1/4 = weak. Dreiecke: 3/4 = fine.
	for i := 0; i < 4; i++ {
		tk := task(7, "Rationale Zahlen", "mittel")
		subs.rows = append(subs.rows, submit(userID, tk, i == 0))
	}
	for i := 0; i < 4; i++ {
		tk := task(7, "Dreiecke", "mittel")
		subs.rows = append(subs.rows, submit(userID, tk, i != 0))
	}

	recs, err := New(tasks, subs, curriculum.Default()).Simple(context.Background(), userID, 7)
	if err != nil {
		t.Fatalf("simple: %v", err)
	}

	foundWeak := false
	for _, r := range recs {
		if r.Topic == "Dreiecke" {
			t.Error("strong topic recommended as weak")
		}
		if r.Topic == "Rationale Zahlen" {
			foundWeak = true
			if len(r.Tasks) == 0 || len(r.Tasks) > 3 {
				t.Errorf("weak topic carries %d tasks", len(r.Tasks))
			}
		}
	}
	if !foundWeak {
		t.Error("weak topic missing from recommendations")
	}
	if len(recs) > 3 {
		t.Errorf("len = %d, want at most 3", len(recs))
	}
}

func TestSimpleSingleAttemptNotWeak(t *testing.T) {
	userID := uuid.New()
	tasks := &fakeTasks{}
	tasks.tasks = append(tasks.tasks, task(7, "Statistik", "mittel"))
	subs := &fakeSubs{}

	// One wrong answer is not enough signal.
	subs.rows = append(subs.rows, submit(userID, task(7, "Statistik", "mittel"), false))

	recs, err := New(tasks, subs, curriculum.Default()).Simple(context.Background(), userID, 7)
	if err != nil {
		t.Fatalf("simple: %v", err)
	}
	for _, r := range recs {
		if r.Topic == "Statistik" && r.Reason != "Dieses Thema hast du noch nicht ausprobiert." {
			t.Errorf("single attempt flagged weak: %+v", r)
		}
	}
}

func TestSimplePadsWithUntried(t *testing.T) {
	userID := uuid.New()
	tasks := &fakeTasks{}
	// Content only for two grade-7 topics.
	tasks.tasks = append(tasks.tasks, task(7, "Dreiecke", "leicht"))
	tasks.tasks = append(tasks.tasks, task(7, "Statistik", "leicht"))

	recs, err := New(tasks, &fakeSubs{}, curriculum.Default()).Simple(context.Background(), userID, 7)
	if err != nil {
		t.Fatalf("simple: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("len = %d, want 2 untried topics with content", len(recs))
	}
	for _, r := range recs {
		if r.Reason != "Dieses Thema hast du noch nicht ausprobiert." {
			t.Errorf("reason = %q", r.Reason)
		}
	}
}

func TestTestReadiness(t *testing.T) {
	tests := []struct {
		name           string
		correct, total int
		want           string
	}{
		{"ready", 9, 10, "ready"},
		{"high rate thin sample", 4, 5, "needs_review"},
		{"solid but not ready", 7, 10, "needs_review"},
		{"half on thin sample", 2, 4, "needs_review"},
		{"not ready", 4, 10, "not_ready"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID := uuid.New()
			subs := &fakeSubs{}
			for i := 0; i < tt.total; i++ {
				tk := task(7, "Prozentrechnung", "mittel")
				subs.rows = append(subs.rows, submit(userID, tk, i < tt.correct))
			}

			r, err := New(&fakeTasks{}, subs, curriculum.Default()).TestReadiness(context.Background(), userID, "Prozentrechnung")
			if err != nil {
				t.Fatalf("readiness: %v", err)
			}
			if r.Status != tt.want {
				t.Errorf("status = %q, want %q (score %.1f over %d)", r.Status, tt.want, r.Score, r.TasksCompleted)
			}
			if r.TasksCompleted != tt.total {
				t.Errorf("tasks completed = %d, want %d", r.TasksCompleted, tt.total)
			}
		})
	}
}

func TestTestReadinessNoHistory(t *testing.T) {
	r, err := New(&fakeTasks{}, &fakeSubs{}, curriculum.Default()).TestReadiness(context.Background(), uuid.New(), "Wurzeln")
	if err != nil {
		t.Fatalf("readiness: %v", err)
	}
	if r.Status != "not_ready" || r.Score != 0 || r.TasksCompleted != 0 {
		t.Errorf("got %+v", r)
	}
	if r.Recommendation != "Beginne mit den Übungen zu diesem Thema." {
		t.Errorf("recommendation = %q", r.Recommendation)
	}
}
