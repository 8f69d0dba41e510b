package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mathevilla/server/internal/auth"
	"github.com/mathevilla/server/internal/challenge"
	"github.com/mathevilla/server/internal/curriculum"
	"github.com/mathevilla/server/internal/importer"
	"github.com/mathevilla/server/internal/progression"
	"github.com/mathevilla/server/internal/recommend"
	"github.com/mathevilla/server/internal/store"
)

type testEnv struct {
	server *Server
	users  *fakeUsers
	tasks  *fakeTasks
	subs   *fakeSubs
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	users := newFakeUsers()
	tasks := newFakeTasks()
	subs := &fakeSubs{users: users}
	challenges := newFakeChallenges()
	resets := newFakeResets()
	assignments := &fakeAssignments{}

	logger := slog.New(slog.DiscardHandler)
	signer := auth.NewSigner([]byte("test-secret"), time.Hour)
	catalog := curriculum.Default()
	authSvc := auth.NewService(users, resets, signer, bcrypt.MinCost, catalog, logger)
	ledger := progression.NewLedger(users, subs, catalog, logger)

	server := NewServer(Deps{
		Users:       users,
		Tasks:       tasks,
		Submissions: subs,
		Assignments: assignments,
		Auth:        authSvc,
		Ledger:      ledger,
		Scheduler:   challenge.NewScheduler(tasks, challenges, users, ledger, logger),
		Rec:         recommend.New(tasks, subs, catalog),
		Narrator:    recommend.NewNarrator(nil, logger),
		Explainer:   recommend.NewExplainer(nil, logger),
		Importer:    importer.New(tasks, catalog, logger),
		Seeder:      curriculum.NewSeeder(catalog, tasks, users, logger),
		Catalog:     catalog,
		Logger:      logger,
	})
	return &testEnv{server: server, users: users, tasks: tasks, subs: subs}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.server.Router().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return v
}

func (e *testEnv) register(t *testing.T, email, role string, grade int) (string, *store.User) {
	t.Helper()
	body := map[string]any{
		"email":    email,
		"password": "geheim",
		"name":     strings.Split(email, "@")[0],
		"role":     role,
	}
	if grade != 0 {
		body["grade"] = grade
	}
	rec := e.do(t, http.MethodPost, "/api/auth/register", "", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("register %s: status %d body %s", email, rec.Code, rec.Body.String())
	}
	resp := decode[tokenResponse](t, rec)
	return resp.AccessToken, resp.User
}

func (e *testEnv) seedTask(grade int, topic, answer string) *store.Task {
	task := &store.Task{
		ID:            uuid.New(),
		Grade:         grade,
		Topic:         topic,
		Question:      "q",
		Type:          "text_input",
		CorrectAnswer: answer,
		Explanation:   "e",
		XPReward:      10,
		Difficulty:    "mittel",
	}
	e.tasks.tasks[task.ID] = task
	return task
}

func TestRegisterAndMe(t *testing.T) {
	env := newTestEnv(t)
	token, user := env.register(t, "anna@example.com", "student", 6)

	rec := env.do(t, http.MethodGet, "/api/auth/me", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("me: status %d", rec.Code)
	}
	me := decode[map[string]any](t, rec)
	if me["email"] != "anna@example.com" {
		t.Errorf("email = %v", me["email"])
	}
	if me["id"] != user.ID.String() {
		t.Errorf("id = %v, want %v", me["id"], user.ID)
	}
	if _, leaked := me["password_hash"]; leaked {
		t.Error("password hash leaked in response")
	}
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "anna@example.com", "student", 6)

	rec := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email": "anna@example.com", "password": "geheim", "name": "Anna",
	})
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)
	tests := []struct {
		name string
		body map[string]any
	}{
		{"bad email", map[string]any{"email": "nope", "password": "geheim", "name": "A"}},
		{"short password", map[string]any{"email": "a@b.de", "password": "abc", "name": "A"}},
		{"grade out of range", map[string]any{"email": "a@b.de", "password": "geheim", "name": "A", "grade": 11}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/api/auth/register", "", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "anna@example.com", "student", 6)

	rec := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email": "anna@example.com", "password": "falsch",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthRequired(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/api/auth/me", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", rec.Code)
	}
	rec = env.do(t, http.MethodGet, "/api/auth/me", "kaputt", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("bad token: status = %d, want 401", rec.Code)
	}
}

func TestAdminRouteForbiddenForStudents(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.register(t, "anna@example.com", "student", 6)

	rec := env.do(t, http.MethodGet, "/api/admin/stats", token, nil)
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestPublicTaskRoutes(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/tasks/grades", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("grades: status %d", rec.Code)
	}
	grades := decode[map[string][]int](t, rec)
	if len(grades["grades"]) != 6 {
		t.Errorf("grades = %v", grades)
	}

	rec = env.do(t, http.MethodGet, "/api/tasks/topics/7", "", nil)
	topics := decode[map[string]any](t, rec)
	if list, ok := topics["topics"].([]any); !ok || len(list) != 6 {
		t.Errorf("topics = %v", topics["topics"])
	}
}

func TestSubmitAwardsXP(t *testing.T) {
	env := newTestEnv(t)
	token, user := env.register(t, "anna@example.com", "student", 7)
	task := env.seedTask(7, "Prozentrechnung", "20")

	rec := env.do(t, http.MethodPost, "/api/tasks/submit", token, map[string]any{
		"task_id": task.ID.String(), "answer": " 20 ",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("submit: status %d body %s", rec.Code, rec.Body.String())
	}
	result := decode[map[string]any](t, rec)
	if result["is_correct"] != true {
		t.Error("trimmed answer not accepted")
	}
	if result["xp_earned"].(float64) != 10 {
		t.Errorf("xp_earned = %v", result["xp_earned"])
	}
	if env.users.users[user.ID].XP != 10 {
		t.Errorf("stored xp = %d", env.users.users[user.ID].XP)
	}
}

func TestSubmitUnknownTask(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.register(t, "anna@example.com", "student", 7)

	rec := env.do(t, http.MethodPost, "/api/tasks/submit", token, map[string]any{
		"task_id": uuid.NewString(), "answer": "20",
	})
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestPracticeSubmitNoXP(t *testing.T) {
	env := newTestEnv(t)
	token, user := env.register(t, "anna@example.com", "student", 7)
	task := env.seedTask(7, "Prozentrechnung", "20")

	rec := env.do(t, http.MethodPost, "/api/practice/submit", token, map[string]any{
		"task_id": task.ID.String(), "answer": "20",
	})
	result := decode[map[string]any](t, rec)
	if result["is_correct"] != true || result["mode"] != "practice" {
		t.Errorf("result = %v", result)
	}
	if env.users.users[user.ID].XP != 0 {
		t.Errorf("practice moved xp to %d", env.users.users[user.ID].XP)
	}
}

func TestProgressStats(t *testing.T) {
	env := newTestEnv(t)
	token, user := env.register(t, "anna@example.com", "student", 7)
	task := env.seedTask(7, "Prozentrechnung", "20")

	for i := 0; i < 4; i++ {
		env.subs.Append(t.Context(), &store.Submission{
			ID: uuid.New(), UserID: user.ID, TaskID: task.ID,
			Grade: 7, Topic: "Prozentrechnung", Correct: i < 3, Mode: "normal",
		})
	}

	rec := env.do(t, http.MethodGet, "/api/progress/stats", token, nil)
	stats := decode[userStats](t, rec)
	if stats.TotalTasksCompleted != 4 || stats.CorrectAnswers != 3 {
		t.Errorf("totals = %d/%d", stats.CorrectAnswers, stats.TotalTasksCompleted)
	}
	if stats.SuccessRate != 75.0 {
		t.Errorf("success_rate = %v", stats.SuccessRate)
	}
	if len(stats.Strengths) != 1 || stats.Strengths[0].Topic != "Prozentrechnung" {
		t.Errorf("strengths = %v", stats.Strengths)
	}
}

func TestDailyChallengeFlow(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.register(t, "anna@example.com", "student", 7)
	for i := 0; i < 6; i++ {
		env.seedTask(7, "Prozentrechnung", fmt.Sprint(i))
	}

	rec := env.do(t, http.MethodGet, "/api/challenges/daily", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("daily: status %d body %s", rec.Code, rec.Body.String())
	}
	view := decode[map[string]any](t, rec)
	tasks := view["tasks"].([]any)
	if len(tasks) != 5 {
		t.Fatalf("tasks = %d", len(tasks))
	}

	first := tasks[0].(map[string]any)
	rec = env.do(t, http.MethodPost, "/api/challenges/daily/submit/"+view["id"].(string), token, map[string]any{
		"task_id": first["id"], "answer": first["correct_answer"],
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("daily submit: status %d body %s", rec.Code, rec.Body.String())
	}
	outcome := decode[map[string]any](t, rec)
	if outcome["is_correct"] != true {
		t.Errorf("outcome = %v", outcome)
	}
	if outcome["tasks_remaining"].(float64) != 4 {
		t.Errorf("tasks_remaining = %v", outcome["tasks_remaining"])
	}
}

func TestAIRecommendationFallsBackWithoutProvider(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.register(t, "anna@example.com", "student", 7)

	rec := env.do(t, http.MethodGet, "/api/recommendations/ai", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decode[map[string]string](t, rec)
	if resp["recommendation"] == "" {
		t.Error("fallback recommendation missing")
	}
}

func TestExplainMistakeFallsBackWithoutProvider(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.register(t, "anna@example.com", "student", 7)
	task := env.seedTask(7, "Prozentrechnung", "20")

	rec := env.do(t, http.MethodPost, "/api/ai/explain-mistake", token, map[string]any{
		"task_id": task.ID.String(), "student_answer": "15",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decode[recommend.Explanation](t, rec)
	if resp.Explanation == "" || resp.Tip == "" {
		t.Errorf("fallback explanation incomplete: %+v", resp)
	}
}

func TestFeaturesDefault(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.register(t, "anna@example.com", "student", 7)

	rec := env.do(t, http.MethodGet, "/api/features", token, nil)
	features := decode[map[string]bool](t, rec)
	if !features["practice_mode"] {
		t.Error("practice_mode should default to on")
	}
	if features["parent_report"] {
		t.Error("parent_report should default to off")
	}
}

func TestAdminUpdateFeatures(t *testing.T) {
	env := newTestEnv(t)
	adminToken, _ := env.register(t, "admin@example.com", "admin", 0)
	studentToken, student := env.register(t, "anna@example.com", "student", 7)

	rec := env.do(t, http.MethodPut, "/api/admin/features/"+student.ID.String(), adminToken, map[string]bool{
		"parent_report": true,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body %s", rec.Code, rec.Body.String())
	}

	rec = env.do(t, http.MethodGet, "/api/features", studentToken, nil)
	features := decode[map[string]bool](t, rec)
	if !features["parent_report"] {
		t.Error("flag not applied")
	}

	rec = env.do(t, http.MethodPut, "/api/admin/features/"+student.ID.String(), adminToken, map[string]bool{
		"jetpack": true,
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown flag: status = %d, want 400", rec.Code)
	}
}

func TestAdminTaskCRUD(t *testing.T) {
	env := newTestEnv(t)
	adminToken, _ := env.register(t, "admin@example.com", "admin", 0)

	rec := env.do(t, http.MethodPost, "/api/admin/tasks", adminToken, map[string]any{
		"grade": 7, "topic": "Prozentrechnung", "question": "Was sind 10% von 50?",
		"task_type": "free_text", "correct_answer": "5",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("create: status %d body %s", rec.Code, rec.Body.String())
	}
	created := decode[map[string]any](t, rec)
	if created["task_type"] != "text_input" {
		t.Errorf("task_type = %v, want free_text normalized to text_input", created["task_type"])
	}
	if created["xp_reward"].(float64) != 10 {
		t.Errorf("xp_reward default = %v", created["xp_reward"])
	}
	id := created["id"].(string)

	rec = env.do(t, http.MethodPut, "/api/admin/tasks/"+id, adminToken, map[string]any{
		"grade": 7, "topic": "Prozentrechnung", "question": "Was sind 20% von 50?",
		"correct_answer": "10", "difficulty": "schwer",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update: status %d", rec.Code)
	}
	updated := decode[map[string]any](t, rec)
	if updated["difficulty"] != "schwer" {
		t.Errorf("difficulty = %v", updated["difficulty"])
	}

	rec = env.do(t, http.MethodDelete, "/api/admin/tasks/"+id, adminToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: status %d", rec.Code)
	}
	rec = env.do(t, http.MethodDelete, "/api/admin/tasks/"+id, adminToken, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete: status = %d, want 404", rec.Code)
	}
}

func TestAdminCreateTaskValidation(t *testing.T) {
	env := newTestEnv(t)
	adminToken, _ := env.register(t, "admin@example.com", "admin", 0)

	rec := env.do(t, http.MethodPost, "/api/admin/tasks", adminToken, map[string]any{
		"grade": 12, "topic": "X", "question": "q", "correct_answer": "a",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestAdminImportCSV(t *testing.T) {
	env := newTestEnv(t)
	adminToken, _ := env.register(t, "admin@example.com", "admin", 0)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "aufgaben.csv")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	io.WriteString(part, "grade,topic,question,correct_answer\n5,Brüche,Was ist 1/2 + 1/2?,1\n")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/tasks/import-csv", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec := httptest.NewRecorder()
	env.server.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body %s", rec.Code, rec.Body.String())
	}
	result := decode[importer.Result](t, rec)
	if result.Imported != 1 || len(result.Errors) != 0 {
		t.Errorf("result = %+v", result)
	}
}

func TestAdminImportRejectsNonCSV(t *testing.T) {
	env := newTestEnv(t)
	adminToken, _ := env.register(t, "admin@example.com", "admin", 0)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, _ := mw.CreateFormFile("file", "aufgaben.xlsx")
	io.WriteString(part, "not a csv")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/tasks/import-csv", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec := httptest.NewRecorder()
	env.server.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestAdminSeed(t *testing.T) {
	env := newTestEnv(t)
	adminToken, _ := env.register(t, "admin@example.com", "admin", 0)

	rec := env.do(t, http.MethodPost, "/api/admin/seed", adminToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("seed: status %d", rec.Code)
	}
	result := decode[curriculum.SeedResult](t, rec)
	if result.TaskCount == 0 {
		t.Error("seed inserted nothing")
	}

	// Second run must not duplicate.
	rec = env.do(t, http.MethodPost, "/api/admin/seed", adminToken, nil)
	again := decode[curriculum.SeedResult](t, rec)
	if again.Message != "Datenbank bereits mit Seed-Daten gefüllt" {
		t.Errorf("message = %q", again.Message)
	}
}

func TestParentReportAccess(t *testing.T) {
	env := newTestEnv(t)
	adminToken, _ := env.register(t, "admin@example.com", "admin", 0)
	annaToken, anna := env.register(t, "anna@example.com", "student", 7)
	_, ben := env.register(t, "ben@example.com", "student", 7)

	// A student cannot read another student's report.
	rec := env.do(t, http.MethodGet, "/api/reports/parent/"+ben.ID.String(), annaToken, nil)
	if rec.Code != http.StatusForbidden {
		t.Errorf("foreign report: status = %d, want 403", rec.Code)
	}

	// Own report and admin access work.
	for _, token := range []string{annaToken, adminToken} {
		rec = env.do(t, http.MethodGet, "/api/reports/parent/"+anna.ID.String(), token, nil)
		if rec.Code != http.StatusOK {
			t.Errorf("report: status = %d", rec.Code)
		}
	}

	report := decode[map[string]any](t, rec)
	if report["student_name"] != "anna" {
		t.Errorf("student_name = %v", report["student_name"])
	}
	if report["period"] != "Letzte 30 Tage" {
		t.Errorf("period = %v", report["period"])
	}
}

func TestClassAssignments(t *testing.T) {
	env := newTestEnv(t)
	adminToken, _ := env.register(t, "admin@example.com", "admin", 0)
	grade7Token, _ := env.register(t, "anna@example.com", "student", 7)
	grade5Token, _ := env.register(t, "ben@example.com", "student", 5)
	task := env.seedTask(7, "Prozentrechnung", "20")

	rec := env.do(t, http.MethodPost, "/api/class/assign", adminToken, map[string]any{
		"title": "Wochenaufgabe", "grade": 7, "task_ids": []string{task.ID.String()},
		"due_date": "2026-09-04",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("assign: status %d body %s", rec.Code, rec.Body.String())
	}

	rec = env.do(t, http.MethodGet, "/api/class/assignments", grade7Token, nil)
	got := decode[[]map[string]any](t, rec)
	if len(got) != 1 || got[0]["title"] != "Wochenaufgabe" {
		t.Errorf("grade 7 assignments = %v", got)
	}

	rec = env.do(t, http.MethodGet, "/api/class/assignments", grade5Token, nil)
	got = decode[[]map[string]any](t, rec)
	if len(got) != 0 {
		t.Errorf("grade 5 sees %d assignments, want 0", len(got))
	}

	// Students cannot create assignments.
	rec = env.do(t, http.MethodPost, "/api/class/assign", grade7Token, map[string]any{
		"title": "X", "grade": 7, "task_ids": []string{task.ID.String()},
	})
	if rec.Code != http.StatusForbidden {
		t.Errorf("student assign: status = %d, want 403", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/health", "", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
}
