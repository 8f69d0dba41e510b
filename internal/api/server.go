// Package api exposes the HTTP surface: auth, tasks, submissions,
// progress, challenges, recommendations, and the admin panel.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mathevilla/server/internal/auth"
	"github.com/mathevilla/server/internal/challenge"
	"github.com/mathevilla/server/internal/curriculum"
	"github.com/mathevilla/server/internal/importer"
	"github.com/mathevilla/server/internal/progression"
	"github.com/mathevilla/server/internal/recommend"
	"github.com/mathevilla/server/internal/store"
)

// Deps bundles everything the HTTP layer calls into.
type Deps struct {
	Users       store.UserRepo
	Tasks       store.TaskRepo
	Submissions store.SubmissionRepo
	Assignments store.AssignmentRepo

	Auth      *auth.Service
	Ledger    *progression.Ledger
	Scheduler *challenge.Scheduler
	Rec       *recommend.Recommender
	Narrator  *recommend.Narrator
	Explainer *recommend.Explainer
	Importer  *importer.Importer
	Seeder    *curriculum.Seeder
	Catalog   *curriculum.Catalog

	CORSOrigins []string
	Logger      *slog.Logger
}

// Server is the HTTP API server.
type Server struct {
	Deps
	router *chi.Mux
}

// NewServer wires the routes and middleware stack.
func NewServer(deps Deps) *Server {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Catalog == nil {
		deps.Catalog = curriculum.Default()
	}
	if len(deps.CORSOrigins) == 0 {
		deps.CORSOrigins = []string{"*"}
	}
	s := &Server{Deps: deps}
	s.setupRouter()
	return s
}

// Router returns the configured handler.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) setupRouter() {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		// Public routes.
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)
		r.Post("/auth/password-reset-request", s.handleResetRequest)
		r.Post("/auth/password-reset-confirm", s.handleResetConfirm)
		r.Get("/tasks/grades", s.handleGrades)
		r.Get("/tasks/topics/{grade}", s.handleTopics)

		// Routes for any signed-in user.
		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)

			r.Get("/auth/me", s.handleMe)
			r.Put("/auth/grade", s.handleUpdateGrade)
			r.Put("/auth/change-password", s.handleChangePassword)

			r.Get("/tasks/single/{id}", s.handleSingleTask)
			r.Get("/tasks/{grade}/{topic}", s.handleTasksByTopic)
			r.Post("/tasks/submit", s.handleSubmit)
			r.Post("/practice/submit", s.handlePracticeSubmit)

			r.Get("/progress/overview", s.handleProgressOverview)
			r.Get("/progress/stats", s.handleProgressStats)

			r.Get("/challenges/daily", s.handleDailyChallenge)
			r.Post("/challenges/daily/submit/{id}", s.handleDailySubmit)
			r.Get("/challenges/weekly", s.handleWeeklyChallenge)
			r.Post("/challenges/weekly/submit", s.handleWeeklySubmit)

			r.Get("/recommendations", s.handleRecommendations)
			r.Get("/recommendations/adaptive", s.handleAdaptiveRecommendations)
			r.Get("/recommendations/ai", s.handleAIRecommendation)
			r.Post("/ai/explain-mistake", s.handleExplainMistake)
			r.Get("/readiness/{topic}", s.handleReadiness)

			r.Get("/badges/available", s.handleBadgesAvailable)
			r.Get("/badges/check", s.handleBadgesCheck)
			r.Get("/features", s.handleFeatures)

			r.Get("/reports/parent/{studentID}", s.handleParentReport)
			r.Get("/class/assignments", s.handleListAssignments)
		})

		// Admin-only routes.
		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth, s.requireAdmin)

			r.Get("/admin/stats", s.handleAdminStats)
			r.Get("/admin/students", s.handleAdminStudents)
			r.Get("/admin/students/{id}", s.handleAdminStudentDetail)

			r.Get("/admin/tasks", s.handleAdminListTasks)
			r.Post("/admin/tasks", s.handleAdminCreateTask)
			r.Post("/admin/tasks/import-csv", s.handleAdminImportCSV)
			r.Put("/admin/tasks/{id}", s.handleAdminUpdateTask)
			r.Delete("/admin/tasks/{id}", s.handleAdminDeleteTask)

			r.Put("/admin/features/{userID}", s.handleAdminUpdateFeatures)

			r.Post("/admin/seed", s.handleSeed)
			r.Post("/admin/seed/additional", s.handleSeedAdditional)
			r.Post("/admin/seed/nrw", s.handleSeedNRW)

			r.Post("/class/assign", s.handleCreateAssignment)
		})
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			s.Logger.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", middleware.GetReqID(r.Context()),
				"remote_addr", r.RemoteAddr,
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
