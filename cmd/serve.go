package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mathevilla/server/internal/api"
	"github.com/mathevilla/server/internal/auth"
	"github.com/mathevilla/server/internal/challenge"
	"github.com/mathevilla/server/internal/config"
	"github.com/mathevilla/server/internal/curriculum"
	"github.com/mathevilla/server/internal/importer"
	"github.com/mathevilla/server/internal/llm"
	"github.com/mathevilla/server/internal/progression"
	"github.com/mathevilla/server/internal/recommend"
	"github.com/mathevilla/server/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides MATHEVILLA_ADDR)")
}

// runServer builds the full dependency graph from the environment and
// serves HTTP until SIGINT or SIGTERM.
func runServer(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Addr = addr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	dbPath := cfg.DBPath
	if dbPath == "" {
		if dbPath, err = resolveDBPath(cmd); err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()
	logger.Info("database ready", "path", dbPath)

	// AI features are optional. Without a provider the AI endpoints
	// answer with static fallbacks instead of failing.
	var provider llm.Provider
	if cfg.LLM.Configured() {
		provider, err = llm.NewProvider(ctx, cfg.LLM, logger)
		if err != nil {
			return fmt.Errorf("init LLM provider: %w", err)
		}
		logger.Info("llm provider ready", "provider", cfg.LLM.Provider)
	} else {
		logger.Warn("no LLM provider configured, AI endpoints use fallbacks")
	}

	users := st.Users()
	tasks := st.Tasks()
	subs := st.Submissions()

	signer := auth.NewSigner([]byte(cfg.JWTSecret), cfg.TokenTTL)
	catalog := curriculum.Default()
	ledger := progression.NewLedger(users, subs, catalog, logger)

	server := api.NewServer(api.Deps{
		Users:       users,
		Tasks:       tasks,
		Submissions: subs,
		Assignments: st.Assignments(),
		Auth:        auth.NewService(users, st.PasswordResets(), signer, cfg.BcryptCost, catalog, logger),
		Ledger:      ledger,
		Scheduler:   challenge.NewScheduler(tasks, st.Challenges(), users, ledger, logger),
		Rec:         recommend.New(tasks, subs, catalog),
		Narrator:    recommend.NewNarrator(provider, logger),
		Explainer:   recommend.NewExplainer(provider, logger),
		Importer:    importer.New(tasks, catalog, logger),
		Seeder:      curriculum.NewSeeder(catalog, tasks, users, logger),
		Catalog:     catalog,
		CORSOrigins: cfg.CORSOrigins,
		Logger:      logger,
	})

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", cfg.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}

	return nil
}
