// Package config builds the immutable application configuration from
// the environment. It is constructed once at startup and injected into
// every component; nothing reads the environment after that.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/mathevilla/server/internal/llm"
)

// Config holds all runtime settings for the server.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string

	// CORSOrigins lists allowed origins. "*" allows all.
	CORSOrigins []string

	// DBPath is the SQLite database file path. Empty means the
	// platform default under the user data directory.
	DBPath string

	// JWTSecret signs access tokens. Required outside of tests.
	JWTSecret string

	// TokenTTL is the access token lifetime.
	TokenTTL time.Duration

	// BcryptCost is the password hashing cost factor.
	BcryptCost int

	// LLM configures the optional AI features. An empty provider key
	// degrades those endpoints to static fallbacks.
	LLM llm.Config
}

// Default returns a Config with development defaults.
func Default() Config {
	return Config{
		Addr:        ":8080",
		CORSOrigins: []string{"*"},
		TokenTTL:    24 * time.Hour,
		BcryptCost:  bcrypt.DefaultCost,
		LLM:         llm.DefaultConfig(),
	}
}

// FromEnv builds a Config from MATHEVILLA_* environment variables,
// loading a .env file first when one exists.
func FromEnv() (Config, error) {
	// Missing .env is the normal production case.
	_ = godotenv.Load()

	cfg := Default()

	if v := os.Getenv("MATHEVILLA_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("MATHEVILLA_CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = splitTrim(v)
	}
	if v := os.Getenv("MATHEVILLA_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("MATHEVILLA_JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("MATHEVILLA_TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse MATHEVILLA_TOKEN_TTL: %w", err)
		}
		cfg.TokenTTL = d
	}
	if v := os.Getenv("MATHEVILLA_BCRYPT_COST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse MATHEVILLA_BCRYPT_COST: %w", err)
		}
		cfg.BcryptCost = n
	}

	cfg.LLM = llm.ConfigFromEnv()

	return cfg, nil
}

// Validate checks the settings a running server cannot do without.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("listen address is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("MATHEVILLA_JWT_SECRET is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt cost %d outside [%d, %d]", c.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}

func splitTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
