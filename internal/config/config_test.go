package config

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("from env: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("addr = %q, want :8080", cfg.Addr)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("token ttl = %v, want 24h", cfg.TokenTTL)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("MATHEVILLA_ADDR", ":9999")
	t.Setenv("MATHEVILLA_TOKEN_TTL", "1h")
	t.Setenv("MATHEVILLA_CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("from env: %v", err)
	}
	if cfg.Addr != ":9999" {
		t.Errorf("addr = %q", cfg.Addr)
	}
	if cfg.TokenTTL != time.Hour {
		t.Errorf("token ttl = %v", cfg.TokenTTL)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example" {
		t.Errorf("cors = %v", cfg.CORSOrigins)
	}
}

func TestFromEnvBadTTL(t *testing.T) {
	t.Setenv("MATHEVILLA_TOKEN_TTL", "not-a-duration")
	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error for bad TTL")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) { c.JWTSecret = "s3cret" }, false},
		{"missing secret", func(c *Config) {}, true},
		{"empty addr", func(c *Config) { c.JWTSecret = "s"; c.Addr = "" }, true},
		{"zero ttl", func(c *Config) { c.JWTSecret = "s"; c.TokenTTL = 0 }, true},
		{"bad bcrypt cost", func(c *Config) { c.JWTSecret = "s"; c.BcryptCost = 99 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
