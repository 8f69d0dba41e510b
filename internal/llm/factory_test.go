package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

// blockingProvider waits for the caller's context to expire.
type blockingProvider struct{}

func (blockingProvider) ModelID() string { return "blocking" }

func (blockingProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, &ErrProviderUnavailable{Err: ctx.Err()}
}

func TestWithTimeoutBoundsGenerate(t *testing.T) {
	p := WithTimeout(blockingProvider{}, time.Millisecond)

	_, err := p.Generate(t.Context(), Request{})
	if err == nil {
		t.Fatal("expected the deadline to cut the request off")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) || !errors.Is(unavail.Err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
}

func TestWithTimeoutZeroIsPassThrough(t *testing.T) {
	mock := NewMockProvider()
	if got := WithTimeout(mock, 0); got != Provider(mock) {
		t.Fatalf("zero timeout must return the provider unchanged, got %T", got)
	}
}

func TestWithTimeoutDelegatesModelID(t *testing.T) {
	p := WithTimeout(blockingProvider{}, time.Second)
	if got := p.ModelID(); got != "blocking" {
		t.Errorf("ModelID = %q", got)
	}
}

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"MATHEVILLA_LLM_PROVIDER",
		"MATHEVILLA_ANTHROPIC_API_KEY", "MATHEVILLA_OPENAI_API_KEY", "MATHEVILLA_GEMINI_API_KEY",
		"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY",
	} {
		t.Setenv(key, "")
	}
}

func TestConfigFromEnvDiscoversStandardKeys(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-standard")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" || cfg.OpenAI.APIKey != "sk-standard" {
		t.Errorf("cfg = provider %q key %q, want discovered openai", cfg.Provider, cfg.OpenAI.APIKey)
	}
}

func TestConfigFromEnvExplicitProviderSkipsDiscovery(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("MATHEVILLA_LLM_PROVIDER", "gemini")
	t.Setenv("OPENAI_API_KEY", "sk-standard")

	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" {
		t.Errorf("provider = %q, want the explicit choice to win", cfg.Provider)
	}
	if cfg.Configured() {
		t.Error("gemini has no key set, config must stay unconfigured")
	}
}

func TestConfigFromEnvPrefersOwnPrefix(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("MATHEVILLA_ANTHROPIC_API_KEY", "sk-villa")
	t.Setenv("GEMINI_API_KEY", "AIza-standard")

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" || cfg.Anthropic.APIKey != "sk-villa" {
		t.Errorf("cfg = provider %q, want anthropic via MATHEVILLA key", cfg.Provider)
	}
}
