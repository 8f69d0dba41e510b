package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
func NewProvider(ctx context.Context, cfg Config, logger *slog.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller -> timeout -> retry -> logging -> base
	logged := WithLogging(base, logger)
	retried := WithRetry(logged, cfg.Retry)

	return WithTimeout(retried, cfg.Timeout), nil
}

// timeoutProvider bounds each request with the configured deadline.
// It wraps the retry layer, so the deadline covers all attempts.
type timeoutProvider struct {
	inner Provider
	limit time.Duration
}

// WithTimeout wraps a provider so every Generate call runs under a
// deadline. A non-positive limit returns the provider unchanged.
func WithTimeout(inner Provider, limit time.Duration) Provider {
	if limit <= 0 {
		return inner
	}
	return &timeoutProvider{inner: inner, limit: limit}
}

func (p *timeoutProvider) ModelID() string { return p.inner.ModelID() }

func (p *timeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, p.limit)
	defer cancel()
	return p.inner.Generate(ctx, req)
}
