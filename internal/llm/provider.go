// Package llm abstracts the hosted language-model APIs behind a single
// Provider interface. The server uses it for two things only: narrative
// learning recommendations and explain-my-mistake answers, both of which
// degrade to static fallbacks when no provider is configured.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one completion per call. Implementations exist for
// Anthropic, OpenAI, and Gemini, plus a deterministic mock; decorators
// add retry and logging around any of them.
type Provider interface {
	// Generate sends the request and returns the model output. When
	// req.Schema is set the provider asks for structured output and the
	// returned Content is JSON validated against that schema.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the configured model identifier.
	ModelID() string
}

// Role identifies the author of a Message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of the conversation sent to the model.
type Message struct {
	Role    Role
	Content string
}

// Request is a single generation request. All callers here are
// single-turn: one user message, optionally constrained by a schema.
type Request struct {
	// System sets the model's role, e.g. the friendly German math
	// teacher persona.
	System string

	Messages []Message

	// Schema, when non-nil, requests structured JSON output. Without it
	// the response Content is the raw text wrapped as a JSON string.
	Schema *Schema

	MaxTokens int

	// Temperature in [0, 1]. Zero means deterministic.
	Temperature float64
}

// Schema names and describes the JSON shape the model must produce.
type Schema struct {
	// Name is kebab-case and doubles as the tool/schema name on the
	// provider side, e.g. "mistake-explanation".
	Name string

	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is a completed generation.
type Response struct {
	// Content is validated JSON when the request carried a Schema,
	// otherwise the raw text as a JSON string.
	Content json.RawMessage

	Usage Usage

	// Model is the model that actually served the request, which may be
	// more specific than the configured alias.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage is the token accounting for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

type contextKey struct{}

// WithPurpose tags the context with what this request is for
// ("learning-recommendation", "explain-mistake"). The logging decorator
// includes the tag in every request log line.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, contextKey{}, purpose)
}

// PurposeFrom returns the purpose tag, or "unknown" when missing.
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(contextKey{}).(string); ok {
		return p
	}
	return "unknown"
}
