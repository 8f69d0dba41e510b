package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProviderPlaysQueueInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{
			Content: json.RawMessage(`{"empfehlung":"Bruchrechnung wiederholen"}`),
			Usage:   Usage{InputTokens: 40, OutputTokens: 12, TotalTokens: 52},
		},
		MockResponse{Content: json.RawMessage(`{"empfehlung":"Prozentrechnung üben"}`)},
	)

	first, err := mock.Generate(t.Context(), Request{Messages: []Message{{Role: RoleUser, Content: "Was soll ich üben?"}}})
	if err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	if string(first.Content) != `{"empfehlung":"Bruchrechnung wiederholen"}` {
		t.Errorf("first content = %s", first.Content)
	}
	if first.Usage.TotalTokens != 52 {
		t.Errorf("first usage total = %d, want 52", first.Usage.TotalTokens)
	}
	if first.StopReason != "end" {
		t.Errorf("first stop reason = %q, want end", first.StopReason)
	}

	second, err := mock.Generate(t.Context(), Request{Messages: []Message{{Role: RoleUser, Content: "Und danach?"}}})
	if err != nil {
		t.Fatalf("second Generate: %v", err)
	}
	if string(second.Content) != `{"empfehlung":"Prozentrechnung üben"}` {
		t.Errorf("second content = %s", second.Content)
	}
}

func TestMockProviderExhaustedQueue(t *testing.T) {
	mock := NewMockProvider()

	_, err := mock.Generate(t.Context(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("want ErrProviderUnavailable from empty queue, got %v", err)
	}
}

func TestMockProviderRecordsRequests(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})

	_, _ = mock.Generate(t.Context(), Request{
		System:   "Du bist ein geduldiger Mathelehrer.",
		Messages: []Message{{Role: RoleUser, Content: "Erkläre mir Brüche"}},
	})

	if mock.CallCount() != 1 {
		t.Fatalf("CallCount = %d, want 1", mock.CallCount())
	}
	if mock.Calls[0].System != "Du bist ein geduldiger Mathelehrer." {
		t.Errorf("recorded system prompt = %q", mock.Calls[0].System)
	}
	if mock.Calls[0].Messages[0].Content != "Erkläre mir Brüche" {
		t.Errorf("recorded message = %q", mock.Calls[0].Messages[0].Content)
	}
}

func TestMockProviderQueuedError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})

	_, err := mock.Generate(t.Context(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("want ErrRateLimit, got %v", err)
	}
}

func TestMockProviderModelID(t *testing.T) {
	if got := NewMockProvider().ModelID(); got != "mock" {
		t.Errorf("ModelID = %q, want mock", got)
	}
}

func TestPurposeTravelsThroughContext(t *testing.T) {
	if got := PurposeFrom(t.Context()); got != "unknown" {
		t.Errorf("purpose without value = %q, want unknown", got)
	}

	ctx := WithPurpose(t.Context(), "learning-recommendation")
	if got := PurposeFrom(ctx); got != "learning-recommendation" {
		t.Errorf("purpose = %q, want learning-recommendation", got)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic missing key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-ant-test"}}, false},
		{"openai missing key", Config{Provider: "openai"}, true},
		{"openai with key", Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}}, false},
		{"gemini missing key", Config{Provider: "gemini"}, true},
		{"gemini with key", Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "AIza-test"}}, false},
		{"mock needs nothing", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "cohere"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
