package recommend

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mathevilla/server/internal/llm"
)

func TestNarrateNoProvider(t *testing.T) {
	n := NewNarrator(nil, nil)
	got := n.Narrate(context.Background(), PerformanceSummary{Grade: 7})
	if got != fallbackNoProvider {
		t.Errorf("got %q", got)
	}
}

func TestNarrateSuccess(t *testing.T) {
	text, _ := json.Marshal("Weiter so! Übe Brüche ein wenig mehr.")
	mock := llm.NewMockProvider(llm.MockResponse{Content: text})

	n := NewNarrator(mock, nil)
	got := n.Narrate(context.Background(), PerformanceSummary{
		Grade:       7,
		SuccessRate: 72.5,
		Level:       3,
		Strengths:   []string{"Dreiecke"},
		Weaknesses:  []string{"Brüche"},
	})
	if got != "Weiter so! Übe Brüche ein wenig mehr." {
		t.Errorf("got %q", got)
	}

	// The prompt carries only anonymized aggregates.
	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d", mock.CallCount())
	}
	prompt := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"7. Klasse", "72.5", "Dreiecke", "Brüche"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestNarrateProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	n := NewNarrator(mock, nil)
	got := n.Narrate(context.Background(), PerformanceSummary{Grade: 5})
	if got != fallbackNarrative {
		t.Errorf("got %q, want fallback", got)
	}
}

func TestNarrateEmptyResponse(t *testing.T) {
	text, _ := json.Marshal("   ")
	mock := llm.NewMockProvider(llm.MockResponse{Content: text})
	n := NewNarrator(mock, nil)
	if got := n.Narrate(context.Background(), PerformanceSummary{Grade: 5}); got != fallbackNarrative {
		t.Errorf("got %q, want fallback", got)
	}
}

func TestExplainSuccess(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"explanation":"Du hast addiert statt multipliziert.","similar_example":"3 × 4 = 12","tip":"Achte auf das Rechenzeichen."}`),
	})
	e := NewExplainer(mock, nil)

	got := e.Explain(context.Background(), 6, "Was ist 3 × 5?", "8", "15", "3 × 5 = 15")
	if got.Explanation != "Du hast addiert statt multipliziert." {
		t.Errorf("explanation = %q", got.Explanation)
	}
	if got.Tip == "" || got.SimilarExample == "" {
		t.Errorf("incomplete: %+v", got)
	}

	// Structured output is requested with the explanation schema.
	if mock.Calls[0].Schema == nil || mock.Calls[0].Schema.Name != "mistake-explanation" {
		t.Error("expected schema-constrained request")
	}
	// No personal data in the prompt.
	prompt := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"Klasse 6", "Was ist 3 × 5?", "8", "15"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestExplainFallbacks(t *testing.T) {
	wantExplanation := "Die richtige Antwort ist 15. 3 × 5 = 15"

	t.Run("no provider", func(t *testing.T) {
		e := NewExplainer(nil, nil)
		got := e.Explain(context.Background(), 6, "q", "8", "15", "3 × 5 = 15")
		if got.Explanation != wantExplanation {
			t.Errorf("explanation = %q", got.Explanation)
		}
		if got.Tip != "Lies die Aufgabe noch einmal genau durch." {
			t.Errorf("tip = %q", got.Tip)
		}
	})

	t.Run("provider error", func(t *testing.T) {
		mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
		e := NewExplainer(mock, nil)
		got := e.Explain(context.Background(), 6, "q", "8", "15", "3 × 5 = 15")
		if got.Explanation != wantExplanation {
			t.Errorf("explanation = %q", got.Explanation)
		}
	})

	t.Run("malformed response", func(t *testing.T) {
		mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
		e := NewExplainer(mock, nil)
		got := e.Explain(context.Background(), 6, "q", "8", "15", "3 × 5 = 15")
		if got.Explanation != wantExplanation {
			t.Errorf("explanation = %q", got.Explanation)
		}
	})
}
