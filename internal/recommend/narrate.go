package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mathevilla/server/internal/llm"
)

// Fallback texts served when no provider is configured or a request
// fails. AI features degrade, they never error out to the client.
const (
	fallbackNoProvider = "KI-Empfehlungen sind derzeit nicht verfügbar."
	fallbackNarrative  = "Übe regelmäßig und arbeite an deinen schwachen Themen!"
)

// PerformanceSummary is the anonymized aggregate handed to the LLM.
// No names, emails, or free-text answers ever leave the system.
type PerformanceSummary struct {
	Grade       int
	SuccessRate float64
	Level       int
	Strengths   []string
	Weaknesses  []string
}

// Explanation is the structured explain-my-mistake answer.
type Explanation struct {
	Explanation    string `json:"explanation"`
	SimilarExample string `json:"similar_example"`
	Tip            string `json:"tip"`
}

// explanationSchema constrains the LLM output for Explainer.
var explanationSchema = &llm.Schema{
	Name:        "mistake-explanation",
	Description: "Explanation of a wrong answer with a similar example and a tip",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"explanation":     map[string]any{"type": "string"},
			"similar_example": map[string]any{"type": "string"},
			"tip":             map[string]any{"type": "string"},
		},
		"required":             []any{"explanation", "similar_example", "tip"},
		"additionalProperties": false,
	},
}

// Narrator turns a performance summary into a short motivational
// recommendation in German.
type Narrator struct {
	provider llm.Provider
	logger   *slog.Logger
}

// NewNarrator creates a Narrator. A nil provider means AI features are
// off and every call returns the static fallback.
func NewNarrator(provider llm.Provider, logger *slog.Logger) *Narrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Narrator{provider: provider, logger: logger}
}

// Narrate produces a short learning recommendation. It never fails:
// provider errors degrade to a static text.
func (n *Narrator) Narrate(ctx context.Context, sum PerformanceSummary) string {
	if n.provider == nil {
		return fallbackNoProvider
	}

	strengths := "Noch keine"
	if len(sum.Strengths) > 0 {
		strengths = strings.Join(sum.Strengths, ", ")
	}
	weaknesses := "Noch keine"
	if len(sum.Weaknesses) > 0 {
		weaknesses = strings.Join(sum.Weaknesses, ", ")
	}

	prompt := fmt.Sprintf(`Du bist ein freundlicher Mathe-Tutor für einen Schüler der %d. Klasse.
Der Schüler hat folgende Statistiken:
- Erfolgsquote: %.1f%%
- Level: %d
- Stärken: %s
- Schwächen: %s

Gib eine kurze, ermutigende Lernempfehlung auf Deutsch (max 3 Sätze).`,
		sum.Grade, sum.SuccessRate, sum.Level, strengths, weaknesses)

	ctx = llm.WithPurpose(ctx, "learning-recommendation")
	resp, err := n.provider.Generate(ctx, llm.Request{
		System:    "Du bist ein freundlicher Mathe-Tutor für Schüler.",
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		MaxTokens: 300,
	})
	if err != nil {
		n.logger.Warn("narrative recommendation failed", "error", err)
		return fallbackNarrative
	}

	var text string
	if err := json.Unmarshal(resp.Content, &text); err != nil || strings.TrimSpace(text) == "" {
		n.logger.Warn("narrative recommendation unusable", "error", err)
		return fallbackNarrative
	}
	return strings.TrimSpace(text)
}

// Explainer produces structured explanations for wrong answers.
type Explainer struct {
	provider llm.Provider
	logger   *slog.Logger
}

// NewExplainer creates an Explainer. A nil provider degrades every
// call to the stored task explanation.
func NewExplainer(provider llm.Provider, logger *slog.Logger) *Explainer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Explainer{provider: provider, logger: logger}
}

// Explain asks the LLM why the student's answer is wrong. Only the
// question, both answers, and the grade level are sent. On any failure
// it falls back to the task's stored explanation.
func (e *Explainer) Explain(ctx context.Context, grade int, question, studentAnswer, correctAnswer, storedExplanation string) Explanation {
	fallback := Explanation{
		Explanation:    strings.TrimSpace(fmt.Sprintf("Die richtige Antwort ist %s. %s", correctAnswer, storedExplanation)),
		SimilarExample: "Übe diese Art von Aufgabe noch einmal.",
		Tip:            "Lies die Aufgabe noch einmal genau durch.",
	}
	if e.provider == nil {
		return fallback
	}

	prompt := fmt.Sprintf(`Du bist ein freundlicher Mathe-Lehrer für Hauptschüler (Klasse %d).
Ein Schüler hat folgende Aufgabe falsch beantwortet:

Aufgabe: %s
Schüler-Antwort: %s
Richtige Antwort: %s

Erkläre in einfachem Deutsch (max 3 Sätze):
1. Warum die Antwort falsch ist
2. Gib eine ähnliche, einfachere Beispielaufgabe mit Lösung
3. Gib einen kurzen Tipp`,
		grade, question, studentAnswer, correctAnswer)

	ctx = llm.WithPurpose(ctx, "explain-mistake")
	resp, err := e.provider.Generate(ctx, llm.Request{
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Schema:    explanationSchema,
		MaxTokens: 500,
	})
	if err != nil {
		e.logger.Warn("mistake explanation failed", "error", err)
		return fallback
	}

	var out Explanation
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		e.logger.Warn("mistake explanation unusable", "error", err)
		return fallback
	}
	return out
}
