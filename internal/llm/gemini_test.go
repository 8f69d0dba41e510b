package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelAliases(t *testing.T) {
	tests := []struct {
		alias string
		want  string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash-lite", "gemini-2.0-flash-lite"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.alias, geminiModels); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.alias, got, tt.want)
		}
	}
}

func TestGeminiSchemaTranslation(t *testing.T) {
	def := map[string]any{
		"type":        "object",
		"description": "Erklärung eines Rechenfehlers",
		"properties": map[string]any{
			"erklaerung":     map[string]any{"type": "string"},
			"uebungsanzahl":  map[string]any{"type": "integer"},
			"schwierigkeit":  map[string]any{"type": "string", "enum": []any{"leicht", "mittel", "schwer"}},
			"beispielwerte":  map[string]any{"type": "array", "items": map[string]any{"type": "number"}},
			"weiterarbeiten": map[string]any{"type": "boolean"},
		},
		"required": []any{"erklaerung", "schwierigkeit"},
	}

	schema := geminiSchema(def)

	if schema.Type != genai.TypeObject {
		t.Fatalf("top-level type = %s, want OBJECT", schema.Type)
	}
	if schema.Description != "Erklärung eines Rechenfehlers" {
		t.Errorf("description not carried over: %q", schema.Description)
	}
	if len(schema.Properties) != 5 {
		t.Fatalf("got %d properties, want 5", len(schema.Properties))
	}
	if got := schema.Properties["erklaerung"].Type; got != genai.TypeString {
		t.Errorf("erklaerung type = %s, want STRING", got)
	}
	if got := schema.Properties["uebungsanzahl"].Type; got != genai.TypeInteger {
		t.Errorf("uebungsanzahl type = %s, want INTEGER", got)
	}
	if got := schema.Properties["weiterarbeiten"].Type; got != genai.TypeBoolean {
		t.Errorf("weiterarbeiten type = %s, want BOOLEAN", got)
	}
	if got := len(schema.Properties["schwierigkeit"].Enum); got != 3 {
		t.Errorf("schwierigkeit enum has %d values, want 3", got)
	}
	arr := schema.Properties["beispielwerte"]
	if arr.Type != genai.TypeArray || arr.Items == nil || arr.Items.Type != genai.TypeNumber {
		t.Errorf("beispielwerte not translated as array of numbers: %+v", arr)
	}
	if len(schema.Required) != 2 {
		t.Errorf("got %d required fields, want 2", len(schema.Required))
	}
}

func TestGeminiTypeFallsBackToString(t *testing.T) {
	if got := geminiType("null"); got != genai.TypeString {
		t.Errorf("geminiType(null) = %s, want STRING fallback", got)
	}
}
