package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

// explanationLikeSchema mirrors the shape of the mistake-explanation
// response the server requests in production.
func explanationLikeSchema() *Schema {
	return &Schema{
		Name:        "erklaerung",
		Description: "Erklärung einer falschen Antwort",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"explanation":     map[string]any{"type": "string"},
				"tip":             map[string]any{"type": "string"},
				"schwierigkeit":   map[string]any{"type": "string", "enum": []any{"leicht", "mittel", "schwer"}},
				"uebungsanzahl":   map[string]any{"type": "integer", "minimum": 0},
				"similar_example": map[string]any{"type": "string"},
			},
			"required": []any{"explanation", "tip"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"complete", `{"explanation":"Brüche erst gleichnamig machen","tip":"Nenner vergleichen","schwierigkeit":"mittel","uebungsanzahl":3,"similar_example":"1/2 + 1/4"}`, false},
		{"required only", `{"explanation":"x","tip":"y"}`, false},
		{"missing required", `{"explanation":"x"}`, true},
		{"wrong type", `{"explanation":"x","tip":"y","uebungsanzahl":"drei"}`, true},
		{"enum miss", `{"explanation":"x","tip":"y","schwierigkeit":"unmöglich"}`, true},
		{"not json", `Das weiß ich leider nicht.`, true},
		{"empty", ``, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(explanationLikeSchema(), json.RawMessage(tt.raw))
			if tt.wantErr {
				var invalid *ErrInvalidResponse
				if !errors.As(err, &invalid) {
					t.Fatalf("err = %v, want ErrInvalidResponse", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("validateResponse: %v", err)
			}
		})
	}
}

func TestValidateResponseNilSchemaPasses(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`"freier Text"`)); err != nil {
		t.Fatalf("nil schema must pass, got %v", err)
	}
}

func TestEncodeContentWrapsProse(t *testing.T) {
	prose := "Übe regelmäßig und arbeite an deinen schwachen Themen!"

	content, err := encodeContent(nil, prose)
	if err != nil {
		t.Fatalf("encodeContent: %v", err)
	}

	// Decoding the content as a JSON string must round-trip the prose.
	var text string
	if err := json.Unmarshal(content, &text); err != nil {
		t.Fatalf("content is not a JSON string: %v (%s)", err, content)
	}
	if text != prose {
		t.Errorf("text = %q, want %q", text, prose)
	}
}

func TestEncodeContentValidatesSchemaRequests(t *testing.T) {
	schema := explanationLikeSchema()

	content, err := encodeContent(schema, `{"explanation":"Nenner beachten","tip":"Erst kürzen"}`)
	if err != nil {
		t.Fatalf("encodeContent: %v", err)
	}
	if string(content) != `{"explanation":"Nenner beachten","tip":"Erst kürzen"}` {
		t.Errorf("schema content must stay untouched, got %s", content)
	}

	if _, err := encodeContent(schema, "kein JSON"); err == nil {
		t.Fatal("prose against a schema must be rejected")
	}
}

func TestValidateResponseNestedArrays(t *testing.T) {
	schema := &Schema{
		Name: "themen-liste",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"themen": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"topic": map[string]any{"type": "string"},
							"rate":  map[string]any{"type": "number"},
						},
						"required": []any{"topic"},
					},
				},
			},
			"required": []any{"themen"},
		},
	}

	ok := json.RawMessage(`{"themen":[{"topic":"Prozentrechnung","rate":0.4},{"topic":"Brüche"}]}`)
	if err := validateResponse(schema, ok); err != nil {
		t.Fatalf("validateResponse: %v", err)
	}

	bad := json.RawMessage(`{"themen":[{"rate":0.4}]}`)
	if err := validateResponse(schema, bad); err == nil {
		t.Fatal("want error for item missing required field")
	}
}

func TestValidateResponseCachesCompiledSchema(t *testing.T) {
	schema := explanationLikeSchema()
	raw := json.RawMessage(`{"explanation":"x","tip":"y"}`)
	for i := 0; i < 3; i++ {
		if err := validateResponse(schema, raw); err != nil {
			t.Fatalf("pass %d: %v", i, err)
		}
	}
	if _, ok := compiledSchemas.Load(schema.Name); !ok {
		t.Error("compiled schema not cached")
	}
}
