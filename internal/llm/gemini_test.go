package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, geminiModels); got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"feedback":     map[string]any{"type": "string"},
			"threat_level": map[string]any{"type": "string", "enum": []string{"low", "medium", "high", "critical"}},
			"tips": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 3,
				"maxItems": 3,
			},
		},
		"required": []any{"feedback", "tips"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != genai.TypeObject {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 3 {
		t.Fatalf("expected 3 properties, got %d", len(schema.Properties))
	}
	if len(schema.Properties["threat_level"].Enum) != 4 {
		t.Fatalf("expected 4 enum values, got %v", schema.Properties["threat_level"].Enum)
	}
	tips := schema.Properties["tips"]
	if tips.Type != genai.TypeArray || tips.Items.Type != genai.TypeString {
		t.Fatalf("tips = %+v", tips)
	}
	if tips.MinItems == nil || *tips.MinItems != 3 || tips.MaxItems == nil || *tips.MaxItems != 3 {
		t.Fatalf("tips bounds = %v..%v", tips.MinItems, tips.MaxItems)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}

func TestBuildGeminiSchema_UnknownTypeFallsBackToString(t *testing.T) {
	if got := buildGeminiSchema(map[string]any{"type": "null"}).Type; got != genai.TypeString {
		t.Fatalf("type = %s", got)
	}
}
