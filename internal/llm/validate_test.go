package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func verdictSchema() *Schema {
	return &Schema{
		Name:        "test-verdict",
		Description: "A classification verdict",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"verdict":    map[string]any{"type": "string", "enum": []any{"phishing", "legitimate"}},
				"confidence": map[string]any{"type": "integer", "minimum": 0},
				"tips": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": 1,
				},
			},
			"required": []any{"verdict"},
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"verdict":"phishing","confidence":2,"tips":["check sender"]}`, false},
		{"optional fields omitted", `{"verdict":"legitimate"}`, false},
		{"missing required", `{"confidence":1}`, true},
		{"wrong type", `{"verdict":"phishing","confidence":"high"}`, true},
		{"bad enum", `{"verdict":"suspicious"}`, true},
		{"empty tips", `{"verdict":"phishing","tips":[]}`, true},
		{"malformed", `{not json}`, true},
		{"empty", ``, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(verdictSchema(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var inv *ErrInvalidResponse
				if !errors.As(err, &inv) {
					t.Fatalf("expected ErrInvalidResponse, got %T", err)
				}
			}
		})
	}
}

func TestValidate_NilSchema(t *testing.T) {
	if err := Validate(nil, json.RawMessage(`anything`)); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"  {\"a\":1}\n", `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"```json{\"a\":1}```", `{"a":1}`},
	}
	for _, tt := range tests {
		if got := string(StripFences([]byte(tt.in))); got != tt.want {
			t.Errorf("StripFences(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCleanAndValidate(t *testing.T) {
	content, err := cleanAndValidate(verdictSchema(), "```json\n{\"verdict\":\"legitimate\"}\n```")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(content) != `{"verdict":"legitimate"}` {
		t.Fatalf("content = %s", content)
	}

	raw, err := cleanAndValidate(nil, "plain text")
	if err != nil || string(raw) != "plain text" {
		t.Fatalf("nil schema = %q, %v", raw, err)
	}
}
