// Package llm talks to hosted text-generation models. The trainer uses it
// to write coaching feedback for answered scenarios.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
)

// Provider generates one response for one request.
type Provider interface {
	// Generate sends req and returns the model output. When req.Schema is
	// set the output has already been cleaned and validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request is a single-turn or multi-turn prompt.
type Request struct {
	System   string
	Messages []Message

	// Schema, when set, asks for JSON output matching the definition.
	// Providers with native structured output use it directly; the rest
	// rely on the system prompt and post-validation.
	Schema *Schema

	MaxTokens   int
	Temperature float64
}

// UserPrompt is a convenience for the common one-message request.
func UserPrompt(system, prompt string) Request {
	return Request{
		System:   system,
		Messages: []Message{{Role: RoleUser, Content: prompt}},
	}
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema definition. Name is kebab-case and doubles as
// the tool or schema name sent to providers.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response holds the model output.
type Response struct {
	// Content is JSON when the request had a Schema, otherwise the raw text.
	Content json.RawMessage

	Usage Usage
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Decode unmarshals Content into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Content, v); err != nil {
		return &ErrInvalidResponse{Content: r.Content, Err: fmt.Errorf("decode: %w", err)}
	}
	return nil
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
