package feedback

import (
	"bytes"
	"context"
	"fmt"
	"text/template"

	"github.com/abhisek/cyberrange/internal/llm"
)

// SystemPrompt is sent with every feedback request.
const SystemPrompt = "You are a cybersecurity expert providing training feedback. Always respond with valid JSON only, no markdown formatting."

// LLMConfig tunes generation for feedback.
type LLMConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultLLMConfig returns the settings used when none are configured.
func DefaultLLMConfig() LLMConfig {
	return LLMConfig{MaxTokens: 1024, Temperature: 0.7}
}

// LLMClient writes feedback with a text-generation provider directly.
type LLMClient struct {
	provider llm.Provider
	cfg      LLMConfig
	purpose  string
}

// NewLLMClient creates a client that records its calls under
// llm.PurposeFeedback.
func NewLLMClient(provider llm.Provider, cfg LLMConfig) *LLMClient {
	return &LLMClient{provider: provider, cfg: cfg, purpose: llm.PurposeFeedback}
}

// WithPurpose returns a copy of c that tags requests with purpose.
func (c *LLMClient) WithPurpose(purpose string) *LLMClient {
	cp := *c
	cp.purpose = purpose
	return &cp
}

// RequestFeedback prompts the model and decodes its validated reply.
func (c *LLMClient) RequestFeedback(ctx context.Context, req Request) (*Result, error) {
	ctx = llm.WithPurpose(ctx, c.purpose)

	prompt, err := buildPrompt(req)
	if err != nil {
		return nil, fmt.Errorf("build feedback prompt: %w", err)
	}

	llmReq := llm.UserPrompt(SystemPrompt, prompt)
	llmReq.Schema = Schema
	llmReq.MaxTokens = c.cfg.MaxTokens
	llmReq.Temperature = c.cfg.Temperature

	resp, err := c.provider.Generate(ctx, llmReq)
	if err != nil {
		return nil, fmt.Errorf("generate feedback: %w", err)
	}

	var res Result
	if err := resp.Decode(&res); err != nil {
		return nil, err
	}
	return &res, nil
}

var promptTemplate = template.Must(template.New("feedback").Parse(`You are a cybersecurity training AI assistant. A user just completed an attack simulation scenario.

SCENARIO DETAILS:
- Title: {{.Scenario.Title}}
- Type: {{.Scenario.Type}}
- Difficulty: {{.Scenario.Difficulty}}

USER'S RESPONSE:
- Action taken: {{.UserAction}}
- Correct action was: {{.CorrectAction}}
- Result: {{if .IsCorrect}}CORRECT{{else}}INCORRECT{{end}}
- Time taken: {{printf "%.0f" .TimeTaken}} seconds

Provide a brief, helpful analysis in JSON format with these exact fields:
{
  "feedback": "2-3 sentences explaining why their choice was {{if .IsCorrect}}correct{{else}}incorrect{{end}} and what to learn from this",
  "tips": ["Tip 1", "Tip 2", "Tip 3"],
  "threat_level": "low|medium|high|critical",
  "real_world_impact": "Brief description of what could happen in a real attack"
}

Be encouraging but educational. Keep it concise.`))

func buildPrompt(req Request) (string, error) {
	var buf bytes.Buffer
	if err := promptTemplate.Execute(&buf, req); err != nil {
		return "", err
	}
	return buf.String(), nil
}
