// Package feedback asks an external text-generation service for coaching
// on a completed attempt. Every client can be wrapped with WithFallback so
// the answer flow always gets a Result, even when the service is down.
package feedback

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/abhisek/cyberrange/internal/content"
	"github.com/abhisek/cyberrange/internal/llm"
)

// ErrBadStatus is returned by HTTPClient for non-2xx responses.
var ErrBadStatus = errors.New("feedback service returned non-2xx status")

// ThreatLevel grades how dangerous the attack would have been.
type ThreatLevel string

const (
	ThreatLow      ThreatLevel = "low"
	ThreatMedium   ThreatLevel = "medium"
	ThreatHigh     ThreatLevel = "high"
	ThreatCritical ThreatLevel = "critical"
)

// ScenarioSummary identifies the attempted instance to the service.
type ScenarioSummary struct {
	Title      string             `json:"title"`
	Type       string             `json:"type"`
	Difficulty content.Difficulty `json:"difficulty"`
}

// Request is the body sent to the feedback endpoint.
type Request struct {
	Scenario      ScenarioSummary `json:"scenario"`
	UserAction    string          `json:"userAction"`
	CorrectAction string          `json:"correctAction"`
	IsCorrect     bool            `json:"isCorrect"`
	TimeTaken     float64         `json:"timeTaken"` // seconds
}

// Result is the structured coaching returned for an attempt.
type Result struct {
	Feedback        string      `json:"feedback"`
	Tips            []string    `json:"tips"`
	ThreatLevel     ThreatLevel `json:"threat_level"`
	RealWorldImpact string      `json:"real_world_impact"`

	// Fallback is set when the result was substituted locally.
	Fallback bool `json:"-"`
}

// Client requests feedback for one attempt.
type Client interface {
	RequestFeedback(ctx context.Context, req Request) (*Result, error)
}

// Schema is the JSON schema every Result must satisfy.
var Schema = &llm.Schema{
	Name:        "scenario-feedback",
	Description: "Coaching feedback for a completed phishing-awareness attempt",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"feedback": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "2-3 sentences explaining why the choice was correct or incorrect",
			},
			"tips": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string", "minLength": 1},
				"minItems": 3,
				"maxItems": 3,
			},
			"threat_level": map[string]any{
				"type": "string",
				"enum": []any{"low", "medium", "high", "critical"},
			},
			"real_world_impact": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "What could happen in a real attack",
			},
		},
		"required": []any{"feedback", "tips", "threat_level", "real_world_impact"},
	},
}

// Fallback texts.
const (
	fallbackCorrect = "Excellent work! You correctly identified the threat and took appropriate action. This shows good security awareness."
	fallbackWrong   = "This was a learning opportunity. Always verify suspicious communications through official channels before taking action."
	fallbackImpact  = "Falling for this type of attack could lead to credential theft, unauthorized access to systems, data breaches, or significant financial loss."
)

var fallbackTips = []string{
	"Check sender email addresses carefully for subtle misspellings",
	"Never click links in emails that create urgency or fear",
	"When in doubt, contact the sender through a known, verified channel",
}

// Fallback returns the deterministic result used when the service fails.
func Fallback(req Request) *Result {
	msg := fallbackWrong
	if req.IsCorrect {
		msg = fallbackCorrect
	}
	return &Result{
		Feedback:        msg,
		Tips:            append([]string(nil), fallbackTips...),
		ThreatLevel:     threatFor(req.Scenario.Difficulty),
		RealWorldImpact: fallbackImpact,
		Fallback:        true,
	}
}

func threatFor(d content.Difficulty) ThreatLevel {
	switch d {
	case content.DifficultyHard:
		return ThreatCritical
	case content.DifficultyMedium:
		return ThreatHigh
	default:
		return ThreatMedium
	}
}

// fallbackClient substitutes Fallback for any error from inner.
type fallbackClient struct {
	inner  Client
	logger *zap.Logger
}

// WithFallback wraps c so RequestFeedback never fails. Errors are logged
// at warn and replaced with Fallback(req). A nil c always falls back.
func WithFallback(c Client, logger *zap.Logger) Client {
	if logger == nil {
		logger = zap.L()
	}
	return &fallbackClient{inner: c, logger: logger}
}

func (f *fallbackClient) RequestFeedback(ctx context.Context, req Request) (*Result, error) {
	if f.inner == nil {
		return Fallback(req), nil
	}
	res, err := f.inner.RequestFeedback(ctx, req)
	if err != nil {
		f.logger.Warn("feedback unavailable, using fallback",
			zap.String("scenario", req.Scenario.Title),
			zap.Error(err),
		)
		return Fallback(req), nil
	}
	return res, nil
}
