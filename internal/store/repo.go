package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates token usage for one request purpose.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates token usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one event, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}

// Attempt is one graded answer.
type Attempt struct {
	ID             string    `json:"id"`
	Sequence       int64     `json:"sequence"`
	SessionID      string    `json:"session_id"`
	InstanceID     string    `json:"instance_id"`
	TemplateID     string    `json:"template_id"`
	Kind           string    `json:"kind"`
	Difficulty     string    `json:"difficulty"`
	SelectedAction string    `json:"selected_action"`
	Correct        bool      `json:"correct"`
	ScoreChange    int       `json:"score_change"`
	TimeTakenSecs  float64   `json:"time_taken"`
	Timestamp      time.Time `json:"timestamp"`
}

// Totals summarizes a session's attempts.
type Totals struct {
	Score     int `json:"total_score"`
	Attempted int `json:"scenarios_attempted"`
	Correct   int `json:"scenarios_correct"`
}

// AttemptRepo stores graded answers.
type AttemptRepo interface {
	// Append assigns ID, Sequence and Timestamp when unset and stores a.
	Append(ctx context.Context, a *Attempt) error

	// Recent returns a session's attempts newest first.
	Recent(ctx context.Context, sessionID string, opts QueryOpts) ([]Attempt, error)

	Totals(ctx context.Context, sessionID string) (Totals, error)
}

// ModuleRepo tracks completed learning modules.
type ModuleRepo interface {
	// Complete marks a module done. It reports false if it already was.
	Complete(ctx context.Context, sessionID, moduleID string) (bool, error)

	// Completed returns completed module IDs in completion order.
	Completed(ctx context.Context, sessionID string) ([]string, error)
}
