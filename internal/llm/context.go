package llm

import "context"

type contextKey struct{}

// Purpose labels recorded with each request event.
const (
	PurposeFeedback = "feedback"
	PurposeAnalyze  = "analyze-scenario"
)

// WithPurpose attaches a purpose label to ctx for event logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, contextKey{}, purpose)
}

// PurposeFrom returns the purpose label on ctx, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(contextKey{}).(string); ok && v != "" {
		return v
	}
	return "unknown"
}
