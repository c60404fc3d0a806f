package llm

import "context"

type purposeKeyType struct{}

var purposeKey purposeKeyType

// WithPurpose attaches a purpose label ("practice-test", "flashcards",
// "reasoning-review", "objectives", "tutor") to the context for event
// logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
