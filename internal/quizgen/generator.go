package quizgen

import "context"

// Generator produces practice tests using an LLM provider.
type Generator interface {
	// Generate produces a practice test for the given input context.
	// Returns a validated Quiz or an error.
	// All configured validators are run before returning.
	Generate(ctx context.Context, input GenerateInput) (*Quiz, error)
}
