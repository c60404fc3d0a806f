package quizgen

import "fmt"

// ObjectiveTagValidator checks that every question is tagged with at least
// one objective and that all tagged indices exist in the module. Attempts
// recorded against an out-of-range objective would pollute the mastery
// history, so this is not retryable leniently.
type ObjectiveTagValidator struct{}

func (v *ObjectiveTagValidator) Name() string { return "objective-tag" }

func (v *ObjectiveTagValidator) Validate(q *Question, input GenerateInput) *ValidationError {
	if len(q.Objectives) == 0 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question has no objective tags",
			Retryable: true,
		}
	}
	for _, idx := range q.Objectives {
		if idx < 0 || idx >= len(input.Objectives) {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("objective index %d out of range (module has %d objectives)", idx, len(input.Objectives)),
				Retryable: true,
			}
		}
	}
	return nil
}
