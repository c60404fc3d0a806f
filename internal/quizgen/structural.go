package quizgen

import (
	"strings"

	"github.com/studytrail/studytrail/internal/mastery"
)

// StructuralValidator checks that required fields are present, within
// length limits, and have valid enum values.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, _ GenerateInput) *ValidationError {
	if q.Text == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question_text is empty",
			Retryable: true,
		}
	}
	if len(q.Text) > 1000 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question_text exceeds 1000 characters",
			Retryable: true,
		}
	}
	if q.Answer == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "answer is empty",
			Retryable: true,
		}
	}
	if q.Explanation == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation is empty",
			Retryable: true,
		}
	}
	if len(q.Explanation) > 2000 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation exceeds 2000 characters",
			Retryable: true,
		}
	}

	switch q.Format {
	case mastery.FormatMultipleChoice:
		if len(q.Choices) != 4 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "multiple_choice requires exactly 4 choices",
				Retryable: true,
			}
		}
		if !containsFold(q.Choices, q.Answer) {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "answer does not match any choice",
				Retryable: true,
			}
		}
	case mastery.FormatShortAnswer:
		if len(q.Choices) > 0 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "short_answer must not have choices",
				Retryable: true,
			}
		}
	case mastery.FormatFillInBlank:
		if len(q.Choices) > 0 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "fill_in_blank must not have choices",
				Retryable: true,
			}
		}
		if !strings.Contains(q.Text, "___") {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "fill_in_blank question has no blank marker",
				Retryable: true,
			}
		}
	default:
		return &ValidationError{
			Validator: v.Name(),
			Message:   "format must be \"multiple_choice\", \"short_answer\", or \"fill_in_blank\"",
			Retryable: true,
		}
	}

	return nil
}

// containsFold reports whether any element of list equals s, ignoring case
// and surrounding whitespace.
func containsFold(list []string, s string) bool {
	s = strings.TrimSpace(s)
	for _, c := range list {
		if strings.EqualFold(strings.TrimSpace(c), s) {
			return true
		}
	}
	return false
}
