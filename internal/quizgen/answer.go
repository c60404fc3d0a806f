package quizgen

import (
	"strconv"
	"strings"

	"github.com/studytrail/studytrail/internal/mastery"
)

// CheckAnswer compares the student's input against the correct answer.
// Returns true if the answer is correct.
//
// Normalization rules:
// - Whitespace is trimmed and inner runs collapse to a single space
// - Comparison is case-insensitive
// - Trailing sentence punctuation is ignored (e.g., "mitosis." matches "mitosis")
// - For multiple choice: matches against the choice text or index (1-4)
func CheckAnswer(studentAnswer string, question *Question) bool {
	studentAnswer = strings.TrimSpace(studentAnswer)
	if studentAnswer == "" {
		return false
	}

	if question.Format == mastery.FormatMultipleChoice {
		return checkMultipleChoice(studentAnswer, question)
	}

	return normalizeAnswer(studentAnswer) == normalizeAnswer(question.Answer)
}

// checkMultipleChoice checks the student's answer against MC choices.
func checkMultipleChoice(studentAnswer string, question *Question) bool {
	// Try matching by index (1-4).
	if idx, err := strconv.Atoi(studentAnswer); err == nil && idx >= 1 && idx <= len(question.Choices) {
		return strings.EqualFold(
			strings.TrimSpace(question.Choices[idx-1]),
			strings.TrimSpace(question.Answer),
		)
	}

	// Match by text (case-insensitive).
	return strings.EqualFold(
		strings.TrimSpace(studentAnswer),
		strings.TrimSpace(question.Answer),
	)
}

// normalizeAnswer lowercases, collapses whitespace, and strips trailing
// sentence punctuation for comparison.
func normalizeAnswer(answer string) string {
	fields := strings.Fields(strings.ToLower(answer))
	s := strings.Join(fields, " ")
	return strings.TrimRight(s, ".!?")
}
