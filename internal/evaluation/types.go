package evaluation

// ReviewInput holds the context for reviewing one short-answer response.
type ReviewInput struct {
	// Objective is the learning objective text the question assesses.
	Objective string

	// QuestionText is the prompt the student answered.
	QuestionText string

	// CorrectAnswer is the canonical model answer.
	CorrectAnswer string

	// GivenAnswer is the student's response.
	GivenAnswer string

	// Correct is the exact-match grading verdict, determined upstream.
	Correct bool
}

// Review is the outcome of evaluating a short-answer response's reasoning.
type Review struct {
	// Score rates the reasoning quality: 0 (none or restated the question),
	// 1 (partial), 2 (sound).
	Score int

	// MajorMistake reports a conceptual error, as opposed to a slip or a
	// wording problem.
	MajorMistake bool

	// Feedback is a one-sentence note for the student. Empty for rule-based
	// reviews.
	Feedback string

	// Source names the classifier or model that produced this review,
	// e.g. "rule:blank" or "llm".
	Source string
}
