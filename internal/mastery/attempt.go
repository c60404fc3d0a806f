package mastery

import "time"

// QuestionFormat is the presentation style of a question. The set is open:
// unknown formats flow through the evaluator and simply become members of
// the distinct-format set.
type QuestionFormat string

const (
	FormatMultipleChoice QuestionFormat = "multiple_choice"
	FormatShortAnswer    QuestionFormat = "short_answer"
	FormatFillInBlank    QuestionFormat = "fill_in_blank"
)

// Evaluation is the qualitative reasoning judgment attached to short-answer
// attempts. It is produced upstream (an LLM call) before the attempt is
// recorded; the evaluator trusts it as final.
type Evaluation struct {
	// Score is a small ordinal (0, 1, or 2). 0 means the answer, even if
	// marked correct, showed shallow or memorized reasoning.
	Score int

	// MajorMistake flags a fundamental conceptual error, independent of
	// surface correctness.
	MajorMistake bool
}

// Attempt is one recorded student response to one question, tagged to the
// objective it assesses. Attempts are immutable once created.
type Attempt struct {
	Format  QuestionFormat
	Correct bool

	// Evaluation is present only for short-answer attempts, and may be nil
	// even then (e.g. the reasoning review failed upstream).
	Evaluation *Evaluation

	// AnsweredAt orders attempts when set. Histories with zero timestamps
	// are taken in the order given (most recent first).
	AnsweredAt time.Time
}
