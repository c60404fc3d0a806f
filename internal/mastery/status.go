package mastery

// Status is the tri-state classification of a student's demonstrated command
// of one objective. It is an ordered progression, not a numeric score.
type Status string

const (
	StatusDeveloping  Status = "developing"
	StatusApproaching Status = "approaching"
	StatusMastered    Status = "mastered"
)

// Rank returns the position of the status in the developing → approaching →
// mastered progression. Unknown statuses rank lowest.
func (s Status) Rank() int {
	switch s {
	case StatusApproaching:
		return 1
	case StatusMastered:
		return 2
	default:
		return 0
	}
}

// Result is the output of one evaluation: the classification plus the
// supporting metrics that drove it.
type Result struct {
	Status Status

	// Explanation justifies the status, citing the concrete counts.
	Explanation string

	// Recommendation is the suggested next action for the student.
	Recommendation string

	// Streak is the length of the consecutive-correct run counted from the
	// most recent attempt backward.
	Streak int

	// CorrectFormats is the set of distinct question formats among correct
	// attempts.
	CorrectFormats map[QuestionFormat]bool

	// RecentMajorMistake reports whether either of the two most recent
	// attempts was a major mistake.
	RecentMajorMistake bool

	// ReasoningSatisfied is false only when a correct short-answer attempt
	// somewhere in the history was scored as shallow reasoning.
	ReasoningSatisfied bool
}
