package mastery

import (
	"fmt"
	"sort"
)

// Thresholds for the classification policy. Fixed by design: this is an
// explainable heuristic classifier, not a statistical model.
const (
	masteredMinCorrect    = 3
	masteredMinFormats    = 2
	approachingMinCorrect = 2
	recentMistakeWindow   = 2
)

// Evaluate classifies a student's command of one objective from their full
// attempt history. Attempts must be ordered most recent first; when attempts
// carry timestamps the history is re-sorted defensively (a stable sort, so
// zero-timestamp histories keep the caller's order).
//
// Evaluate is pure and total: every input, including the empty history,
// produces a Result. It performs no I/O and holds no state — callers re-run
// it over the complete updated history whenever a new attempt is recorded.
func Evaluate(attempts []Attempt) Result {
	if len(attempts) == 0 {
		return Result{
			Status:             StatusDeveloping,
			Explanation:        "No attempts recorded yet. Start practicing to track your progress.",
			Recommendation:     "Take a practice test to begin demonstrating your understanding.",
			CorrectFormats:     map[QuestionFormat]bool{},
			ReasoningSatisfied: true,
		}
	}

	ordered := make([]Attempt, len(attempts))
	copy(ordered, attempts)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].AnsweredAt.After(ordered[j].AnsweredAt)
	})

	correctCount := 0
	formats := map[QuestionFormat]bool{}
	for _, a := range ordered {
		if a.Correct {
			correctCount++
			formats[a.Format] = true
		}
	}

	streak := 0
	for _, a := range ordered {
		if !a.Correct {
			break
		}
		streak++
	}

	recentMistake := hasRecentMajorMistake(ordered)
	lowReasoning := hasLowReasoningQuality(ordered)

	res := Result{
		Streak:             streak,
		CorrectFormats:     formats,
		RecentMajorMistake: recentMistake,
		ReasoningSatisfied: true,
	}

	switch {
	case correctCount >= masteredMinCorrect && len(formats) >= masteredMinFormats &&
		!recentMistake && !lowReasoning:
		res.Status = StatusMastered
		res.Explanation = fmt.Sprintf(
			"Answered %d questions correctly across %d different question formats, with no recent mistakes and sound reasoning throughout.",
			correctCount, len(formats))
		res.Recommendation = "This objective looks solid. Move on to the next objective to keep progressing."

	case correctCount >= approachingMinCorrect &&
		(len(formats) >= 1 || correctCount >= masteredMinCorrect) &&
		!recentMistake:
		res.Status = StatusApproaching
		res.Explanation = fmt.Sprintf(
			"%d correct answers recorded; you are building toward mastery of this objective.",
			correctCount)
		if len(formats) < masteredMinFormats {
			res.Recommendation = "Practice this objective with different question formats to show you can apply it in varied contexts."
		} else {
			res.Recommendation = "Keep practicing to build a consistent record on this objective."
		}
		res.ReasoningSatisfied = !lowReasoning

	default:
		res.Status = StatusDeveloping
		if correctCount == 0 {
			res.Explanation = "No correct answers recorded for this objective yet."
		} else {
			res.Explanation = fmt.Sprintf(
				"%d correct answers recorded, but recent work shows mistakes or inconsistency.",
				correctCount)
		}
		if recentMistake {
			res.Recommendation = "Review the course materials for this objective before attempting more practice questions."
		} else {
			res.Recommendation = "Keep practicing, or ask the tutor to walk through this objective with you."
		}
	}

	return res
}

// hasRecentMajorMistake examines only the most recent two attempts. An
// attempt counts as a major mistake if it is a short-answer attempt whose
// evaluation flags a conceptual error, or if it was simply incorrect.
func hasRecentMajorMistake(ordered []Attempt) bool {
	n := min(recentMistakeWindow, len(ordered))
	for _, a := range ordered[:n] {
		if a.Format == FormatShortAnswer && a.Evaluation != nil && a.Evaluation.MajorMistake {
			return true
		}
		if !a.Correct {
			return true
		}
	}
	return false
}

// hasLowReasoningQuality scans the entire history for a correct short-answer
// attempt scored 0 — "got it right for the wrong reasons". Unlike the recent
// mistake check this is deliberately not windowed: one shallow-but-correct
// answer remains a blocker to mastered no matter how old it is.
func hasLowReasoningQuality(ordered []Attempt) bool {
	for _, a := range ordered {
		if a.Format == FormatShortAnswer && a.Evaluation != nil &&
			a.Correct && a.Evaluation.Score == 0 {
			return true
		}
	}
	return false
}
