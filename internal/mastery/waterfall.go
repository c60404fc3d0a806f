package mastery

import "sort"

// GradedQuestion couples one graded answer from a quiz submission with the
// objective indexes it assesses. Correctness grading and reasoning review
// happen upstream; by this point the Attempt is final.
type GradedQuestion struct {
	Attempt       Attempt
	Objectives    []int
	QuestionText  string
	GivenAnswer   string
	CorrectAnswer string
}

// SelectObjective implements the waterfall progression policy: among the
// candidate objectives (ascending index order, duplicates ignored), find the
// earliest whose current history does not evaluate to mastered. Only that
// objective advances per quiz submission.
//
// historyFor supplies the current attempt history for an objective,
// most recent first. Returns ok=false when every candidate is mastered.
func SelectObjective(candidates []int, historyFor func(objective int) []Attempt) (objective int, current Result, ok bool) {
	seen := make(map[int]bool, len(candidates))
	ordered := make([]int, 0, len(candidates))
	for _, c := range candidates {
		if !seen[c] {
			seen[c] = true
			ordered = append(ordered, c)
		}
	}
	sort.Ints(ordered)

	for _, obj := range ordered {
		res := Evaluate(historyFor(obj))
		if res.Status != StatusMastered {
			return obj, res, true
		}
	}
	return 0, Result{}, false
}
