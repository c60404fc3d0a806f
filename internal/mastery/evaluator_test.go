package mastery

import (
	"testing"
	"time"
)

func mc(correct bool) Attempt {
	return Attempt{Format: FormatMultipleChoice, Correct: correct}
}

func fib(correct bool) Attempt {
	return Attempt{Format: FormatFillInBlank, Correct: correct}
}

func sa(correct bool, score int, majorMistake bool) Attempt {
	return Attempt{
		Format:     FormatShortAnswer,
		Correct:    correct,
		Evaluation: &Evaluation{Score: score, MajorMistake: majorMistake},
	}
}

func TestEvaluate_EmptyHistory(t *testing.T) {
	res := Evaluate(nil)

	if res.Status != StatusDeveloping {
		t.Errorf("Status = %s, want developing", res.Status)
	}
	if res.Streak != 0 {
		t.Errorf("Streak = %d, want 0", res.Streak)
	}
	if len(res.CorrectFormats) != 0 {
		t.Errorf("CorrectFormats = %v, want empty", res.CorrectFormats)
	}
	if res.RecentMajorMistake {
		t.Error("RecentMajorMistake = true, want false")
	}
	if !res.ReasoningSatisfied {
		t.Error("ReasoningSatisfied = false, want true")
	}
	if res.Explanation != "No attempts recorded yet. Start practicing to track your progress." {
		t.Errorf("unexpected explanation: %q", res.Explanation)
	}
	if res.Recommendation != "Take a practice test to begin demonstrating your understanding." {
		t.Errorf("unexpected recommendation: %q", res.Recommendation)
	}
}

func TestEvaluate_Classification(t *testing.T) {
	tests := []struct {
		name     string
		attempts []Attempt
		want     Status
	}{
		{
			name:     "three correct across two formats is mastered",
			attempts: []Attempt{mc(true), mc(true), sa(true, 2, false)},
			want:     StatusMastered,
		},
		{
			name:     "three correct in one format is only approaching",
			attempts: []Attempt{mc(true), mc(true), mc(true)},
			want:     StatusApproaching,
		},
		{
			name:     "most recent incorrect blocks everything",
			attempts: []Attempt{mc(false), mc(true), mc(true)},
			want:     StatusDeveloping,
		},
		{
			name:     "old shallow correct short answer blocks mastery",
			attempts: []Attempt{sa(true, 0, false), sa(true, 2, false), mc(true)},
			want:     StatusApproaching,
		},
		{
			name:     "recent conceptual error blocks despite correctness",
			attempts: []Attempt{sa(true, 1, true), mc(true), mc(true), fib(true)},
			want:     StatusDeveloping,
		},
		{
			name:     "two correct two formats approaching",
			attempts: []Attempt{mc(true), fib(true)},
			want:     StatusApproaching,
		},
		{
			name:     "single correct attempt stays developing",
			attempts: []Attempt{mc(true)},
			want:     StatusDeveloping,
		},
		{
			name:     "all incorrect stays developing",
			attempts: []Attempt{mc(false), fib(false), mc(false)},
			want:     StatusDeveloping,
		},
		{
			name:     "incorrect in second position blocks approaching",
			attempts: []Attempt{mc(true), mc(false), mc(true), fib(true)},
			want:     StatusDeveloping,
		},
		{
			name:     "incorrect beyond recent window does not block mastery",
			attempts: []Attempt{mc(true), sa(true, 2, false), mc(false), fib(true)},
			want:     StatusMastered,
		},
		{
			name:     "short answer without evaluation falls back to correctness",
			attempts: []Attempt{{Format: FormatShortAnswer, Correct: true}, mc(true), fib(true)},
			want:     StatusMastered,
		},
		{
			name: "unknown format counts toward breadth",
			attempts: []Attempt{
				{Format: "matching", Correct: true},
				mc(true),
				mc(true),
			},
			want: StatusMastered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.attempts)
			if got.Status != tt.want {
				t.Errorf("Status = %s, want %s", got.Status, tt.want)
			}
		})
	}
}

func TestEvaluate_Streak(t *testing.T) {
	tests := []struct {
		name     string
		attempts []Attempt
		want     int
	}{
		{"empty", nil, 0},
		{"most recent incorrect", []Attempt{mc(false), mc(true)}, 0},
		{"two leading correct", []Attempt{mc(true), fib(true), mc(false), mc(true)}, 2},
		{"all correct", []Attempt{mc(true), mc(true), mc(true)}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.attempts).Streak; got != tt.want {
				t.Errorf("Streak = %d, want %d", got, tt.want)
			}
		})
	}
}

// Prepending one correct attempt grows the streak by exactly one; prepending
// an incorrect attempt resets it to zero.
func TestEvaluate_StreakPrepend(t *testing.T) {
	history := []Attempt{mc(true), fib(true), mc(false)}
	base := Evaluate(history).Streak

	grown := Evaluate(append([]Attempt{mc(true)}, history...)).Streak
	if grown != base+1 {
		t.Errorf("streak after correct prepend = %d, want %d", grown, base+1)
	}

	reset := Evaluate(append([]Attempt{mc(false)}, history...)).Streak
	if reset != 0 {
		t.Errorf("streak after incorrect prepend = %d, want 0", reset)
	}
}

func TestEvaluate_CorrectFormats(t *testing.T) {
	res := Evaluate([]Attempt{mc(true), fib(false), sa(true, 2, false), mc(true)})

	want := map[QuestionFormat]bool{FormatMultipleChoice: true, FormatShortAnswer: true}
	if len(res.CorrectFormats) != len(want) {
		t.Fatalf("CorrectFormats = %v, want %v", res.CorrectFormats, want)
	}
	for f := range want {
		if !res.CorrectFormats[f] {
			t.Errorf("CorrectFormats missing %s", f)
		}
	}

	allWrong := Evaluate([]Attempt{mc(false), fib(false), sa(false, 1, false)})
	if len(allWrong.CorrectFormats) != 0 {
		t.Errorf("all-incorrect history yields formats %v, want empty", allWrong.CorrectFormats)
	}
}

// Adding one clean leading correct attempt never demotes the status.
func TestEvaluate_CleanEvidenceNeverDemotes(t *testing.T) {
	histories := [][]Attempt{
		nil,
		{mc(true)},
		{mc(true), mc(true)},
		{mc(true), fib(true)},
		{mc(true), mc(true), sa(true, 2, false)},
		{mc(false), mc(true), fib(true)},
	}

	for _, h := range histories {
		before := Evaluate(h)
		after := Evaluate(append([]Attempt{mc(true)}, h...))
		if after.Status.Rank() < before.Status.Rank() {
			t.Errorf("history %v: status demoted %s -> %s after clean correct attempt",
				h, before.Status, after.Status)
		}
	}
}

func TestEvaluate_ReasoningSatisfiedFlag(t *testing.T) {
	// Scenario: three correct, two formats, no recent mistake, one shallow
	// short answer. Falls to approaching with the flag cleared.
	res := Evaluate([]Attempt{sa(true, 0, false), sa(true, 2, false), mc(true)})
	if res.Status != StatusApproaching {
		t.Fatalf("Status = %s, want approaching", res.Status)
	}
	if res.ReasoningSatisfied {
		t.Error("ReasoningSatisfied = true, want false")
	}

	// Developing histories default the flag to true even with a shallow
	// answer present.
	dev := Evaluate([]Attempt{mc(false), sa(true, 0, false)})
	if dev.Status != StatusDeveloping {
		t.Fatalf("Status = %s, want developing", dev.Status)
	}
	if !dev.ReasoningSatisfied {
		t.Error("ReasoningSatisfied = false on developing branch, want defaulted true")
	}
}

func TestEvaluate_RecommendationBranches(t *testing.T) {
	oneFormat := Evaluate([]Attempt{mc(true), mc(true), mc(true)})
	if oneFormat.Recommendation != "Practice this objective with different question formats to show you can apply it in varied contexts." {
		t.Errorf("single-format approaching recommendation = %q", oneFormat.Recommendation)
	}

	blocked := Evaluate([]Attempt{mc(false), mc(true), mc(true)})
	if blocked.Recommendation != "Review the course materials for this objective before attempting more practice questions." {
		t.Errorf("mistake-blocked developing recommendation = %q", blocked.Recommendation)
	}

	sparse := Evaluate([]Attempt{mc(true)})
	if sparse.Recommendation != "Keep practicing, or ask the tutor to walk through this objective with you." {
		t.Errorf("sparse developing recommendation = %q", sparse.Recommendation)
	}
}

// Timestamped attempts are re-sorted most-recent-first, so a caller passing
// oldest-first gets the same classification.
func TestEvaluate_SortsByTimestamp(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	oldestFirst := []Attempt{
		{Format: FormatMultipleChoice, Correct: true, AnsweredAt: t0},
		{Format: FormatMultipleChoice, Correct: true, AnsweredAt: t0.Add(time.Minute)},
		{Format: FormatMultipleChoice, Correct: false, AnsweredAt: t0.Add(2 * time.Minute)},
	}

	res := Evaluate(oldestFirst)
	if res.Streak != 0 {
		t.Errorf("Streak = %d, want 0 (most recent attempt is incorrect)", res.Streak)
	}
	if res.Status != StatusDeveloping {
		t.Errorf("Status = %s, want developing", res.Status)
	}
}
