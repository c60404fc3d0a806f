package mastery

import "testing"

func TestSelectObjective_EarliestUnmastered(t *testing.T) {
	mastered := []Attempt{mc(true), mc(true), sa(true, 2, false)}
	developing := []Attempt{mc(false)}

	histories := map[int][]Attempt{
		0: mastered,
		1: developing,
		2: nil,
	}
	historyFor := func(obj int) []Attempt { return histories[obj] }

	obj, res, ok := SelectObjective([]int{2, 0, 1}, historyFor)
	if !ok {
		t.Fatal("expected a selected objective")
	}
	if obj != 1 {
		t.Errorf("objective = %d, want 1", obj)
	}
	if res.Status != StatusDeveloping {
		t.Errorf("current status = %s, want developing", res.Status)
	}
}

func TestSelectObjective_AllMastered(t *testing.T) {
	mastered := []Attempt{mc(true), mc(true), sa(true, 2, false)}
	historyFor := func(int) []Attempt { return mastered }

	if _, _, ok := SelectObjective([]int{0, 1, 1, 2}, historyFor); ok {
		t.Error("expected ok=false when every candidate is mastered")
	}
}

func TestSelectObjective_NoCandidates(t *testing.T) {
	if _, _, ok := SelectObjective(nil, func(int) []Attempt { return nil }); ok {
		t.Error("expected ok=false for an empty candidate list")
	}
}

func TestSelectObjective_EvaluatesOnlyUntilFirstMatch(t *testing.T) {
	calls := map[int]int{}
	historyFor := func(obj int) []Attempt {
		calls[obj]++
		return nil // every objective evaluates to developing
	}

	obj, _, ok := SelectObjective([]int{0, 1, 2}, historyFor)
	if !ok || obj != 0 {
		t.Fatalf("objective = %d ok = %t, want 0 true", obj, ok)
	}
	if calls[1] != 0 || calls[2] != 0 {
		t.Errorf("later objectives evaluated: %v, want iteration to stop at the first non-mastered", calls)
	}
}
