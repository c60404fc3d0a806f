package mastery

import (
	"context"
	"testing"

	"github.com/studytrail/studytrail/internal/store"
)

// memEventRepo implements store.EventRepo in memory for testing. Histories
// are keyed by objective index; AttemptHistory returns most recent first.
type memEventRepo struct {
	attempts map[int][]store.AttemptEventData
	mastery  []store.MasteryEventData
}

func newMemEventRepo() *memEventRepo {
	return &memEventRepo{attempts: make(map[int][]store.AttemptEventData)}
}

func (m *memEventRepo) AppendAttempt(_ context.Context, data store.AttemptEventData) error {
	m.attempts[data.Objective] = append([]store.AttemptEventData{data}, m.attempts[data.Objective]...)
	return nil
}

func (m *memEventRepo) AttemptHistory(_ context.Context, _, _ string, objective int) ([]store.AttemptEventData, error) {
	return m.attempts[objective], nil
}

func (m *memEventRepo) AppendMasteryEvent(_ context.Context, data store.MasteryEventData) error {
	m.mastery = append(m.mastery, data)
	return nil
}

func (m *memEventRepo) LatestMasteryEvents(_ context.Context, _, _ string) (map[int]store.MasteryEventData, error) {
	return nil, nil
}

func (m *memEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}

func (m *memEventRepo) ListLLMRequests(_ context.Context, _ int) ([]store.LLMRequestEventData, error) {
	return nil, nil
}

func gq(att Attempt, objectives ...int) GradedQuestion {
	return GradedQuestion{Attempt: att, Objectives: objectives}
}

func TestService_Standing_Empty(t *testing.T) {
	svc := NewService(newMemEventRepo())

	res, err := svc.Standing(context.Background(), "s1", "m1", 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != StatusDeveloping {
		t.Errorf("Status = %s, want developing", res.Status)
	}
}

func TestService_RecordAttempt_TransitionLogged(t *testing.T) {
	repo := newMemEventRepo()
	svc := NewService(repo)
	ctx := context.Background()

	// First correct attempt: developing, no transition.
	res, tr, err := svc.RecordAttempt(ctx, "s1", "m1", "sess", 0, gq(mc(true), 0))
	if err != nil {
		t.Fatal(err)
	}
	if tr != nil {
		t.Errorf("unexpected transition after first attempt: %+v", tr)
	}
	if res.Status != StatusDeveloping {
		t.Errorf("Status = %s, want developing", res.Status)
	}

	// Second correct attempt crosses into approaching.
	res, tr, err = svc.RecordAttempt(ctx, "s1", "m1", "sess", 0, gq(fib(true), 0))
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != StatusApproaching {
		t.Fatalf("Status = %s, want approaching", res.Status)
	}
	if tr == nil || tr.From != StatusDeveloping || tr.To != StatusApproaching {
		t.Fatalf("transition = %+v, want developing -> approaching", tr)
	}
	if len(repo.mastery) != 1 {
		t.Errorf("mastery events = %d, want 1", len(repo.mastery))
	}
	if repo.mastery[0].Trigger != "attempt" {
		t.Errorf("trigger = %q, want attempt", repo.mastery[0].Trigger)
	}
}

func TestService_ApplySubmission_Waterfall(t *testing.T) {
	repo := newMemEventRepo()
	svc := NewService(repo)
	ctx := context.Background()

	// Objective 0 is already mastered.
	for _, att := range []Attempt{mc(true), mc(true), sa(true, 2, false)} {
		if err := repo.AppendAttempt(ctx, store.AttemptEventData{
			Objective:      0,
			QuestionFormat: string(att.Format),
			Correct:        att.Correct,
			Reviewed:       att.Evaluation != nil,
			ReasoningScore: 2,
		}); err != nil {
			t.Fatal(err)
		}
	}

	// Submission tags objectives 0 and 1; only 1 should advance.
	graded := []GradedQuestion{
		gq(mc(true), 0, 1),
		gq(fib(true), 1),
		gq(mc(true), 0),
	}

	out, err := svc.ApplySubmission(ctx, "s1", "m1", "sess", graded)
	if err != nil {
		t.Fatal(err)
	}
	if out.AllMastered {
		t.Fatal("AllMastered = true, want false")
	}
	if out.Objective != 1 {
		t.Errorf("Objective = %d, want 1", out.Objective)
	}
	if out.Recorded != 2 {
		t.Errorf("Recorded = %d, want 2 (questions tagged with objective 1)", out.Recorded)
	}
	if len(repo.attempts[0]) != 3 {
		t.Errorf("objective 0 history grew to %d, want untouched at 3", len(repo.attempts[0]))
	}
	if out.After.Status != StatusApproaching {
		t.Errorf("After.Status = %s, want approaching", out.After.Status)
	}
	if out.Transition == nil {
		t.Error("expected a developing -> approaching transition")
	}
}

func TestService_ApplySubmission_AllMastered(t *testing.T) {
	repo := newMemEventRepo()
	svc := NewService(repo)
	ctx := context.Background()

	for _, att := range []Attempt{mc(true), fib(true), mc(true)} {
		if err := repo.AppendAttempt(ctx, store.AttemptEventData{
			Objective:      0,
			QuestionFormat: string(att.Format),
			Correct:        att.Correct,
		}); err != nil {
			t.Fatal(err)
		}
	}

	out, err := svc.ApplySubmission(ctx, "s1", "m1", "sess", []GradedQuestion{gq(mc(true), 0)})
	if err != nil {
		t.Fatal(err)
	}
	if !out.AllMastered {
		t.Error("AllMastered = false, want true")
	}
	if len(repo.attempts[0]) != 3 {
		t.Errorf("history grew to %d, want 3 (nothing recorded)", len(repo.attempts[0]))
	}
}

func TestService_RecordAttempt_ReviewRoundTrip(t *testing.T) {
	repo := newMemEventRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_, _, err := svc.RecordAttempt(ctx, "s1", "m1", "sess", 0, gq(sa(true, 0, false), 0))
	if err != nil {
		t.Fatal(err)
	}
	_, _, err = svc.RecordAttempt(ctx, "s1", "m1", "sess", 0, gq(mc(true), 0))
	if err != nil {
		t.Fatal(err)
	}
	res, _, err := svc.RecordAttempt(ctx, "s1", "m1", "sess", 0, gq(fib(true), 0))
	if err != nil {
		t.Fatal(err)
	}

	// The shallow short answer persisted through the store and still blocks
	// mastery.
	if res.Status != StatusApproaching {
		t.Errorf("Status = %s, want approaching", res.Status)
	}
	if res.ReasoningSatisfied {
		t.Error("ReasoningSatisfied = true, want false")
	}
}
