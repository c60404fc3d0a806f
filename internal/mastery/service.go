package mastery

import (
	"context"
	"fmt"

	"github.com/studytrail/studytrail/internal/store"
)

// Transition records an objective status change for display and event
// logging.
type Transition struct {
	StudentID string
	ModuleID  string
	Objective int
	From      Status
	To        Status
	Trigger   string // "attempt", "quiz-submission"
}

// SubmissionOutcome reports what a quiz submission did under the waterfall
// policy.
type SubmissionOutcome struct {
	// AllMastered is true when every tagged objective already evaluated to
	// mastered, in which case nothing was recorded.
	AllMastered bool

	// Objective is the index that received the submission's attempts.
	Objective int

	// Recorded is the number of attempts appended to that objective.
	Recorded int

	Before Result
	After  Result

	// Transition is non-nil when the submission changed the status.
	Transition *Transition
}

// Service evaluates and records objective mastery on top of the event store.
// Evaluation itself is stateless: every call reloads the complete history
// and reclassifies from scratch.
type Service struct {
	events store.EventRepo
}

// NewService creates a mastery service backed by the given event repo.
func NewService(events store.EventRepo) *Service {
	return &Service{events: events}
}

// Standing loads the full attempt history for one objective and evaluates
// it.
func (s *Service) Standing(ctx context.Context, studentID, moduleID string, objective int) (Result, error) {
	history, err := s.history(ctx, studentID, moduleID, objective)
	if err != nil {
		return Result{}, err
	}
	return Evaluate(history), nil
}

// RecordAttempt appends a single attempt to an objective's history and
// re-evaluates. Returns the new result and a Transition if the status
// changed.
func (s *Service) RecordAttempt(ctx context.Context, studentID, moduleID, sessionID string, objective int, q GradedQuestion) (Result, *Transition, error) {
	before, err := s.Standing(ctx, studentID, moduleID, objective)
	if err != nil {
		return Result{}, nil, err
	}

	if err := s.events.AppendAttempt(ctx, attemptEvent(studentID, moduleID, sessionID, objective, q)); err != nil {
		return Result{}, nil, fmt.Errorf("append attempt: %w", err)
	}

	after, err := s.Standing(ctx, studentID, moduleID, objective)
	if err != nil {
		return Result{}, nil, err
	}

	tr, err := s.logTransition(ctx, studentID, moduleID, sessionID, objective, before, after, "attempt")
	if err != nil {
		return Result{}, nil, err
	}
	return after, tr, nil
}

// ApplySubmission applies a graded quiz submission under the waterfall
// policy: the earliest unmastered objective among the submission's tagged
// objectives receives every attempt tagged with it; all other objectives are
// left untouched.
func (s *Service) ApplySubmission(ctx context.Context, studentID, moduleID, sessionID string, graded []GradedQuestion) (*SubmissionOutcome, error) {
	var candidates []int
	for _, g := range graded {
		candidates = append(candidates, g.Objectives...)
	}

	histories := make(map[int][]Attempt)
	var loadErr error
	historyFor := func(obj int) []Attempt {
		if h, ok := histories[obj]; ok {
			return h
		}
		h, err := s.history(ctx, studentID, moduleID, obj)
		if err != nil && loadErr == nil {
			loadErr = err
		}
		histories[obj] = h
		return h
	}

	target, before, ok := SelectObjective(candidates, historyFor)
	if loadErr != nil {
		return nil, loadErr
	}
	if !ok {
		return &SubmissionOutcome{AllMastered: true}, nil
	}

	recorded := 0
	for _, g := range graded {
		if !tagged(g.Objectives, target) {
			continue
		}
		if err := s.events.AppendAttempt(ctx, attemptEvent(studentID, moduleID, sessionID, target, g)); err != nil {
			return nil, fmt.Errorf("append attempt: %w", err)
		}
		recorded++
	}

	after, err := s.Standing(ctx, studentID, moduleID, target)
	if err != nil {
		return nil, err
	}

	tr, err := s.logTransition(ctx, studentID, moduleID, sessionID, target, before, after, "quiz-submission")
	if err != nil {
		return nil, err
	}

	return &SubmissionOutcome{
		Objective:  target,
		Recorded:   recorded,
		Before:     before,
		After:      after,
		Transition: tr,
	}, nil
}

func (s *Service) history(ctx context.Context, studentID, moduleID string, objective int) ([]Attempt, error) {
	events, err := s.events.AttemptHistory(ctx, studentID, moduleID, objective)
	if err != nil {
		return nil, fmt.Errorf("load attempt history: %w", err)
	}

	attempts := make([]Attempt, len(events))
	for i, e := range events {
		att := Attempt{
			Format:     QuestionFormat(e.QuestionFormat),
			Correct:    e.Correct,
			AnsweredAt: e.Timestamp,
		}
		if e.Reviewed {
			att.Evaluation = &Evaluation{Score: e.ReasoningScore, MajorMistake: e.MajorMistake}
		}
		attempts[i] = att
	}
	return attempts, nil
}

func (s *Service) logTransition(ctx context.Context, studentID, moduleID, sessionID string, objective int, before, after Result, trigger string) (*Transition, error) {
	if before.Status == after.Status {
		return nil, nil
	}

	tr := &Transition{
		StudentID: studentID,
		ModuleID:  moduleID,
		Objective: objective,
		From:      before.Status,
		To:        after.Status,
		Trigger:   trigger,
	}

	err := s.events.AppendMasteryEvent(ctx, store.MasteryEventData{
		StudentID:  studentID,
		ModuleID:   moduleID,
		Objective:  objective,
		FromStatus: string(before.Status),
		ToStatus:   string(after.Status),
		Streak:     after.Streak,
		Trigger:    trigger,
		SessionID:  sessionID,
	})
	if err != nil {
		return nil, fmt.Errorf("append mastery event: %w", err)
	}
	return tr, nil
}

func attemptEvent(studentID, moduleID, sessionID string, objective int, q GradedQuestion) store.AttemptEventData {
	data := store.AttemptEventData{
		StudentID:      studentID,
		ModuleID:       moduleID,
		Objective:      objective,
		SessionID:      sessionID,
		QuestionFormat: string(q.Attempt.Format),
		QuestionText:   q.QuestionText,
		GivenAnswer:    q.GivenAnswer,
		CorrectAnswer:  q.CorrectAnswer,
		Correct:        q.Attempt.Correct,
	}
	if ev := q.Attempt.Evaluation; ev != nil {
		data.Reviewed = true
		data.ReasoningScore = ev.Score
		data.MajorMistake = ev.MajorMistake
	}
	return data
}

func tagged(objectives []int, target int) bool {
	for _, o := range objectives {
		if o == target {
			return true
		}
	}
	return false
}
