package store

import (
	"context"
	"time"
)

// AttemptEventData captures one answered question for one student, tagged to
// the objective it assesses. Attempt events are append-only and never
// mutated.
type AttemptEventData struct {
	StudentID string
	ModuleID  string
	Objective int
	SessionID string

	QuestionFormat string
	QuestionText   string
	GivenAnswer    string
	CorrectAnswer  string
	Correct        bool

	// Reviewed reports whether a reasoning review is attached. Score and
	// MajorMistake are meaningful only when it is true.
	Reviewed       bool
	ReasoningScore int
	MajorMistake   bool

	// Timestamp is populated on read.
	Timestamp time.Time
}

// MasteryEventData records an objective status transition for audit and
// dashboards.
type MasteryEventData struct {
	StudentID  string
	ModuleID   string
	Objective  int
	FromStatus string
	ToStatus   string
	Streak     int
	Trigger    string
	SessionID  string
}

// LLMRequestEventData captures a single LLM API call for cost tracking and
// debugging.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string

	// Timestamp is populated on read.
	Timestamp time.Time
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAttempt records an answered question.
	AppendAttempt(ctx context.Context, data AttemptEventData) error

	// AttemptHistory returns the full attempt history for one
	// (student, module, objective) triple, most recent first.
	AttemptHistory(ctx context.Context, studentID, moduleID string, objective int) ([]AttemptEventData, error)

	// AppendMasteryEvent records an objective status transition.
	AppendMasteryEvent(ctx context.Context, data MasteryEventData) error

	// LatestMasteryEvents returns the most recent transition per objective
	// for one (student, module) pair, keyed by objective index.
	LatestMasteryEvents(ctx context.Context, studentID, moduleID string) (map[int]MasteryEventData, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// ListLLMRequests returns the most recent LLM request events, newest
	// first. limit <= 0 means no limit.
	ListLLMRequests(ctx context.Context, limit int) ([]LLMRequestEventData, error)
}

// ModuleData is a stored course module: its material text and the learning
// objectives generated for it.
type ModuleData struct {
	ID         string
	Title      string
	Material   string
	Objectives []string
	CreatedAt  time.Time
}

// ModuleRepo manages course modules.
type ModuleRepo interface {
	Save(ctx context.Context, data ModuleData) error
	Get(ctx context.Context, id string) (*ModuleData, error)
	List(ctx context.Context) ([]ModuleData, error)
	SetObjectives(ctx context.Context, id string, objectives []string) error
	Delete(ctx context.Context, id string) error
}
