package store

import (
	"context"
	"fmt"

	"github.com/studytrail/studytrail/ent"
	"github.com/studytrail/studytrail/ent/attemptevent"
)

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetStudentID(data.StudentID).
		SetModuleID(data.ModuleID).
		SetObjective(data.Objective).
		SetQuestionFormat(data.QuestionFormat).
		SetQuestionText(data.QuestionText).
		SetGivenAnswer(data.GivenAnswer).
		SetCorrectAnswer(data.CorrectAnswer).
		SetCorrect(data.Correct).
		SetReviewed(data.Reviewed).
		SetReasoningScore(data.ReasoningScore).
		SetMajorMistake(data.MajorMistake)

	if data.SessionID != "" {
		builder = builder.SetSessionID(data.SessionID)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

// AttemptHistory returns all attempts for one (student, module, objective)
// triple, most recent first. Descending sequence order is what the mastery
// evaluator expects.
func (r *eventRepo) AttemptHistory(ctx context.Context, studentID, moduleID string, objective int) ([]AttemptEventData, error) {
	events, err := r.client.AttemptEvent.Query().
		Where(
			attemptevent.StudentID(studentID),
			attemptevent.ModuleID(moduleID),
			attemptevent.Objective(objective),
		).
		Order(ent.Desc(attemptevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	out := make([]AttemptEventData, 0, len(events))
	for _, e := range events {
		out = append(out, AttemptEventData{
			StudentID:      e.StudentID,
			ModuleID:       e.ModuleID,
			Objective:      e.Objective,
			SessionID:      e.SessionID,
			QuestionFormat: e.QuestionFormat,
			QuestionText:   e.QuestionText,
			GivenAnswer:    e.GivenAnswer,
			CorrectAnswer:  e.CorrectAnswer,
			Correct:        e.Correct,
			Reviewed:       e.Reviewed,
			ReasoningScore: e.ReasoningScore,
			MajorMistake:   e.MajorMistake,
			Timestamp:      e.Timestamp,
		})
	}
	return out, nil
}
