package store

import (
	"context"
	"fmt"

	"github.com/studytrail/studytrail/ent"
	"github.com/studytrail/studytrail/ent/masteryevent"
)

func (r *eventRepo) AppendMasteryEvent(ctx context.Context, data MasteryEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.MasteryEvent.Create().
		SetSequence(seqNum).
		SetStudentID(data.StudentID).
		SetModuleID(data.ModuleID).
		SetObjective(data.Objective).
		SetFromStatus(data.FromStatus).
		SetToStatus(data.ToStatus).
		SetStreak(data.Streak).
		SetTrigger(data.Trigger)

	if data.SessionID != "" {
		builder = builder.SetSessionID(data.SessionID)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save mastery event: %w", err)
	}
	return nil
}

// LatestMasteryEvents returns the most recent transition per objective for
// one (student, module) pair. Events arrive in descending sequence order, so
// the first event seen for an objective wins.
func (r *eventRepo) LatestMasteryEvents(ctx context.Context, studentID, moduleID string) (map[int]MasteryEventData, error) {
	events, err := r.client.MasteryEvent.Query().
		Where(
			masteryevent.StudentID(studentID),
			masteryevent.ModuleID(moduleID),
		).
		Order(ent.Desc(masteryevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query mastery events: %w", err)
	}

	latest := make(map[int]MasteryEventData)
	for _, e := range events {
		if _, seen := latest[e.Objective]; seen {
			continue
		}
		latest[e.Objective] = MasteryEventData{
			StudentID:  e.StudentID,
			ModuleID:   e.ModuleID,
			Objective:  e.Objective,
			FromStatus: e.FromStatus,
			ToStatus:   e.ToStatus,
			Streak:     e.Streak,
			Trigger:    e.Trigger,
			SessionID:  e.SessionID,
		}
	}
	return latest, nil
}
