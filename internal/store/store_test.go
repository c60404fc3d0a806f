package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAttemptHistoryMostRecentFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, q := range []string{"first", "second", "third"} {
		err := repo.AppendAttempt(ctx, AttemptEventData{
			StudentID:      "alice",
			ModuleID:       "mod-1",
			Objective:      0,
			QuestionFormat: "multiple_choice",
			QuestionText:   q,
			Correct:        true,
		})
		if err != nil {
			t.Fatalf("append %q: %v", q, err)
		}
	}

	history, err := repo.AttemptHistory(ctx, "alice", "mod-1", 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("len(history) = %d, want 3", len(history))
	}
	want := []string{"third", "second", "first"}
	for i, h := range history {
		if h.QuestionText != want[i] {
			t.Errorf("history[%d].QuestionText = %q, want %q", i, h.QuestionText, want[i])
		}
	}
}

func TestAttemptHistoryFiltersByTriple(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appends := []AttemptEventData{
		{StudentID: "alice", ModuleID: "mod-1", Objective: 0, QuestionFormat: "short_answer"},
		{StudentID: "alice", ModuleID: "mod-1", Objective: 1, QuestionFormat: "short_answer"},
		{StudentID: "alice", ModuleID: "mod-2", Objective: 0, QuestionFormat: "short_answer"},
		{StudentID: "bob", ModuleID: "mod-1", Objective: 0, QuestionFormat: "short_answer"},
	}
	for i, a := range appends {
		if err := repo.AppendAttempt(ctx, a); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	history, err := repo.AttemptHistory(ctx, "alice", "mod-1", 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 {
		t.Errorf("len(history) = %d, want 1", len(history))
	}
}

func TestLatestMasteryEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []MasteryEventData{
		{StudentID: "alice", ModuleID: "mod-1", Objective: 0, FromStatus: "developing", ToStatus: "approaching"},
		{StudentID: "alice", ModuleID: "mod-1", Objective: 1, FromStatus: "developing", ToStatus: "approaching"},
		{StudentID: "alice", ModuleID: "mod-1", Objective: 0, FromStatus: "approaching", ToStatus: "mastered"},
	}
	for i, e := range events {
		if err := repo.AppendMasteryEvent(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	latest, err := repo.LatestMasteryEvents(ctx, "alice", "mod-1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if len(latest) != 2 {
		t.Fatalf("len(latest) = %d, want 2", len(latest))
	}
	if latest[0].ToStatus != "mastered" {
		t.Errorf("objective 0 ToStatus = %q, want %q", latest[0].ToStatus, "mastered")
	}
	if latest[1].ToStatus != "approaching" {
		t.Errorf("objective 1 ToStatus = %q, want %q", latest[1].ToStatus, "approaching")
	}
}

func TestListLLMRequests(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, purpose := range []string{"objectives", "practice-test", "tutor"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "anthropic",
			Model:    "claude-test",
			Purpose:  purpose,
			Success:  true,
		})
		if err != nil {
			t.Fatalf("append %q: %v", purpose, err)
		}
	}

	got, err := repo.ListLLMRequests(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// Newest first.
	if got[0].Purpose != "tutor" || got[1].Purpose != "practice-test" {
		t.Errorf("purposes = [%s %s], want [tutor practice-test]", got[0].Purpose, got[1].Purpose)
	}
}

func TestModuleRepoRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ModuleRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	err := repo.Save(ctx, ModuleData{
		ID:         "mod-1",
		Title:      "Cell Biology",
		Material:   "The cell is the basic unit of life.",
		Objectives: []string{"Describe the cell membrane", "Explain osmosis"},
		CreatedAt:  now,
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	mod, err := repo.Get(ctx, "mod-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if mod.Title != "Cell Biology" {
		t.Errorf("title = %q, want %q", mod.Title, "Cell Biology")
	}
	if len(mod.Objectives) != 2 {
		t.Errorf("len(objectives) = %d, want 2", len(mod.Objectives))
	}

	if err := repo.SetObjectives(ctx, "mod-1", []string{"one", "two", "three"}); err != nil {
		t.Fatalf("set objectives: %v", err)
	}
	mod, err = repo.Get(ctx, "mod-1")
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if len(mod.Objectives) != 3 {
		t.Errorf("len(objectives) after update = %d, want 3", len(mod.Objectives))
	}

	mods, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(mods) != 1 {
		t.Errorf("len(list) = %d, want 1", len(mods))
	}

	if err := repo.Delete(ctx, "mod-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, "mod-1"); err == nil {
		t.Error("expected error getting deleted module")
	}
}

func TestModuleRepoGetMissing(t *testing.T) {
	s := openTestStore(t)

	_, err := s.ModuleRepo().Get(context.Background(), "nope")
	if err == nil {
		t.Fatal("expected error for missing module")
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"attempt_events", "mastery_events", "llm_request_events", "course_modules"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}
