package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/studytrail/studytrail/internal/llm"
	"github.com/studytrail/studytrail/internal/mastery"
	"github.com/studytrail/studytrail/internal/store"
)

func testModule() store.ModuleData {
	return store.ModuleData{
		ID:       "cell-bio",
		Title:    "Cell Biology",
		Material: "The mitochondrion is the powerhouse of the cell.",
		Objectives: []string{
			"Describe the function of the mitochondrion",
			"Explain the stages of mitosis",
		},
	}
}

func testStandings() []ObjectiveStanding {
	return []ObjectiveStanding{
		{Index: 0, Text: "Describe the function of the mitochondrion", Result: mastery.Result{
			Status: mastery.StatusMastered, Streak: 4,
		}},
		{Index: 1, Text: "Explain the stages of mitosis", Result: mastery.Result{
			Status: mastery.StatusDeveloping, RecentMajorMistake: true,
		}},
	}
}

func reply(text string) llm.MockResponse {
	raw, _ := json.Marshal(text)
	return llm.MockResponse{Content: raw}
}

func TestRespond(t *testing.T) {
	mock := llm.NewMockProvider(reply("Mitosis has four main stages. Which one have you seen before?"))
	svc := NewService(mock, DefaultConfig())
	sess := svc.NewSession(testModule(), testStandings())

	got, err := svc.Respond(context.Background(), sess, "Can you explain mitosis?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "four main stages") {
		t.Errorf("unexpected reply: %q", got)
	}
	if len(sess.History()) != 2 {
		t.Fatalf("expected 2 history messages, got %d", len(sess.History()))
	}
	if sess.History()[0].Role != llm.RoleUser || sess.History()[1].Role != llm.RoleAssistant {
		t.Error("unexpected history roles")
	}
}

func TestRespond_SystemPromptIncludesStandings(t *testing.T) {
	mock := llm.NewMockProvider(reply("Sure."))
	svc := NewService(mock, DefaultConfig())
	sess := svc.NewSession(testModule(), testStandings())

	_, err := svc.Respond(context.Background(), sess, "Help me study.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	system := mock.Calls[0].System
	if !strings.Contains(system, "Cell Biology") {
		t.Error("expected module title in system prompt")
	}
	if !strings.Contains(system, "mastered, streak 4") {
		t.Error("expected mastered standing in system prompt")
	}
	if !strings.Contains(system, "developing") {
		t.Error("expected developing standing in system prompt")
	}
	if !strings.Contains(system, "recent major mistake") {
		t.Error("expected mistake flag in system prompt")
	}
	if !strings.Contains(system, "powerhouse of the cell") {
		t.Error("expected course material in system prompt")
	}
}

func TestRespond_MultiTurnHistory(t *testing.T) {
	mock := llm.NewMockProvider(reply("First reply."), reply("Second reply."))
	svc := NewService(mock, DefaultConfig())
	sess := svc.NewSession(testModule(), testStandings())

	if _, err := svc.Respond(context.Background(), sess, "First question?"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Respond(context.Background(), sess, "Second question?"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The second request must carry the first exchange.
	msgs := mock.Calls[1].Messages
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages in second request, got %d", len(msgs))
	}
	if msgs[0].Content != "First question?" {
		t.Errorf("unexpected first message: %q", msgs[0].Content)
	}
	if msgs[1].Role != llm.RoleAssistant || msgs[1].Content != "First reply." {
		t.Errorf("unexpected second message: %+v", msgs[1])
	}
	if msgs[2].Content != "Second question?" {
		t.Errorf("unexpected third message: %q", msgs[2].Content)
	}
}

func TestRespond_HistoryTrimmed(t *testing.T) {
	responses := make([]llm.MockResponse, 6)
	for i := range responses {
		responses[i] = reply("Reply.")
	}
	mock := llm.NewMockProvider(responses...)

	cfg := DefaultConfig()
	cfg.MaxHistory = 4
	svc := NewService(mock, cfg)
	sess := svc.NewSession(testModule(), nil)

	for i := 0; i < 6; i++ {
		if _, err := svc.Respond(context.Background(), sess, "Question?"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if len(sess.History()) != 4 {
		t.Errorf("expected history trimmed to 4, got %d", len(sess.History()))
	}
}

func TestRespond_EmptyMessage(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock, DefaultConfig())
	sess := svc.NewSession(testModule(), nil)

	if _, err := svc.Respond(context.Background(), sess, "   "); err == nil {
		t.Fatal("expected error for empty message")
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider should not be called, got %d calls", mock.CallCount())
	}
}

func TestRespond_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("API error")})
	svc := NewService(mock, DefaultConfig())
	sess := svc.NewSession(testModule(), nil)

	if _, err := svc.Respond(context.Background(), sess, "Question?"); err == nil {
		t.Fatal("expected error from provider")
	}
	if len(sess.History()) != 0 {
		t.Error("failed exchange must not be recorded in history")
	}
}
