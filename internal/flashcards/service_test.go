package flashcards

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/studytrail/studytrail/internal/llm"
)

func deckInput() GenerateInput {
	return GenerateInput{
		ModuleID: "cell-bio",
		Title:    "Cell Biology",
		Material: "The mitochondrion is the powerhouse of the cell. Mitosis divides one cell into two.",
		Objectives: []string{
			"Describe the function of the mitochondrion",
			"Explain the stages of mitosis",
		},
	}
}

func validDeckJSON() json.RawMessage {
	return json.RawMessage(`{
		"cards": [
			{"front": "Mitochondrion", "back": "The organelle that produces most of the cell's ATP.", "objectives": [0]},
			{"front": "Mitosis", "back": "Division of one cell into two identical daughter cells.", "objectives": [1]}
		]
	}`)
}

func TestGenerate_ValidDeck(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validDeckJSON()})
	svc := NewService(mock, DefaultConfig())

	deck, err := svc.Generate(context.Background(), deckInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deck.ModuleID != "cell-bio" {
		t.Errorf("expected moduleID cell-bio, got %q", deck.ModuleID)
	}
	if len(deck.Cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(deck.Cards))
	}
	if deck.Cards[0].Front != "Mitochondrion" {
		t.Errorf("unexpected front: %q", deck.Cards[0].Front)
	}
	if got := deck.Cards[1].Objectives; len(got) != 1 || got[0] != 1 {
		t.Errorf("unexpected objective tags: %v", got)
	}
}

func TestGenerate_NoObjectives(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validDeckJSON()})
	svc := NewService(mock, DefaultConfig())

	input := deckInput()
	input.Objectives = nil
	if _, err := svc.Generate(context.Background(), input); err == nil {
		t.Fatal("expected error for module without objectives")
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider should not be called, got %d calls", mock.CallCount())
	}
}

func TestGenerate_EmptyCardSide(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"cards": [{"front": "Mitosis", "back": "  ", "objectives": [1]}]}`),
	})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Generate(context.Background(), deckInput()); err == nil {
		t.Fatal("expected error for empty card back")
	}
}

func TestGenerate_ObjectiveOutOfRange(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"cards": [{"front": "Mitosis", "back": "Cell division.", "objectives": [7]}]}`),
	})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Generate(context.Background(), deckInput()); err == nil {
		t.Fatal("expected error for out-of-range objective")
	}
}

func TestGenerate_EmptyDeck(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"cards": []}`),
	})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Generate(context.Background(), deckInput()); err == nil {
		t.Fatal("expected error for empty deck")
	}
}

func TestGenerate_PromptContents(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validDeckJSON()})
	svc := NewService(mock, DefaultConfig())

	input := deckInput()
	input.NumCards = 15
	_, err := svc.Generate(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	userMsg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(userMsg, "Cards to generate: 15") {
		t.Error("expected card count in prompt")
	}
	if !strings.Contains(userMsg, "[1] Explain the stages of mitosis") {
		t.Error("expected numbered objective list in prompt")
	}
	if !strings.Contains(userMsg, "powerhouse of the cell") {
		t.Error("expected course material in prompt")
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("API error")})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Generate(context.Background(), deckInput()); err == nil {
		t.Fatal("expected error from provider")
	}
}
