package evaluation

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/studytrail/studytrail/internal/llm"
)

func reviewInput() *ReviewInput {
	return &ReviewInput{
		Objective:     "Explain the stages of mitosis",
		QuestionText:  "What happens during mitosis?",
		CorrectAnswer: "A cell divides into two identical daughter cells.",
		GivenAnswer:   "The cell splits in half and each half gets a copy of the DNA.",
		Correct:       true,
	}
}

func TestService_RuleShortCircuitsLLM(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock)

	input := reviewInput()
	input.GivenAnswer = ""
	r, err := svc.Review(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r == nil || r.Source != "rule:blank" {
		t.Fatalf("expected rule:blank review, got %+v", r)
	}
	if mock.CallCount() != 0 {
		t.Errorf("LLM should not be called, got %d calls", mock.CallCount())
	}
}

func TestService_LLMReview(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score": 2, "major_mistake": false, "feedback": "Clear and accurate explanation."}`),
	})
	svc := NewService(mock)

	r, err := svc.Review(context.Background(), reviewInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Score != 2 {
		t.Errorf("expected score 2, got %d", r.Score)
	}
	if r.MajorMistake {
		t.Error("expected no major mistake")
	}
	if r.Source != "llm" {
		t.Errorf("expected llm source, got %q", r.Source)
	}
	if r.Feedback == "" {
		t.Error("expected feedback")
	}
}

func TestService_LLMMajorMistake(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score": 0, "major_mistake": true, "feedback": "Mitosis produces identical cells, not gametes."}`),
	})
	svc := NewService(mock)

	input := reviewInput()
	input.GivenAnswer = "The cell makes four gametes with half the chromosomes."
	input.Correct = false
	r, err := svc.Review(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.MajorMistake {
		t.Error("expected major mistake")
	}
	if r.Score != 0 {
		t.Errorf("expected score 0, got %d", r.Score)
	}
}

func TestService_NilProvider(t *testing.T) {
	svc := NewService(nil)

	r, err := svc.Review(context.Background(), reviewInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r != nil {
		t.Errorf("expected nil review without a provider, got %+v", r)
	}

	// Rules still apply without a provider.
	input := reviewInput()
	input.GivenAnswer = ""
	r, err = svc.Review(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r == nil || r.Source != "rule:blank" {
		t.Fatalf("expected rule:blank review, got %+v", r)
	}
}

func TestService_LLMFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: errors.New("API error"),
	})
	svc := NewService(mock)

	r, err := svc.Review(context.Background(), reviewInput())
	if err == nil {
		t.Fatal("expected error from provider")
	}
	if r != nil {
		t.Errorf("expected nil review on failure, got %+v", r)
	}
}

func TestReviewer_PromptContents(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score": 1, "major_mistake": false, "feedback": "Partially right."}`),
	})
	rev := NewReviewer(mock, DefaultReviewerConfig())

	input := reviewInput()
	_, err := rev.Review(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	userMsg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{input.Objective, input.QuestionText, input.CorrectAnswer, input.GivenAnswer} {
		if !strings.Contains(userMsg, want) {
			t.Errorf("expected prompt to contain %q", want)
		}
	}
}
