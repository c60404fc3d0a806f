package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/studytrail/studytrail/internal/llm"
	"github.com/studytrail/studytrail/internal/mastery"
)

func testInput() GenerateInput {
	return GenerateInput{
		ModuleID: "cell-bio",
		Title:    "Cell Biology",
		Material: "The mitochondrion is the powerhouse of the cell. Mitosis is the process by which a cell divides into two identical daughter cells.",
		Objectives: []string{
			"Describe the function of the mitochondrion",
			"Explain the stages of mitosis",
		},
	}
}

func validQuizJSON() json.RawMessage {
	return json.RawMessage(`{
		"questions": [
			{
				"question_text": "Which organelle produces most of the cell's ATP?",
				"format": "multiple_choice",
				"choices": ["Nucleus", "Mitochondrion", "Ribosome", "Golgi apparatus"],
				"answer": "Mitochondrion",
				"explanation": "The mitochondrion carries out cellular respiration, producing ATP.",
				"objectives": [0]
			},
			{
				"question_text": "Explain what happens during mitosis.",
				"format": "short_answer",
				"choices": [],
				"answer": "A cell divides into two identical daughter cells.",
				"explanation": "Mitosis produces two daughter cells genetically identical to the parent.",
				"objectives": [1]
			},
			{
				"question_text": "The _____ is known as the powerhouse of the cell.",
				"format": "fill_in_blank",
				"choices": [],
				"answer": "mitochondrion",
				"explanation": "The mitochondrion generates the cell's energy.",
				"objectives": [0]
			}
		]
	}`)
}

func TestGenerate_ValidQuiz(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuizJSON()})
	gen := New(mock, DefaultConfig())

	quiz, err := gen.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quiz.ModuleID != "cell-bio" {
		t.Errorf("expected moduleID cell-bio, got %q", quiz.ModuleID)
	}
	if len(quiz.Questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(quiz.Questions))
	}
	if quiz.Questions[0].Format != mastery.FormatMultipleChoice {
		t.Errorf("expected multiple_choice, got %q", quiz.Questions[0].Format)
	}
	if len(quiz.Questions[0].Choices) != 4 {
		t.Errorf("expected 4 choices, got %d", len(quiz.Questions[0].Choices))
	}
	if quiz.Questions[1].Format != mastery.FormatShortAnswer {
		t.Errorf("expected short_answer, got %q", quiz.Questions[1].Format)
	}
	if got := quiz.Questions[2].Objectives; len(got) != 1 || got[0] != 0 {
		t.Errorf("unexpected objective tags: %v", got)
	}
}

func TestGenerate_NoObjectives(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuizJSON()})
	gen := New(mock, DefaultConfig())

	input := testInput()
	input.Objectives = nil
	_, err := gen.Generate(context.Background(), input)
	if err == nil {
		t.Fatal("expected error for module without objectives")
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider should not be called, got %d calls", mock.CallCount())
	}
}

func TestGenerate_ObjectiveOutOfRange(t *testing.T) {
	raw := json.RawMessage(`{
		"questions": [
			{
				"question_text": "Which organelle produces ATP?",
				"format": "short_answer",
				"choices": [],
				"answer": "Mitochondrion",
				"explanation": "Cellular respiration happens there.",
				"objectives": [5]
			}
		]
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testInput())
	if err == nil {
		t.Fatal("expected validation error")
	}
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if valErr.Validator != "objective-tag" {
		t.Errorf("expected objective-tag validator, got %q", valErr.Validator)
	}
}

func TestGenerate_AnswerNotAmongChoices(t *testing.T) {
	raw := json.RawMessage(`{
		"questions": [
			{
				"question_text": "Which organelle produces ATP?",
				"format": "multiple_choice",
				"choices": ["Nucleus", "Ribosome", "Golgi apparatus", "Lysosome"],
				"answer": "Mitochondrion",
				"explanation": "Cellular respiration happens there.",
				"objectives": [0]
			}
		]
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testInput())
	if err == nil {
		t.Fatal("expected validation error")
	}
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if valErr.Validator != "structural" {
		t.Errorf("expected structural validator, got %q", valErr.Validator)
	}
}

func TestGenerate_EmptyQuestionList(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"questions": []}`),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testInput())
	if err == nil {
		t.Fatal("expected error for empty question list")
	}
}

func TestGenerate_PromptContents(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuizJSON()})
	gen := New(mock, DefaultConfig())

	input := testInput()
	input.FocusObjectives = []int{1}
	input.PriorQuestions = []string{"What does ATP stand for?"}
	_, err := gen.Generate(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	userMsg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(userMsg, "[0] Describe the function of the mitochondrion") {
		t.Error("expected numbered objective list in prompt")
	}
	if !strings.Contains(userMsg, "Focus on these objective indices: 1") {
		t.Error("expected focus objectives in prompt")
	}
	if !strings.Contains(userMsg, "What does ATP stand for?") {
		t.Error("expected prior question in prompt")
	}
	if !strings.Contains(userMsg, "powerhouse of the cell") {
		t.Error("expected course material in prompt")
	}
}

func TestGenerate_MaterialTruncated(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuizJSON()})
	cfg := DefaultConfig()
	cfg.MaxMaterialChars = 50
	gen := New(mock, cfg)

	input := testInput()
	input.Material = strings.Repeat("x", 200)
	_, err := gen.Generate(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	userMsg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(userMsg, "[material truncated]") {
		t.Error("expected truncation marker in prompt")
	}
	if strings.Contains(userMsg, strings.Repeat("x", 51)) {
		t.Error("material should have been cut at the limit")
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: errors.New("API error"),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testInput())
	if err == nil {
		t.Fatal("expected error from provider")
	}
	if !strings.Contains(err.Error(), "LLM generation failed") {
		t.Errorf("unexpected error message: %v", err)
	}
}
