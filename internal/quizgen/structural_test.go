package quizgen

import (
	"strings"
	"testing"

	"github.com/studytrail/studytrail/internal/mastery"
)

func validMCQuestion() *Question {
	return &Question{
		Text:        "Which organelle produces most of the cell's ATP?",
		Format:      mastery.FormatMultipleChoice,
		Choices:     []string{"Nucleus", "Mitochondrion", "Ribosome", "Golgi apparatus"},
		Answer:      "Mitochondrion",
		Explanation: "The mitochondrion carries out cellular respiration.",
		Objectives:  []int{0},
	}
}

func TestStructural_ValidQuestion(t *testing.T) {
	v := &StructuralValidator{}
	if err := v.Validate(validMCQuestion(), GenerateInput{}); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestStructural_EmptyQuestionText(t *testing.T) {
	v := &StructuralValidator{}
	q := validMCQuestion()
	q.Text = ""
	err := v.Validate(q, GenerateInput{})
	if err == nil {
		t.Fatal("expected error for empty question_text")
	}
	if err.Validator != "structural" {
		t.Errorf("expected validator %q, got %q", "structural", err.Validator)
	}
	if !err.Retryable {
		t.Error("expected retryable")
	}
}

func TestStructural_QuestionTextTooLong(t *testing.T) {
	v := &StructuralValidator{}
	q := validMCQuestion()
	q.Text = strings.Repeat("a", 1001)
	if err := v.Validate(q, GenerateInput{}); err == nil {
		t.Fatal("expected error for long question_text")
	}
}

func TestStructural_EmptyAnswer(t *testing.T) {
	v := &StructuralValidator{}
	q := validMCQuestion()
	q.Answer = ""
	if err := v.Validate(q, GenerateInput{}); err == nil {
		t.Fatal("expected error for empty answer")
	}
}

func TestStructural_EmptyExplanation(t *testing.T) {
	v := &StructuralValidator{}
	q := validMCQuestion()
	q.Explanation = ""
	if err := v.Validate(q, GenerateInput{}); err == nil {
		t.Fatal("expected error for empty explanation")
	}
}

func TestStructural_WrongChoiceCount(t *testing.T) {
	v := &StructuralValidator{}
	for _, n := range []int{0, 1, 3, 5} {
		q := validMCQuestion()
		q.Choices = make([]string, n)
		for i := range q.Choices {
			q.Choices[i] = "option"
		}
		if err := v.Validate(q, GenerateInput{}); err == nil {
			t.Errorf("expected error for %d choices", n)
		}
	}
}

func TestStructural_AnswerNotAmongChoices(t *testing.T) {
	v := &StructuralValidator{}
	q := validMCQuestion()
	q.Answer = "Chloroplast"
	if err := v.Validate(q, GenerateInput{}); err == nil {
		t.Fatal("expected error when answer is not a choice")
	}
}

func TestStructural_AnswerMatchesChoiceCaseInsensitive(t *testing.T) {
	v := &StructuralValidator{}
	q := validMCQuestion()
	q.Answer = "mitochondrion"
	if err := v.Validate(q, GenerateInput{}); err != nil {
		t.Fatalf("expected case-insensitive choice match, got %v", err)
	}
}

func TestStructural_ShortAnswerWithChoices(t *testing.T) {
	v := &StructuralValidator{}
	q := &Question{
		Text:        "Explain mitosis.",
		Format:      mastery.FormatShortAnswer,
		Choices:     []string{"a", "b"},
		Answer:      "Cell division",
		Explanation: "Mitosis splits one cell into two.",
	}
	if err := v.Validate(q, GenerateInput{}); err == nil {
		t.Fatal("expected error for short_answer with choices")
	}
}

func TestStructural_FillInBlankWithoutMarker(t *testing.T) {
	v := &StructuralValidator{}
	q := &Question{
		Text:        "The powerhouse of the cell is the mitochondrion.",
		Format:      mastery.FormatFillInBlank,
		Answer:      "mitochondrion",
		Explanation: "Basic organelle fact.",
	}
	if err := v.Validate(q, GenerateInput{}); err == nil {
		t.Fatal("expected error for missing blank marker")
	}
}

func TestStructural_UnknownFormat(t *testing.T) {
	v := &StructuralValidator{}
	q := validMCQuestion()
	q.Format = "essay"
	if err := v.Validate(q, GenerateInput{}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
