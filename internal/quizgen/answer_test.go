package quizgen

import (
	"testing"

	"github.com/studytrail/studytrail/internal/mastery"
)

func mcQuestion() *Question {
	return &Question{
		Text:    "Which organelle produces most of the cell's ATP?",
		Format:  mastery.FormatMultipleChoice,
		Choices: []string{"Nucleus", "Mitochondrion", "Ribosome", "Golgi apparatus"},
		Answer:  "Mitochondrion",
	}
}

func shortAnswerQuestion() *Question {
	return &Question{
		Text:   "What is the powerhouse of the cell?",
		Format: mastery.FormatShortAnswer,
		Answer: "The mitochondrion",
	}
}

func blankQuestion() *Question {
	return &Question{
		Text:   "The _____ is known as the powerhouse of the cell.",
		Format: mastery.FormatFillInBlank,
		Answer: "mitochondrion",
	}
}

func TestCheckAnswer_ShortAnswer(t *testing.T) {
	tests := []struct {
		name   string
		given  string
		expect bool
	}{
		{"exact", "The mitochondrion", true},
		{"case insensitive", "the MITOCHONDRION", true},
		{"surrounding whitespace", "  The mitochondrion  ", true},
		{"collapsed inner whitespace", "The   mitochondrion", true},
		{"trailing period", "The mitochondrion.", true},
		{"wrong answer", "The nucleus", false},
		{"empty", "", false},
		{"whitespace only", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckAnswer(tt.given, shortAnswerQuestion())
			if got != tt.expect {
				t.Errorf("CheckAnswer(%q) = %t, want %t", tt.given, got, tt.expect)
			}
		})
	}
}

func TestCheckAnswer_MultipleChoice(t *testing.T) {
	tests := []struct {
		name   string
		given  string
		expect bool
	}{
		{"by text", "Mitochondrion", true},
		{"by text case insensitive", "mitochondrion", true},
		{"by correct index", "2", true},
		{"by wrong index", "1", false},
		{"index out of range", "5", false},
		{"wrong text", "Nucleus", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckAnswer(tt.given, mcQuestion())
			if got != tt.expect {
				t.Errorf("CheckAnswer(%q) = %t, want %t", tt.given, got, tt.expect)
			}
		})
	}
}

func TestCheckAnswer_FillInBlank(t *testing.T) {
	q := blankQuestion()
	if !CheckAnswer("Mitochondrion", q) {
		t.Error("expected case-insensitive match")
	}
	if !CheckAnswer(" mitochondrion ", q) {
		t.Error("expected whitespace-trimmed match")
	}
	if CheckAnswer("chloroplast", q) {
		t.Error("expected wrong term to fail")
	}
}
