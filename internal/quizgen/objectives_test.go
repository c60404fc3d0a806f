package quizgen

import (
	"testing"

	"github.com/studytrail/studytrail/internal/mastery"
)

func tagInput() GenerateInput {
	return GenerateInput{
		Objectives: []string{"obj zero", "obj one", "obj two"},
	}
}

func taggedQuestion(objectives ...int) *Question {
	return &Question{
		Text:        "Explain mitosis.",
		Format:      mastery.FormatShortAnswer,
		Answer:      "Cell division",
		Explanation: "Mitosis splits one cell into two.",
		Objectives:  objectives,
	}
}

func TestObjectiveTag_Valid(t *testing.T) {
	v := &ObjectiveTagValidator{}
	if err := v.Validate(taggedQuestion(0), tagInput()); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if err := v.Validate(taggedQuestion(0, 2), tagInput()); err != nil {
		t.Fatalf("expected nil for multi-tag, got %v", err)
	}
}

func TestObjectiveTag_NoTags(t *testing.T) {
	v := &ObjectiveTagValidator{}
	err := v.Validate(taggedQuestion(), tagInput())
	if err == nil {
		t.Fatal("expected error for untagged question")
	}
	if err.Validator != "objective-tag" {
		t.Errorf("expected objective-tag, got %q", err.Validator)
	}
}

func TestObjectiveTag_OutOfRange(t *testing.T) {
	v := &ObjectiveTagValidator{}
	for _, idx := range []int{-1, 3, 100} {
		if err := v.Validate(taggedQuestion(idx), tagInput()); err == nil {
			t.Errorf("expected error for index %d", idx)
		}
	}
}
