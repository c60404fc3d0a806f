package evaluation

import "testing"

func TestBlank_EmptyAnswer(t *testing.T) {
	c := &BlankClassifier{}
	r := c.Classify(&ReviewInput{GivenAnswer: "   "})
	if r == nil {
		t.Fatal("expected review for blank answer")
	}
	if r.Score != 0 {
		t.Errorf("expected score 0, got %d", r.Score)
	}
	if r.MajorMistake {
		t.Error("blank answer is not a conceptual mistake")
	}
	if r.Source != "rule:blank" {
		t.Errorf("unexpected source %q", r.Source)
	}
}

func TestBlank_NonEmptyAnswer(t *testing.T) {
	c := &BlankClassifier{}
	if r := c.Classify(&ReviewInput{GivenAnswer: "mitosis"}); r != nil {
		t.Errorf("expected nil, got %+v", r)
	}
}

func TestEcho_RestatedQuestion(t *testing.T) {
	c := &EchoClassifier{}
	r := c.Classify(&ReviewInput{
		QuestionText: "What happens during mitosis?",
		GivenAnswer:  "what happens during MITOSIS",
	})
	if r == nil {
		t.Fatal("expected review for echoed question")
	}
	if r.Score != 0 {
		t.Errorf("expected score 0, got %d", r.Score)
	}
	if r.Source != "rule:echo" {
		t.Errorf("unexpected source %q", r.Source)
	}
}

func TestEcho_RealAnswer(t *testing.T) {
	c := &EchoClassifier{}
	r := c.Classify(&ReviewInput{
		QuestionText: "What happens during mitosis?",
		GivenAnswer:  "A cell divides into two identical daughter cells.",
	})
	if r != nil {
		t.Errorf("expected nil, got %+v", r)
	}
}

func TestRunClassifiers_PriorityOrder(t *testing.T) {
	// A blank answer also never matches echo, but blank must win regardless.
	r := RunClassifiers(DefaultClassifiers(), &ReviewInput{
		QuestionText: "What is ATP?",
		GivenAnswer:  "",
	})
	if r == nil {
		t.Fatal("expected a rule match")
	}
	if r.Source != "rule:blank" {
		t.Errorf("expected rule:blank, got %q", r.Source)
	}
}

func TestRunClassifiers_NoMatch(t *testing.T) {
	r := RunClassifiers(DefaultClassifiers(), &ReviewInput{
		QuestionText: "What is ATP?",
		GivenAnswer:  "The cell's energy currency.",
	})
	if r != nil {
		t.Errorf("expected nil, got %+v", r)
	}
}
