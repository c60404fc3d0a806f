package evaluation

import "strings"

// Classifier is a rule-based reasoning reviewer.
// Returns a Review, or nil if the rule doesn't apply.
type Classifier interface {
	Name() string
	Classify(input *ReviewInput) *Review
}

// DefaultClassifiers returns classifiers in priority order. Rules cover the
// cheap degenerate cases so the LLM only sees answers with actual content.
func DefaultClassifiers() []Classifier {
	return []Classifier{
		&BlankClassifier{},
		&EchoClassifier{},
	}
}

// RunClassifiers executes rule-based classifiers in order.
// Returns the first match, or nil if no rules apply.
func RunClassifiers(classifiers []Classifier, input *ReviewInput) *Review {
	for _, c := range classifiers {
		if r := c.Classify(input); r != nil {
			return r
		}
	}
	return nil
}

// BlankClassifier catches empty or whitespace-only responses.
type BlankClassifier struct{}

func (c *BlankClassifier) Name() string { return "blank" }

func (c *BlankClassifier) Classify(input *ReviewInput) *Review {
	if strings.TrimSpace(input.GivenAnswer) != "" {
		return nil
	}
	return &Review{
		Score:        0,
		MajorMistake: false,
		Source:       "rule:" + c.Name(),
	}
}

// EchoClassifier catches responses that merely restate the question.
type EchoClassifier struct{}

func (c *EchoClassifier) Name() string { return "echo" }

func (c *EchoClassifier) Classify(input *ReviewInput) *Review {
	given := normalize(input.GivenAnswer)
	question := normalize(input.QuestionText)
	if given == "" || given != question {
		return nil
	}
	return &Review{
		Score:        0,
		MajorMistake: false,
		Source:       "rule:" + c.Name(),
	}
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimRight(s, ".!?")
	return strings.Join(strings.Fields(s), " ")
}
