package evaluation

import (
	"context"

	"github.com/studytrail/studytrail/internal/llm"
)

// Service coordinates reasoning review using rule-based classifiers and
// LLM-based assessment. Rules run first and catch degenerate answers
// cheaply; everything else goes to the LLM.
type Service struct {
	classifiers []Classifier
	reviewer    *Reviewer
}

// NewService creates a review service. If provider is nil, only rule-based
// review is available and answers the rules don't cover go unreviewed.
func NewService(provider llm.Provider) *Service {
	s := &Service{
		classifiers: DefaultClassifiers(),
	}
	if provider != nil {
		s.reviewer = NewReviewer(provider, DefaultReviewerConfig())
	}
	return s
}

// Review assesses one short-answer response. Returns (nil, nil) when no
// reviewer applies; the attempt is then recorded unreviewed and the mastery
// evaluator treats it as clean evidence.
func (s *Service) Review(ctx context.Context, input *ReviewInput) (*Review, error) {
	if r := RunClassifiers(s.classifiers, input); r != nil {
		return r, nil
	}

	if s.reviewer == nil {
		return nil, nil
	}

	return s.reviewer.Review(ctx, input)
}
