package evaluation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/studytrail/studytrail/internal/llm"
)

// ReviewerConfig holds configuration for the LLM reviewer.
type ReviewerConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultReviewerConfig returns sensible defaults. Low temperature keeps
// scoring consistent across similar answers.
func DefaultReviewerConfig() ReviewerConfig {
	return ReviewerConfig{
		MaxTokens:   256,
		Temperature: 0.2,
	}
}

// Reviewer performs LLM-based reasoning review of short answers.
type Reviewer struct {
	provider llm.Provider
	cfg      ReviewerConfig
}

// NewReviewer creates an LLM-based reviewer.
func NewReviewer(provider llm.Provider, cfg ReviewerConfig) *Reviewer {
	return &Reviewer{provider: provider, cfg: cfg}
}

// reviewOutput is the raw LLM response.
type reviewOutput struct {
	Score        int    `json:"score"`
	MajorMistake bool   `json:"major_mistake"`
	Feedback     string `json:"feedback"`
}

// Review sends a short answer to the LLM for reasoning assessment.
func (r *Reviewer) Review(ctx context.Context, input *ReviewInput) (*Review, error) {
	ctx = llm.WithPurpose(ctx, "reasoning-review")

	userMsg, err := buildReviewMessage(input)
	if err != nil {
		return nil, fmt.Errorf("build review prompt: %w", err)
	}

	req := llm.Request{
		System: reviewSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      ReviewSchema,
		MaxTokens:   r.cfg.MaxTokens,
		Temperature: r.cfg.Temperature,
	}

	resp, err := r.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM review failed: %w", err)
	}

	var raw reviewOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse review response: %w", err)
	}

	return &Review{
		Score:        raw.Score,
		MajorMistake: raw.MajorMistake,
		Feedback:     raw.Feedback,
		Source:       "llm",
	}, nil
}

const reviewSystemPrompt = `You are an instructor reviewing a student's short answer to a practice question.

Instructions:
- Assess the reasoning the answer demonstrates, not its wording. A correct answer can still show weak reasoning (a lucky guess or a memorized phrase), and a wrong answer can still show partial understanding.
- Score 0 if the answer shows no reasoning: it is off-topic, restates the question, or is a bare guess.
- Score 1 if the reasoning is partially correct but incomplete or imprecise.
- Score 2 if the reasoning is sound and addresses the question.
- Set major_mistake to true only for a conceptual misunderstanding of the objective, not for a slip, typo, or awkward phrasing.
- Keep feedback to one sentence, addressed to the student.`

var reviewUserTemplate = template.Must(template.New("review").Parse(`Learning objective: {{.Objective}}
Question: {{.QuestionText}}
Model answer: {{.CorrectAnswer}}
Student's answer: {{.GivenAnswer}}
Graded correct: {{.Correct}}`))

func buildReviewMessage(input *ReviewInput) (string, error) {
	var buf bytes.Buffer
	if err := reviewUserTemplate.Execute(&buf, input); err != nil {
		return "", err
	}
	return buf.String(), nil
}
