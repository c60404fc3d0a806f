package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/studytrail/studytrail/internal/llm"
	"github.com/studytrail/studytrail/internal/mastery"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionOutput is one raw question from the LLM response before validation.
type questionOutput struct {
	QuestionText string   `json:"question_text"`
	Format       string   `json:"format"`
	Choices      []string `json:"choices"`
	Answer       string   `json:"answer"`
	Explanation  string   `json:"explanation"`
	Objectives   []int    `json:"objectives"`
}

// quizOutput is the raw LLM response before validation.
type quizOutput struct {
	Questions []questionOutput `json:"questions"`
}

// Generate produces a practice test for the given input context.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*Quiz, error) {
	if len(input.Objectives) == 0 {
		return nil, fmt.Errorf("module %q has no objectives", input.ModuleID)
	}

	ctx = llm.WithPurpose(ctx, "practice-test")

	userMsg := buildUserMessage(input, g.config)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      QuizSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw quizOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}
	if len(raw.Questions) == 0 {
		return nil, fmt.Errorf("LLM returned no questions")
	}

	quiz := &Quiz{
		ModuleID:  input.ModuleID,
		Title:     input.Title,
		Questions: make([]Question, 0, len(raw.Questions)),
	}

	for i, rq := range raw.Questions {
		q := Question{
			Text:        rq.QuestionText,
			Format:      mastery.QuestionFormat(rq.Format),
			Choices:     rq.Choices,
			Answer:      rq.Answer,
			Explanation: rq.Explanation,
			Objectives:  rq.Objectives,
		}

		// Run validators in order.
		for _, v := range g.config.Validators {
			if verr := v.Validate(&q, input); verr != nil {
				return nil, fmt.Errorf("question %d: %w", i+1, verr)
			}
		}

		quiz.Questions = append(quiz.Questions, q)
	}

	return quiz, nil
}
