package content

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/studytrail/studytrail/internal/llm"
)

// ObjectivesSchema defines the JSON schema for LLM objective-generation
// responses.
var ObjectivesSchema = &llm.Schema{
	Name:        "learning-objectives",
	Description: "An ordered list of learning objectives extracted from course material",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"objectives": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":        "string",
					"description": "One learning objective, phrased as something the student should be able to do",
				},
				"minItems": 1,
			},
		},
		"required":             []any{"objectives"},
		"additionalProperties": false,
	},
}

const objectivesSystemPrompt = `You are an instructional designer extracting learning objectives from course material.

Rules:
- Produce an ordered list of learning objectives covering the material, from foundational to advanced.
- Phrase each objective as something the student should be able to do, starting with a verb (e.g. "Describe...", "Explain...", "Compare...").
- Each objective should be assessable with a handful of quiz questions. Split objectives that bundle unrelated ideas.
- Stay within the requested maximum count. Prefer fewer, broader objectives over many narrow ones.
- Ground every objective strictly in the provided material.`

type objectivesOutput struct {
	Objectives []string `json:"objectives"`
}

// generateObjectives asks the LLM for a learning objective list.
func (s *Service) generateObjectives(ctx context.Context, title, material string) ([]string, error) {
	ctx = llm.WithPurpose(ctx, "objectives")

	var b strings.Builder
	fmt.Fprintf(&b, "Module: %s\n", title)
	fmt.Fprintf(&b, "Maximum objectives: %d\n", s.cfg.MaxObjectives)
	b.WriteString("\nCourse material:\n")
	b.WriteString(truncate(material, s.cfg.MaxMaterialChars))

	req := llm.Request{
		System: objectivesSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: b.String()},
		},
		Schema:      ObjectivesSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw objectivesOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse objectives response: %w", err)
	}

	objectives := make([]string, 0, len(raw.Objectives))
	for _, o := range raw.Objectives {
		o = strings.TrimSpace(o)
		if o != "" {
			objectives = append(objectives, o)
		}
	}
	if len(objectives) == 0 {
		return nil, fmt.Errorf("LLM returned no objectives")
	}
	if len(objectives) > s.cfg.MaxObjectives {
		objectives = objectives[:s.cfg.MaxObjectives]
	}
	return objectives, nil
}

func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + "\n[material truncated]"
}
