package evaluation

import "github.com/studytrail/studytrail/internal/llm"

// ReviewSchema defines the JSON schema for LLM reasoning-review responses.
var ReviewSchema = &llm.Schema{
	Name:        "reasoning-review",
	Description: "An assessment of the reasoning quality in a student's short answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     2,
				"description": "Reasoning quality: 0 = none or restated the question, 1 = partial, 2 = sound",
			},
			"major_mistake": map[string]any{
				"type":        "boolean",
				"description": "True if the answer reveals a conceptual misunderstanding, not just a slip or wording issue",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "One sentence of feedback for the student",
			},
		},
		"required":             []any{"score", "major_mistake", "feedback"},
		"additionalProperties": false,
	},
}
