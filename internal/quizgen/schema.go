package quizgen

import "github.com/studytrail/studytrail/internal/llm"

// QuizSchema defines the JSON schema for LLM practice-test responses.
var QuizSchema = &llm.Schema{
	Name:        "practice-test",
	Description: "A set of practice questions for a course module, each tagged with the learning objectives it assesses",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question_text": map[string]any{
							"type":        "string",
							"description": "The question prompt shown to the student. For fill_in_blank, mark the blank with _____",
						},
						"format": map[string]any{
							"type":        "string",
							"enum":        []any{"multiple_choice", "short_answer", "fill_in_blank"},
							"description": "How the student answers this question",
						},
						"choices": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Exactly 4 options for multiple_choice format. Empty array otherwise.",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The correct answer. For multiple_choice: the text of the correct option.",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "A brief model answer shown after the student responds",
						},
						"objectives": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type":    "integer",
								"minimum": 0,
							},
							"description": "Indices of the learning objectives this question assesses, from the numbered list in the prompt",
						},
					},
					"required":             []any{"question_text", "format", "choices", "answer", "explanation", "objectives"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
