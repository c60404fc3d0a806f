package flashcards

import "github.com/studytrail/studytrail/internal/llm"

// DeckSchema defines the JSON schema for LLM flashcard-deck responses.
var DeckSchema = &llm.Schema{
	Name:        "flashcard-deck",
	Description: "A deck of flashcards covering a course module's key facts and terms",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"cards": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"front": map[string]any{
							"type":        "string",
							"description": "The prompt side: a term, question, or cue",
						},
						"back": map[string]any{
							"type":        "string",
							"description": "The answer side: a concise definition or answer",
						},
						"objectives": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type":    "integer",
								"minimum": 0,
							},
							"description": "Indices of the learning objectives this card reinforces, from the numbered list in the prompt",
						},
					},
					"required":             []any{"front", "back", "objectives"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"cards"},
		"additionalProperties": false,
	},
}
