package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an instructor creating a practice test from course material.

Rules:
- Generate the requested number of questions, grounded strictly in the provided course material. Do not test anything the material doesn't cover.
- Tag every question with the indices of the learning objectives it assesses, using the numbered list in the prompt. Most questions assess exactly one objective.
- Mix question formats across the test: "multiple_choice" for recognition and discrimination, "short_answer" for questions that require the student to explain or apply, "fill_in_blank" for key terms and definitions.
- For multiple choice, provide exactly 4 options where exactly one is correct. Distractors should reflect plausible misunderstandings of the material, not random values.
- For fill_in_blank, write the sentence with the blank marked as _____ and put the missing term in the answer.
- Short answer questions should be answerable in one or two sentences.
- The explanation is a brief model answer, shown to the student afterward.
- Do not repeat any question from the "already asked" list.`

// buildUserMessage constructs the user message from GenerateInput and Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	count := input.NumQuestions
	if count <= 0 {
		count = cfg.NumQuestions
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Module: %s\n", input.Title)
	fmt.Fprintf(&b, "Questions to generate: %d\n", count)

	b.WriteString("\nLearning objectives (tag questions by index):\n")
	for i, obj := range input.Objectives {
		fmt.Fprintf(&b, "[%d] %s\n", i, obj)
	}

	if len(input.FocusObjectives) > 0 {
		b.WriteString("\nFocus on these objective indices: ")
		for i, idx := range input.FocusObjectives {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%d", idx)
		}
		b.WriteString("\n")
	}

	b.WriteString("\nAlready asked:\n")
	b.WriteString(buildDedup(input.PriorQuestions, cfg.MaxPriorQuestions))

	b.WriteString("\n\nCourse material:\n")
	b.WriteString(truncate(input.Material, cfg.MaxMaterialChars))

	return b.String()
}

// truncate cuts s at max bytes, appending a marker when material was dropped.
func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + "\n[material truncated]"
}
