package quizgen

import "github.com/studytrail/studytrail/internal/mastery"

// Question represents one generated practice question ready for display.
type Question struct {
	// Text is the question prompt displayed to the student. For fill-in-blank
	// questions the blank is marked with "_____".
	Text string

	// Format indicates how the student answers this question.
	Format mastery.QuestionFormat

	// Choices is populated only when Format is FormatMultipleChoice.
	// Contains exactly 4 options, one of which matches Answer.
	Choices []string

	// Answer is the canonical correct answer as a string.
	// For multiple choice: the text of the correct option.
	Answer string

	// Explanation is a brief model answer shown after the student responds.
	// Always present.
	Explanation string

	// Objectives lists the indices of the learning objectives this question
	// assesses. At least one, usually exactly one.
	Objectives []int
}

// Quiz is a generated practice test for one course module.
type Quiz struct {
	ModuleID  string
	Title     string
	Questions []Question
}

// GenerateInput holds all context needed to generate a practice test.
type GenerateInput struct {
	// ModuleID identifies the course module the quiz is generated for.
	ModuleID string

	// Title is the module title, shown in the prompt for context.
	Title string

	// Material is the extracted course material text. Long material is
	// truncated in the prompt according to Config.MaxMaterialChars.
	Material string

	// Objectives is the module's ordered learning objective list. Questions
	// tag objectives by index into this slice.
	Objectives []string

	// FocusObjectives optionally narrows generation to a subset of objective
	// indices (e.g. the ones the student hasn't mastered yet). Empty means
	// cover all objectives.
	FocusObjectives []int

	// NumQuestions is how many questions to generate. Zero means use the
	// config default.
	NumQuestions int

	// PriorQuestions contains the Text of questions already asked to this
	// student for this module. Used for deduplication in the prompt.
	PriorQuestions []string
}
