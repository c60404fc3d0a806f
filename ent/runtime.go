// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/studytrail/studytrail/ent/attemptevent"
	"github.com/studytrail/studytrail/ent/coursemodule"
	"github.com/studytrail/studytrail/ent/llmrequestevent"
	"github.com/studytrail/studytrail/ent/masteryevent"
	"github.com/studytrail/studytrail/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescStudentID is the schema descriptor for student_id field.
	attempteventDescStudentID := attempteventFields[0].Descriptor()
	// attemptevent.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	attemptevent.StudentIDValidator = attempteventDescStudentID.Validators[0].(func(string) error)
	// attempteventDescModuleID is the schema descriptor for module_id field.
	attempteventDescModuleID := attempteventFields[1].Descriptor()
	// attemptevent.ModuleIDValidator is a validator for the "module_id" field. It is called by the builders before save.
	attemptevent.ModuleIDValidator = attempteventDescModuleID.Validators[0].(func(string) error)
	// attempteventDescObjective is the schema descriptor for objective field.
	attempteventDescObjective := attempteventFields[2].Descriptor()
	// attemptevent.ObjectiveValidator is a validator for the "objective" field. It is called by the builders before save.
	attemptevent.ObjectiveValidator = attempteventDescObjective.Validators[0].(func(int) error)
	// attempteventDescQuestionFormat is the schema descriptor for question_format field.
	attempteventDescQuestionFormat := attempteventFields[4].Descriptor()
	// attemptevent.QuestionFormatValidator is a validator for the "question_format" field. It is called by the builders before save.
	attemptevent.QuestionFormatValidator = attempteventDescQuestionFormat.Validators[0].(func(string) error)
	// attempteventDescQuestionText is the schema descriptor for question_text field.
	attempteventDescQuestionText := attempteventFields[5].Descriptor()
	// attemptevent.DefaultQuestionText holds the default value on creation for the question_text field.
	attemptevent.DefaultQuestionText = attempteventDescQuestionText.Default.(string)
	// attempteventDescGivenAnswer is the schema descriptor for given_answer field.
	attempteventDescGivenAnswer := attempteventFields[6].Descriptor()
	// attemptevent.DefaultGivenAnswer holds the default value on creation for the given_answer field.
	attemptevent.DefaultGivenAnswer = attempteventDescGivenAnswer.Default.(string)
	// attempteventDescCorrectAnswer is the schema descriptor for correct_answer field.
	attempteventDescCorrectAnswer := attempteventFields[7].Descriptor()
	// attemptevent.DefaultCorrectAnswer holds the default value on creation for the correct_answer field.
	attemptevent.DefaultCorrectAnswer = attempteventDescCorrectAnswer.Default.(string)
	// attempteventDescReviewed is the schema descriptor for reviewed field.
	attempteventDescReviewed := attempteventFields[9].Descriptor()
	// attemptevent.DefaultReviewed holds the default value on creation for the reviewed field.
	attemptevent.DefaultReviewed = attempteventDescReviewed.Default.(bool)
	// attempteventDescReasoningScore is the schema descriptor for reasoning_score field.
	attempteventDescReasoningScore := attempteventFields[10].Descriptor()
	// attemptevent.DefaultReasoningScore holds the default value on creation for the reasoning_score field.
	attemptevent.DefaultReasoningScore = attempteventDescReasoningScore.Default.(int)
	// attempteventDescMajorMistake is the schema descriptor for major_mistake field.
	attempteventDescMajorMistake := attempteventFields[11].Descriptor()
	// attemptevent.DefaultMajorMistake holds the default value on creation for the major_mistake field.
	attemptevent.DefaultMajorMistake = attempteventDescMajorMistake.Default.(bool)
	coursemoduleFields := schema.CourseModule{}.Fields()
	_ = coursemoduleFields
	// coursemoduleDescModuleID is the schema descriptor for module_id field.
	coursemoduleDescModuleID := coursemoduleFields[0].Descriptor()
	// coursemodule.ModuleIDValidator is a validator for the "module_id" field. It is called by the builders before save.
	coursemodule.ModuleIDValidator = coursemoduleDescModuleID.Validators[0].(func(string) error)
	// coursemoduleDescTitle is the schema descriptor for title field.
	coursemoduleDescTitle := coursemoduleFields[1].Descriptor()
	// coursemodule.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	coursemodule.TitleValidator = coursemoduleDescTitle.Validators[0].(func(string) error)
	// coursemoduleDescMaterial is the schema descriptor for material field.
	coursemoduleDescMaterial := coursemoduleFields[2].Descriptor()
	// coursemodule.DefaultMaterial holds the default value on creation for the material field.
	coursemodule.DefaultMaterial = coursemoduleDescMaterial.Default.(string)
	// coursemoduleDescCreatedAt is the schema descriptor for created_at field.
	coursemoduleDescCreatedAt := coursemoduleFields[4].Descriptor()
	// coursemodule.DefaultCreatedAt holds the default value on creation for the created_at field.
	coursemodule.DefaultCreatedAt = coursemoduleDescCreatedAt.Default.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	masteryeventMixin := schema.MasteryEvent{}.Mixin()
	masteryeventMixinFields0 := masteryeventMixin[0].Fields()
	_ = masteryeventMixinFields0
	masteryeventFields := schema.MasteryEvent{}.Fields()
	_ = masteryeventFields
	// masteryeventDescTimestamp is the schema descriptor for timestamp field.
	masteryeventDescTimestamp := masteryeventMixinFields0[1].Descriptor()
	// masteryevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	masteryevent.DefaultTimestamp = masteryeventDescTimestamp.Default.(func() time.Time)
	// masteryeventDescStudentID is the schema descriptor for student_id field.
	masteryeventDescStudentID := masteryeventFields[0].Descriptor()
	// masteryevent.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	masteryevent.StudentIDValidator = masteryeventDescStudentID.Validators[0].(func(string) error)
	// masteryeventDescModuleID is the schema descriptor for module_id field.
	masteryeventDescModuleID := masteryeventFields[1].Descriptor()
	// masteryevent.ModuleIDValidator is a validator for the "module_id" field. It is called by the builders before save.
	masteryevent.ModuleIDValidator = masteryeventDescModuleID.Validators[0].(func(string) error)
	// masteryeventDescObjective is the schema descriptor for objective field.
	masteryeventDescObjective := masteryeventFields[2].Descriptor()
	// masteryevent.ObjectiveValidator is a validator for the "objective" field. It is called by the builders before save.
	masteryevent.ObjectiveValidator = masteryeventDescObjective.Validators[0].(func(int) error)
	// masteryeventDescFromStatus is the schema descriptor for from_status field.
	masteryeventDescFromStatus := masteryeventFields[3].Descriptor()
	// masteryevent.FromStatusValidator is a validator for the "from_status" field. It is called by the builders before save.
	masteryevent.FromStatusValidator = masteryeventDescFromStatus.Validators[0].(func(string) error)
	// masteryeventDescToStatus is the schema descriptor for to_status field.
	masteryeventDescToStatus := masteryeventFields[4].Descriptor()
	// masteryevent.ToStatusValidator is a validator for the "to_status" field. It is called by the builders before save.
	masteryevent.ToStatusValidator = masteryeventDescToStatus.Validators[0].(func(string) error)
	// masteryeventDescStreak is the schema descriptor for streak field.
	masteryeventDescStreak := masteryeventFields[5].Descriptor()
	// masteryevent.DefaultStreak holds the default value on creation for the streak field.
	masteryevent.DefaultStreak = masteryeventDescStreak.Default.(int)
	// masteryeventDescTrigger is the schema descriptor for trigger field.
	masteryeventDescTrigger := masteryeventFields[6].Descriptor()
	// masteryevent.TriggerValidator is a validator for the "trigger" field. It is called by the builders before save.
	masteryevent.TriggerValidator = masteryeventDescTrigger.Validators[0].(func(string) error)
}
