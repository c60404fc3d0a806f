package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one answered question by one student, tagged to the
// objective it assesses.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").
			NotEmpty(),
		field.String("module_id").
			NotEmpty().
			Comment("Course module the objective belongs to"),
		field.Int("objective").
			NonNegative().
			Comment("Objective index within the module"),
		field.String("session_id").
			Optional().
			Comment("Practice session this attempt belongs to"),
		field.String("question_format").
			NotEmpty().
			Comment("multiple_choice, short_answer, or fill_in_blank"),
		field.Text("question_text").
			Default(""),
		field.Text("given_answer").
			Default(""),
		field.Text("correct_answer").
			Default(""),
		field.Bool("correct").
			Comment("Exact-match grading verdict, determined upstream"),
		field.Bool("reviewed").
			Default(false).
			Comment("Whether a reasoning review is attached"),
		field.Int("reasoning_score").
			Default(0).
			Comment("0-2 reasoning quality, meaningful only when reviewed"),
		field.Bool("major_mistake").
			Default(false).
			Comment("Conceptual error flag, meaningful only when reviewed"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "module_id", "objective"),
		index.Fields("session_id"),
	}
}
