package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryEvent records an objective status transition for audit and
// dashboards.
type MasteryEvent struct {
	ent.Schema
}

func (MasteryEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (MasteryEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").NotEmpty(),
		field.String("module_id").NotEmpty(),
		field.Int("objective").NonNegative(),
		field.String("from_status").NotEmpty(),
		field.String("to_status").NotEmpty(),
		field.Int("streak").Default(0),
		field.String("trigger").NotEmpty(),
		field.String("session_id").Optional(),
	}
}

func (MasteryEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "module_id", "objective"),
	}
}
