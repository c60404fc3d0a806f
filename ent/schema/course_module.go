package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// CourseModule stores one course module: its extracted material text and the
// learning objectives generated for it. Objectives are addressed by index;
// attempt and mastery events reference (module id, objective index).
type CourseModule struct {
	ent.Schema
}

func (CourseModule) Fields() []ent.Field {
	return []ent.Field{
		field.String("module_id").
			Unique().
			NotEmpty().
			Immutable(),
		field.String("title").
			NotEmpty(),
		field.Text("material").
			Default("").
			Comment("Extracted plain text of the course material"),
		field.JSON("objectives", []string{}).
			Optional().
			Comment("Ordered learning objectives for this module"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
