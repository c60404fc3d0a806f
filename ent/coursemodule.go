// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/studytrail/studytrail/ent/coursemodule"
)

// CourseModule is the model entity for the CourseModule schema.
type CourseModule struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ModuleID holds the value of the "module_id" field.
	ModuleID string `json:"module_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Extracted plain text of the course material
	Material string `json:"material,omitempty"`
	// Ordered learning objectives for this module
	Objectives []string `json:"objectives,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CourseModule) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case coursemodule.FieldObjectives:
			values[i] = new([]byte)
		case coursemodule.FieldID:
			values[i] = new(sql.NullInt64)
		case coursemodule.FieldModuleID, coursemodule.FieldTitle, coursemodule.FieldMaterial:
			values[i] = new(sql.NullString)
		case coursemodule.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CourseModule fields.
func (_m *CourseModule) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case coursemodule.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case coursemodule.FieldModuleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field module_id", values[i])
			} else if value.Valid {
				_m.ModuleID = value.String
			}
		case coursemodule.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case coursemodule.FieldMaterial:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field material", values[i])
			} else if value.Valid {
				_m.Material = value.String
			}
		case coursemodule.FieldObjectives:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field objectives", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Objectives); err != nil {
					return fmt.Errorf("unmarshal field objectives: %w", err)
				}
			}
		case coursemodule.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CourseModule.
// This includes values selected through modifiers, order, etc.
func (_m *CourseModule) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CourseModule.
// Note that you need to call CourseModule.Unwrap() before calling this method if this CourseModule
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CourseModule) Update() *CourseModuleUpdateOne {
	return NewCourseModuleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CourseModule entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CourseModule) Unwrap() *CourseModule {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CourseModule is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CourseModule) String() string {
	var builder strings.Builder
	builder.WriteString("CourseModule(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("module_id=")
	builder.WriteString(_m.ModuleID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("material=")
	builder.WriteString(_m.Material)
	builder.WriteString(", ")
	builder.WriteString("objectives=")
	builder.WriteString(fmt.Sprintf("%v", _m.Objectives))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CourseModules is a parsable slice of CourseModule.
type CourseModules []*CourseModule
