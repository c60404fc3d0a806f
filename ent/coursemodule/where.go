// Code generated by ent, DO NOT EDIT.

package coursemodule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/studytrail/studytrail/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldLTE(FieldID, id))
}

// ModuleID applies equality check predicate on the "module_id" field. It's identical to ModuleIDEQ.
func ModuleID(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldEQ(FieldModuleID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldEQ(FieldTitle, v))
}

// Material applies equality check predicate on the "material" field. It's identical to MaterialEQ.
func Material(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldEQ(FieldMaterial, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldEQ(FieldCreatedAt, v))
}

// ModuleIDEQ applies the EQ predicate on the "module_id" field.
func ModuleIDEQ(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldEQ(FieldModuleID, v))
}

// ModuleIDNEQ applies the NEQ predicate on the "module_id" field.
func ModuleIDNEQ(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldNEQ(FieldModuleID, v))
}

// ModuleIDIn applies the In predicate on the "module_id" field.
func ModuleIDIn(vs ...string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldIn(FieldModuleID, vs...))
}

// ModuleIDNotIn applies the NotIn predicate on the "module_id" field.
func ModuleIDNotIn(vs ...string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldNotIn(FieldModuleID, vs...))
}

// ModuleIDGT applies the GT predicate on the "module_id" field.
func ModuleIDGT(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldGT(FieldModuleID, v))
}

// ModuleIDGTE applies the GTE predicate on the "module_id" field.
func ModuleIDGTE(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldGTE(FieldModuleID, v))
}

// ModuleIDLT applies the LT predicate on the "module_id" field.
func ModuleIDLT(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldLT(FieldModuleID, v))
}

// ModuleIDLTE applies the LTE predicate on the "module_id" field.
func ModuleIDLTE(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldLTE(FieldModuleID, v))
}

// ModuleIDContains applies the Contains predicate on the "module_id" field.
func ModuleIDContains(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldContains(FieldModuleID, v))
}

// ModuleIDHasPrefix applies the HasPrefix predicate on the "module_id" field.
func ModuleIDHasPrefix(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldHasPrefix(FieldModuleID, v))
}

// ModuleIDHasSuffix applies the HasSuffix predicate on the "module_id" field.
func ModuleIDHasSuffix(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldHasSuffix(FieldModuleID, v))
}

// ModuleIDEqualFold applies the EqualFold predicate on the "module_id" field.
func ModuleIDEqualFold(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldEqualFold(FieldModuleID, v))
}

// ModuleIDContainsFold applies the ContainsFold predicate on the "module_id" field.
func ModuleIDContainsFold(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldContainsFold(FieldModuleID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldContainsFold(FieldTitle, v))
}

// MaterialEQ applies the EQ predicate on the "material" field.
func MaterialEQ(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldEQ(FieldMaterial, v))
}

// MaterialNEQ applies the NEQ predicate on the "material" field.
func MaterialNEQ(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldNEQ(FieldMaterial, v))
}

// MaterialIn applies the In predicate on the "material" field.
func MaterialIn(vs ...string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldIn(FieldMaterial, vs...))
}

// MaterialNotIn applies the NotIn predicate on the "material" field.
func MaterialNotIn(vs ...string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldNotIn(FieldMaterial, vs...))
}

// MaterialGT applies the GT predicate on the "material" field.
func MaterialGT(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldGT(FieldMaterial, v))
}

// MaterialGTE applies the GTE predicate on the "material" field.
func MaterialGTE(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldGTE(FieldMaterial, v))
}

// MaterialLT applies the LT predicate on the "material" field.
func MaterialLT(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldLT(FieldMaterial, v))
}

// MaterialLTE applies the LTE predicate on the "material" field.
func MaterialLTE(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldLTE(FieldMaterial, v))
}

// MaterialContains applies the Contains predicate on the "material" field.
func MaterialContains(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldContains(FieldMaterial, v))
}

// MaterialHasPrefix applies the HasPrefix predicate on the "material" field.
func MaterialHasPrefix(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldHasPrefix(FieldMaterial, v))
}

// MaterialHasSuffix applies the HasSuffix predicate on the "material" field.
func MaterialHasSuffix(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldHasSuffix(FieldMaterial, v))
}

// MaterialEqualFold applies the EqualFold predicate on the "material" field.
func MaterialEqualFold(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldEqualFold(FieldMaterial, v))
}

// MaterialContainsFold applies the ContainsFold predicate on the "material" field.
func MaterialContainsFold(v string) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldContainsFold(FieldMaterial, v))
}

// ObjectivesIsNil applies the IsNil predicate on the "objectives" field.
func ObjectivesIsNil() predicate.CourseModule {
	return predicate.CourseModule(sql.FieldIsNull(FieldObjectives))
}

// ObjectivesNotNil applies the NotNil predicate on the "objectives" field.
func ObjectivesNotNil() predicate.CourseModule {
	return predicate.CourseModule(sql.FieldNotNull(FieldObjectives))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CourseModule {
	return predicate.CourseModule(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CourseModule) predicate.CourseModule {
	return predicate.CourseModule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CourseModule) predicate.CourseModule {
	return predicate.CourseModule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CourseModule) predicate.CourseModule {
	return predicate.CourseModule(sql.NotPredicates(p))
}
