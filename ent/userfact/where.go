// Code generated by ent, DO NOT EDIT.

package userfact

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/tutorly/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UserFact {
	return predicate.UserFact(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UserFact {
	return predicate.UserFact(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UserFact {
	return predicate.UserFact(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UserFact {
	return predicate.UserFact(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UserFact {
	return predicate.UserFact(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UserFact {
	return predicate.UserFact(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UserFact {
	return predicate.UserFact(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UserFact {
	return predicate.UserFact(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UserFact {
	return predicate.UserFact(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.UserFact {
	return predicate.UserFact(sql.FieldEQ(FieldUserID, v))
}

// GradeLevel applies equality check predicate on the "grade_level" field. It's identical to GradeLevelEQ.
func GradeLevel(v int) predicate.UserFact {
	return predicate.UserFact(sql.FieldEQ(FieldGradeLevel, v))
}

// ExamDate applies equality check predicate on the "exam_date" field. It's identical to ExamDateEQ.
func ExamDate(v time.Time) predicate.UserFact {
	return predicate.UserFact(sql.FieldEQ(FieldExamDate, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.UserFact {
	return predicate.UserFact(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.UserFact {
	return predicate.UserFact(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.UserFact {
	return predicate.UserFact(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.UserFact {
	return predicate.UserFact(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.UserFact {
	return predicate.UserFact(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.UserFact {
	return predicate.UserFact(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.UserFact {
	return predicate.UserFact(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.UserFact {
	return predicate.UserFact(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.UserFact {
	return predicate.UserFact(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.UserFact {
	return predicate.UserFact(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.UserFact {
	return predicate.UserFact(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.UserFact {
	return predicate.UserFact(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.UserFact {
	return predicate.UserFact(sql.FieldContainsFold(FieldUserID, v))
}

// GradeLevelEQ applies the EQ predicate on the "grade_level" field.
func GradeLevelEQ(v int) predicate.UserFact {
	return predicate.UserFact(sql.FieldEQ(FieldGradeLevel, v))
}

// GradeLevelNEQ applies the NEQ predicate on the "grade_level" field.
func GradeLevelNEQ(v int) predicate.UserFact {
	return predicate.UserFact(sql.FieldNEQ(FieldGradeLevel, v))
}

// GradeLevelIn applies the In predicate on the "grade_level" field.
func GradeLevelIn(vs ...int) predicate.UserFact {
	return predicate.UserFact(sql.FieldIn(FieldGradeLevel, vs...))
}

// GradeLevelNotIn applies the NotIn predicate on the "grade_level" field.
func GradeLevelNotIn(vs ...int) predicate.UserFact {
	return predicate.UserFact(sql.FieldNotIn(FieldGradeLevel, vs...))
}

// GradeLevelGT applies the GT predicate on the "grade_level" field.
func GradeLevelGT(v int) predicate.UserFact {
	return predicate.UserFact(sql.FieldGT(FieldGradeLevel, v))
}

// GradeLevelGTE applies the GTE predicate on the "grade_level" field.
func GradeLevelGTE(v int) predicate.UserFact {
	return predicate.UserFact(sql.FieldGTE(FieldGradeLevel, v))
}

// GradeLevelLT applies the LT predicate on the "grade_level" field.
func GradeLevelLT(v int) predicate.UserFact {
	return predicate.UserFact(sql.FieldLT(FieldGradeLevel, v))
}

// GradeLevelLTE applies the LTE predicate on the "grade_level" field.
func GradeLevelLTE(v int) predicate.UserFact {
	return predicate.UserFact(sql.FieldLTE(FieldGradeLevel, v))
}

// ExamDateEQ applies the EQ predicate on the "exam_date" field.
func ExamDateEQ(v time.Time) predicate.UserFact {
	return predicate.UserFact(sql.FieldEQ(FieldExamDate, v))
}

// ExamDateNEQ applies the NEQ predicate on the "exam_date" field.
func ExamDateNEQ(v time.Time) predicate.UserFact {
	return predicate.UserFact(sql.FieldNEQ(FieldExamDate, v))
}

// ExamDateIn applies the In predicate on the "exam_date" field.
func ExamDateIn(vs ...time.Time) predicate.UserFact {
	return predicate.UserFact(sql.FieldIn(FieldExamDate, vs...))
}

// ExamDateNotIn applies the NotIn predicate on the "exam_date" field.
func ExamDateNotIn(vs ...time.Time) predicate.UserFact {
	return predicate.UserFact(sql.FieldNotIn(FieldExamDate, vs...))
}

// ExamDateGT applies the GT predicate on the "exam_date" field.
func ExamDateGT(v time.Time) predicate.UserFact {
	return predicate.UserFact(sql.FieldGT(FieldExamDate, v))
}

// ExamDateGTE applies the GTE predicate on the "exam_date" field.
func ExamDateGTE(v time.Time) predicate.UserFact {
	return predicate.UserFact(sql.FieldGTE(FieldExamDate, v))
}

// ExamDateLT applies the LT predicate on the "exam_date" field.
func ExamDateLT(v time.Time) predicate.UserFact {
	return predicate.UserFact(sql.FieldLT(FieldExamDate, v))
}

// ExamDateLTE applies the LTE predicate on the "exam_date" field.
func ExamDateLTE(v time.Time) predicate.UserFact {
	return predicate.UserFact(sql.FieldLTE(FieldExamDate, v))
}

// ExamDateIsNil applies the IsNil predicate on the "exam_date" field.
func ExamDateIsNil() predicate.UserFact {
	return predicate.UserFact(sql.FieldIsNull(FieldExamDate))
}

// ExamDateNotNil applies the NotNil predicate on the "exam_date" field.
func ExamDateNotNil() predicate.UserFact {
	return predicate.UserFact(sql.FieldNotNull(FieldExamDate))
}

// PreferencesIsNil applies the IsNil predicate on the "preferences" field.
func PreferencesIsNil() predicate.UserFact {
	return predicate.UserFact(sql.FieldIsNull(FieldPreferences))
}

// PreferencesNotNil applies the NotNil predicate on the "preferences" field.
func PreferencesNotNil() predicate.UserFact {
	return predicate.UserFact(sql.FieldNotNull(FieldPreferences))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserFact) predicate.UserFact {
	return predicate.UserFact(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserFact) predicate.UserFact {
	return predicate.UserFact(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserFact) predicate.UserFact {
	return predicate.UserFact(sql.NotPredicates(p))
}
