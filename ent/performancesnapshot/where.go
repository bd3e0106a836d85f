// Code generated by ent, DO NOT EDIT.

package performancesnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/tutorly/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldLTE(FieldID, id))
}

// RecordID applies equality check predicate on the "record_id" field. It's identical to RecordIDEQ.
func RecordID(v string) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldEQ(FieldRecordID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldEQ(FieldUserID, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldEQ(FieldSubject, v))
}

// OverallScore applies equality check predicate on the "overall_score" field. It's identical to OverallScoreEQ.
func OverallScore(v float64) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldEQ(FieldOverallScore, v))
}

// TakenAt applies equality check predicate on the "taken_at" field. It's identical to TakenAtEQ.
func TakenAt(v time.Time) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldEQ(FieldTakenAt, v))
}

// RecordIDEQ applies the EQ predicate on the "record_id" field.
func RecordIDEQ(v string) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldEQ(FieldRecordID, v))
}

// RecordIDNEQ applies the NEQ predicate on the "record_id" field.
func RecordIDNEQ(v string) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldNEQ(FieldRecordID, v))
}

// RecordIDIn applies the In predicate on the "record_id" field.
func RecordIDIn(vs ...string) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldIn(FieldRecordID, vs...))
}

// RecordIDNotIn applies the NotIn predicate on the "record_id" field.
func RecordIDNotIn(vs ...string) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldNotIn(FieldRecordID, vs...))
}

// RecordIDGT applies the GT predicate on the "record_id" field.
func RecordIDGT(v string) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldGT(FieldRecordID, v))
}

// RecordIDGTE applies the GTE predicate on the "record_id" field.
func RecordIDGTE(v string) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldGTE(FieldRecordID, v))
}

// RecordIDLT applies the LT predicate on the "record_id" field.
func RecordIDLT(v string) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldLT(FieldRecordID, v))
}

// RecordIDLTE applies the LTE predicate on the "record_id" field.
func RecordIDLTE(v string) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldLTE(FieldRecordID, v))
}

// RecordIDContains applies the Contains predicate on the "record_id" field.
func RecordIDContains(v string) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldContains(FieldRecordID, v))
}

// RecordIDHasPrefix applies the HasPrefix predicate on the "record_id" field.
func RecordIDHasPrefix(v string) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldHasPrefix(FieldRecordID, v))
}

// RecordIDHasSuffix applies the HasSuffix predicate on the "record_id" field.
func RecordIDHasSuffix(v string) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldHasSuffix(FieldRecordID, v))
}

// RecordIDEqualFold applies the EqualFold predicate on the "record_id" field.
func RecordIDEqualFold(v string) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldEqualFold(FieldRecordID, v))
}

// RecordIDContainsFold applies the ContainsFold predicate on the "record_id" field.
func RecordIDContainsFold(v string) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldContainsFold(FieldRecordID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldContainsFold(FieldUserID, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldContainsFold(FieldSubject, v))
}

// OverallScoreEQ applies the EQ predicate on the "overall_score" field.
func OverallScoreEQ(v float64) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldEQ(FieldOverallScore, v))
}

// OverallScoreNEQ applies the NEQ predicate on the "overall_score" field.
func OverallScoreNEQ(v float64) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldNEQ(FieldOverallScore, v))
}

// OverallScoreIn applies the In predicate on the "overall_score" field.
func OverallScoreIn(vs ...float64) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldIn(FieldOverallScore, vs...))
}

// OverallScoreNotIn applies the NotIn predicate on the "overall_score" field.
func OverallScoreNotIn(vs ...float64) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldNotIn(FieldOverallScore, vs...))
}

// OverallScoreGT applies the GT predicate on the "overall_score" field.
func OverallScoreGT(v float64) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldGT(FieldOverallScore, v))
}

// OverallScoreGTE applies the GTE predicate on the "overall_score" field.
func OverallScoreGTE(v float64) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldGTE(FieldOverallScore, v))
}

// OverallScoreLT applies the LT predicate on the "overall_score" field.
func OverallScoreLT(v float64) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldLT(FieldOverallScore, v))
}

// OverallScoreLTE applies the LTE predicate on the "overall_score" field.
func OverallScoreLTE(v float64) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldLTE(FieldOverallScore, v))
}

// TopicScoresIsNil applies the IsNil predicate on the "topic_scores" field.
func TopicScoresIsNil() predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldIsNull(FieldTopicScores))
}

// TopicScoresNotNil applies the NotNil predicate on the "topic_scores" field.
func TopicScoresNotNil() predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldNotNull(FieldTopicScores))
}

// TakenAtEQ applies the EQ predicate on the "taken_at" field.
func TakenAtEQ(v time.Time) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldEQ(FieldTakenAt, v))
}

// TakenAtNEQ applies the NEQ predicate on the "taken_at" field.
func TakenAtNEQ(v time.Time) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldNEQ(FieldTakenAt, v))
}

// TakenAtIn applies the In predicate on the "taken_at" field.
func TakenAtIn(vs ...time.Time) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldIn(FieldTakenAt, vs...))
}

// TakenAtNotIn applies the NotIn predicate on the "taken_at" field.
func TakenAtNotIn(vs ...time.Time) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldNotIn(FieldTakenAt, vs...))
}

// TakenAtGT applies the GT predicate on the "taken_at" field.
func TakenAtGT(v time.Time) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldGT(FieldTakenAt, v))
}

// TakenAtGTE applies the GTE predicate on the "taken_at" field.
func TakenAtGTE(v time.Time) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldGTE(FieldTakenAt, v))
}

// TakenAtLT applies the LT predicate on the "taken_at" field.
func TakenAtLT(v time.Time) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldLT(FieldTakenAt, v))
}

// TakenAtLTE applies the LTE predicate on the "taken_at" field.
func TakenAtLTE(v time.Time) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.FieldLTE(FieldTakenAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PerformanceSnapshot) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PerformanceSnapshot) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PerformanceSnapshot) predicate.PerformanceSnapshot {
	return predicate.PerformanceSnapshot(sql.NotPredicates(p))
}
