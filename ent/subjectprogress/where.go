// Code generated by ent, DO NOT EDIT.

package subjectprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/tutorly/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldEQ(FieldUserID, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldEQ(FieldSubject, v))
}

// OverallScore applies equality check predicate on the "overall_score" field. It's identical to OverallScoreEQ.
func OverallScore(v float64) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldEQ(FieldOverallScore, v))
}

// StreakDays applies equality check predicate on the "streak_days" field. It's identical to StreakDaysEQ.
func StreakDays(v int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldEQ(FieldStreakDays, v))
}

// TotalPracticeTime applies equality check predicate on the "total_practice_time" field. It's identical to TotalPracticeTimeEQ.
func TotalPracticeTime(v int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldEQ(FieldTotalPracticeTime, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldContainsFold(FieldUserID, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldContainsFold(FieldSubject, v))
}

// OverallScoreEQ applies the EQ predicate on the "overall_score" field.
func OverallScoreEQ(v float64) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldEQ(FieldOverallScore, v))
}

// OverallScoreNEQ applies the NEQ predicate on the "overall_score" field.
func OverallScoreNEQ(v float64) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldNEQ(FieldOverallScore, v))
}

// OverallScoreIn applies the In predicate on the "overall_score" field.
func OverallScoreIn(vs ...float64) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldIn(FieldOverallScore, vs...))
}

// OverallScoreNotIn applies the NotIn predicate on the "overall_score" field.
func OverallScoreNotIn(vs ...float64) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldNotIn(FieldOverallScore, vs...))
}

// OverallScoreGT applies the GT predicate on the "overall_score" field.
func OverallScoreGT(v float64) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldGT(FieldOverallScore, v))
}

// OverallScoreGTE applies the GTE predicate on the "overall_score" field.
func OverallScoreGTE(v float64) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldGTE(FieldOverallScore, v))
}

// OverallScoreLT applies the LT predicate on the "overall_score" field.
func OverallScoreLT(v float64) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldLT(FieldOverallScore, v))
}

// OverallScoreLTE applies the LTE predicate on the "overall_score" field.
func OverallScoreLTE(v float64) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldLTE(FieldOverallScore, v))
}

// TopicScoresIsNil applies the IsNil predicate on the "topic_scores" field.
func TopicScoresIsNil() predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldIsNull(FieldTopicScores))
}

// TopicScoresNotNil applies the NotNil predicate on the "topic_scores" field.
func TopicScoresNotNil() predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldNotNull(FieldTopicScores))
}

// WeakAreasIsNil applies the IsNil predicate on the "weak_areas" field.
func WeakAreasIsNil() predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldIsNull(FieldWeakAreas))
}

// WeakAreasNotNil applies the NotNil predicate on the "weak_areas" field.
func WeakAreasNotNil() predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldNotNull(FieldWeakAreas))
}

// StrongAreasIsNil applies the IsNil predicate on the "strong_areas" field.
func StrongAreasIsNil() predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldIsNull(FieldStrongAreas))
}

// StrongAreasNotNil applies the NotNil predicate on the "strong_areas" field.
func StrongAreasNotNil() predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldNotNull(FieldStrongAreas))
}

// StreakDaysEQ applies the EQ predicate on the "streak_days" field.
func StreakDaysEQ(v int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldEQ(FieldStreakDays, v))
}

// StreakDaysNEQ applies the NEQ predicate on the "streak_days" field.
func StreakDaysNEQ(v int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldNEQ(FieldStreakDays, v))
}

// StreakDaysIn applies the In predicate on the "streak_days" field.
func StreakDaysIn(vs ...int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldIn(FieldStreakDays, vs...))
}

// StreakDaysNotIn applies the NotIn predicate on the "streak_days" field.
func StreakDaysNotIn(vs ...int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldNotIn(FieldStreakDays, vs...))
}

// StreakDaysGT applies the GT predicate on the "streak_days" field.
func StreakDaysGT(v int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldGT(FieldStreakDays, v))
}

// StreakDaysGTE applies the GTE predicate on the "streak_days" field.
func StreakDaysGTE(v int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldGTE(FieldStreakDays, v))
}

// StreakDaysLT applies the LT predicate on the "streak_days" field.
func StreakDaysLT(v int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldLT(FieldStreakDays, v))
}

// StreakDaysLTE applies the LTE predicate on the "streak_days" field.
func StreakDaysLTE(v int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldLTE(FieldStreakDays, v))
}

// TotalPracticeTimeEQ applies the EQ predicate on the "total_practice_time" field.
func TotalPracticeTimeEQ(v int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldEQ(FieldTotalPracticeTime, v))
}

// TotalPracticeTimeNEQ applies the NEQ predicate on the "total_practice_time" field.
func TotalPracticeTimeNEQ(v int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldNEQ(FieldTotalPracticeTime, v))
}

// TotalPracticeTimeIn applies the In predicate on the "total_practice_time" field.
func TotalPracticeTimeIn(vs ...int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldIn(FieldTotalPracticeTime, vs...))
}

// TotalPracticeTimeNotIn applies the NotIn predicate on the "total_practice_time" field.
func TotalPracticeTimeNotIn(vs ...int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldNotIn(FieldTotalPracticeTime, vs...))
}

// TotalPracticeTimeGT applies the GT predicate on the "total_practice_time" field.
func TotalPracticeTimeGT(v int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldGT(FieldTotalPracticeTime, v))
}

// TotalPracticeTimeGTE applies the GTE predicate on the "total_practice_time" field.
func TotalPracticeTimeGTE(v int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldGTE(FieldTotalPracticeTime, v))
}

// TotalPracticeTimeLT applies the LT predicate on the "total_practice_time" field.
func TotalPracticeTimeLT(v int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldLT(FieldTotalPracticeTime, v))
}

// TotalPracticeTimeLTE applies the LTE predicate on the "total_practice_time" field.
func TotalPracticeTimeLTE(v int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldLTE(FieldTotalPracticeTime, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SubjectProgress) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SubjectProgress) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SubjectProgress) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.NotPredicates(p))
}
