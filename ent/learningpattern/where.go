// Code generated by ent, DO NOT EDIT.

package learningpattern

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/tutorly/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldEQ(FieldUserID, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldEQ(FieldSubject, v))
}

// Style applies equality check predicate on the "style" field. It's identical to StyleEQ.
func Style(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldEQ(FieldStyle, v))
}

// PreferredHintType applies equality check predicate on the "preferred_hint_type" field. It's identical to PreferredHintTypeEQ.
func PreferredHintType(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldEQ(FieldPreferredHintType, v))
}

// AttentionSpan applies equality check predicate on the "attention_span" field. It's identical to AttentionSpanEQ.
func AttentionSpan(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldEQ(FieldAttentionSpan, v))
}

// ImprovementRate applies equality check predicate on the "improvement_rate" field. It's identical to ImprovementRateEQ.
func ImprovementRate(v float64) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldEQ(FieldImprovementRate, v))
}

// RecommendedDifficulty applies equality check predicate on the "recommended_difficulty" field. It's identical to RecommendedDifficultyEQ.
func RecommendedDifficulty(v float64) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldEQ(FieldRecommendedDifficulty, v))
}

// LastAnalyzed applies equality check predicate on the "last_analyzed" field. It's identical to LastAnalyzedEQ.
func LastAnalyzed(v time.Time) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldEQ(FieldLastAnalyzed, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldContainsFold(FieldUserID, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldContainsFold(FieldSubject, v))
}

// StyleEQ applies the EQ predicate on the "style" field.
func StyleEQ(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldEQ(FieldStyle, v))
}

// StyleNEQ applies the NEQ predicate on the "style" field.
func StyleNEQ(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldNEQ(FieldStyle, v))
}

// StyleIn applies the In predicate on the "style" field.
func StyleIn(vs ...string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldIn(FieldStyle, vs...))
}

// StyleNotIn applies the NotIn predicate on the "style" field.
func StyleNotIn(vs ...string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldNotIn(FieldStyle, vs...))
}

// StyleGT applies the GT predicate on the "style" field.
func StyleGT(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldGT(FieldStyle, v))
}

// StyleGTE applies the GTE predicate on the "style" field.
func StyleGTE(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldGTE(FieldStyle, v))
}

// StyleLT applies the LT predicate on the "style" field.
func StyleLT(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldLT(FieldStyle, v))
}

// StyleLTE applies the LTE predicate on the "style" field.
func StyleLTE(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldLTE(FieldStyle, v))
}

// StyleContains applies the Contains predicate on the "style" field.
func StyleContains(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldContains(FieldStyle, v))
}

// StyleHasPrefix applies the HasPrefix predicate on the "style" field.
func StyleHasPrefix(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldHasPrefix(FieldStyle, v))
}

// StyleHasSuffix applies the HasSuffix predicate on the "style" field.
func StyleHasSuffix(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldHasSuffix(FieldStyle, v))
}

// StyleEqualFold applies the EqualFold predicate on the "style" field.
func StyleEqualFold(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldEqualFold(FieldStyle, v))
}

// StyleContainsFold applies the ContainsFold predicate on the "style" field.
func StyleContainsFold(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldContainsFold(FieldStyle, v))
}

// PreferredHintTypeEQ applies the EQ predicate on the "preferred_hint_type" field.
func PreferredHintTypeEQ(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldEQ(FieldPreferredHintType, v))
}

// PreferredHintTypeNEQ applies the NEQ predicate on the "preferred_hint_type" field.
func PreferredHintTypeNEQ(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldNEQ(FieldPreferredHintType, v))
}

// PreferredHintTypeIn applies the In predicate on the "preferred_hint_type" field.
func PreferredHintTypeIn(vs ...string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldIn(FieldPreferredHintType, vs...))
}

// PreferredHintTypeNotIn applies the NotIn predicate on the "preferred_hint_type" field.
func PreferredHintTypeNotIn(vs ...string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldNotIn(FieldPreferredHintType, vs...))
}

// PreferredHintTypeGT applies the GT predicate on the "preferred_hint_type" field.
func PreferredHintTypeGT(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldGT(FieldPreferredHintType, v))
}

// PreferredHintTypeGTE applies the GTE predicate on the "preferred_hint_type" field.
func PreferredHintTypeGTE(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldGTE(FieldPreferredHintType, v))
}

// PreferredHintTypeLT applies the LT predicate on the "preferred_hint_type" field.
func PreferredHintTypeLT(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldLT(FieldPreferredHintType, v))
}

// PreferredHintTypeLTE applies the LTE predicate on the "preferred_hint_type" field.
func PreferredHintTypeLTE(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldLTE(FieldPreferredHintType, v))
}

// PreferredHintTypeContains applies the Contains predicate on the "preferred_hint_type" field.
func PreferredHintTypeContains(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldContains(FieldPreferredHintType, v))
}

// PreferredHintTypeHasPrefix applies the HasPrefix predicate on the "preferred_hint_type" field.
func PreferredHintTypeHasPrefix(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldHasPrefix(FieldPreferredHintType, v))
}

// PreferredHintTypeHasSuffix applies the HasSuffix predicate on the "preferred_hint_type" field.
func PreferredHintTypeHasSuffix(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldHasSuffix(FieldPreferredHintType, v))
}

// PreferredHintTypeEqualFold applies the EqualFold predicate on the "preferred_hint_type" field.
func PreferredHintTypeEqualFold(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldEqualFold(FieldPreferredHintType, v))
}

// PreferredHintTypeContainsFold applies the ContainsFold predicate on the "preferred_hint_type" field.
func PreferredHintTypeContainsFold(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldContainsFold(FieldPreferredHintType, v))
}

// AttentionSpanEQ applies the EQ predicate on the "attention_span" field.
func AttentionSpanEQ(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldEQ(FieldAttentionSpan, v))
}

// AttentionSpanNEQ applies the NEQ predicate on the "attention_span" field.
func AttentionSpanNEQ(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldNEQ(FieldAttentionSpan, v))
}

// AttentionSpanIn applies the In predicate on the "attention_span" field.
func AttentionSpanIn(vs ...string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldIn(FieldAttentionSpan, vs...))
}

// AttentionSpanNotIn applies the NotIn predicate on the "attention_span" field.
func AttentionSpanNotIn(vs ...string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldNotIn(FieldAttentionSpan, vs...))
}

// AttentionSpanGT applies the GT predicate on the "attention_span" field.
func AttentionSpanGT(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldGT(FieldAttentionSpan, v))
}

// AttentionSpanGTE applies the GTE predicate on the "attention_span" field.
func AttentionSpanGTE(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldGTE(FieldAttentionSpan, v))
}

// AttentionSpanLT applies the LT predicate on the "attention_span" field.
func AttentionSpanLT(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldLT(FieldAttentionSpan, v))
}

// AttentionSpanLTE applies the LTE predicate on the "attention_span" field.
func AttentionSpanLTE(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldLTE(FieldAttentionSpan, v))
}

// AttentionSpanContains applies the Contains predicate on the "attention_span" field.
func AttentionSpanContains(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldContains(FieldAttentionSpan, v))
}

// AttentionSpanHasPrefix applies the HasPrefix predicate on the "attention_span" field.
func AttentionSpanHasPrefix(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldHasPrefix(FieldAttentionSpan, v))
}

// AttentionSpanHasSuffix applies the HasSuffix predicate on the "attention_span" field.
func AttentionSpanHasSuffix(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldHasSuffix(FieldAttentionSpan, v))
}

// AttentionSpanEqualFold applies the EqualFold predicate on the "attention_span" field.
func AttentionSpanEqualFold(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldEqualFold(FieldAttentionSpan, v))
}

// AttentionSpanContainsFold applies the ContainsFold predicate on the "attention_span" field.
func AttentionSpanContainsFold(v string) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldContainsFold(FieldAttentionSpan, v))
}

// ErrorPatternsIsNil applies the IsNil predicate on the "error_patterns" field.
func ErrorPatternsIsNil() predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldIsNull(FieldErrorPatterns))
}

// ErrorPatternsNotNil applies the NotNil predicate on the "error_patterns" field.
func ErrorPatternsNotNil() predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldNotNull(FieldErrorPatterns))
}

// MasteryLevelsIsNil applies the IsNil predicate on the "mastery_levels" field.
func MasteryLevelsIsNil() predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldIsNull(FieldMasteryLevels))
}

// MasteryLevelsNotNil applies the NotNil predicate on the "mastery_levels" field.
func MasteryLevelsNotNil() predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldNotNull(FieldMasteryLevels))
}

// ImprovementRateEQ applies the EQ predicate on the "improvement_rate" field.
func ImprovementRateEQ(v float64) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldEQ(FieldImprovementRate, v))
}

// ImprovementRateNEQ applies the NEQ predicate on the "improvement_rate" field.
func ImprovementRateNEQ(v float64) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldNEQ(FieldImprovementRate, v))
}

// ImprovementRateIn applies the In predicate on the "improvement_rate" field.
func ImprovementRateIn(vs ...float64) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldIn(FieldImprovementRate, vs...))
}

// ImprovementRateNotIn applies the NotIn predicate on the "improvement_rate" field.
func ImprovementRateNotIn(vs ...float64) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldNotIn(FieldImprovementRate, vs...))
}

// ImprovementRateGT applies the GT predicate on the "improvement_rate" field.
func ImprovementRateGT(v float64) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldGT(FieldImprovementRate, v))
}

// ImprovementRateGTE applies the GTE predicate on the "improvement_rate" field.
func ImprovementRateGTE(v float64) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldGTE(FieldImprovementRate, v))
}

// ImprovementRateLT applies the LT predicate on the "improvement_rate" field.
func ImprovementRateLT(v float64) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldLT(FieldImprovementRate, v))
}

// ImprovementRateLTE applies the LTE predicate on the "improvement_rate" field.
func ImprovementRateLTE(v float64) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldLTE(FieldImprovementRate, v))
}

// StrugglingAreasIsNil applies the IsNil predicate on the "struggling_areas" field.
func StrugglingAreasIsNil() predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldIsNull(FieldStrugglingAreas))
}

// StrugglingAreasNotNil applies the NotNil predicate on the "struggling_areas" field.
func StrugglingAreasNotNil() predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldNotNull(FieldStrugglingAreas))
}

// ImprovingAreasIsNil applies the IsNil predicate on the "improving_areas" field.
func ImprovingAreasIsNil() predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldIsNull(FieldImprovingAreas))
}

// ImprovingAreasNotNil applies the NotNil predicate on the "improving_areas" field.
func ImprovingAreasNotNil() predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldNotNull(FieldImprovingAreas))
}

// RecommendedDifficultyEQ applies the EQ predicate on the "recommended_difficulty" field.
func RecommendedDifficultyEQ(v float64) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldEQ(FieldRecommendedDifficulty, v))
}

// RecommendedDifficultyNEQ applies the NEQ predicate on the "recommended_difficulty" field.
func RecommendedDifficultyNEQ(v float64) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldNEQ(FieldRecommendedDifficulty, v))
}

// RecommendedDifficultyIn applies the In predicate on the "recommended_difficulty" field.
func RecommendedDifficultyIn(vs ...float64) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldIn(FieldRecommendedDifficulty, vs...))
}

// RecommendedDifficultyNotIn applies the NotIn predicate on the "recommended_difficulty" field.
func RecommendedDifficultyNotIn(vs ...float64) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldNotIn(FieldRecommendedDifficulty, vs...))
}

// RecommendedDifficultyGT applies the GT predicate on the "recommended_difficulty" field.
func RecommendedDifficultyGT(v float64) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldGT(FieldRecommendedDifficulty, v))
}

// RecommendedDifficultyGTE applies the GTE predicate on the "recommended_difficulty" field.
func RecommendedDifficultyGTE(v float64) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldGTE(FieldRecommendedDifficulty, v))
}

// RecommendedDifficultyLT applies the LT predicate on the "recommended_difficulty" field.
func RecommendedDifficultyLT(v float64) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldLT(FieldRecommendedDifficulty, v))
}

// RecommendedDifficultyLTE applies the LTE predicate on the "recommended_difficulty" field.
func RecommendedDifficultyLTE(v float64) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldLTE(FieldRecommendedDifficulty, v))
}

// LastAnalyzedEQ applies the EQ predicate on the "last_analyzed" field.
func LastAnalyzedEQ(v time.Time) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldEQ(FieldLastAnalyzed, v))
}

// LastAnalyzedNEQ applies the NEQ predicate on the "last_analyzed" field.
func LastAnalyzedNEQ(v time.Time) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldNEQ(FieldLastAnalyzed, v))
}

// LastAnalyzedIn applies the In predicate on the "last_analyzed" field.
func LastAnalyzedIn(vs ...time.Time) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldIn(FieldLastAnalyzed, vs...))
}

// LastAnalyzedNotIn applies the NotIn predicate on the "last_analyzed" field.
func LastAnalyzedNotIn(vs ...time.Time) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldNotIn(FieldLastAnalyzed, vs...))
}

// LastAnalyzedGT applies the GT predicate on the "last_analyzed" field.
func LastAnalyzedGT(v time.Time) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldGT(FieldLastAnalyzed, v))
}

// LastAnalyzedGTE applies the GTE predicate on the "last_analyzed" field.
func LastAnalyzedGTE(v time.Time) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldGTE(FieldLastAnalyzed, v))
}

// LastAnalyzedLT applies the LT predicate on the "last_analyzed" field.
func LastAnalyzedLT(v time.Time) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldLT(FieldLastAnalyzed, v))
}

// LastAnalyzedLTE applies the LTE predicate on the "last_analyzed" field.
func LastAnalyzedLTE(v time.Time) predicate.LearningPattern {
	return predicate.LearningPattern(sql.FieldLTE(FieldLastAnalyzed, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LearningPattern) predicate.LearningPattern {
	return predicate.LearningPattern(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LearningPattern) predicate.LearningPattern {
	return predicate.LearningPattern(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LearningPattern) predicate.LearningPattern {
	return predicate.LearningPattern(sql.NotPredicates(p))
}
