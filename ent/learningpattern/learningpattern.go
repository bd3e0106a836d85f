// Code generated by ent, DO NOT EDIT.

package learningpattern

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the learningpattern type in the database.
	Label = "learning_pattern"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldStyle holds the string denoting the style field in the database.
	FieldStyle = "style"
	// FieldPreferredHintType holds the string denoting the preferred_hint_type field in the database.
	FieldPreferredHintType = "preferred_hint_type"
	// FieldAttentionSpan holds the string denoting the attention_span field in the database.
	FieldAttentionSpan = "attention_span"
	// FieldErrorPatterns holds the string denoting the error_patterns field in the database.
	FieldErrorPatterns = "error_patterns"
	// FieldMasteryLevels holds the string denoting the mastery_levels field in the database.
	FieldMasteryLevels = "mastery_levels"
	// FieldImprovementRate holds the string denoting the improvement_rate field in the database.
	FieldImprovementRate = "improvement_rate"
	// FieldStrugglingAreas holds the string denoting the struggling_areas field in the database.
	FieldStrugglingAreas = "struggling_areas"
	// FieldImprovingAreas holds the string denoting the improving_areas field in the database.
	FieldImprovingAreas = "improving_areas"
	// FieldRecommendedDifficulty holds the string denoting the recommended_difficulty field in the database.
	FieldRecommendedDifficulty = "recommended_difficulty"
	// FieldLastAnalyzed holds the string denoting the last_analyzed field in the database.
	FieldLastAnalyzed = "last_analyzed"
	// Table holds the table name of the learningpattern in the database.
	Table = "learning_patterns"
)

// Columns holds all SQL columns for learningpattern fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldSubject,
	FieldStyle,
	FieldPreferredHintType,
	FieldAttentionSpan,
	FieldErrorPatterns,
	FieldMasteryLevels,
	FieldImprovementRate,
	FieldStrugglingAreas,
	FieldImprovingAreas,
	FieldRecommendedDifficulty,
	FieldLastAnalyzed,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	SubjectValidator func(string) error
	// DefaultLastAnalyzed holds the default value on creation for the "last_analyzed" field.
	DefaultLastAnalyzed func() time.Time
	// UpdateDefaultLastAnalyzed holds the default value on update for the "last_analyzed" field.
	UpdateDefaultLastAnalyzed func() time.Time
)

// OrderOption defines the ordering options for the LearningPattern queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByStyle orders the results by the style field.
func ByStyle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStyle, opts...).ToFunc()
}

// ByPreferredHintType orders the results by the preferred_hint_type field.
func ByPreferredHintType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreferredHintType, opts...).ToFunc()
}

// ByAttentionSpan orders the results by the attention_span field.
func ByAttentionSpan(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttentionSpan, opts...).ToFunc()
}

// ByImprovementRate orders the results by the improvement_rate field.
func ByImprovementRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImprovementRate, opts...).ToFunc()
}

// ByRecommendedDifficulty orders the results by the recommended_difficulty field.
func ByRecommendedDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecommendedDifficulty, opts...).ToFunc()
}

// ByLastAnalyzed orders the results by the last_analyzed field.
func ByLastAnalyzed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAnalyzed, opts...).ToFunc()
}
