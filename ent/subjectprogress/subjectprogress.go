// Code generated by ent, DO NOT EDIT.

package subjectprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the subjectprogress type in the database.
	Label = "subject_progress"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldOverallScore holds the string denoting the overall_score field in the database.
	FieldOverallScore = "overall_score"
	// FieldTopicScores holds the string denoting the topic_scores field in the database.
	FieldTopicScores = "topic_scores"
	// FieldWeakAreas holds the string denoting the weak_areas field in the database.
	FieldWeakAreas = "weak_areas"
	// FieldStrongAreas holds the string denoting the strong_areas field in the database.
	FieldStrongAreas = "strong_areas"
	// FieldStreakDays holds the string denoting the streak_days field in the database.
	FieldStreakDays = "streak_days"
	// FieldTotalPracticeTime holds the string denoting the total_practice_time field in the database.
	FieldTotalPracticeTime = "total_practice_time"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the subjectprogress in the database.
	Table = "subject_progresses"
)

// Columns holds all SQL columns for subjectprogress fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldSubject,
	FieldOverallScore,
	FieldTopicScores,
	FieldWeakAreas,
	FieldStrongAreas,
	FieldStreakDays,
	FieldTotalPracticeTime,
	FieldUpdatedAt,
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
	// DefaultOverallScore holds the default value on creation for the "overall_score" field.
	DefaultOverallScore float64
	// DefaultStreakDays holds the default value on creation for the "streak_days" field.
	DefaultStreakDays int
	// DefaultTotalPracticeTime holds the default value on creation for the "total_practice_time" field.
	DefaultTotalPracticeTime int
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the SubjectProgress queries.
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

// ByOverallScore orders the results by the overall_score field.
func ByOverallScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverallScore, opts...).ToFunc()
}

// ByStreakDays orders the results by the streak_days field.
func ByStreakDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreakDays, opts...).ToFunc()
}

// ByTotalPracticeTime orders the results by the total_practice_time field.
func ByTotalPracticeTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalPracticeTime, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
