// Code generated by ent, DO NOT EDIT.

package userfact

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the userfact type in the database.
	Label = "user_fact"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldGradeLevel holds the string denoting the grade_level field in the database.
	FieldGradeLevel = "grade_level"
	// FieldExamDate holds the string denoting the exam_date field in the database.
	FieldExamDate = "exam_date"
	// FieldPreferences holds the string denoting the preferences field in the database.
	FieldPreferences = "preferences"
	// Table holds the table name of the userfact in the database.
	Table = "user_facts"
)

// Columns holds all SQL columns for userfact fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldGradeLevel,
	FieldExamDate,
	FieldPreferences,
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
	// DefaultGradeLevel holds the default value on creation for the "grade_level" field.
	DefaultGradeLevel int
)

// OrderOption defines the ordering options for the UserFact queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByGradeLevel orders the results by the grade_level field.
func ByGradeLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGradeLevel, opts...).ToFunc()
}

// ByExamDate orders the results by the exam_date field.
func ByExamDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExamDate, opts...).ToFunc()
}
