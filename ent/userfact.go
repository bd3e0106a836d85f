// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/tutorly/ent/userfact"
)

// UserFact is the model entity for the UserFact schema.
type UserFact struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// 0 means unknown
	GradeLevel int `json:"grade_level,omitempty"`
	// ExamDate holds the value of the "exam_date" field.
	ExamDate *time.Time `json:"exam_date,omitempty"`
	// Opaque preference map owned by the settings UI
	Preferences  map[string]interface{} `json:"preferences,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserFact) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case userfact.FieldPreferences:
			values[i] = new([]byte)
		case userfact.FieldID, userfact.FieldGradeLevel:
			values[i] = new(sql.NullInt64)
		case userfact.FieldUserID:
			values[i] = new(sql.NullString)
		case userfact.FieldExamDate:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserFact fields.
func (_m *UserFact) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case userfact.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case userfact.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case userfact.FieldGradeLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field grade_level", values[i])
			} else if value.Valid {
				_m.GradeLevel = int(value.Int64)
			}
		case userfact.FieldExamDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field exam_date", values[i])
			} else if value.Valid {
				_m.ExamDate = new(time.Time)
				*_m.ExamDate = value.Time
			}
		case userfact.FieldPreferences:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field preferences", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Preferences); err != nil {
					return fmt.Errorf("unmarshal field preferences: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UserFact.
// This includes values selected through modifiers, order, etc.
func (_m *UserFact) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UserFact.
// Note that you need to call UserFact.Unwrap() before calling this method if this UserFact
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UserFact) Update() *UserFactUpdateOne {
	return NewUserFactClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UserFact entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UserFact) Unwrap() *UserFact {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserFact is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UserFact) String() string {
	var builder strings.Builder
	builder.WriteString("UserFact(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("grade_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.GradeLevel))
	builder.WriteString(", ")
	if v := _m.ExamDate; v != nil {
		builder.WriteString("exam_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("preferences=")
	builder.WriteString(fmt.Sprintf("%v", _m.Preferences))
	builder.WriteByte(')')
	return builder.String()
}

// UserFacts is a parsable slice of UserFact.
type UserFacts []*UserFact
