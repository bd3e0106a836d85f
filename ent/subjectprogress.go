// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/tutorly/ent/subjectprogress"
)

// SubjectProgress is the model entity for the SubjectProgress schema.
type SubjectProgress struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// Aggregate score in [0,100]
	OverallScore float64 `json:"overall_score,omitempty"`
	// Per-topic scores in [0,100]
	TopicScores map[string]float64 `json:"topic_scores,omitempty"`
	// WeakAreas holds the value of the "weak_areas" field.
	WeakAreas []string `json:"weak_areas,omitempty"`
	// StrongAreas holds the value of the "strong_areas" field.
	StrongAreas []string `json:"strong_areas,omitempty"`
	// StreakDays holds the value of the "streak_days" field.
	StreakDays int `json:"streak_days,omitempty"`
	// Lifetime practice minutes
	TotalPracticeTime int `json:"total_practice_time,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SubjectProgress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case subjectprogress.FieldTopicScores, subjectprogress.FieldWeakAreas, subjectprogress.FieldStrongAreas:
			values[i] = new([]byte)
		case subjectprogress.FieldOverallScore:
			values[i] = new(sql.NullFloat64)
		case subjectprogress.FieldID, subjectprogress.FieldStreakDays, subjectprogress.FieldTotalPracticeTime:
			values[i] = new(sql.NullInt64)
		case subjectprogress.FieldUserID, subjectprogress.FieldSubject:
			values[i] = new(sql.NullString)
		case subjectprogress.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SubjectProgress fields.
func (_m *SubjectProgress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case subjectprogress.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case subjectprogress.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case subjectprogress.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case subjectprogress.FieldOverallScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field overall_score", values[i])
			} else if value.Valid {
				_m.OverallScore = value.Float64
			}
		case subjectprogress.FieldTopicScores:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field topic_scores", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TopicScores); err != nil {
					return fmt.Errorf("unmarshal field topic_scores: %w", err)
				}
			}
		case subjectprogress.FieldWeakAreas:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field weak_areas", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.WeakAreas); err != nil {
					return fmt.Errorf("unmarshal field weak_areas: %w", err)
				}
			}
		case subjectprogress.FieldStrongAreas:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field strong_areas", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StrongAreas); err != nil {
					return fmt.Errorf("unmarshal field strong_areas: %w", err)
				}
			}
		case subjectprogress.FieldStreakDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field streak_days", values[i])
			} else if value.Valid {
				_m.StreakDays = int(value.Int64)
			}
		case subjectprogress.FieldTotalPracticeTime:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_practice_time", values[i])
			} else if value.Valid {
				_m.TotalPracticeTime = int(value.Int64)
			}
		case subjectprogress.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SubjectProgress.
// This includes values selected through modifiers, order, etc.
func (_m *SubjectProgress) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SubjectProgress.
// Note that you need to call SubjectProgress.Unwrap() before calling this method if this SubjectProgress
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SubjectProgress) Update() *SubjectProgressUpdateOne {
	return NewSubjectProgressClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SubjectProgress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SubjectProgress) Unwrap() *SubjectProgress {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SubjectProgress is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SubjectProgress) String() string {
	var builder strings.Builder
	builder.WriteString("SubjectProgress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("overall_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.OverallScore))
	builder.WriteString(", ")
	builder.WriteString("topic_scores=")
	builder.WriteString(fmt.Sprintf("%v", _m.TopicScores))
	builder.WriteString(", ")
	builder.WriteString("weak_areas=")
	builder.WriteString(fmt.Sprintf("%v", _m.WeakAreas))
	builder.WriteString(", ")
	builder.WriteString("strong_areas=")
	builder.WriteString(fmt.Sprintf("%v", _m.StrongAreas))
	builder.WriteString(", ")
	builder.WriteString("streak_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.StreakDays))
	builder.WriteString(", ")
	builder.WriteString("total_practice_time=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalPracticeTime))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SubjectProgresses is a parsable slice of SubjectProgress.
type SubjectProgresses []*SubjectProgress
