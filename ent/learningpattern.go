// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/tutorly/ent/learningpattern"
)

// LearningPattern is the model entity for the LearningPattern schema.
type LearningPattern struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// visual, analytical, trial_and_error, or mixed
	Style string `json:"style,omitempty"`
	// conceptual, procedural, or example_based
	PreferredHintType string `json:"preferred_hint_type,omitempty"`
	// short, medium, or long
	AttentionSpan string `json:"attention_span,omitempty"`
	// ErrorPatterns holds the value of the "error_patterns" field.
	ErrorPatterns []string `json:"error_patterns,omitempty"`
	// Per-topic mastery in [0,1]
	MasteryLevels map[string]float64 `json:"mastery_levels,omitempty"`
	// ImprovementRate holds the value of the "improvement_rate" field.
	ImprovementRate float64 `json:"improvement_rate,omitempty"`
	// StrugglingAreas holds the value of the "struggling_areas" field.
	StrugglingAreas []string `json:"struggling_areas,omitempty"`
	// ImprovingAreas holds the value of the "improving_areas" field.
	ImprovingAreas []string `json:"improving_areas,omitempty"`
	// In [1,10], multiples of 0.5
	RecommendedDifficulty float64 `json:"recommended_difficulty,omitempty"`
	// LastAnalyzed holds the value of the "last_analyzed" field.
	LastAnalyzed time.Time `json:"last_analyzed,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LearningPattern) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case learningpattern.FieldErrorPatterns, learningpattern.FieldMasteryLevels, learningpattern.FieldStrugglingAreas, learningpattern.FieldImprovingAreas:
			values[i] = new([]byte)
		case learningpattern.FieldImprovementRate, learningpattern.FieldRecommendedDifficulty:
			values[i] = new(sql.NullFloat64)
		case learningpattern.FieldID:
			values[i] = new(sql.NullInt64)
		case learningpattern.FieldUserID, learningpattern.FieldSubject, learningpattern.FieldStyle, learningpattern.FieldPreferredHintType, learningpattern.FieldAttentionSpan:
			values[i] = new(sql.NullString)
		case learningpattern.FieldLastAnalyzed:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LearningPattern fields.
func (_m *LearningPattern) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case learningpattern.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case learningpattern.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case learningpattern.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case learningpattern.FieldStyle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field style", values[i])
			} else if value.Valid {
				_m.Style = value.String
			}
		case learningpattern.FieldPreferredHintType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field preferred_hint_type", values[i])
			} else if value.Valid {
				_m.PreferredHintType = value.String
			}
		case learningpattern.FieldAttentionSpan:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field attention_span", values[i])
			} else if value.Valid {
				_m.AttentionSpan = value.String
			}
		case learningpattern.FieldErrorPatterns:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field error_patterns", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ErrorPatterns); err != nil {
					return fmt.Errorf("unmarshal field error_patterns: %w", err)
				}
			}
		case learningpattern.FieldMasteryLevels:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_levels", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MasteryLevels); err != nil {
					return fmt.Errorf("unmarshal field mastery_levels: %w", err)
				}
			}
		case learningpattern.FieldImprovementRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field improvement_rate", values[i])
			} else if value.Valid {
				_m.ImprovementRate = value.Float64
			}
		case learningpattern.FieldStrugglingAreas:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field struggling_areas", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StrugglingAreas); err != nil {
					return fmt.Errorf("unmarshal field struggling_areas: %w", err)
				}
			}
		case learningpattern.FieldImprovingAreas:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field improving_areas", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ImprovingAreas); err != nil {
					return fmt.Errorf("unmarshal field improving_areas: %w", err)
				}
			}
		case learningpattern.FieldRecommendedDifficulty:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field recommended_difficulty", values[i])
			} else if value.Valid {
				_m.RecommendedDifficulty = value.Float64
			}
		case learningpattern.FieldLastAnalyzed:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_analyzed", values[i])
			} else if value.Valid {
				_m.LastAnalyzed = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LearningPattern.
// This includes values selected through modifiers, order, etc.
func (_m *LearningPattern) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LearningPattern.
// Note that you need to call LearningPattern.Unwrap() before calling this method if this LearningPattern
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LearningPattern) Update() *LearningPatternUpdateOne {
	return NewLearningPatternClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LearningPattern entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LearningPattern) Unwrap() *LearningPattern {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LearningPattern is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LearningPattern) String() string {
	var builder strings.Builder
	builder.WriteString("LearningPattern(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("style=")
	builder.WriteString(_m.Style)
	builder.WriteString(", ")
	builder.WriteString("preferred_hint_type=")
	builder.WriteString(_m.PreferredHintType)
	builder.WriteString(", ")
	builder.WriteString("attention_span=")
	builder.WriteString(_m.AttentionSpan)
	builder.WriteString(", ")
	builder.WriteString("error_patterns=")
	builder.WriteString(fmt.Sprintf("%v", _m.ErrorPatterns))
	builder.WriteString(", ")
	builder.WriteString("mastery_levels=")
	builder.WriteString(fmt.Sprintf("%v", _m.MasteryLevels))
	builder.WriteString(", ")
	builder.WriteString("improvement_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.ImprovementRate))
	builder.WriteString(", ")
	builder.WriteString("struggling_areas=")
	builder.WriteString(fmt.Sprintf("%v", _m.StrugglingAreas))
	builder.WriteString(", ")
	builder.WriteString("improving_areas=")
	builder.WriteString(fmt.Sprintf("%v", _m.ImprovingAreas))
	builder.WriteString(", ")
	builder.WriteString("recommended_difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecommendedDifficulty))
	builder.WriteString(", ")
	builder.WriteString("last_analyzed=")
	builder.WriteString(_m.LastAnalyzed.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LearningPatterns is a parsable slice of LearningPattern.
type LearningPatterns []*LearningPattern
