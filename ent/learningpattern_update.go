// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/tutorly/ent/learningpattern"
	"github.com/abhisek/tutorly/ent/predicate"
)

// LearningPatternUpdate is the builder for updating LearningPattern entities.
type LearningPatternUpdate struct {
	config
	hooks    []Hook
	mutation *LearningPatternMutation
}

// Where appends a list predicates to the LearningPatternUpdate builder.
func (_u *LearningPatternUpdate) Where(ps ...predicate.LearningPattern) *LearningPatternUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *LearningPatternUpdate) SetUserID(v string) *LearningPatternUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LearningPatternUpdate) SetNillableUserID(v *string) *LearningPatternUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *LearningPatternUpdate) SetSubject(v string) *LearningPatternUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *LearningPatternUpdate) SetNillableSubject(v *string) *LearningPatternUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetStyle sets the "style" field.
func (_u *LearningPatternUpdate) SetStyle(v string) *LearningPatternUpdate {
	_u.mutation.SetStyle(v)
	return _u
}

// SetNillableStyle sets the "style" field if the given value is not nil.
func (_u *LearningPatternUpdate) SetNillableStyle(v *string) *LearningPatternUpdate {
	if v != nil {
		_u.SetStyle(*v)
	}
	return _u
}

// SetPreferredHintType sets the "preferred_hint_type" field.
func (_u *LearningPatternUpdate) SetPreferredHintType(v string) *LearningPatternUpdate {
	_u.mutation.SetPreferredHintType(v)
	return _u
}

// SetNillablePreferredHintType sets the "preferred_hint_type" field if the given value is not nil.
func (_u *LearningPatternUpdate) SetNillablePreferredHintType(v *string) *LearningPatternUpdate {
	if v != nil {
		_u.SetPreferredHintType(*v)
	}
	return _u
}

// SetAttentionSpan sets the "attention_span" field.
func (_u *LearningPatternUpdate) SetAttentionSpan(v string) *LearningPatternUpdate {
	_u.mutation.SetAttentionSpan(v)
	return _u
}

// SetNillableAttentionSpan sets the "attention_span" field if the given value is not nil.
func (_u *LearningPatternUpdate) SetNillableAttentionSpan(v *string) *LearningPatternUpdate {
	if v != nil {
		_u.SetAttentionSpan(*v)
	}
	return _u
}

// SetErrorPatterns sets the "error_patterns" field.
func (_u *LearningPatternUpdate) SetErrorPatterns(v []string) *LearningPatternUpdate {
	_u.mutation.SetErrorPatterns(v)
	return _u
}

// AppendErrorPatterns appends value to the "error_patterns" field.
func (_u *LearningPatternUpdate) AppendErrorPatterns(v []string) *LearningPatternUpdate {
	_u.mutation.AppendErrorPatterns(v)
	return _u
}

// ClearErrorPatterns clears the value of the "error_patterns" field.
func (_u *LearningPatternUpdate) ClearErrorPatterns() *LearningPatternUpdate {
	_u.mutation.ClearErrorPatterns()
	return _u
}

// SetMasteryLevels sets the "mastery_levels" field.
func (_u *LearningPatternUpdate) SetMasteryLevels(v map[string]float64) *LearningPatternUpdate {
	_u.mutation.SetMasteryLevels(v)
	return _u
}

// ClearMasteryLevels clears the value of the "mastery_levels" field.
func (_u *LearningPatternUpdate) ClearMasteryLevels() *LearningPatternUpdate {
	_u.mutation.ClearMasteryLevels()
	return _u
}

// SetImprovementRate sets the "improvement_rate" field.
func (_u *LearningPatternUpdate) SetImprovementRate(v float64) *LearningPatternUpdate {
	_u.mutation.ResetImprovementRate()
	_u.mutation.SetImprovementRate(v)
	return _u
}

// SetNillableImprovementRate sets the "improvement_rate" field if the given value is not nil.
func (_u *LearningPatternUpdate) SetNillableImprovementRate(v *float64) *LearningPatternUpdate {
	if v != nil {
		_u.SetImprovementRate(*v)
	}
	return _u
}

// AddImprovementRate adds value to the "improvement_rate" field.
func (_u *LearningPatternUpdate) AddImprovementRate(v float64) *LearningPatternUpdate {
	_u.mutation.AddImprovementRate(v)
	return _u
}

// SetStrugglingAreas sets the "struggling_areas" field.
func (_u *LearningPatternUpdate) SetStrugglingAreas(v []string) *LearningPatternUpdate {
	_u.mutation.SetStrugglingAreas(v)
	return _u
}

// AppendStrugglingAreas appends value to the "struggling_areas" field.
func (_u *LearningPatternUpdate) AppendStrugglingAreas(v []string) *LearningPatternUpdate {
	_u.mutation.AppendStrugglingAreas(v)
	return _u
}

// ClearStrugglingAreas clears the value of the "struggling_areas" field.
func (_u *LearningPatternUpdate) ClearStrugglingAreas() *LearningPatternUpdate {
	_u.mutation.ClearStrugglingAreas()
	return _u
}

// SetImprovingAreas sets the "improving_areas" field.
func (_u *LearningPatternUpdate) SetImprovingAreas(v []string) *LearningPatternUpdate {
	_u.mutation.SetImprovingAreas(v)
	return _u
}

// AppendImprovingAreas appends value to the "improving_areas" field.
func (_u *LearningPatternUpdate) AppendImprovingAreas(v []string) *LearningPatternUpdate {
	_u.mutation.AppendImprovingAreas(v)
	return _u
}

// ClearImprovingAreas clears the value of the "improving_areas" field.
func (_u *LearningPatternUpdate) ClearImprovingAreas() *LearningPatternUpdate {
	_u.mutation.ClearImprovingAreas()
	return _u
}

// SetRecommendedDifficulty sets the "recommended_difficulty" field.
func (_u *LearningPatternUpdate) SetRecommendedDifficulty(v float64) *LearningPatternUpdate {
	_u.mutation.ResetRecommendedDifficulty()
	_u.mutation.SetRecommendedDifficulty(v)
	return _u
}

// SetNillableRecommendedDifficulty sets the "recommended_difficulty" field if the given value is not nil.
func (_u *LearningPatternUpdate) SetNillableRecommendedDifficulty(v *float64) *LearningPatternUpdate {
	if v != nil {
		_u.SetRecommendedDifficulty(*v)
	}
	return _u
}

// AddRecommendedDifficulty adds value to the "recommended_difficulty" field.
func (_u *LearningPatternUpdate) AddRecommendedDifficulty(v float64) *LearningPatternUpdate {
	_u.mutation.AddRecommendedDifficulty(v)
	return _u
}

// SetLastAnalyzed sets the "last_analyzed" field.
func (_u *LearningPatternUpdate) SetLastAnalyzed(v time.Time) *LearningPatternUpdate {
	_u.mutation.SetLastAnalyzed(v)
	return _u
}

// Mutation returns the LearningPatternMutation object of the builder.
func (_u *LearningPatternUpdate) Mutation() *LearningPatternMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearningPatternUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningPatternUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearningPatternUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningPatternUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LearningPatternUpdate) defaults() {
	if _, ok := _u.mutation.LastAnalyzed(); !ok {
		v := learningpattern.UpdateDefaultLastAnalyzed()
		_u.mutation.SetLastAnalyzed(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningPatternUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := learningpattern.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LearningPattern.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := learningpattern.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "LearningPattern.subject": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningPatternUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningpattern.Table, learningpattern.Columns, sqlgraph.NewFieldSpec(learningpattern.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(learningpattern.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(learningpattern.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Style(); ok {
		_spec.SetField(learningpattern.FieldStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.PreferredHintType(); ok {
		_spec.SetField(learningpattern.FieldPreferredHintType, field.TypeString, value)
	}
	if value, ok := _u.mutation.AttentionSpan(); ok {
		_spec.SetField(learningpattern.FieldAttentionSpan, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorPatterns(); ok {
		_spec.SetField(learningpattern.FieldErrorPatterns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedErrorPatterns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningpattern.FieldErrorPatterns, value)
		})
	}
	if _u.mutation.ErrorPatternsCleared() {
		_spec.ClearField(learningpattern.FieldErrorPatterns, field.TypeJSON)
	}
	if value, ok := _u.mutation.MasteryLevels(); ok {
		_spec.SetField(learningpattern.FieldMasteryLevels, field.TypeJSON, value)
	}
	if _u.mutation.MasteryLevelsCleared() {
		_spec.ClearField(learningpattern.FieldMasteryLevels, field.TypeJSON)
	}
	if value, ok := _u.mutation.ImprovementRate(); ok {
		_spec.SetField(learningpattern.FieldImprovementRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedImprovementRate(); ok {
		_spec.AddField(learningpattern.FieldImprovementRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StrugglingAreas(); ok {
		_spec.SetField(learningpattern.FieldStrugglingAreas, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStrugglingAreas(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningpattern.FieldStrugglingAreas, value)
		})
	}
	if _u.mutation.StrugglingAreasCleared() {
		_spec.ClearField(learningpattern.FieldStrugglingAreas, field.TypeJSON)
	}
	if value, ok := _u.mutation.ImprovingAreas(); ok {
		_spec.SetField(learningpattern.FieldImprovingAreas, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedImprovingAreas(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningpattern.FieldImprovingAreas, value)
		})
	}
	if _u.mutation.ImprovingAreasCleared() {
		_spec.ClearField(learningpattern.FieldImprovingAreas, field.TypeJSON)
	}
	if value, ok := _u.mutation.RecommendedDifficulty(); ok {
		_spec.SetField(learningpattern.FieldRecommendedDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRecommendedDifficulty(); ok {
		_spec.AddField(learningpattern.FieldRecommendedDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastAnalyzed(); ok {
		_spec.SetField(learningpattern.FieldLastAnalyzed, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningpattern.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearningPatternUpdateOne is the builder for updating a single LearningPattern entity.
type LearningPatternUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearningPatternMutation
}

// SetUserID sets the "user_id" field.
func (_u *LearningPatternUpdateOne) SetUserID(v string) *LearningPatternUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LearningPatternUpdateOne) SetNillableUserID(v *string) *LearningPatternUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *LearningPatternUpdateOne) SetSubject(v string) *LearningPatternUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *LearningPatternUpdateOne) SetNillableSubject(v *string) *LearningPatternUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetStyle sets the "style" field.
func (_u *LearningPatternUpdateOne) SetStyle(v string) *LearningPatternUpdateOne {
	_u.mutation.SetStyle(v)
	return _u
}

// SetNillableStyle sets the "style" field if the given value is not nil.
func (_u *LearningPatternUpdateOne) SetNillableStyle(v *string) *LearningPatternUpdateOne {
	if v != nil {
		_u.SetStyle(*v)
	}
	return _u
}

// SetPreferredHintType sets the "preferred_hint_type" field.
func (_u *LearningPatternUpdateOne) SetPreferredHintType(v string) *LearningPatternUpdateOne {
	_u.mutation.SetPreferredHintType(v)
	return _u
}

// SetNillablePreferredHintType sets the "preferred_hint_type" field if the given value is not nil.
func (_u *LearningPatternUpdateOne) SetNillablePreferredHintType(v *string) *LearningPatternUpdateOne {
	if v != nil {
		_u.SetPreferredHintType(*v)
	}
	return _u
}

// SetAttentionSpan sets the "attention_span" field.
func (_u *LearningPatternUpdateOne) SetAttentionSpan(v string) *LearningPatternUpdateOne {
	_u.mutation.SetAttentionSpan(v)
	return _u
}

// SetNillableAttentionSpan sets the "attention_span" field if the given value is not nil.
func (_u *LearningPatternUpdateOne) SetNillableAttentionSpan(v *string) *LearningPatternUpdateOne {
	if v != nil {
		_u.SetAttentionSpan(*v)
	}
	return _u
}

// SetErrorPatterns sets the "error_patterns" field.
func (_u *LearningPatternUpdateOne) SetErrorPatterns(v []string) *LearningPatternUpdateOne {
	_u.mutation.SetErrorPatterns(v)
	return _u
}

// AppendErrorPatterns appends value to the "error_patterns" field.
func (_u *LearningPatternUpdateOne) AppendErrorPatterns(v []string) *LearningPatternUpdateOne {
	_u.mutation.AppendErrorPatterns(v)
	return _u
}

// ClearErrorPatterns clears the value of the "error_patterns" field.
func (_u *LearningPatternUpdateOne) ClearErrorPatterns() *LearningPatternUpdateOne {
	_u.mutation.ClearErrorPatterns()
	return _u
}

// SetMasteryLevels sets the "mastery_levels" field.
func (_u *LearningPatternUpdateOne) SetMasteryLevels(v map[string]float64) *LearningPatternUpdateOne {
	_u.mutation.SetMasteryLevels(v)
	return _u
}

// ClearMasteryLevels clears the value of the "mastery_levels" field.
func (_u *LearningPatternUpdateOne) ClearMasteryLevels() *LearningPatternUpdateOne {
	_u.mutation.ClearMasteryLevels()
	return _u
}

// SetImprovementRate sets the "improvement_rate" field.
func (_u *LearningPatternUpdateOne) SetImprovementRate(v float64) *LearningPatternUpdateOne {
	_u.mutation.ResetImprovementRate()
	_u.mutation.SetImprovementRate(v)
	return _u
}

// SetNillableImprovementRate sets the "improvement_rate" field if the given value is not nil.
func (_u *LearningPatternUpdateOne) SetNillableImprovementRate(v *float64) *LearningPatternUpdateOne {
	if v != nil {
		_u.SetImprovementRate(*v)
	}
	return _u
}

// AddImprovementRate adds value to the "improvement_rate" field.
func (_u *LearningPatternUpdateOne) AddImprovementRate(v float64) *LearningPatternUpdateOne {
	_u.mutation.AddImprovementRate(v)
	return _u
}

// SetStrugglingAreas sets the "struggling_areas" field.
func (_u *LearningPatternUpdateOne) SetStrugglingAreas(v []string) *LearningPatternUpdateOne {
	_u.mutation.SetStrugglingAreas(v)
	return _u
}

// AppendStrugglingAreas appends value to the "struggling_areas" field.
func (_u *LearningPatternUpdateOne) AppendStrugglingAreas(v []string) *LearningPatternUpdateOne {
	_u.mutation.AppendStrugglingAreas(v)
	return _u
}

// ClearStrugglingAreas clears the value of the "struggling_areas" field.
func (_u *LearningPatternUpdateOne) ClearStrugglingAreas() *LearningPatternUpdateOne {
	_u.mutation.ClearStrugglingAreas()
	return _u
}

// SetImprovingAreas sets the "improving_areas" field.
func (_u *LearningPatternUpdateOne) SetImprovingAreas(v []string) *LearningPatternUpdateOne {
	_u.mutation.SetImprovingAreas(v)
	return _u
}

// AppendImprovingAreas appends value to the "improving_areas" field.
func (_u *LearningPatternUpdateOne) AppendImprovingAreas(v []string) *LearningPatternUpdateOne {
	_u.mutation.AppendImprovingAreas(v)
	return _u
}

// ClearImprovingAreas clears the value of the "improving_areas" field.
func (_u *LearningPatternUpdateOne) ClearImprovingAreas() *LearningPatternUpdateOne {
	_u.mutation.ClearImprovingAreas()
	return _u
}

// SetRecommendedDifficulty sets the "recommended_difficulty" field.
func (_u *LearningPatternUpdateOne) SetRecommendedDifficulty(v float64) *LearningPatternUpdateOne {
	_u.mutation.ResetRecommendedDifficulty()
	_u.mutation.SetRecommendedDifficulty(v)
	return _u
}

// SetNillableRecommendedDifficulty sets the "recommended_difficulty" field if the given value is not nil.
func (_u *LearningPatternUpdateOne) SetNillableRecommendedDifficulty(v *float64) *LearningPatternUpdateOne {
	if v != nil {
		_u.SetRecommendedDifficulty(*v)
	}
	return _u
}

// AddRecommendedDifficulty adds value to the "recommended_difficulty" field.
func (_u *LearningPatternUpdateOne) AddRecommendedDifficulty(v float64) *LearningPatternUpdateOne {
	_u.mutation.AddRecommendedDifficulty(v)
	return _u
}

// SetLastAnalyzed sets the "last_analyzed" field.
func (_u *LearningPatternUpdateOne) SetLastAnalyzed(v time.Time) *LearningPatternUpdateOne {
	_u.mutation.SetLastAnalyzed(v)
	return _u
}

// Mutation returns the LearningPatternMutation object of the builder.
func (_u *LearningPatternUpdateOne) Mutation() *LearningPatternMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearningPatternUpdate builder.
func (_u *LearningPatternUpdateOne) Where(ps ...predicate.LearningPattern) *LearningPatternUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearningPatternUpdateOne) Select(field string, fields ...string) *LearningPatternUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearningPattern entity.
func (_u *LearningPatternUpdateOne) Save(ctx context.Context) (*LearningPattern, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningPatternUpdateOne) SaveX(ctx context.Context) *LearningPattern {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearningPatternUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningPatternUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LearningPatternUpdateOne) defaults() {
	if _, ok := _u.mutation.LastAnalyzed(); !ok {
		v := learningpattern.UpdateDefaultLastAnalyzed()
		_u.mutation.SetLastAnalyzed(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningPatternUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := learningpattern.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LearningPattern.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := learningpattern.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "LearningPattern.subject": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningPatternUpdateOne) sqlSave(ctx context.Context) (_node *LearningPattern, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningpattern.Table, learningpattern.Columns, sqlgraph.NewFieldSpec(learningpattern.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearningPattern.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learningpattern.FieldID)
		for _, f := range fields {
			if !learningpattern.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learningpattern.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(learningpattern.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(learningpattern.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Style(); ok {
		_spec.SetField(learningpattern.FieldStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.PreferredHintType(); ok {
		_spec.SetField(learningpattern.FieldPreferredHintType, field.TypeString, value)
	}
	if value, ok := _u.mutation.AttentionSpan(); ok {
		_spec.SetField(learningpattern.FieldAttentionSpan, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorPatterns(); ok {
		_spec.SetField(learningpattern.FieldErrorPatterns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedErrorPatterns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningpattern.FieldErrorPatterns, value)
		})
	}
	if _u.mutation.ErrorPatternsCleared() {
		_spec.ClearField(learningpattern.FieldErrorPatterns, field.TypeJSON)
	}
	if value, ok := _u.mutation.MasteryLevels(); ok {
		_spec.SetField(learningpattern.FieldMasteryLevels, field.TypeJSON, value)
	}
	if _u.mutation.MasteryLevelsCleared() {
		_spec.ClearField(learningpattern.FieldMasteryLevels, field.TypeJSON)
	}
	if value, ok := _u.mutation.ImprovementRate(); ok {
		_spec.SetField(learningpattern.FieldImprovementRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedImprovementRate(); ok {
		_spec.AddField(learningpattern.FieldImprovementRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StrugglingAreas(); ok {
		_spec.SetField(learningpattern.FieldStrugglingAreas, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStrugglingAreas(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningpattern.FieldStrugglingAreas, value)
		})
	}
	if _u.mutation.StrugglingAreasCleared() {
		_spec.ClearField(learningpattern.FieldStrugglingAreas, field.TypeJSON)
	}
	if value, ok := _u.mutation.ImprovingAreas(); ok {
		_spec.SetField(learningpattern.FieldImprovingAreas, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedImprovingAreas(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningpattern.FieldImprovingAreas, value)
		})
	}
	if _u.mutation.ImprovingAreasCleared() {
		_spec.ClearField(learningpattern.FieldImprovingAreas, field.TypeJSON)
	}
	if value, ok := _u.mutation.RecommendedDifficulty(); ok {
		_spec.SetField(learningpattern.FieldRecommendedDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRecommendedDifficulty(); ok {
		_spec.AddField(learningpattern.FieldRecommendedDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastAnalyzed(); ok {
		_spec.SetField(learningpattern.FieldLastAnalyzed, field.TypeTime, value)
	}
	_node = &LearningPattern{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningpattern.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
