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
	"github.com/abhisek/tutorly/ent/predicate"
	"github.com/abhisek/tutorly/ent/subjectprogress"
)

// SubjectProgressUpdate is the builder for updating SubjectProgress entities.
type SubjectProgressUpdate struct {
	config
	hooks    []Hook
	mutation *SubjectProgressMutation
}

// Where appends a list predicates to the SubjectProgressUpdate builder.
func (_u *SubjectProgressUpdate) Where(ps ...predicate.SubjectProgress) *SubjectProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SubjectProgressUpdate) SetUserID(v string) *SubjectProgressUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SubjectProgressUpdate) SetNillableUserID(v *string) *SubjectProgressUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *SubjectProgressUpdate) SetSubject(v string) *SubjectProgressUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *SubjectProgressUpdate) SetNillableSubject(v *string) *SubjectProgressUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetOverallScore sets the "overall_score" field.
func (_u *SubjectProgressUpdate) SetOverallScore(v float64) *SubjectProgressUpdate {
	_u.mutation.ResetOverallScore()
	_u.mutation.SetOverallScore(v)
	return _u
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_u *SubjectProgressUpdate) SetNillableOverallScore(v *float64) *SubjectProgressUpdate {
	if v != nil {
		_u.SetOverallScore(*v)
	}
	return _u
}

// AddOverallScore adds value to the "overall_score" field.
func (_u *SubjectProgressUpdate) AddOverallScore(v float64) *SubjectProgressUpdate {
	_u.mutation.AddOverallScore(v)
	return _u
}

// SetTopicScores sets the "topic_scores" field.
func (_u *SubjectProgressUpdate) SetTopicScores(v map[string]float64) *SubjectProgressUpdate {
	_u.mutation.SetTopicScores(v)
	return _u
}

// ClearTopicScores clears the value of the "topic_scores" field.
func (_u *SubjectProgressUpdate) ClearTopicScores() *SubjectProgressUpdate {
	_u.mutation.ClearTopicScores()
	return _u
}

// SetWeakAreas sets the "weak_areas" field.
func (_u *SubjectProgressUpdate) SetWeakAreas(v []string) *SubjectProgressUpdate {
	_u.mutation.SetWeakAreas(v)
	return _u
}

// AppendWeakAreas appends value to the "weak_areas" field.
func (_u *SubjectProgressUpdate) AppendWeakAreas(v []string) *SubjectProgressUpdate {
	_u.mutation.AppendWeakAreas(v)
	return _u
}

// ClearWeakAreas clears the value of the "weak_areas" field.
func (_u *SubjectProgressUpdate) ClearWeakAreas() *SubjectProgressUpdate {
	_u.mutation.ClearWeakAreas()
	return _u
}

// SetStrongAreas sets the "strong_areas" field.
func (_u *SubjectProgressUpdate) SetStrongAreas(v []string) *SubjectProgressUpdate {
	_u.mutation.SetStrongAreas(v)
	return _u
}

// AppendStrongAreas appends value to the "strong_areas" field.
func (_u *SubjectProgressUpdate) AppendStrongAreas(v []string) *SubjectProgressUpdate {
	_u.mutation.AppendStrongAreas(v)
	return _u
}

// ClearStrongAreas clears the value of the "strong_areas" field.
func (_u *SubjectProgressUpdate) ClearStrongAreas() *SubjectProgressUpdate {
	_u.mutation.ClearStrongAreas()
	return _u
}

// SetStreakDays sets the "streak_days" field.
func (_u *SubjectProgressUpdate) SetStreakDays(v int) *SubjectProgressUpdate {
	_u.mutation.ResetStreakDays()
	_u.mutation.SetStreakDays(v)
	return _u
}

// SetNillableStreakDays sets the "streak_days" field if the given value is not nil.
func (_u *SubjectProgressUpdate) SetNillableStreakDays(v *int) *SubjectProgressUpdate {
	if v != nil {
		_u.SetStreakDays(*v)
	}
	return _u
}

// AddStreakDays adds value to the "streak_days" field.
func (_u *SubjectProgressUpdate) AddStreakDays(v int) *SubjectProgressUpdate {
	_u.mutation.AddStreakDays(v)
	return _u
}

// SetTotalPracticeTime sets the "total_practice_time" field.
func (_u *SubjectProgressUpdate) SetTotalPracticeTime(v int) *SubjectProgressUpdate {
	_u.mutation.ResetTotalPracticeTime()
	_u.mutation.SetTotalPracticeTime(v)
	return _u
}

// SetNillableTotalPracticeTime sets the "total_practice_time" field if the given value is not nil.
func (_u *SubjectProgressUpdate) SetNillableTotalPracticeTime(v *int) *SubjectProgressUpdate {
	if v != nil {
		_u.SetTotalPracticeTime(*v)
	}
	return _u
}

// AddTotalPracticeTime adds value to the "total_practice_time" field.
func (_u *SubjectProgressUpdate) AddTotalPracticeTime(v int) *SubjectProgressUpdate {
	_u.mutation.AddTotalPracticeTime(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubjectProgressUpdate) SetUpdatedAt(v time.Time) *SubjectProgressUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SubjectProgressMutation object of the builder.
func (_u *SubjectProgressUpdate) Mutation() *SubjectProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubjectProgressUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubjectProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubjectProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubjectProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubjectProgressUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := subjectprogress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubjectProgressUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := subjectprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SubjectProgress.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := subjectprogress.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "SubjectProgress.subject": %w`, err)}
		}
	}
	return nil
}

func (_u *SubjectProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subjectprogress.Table, subjectprogress.Columns, sqlgraph.NewFieldSpec(subjectprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(subjectprogress.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(subjectprogress.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.OverallScore(); ok {
		_spec.SetField(subjectprogress.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallScore(); ok {
		_spec.AddField(subjectprogress.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TopicScores(); ok {
		_spec.SetField(subjectprogress.FieldTopicScores, field.TypeJSON, value)
	}
	if _u.mutation.TopicScoresCleared() {
		_spec.ClearField(subjectprogress.FieldTopicScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.WeakAreas(); ok {
		_spec.SetField(subjectprogress.FieldWeakAreas, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeakAreas(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, subjectprogress.FieldWeakAreas, value)
		})
	}
	if _u.mutation.WeakAreasCleared() {
		_spec.ClearField(subjectprogress.FieldWeakAreas, field.TypeJSON)
	}
	if value, ok := _u.mutation.StrongAreas(); ok {
		_spec.SetField(subjectprogress.FieldStrongAreas, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStrongAreas(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, subjectprogress.FieldStrongAreas, value)
		})
	}
	if _u.mutation.StrongAreasCleared() {
		_spec.ClearField(subjectprogress.FieldStrongAreas, field.TypeJSON)
	}
	if value, ok := _u.mutation.StreakDays(); ok {
		_spec.SetField(subjectprogress.FieldStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakDays(); ok {
		_spec.AddField(subjectprogress.FieldStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalPracticeTime(); ok {
		_spec.SetField(subjectprogress.FieldTotalPracticeTime, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPracticeTime(); ok {
		_spec.AddField(subjectprogress.FieldTotalPracticeTime, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(subjectprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subjectprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubjectProgressUpdateOne is the builder for updating a single SubjectProgress entity.
type SubjectProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubjectProgressMutation
}

// SetUserID sets the "user_id" field.
func (_u *SubjectProgressUpdateOne) SetUserID(v string) *SubjectProgressUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SubjectProgressUpdateOne) SetNillableUserID(v *string) *SubjectProgressUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *SubjectProgressUpdateOne) SetSubject(v string) *SubjectProgressUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *SubjectProgressUpdateOne) SetNillableSubject(v *string) *SubjectProgressUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetOverallScore sets the "overall_score" field.
func (_u *SubjectProgressUpdateOne) SetOverallScore(v float64) *SubjectProgressUpdateOne {
	_u.mutation.ResetOverallScore()
	_u.mutation.SetOverallScore(v)
	return _u
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_u *SubjectProgressUpdateOne) SetNillableOverallScore(v *float64) *SubjectProgressUpdateOne {
	if v != nil {
		_u.SetOverallScore(*v)
	}
	return _u
}

// AddOverallScore adds value to the "overall_score" field.
func (_u *SubjectProgressUpdateOne) AddOverallScore(v float64) *SubjectProgressUpdateOne {
	_u.mutation.AddOverallScore(v)
	return _u
}

// SetTopicScores sets the "topic_scores" field.
func (_u *SubjectProgressUpdateOne) SetTopicScores(v map[string]float64) *SubjectProgressUpdateOne {
	_u.mutation.SetTopicScores(v)
	return _u
}

// ClearTopicScores clears the value of the "topic_scores" field.
func (_u *SubjectProgressUpdateOne) ClearTopicScores() *SubjectProgressUpdateOne {
	_u.mutation.ClearTopicScores()
	return _u
}

// SetWeakAreas sets the "weak_areas" field.
func (_u *SubjectProgressUpdateOne) SetWeakAreas(v []string) *SubjectProgressUpdateOne {
	_u.mutation.SetWeakAreas(v)
	return _u
}

// AppendWeakAreas appends value to the "weak_areas" field.
func (_u *SubjectProgressUpdateOne) AppendWeakAreas(v []string) *SubjectProgressUpdateOne {
	_u.mutation.AppendWeakAreas(v)
	return _u
}

// ClearWeakAreas clears the value of the "weak_areas" field.
func (_u *SubjectProgressUpdateOne) ClearWeakAreas() *SubjectProgressUpdateOne {
	_u.mutation.ClearWeakAreas()
	return _u
}

// SetStrongAreas sets the "strong_areas" field.
func (_u *SubjectProgressUpdateOne) SetStrongAreas(v []string) *SubjectProgressUpdateOne {
	_u.mutation.SetStrongAreas(v)
	return _u
}

// AppendStrongAreas appends value to the "strong_areas" field.
func (_u *SubjectProgressUpdateOne) AppendStrongAreas(v []string) *SubjectProgressUpdateOne {
	_u.mutation.AppendStrongAreas(v)
	return _u
}

// ClearStrongAreas clears the value of the "strong_areas" field.
func (_u *SubjectProgressUpdateOne) ClearStrongAreas() *SubjectProgressUpdateOne {
	_u.mutation.ClearStrongAreas()
	return _u
}

// SetStreakDays sets the "streak_days" field.
func (_u *SubjectProgressUpdateOne) SetStreakDays(v int) *SubjectProgressUpdateOne {
	_u.mutation.ResetStreakDays()
	_u.mutation.SetStreakDays(v)
	return _u
}

// SetNillableStreakDays sets the "streak_days" field if the given value is not nil.
func (_u *SubjectProgressUpdateOne) SetNillableStreakDays(v *int) *SubjectProgressUpdateOne {
	if v != nil {
		_u.SetStreakDays(*v)
	}
	return _u
}

// AddStreakDays adds value to the "streak_days" field.
func (_u *SubjectProgressUpdateOne) AddStreakDays(v int) *SubjectProgressUpdateOne {
	_u.mutation.AddStreakDays(v)
	return _u
}

// SetTotalPracticeTime sets the "total_practice_time" field.
func (_u *SubjectProgressUpdateOne) SetTotalPracticeTime(v int) *SubjectProgressUpdateOne {
	_u.mutation.ResetTotalPracticeTime()
	_u.mutation.SetTotalPracticeTime(v)
	return _u
}

// SetNillableTotalPracticeTime sets the "total_practice_time" field if the given value is not nil.
func (_u *SubjectProgressUpdateOne) SetNillableTotalPracticeTime(v *int) *SubjectProgressUpdateOne {
	if v != nil {
		_u.SetTotalPracticeTime(*v)
	}
	return _u
}

// AddTotalPracticeTime adds value to the "total_practice_time" field.
func (_u *SubjectProgressUpdateOne) AddTotalPracticeTime(v int) *SubjectProgressUpdateOne {
	_u.mutation.AddTotalPracticeTime(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubjectProgressUpdateOne) SetUpdatedAt(v time.Time) *SubjectProgressUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SubjectProgressMutation object of the builder.
func (_u *SubjectProgressUpdateOne) Mutation() *SubjectProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the SubjectProgressUpdate builder.
func (_u *SubjectProgressUpdateOne) Where(ps ...predicate.SubjectProgress) *SubjectProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubjectProgressUpdateOne) Select(field string, fields ...string) *SubjectProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SubjectProgress entity.
func (_u *SubjectProgressUpdateOne) Save(ctx context.Context) (*SubjectProgress, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubjectProgressUpdateOne) SaveX(ctx context.Context) *SubjectProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubjectProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubjectProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubjectProgressUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := subjectprogress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubjectProgressUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := subjectprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SubjectProgress.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := subjectprogress.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "SubjectProgress.subject": %w`, err)}
		}
	}
	return nil
}

func (_u *SubjectProgressUpdateOne) sqlSave(ctx context.Context) (_node *SubjectProgress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subjectprogress.Table, subjectprogress.Columns, sqlgraph.NewFieldSpec(subjectprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SubjectProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subjectprogress.FieldID)
		for _, f := range fields {
			if !subjectprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != subjectprogress.FieldID {
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
		_spec.SetField(subjectprogress.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(subjectprogress.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.OverallScore(); ok {
		_spec.SetField(subjectprogress.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallScore(); ok {
		_spec.AddField(subjectprogress.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TopicScores(); ok {
		_spec.SetField(subjectprogress.FieldTopicScores, field.TypeJSON, value)
	}
	if _u.mutation.TopicScoresCleared() {
		_spec.ClearField(subjectprogress.FieldTopicScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.WeakAreas(); ok {
		_spec.SetField(subjectprogress.FieldWeakAreas, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeakAreas(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, subjectprogress.FieldWeakAreas, value)
		})
	}
	if _u.mutation.WeakAreasCleared() {
		_spec.ClearField(subjectprogress.FieldWeakAreas, field.TypeJSON)
	}
	if value, ok := _u.mutation.StrongAreas(); ok {
		_spec.SetField(subjectprogress.FieldStrongAreas, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStrongAreas(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, subjectprogress.FieldStrongAreas, value)
		})
	}
	if _u.mutation.StrongAreasCleared() {
		_spec.ClearField(subjectprogress.FieldStrongAreas, field.TypeJSON)
	}
	if value, ok := _u.mutation.StreakDays(); ok {
		_spec.SetField(subjectprogress.FieldStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakDays(); ok {
		_spec.AddField(subjectprogress.FieldStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalPracticeTime(); ok {
		_spec.SetField(subjectprogress.FieldTotalPracticeTime, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPracticeTime(); ok {
		_spec.AddField(subjectprogress.FieldTotalPracticeTime, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(subjectprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SubjectProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subjectprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
