// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/tutorly/ent/performancesnapshot"
	"github.com/abhisek/tutorly/ent/predicate"
)

// PerformanceSnapshotUpdate is the builder for updating PerformanceSnapshot entities.
type PerformanceSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *PerformanceSnapshotMutation
}

// Where appends a list predicates to the PerformanceSnapshotUpdate builder.
func (_u *PerformanceSnapshotUpdate) Where(ps ...predicate.PerformanceSnapshot) *PerformanceSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PerformanceSnapshotUpdate) SetUserID(v string) *PerformanceSnapshotUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PerformanceSnapshotUpdate) SetNillableUserID(v *string) *PerformanceSnapshotUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *PerformanceSnapshotUpdate) SetSubject(v string) *PerformanceSnapshotUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *PerformanceSnapshotUpdate) SetNillableSubject(v *string) *PerformanceSnapshotUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetOverallScore sets the "overall_score" field.
func (_u *PerformanceSnapshotUpdate) SetOverallScore(v float64) *PerformanceSnapshotUpdate {
	_u.mutation.ResetOverallScore()
	_u.mutation.SetOverallScore(v)
	return _u
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_u *PerformanceSnapshotUpdate) SetNillableOverallScore(v *float64) *PerformanceSnapshotUpdate {
	if v != nil {
		_u.SetOverallScore(*v)
	}
	return _u
}

// AddOverallScore adds value to the "overall_score" field.
func (_u *PerformanceSnapshotUpdate) AddOverallScore(v float64) *PerformanceSnapshotUpdate {
	_u.mutation.AddOverallScore(v)
	return _u
}

// SetTopicScores sets the "topic_scores" field.
func (_u *PerformanceSnapshotUpdate) SetTopicScores(v map[string]float64) *PerformanceSnapshotUpdate {
	_u.mutation.SetTopicScores(v)
	return _u
}

// ClearTopicScores clears the value of the "topic_scores" field.
func (_u *PerformanceSnapshotUpdate) ClearTopicScores() *PerformanceSnapshotUpdate {
	_u.mutation.ClearTopicScores()
	return _u
}

// Mutation returns the PerformanceSnapshotMutation object of the builder.
func (_u *PerformanceSnapshotUpdate) Mutation() *PerformanceSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PerformanceSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PerformanceSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PerformanceSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PerformanceSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PerformanceSnapshotUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := performancesnapshot.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PerformanceSnapshot.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := performancesnapshot.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "PerformanceSnapshot.subject": %w`, err)}
		}
	}
	return nil
}

func (_u *PerformanceSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(performancesnapshot.Table, performancesnapshot.Columns, sqlgraph.NewFieldSpec(performancesnapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(performancesnapshot.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(performancesnapshot.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.OverallScore(); ok {
		_spec.SetField(performancesnapshot.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallScore(); ok {
		_spec.AddField(performancesnapshot.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TopicScores(); ok {
		_spec.SetField(performancesnapshot.FieldTopicScores, field.TypeJSON, value)
	}
	if _u.mutation.TopicScoresCleared() {
		_spec.ClearField(performancesnapshot.FieldTopicScores, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{performancesnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PerformanceSnapshotUpdateOne is the builder for updating a single PerformanceSnapshot entity.
type PerformanceSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PerformanceSnapshotMutation
}

// SetUserID sets the "user_id" field.
func (_u *PerformanceSnapshotUpdateOne) SetUserID(v string) *PerformanceSnapshotUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PerformanceSnapshotUpdateOne) SetNillableUserID(v *string) *PerformanceSnapshotUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *PerformanceSnapshotUpdateOne) SetSubject(v string) *PerformanceSnapshotUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *PerformanceSnapshotUpdateOne) SetNillableSubject(v *string) *PerformanceSnapshotUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetOverallScore sets the "overall_score" field.
func (_u *PerformanceSnapshotUpdateOne) SetOverallScore(v float64) *PerformanceSnapshotUpdateOne {
	_u.mutation.ResetOverallScore()
	_u.mutation.SetOverallScore(v)
	return _u
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_u *PerformanceSnapshotUpdateOne) SetNillableOverallScore(v *float64) *PerformanceSnapshotUpdateOne {
	if v != nil {
		_u.SetOverallScore(*v)
	}
	return _u
}

// AddOverallScore adds value to the "overall_score" field.
func (_u *PerformanceSnapshotUpdateOne) AddOverallScore(v float64) *PerformanceSnapshotUpdateOne {
	_u.mutation.AddOverallScore(v)
	return _u
}

// SetTopicScores sets the "topic_scores" field.
func (_u *PerformanceSnapshotUpdateOne) SetTopicScores(v map[string]float64) *PerformanceSnapshotUpdateOne {
	_u.mutation.SetTopicScores(v)
	return _u
}

// ClearTopicScores clears the value of the "topic_scores" field.
func (_u *PerformanceSnapshotUpdateOne) ClearTopicScores() *PerformanceSnapshotUpdateOne {
	_u.mutation.ClearTopicScores()
	return _u
}

// Mutation returns the PerformanceSnapshotMutation object of the builder.
func (_u *PerformanceSnapshotUpdateOne) Mutation() *PerformanceSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the PerformanceSnapshotUpdate builder.
func (_u *PerformanceSnapshotUpdateOne) Where(ps ...predicate.PerformanceSnapshot) *PerformanceSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PerformanceSnapshotUpdateOne) Select(field string, fields ...string) *PerformanceSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PerformanceSnapshot entity.
func (_u *PerformanceSnapshotUpdateOne) Save(ctx context.Context) (*PerformanceSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PerformanceSnapshotUpdateOne) SaveX(ctx context.Context) *PerformanceSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PerformanceSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PerformanceSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PerformanceSnapshotUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := performancesnapshot.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PerformanceSnapshot.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := performancesnapshot.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "PerformanceSnapshot.subject": %w`, err)}
		}
	}
	return nil
}

func (_u *PerformanceSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *PerformanceSnapshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(performancesnapshot.Table, performancesnapshot.Columns, sqlgraph.NewFieldSpec(performancesnapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PerformanceSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, performancesnapshot.FieldID)
		for _, f := range fields {
			if !performancesnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != performancesnapshot.FieldID {
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
		_spec.SetField(performancesnapshot.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(performancesnapshot.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.OverallScore(); ok {
		_spec.SetField(performancesnapshot.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallScore(); ok {
		_spec.AddField(performancesnapshot.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TopicScores(); ok {
		_spec.SetField(performancesnapshot.FieldTopicScores, field.TypeJSON, value)
	}
	if _u.mutation.TopicScoresCleared() {
		_spec.ClearField(performancesnapshot.FieldTopicScores, field.TypeJSON)
	}
	_node = &PerformanceSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{performancesnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
