// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/tutorly/ent/predicate"
	"github.com/abhisek/tutorly/ent/userfact"
)

// UserFactUpdate is the builder for updating UserFact entities.
type UserFactUpdate struct {
	config
	hooks    []Hook
	mutation *UserFactMutation
}

// Where appends a list predicates to the UserFactUpdate builder.
func (_u *UserFactUpdate) Where(ps ...predicate.UserFact) *UserFactUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *UserFactUpdate) SetUserID(v string) *UserFactUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UserFactUpdate) SetNillableUserID(v *string) *UserFactUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetGradeLevel sets the "grade_level" field.
func (_u *UserFactUpdate) SetGradeLevel(v int) *UserFactUpdate {
	_u.mutation.ResetGradeLevel()
	_u.mutation.SetGradeLevel(v)
	return _u
}

// SetNillableGradeLevel sets the "grade_level" field if the given value is not nil.
func (_u *UserFactUpdate) SetNillableGradeLevel(v *int) *UserFactUpdate {
	if v != nil {
		_u.SetGradeLevel(*v)
	}
	return _u
}

// AddGradeLevel adds value to the "grade_level" field.
func (_u *UserFactUpdate) AddGradeLevel(v int) *UserFactUpdate {
	_u.mutation.AddGradeLevel(v)
	return _u
}

// SetExamDate sets the "exam_date" field.
func (_u *UserFactUpdate) SetExamDate(v time.Time) *UserFactUpdate {
	_u.mutation.SetExamDate(v)
	return _u
}

// SetNillableExamDate sets the "exam_date" field if the given value is not nil.
func (_u *UserFactUpdate) SetNillableExamDate(v *time.Time) *UserFactUpdate {
	if v != nil {
		_u.SetExamDate(*v)
	}
	return _u
}

// ClearExamDate clears the value of the "exam_date" field.
func (_u *UserFactUpdate) ClearExamDate() *UserFactUpdate {
	_u.mutation.ClearExamDate()
	return _u
}

// SetPreferences sets the "preferences" field.
func (_u *UserFactUpdate) SetPreferences(v map[string]interface{}) *UserFactUpdate {
	_u.mutation.SetPreferences(v)
	return _u
}

// ClearPreferences clears the value of the "preferences" field.
func (_u *UserFactUpdate) ClearPreferences() *UserFactUpdate {
	_u.mutation.ClearPreferences()
	return _u
}

// Mutation returns the UserFactMutation object of the builder.
func (_u *UserFactUpdate) Mutation() *UserFactMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserFactUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserFactUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserFactUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserFactUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserFactUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := userfact.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserFact.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *UserFactUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userfact.Table, userfact.Columns, sqlgraph.NewFieldSpec(userfact.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(userfact.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GradeLevel(); ok {
		_spec.SetField(userfact.FieldGradeLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGradeLevel(); ok {
		_spec.AddField(userfact.FieldGradeLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExamDate(); ok {
		_spec.SetField(userfact.FieldExamDate, field.TypeTime, value)
	}
	if _u.mutation.ExamDateCleared() {
		_spec.ClearField(userfact.FieldExamDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Preferences(); ok {
		_spec.SetField(userfact.FieldPreferences, field.TypeJSON, value)
	}
	if _u.mutation.PreferencesCleared() {
		_spec.ClearField(userfact.FieldPreferences, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userfact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserFactUpdateOne is the builder for updating a single UserFact entity.
type UserFactUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserFactMutation
}

// SetUserID sets the "user_id" field.
func (_u *UserFactUpdateOne) SetUserID(v string) *UserFactUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UserFactUpdateOne) SetNillableUserID(v *string) *UserFactUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetGradeLevel sets the "grade_level" field.
func (_u *UserFactUpdateOne) SetGradeLevel(v int) *UserFactUpdateOne {
	_u.mutation.ResetGradeLevel()
	_u.mutation.SetGradeLevel(v)
	return _u
}

// SetNillableGradeLevel sets the "grade_level" field if the given value is not nil.
func (_u *UserFactUpdateOne) SetNillableGradeLevel(v *int) *UserFactUpdateOne {
	if v != nil {
		_u.SetGradeLevel(*v)
	}
	return _u
}

// AddGradeLevel adds value to the "grade_level" field.
func (_u *UserFactUpdateOne) AddGradeLevel(v int) *UserFactUpdateOne {
	_u.mutation.AddGradeLevel(v)
	return _u
}

// SetExamDate sets the "exam_date" field.
func (_u *UserFactUpdateOne) SetExamDate(v time.Time) *UserFactUpdateOne {
	_u.mutation.SetExamDate(v)
	return _u
}

// SetNillableExamDate sets the "exam_date" field if the given value is not nil.
func (_u *UserFactUpdateOne) SetNillableExamDate(v *time.Time) *UserFactUpdateOne {
	if v != nil {
		_u.SetExamDate(*v)
	}
	return _u
}

// ClearExamDate clears the value of the "exam_date" field.
func (_u *UserFactUpdateOne) ClearExamDate() *UserFactUpdateOne {
	_u.mutation.ClearExamDate()
	return _u
}

// SetPreferences sets the "preferences" field.
func (_u *UserFactUpdateOne) SetPreferences(v map[string]interface{}) *UserFactUpdateOne {
	_u.mutation.SetPreferences(v)
	return _u
}

// ClearPreferences clears the value of the "preferences" field.
func (_u *UserFactUpdateOne) ClearPreferences() *UserFactUpdateOne {
	_u.mutation.ClearPreferences()
	return _u
}

// Mutation returns the UserFactMutation object of the builder.
func (_u *UserFactUpdateOne) Mutation() *UserFactMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserFactUpdate builder.
func (_u *UserFactUpdateOne) Where(ps ...predicate.UserFact) *UserFactUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserFactUpdateOne) Select(field string, fields ...string) *UserFactUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserFact entity.
func (_u *UserFactUpdateOne) Save(ctx context.Context) (*UserFact, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserFactUpdateOne) SaveX(ctx context.Context) *UserFact {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserFactUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserFactUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserFactUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := userfact.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserFact.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *UserFactUpdateOne) sqlSave(ctx context.Context) (_node *UserFact, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userfact.Table, userfact.Columns, sqlgraph.NewFieldSpec(userfact.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserFact.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userfact.FieldID)
		for _, f := range fields {
			if !userfact.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userfact.FieldID {
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
		_spec.SetField(userfact.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GradeLevel(); ok {
		_spec.SetField(userfact.FieldGradeLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGradeLevel(); ok {
		_spec.AddField(userfact.FieldGradeLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExamDate(); ok {
		_spec.SetField(userfact.FieldExamDate, field.TypeTime, value)
	}
	if _u.mutation.ExamDateCleared() {
		_spec.ClearField(userfact.FieldExamDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Preferences(); ok {
		_spec.SetField(userfact.FieldPreferences, field.TypeJSON, value)
	}
	if _u.mutation.PreferencesCleared() {
		_spec.ClearField(userfact.FieldPreferences, field.TypeJSON)
	}
	_node = &UserFact{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userfact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
