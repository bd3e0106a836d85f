// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/tutorly/ent/userfact"
)

// UserFactCreate is the builder for creating a UserFact entity.
type UserFactCreate struct {
	config
	mutation *UserFactMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *UserFactCreate) SetUserID(v string) *UserFactCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetGradeLevel sets the "grade_level" field.
func (_c *UserFactCreate) SetGradeLevel(v int) *UserFactCreate {
	_c.mutation.SetGradeLevel(v)
	return _c
}

// SetNillableGradeLevel sets the "grade_level" field if the given value is not nil.
func (_c *UserFactCreate) SetNillableGradeLevel(v *int) *UserFactCreate {
	if v != nil {
		_c.SetGradeLevel(*v)
	}
	return _c
}

// SetExamDate sets the "exam_date" field.
func (_c *UserFactCreate) SetExamDate(v time.Time) *UserFactCreate {
	_c.mutation.SetExamDate(v)
	return _c
}

// SetNillableExamDate sets the "exam_date" field if the given value is not nil.
func (_c *UserFactCreate) SetNillableExamDate(v *time.Time) *UserFactCreate {
	if v != nil {
		_c.SetExamDate(*v)
	}
	return _c
}

// SetPreferences sets the "preferences" field.
func (_c *UserFactCreate) SetPreferences(v map[string]interface{}) *UserFactCreate {
	_c.mutation.SetPreferences(v)
	return _c
}

// Mutation returns the UserFactMutation object of the builder.
func (_c *UserFactCreate) Mutation() *UserFactMutation {
	return _c.mutation
}

// Save creates the UserFact in the database.
func (_c *UserFactCreate) Save(ctx context.Context) (*UserFact, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserFactCreate) SaveX(ctx context.Context) *UserFact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserFactCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserFactCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserFactCreate) defaults() {
	if _, ok := _c.mutation.GradeLevel(); !ok {
		v := userfact.DefaultGradeLevel
		_c.mutation.SetGradeLevel(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserFactCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UserFact.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := userfact.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserFact.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GradeLevel(); !ok {
		return &ValidationError{Name: "grade_level", err: errors.New(`ent: missing required field "UserFact.grade_level"`)}
	}
	return nil
}

func (_c *UserFactCreate) sqlSave(ctx context.Context) (*UserFact, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UserFactCreate) createSpec() (*UserFact, *sqlgraph.CreateSpec) {
	var (
		_node = &UserFact{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(userfact.Table, sqlgraph.NewFieldSpec(userfact.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(userfact.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.GradeLevel(); ok {
		_spec.SetField(userfact.FieldGradeLevel, field.TypeInt, value)
		_node.GradeLevel = value
	}
	if value, ok := _c.mutation.ExamDate(); ok {
		_spec.SetField(userfact.FieldExamDate, field.TypeTime, value)
		_node.ExamDate = &value
	}
	if value, ok := _c.mutation.Preferences(); ok {
		_spec.SetField(userfact.FieldPreferences, field.TypeJSON, value)
		_node.Preferences = value
	}
	return _node, _spec
}

// UserFactCreateBulk is the builder for creating many UserFact entities in bulk.
type UserFactCreateBulk struct {
	config
	err      error
	builders []*UserFactCreate
}

// Save creates the UserFact entities in the database.
func (_c *UserFactCreateBulk) Save(ctx context.Context) ([]*UserFact, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserFact, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserFactMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *UserFactCreateBulk) SaveX(ctx context.Context) []*UserFact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserFactCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserFactCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
