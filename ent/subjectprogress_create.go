// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/tutorly/ent/subjectprogress"
)

// SubjectProgressCreate is the builder for creating a SubjectProgress entity.
type SubjectProgressCreate struct {
	config
	mutation *SubjectProgressMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *SubjectProgressCreate) SetUserID(v string) *SubjectProgressCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *SubjectProgressCreate) SetSubject(v string) *SubjectProgressCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetOverallScore sets the "overall_score" field.
func (_c *SubjectProgressCreate) SetOverallScore(v float64) *SubjectProgressCreate {
	_c.mutation.SetOverallScore(v)
	return _c
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_c *SubjectProgressCreate) SetNillableOverallScore(v *float64) *SubjectProgressCreate {
	if v != nil {
		_c.SetOverallScore(*v)
	}
	return _c
}

// SetTopicScores sets the "topic_scores" field.
func (_c *SubjectProgressCreate) SetTopicScores(v map[string]float64) *SubjectProgressCreate {
	_c.mutation.SetTopicScores(v)
	return _c
}

// SetWeakAreas sets the "weak_areas" field.
func (_c *SubjectProgressCreate) SetWeakAreas(v []string) *SubjectProgressCreate {
	_c.mutation.SetWeakAreas(v)
	return _c
}

// SetStrongAreas sets the "strong_areas" field.
func (_c *SubjectProgressCreate) SetStrongAreas(v []string) *SubjectProgressCreate {
	_c.mutation.SetStrongAreas(v)
	return _c
}

// SetStreakDays sets the "streak_days" field.
func (_c *SubjectProgressCreate) SetStreakDays(v int) *SubjectProgressCreate {
	_c.mutation.SetStreakDays(v)
	return _c
}

// SetNillableStreakDays sets the "streak_days" field if the given value is not nil.
func (_c *SubjectProgressCreate) SetNillableStreakDays(v *int) *SubjectProgressCreate {
	if v != nil {
		_c.SetStreakDays(*v)
	}
	return _c
}

// SetTotalPracticeTime sets the "total_practice_time" field.
func (_c *SubjectProgressCreate) SetTotalPracticeTime(v int) *SubjectProgressCreate {
	_c.mutation.SetTotalPracticeTime(v)
	return _c
}

// SetNillableTotalPracticeTime sets the "total_practice_time" field if the given value is not nil.
func (_c *SubjectProgressCreate) SetNillableTotalPracticeTime(v *int) *SubjectProgressCreate {
	if v != nil {
		_c.SetTotalPracticeTime(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SubjectProgressCreate) SetUpdatedAt(v time.Time) *SubjectProgressCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SubjectProgressCreate) SetNillableUpdatedAt(v *time.Time) *SubjectProgressCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the SubjectProgressMutation object of the builder.
func (_c *SubjectProgressCreate) Mutation() *SubjectProgressMutation {
	return _c.mutation
}

// Save creates the SubjectProgress in the database.
func (_c *SubjectProgressCreate) Save(ctx context.Context) (*SubjectProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubjectProgressCreate) SaveX(ctx context.Context) *SubjectProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubjectProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubjectProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubjectProgressCreate) defaults() {
	if _, ok := _c.mutation.OverallScore(); !ok {
		v := subjectprogress.DefaultOverallScore
		_c.mutation.SetOverallScore(v)
	}
	if _, ok := _c.mutation.StreakDays(); !ok {
		v := subjectprogress.DefaultStreakDays
		_c.mutation.SetStreakDays(v)
	}
	if _, ok := _c.mutation.TotalPracticeTime(); !ok {
		v := subjectprogress.DefaultTotalPracticeTime
		_c.mutation.SetTotalPracticeTime(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := subjectprogress.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubjectProgressCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SubjectProgress.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := subjectprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SubjectProgress.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "SubjectProgress.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := subjectprogress.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "SubjectProgress.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OverallScore(); !ok {
		return &ValidationError{Name: "overall_score", err: errors.New(`ent: missing required field "SubjectProgress.overall_score"`)}
	}
	if _, ok := _c.mutation.StreakDays(); !ok {
		return &ValidationError{Name: "streak_days", err: errors.New(`ent: missing required field "SubjectProgress.streak_days"`)}
	}
	if _, ok := _c.mutation.TotalPracticeTime(); !ok {
		return &ValidationError{Name: "total_practice_time", err: errors.New(`ent: missing required field "SubjectProgress.total_practice_time"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SubjectProgress.updated_at"`)}
	}
	return nil
}

func (_c *SubjectProgressCreate) sqlSave(ctx context.Context) (*SubjectProgress, error) {
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

func (_c *SubjectProgressCreate) createSpec() (*SubjectProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &SubjectProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(subjectprogress.Table, sqlgraph.NewFieldSpec(subjectprogress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(subjectprogress.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(subjectprogress.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.OverallScore(); ok {
		_spec.SetField(subjectprogress.FieldOverallScore, field.TypeFloat64, value)
		_node.OverallScore = value
	}
	if value, ok := _c.mutation.TopicScores(); ok {
		_spec.SetField(subjectprogress.FieldTopicScores, field.TypeJSON, value)
		_node.TopicScores = value
	}
	if value, ok := _c.mutation.WeakAreas(); ok {
		_spec.SetField(subjectprogress.FieldWeakAreas, field.TypeJSON, value)
		_node.WeakAreas = value
	}
	if value, ok := _c.mutation.StrongAreas(); ok {
		_spec.SetField(subjectprogress.FieldStrongAreas, field.TypeJSON, value)
		_node.StrongAreas = value
	}
	if value, ok := _c.mutation.StreakDays(); ok {
		_spec.SetField(subjectprogress.FieldStreakDays, field.TypeInt, value)
		_node.StreakDays = value
	}
	if value, ok := _c.mutation.TotalPracticeTime(); ok {
		_spec.SetField(subjectprogress.FieldTotalPracticeTime, field.TypeInt, value)
		_node.TotalPracticeTime = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(subjectprogress.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SubjectProgressCreateBulk is the builder for creating many SubjectProgress entities in bulk.
type SubjectProgressCreateBulk struct {
	config
	err      error
	builders []*SubjectProgressCreate
}

// Save creates the SubjectProgress entities in the database.
func (_c *SubjectProgressCreateBulk) Save(ctx context.Context) ([]*SubjectProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SubjectProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubjectProgressMutation)
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
func (_c *SubjectProgressCreateBulk) SaveX(ctx context.Context) []*SubjectProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubjectProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubjectProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
