// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/tutorly/ent/learningpattern"
)

// LearningPatternCreate is the builder for creating a LearningPattern entity.
type LearningPatternCreate struct {
	config
	mutation *LearningPatternMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *LearningPatternCreate) SetUserID(v string) *LearningPatternCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *LearningPatternCreate) SetSubject(v string) *LearningPatternCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetStyle sets the "style" field.
func (_c *LearningPatternCreate) SetStyle(v string) *LearningPatternCreate {
	_c.mutation.SetStyle(v)
	return _c
}

// SetPreferredHintType sets the "preferred_hint_type" field.
func (_c *LearningPatternCreate) SetPreferredHintType(v string) *LearningPatternCreate {
	_c.mutation.SetPreferredHintType(v)
	return _c
}

// SetAttentionSpan sets the "attention_span" field.
func (_c *LearningPatternCreate) SetAttentionSpan(v string) *LearningPatternCreate {
	_c.mutation.SetAttentionSpan(v)
	return _c
}

// SetErrorPatterns sets the "error_patterns" field.
func (_c *LearningPatternCreate) SetErrorPatterns(v []string) *LearningPatternCreate {
	_c.mutation.SetErrorPatterns(v)
	return _c
}

// SetMasteryLevels sets the "mastery_levels" field.
func (_c *LearningPatternCreate) SetMasteryLevels(v map[string]float64) *LearningPatternCreate {
	_c.mutation.SetMasteryLevels(v)
	return _c
}

// SetImprovementRate sets the "improvement_rate" field.
func (_c *LearningPatternCreate) SetImprovementRate(v float64) *LearningPatternCreate {
	_c.mutation.SetImprovementRate(v)
	return _c
}

// SetStrugglingAreas sets the "struggling_areas" field.
func (_c *LearningPatternCreate) SetStrugglingAreas(v []string) *LearningPatternCreate {
	_c.mutation.SetStrugglingAreas(v)
	return _c
}

// SetImprovingAreas sets the "improving_areas" field.
func (_c *LearningPatternCreate) SetImprovingAreas(v []string) *LearningPatternCreate {
	_c.mutation.SetImprovingAreas(v)
	return _c
}

// SetRecommendedDifficulty sets the "recommended_difficulty" field.
func (_c *LearningPatternCreate) SetRecommendedDifficulty(v float64) *LearningPatternCreate {
	_c.mutation.SetRecommendedDifficulty(v)
	return _c
}

// SetLastAnalyzed sets the "last_analyzed" field.
func (_c *LearningPatternCreate) SetLastAnalyzed(v time.Time) *LearningPatternCreate {
	_c.mutation.SetLastAnalyzed(v)
	return _c
}

// SetNillableLastAnalyzed sets the "last_analyzed" field if the given value is not nil.
func (_c *LearningPatternCreate) SetNillableLastAnalyzed(v *time.Time) *LearningPatternCreate {
	if v != nil {
		_c.SetLastAnalyzed(*v)
	}
	return _c
}

// Mutation returns the LearningPatternMutation object of the builder.
func (_c *LearningPatternCreate) Mutation() *LearningPatternMutation {
	return _c.mutation
}

// Save creates the LearningPattern in the database.
func (_c *LearningPatternCreate) Save(ctx context.Context) (*LearningPattern, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearningPatternCreate) SaveX(ctx context.Context) *LearningPattern {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningPatternCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningPatternCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearningPatternCreate) defaults() {
	if _, ok := _c.mutation.LastAnalyzed(); !ok {
		v := learningpattern.DefaultLastAnalyzed()
		_c.mutation.SetLastAnalyzed(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearningPatternCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "LearningPattern.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := learningpattern.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LearningPattern.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "LearningPattern.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := learningpattern.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "LearningPattern.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Style(); !ok {
		return &ValidationError{Name: "style", err: errors.New(`ent: missing required field "LearningPattern.style"`)}
	}
	if _, ok := _c.mutation.PreferredHintType(); !ok {
		return &ValidationError{Name: "preferred_hint_type", err: errors.New(`ent: missing required field "LearningPattern.preferred_hint_type"`)}
	}
	if _, ok := _c.mutation.AttentionSpan(); !ok {
		return &ValidationError{Name: "attention_span", err: errors.New(`ent: missing required field "LearningPattern.attention_span"`)}
	}
	if _, ok := _c.mutation.ImprovementRate(); !ok {
		return &ValidationError{Name: "improvement_rate", err: errors.New(`ent: missing required field "LearningPattern.improvement_rate"`)}
	}
	if _, ok := _c.mutation.RecommendedDifficulty(); !ok {
		return &ValidationError{Name: "recommended_difficulty", err: errors.New(`ent: missing required field "LearningPattern.recommended_difficulty"`)}
	}
	if _, ok := _c.mutation.LastAnalyzed(); !ok {
		return &ValidationError{Name: "last_analyzed", err: errors.New(`ent: missing required field "LearningPattern.last_analyzed"`)}
	}
	return nil
}

func (_c *LearningPatternCreate) sqlSave(ctx context.Context) (*LearningPattern, error) {
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

func (_c *LearningPatternCreate) createSpec() (*LearningPattern, *sqlgraph.CreateSpec) {
	var (
		_node = &LearningPattern{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learningpattern.Table, sqlgraph.NewFieldSpec(learningpattern.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(learningpattern.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(learningpattern.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Style(); ok {
		_spec.SetField(learningpattern.FieldStyle, field.TypeString, value)
		_node.Style = value
	}
	if value, ok := _c.mutation.PreferredHintType(); ok {
		_spec.SetField(learningpattern.FieldPreferredHintType, field.TypeString, value)
		_node.PreferredHintType = value
	}
	if value, ok := _c.mutation.AttentionSpan(); ok {
		_spec.SetField(learningpattern.FieldAttentionSpan, field.TypeString, value)
		_node.AttentionSpan = value
	}
	if value, ok := _c.mutation.ErrorPatterns(); ok {
		_spec.SetField(learningpattern.FieldErrorPatterns, field.TypeJSON, value)
		_node.ErrorPatterns = value
	}
	if value, ok := _c.mutation.MasteryLevels(); ok {
		_spec.SetField(learningpattern.FieldMasteryLevels, field.TypeJSON, value)
		_node.MasteryLevels = value
	}
	if value, ok := _c.mutation.ImprovementRate(); ok {
		_spec.SetField(learningpattern.FieldImprovementRate, field.TypeFloat64, value)
		_node.ImprovementRate = value
	}
	if value, ok := _c.mutation.StrugglingAreas(); ok {
		_spec.SetField(learningpattern.FieldStrugglingAreas, field.TypeJSON, value)
		_node.StrugglingAreas = value
	}
	if value, ok := _c.mutation.ImprovingAreas(); ok {
		_spec.SetField(learningpattern.FieldImprovingAreas, field.TypeJSON, value)
		_node.ImprovingAreas = value
	}
	if value, ok := _c.mutation.RecommendedDifficulty(); ok {
		_spec.SetField(learningpattern.FieldRecommendedDifficulty, field.TypeFloat64, value)
		_node.RecommendedDifficulty = value
	}
	if value, ok := _c.mutation.LastAnalyzed(); ok {
		_spec.SetField(learningpattern.FieldLastAnalyzed, field.TypeTime, value)
		_node.LastAnalyzed = value
	}
	return _node, _spec
}

// LearningPatternCreateBulk is the builder for creating many LearningPattern entities in bulk.
type LearningPatternCreateBulk struct {
	config
	err      error
	builders []*LearningPatternCreate
}

// Save creates the LearningPattern entities in the database.
func (_c *LearningPatternCreateBulk) Save(ctx context.Context) ([]*LearningPattern, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearningPattern, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearningPatternMutation)
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
func (_c *LearningPatternCreateBulk) SaveX(ctx context.Context) []*LearningPattern {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningPatternCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningPatternCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
