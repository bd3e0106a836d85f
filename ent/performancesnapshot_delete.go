// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/tutorly/ent/performancesnapshot"
	"github.com/abhisek/tutorly/ent/predicate"
)

// PerformanceSnapshotDelete is the builder for deleting a PerformanceSnapshot entity.
type PerformanceSnapshotDelete struct {
	config
	hooks    []Hook
	mutation *PerformanceSnapshotMutation
}

// Where appends a list predicates to the PerformanceSnapshotDelete builder.
func (_d *PerformanceSnapshotDelete) Where(ps ...predicate.PerformanceSnapshot) *PerformanceSnapshotDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PerformanceSnapshotDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PerformanceSnapshotDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PerformanceSnapshotDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(performancesnapshot.Table, sqlgraph.NewFieldSpec(performancesnapshot.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// PerformanceSnapshotDeleteOne is the builder for deleting a single PerformanceSnapshot entity.
type PerformanceSnapshotDeleteOne struct {
	_d *PerformanceSnapshotDelete
}

// Where appends a list predicates to the PerformanceSnapshotDelete builder.
func (_d *PerformanceSnapshotDeleteOne) Where(ps ...predicate.PerformanceSnapshot) *PerformanceSnapshotDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PerformanceSnapshotDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{performancesnapshot.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PerformanceSnapshotDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
