// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prepsage/examlens/ent/analysisrunevent"
	"github.com/prepsage/examlens/ent/predicate"
)

// AnalysisRunEventDelete is the builder for deleting a AnalysisRunEvent entity.
type AnalysisRunEventDelete struct {
	config
	hooks    []Hook
	mutation *AnalysisRunEventMutation
}

// Where appends a list predicates to the AnalysisRunEventDelete builder.
func (_d *AnalysisRunEventDelete) Where(ps ...predicate.AnalysisRunEvent) *AnalysisRunEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AnalysisRunEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnalysisRunEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AnalysisRunEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(analysisrunevent.Table, sqlgraph.NewFieldSpec(analysisrunevent.FieldID, field.TypeInt))
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

// AnalysisRunEventDeleteOne is the builder for deleting a single AnalysisRunEvent entity.
type AnalysisRunEventDeleteOne struct {
	_d *AnalysisRunEventDelete
}

// Where appends a list predicates to the AnalysisRunEventDelete builder.
func (_d *AnalysisRunEventDeleteOne) Where(ps ...predicate.AnalysisRunEvent) *AnalysisRunEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AnalysisRunEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{analysisrunevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnalysisRunEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
