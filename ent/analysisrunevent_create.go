// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prepsage/examlens/ent/analysisrunevent"
)

// AnalysisRunEventCreate is the builder for creating a AnalysisRunEvent entity.
type AnalysisRunEventCreate struct {
	config
	mutation *AnalysisRunEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AnalysisRunEventCreate) SetSequence(v int64) *AnalysisRunEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AnalysisRunEventCreate) SetTimestamp(v time.Time) *AnalysisRunEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AnalysisRunEventCreate) SetNillableTimestamp(v *time.Time) *AnalysisRunEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *AnalysisRunEventCreate) SetRunID(v string) *AnalysisRunEventCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *AnalysisRunEventCreate) SetSource(v string) *AnalysisRunEventCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *AnalysisRunEventCreate) SetNillableSource(v *string) *AnalysisRunEventCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetQuestionCount sets the "question_count" field.
func (_c *AnalysisRunEventCreate) SetQuestionCount(v int) *AnalysisRunEventCreate {
	_c.mutation.SetQuestionCount(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *AnalysisRunEventCreate) SetCorrect(v int) *AnalysisRunEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_c *AnalysisRunEventCreate) SetNillableCorrect(v *int) *AnalysisRunEventCreate {
	if v != nil {
		_c.SetCorrect(*v)
	}
	return _c
}

// SetWrong sets the "wrong" field.
func (_c *AnalysisRunEventCreate) SetWrong(v int) *AnalysisRunEventCreate {
	_c.mutation.SetWrong(v)
	return _c
}

// SetNillableWrong sets the "wrong" field if the given value is not nil.
func (_c *AnalysisRunEventCreate) SetNillableWrong(v *int) *AnalysisRunEventCreate {
	if v != nil {
		_c.SetWrong(*v)
	}
	return _c
}

// SetUnattempted sets the "unattempted" field.
func (_c *AnalysisRunEventCreate) SetUnattempted(v int) *AnalysisRunEventCreate {
	_c.mutation.SetUnattempted(v)
	return _c
}

// SetNillableUnattempted sets the "unattempted" field if the given value is not nil.
func (_c *AnalysisRunEventCreate) SetNillableUnattempted(v *int) *AnalysisRunEventCreate {
	if v != nil {
		_c.SetUnattempted(*v)
	}
	return _c
}

// SetUnknown sets the "unknown" field.
func (_c *AnalysisRunEventCreate) SetUnknown(v int) *AnalysisRunEventCreate {
	_c.mutation.SetUnknown(v)
	return _c
}

// SetNillableUnknown sets the "unknown" field if the given value is not nil.
func (_c *AnalysisRunEventCreate) SetNillableUnknown(v *int) *AnalysisRunEventCreate {
	if v != nil {
		_c.SetUnknown(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *AnalysisRunEventCreate) SetDurationMs(v int64) *AnalysisRunEventCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *AnalysisRunEventCreate) SetNillableDurationMs(v *int64) *AnalysisRunEventCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *AnalysisRunEventCreate) SetSuccess(v bool) *AnalysisRunEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AnalysisRunEventCreate) SetErrorMessage(v string) *AnalysisRunEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AnalysisRunEventCreate) SetNillableErrorMessage(v *string) *AnalysisRunEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// Mutation returns the AnalysisRunEventMutation object of the builder.
func (_c *AnalysisRunEventCreate) Mutation() *AnalysisRunEventMutation {
	return _c.mutation
}

// Save creates the AnalysisRunEvent in the database.
func (_c *AnalysisRunEventCreate) Save(ctx context.Context) (*AnalysisRunEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisRunEventCreate) SaveX(ctx context.Context) *AnalysisRunEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisRunEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisRunEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisRunEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := analysisrunevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Source(); !ok {
		v := analysisrunevent.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.Correct(); !ok {
		v := analysisrunevent.DefaultCorrect
		_c.mutation.SetCorrect(v)
	}
	if _, ok := _c.mutation.Wrong(); !ok {
		v := analysisrunevent.DefaultWrong
		_c.mutation.SetWrong(v)
	}
	if _, ok := _c.mutation.Unattempted(); !ok {
		v := analysisrunevent.DefaultUnattempted
		_c.mutation.SetUnattempted(v)
	}
	if _, ok := _c.mutation.Unknown(); !ok {
		v := analysisrunevent.DefaultUnknown
		_c.mutation.SetUnknown(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := analysisrunevent.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		v := analysisrunevent.DefaultErrorMessage
		_c.mutation.SetErrorMessage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisRunEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AnalysisRunEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AnalysisRunEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "AnalysisRunEvent.run_id"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "AnalysisRunEvent.source"`)}
	}
	if _, ok := _c.mutation.QuestionCount(); !ok {
		return &ValidationError{Name: "question_count", err: errors.New(`ent: missing required field "AnalysisRunEvent.question_count"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "AnalysisRunEvent.correct"`)}
	}
	if _, ok := _c.mutation.Wrong(); !ok {
		return &ValidationError{Name: "wrong", err: errors.New(`ent: missing required field "AnalysisRunEvent.wrong"`)}
	}
	if _, ok := _c.mutation.Unattempted(); !ok {
		return &ValidationError{Name: "unattempted", err: errors.New(`ent: missing required field "AnalysisRunEvent.unattempted"`)}
	}
	if _, ok := _c.mutation.Unknown(); !ok {
		return &ValidationError{Name: "unknown", err: errors.New(`ent: missing required field "AnalysisRunEvent.unknown"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "AnalysisRunEvent.duration_ms"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "AnalysisRunEvent.success"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "AnalysisRunEvent.error_message"`)}
	}
	return nil
}

func (_c *AnalysisRunEventCreate) sqlSave(ctx context.Context) (*AnalysisRunEvent, error) {
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

func (_c *AnalysisRunEventCreate) createSpec() (*AnalysisRunEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AnalysisRunEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysisrunevent.Table, sqlgraph.NewFieldSpec(analysisrunevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(analysisrunevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(analysisrunevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(analysisrunevent.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(analysisrunevent.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.QuestionCount(); ok {
		_spec.SetField(analysisrunevent.FieldQuestionCount, field.TypeInt, value)
		_node.QuestionCount = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(analysisrunevent.FieldCorrect, field.TypeInt, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Wrong(); ok {
		_spec.SetField(analysisrunevent.FieldWrong, field.TypeInt, value)
		_node.Wrong = value
	}
	if value, ok := _c.mutation.Unattempted(); ok {
		_spec.SetField(analysisrunevent.FieldUnattempted, field.TypeInt, value)
		_node.Unattempted = value
	}
	if value, ok := _c.mutation.Unknown(); ok {
		_spec.SetField(analysisrunevent.FieldUnknown, field.TypeInt, value)
		_node.Unknown = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(analysisrunevent.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(analysisrunevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(analysisrunevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	return _node, _spec
}

// AnalysisRunEventCreateBulk is the builder for creating many AnalysisRunEvent entities in bulk.
type AnalysisRunEventCreateBulk struct {
	config
	err      error
	builders []*AnalysisRunEventCreate
}

// Save creates the AnalysisRunEvent entities in the database.
func (_c *AnalysisRunEventCreateBulk) Save(ctx context.Context) ([]*AnalysisRunEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnalysisRunEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisRunEventMutation)
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
func (_c *AnalysisRunEventCreateBulk) SaveX(ctx context.Context) []*AnalysisRunEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisRunEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisRunEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
