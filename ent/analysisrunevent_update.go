// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prepsage/examlens/ent/analysisrunevent"
	"github.com/prepsage/examlens/ent/predicate"
)

// AnalysisRunEventUpdate is the builder for updating AnalysisRunEvent entities.
type AnalysisRunEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisRunEventMutation
}

// Where appends a list predicates to the AnalysisRunEventUpdate builder.
func (_u *AnalysisRunEventUpdate) Where(ps ...predicate.AnalysisRunEvent) *AnalysisRunEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *AnalysisRunEventUpdate) SetRunID(v string) *AnalysisRunEventUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *AnalysisRunEventUpdate) SetNillableRunID(v *string) *AnalysisRunEventUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *AnalysisRunEventUpdate) SetSource(v string) *AnalysisRunEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *AnalysisRunEventUpdate) SetNillableSource(v *string) *AnalysisRunEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *AnalysisRunEventUpdate) SetQuestionCount(v int) *AnalysisRunEventUpdate {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *AnalysisRunEventUpdate) SetNillableQuestionCount(v *int) *AnalysisRunEventUpdate {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *AnalysisRunEventUpdate) AddQuestionCount(v int) *AnalysisRunEventUpdate {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnalysisRunEventUpdate) SetCorrect(v int) *AnalysisRunEventUpdate {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnalysisRunEventUpdate) SetNillableCorrect(v *int) *AnalysisRunEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *AnalysisRunEventUpdate) AddCorrect(v int) *AnalysisRunEventUpdate {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetWrong sets the "wrong" field.
func (_u *AnalysisRunEventUpdate) SetWrong(v int) *AnalysisRunEventUpdate {
	_u.mutation.ResetWrong()
	_u.mutation.SetWrong(v)
	return _u
}

// SetNillableWrong sets the "wrong" field if the given value is not nil.
func (_u *AnalysisRunEventUpdate) SetNillableWrong(v *int) *AnalysisRunEventUpdate {
	if v != nil {
		_u.SetWrong(*v)
	}
	return _u
}

// AddWrong adds value to the "wrong" field.
func (_u *AnalysisRunEventUpdate) AddWrong(v int) *AnalysisRunEventUpdate {
	_u.mutation.AddWrong(v)
	return _u
}

// SetUnattempted sets the "unattempted" field.
func (_u *AnalysisRunEventUpdate) SetUnattempted(v int) *AnalysisRunEventUpdate {
	_u.mutation.ResetUnattempted()
	_u.mutation.SetUnattempted(v)
	return _u
}

// SetNillableUnattempted sets the "unattempted" field if the given value is not nil.
func (_u *AnalysisRunEventUpdate) SetNillableUnattempted(v *int) *AnalysisRunEventUpdate {
	if v != nil {
		_u.SetUnattempted(*v)
	}
	return _u
}

// AddUnattempted adds value to the "unattempted" field.
func (_u *AnalysisRunEventUpdate) AddUnattempted(v int) *AnalysisRunEventUpdate {
	_u.mutation.AddUnattempted(v)
	return _u
}

// SetUnknown sets the "unknown" field.
func (_u *AnalysisRunEventUpdate) SetUnknown(v int) *AnalysisRunEventUpdate {
	_u.mutation.ResetUnknown()
	_u.mutation.SetUnknown(v)
	return _u
}

// SetNillableUnknown sets the "unknown" field if the given value is not nil.
func (_u *AnalysisRunEventUpdate) SetNillableUnknown(v *int) *AnalysisRunEventUpdate {
	if v != nil {
		_u.SetUnknown(*v)
	}
	return _u
}

// AddUnknown adds value to the "unknown" field.
func (_u *AnalysisRunEventUpdate) AddUnknown(v int) *AnalysisRunEventUpdate {
	_u.mutation.AddUnknown(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *AnalysisRunEventUpdate) SetDurationMs(v int64) *AnalysisRunEventUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *AnalysisRunEventUpdate) SetNillableDurationMs(v *int64) *AnalysisRunEventUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *AnalysisRunEventUpdate) AddDurationMs(v int64) *AnalysisRunEventUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *AnalysisRunEventUpdate) SetSuccess(v bool) *AnalysisRunEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *AnalysisRunEventUpdate) SetNillableSuccess(v *bool) *AnalysisRunEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AnalysisRunEventUpdate) SetErrorMessage(v string) *AnalysisRunEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AnalysisRunEventUpdate) SetNillableErrorMessage(v *string) *AnalysisRunEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the AnalysisRunEventMutation object of the builder.
func (_u *AnalysisRunEventUpdate) Mutation() *AnalysisRunEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisRunEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisRunEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisRunEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisRunEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AnalysisRunEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(analysisrunevent.Table, analysisrunevent.Columns, sqlgraph.NewFieldSpec(analysisrunevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(analysisrunevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(analysisrunevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(analysisrunevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(analysisrunevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(analysisrunevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(analysisrunevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Wrong(); ok {
		_spec.SetField(analysisrunevent.FieldWrong, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWrong(); ok {
		_spec.AddField(analysisrunevent.FieldWrong, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Unattempted(); ok {
		_spec.SetField(analysisrunevent.FieldUnattempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnattempted(); ok {
		_spec.AddField(analysisrunevent.FieldUnattempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Unknown(); ok {
		_spec.SetField(analysisrunevent.FieldUnknown, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnknown(); ok {
		_spec.AddField(analysisrunevent.FieldUnknown, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(analysisrunevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(analysisrunevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(analysisrunevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(analysisrunevent.FieldErrorMessage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisrunevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisRunEventUpdateOne is the builder for updating a single AnalysisRunEvent entity.
type AnalysisRunEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisRunEventMutation
}

// SetRunID sets the "run_id" field.
func (_u *AnalysisRunEventUpdateOne) SetRunID(v string) *AnalysisRunEventUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *AnalysisRunEventUpdateOne) SetNillableRunID(v *string) *AnalysisRunEventUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *AnalysisRunEventUpdateOne) SetSource(v string) *AnalysisRunEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *AnalysisRunEventUpdateOne) SetNillableSource(v *string) *AnalysisRunEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *AnalysisRunEventUpdateOne) SetQuestionCount(v int) *AnalysisRunEventUpdateOne {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *AnalysisRunEventUpdateOne) SetNillableQuestionCount(v *int) *AnalysisRunEventUpdateOne {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *AnalysisRunEventUpdateOne) AddQuestionCount(v int) *AnalysisRunEventUpdateOne {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnalysisRunEventUpdateOne) SetCorrect(v int) *AnalysisRunEventUpdateOne {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnalysisRunEventUpdateOne) SetNillableCorrect(v *int) *AnalysisRunEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *AnalysisRunEventUpdateOne) AddCorrect(v int) *AnalysisRunEventUpdateOne {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetWrong sets the "wrong" field.
func (_u *AnalysisRunEventUpdateOne) SetWrong(v int) *AnalysisRunEventUpdateOne {
	_u.mutation.ResetWrong()
	_u.mutation.SetWrong(v)
	return _u
}

// SetNillableWrong sets the "wrong" field if the given value is not nil.
func (_u *AnalysisRunEventUpdateOne) SetNillableWrong(v *int) *AnalysisRunEventUpdateOne {
	if v != nil {
		_u.SetWrong(*v)
	}
	return _u
}

// AddWrong adds value to the "wrong" field.
func (_u *AnalysisRunEventUpdateOne) AddWrong(v int) *AnalysisRunEventUpdateOne {
	_u.mutation.AddWrong(v)
	return _u
}

// SetUnattempted sets the "unattempted" field.
func (_u *AnalysisRunEventUpdateOne) SetUnattempted(v int) *AnalysisRunEventUpdateOne {
	_u.mutation.ResetUnattempted()
	_u.mutation.SetUnattempted(v)
	return _u
}

// SetNillableUnattempted sets the "unattempted" field if the given value is not nil.
func (_u *AnalysisRunEventUpdateOne) SetNillableUnattempted(v *int) *AnalysisRunEventUpdateOne {
	if v != nil {
		_u.SetUnattempted(*v)
	}
	return _u
}

// AddUnattempted adds value to the "unattempted" field.
func (_u *AnalysisRunEventUpdateOne) AddUnattempted(v int) *AnalysisRunEventUpdateOne {
	_u.mutation.AddUnattempted(v)
	return _u
}

// SetUnknown sets the "unknown" field.
func (_u *AnalysisRunEventUpdateOne) SetUnknown(v int) *AnalysisRunEventUpdateOne {
	_u.mutation.ResetUnknown()
	_u.mutation.SetUnknown(v)
	return _u
}

// SetNillableUnknown sets the "unknown" field if the given value is not nil.
func (_u *AnalysisRunEventUpdateOne) SetNillableUnknown(v *int) *AnalysisRunEventUpdateOne {
	if v != nil {
		_u.SetUnknown(*v)
	}
	return _u
}

// AddUnknown adds value to the "unknown" field.
func (_u *AnalysisRunEventUpdateOne) AddUnknown(v int) *AnalysisRunEventUpdateOne {
	_u.mutation.AddUnknown(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *AnalysisRunEventUpdateOne) SetDurationMs(v int64) *AnalysisRunEventUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *AnalysisRunEventUpdateOne) SetNillableDurationMs(v *int64) *AnalysisRunEventUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *AnalysisRunEventUpdateOne) AddDurationMs(v int64) *AnalysisRunEventUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *AnalysisRunEventUpdateOne) SetSuccess(v bool) *AnalysisRunEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *AnalysisRunEventUpdateOne) SetNillableSuccess(v *bool) *AnalysisRunEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AnalysisRunEventUpdateOne) SetErrorMessage(v string) *AnalysisRunEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AnalysisRunEventUpdateOne) SetNillableErrorMessage(v *string) *AnalysisRunEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the AnalysisRunEventMutation object of the builder.
func (_u *AnalysisRunEventUpdateOne) Mutation() *AnalysisRunEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnalysisRunEventUpdate builder.
func (_u *AnalysisRunEventUpdateOne) Where(ps ...predicate.AnalysisRunEvent) *AnalysisRunEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisRunEventUpdateOne) Select(field string, fields ...string) *AnalysisRunEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnalysisRunEvent entity.
func (_u *AnalysisRunEventUpdateOne) Save(ctx context.Context) (*AnalysisRunEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisRunEventUpdateOne) SaveX(ctx context.Context) *AnalysisRunEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisRunEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisRunEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AnalysisRunEventUpdateOne) sqlSave(ctx context.Context) (_node *AnalysisRunEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(analysisrunevent.Table, analysisrunevent.Columns, sqlgraph.NewFieldSpec(analysisrunevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnalysisRunEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysisrunevent.FieldID)
		for _, f := range fields {
			if !analysisrunevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysisrunevent.FieldID {
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
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(analysisrunevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(analysisrunevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(analysisrunevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(analysisrunevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(analysisrunevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(analysisrunevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Wrong(); ok {
		_spec.SetField(analysisrunevent.FieldWrong, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWrong(); ok {
		_spec.AddField(analysisrunevent.FieldWrong, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Unattempted(); ok {
		_spec.SetField(analysisrunevent.FieldUnattempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnattempted(); ok {
		_spec.AddField(analysisrunevent.FieldUnattempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Unknown(); ok {
		_spec.SetField(analysisrunevent.FieldUnknown, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnknown(); ok {
		_spec.AddField(analysisrunevent.FieldUnknown, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(analysisrunevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(analysisrunevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(analysisrunevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(analysisrunevent.FieldErrorMessage, field.TypeString, value)
	}
	_node = &AnalysisRunEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisrunevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
