// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/camposb/preu/ent/attemptevent"
	"github.com/camposb/preu/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *AttemptEventUpdate) SetAttemptID(v string) *AttemptEventUpdate {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableAttemptID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *AttemptEventUpdate) SetMode(v string) *AttemptEventUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableMode(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *AttemptEventUpdate) SetSubjectID(v string) *AttemptEventUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSubjectID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetScorePct sets the "score_pct" field.
func (_u *AttemptEventUpdate) SetScorePct(v int) *AttemptEventUpdate {
	_u.mutation.ResetScorePct()
	_u.mutation.SetScorePct(v)
	return _u
}

// SetNillableScorePct sets the "score_pct" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableScorePct(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetScorePct(*v)
	}
	return _u
}

// AddScorePct adds value to the "score_pct" field.
func (_u *AttemptEventUpdate) AddScorePct(v int) *AttemptEventUpdate {
	_u.mutation.AddScorePct(v)
	return _u
}

// SetTimeUsedMin sets the "time_used_min" field.
func (_u *AttemptEventUpdate) SetTimeUsedMin(v int) *AttemptEventUpdate {
	_u.mutation.ResetTimeUsedMin()
	_u.mutation.SetTimeUsedMin(v)
	return _u
}

// SetNillableTimeUsedMin sets the "time_used_min" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableTimeUsedMin(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetTimeUsedMin(*v)
	}
	return _u
}

// AddTimeUsedMin adds value to the "time_used_min" field.
func (_u *AttemptEventUpdate) AddTimeUsedMin(v int) *AttemptEventUpdate {
	_u.mutation.AddTimeUsedMin(v)
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *AttemptEventUpdate) SetQuestionCount(v int) *AttemptEventUpdate {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableQuestionCount(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *AttemptEventUpdate) AddQuestionCount(v int) *AttemptEventUpdate {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := attemptevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := attemptevent.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := attemptevent.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.subject_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(attemptevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(attemptevent.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(attemptevent.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScorePct(); ok {
		_spec.SetField(attemptevent.FieldScorePct, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScorePct(); ok {
		_spec.AddField(attemptevent.FieldScorePct, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeUsedMin(); ok {
		_spec.SetField(attemptevent.FieldTimeUsedMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeUsedMin(); ok {
		_spec.AddField(attemptevent.FieldTimeUsedMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(attemptevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(attemptevent.FieldQuestionCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetAttemptID sets the "attempt_id" field.
func (_u *AttemptEventUpdateOne) SetAttemptID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableAttemptID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *AttemptEventUpdateOne) SetMode(v string) *AttemptEventUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableMode(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *AttemptEventUpdateOne) SetSubjectID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSubjectID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetScorePct sets the "score_pct" field.
func (_u *AttemptEventUpdateOne) SetScorePct(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetScorePct()
	_u.mutation.SetScorePct(v)
	return _u
}

// SetNillableScorePct sets the "score_pct" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableScorePct(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetScorePct(*v)
	}
	return _u
}

// AddScorePct adds value to the "score_pct" field.
func (_u *AttemptEventUpdateOne) AddScorePct(v int) *AttemptEventUpdateOne {
	_u.mutation.AddScorePct(v)
	return _u
}

// SetTimeUsedMin sets the "time_used_min" field.
func (_u *AttemptEventUpdateOne) SetTimeUsedMin(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetTimeUsedMin()
	_u.mutation.SetTimeUsedMin(v)
	return _u
}

// SetNillableTimeUsedMin sets the "time_used_min" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableTimeUsedMin(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetTimeUsedMin(*v)
	}
	return _u
}

// AddTimeUsedMin adds value to the "time_used_min" field.
func (_u *AttemptEventUpdateOne) AddTimeUsedMin(v int) *AttemptEventUpdateOne {
	_u.mutation.AddTimeUsedMin(v)
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *AttemptEventUpdateOne) SetQuestionCount(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableQuestionCount(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *AttemptEventUpdateOne) AddQuestionCount(v int) *AttemptEventUpdateOne {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := attemptevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := attemptevent.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := attemptevent.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.subject_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
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
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(attemptevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(attemptevent.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(attemptevent.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScorePct(); ok {
		_spec.SetField(attemptevent.FieldScorePct, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScorePct(); ok {
		_spec.AddField(attemptevent.FieldScorePct, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeUsedMin(); ok {
		_spec.SetField(attemptevent.FieldTimeUsedMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeUsedMin(); ok {
		_spec.AddField(attemptevent.FieldTimeUsedMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(attemptevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(attemptevent.FieldQuestionCount, field.TypeInt, value)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
