// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/tutorly/ent/practicesession"
	"github.com/abhisek/tutorly/ent/predicate"
)

// PracticeSessionUpdate is the builder for updating PracticeSession entities.
type PracticeSessionUpdate struct {
	config
	hooks    []Hook
	mutation *PracticeSessionMutation
}

// Where appends a list predicates to the PracticeSessionUpdate builder.
func (_u *PracticeSessionUpdate) Where(ps ...predicate.PracticeSession) *PracticeSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PracticeSessionUpdate) SetUserID(v string) *PracticeSessionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableUserID(v *string) *PracticeSessionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *PracticeSessionUpdate) SetSubject(v string) *PracticeSessionUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableSubject(v *string) *PracticeSessionUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *PracticeSessionUpdate) SetStartedAt(v time.Time) *PracticeSessionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableStartedAt(v *time.Time) *PracticeSessionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *PracticeSessionUpdate) SetEndedAt(v time.Time) *PracticeSessionUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableEndedAt(v *time.Time) *PracticeSessionUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *PracticeSessionUpdate) ClearEndedAt() *PracticeSessionUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetQuestionsAttempted sets the "questions_attempted" field.
func (_u *PracticeSessionUpdate) SetQuestionsAttempted(v int) *PracticeSessionUpdate {
	_u.mutation.ResetQuestionsAttempted()
	_u.mutation.SetQuestionsAttempted(v)
	return _u
}

// SetNillableQuestionsAttempted sets the "questions_attempted" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableQuestionsAttempted(v *int) *PracticeSessionUpdate {
	if v != nil {
		_u.SetQuestionsAttempted(*v)
	}
	return _u
}

// AddQuestionsAttempted adds value to the "questions_attempted" field.
func (_u *PracticeSessionUpdate) AddQuestionsAttempted(v int) *PracticeSessionUpdate {
	_u.mutation.AddQuestionsAttempted(v)
	return _u
}

// SetQuestionsCorrect sets the "questions_correct" field.
func (_u *PracticeSessionUpdate) SetQuestionsCorrect(v int) *PracticeSessionUpdate {
	_u.mutation.ResetQuestionsCorrect()
	_u.mutation.SetQuestionsCorrect(v)
	return _u
}

// SetNillableQuestionsCorrect sets the "questions_correct" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableQuestionsCorrect(v *int) *PracticeSessionUpdate {
	if v != nil {
		_u.SetQuestionsCorrect(*v)
	}
	return _u
}

// AddQuestionsCorrect adds value to the "questions_correct" field.
func (_u *PracticeSessionUpdate) AddQuestionsCorrect(v int) *PracticeSessionUpdate {
	_u.mutation.AddQuestionsCorrect(v)
	return _u
}

// SetTopics sets the "topics" field.
func (_u *PracticeSessionUpdate) SetTopics(v []string) *PracticeSessionUpdate {
	_u.mutation.SetTopics(v)
	return _u
}

// AppendTopics appends value to the "topics" field.
func (_u *PracticeSessionUpdate) AppendTopics(v []string) *PracticeSessionUpdate {
	_u.mutation.AppendTopics(v)
	return _u
}

// ClearTopics clears the value of the "topics" field.
func (_u *PracticeSessionUpdate) ClearTopics() *PracticeSessionUpdate {
	_u.mutation.ClearTopics()
	return _u
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_u *PracticeSessionUpdate) SetDifficultyLevel(v float64) *PracticeSessionUpdate {
	_u.mutation.ResetDifficultyLevel()
	_u.mutation.SetDifficultyLevel(v)
	return _u
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableDifficultyLevel(v *float64) *PracticeSessionUpdate {
	if v != nil {
		_u.SetDifficultyLevel(*v)
	}
	return _u
}

// AddDifficultyLevel adds value to the "difficulty_level" field.
func (_u *PracticeSessionUpdate) AddDifficultyLevel(v float64) *PracticeSessionUpdate {
	_u.mutation.AddDifficultyLevel(v)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *PracticeSessionUpdate) SetPayload(v map[string]interface{}) *PracticeSessionUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *PracticeSessionUpdate) ClearPayload() *PracticeSessionUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// Mutation returns the PracticeSessionMutation object of the builder.
func (_u *PracticeSessionUpdate) Mutation() *PracticeSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PracticeSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PracticeSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeSessionUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := practicesession.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := practicesession.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.subject": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practicesession.Table, practicesession.Columns, sqlgraph.NewFieldSpec(practicesession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(practicesession.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(practicesession.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(practicesession.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(practicesession.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(practicesession.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.QuestionsAttempted(); ok {
		_spec.SetField(practicesession.FieldQuestionsAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAttempted(); ok {
		_spec.AddField(practicesession.FieldQuestionsAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsCorrect(); ok {
		_spec.SetField(practicesession.FieldQuestionsCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsCorrect(); ok {
		_spec.AddField(practicesession.FieldQuestionsCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Topics(); ok {
		_spec.SetField(practicesession.FieldTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, practicesession.FieldTopics, value)
		})
	}
	if _u.mutation.TopicsCleared() {
		_spec.ClearField(practicesession.FieldTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.DifficultyLevel(); ok {
		_spec.SetField(practicesession.FieldDifficultyLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficultyLevel(); ok {
		_spec.AddField(practicesession.FieldDifficultyLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(practicesession.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(practicesession.FieldPayload, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practicesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PracticeSessionUpdateOne is the builder for updating a single PracticeSession entity.
type PracticeSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PracticeSessionMutation
}

// SetUserID sets the "user_id" field.
func (_u *PracticeSessionUpdateOne) SetUserID(v string) *PracticeSessionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableUserID(v *string) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *PracticeSessionUpdateOne) SetSubject(v string) *PracticeSessionUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableSubject(v *string) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *PracticeSessionUpdateOne) SetStartedAt(v time.Time) *PracticeSessionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableStartedAt(v *time.Time) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *PracticeSessionUpdateOne) SetEndedAt(v time.Time) *PracticeSessionUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableEndedAt(v *time.Time) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *PracticeSessionUpdateOne) ClearEndedAt() *PracticeSessionUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetQuestionsAttempted sets the "questions_attempted" field.
func (_u *PracticeSessionUpdateOne) SetQuestionsAttempted(v int) *PracticeSessionUpdateOne {
	_u.mutation.ResetQuestionsAttempted()
	_u.mutation.SetQuestionsAttempted(v)
	return _u
}

// SetNillableQuestionsAttempted sets the "questions_attempted" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableQuestionsAttempted(v *int) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetQuestionsAttempted(*v)
	}
	return _u
}

// AddQuestionsAttempted adds value to the "questions_attempted" field.
func (_u *PracticeSessionUpdateOne) AddQuestionsAttempted(v int) *PracticeSessionUpdateOne {
	_u.mutation.AddQuestionsAttempted(v)
	return _u
}

// SetQuestionsCorrect sets the "questions_correct" field.
func (_u *PracticeSessionUpdateOne) SetQuestionsCorrect(v int) *PracticeSessionUpdateOne {
	_u.mutation.ResetQuestionsCorrect()
	_u.mutation.SetQuestionsCorrect(v)
	return _u
}

// SetNillableQuestionsCorrect sets the "questions_correct" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableQuestionsCorrect(v *int) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetQuestionsCorrect(*v)
	}
	return _u
}

// AddQuestionsCorrect adds value to the "questions_correct" field.
func (_u *PracticeSessionUpdateOne) AddQuestionsCorrect(v int) *PracticeSessionUpdateOne {
	_u.mutation.AddQuestionsCorrect(v)
	return _u
}

// SetTopics sets the "topics" field.
func (_u *PracticeSessionUpdateOne) SetTopics(v []string) *PracticeSessionUpdateOne {
	_u.mutation.SetTopics(v)
	return _u
}

// AppendTopics appends value to the "topics" field.
func (_u *PracticeSessionUpdateOne) AppendTopics(v []string) *PracticeSessionUpdateOne {
	_u.mutation.AppendTopics(v)
	return _u
}

// ClearTopics clears the value of the "topics" field.
func (_u *PracticeSessionUpdateOne) ClearTopics() *PracticeSessionUpdateOne {
	_u.mutation.ClearTopics()
	return _u
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_u *PracticeSessionUpdateOne) SetDifficultyLevel(v float64) *PracticeSessionUpdateOne {
	_u.mutation.ResetDifficultyLevel()
	_u.mutation.SetDifficultyLevel(v)
	return _u
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableDifficultyLevel(v *float64) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetDifficultyLevel(*v)
	}
	return _u
}

// AddDifficultyLevel adds value to the "difficulty_level" field.
func (_u *PracticeSessionUpdateOne) AddDifficultyLevel(v float64) *PracticeSessionUpdateOne {
	_u.mutation.AddDifficultyLevel(v)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *PracticeSessionUpdateOne) SetPayload(v map[string]interface{}) *PracticeSessionUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *PracticeSessionUpdateOne) ClearPayload() *PracticeSessionUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// Mutation returns the PracticeSessionMutation object of the builder.
func (_u *PracticeSessionUpdateOne) Mutation() *PracticeSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the PracticeSessionUpdate builder.
func (_u *PracticeSessionUpdateOne) Where(ps ...predicate.PracticeSession) *PracticeSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PracticeSessionUpdateOne) Select(field string, fields ...string) *PracticeSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PracticeSession entity.
func (_u *PracticeSessionUpdateOne) Save(ctx context.Context) (*PracticeSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeSessionUpdateOne) SaveX(ctx context.Context) *PracticeSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PracticeSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeSessionUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := practicesession.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := practicesession.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.subject": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeSessionUpdateOne) sqlSave(ctx context.Context) (_node *PracticeSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practicesession.Table, practicesession.Columns, sqlgraph.NewFieldSpec(practicesession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PracticeSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, practicesession.FieldID)
		for _, f := range fields {
			if !practicesession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != practicesession.FieldID {
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
		_spec.SetField(practicesession.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(practicesession.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(practicesession.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(practicesession.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(practicesession.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.QuestionsAttempted(); ok {
		_spec.SetField(practicesession.FieldQuestionsAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAttempted(); ok {
		_spec.AddField(practicesession.FieldQuestionsAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsCorrect(); ok {
		_spec.SetField(practicesession.FieldQuestionsCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsCorrect(); ok {
		_spec.AddField(practicesession.FieldQuestionsCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Topics(); ok {
		_spec.SetField(practicesession.FieldTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, practicesession.FieldTopics, value)
		})
	}
	if _u.mutation.TopicsCleared() {
		_spec.ClearField(practicesession.FieldTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.DifficultyLevel(); ok {
		_spec.SetField(practicesession.FieldDifficultyLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficultyLevel(); ok {
		_spec.AddField(practicesession.FieldDifficultyLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(practicesession.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(practicesession.FieldPayload, field.TypeJSON)
	}
	_node = &PracticeSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practicesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
