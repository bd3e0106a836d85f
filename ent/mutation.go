// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/tutorly/ent/interactionevent"
	"github.com/abhisek/tutorly/ent/learningpattern"
	"github.com/abhisek/tutorly/ent/performancesnapshot"
	"github.com/abhisek/tutorly/ent/practicesession"
	"github.com/abhisek/tutorly/ent/predicate"
	"github.com/abhisek/tutorly/ent/subjectprogress"
	"github.com/abhisek/tutorly/ent/userfact"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeInteractionEvent    = "InteractionEvent"
	TypeLearningPattern     = "LearningPattern"
	TypePerformanceSnapshot = "PerformanceSnapshot"
	TypePracticeSession     = "PracticeSession"
	TypeSubjectProgress     = "SubjectProgress"
	TypeUserFact            = "UserFact"
)

// InteractionEventMutation represents an operation that mutates the InteractionEvent nodes in the graph.
type InteractionEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	record_id     *string
	user_id       *string
	kind          *string
	context       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*InteractionEvent, error)
	predicates    []predicate.InteractionEvent
}

var _ ent.Mutation = (*InteractionEventMutation)(nil)

// interactioneventOption allows management of the mutation configuration using functional options.
type interactioneventOption func(*InteractionEventMutation)

// newInteractionEventMutation creates new mutation for the InteractionEvent entity.
func newInteractionEventMutation(c config, op Op, opts ...interactioneventOption) *InteractionEventMutation {
	m := &InteractionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeInteractionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInteractionEventID sets the ID field of the mutation.
func withInteractionEventID(id int) interactioneventOption {
	return func(m *InteractionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *InteractionEvent
		)
		m.oldValue = func(ctx context.Context) (*InteractionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InteractionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInteractionEvent sets the old InteractionEvent of the mutation.
func withInteractionEvent(node *InteractionEvent) interactioneventOption {
	return func(m *InteractionEventMutation) {
		m.oldValue = func(context.Context) (*InteractionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InteractionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InteractionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InteractionEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InteractionEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InteractionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRecordID sets the "record_id" field.
func (m *InteractionEventMutation) SetRecordID(s string) {
	m.record_id = &s
}

// RecordID returns the value of the "record_id" field in the mutation.
func (m *InteractionEventMutation) RecordID() (r string, exists bool) {
	v := m.record_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordID returns the old "record_id" field's value of the InteractionEvent entity.
// If the InteractionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionEventMutation) OldRecordID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordID: %w", err)
	}
	return oldValue.RecordID, nil
}

// ResetRecordID resets all changes to the "record_id" field.
func (m *InteractionEventMutation) ResetRecordID() {
	m.record_id = nil
}

// SetUserID sets the "user_id" field.
func (m *InteractionEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *InteractionEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the InteractionEvent entity.
// If the InteractionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *InteractionEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetKind sets the "kind" field.
func (m *InteractionEventMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *InteractionEventMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the InteractionEvent entity.
// If the InteractionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionEventMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *InteractionEventMutation) ResetKind() {
	m.kind = nil
}

// SetContext sets the "context" field.
func (m *InteractionEventMutation) SetContext(value map[string]interface{}) {
	m.context = &value
}

// Context returns the value of the "context" field in the mutation.
func (m *InteractionEventMutation) Context() (r map[string]interface{}, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the InteractionEvent entity.
// If the InteractionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionEventMutation) OldContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ClearContext clears the value of the "context" field.
func (m *InteractionEventMutation) ClearContext() {
	m.context = nil
	m.clearedFields[interactionevent.FieldContext] = struct{}{}
}

// ContextCleared returns if the "context" field was cleared in this mutation.
func (m *InteractionEventMutation) ContextCleared() bool {
	_, ok := m.clearedFields[interactionevent.FieldContext]
	return ok
}

// ResetContext resets all changes to the "context" field.
func (m *InteractionEventMutation) ResetContext() {
	m.context = nil
	delete(m.clearedFields, interactionevent.FieldContext)
}

// SetCreatedAt sets the "created_at" field.
func (m *InteractionEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InteractionEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the InteractionEvent entity.
// If the InteractionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InteractionEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the InteractionEventMutation builder.
func (m *InteractionEventMutation) Where(ps ...predicate.InteractionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InteractionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InteractionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InteractionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InteractionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InteractionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InteractionEvent).
func (m *InteractionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InteractionEventMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.record_id != nil {
		fields = append(fields, interactionevent.FieldRecordID)
	}
	if m.user_id != nil {
		fields = append(fields, interactionevent.FieldUserID)
	}
	if m.kind != nil {
		fields = append(fields, interactionevent.FieldKind)
	}
	if m.context != nil {
		fields = append(fields, interactionevent.FieldContext)
	}
	if m.created_at != nil {
		fields = append(fields, interactionevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InteractionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case interactionevent.FieldRecordID:
		return m.RecordID()
	case interactionevent.FieldUserID:
		return m.UserID()
	case interactionevent.FieldKind:
		return m.Kind()
	case interactionevent.FieldContext:
		return m.Context()
	case interactionevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InteractionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case interactionevent.FieldRecordID:
		return m.OldRecordID(ctx)
	case interactionevent.FieldUserID:
		return m.OldUserID(ctx)
	case interactionevent.FieldKind:
		return m.OldKind(ctx)
	case interactionevent.FieldContext:
		return m.OldContext(ctx)
	case interactionevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown InteractionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InteractionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case interactionevent.FieldRecordID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordID(v)
		return nil
	case interactionevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case interactionevent.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case interactionevent.FieldContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case interactionevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown InteractionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InteractionEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InteractionEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InteractionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown InteractionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InteractionEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(interactionevent.FieldContext) {
		fields = append(fields, interactionevent.FieldContext)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InteractionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InteractionEventMutation) ClearField(name string) error {
	switch name {
	case interactionevent.FieldContext:
		m.ClearContext()
		return nil
	}
	return fmt.Errorf("unknown InteractionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InteractionEventMutation) ResetField(name string) error {
	switch name {
	case interactionevent.FieldRecordID:
		m.ResetRecordID()
		return nil
	case interactionevent.FieldUserID:
		m.ResetUserID()
		return nil
	case interactionevent.FieldKind:
		m.ResetKind()
		return nil
	case interactionevent.FieldContext:
		m.ResetContext()
		return nil
	case interactionevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown InteractionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InteractionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InteractionEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InteractionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InteractionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InteractionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InteractionEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InteractionEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown InteractionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InteractionEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown InteractionEvent edge %s", name)
}

// LearningPatternMutation represents an operation that mutates the LearningPattern nodes in the graph.
type LearningPatternMutation struct {
	config
	op                        Op
	typ                       string
	id                        *int
	user_id                   *string
	subject                   *string
	style                     *string
	preferred_hint_type       *string
	attention_span            *string
	error_patterns            *[]string
	appenderror_patterns      []string
	mastery_levels            *map[string]float64
	improvement_rate          *float64
	addimprovement_rate       *float64
	struggling_areas          *[]string
	appendstruggling_areas    []string
	improving_areas           *[]string
	appendimproving_areas     []string
	recommended_difficulty    *float64
	addrecommended_difficulty *float64
	last_analyzed             *time.Time
	clearedFields             map[string]struct{}
	done                      bool
	oldValue                  func(context.Context) (*LearningPattern, error)
	predicates                []predicate.LearningPattern
}

var _ ent.Mutation = (*LearningPatternMutation)(nil)

// learningpatternOption allows management of the mutation configuration using functional options.
type learningpatternOption func(*LearningPatternMutation)

// newLearningPatternMutation creates new mutation for the LearningPattern entity.
func newLearningPatternMutation(c config, op Op, opts ...learningpatternOption) *LearningPatternMutation {
	m := &LearningPatternMutation{
		config:        c,
		op:            op,
		typ:           TypeLearningPattern,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLearningPatternID sets the ID field of the mutation.
func withLearningPatternID(id int) learningpatternOption {
	return func(m *LearningPatternMutation) {
		var (
			err   error
			once  sync.Once
			value *LearningPattern
		)
		m.oldValue = func(ctx context.Context) (*LearningPattern, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LearningPattern.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLearningPattern sets the old LearningPattern of the mutation.
func withLearningPattern(node *LearningPattern) learningpatternOption {
	return func(m *LearningPatternMutation) {
		m.oldValue = func(context.Context) (*LearningPattern, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LearningPatternMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LearningPatternMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LearningPatternMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LearningPatternMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LearningPattern.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *LearningPatternMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *LearningPatternMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the LearningPattern entity.
// If the LearningPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPatternMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *LearningPatternMutation) ResetUserID() {
	m.user_id = nil
}

// SetSubject sets the "subject" field.
func (m *LearningPatternMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *LearningPatternMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the LearningPattern entity.
// If the LearningPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPatternMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *LearningPatternMutation) ResetSubject() {
	m.subject = nil
}

// SetStyle sets the "style" field.
func (m *LearningPatternMutation) SetStyle(s string) {
	m.style = &s
}

// Style returns the value of the "style" field in the mutation.
func (m *LearningPatternMutation) Style() (r string, exists bool) {
	v := m.style
	if v == nil {
		return
	}
	return *v, true
}

// OldStyle returns the old "style" field's value of the LearningPattern entity.
// If the LearningPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPatternMutation) OldStyle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStyle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStyle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStyle: %w", err)
	}
	return oldValue.Style, nil
}

// ResetStyle resets all changes to the "style" field.
func (m *LearningPatternMutation) ResetStyle() {
	m.style = nil
}

// SetPreferredHintType sets the "preferred_hint_type" field.
func (m *LearningPatternMutation) SetPreferredHintType(s string) {
	m.preferred_hint_type = &s
}

// PreferredHintType returns the value of the "preferred_hint_type" field in the mutation.
func (m *LearningPatternMutation) PreferredHintType() (r string, exists bool) {
	v := m.preferred_hint_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPreferredHintType returns the old "preferred_hint_type" field's value of the LearningPattern entity.
// If the LearningPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPatternMutation) OldPreferredHintType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreferredHintType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreferredHintType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreferredHintType: %w", err)
	}
	return oldValue.PreferredHintType, nil
}

// ResetPreferredHintType resets all changes to the "preferred_hint_type" field.
func (m *LearningPatternMutation) ResetPreferredHintType() {
	m.preferred_hint_type = nil
}

// SetAttentionSpan sets the "attention_span" field.
func (m *LearningPatternMutation) SetAttentionSpan(s string) {
	m.attention_span = &s
}

// AttentionSpan returns the value of the "attention_span" field in the mutation.
func (m *LearningPatternMutation) AttentionSpan() (r string, exists bool) {
	v := m.attention_span
	if v == nil {
		return
	}
	return *v, true
}

// OldAttentionSpan returns the old "attention_span" field's value of the LearningPattern entity.
// If the LearningPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPatternMutation) OldAttentionSpan(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttentionSpan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttentionSpan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttentionSpan: %w", err)
	}
	return oldValue.AttentionSpan, nil
}

// ResetAttentionSpan resets all changes to the "attention_span" field.
func (m *LearningPatternMutation) ResetAttentionSpan() {
	m.attention_span = nil
}

// SetErrorPatterns sets the "error_patterns" field.
func (m *LearningPatternMutation) SetErrorPatterns(s []string) {
	m.error_patterns = &s
	m.appenderror_patterns = nil
}

// ErrorPatterns returns the value of the "error_patterns" field in the mutation.
func (m *LearningPatternMutation) ErrorPatterns() (r []string, exists bool) {
	v := m.error_patterns
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorPatterns returns the old "error_patterns" field's value of the LearningPattern entity.
// If the LearningPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPatternMutation) OldErrorPatterns(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorPatterns is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorPatterns requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorPatterns: %w", err)
	}
	return oldValue.ErrorPatterns, nil
}

// AppendErrorPatterns adds s to the "error_patterns" field.
func (m *LearningPatternMutation) AppendErrorPatterns(s []string) {
	m.appenderror_patterns = append(m.appenderror_patterns, s...)
}

// AppendedErrorPatterns returns the list of values that were appended to the "error_patterns" field in this mutation.
func (m *LearningPatternMutation) AppendedErrorPatterns() ([]string, bool) {
	if len(m.appenderror_patterns) == 0 {
		return nil, false
	}
	return m.appenderror_patterns, true
}

// ClearErrorPatterns clears the value of the "error_patterns" field.
func (m *LearningPatternMutation) ClearErrorPatterns() {
	m.error_patterns = nil
	m.appenderror_patterns = nil
	m.clearedFields[learningpattern.FieldErrorPatterns] = struct{}{}
}

// ErrorPatternsCleared returns if the "error_patterns" field was cleared in this mutation.
func (m *LearningPatternMutation) ErrorPatternsCleared() bool {
	_, ok := m.clearedFields[learningpattern.FieldErrorPatterns]
	return ok
}

// ResetErrorPatterns resets all changes to the "error_patterns" field.
func (m *LearningPatternMutation) ResetErrorPatterns() {
	m.error_patterns = nil
	m.appenderror_patterns = nil
	delete(m.clearedFields, learningpattern.FieldErrorPatterns)
}

// SetMasteryLevels sets the "mastery_levels" field.
func (m *LearningPatternMutation) SetMasteryLevels(value map[string]float64) {
	m.mastery_levels = &value
}

// MasteryLevels returns the value of the "mastery_levels" field in the mutation.
func (m *LearningPatternMutation) MasteryLevels() (r map[string]float64, exists bool) {
	v := m.mastery_levels
	if v == nil {
		return
	}
	return *v, true
}

// OldMasteryLevels returns the old "mastery_levels" field's value of the LearningPattern entity.
// If the LearningPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPatternMutation) OldMasteryLevels(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMasteryLevels is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMasteryLevels requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMasteryLevels: %w", err)
	}
	return oldValue.MasteryLevels, nil
}

// ClearMasteryLevels clears the value of the "mastery_levels" field.
func (m *LearningPatternMutation) ClearMasteryLevels() {
	m.mastery_levels = nil
	m.clearedFields[learningpattern.FieldMasteryLevels] = struct{}{}
}

// MasteryLevelsCleared returns if the "mastery_levels" field was cleared in this mutation.
func (m *LearningPatternMutation) MasteryLevelsCleared() bool {
	_, ok := m.clearedFields[learningpattern.FieldMasteryLevels]
	return ok
}

// ResetMasteryLevels resets all changes to the "mastery_levels" field.
func (m *LearningPatternMutation) ResetMasteryLevels() {
	m.mastery_levels = nil
	delete(m.clearedFields, learningpattern.FieldMasteryLevels)
}

// SetImprovementRate sets the "improvement_rate" field.
func (m *LearningPatternMutation) SetImprovementRate(f float64) {
	m.improvement_rate = &f
	m.addimprovement_rate = nil
}

// ImprovementRate returns the value of the "improvement_rate" field in the mutation.
func (m *LearningPatternMutation) ImprovementRate() (r float64, exists bool) {
	v := m.improvement_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldImprovementRate returns the old "improvement_rate" field's value of the LearningPattern entity.
// If the LearningPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPatternMutation) OldImprovementRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImprovementRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImprovementRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImprovementRate: %w", err)
	}
	return oldValue.ImprovementRate, nil
}

// AddImprovementRate adds f to the "improvement_rate" field.
func (m *LearningPatternMutation) AddImprovementRate(f float64) {
	if m.addimprovement_rate != nil {
		*m.addimprovement_rate += f
	} else {
		m.addimprovement_rate = &f
	}
}

// AddedImprovementRate returns the value that was added to the "improvement_rate" field in this mutation.
func (m *LearningPatternMutation) AddedImprovementRate() (r float64, exists bool) {
	v := m.addimprovement_rate
	if v == nil {
		return
	}
	return *v, true
}

// ResetImprovementRate resets all changes to the "improvement_rate" field.
func (m *LearningPatternMutation) ResetImprovementRate() {
	m.improvement_rate = nil
	m.addimprovement_rate = nil
}

// SetStrugglingAreas sets the "struggling_areas" field.
func (m *LearningPatternMutation) SetStrugglingAreas(s []string) {
	m.struggling_areas = &s
	m.appendstruggling_areas = nil
}

// StrugglingAreas returns the value of the "struggling_areas" field in the mutation.
func (m *LearningPatternMutation) StrugglingAreas() (r []string, exists bool) {
	v := m.struggling_areas
	if v == nil {
		return
	}
	return *v, true
}

// OldStrugglingAreas returns the old "struggling_areas" field's value of the LearningPattern entity.
// If the LearningPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPatternMutation) OldStrugglingAreas(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrugglingAreas is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrugglingAreas requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrugglingAreas: %w", err)
	}
	return oldValue.StrugglingAreas, nil
}

// AppendStrugglingAreas adds s to the "struggling_areas" field.
func (m *LearningPatternMutation) AppendStrugglingAreas(s []string) {
	m.appendstruggling_areas = append(m.appendstruggling_areas, s...)
}

// AppendedStrugglingAreas returns the list of values that were appended to the "struggling_areas" field in this mutation.
func (m *LearningPatternMutation) AppendedStrugglingAreas() ([]string, bool) {
	if len(m.appendstruggling_areas) == 0 {
		return nil, false
	}
	return m.appendstruggling_areas, true
}

// ClearStrugglingAreas clears the value of the "struggling_areas" field.
func (m *LearningPatternMutation) ClearStrugglingAreas() {
	m.struggling_areas = nil
	m.appendstruggling_areas = nil
	m.clearedFields[learningpattern.FieldStrugglingAreas] = struct{}{}
}

// StrugglingAreasCleared returns if the "struggling_areas" field was cleared in this mutation.
func (m *LearningPatternMutation) StrugglingAreasCleared() bool {
	_, ok := m.clearedFields[learningpattern.FieldStrugglingAreas]
	return ok
}

// ResetStrugglingAreas resets all changes to the "struggling_areas" field.
func (m *LearningPatternMutation) ResetStrugglingAreas() {
	m.struggling_areas = nil
	m.appendstruggling_areas = nil
	delete(m.clearedFields, learningpattern.FieldStrugglingAreas)
}

// SetImprovingAreas sets the "improving_areas" field.
func (m *LearningPatternMutation) SetImprovingAreas(s []string) {
	m.improving_areas = &s
	m.appendimproving_areas = nil
}

// ImprovingAreas returns the value of the "improving_areas" field in the mutation.
func (m *LearningPatternMutation) ImprovingAreas() (r []string, exists bool) {
	v := m.improving_areas
	if v == nil {
		return
	}
	return *v, true
}

// OldImprovingAreas returns the old "improving_areas" field's value of the LearningPattern entity.
// If the LearningPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPatternMutation) OldImprovingAreas(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImprovingAreas is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImprovingAreas requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImprovingAreas: %w", err)
	}
	return oldValue.ImprovingAreas, nil
}

// AppendImprovingAreas adds s to the "improving_areas" field.
func (m *LearningPatternMutation) AppendImprovingAreas(s []string) {
	m.appendimproving_areas = append(m.appendimproving_areas, s...)
}

// AppendedImprovingAreas returns the list of values that were appended to the "improving_areas" field in this mutation.
func (m *LearningPatternMutation) AppendedImprovingAreas() ([]string, bool) {
	if len(m.appendimproving_areas) == 0 {
		return nil, false
	}
	return m.appendimproving_areas, true
}

// ClearImprovingAreas clears the value of the "improving_areas" field.
func (m *LearningPatternMutation) ClearImprovingAreas() {
	m.improving_areas = nil
	m.appendimproving_areas = nil
	m.clearedFields[learningpattern.FieldImprovingAreas] = struct{}{}
}

// ImprovingAreasCleared returns if the "improving_areas" field was cleared in this mutation.
func (m *LearningPatternMutation) ImprovingAreasCleared() bool {
	_, ok := m.clearedFields[learningpattern.FieldImprovingAreas]
	return ok
}

// ResetImprovingAreas resets all changes to the "improving_areas" field.
func (m *LearningPatternMutation) ResetImprovingAreas() {
	m.improving_areas = nil
	m.appendimproving_areas = nil
	delete(m.clearedFields, learningpattern.FieldImprovingAreas)
}

// SetRecommendedDifficulty sets the "recommended_difficulty" field.
func (m *LearningPatternMutation) SetRecommendedDifficulty(f float64) {
	m.recommended_difficulty = &f
	m.addrecommended_difficulty = nil
}

// RecommendedDifficulty returns the value of the "recommended_difficulty" field in the mutation.
func (m *LearningPatternMutation) RecommendedDifficulty() (r float64, exists bool) {
	v := m.recommended_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendedDifficulty returns the old "recommended_difficulty" field's value of the LearningPattern entity.
// If the LearningPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPatternMutation) OldRecommendedDifficulty(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendedDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendedDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendedDifficulty: %w", err)
	}
	return oldValue.RecommendedDifficulty, nil
}

// AddRecommendedDifficulty adds f to the "recommended_difficulty" field.
func (m *LearningPatternMutation) AddRecommendedDifficulty(f float64) {
	if m.addrecommended_difficulty != nil {
		*m.addrecommended_difficulty += f
	} else {
		m.addrecommended_difficulty = &f
	}
}

// AddedRecommendedDifficulty returns the value that was added to the "recommended_difficulty" field in this mutation.
func (m *LearningPatternMutation) AddedRecommendedDifficulty() (r float64, exists bool) {
	v := m.addrecommended_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecommendedDifficulty resets all changes to the "recommended_difficulty" field.
func (m *LearningPatternMutation) ResetRecommendedDifficulty() {
	m.recommended_difficulty = nil
	m.addrecommended_difficulty = nil
}

// SetLastAnalyzed sets the "last_analyzed" field.
func (m *LearningPatternMutation) SetLastAnalyzed(t time.Time) {
	m.last_analyzed = &t
}

// LastAnalyzed returns the value of the "last_analyzed" field in the mutation.
func (m *LearningPatternMutation) LastAnalyzed() (r time.Time, exists bool) {
	v := m.last_analyzed
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAnalyzed returns the old "last_analyzed" field's value of the LearningPattern entity.
// If the LearningPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPatternMutation) OldLastAnalyzed(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAnalyzed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAnalyzed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAnalyzed: %w", err)
	}
	return oldValue.LastAnalyzed, nil
}

// ResetLastAnalyzed resets all changes to the "last_analyzed" field.
func (m *LearningPatternMutation) ResetLastAnalyzed() {
	m.last_analyzed = nil
}

// Where appends a list predicates to the LearningPatternMutation builder.
func (m *LearningPatternMutation) Where(ps ...predicate.LearningPattern) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LearningPatternMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LearningPatternMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LearningPattern, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LearningPatternMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LearningPatternMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LearningPattern).
func (m *LearningPatternMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LearningPatternMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.user_id != nil {
		fields = append(fields, learningpattern.FieldUserID)
	}
	if m.subject != nil {
		fields = append(fields, learningpattern.FieldSubject)
	}
	if m.style != nil {
		fields = append(fields, learningpattern.FieldStyle)
	}
	if m.preferred_hint_type != nil {
		fields = append(fields, learningpattern.FieldPreferredHintType)
	}
	if m.attention_span != nil {
		fields = append(fields, learningpattern.FieldAttentionSpan)
	}
	if m.error_patterns != nil {
		fields = append(fields, learningpattern.FieldErrorPatterns)
	}
	if m.mastery_levels != nil {
		fields = append(fields, learningpattern.FieldMasteryLevels)
	}
	if m.improvement_rate != nil {
		fields = append(fields, learningpattern.FieldImprovementRate)
	}
	if m.struggling_areas != nil {
		fields = append(fields, learningpattern.FieldStrugglingAreas)
	}
	if m.improving_areas != nil {
		fields = append(fields, learningpattern.FieldImprovingAreas)
	}
	if m.recommended_difficulty != nil {
		fields = append(fields, learningpattern.FieldRecommendedDifficulty)
	}
	if m.last_analyzed != nil {
		fields = append(fields, learningpattern.FieldLastAnalyzed)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LearningPatternMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case learningpattern.FieldUserID:
		return m.UserID()
	case learningpattern.FieldSubject:
		return m.Subject()
	case learningpattern.FieldStyle:
		return m.Style()
	case learningpattern.FieldPreferredHintType:
		return m.PreferredHintType()
	case learningpattern.FieldAttentionSpan:
		return m.AttentionSpan()
	case learningpattern.FieldErrorPatterns:
		return m.ErrorPatterns()
	case learningpattern.FieldMasteryLevels:
		return m.MasteryLevels()
	case learningpattern.FieldImprovementRate:
		return m.ImprovementRate()
	case learningpattern.FieldStrugglingAreas:
		return m.StrugglingAreas()
	case learningpattern.FieldImprovingAreas:
		return m.ImprovingAreas()
	case learningpattern.FieldRecommendedDifficulty:
		return m.RecommendedDifficulty()
	case learningpattern.FieldLastAnalyzed:
		return m.LastAnalyzed()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LearningPatternMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case learningpattern.FieldUserID:
		return m.OldUserID(ctx)
	case learningpattern.FieldSubject:
		return m.OldSubject(ctx)
	case learningpattern.FieldStyle:
		return m.OldStyle(ctx)
	case learningpattern.FieldPreferredHintType:
		return m.OldPreferredHintType(ctx)
	case learningpattern.FieldAttentionSpan:
		return m.OldAttentionSpan(ctx)
	case learningpattern.FieldErrorPatterns:
		return m.OldErrorPatterns(ctx)
	case learningpattern.FieldMasteryLevels:
		return m.OldMasteryLevels(ctx)
	case learningpattern.FieldImprovementRate:
		return m.OldImprovementRate(ctx)
	case learningpattern.FieldStrugglingAreas:
		return m.OldStrugglingAreas(ctx)
	case learningpattern.FieldImprovingAreas:
		return m.OldImprovingAreas(ctx)
	case learningpattern.FieldRecommendedDifficulty:
		return m.OldRecommendedDifficulty(ctx)
	case learningpattern.FieldLastAnalyzed:
		return m.OldLastAnalyzed(ctx)
	}
	return nil, fmt.Errorf("unknown LearningPattern field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearningPatternMutation) SetField(name string, value ent.Value) error {
	switch name {
	case learningpattern.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case learningpattern.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case learningpattern.FieldStyle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStyle(v)
		return nil
	case learningpattern.FieldPreferredHintType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreferredHintType(v)
		return nil
	case learningpattern.FieldAttentionSpan:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttentionSpan(v)
		return nil
	case learningpattern.FieldErrorPatterns:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorPatterns(v)
		return nil
	case learningpattern.FieldMasteryLevels:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMasteryLevels(v)
		return nil
	case learningpattern.FieldImprovementRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImprovementRate(v)
		return nil
	case learningpattern.FieldStrugglingAreas:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrugglingAreas(v)
		return nil
	case learningpattern.FieldImprovingAreas:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImprovingAreas(v)
		return nil
	case learningpattern.FieldRecommendedDifficulty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendedDifficulty(v)
		return nil
	case learningpattern.FieldLastAnalyzed:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAnalyzed(v)
		return nil
	}
	return fmt.Errorf("unknown LearningPattern field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LearningPatternMutation) AddedFields() []string {
	var fields []string
	if m.addimprovement_rate != nil {
		fields = append(fields, learningpattern.FieldImprovementRate)
	}
	if m.addrecommended_difficulty != nil {
		fields = append(fields, learningpattern.FieldRecommendedDifficulty)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LearningPatternMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case learningpattern.FieldImprovementRate:
		return m.AddedImprovementRate()
	case learningpattern.FieldRecommendedDifficulty:
		return m.AddedRecommendedDifficulty()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearningPatternMutation) AddField(name string, value ent.Value) error {
	switch name {
	case learningpattern.FieldImprovementRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddImprovementRate(v)
		return nil
	case learningpattern.FieldRecommendedDifficulty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecommendedDifficulty(v)
		return nil
	}
	return fmt.Errorf("unknown LearningPattern numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LearningPatternMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(learningpattern.FieldErrorPatterns) {
		fields = append(fields, learningpattern.FieldErrorPatterns)
	}
	if m.FieldCleared(learningpattern.FieldMasteryLevels) {
		fields = append(fields, learningpattern.FieldMasteryLevels)
	}
	if m.FieldCleared(learningpattern.FieldStrugglingAreas) {
		fields = append(fields, learningpattern.FieldStrugglingAreas)
	}
	if m.FieldCleared(learningpattern.FieldImprovingAreas) {
		fields = append(fields, learningpattern.FieldImprovingAreas)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LearningPatternMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LearningPatternMutation) ClearField(name string) error {
	switch name {
	case learningpattern.FieldErrorPatterns:
		m.ClearErrorPatterns()
		return nil
	case learningpattern.FieldMasteryLevels:
		m.ClearMasteryLevels()
		return nil
	case learningpattern.FieldStrugglingAreas:
		m.ClearStrugglingAreas()
		return nil
	case learningpattern.FieldImprovingAreas:
		m.ClearImprovingAreas()
		return nil
	}
	return fmt.Errorf("unknown LearningPattern nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LearningPatternMutation) ResetField(name string) error {
	switch name {
	case learningpattern.FieldUserID:
		m.ResetUserID()
		return nil
	case learningpattern.FieldSubject:
		m.ResetSubject()
		return nil
	case learningpattern.FieldStyle:
		m.ResetStyle()
		return nil
	case learningpattern.FieldPreferredHintType:
		m.ResetPreferredHintType()
		return nil
	case learningpattern.FieldAttentionSpan:
		m.ResetAttentionSpan()
		return nil
	case learningpattern.FieldErrorPatterns:
		m.ResetErrorPatterns()
		return nil
	case learningpattern.FieldMasteryLevels:
		m.ResetMasteryLevels()
		return nil
	case learningpattern.FieldImprovementRate:
		m.ResetImprovementRate()
		return nil
	case learningpattern.FieldStrugglingAreas:
		m.ResetStrugglingAreas()
		return nil
	case learningpattern.FieldImprovingAreas:
		m.ResetImprovingAreas()
		return nil
	case learningpattern.FieldRecommendedDifficulty:
		m.ResetRecommendedDifficulty()
		return nil
	case learningpattern.FieldLastAnalyzed:
		m.ResetLastAnalyzed()
		return nil
	}
	return fmt.Errorf("unknown LearningPattern field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LearningPatternMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LearningPatternMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LearningPatternMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LearningPatternMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LearningPatternMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LearningPatternMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LearningPatternMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LearningPattern unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LearningPatternMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LearningPattern edge %s", name)
}

// PerformanceSnapshotMutation represents an operation that mutates the PerformanceSnapshot nodes in the graph.
type PerformanceSnapshotMutation struct {
	config
	op               Op
	typ              string
	id               *int
	record_id        *string
	user_id          *string
	subject          *string
	overall_score    *float64
	addoverall_score *float64
	topic_scores     *map[string]float64
	taken_at         *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*PerformanceSnapshot, error)
	predicates       []predicate.PerformanceSnapshot
}

var _ ent.Mutation = (*PerformanceSnapshotMutation)(nil)

// performancesnapshotOption allows management of the mutation configuration using functional options.
type performancesnapshotOption func(*PerformanceSnapshotMutation)

// newPerformanceSnapshotMutation creates new mutation for the PerformanceSnapshot entity.
func newPerformanceSnapshotMutation(c config, op Op, opts ...performancesnapshotOption) *PerformanceSnapshotMutation {
	m := &PerformanceSnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypePerformanceSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPerformanceSnapshotID sets the ID field of the mutation.
func withPerformanceSnapshotID(id int) performancesnapshotOption {
	return func(m *PerformanceSnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *PerformanceSnapshot
		)
		m.oldValue = func(ctx context.Context) (*PerformanceSnapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PerformanceSnapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPerformanceSnapshot sets the old PerformanceSnapshot of the mutation.
func withPerformanceSnapshot(node *PerformanceSnapshot) performancesnapshotOption {
	return func(m *PerformanceSnapshotMutation) {
		m.oldValue = func(context.Context) (*PerformanceSnapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PerformanceSnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PerformanceSnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PerformanceSnapshotMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PerformanceSnapshotMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PerformanceSnapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRecordID sets the "record_id" field.
func (m *PerformanceSnapshotMutation) SetRecordID(s string) {
	m.record_id = &s
}

// RecordID returns the value of the "record_id" field in the mutation.
func (m *PerformanceSnapshotMutation) RecordID() (r string, exists bool) {
	v := m.record_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordID returns the old "record_id" field's value of the PerformanceSnapshot entity.
// If the PerformanceSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceSnapshotMutation) OldRecordID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordID: %w", err)
	}
	return oldValue.RecordID, nil
}

// ResetRecordID resets all changes to the "record_id" field.
func (m *PerformanceSnapshotMutation) ResetRecordID() {
	m.record_id = nil
}

// SetUserID sets the "user_id" field.
func (m *PerformanceSnapshotMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PerformanceSnapshotMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the PerformanceSnapshot entity.
// If the PerformanceSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceSnapshotMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PerformanceSnapshotMutation) ResetUserID() {
	m.user_id = nil
}

// SetSubject sets the "subject" field.
func (m *PerformanceSnapshotMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *PerformanceSnapshotMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the PerformanceSnapshot entity.
// If the PerformanceSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceSnapshotMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *PerformanceSnapshotMutation) ResetSubject() {
	m.subject = nil
}

// SetOverallScore sets the "overall_score" field.
func (m *PerformanceSnapshotMutation) SetOverallScore(f float64) {
	m.overall_score = &f
	m.addoverall_score = nil
}

// OverallScore returns the value of the "overall_score" field in the mutation.
func (m *PerformanceSnapshotMutation) OverallScore() (r float64, exists bool) {
	v := m.overall_score
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallScore returns the old "overall_score" field's value of the PerformanceSnapshot entity.
// If the PerformanceSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceSnapshotMutation) OldOverallScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallScore: %w", err)
	}
	return oldValue.OverallScore, nil
}

// AddOverallScore adds f to the "overall_score" field.
func (m *PerformanceSnapshotMutation) AddOverallScore(f float64) {
	if m.addoverall_score != nil {
		*m.addoverall_score += f
	} else {
		m.addoverall_score = &f
	}
}

// AddedOverallScore returns the value that was added to the "overall_score" field in this mutation.
func (m *PerformanceSnapshotMutation) AddedOverallScore() (r float64, exists bool) {
	v := m.addoverall_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetOverallScore resets all changes to the "overall_score" field.
func (m *PerformanceSnapshotMutation) ResetOverallScore() {
	m.overall_score = nil
	m.addoverall_score = nil
}

// SetTopicScores sets the "topic_scores" field.
func (m *PerformanceSnapshotMutation) SetTopicScores(value map[string]float64) {
	m.topic_scores = &value
}

// TopicScores returns the value of the "topic_scores" field in the mutation.
func (m *PerformanceSnapshotMutation) TopicScores() (r map[string]float64, exists bool) {
	v := m.topic_scores
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicScores returns the old "topic_scores" field's value of the PerformanceSnapshot entity.
// If the PerformanceSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceSnapshotMutation) OldTopicScores(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicScores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicScores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicScores: %w", err)
	}
	return oldValue.TopicScores, nil
}

// ClearTopicScores clears the value of the "topic_scores" field.
func (m *PerformanceSnapshotMutation) ClearTopicScores() {
	m.topic_scores = nil
	m.clearedFields[performancesnapshot.FieldTopicScores] = struct{}{}
}

// TopicScoresCleared returns if the "topic_scores" field was cleared in this mutation.
func (m *PerformanceSnapshotMutation) TopicScoresCleared() bool {
	_, ok := m.clearedFields[performancesnapshot.FieldTopicScores]
	return ok
}

// ResetTopicScores resets all changes to the "topic_scores" field.
func (m *PerformanceSnapshotMutation) ResetTopicScores() {
	m.topic_scores = nil
	delete(m.clearedFields, performancesnapshot.FieldTopicScores)
}

// SetTakenAt sets the "taken_at" field.
func (m *PerformanceSnapshotMutation) SetTakenAt(t time.Time) {
	m.taken_at = &t
}

// TakenAt returns the value of the "taken_at" field in the mutation.
func (m *PerformanceSnapshotMutation) TakenAt() (r time.Time, exists bool) {
	v := m.taken_at
	if v == nil {
		return
	}
	return *v, true
}

// OldTakenAt returns the old "taken_at" field's value of the PerformanceSnapshot entity.
// If the PerformanceSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceSnapshotMutation) OldTakenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTakenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTakenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTakenAt: %w", err)
	}
	return oldValue.TakenAt, nil
}

// ResetTakenAt resets all changes to the "taken_at" field.
func (m *PerformanceSnapshotMutation) ResetTakenAt() {
	m.taken_at = nil
}

// Where appends a list predicates to the PerformanceSnapshotMutation builder.
func (m *PerformanceSnapshotMutation) Where(ps ...predicate.PerformanceSnapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PerformanceSnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PerformanceSnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PerformanceSnapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PerformanceSnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PerformanceSnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PerformanceSnapshot).
func (m *PerformanceSnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PerformanceSnapshotMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.record_id != nil {
		fields = append(fields, performancesnapshot.FieldRecordID)
	}
	if m.user_id != nil {
		fields = append(fields, performancesnapshot.FieldUserID)
	}
	if m.subject != nil {
		fields = append(fields, performancesnapshot.FieldSubject)
	}
	if m.overall_score != nil {
		fields = append(fields, performancesnapshot.FieldOverallScore)
	}
	if m.topic_scores != nil {
		fields = append(fields, performancesnapshot.FieldTopicScores)
	}
	if m.taken_at != nil {
		fields = append(fields, performancesnapshot.FieldTakenAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PerformanceSnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case performancesnapshot.FieldRecordID:
		return m.RecordID()
	case performancesnapshot.FieldUserID:
		return m.UserID()
	case performancesnapshot.FieldSubject:
		return m.Subject()
	case performancesnapshot.FieldOverallScore:
		return m.OverallScore()
	case performancesnapshot.FieldTopicScores:
		return m.TopicScores()
	case performancesnapshot.FieldTakenAt:
		return m.TakenAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PerformanceSnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case performancesnapshot.FieldRecordID:
		return m.OldRecordID(ctx)
	case performancesnapshot.FieldUserID:
		return m.OldUserID(ctx)
	case performancesnapshot.FieldSubject:
		return m.OldSubject(ctx)
	case performancesnapshot.FieldOverallScore:
		return m.OldOverallScore(ctx)
	case performancesnapshot.FieldTopicScores:
		return m.OldTopicScores(ctx)
	case performancesnapshot.FieldTakenAt:
		return m.OldTakenAt(ctx)
	}
	return nil, fmt.Errorf("unknown PerformanceSnapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PerformanceSnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case performancesnapshot.FieldRecordID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordID(v)
		return nil
	case performancesnapshot.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case performancesnapshot.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case performancesnapshot.FieldOverallScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallScore(v)
		return nil
	case performancesnapshot.FieldTopicScores:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicScores(v)
		return nil
	case performancesnapshot.FieldTakenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTakenAt(v)
		return nil
	}
	return fmt.Errorf("unknown PerformanceSnapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PerformanceSnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addoverall_score != nil {
		fields = append(fields, performancesnapshot.FieldOverallScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PerformanceSnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case performancesnapshot.FieldOverallScore:
		return m.AddedOverallScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PerformanceSnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case performancesnapshot.FieldOverallScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverallScore(v)
		return nil
	}
	return fmt.Errorf("unknown PerformanceSnapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PerformanceSnapshotMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(performancesnapshot.FieldTopicScores) {
		fields = append(fields, performancesnapshot.FieldTopicScores)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PerformanceSnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PerformanceSnapshotMutation) ClearField(name string) error {
	switch name {
	case performancesnapshot.FieldTopicScores:
		m.ClearTopicScores()
		return nil
	}
	return fmt.Errorf("unknown PerformanceSnapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PerformanceSnapshotMutation) ResetField(name string) error {
	switch name {
	case performancesnapshot.FieldRecordID:
		m.ResetRecordID()
		return nil
	case performancesnapshot.FieldUserID:
		m.ResetUserID()
		return nil
	case performancesnapshot.FieldSubject:
		m.ResetSubject()
		return nil
	case performancesnapshot.FieldOverallScore:
		m.ResetOverallScore()
		return nil
	case performancesnapshot.FieldTopicScores:
		m.ResetTopicScores()
		return nil
	case performancesnapshot.FieldTakenAt:
		m.ResetTakenAt()
		return nil
	}
	return fmt.Errorf("unknown PerformanceSnapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PerformanceSnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PerformanceSnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PerformanceSnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PerformanceSnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PerformanceSnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PerformanceSnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PerformanceSnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PerformanceSnapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PerformanceSnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PerformanceSnapshot edge %s", name)
}

// PracticeSessionMutation represents an operation that mutates the PracticeSession nodes in the graph.
type PracticeSessionMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	record_id              *string
	user_id                *string
	subject                *string
	started_at             *time.Time
	ended_at               *time.Time
	questions_attempted    *int
	addquestions_attempted *int
	questions_correct      *int
	addquestions_correct   *int
	topics                 *[]string
	appendtopics           []string
	difficulty_level       *float64
	adddifficulty_level    *float64
	payload                *map[string]interface{}
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*PracticeSession, error)
	predicates             []predicate.PracticeSession
}

var _ ent.Mutation = (*PracticeSessionMutation)(nil)

// practicesessionOption allows management of the mutation configuration using functional options.
type practicesessionOption func(*PracticeSessionMutation)

// newPracticeSessionMutation creates new mutation for the PracticeSession entity.
func newPracticeSessionMutation(c config, op Op, opts ...practicesessionOption) *PracticeSessionMutation {
	m := &PracticeSessionMutation{
		config:        c,
		op:            op,
		typ:           TypePracticeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPracticeSessionID sets the ID field of the mutation.
func withPracticeSessionID(id int) practicesessionOption {
	return func(m *PracticeSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *PracticeSession
		)
		m.oldValue = func(ctx context.Context) (*PracticeSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PracticeSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPracticeSession sets the old PracticeSession of the mutation.
func withPracticeSession(node *PracticeSession) practicesessionOption {
	return func(m *PracticeSessionMutation) {
		m.oldValue = func(context.Context) (*PracticeSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PracticeSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PracticeSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PracticeSessionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PracticeSessionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PracticeSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRecordID sets the "record_id" field.
func (m *PracticeSessionMutation) SetRecordID(s string) {
	m.record_id = &s
}

// RecordID returns the value of the "record_id" field in the mutation.
func (m *PracticeSessionMutation) RecordID() (r string, exists bool) {
	v := m.record_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordID returns the old "record_id" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldRecordID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordID: %w", err)
	}
	return oldValue.RecordID, nil
}

// ResetRecordID resets all changes to the "record_id" field.
func (m *PracticeSessionMutation) ResetRecordID() {
	m.record_id = nil
}

// SetUserID sets the "user_id" field.
func (m *PracticeSessionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PracticeSessionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PracticeSessionMutation) ResetUserID() {
	m.user_id = nil
}

// SetSubject sets the "subject" field.
func (m *PracticeSessionMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *PracticeSessionMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *PracticeSessionMutation) ResetSubject() {
	m.subject = nil
}

// SetStartedAt sets the "started_at" field.
func (m *PracticeSessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *PracticeSessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *PracticeSessionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *PracticeSessionMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *PracticeSessionMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *PracticeSessionMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[practicesession.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *PracticeSessionMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[practicesession.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *PracticeSessionMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, practicesession.FieldEndedAt)
}

// SetQuestionsAttempted sets the "questions_attempted" field.
func (m *PracticeSessionMutation) SetQuestionsAttempted(i int) {
	m.questions_attempted = &i
	m.addquestions_attempted = nil
}

// QuestionsAttempted returns the value of the "questions_attempted" field in the mutation.
func (m *PracticeSessionMutation) QuestionsAttempted() (r int, exists bool) {
	v := m.questions_attempted
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionsAttempted returns the old "questions_attempted" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldQuestionsAttempted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionsAttempted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionsAttempted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionsAttempted: %w", err)
	}
	return oldValue.QuestionsAttempted, nil
}

// AddQuestionsAttempted adds i to the "questions_attempted" field.
func (m *PracticeSessionMutation) AddQuestionsAttempted(i int) {
	if m.addquestions_attempted != nil {
		*m.addquestions_attempted += i
	} else {
		m.addquestions_attempted = &i
	}
}

// AddedQuestionsAttempted returns the value that was added to the "questions_attempted" field in this mutation.
func (m *PracticeSessionMutation) AddedQuestionsAttempted() (r int, exists bool) {
	v := m.addquestions_attempted
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionsAttempted resets all changes to the "questions_attempted" field.
func (m *PracticeSessionMutation) ResetQuestionsAttempted() {
	m.questions_attempted = nil
	m.addquestions_attempted = nil
}

// SetQuestionsCorrect sets the "questions_correct" field.
func (m *PracticeSessionMutation) SetQuestionsCorrect(i int) {
	m.questions_correct = &i
	m.addquestions_correct = nil
}

// QuestionsCorrect returns the value of the "questions_correct" field in the mutation.
func (m *PracticeSessionMutation) QuestionsCorrect() (r int, exists bool) {
	v := m.questions_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionsCorrect returns the old "questions_correct" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldQuestionsCorrect(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionsCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionsCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionsCorrect: %w", err)
	}
	return oldValue.QuestionsCorrect, nil
}

// AddQuestionsCorrect adds i to the "questions_correct" field.
func (m *PracticeSessionMutation) AddQuestionsCorrect(i int) {
	if m.addquestions_correct != nil {
		*m.addquestions_correct += i
	} else {
		m.addquestions_correct = &i
	}
}

// AddedQuestionsCorrect returns the value that was added to the "questions_correct" field in this mutation.
func (m *PracticeSessionMutation) AddedQuestionsCorrect() (r int, exists bool) {
	v := m.addquestions_correct
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionsCorrect resets all changes to the "questions_correct" field.
func (m *PracticeSessionMutation) ResetQuestionsCorrect() {
	m.questions_correct = nil
	m.addquestions_correct = nil
}

// SetTopics sets the "topics" field.
func (m *PracticeSessionMutation) SetTopics(s []string) {
	m.topics = &s
	m.appendtopics = nil
}

// Topics returns the value of the "topics" field in the mutation.
func (m *PracticeSessionMutation) Topics() (r []string, exists bool) {
	v := m.topics
	if v == nil {
		return
	}
	return *v, true
}

// OldTopics returns the old "topics" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldTopics(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopics: %w", err)
	}
	return oldValue.Topics, nil
}

// AppendTopics adds s to the "topics" field.
func (m *PracticeSessionMutation) AppendTopics(s []string) {
	m.appendtopics = append(m.appendtopics, s...)
}

// AppendedTopics returns the list of values that were appended to the "topics" field in this mutation.
func (m *PracticeSessionMutation) AppendedTopics() ([]string, bool) {
	if len(m.appendtopics) == 0 {
		return nil, false
	}
	return m.appendtopics, true
}

// ClearTopics clears the value of the "topics" field.
func (m *PracticeSessionMutation) ClearTopics() {
	m.topics = nil
	m.appendtopics = nil
	m.clearedFields[practicesession.FieldTopics] = struct{}{}
}

// TopicsCleared returns if the "topics" field was cleared in this mutation.
func (m *PracticeSessionMutation) TopicsCleared() bool {
	_, ok := m.clearedFields[practicesession.FieldTopics]
	return ok
}

// ResetTopics resets all changes to the "topics" field.
func (m *PracticeSessionMutation) ResetTopics() {
	m.topics = nil
	m.appendtopics = nil
	delete(m.clearedFields, practicesession.FieldTopics)
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (m *PracticeSessionMutation) SetDifficultyLevel(f float64) {
	m.difficulty_level = &f
	m.adddifficulty_level = nil
}

// DifficultyLevel returns the value of the "difficulty_level" field in the mutation.
func (m *PracticeSessionMutation) DifficultyLevel() (r float64, exists bool) {
	v := m.difficulty_level
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficultyLevel returns the old "difficulty_level" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldDifficultyLevel(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficultyLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficultyLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficultyLevel: %w", err)
	}
	return oldValue.DifficultyLevel, nil
}

// AddDifficultyLevel adds f to the "difficulty_level" field.
func (m *PracticeSessionMutation) AddDifficultyLevel(f float64) {
	if m.adddifficulty_level != nil {
		*m.adddifficulty_level += f
	} else {
		m.adddifficulty_level = &f
	}
}

// AddedDifficultyLevel returns the value that was added to the "difficulty_level" field in this mutation.
func (m *PracticeSessionMutation) AddedDifficultyLevel() (r float64, exists bool) {
	v := m.adddifficulty_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetDifficultyLevel resets all changes to the "difficulty_level" field.
func (m *PracticeSessionMutation) ResetDifficultyLevel() {
	m.difficulty_level = nil
	m.adddifficulty_level = nil
}

// SetPayload sets the "payload" field.
func (m *PracticeSessionMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *PracticeSessionMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *PracticeSessionMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[practicesession.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *PracticeSessionMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[practicesession.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *PracticeSessionMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, practicesession.FieldPayload)
}

// Where appends a list predicates to the PracticeSessionMutation builder.
func (m *PracticeSessionMutation) Where(ps ...predicate.PracticeSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PracticeSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PracticeSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PracticeSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PracticeSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PracticeSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PracticeSession).
func (m *PracticeSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PracticeSessionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.record_id != nil {
		fields = append(fields, practicesession.FieldRecordID)
	}
	if m.user_id != nil {
		fields = append(fields, practicesession.FieldUserID)
	}
	if m.subject != nil {
		fields = append(fields, practicesession.FieldSubject)
	}
	if m.started_at != nil {
		fields = append(fields, practicesession.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, practicesession.FieldEndedAt)
	}
	if m.questions_attempted != nil {
		fields = append(fields, practicesession.FieldQuestionsAttempted)
	}
	if m.questions_correct != nil {
		fields = append(fields, practicesession.FieldQuestionsCorrect)
	}
	if m.topics != nil {
		fields = append(fields, practicesession.FieldTopics)
	}
	if m.difficulty_level != nil {
		fields = append(fields, practicesession.FieldDifficultyLevel)
	}
	if m.payload != nil {
		fields = append(fields, practicesession.FieldPayload)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PracticeSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case practicesession.FieldRecordID:
		return m.RecordID()
	case practicesession.FieldUserID:
		return m.UserID()
	case practicesession.FieldSubject:
		return m.Subject()
	case practicesession.FieldStartedAt:
		return m.StartedAt()
	case practicesession.FieldEndedAt:
		return m.EndedAt()
	case practicesession.FieldQuestionsAttempted:
		return m.QuestionsAttempted()
	case practicesession.FieldQuestionsCorrect:
		return m.QuestionsCorrect()
	case practicesession.FieldTopics:
		return m.Topics()
	case practicesession.FieldDifficultyLevel:
		return m.DifficultyLevel()
	case practicesession.FieldPayload:
		return m.Payload()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PracticeSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case practicesession.FieldRecordID:
		return m.OldRecordID(ctx)
	case practicesession.FieldUserID:
		return m.OldUserID(ctx)
	case practicesession.FieldSubject:
		return m.OldSubject(ctx)
	case practicesession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case practicesession.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case practicesession.FieldQuestionsAttempted:
		return m.OldQuestionsAttempted(ctx)
	case practicesession.FieldQuestionsCorrect:
		return m.OldQuestionsCorrect(ctx)
	case practicesession.FieldTopics:
		return m.OldTopics(ctx)
	case practicesession.FieldDifficultyLevel:
		return m.OldDifficultyLevel(ctx)
	case practicesession.FieldPayload:
		return m.OldPayload(ctx)
	}
	return nil, fmt.Errorf("unknown PracticeSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PracticeSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case practicesession.FieldRecordID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordID(v)
		return nil
	case practicesession.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case practicesession.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case practicesession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case practicesession.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case practicesession.FieldQuestionsAttempted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionsAttempted(v)
		return nil
	case practicesession.FieldQuestionsCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionsCorrect(v)
		return nil
	case practicesession.FieldTopics:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopics(v)
		return nil
	case practicesession.FieldDifficultyLevel:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficultyLevel(v)
		return nil
	case practicesession.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	}
	return fmt.Errorf("unknown PracticeSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PracticeSessionMutation) AddedFields() []string {
	var fields []string
	if m.addquestions_attempted != nil {
		fields = append(fields, practicesession.FieldQuestionsAttempted)
	}
	if m.addquestions_correct != nil {
		fields = append(fields, practicesession.FieldQuestionsCorrect)
	}
	if m.adddifficulty_level != nil {
		fields = append(fields, practicesession.FieldDifficultyLevel)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PracticeSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case practicesession.FieldQuestionsAttempted:
		return m.AddedQuestionsAttempted()
	case practicesession.FieldQuestionsCorrect:
		return m.AddedQuestionsCorrect()
	case practicesession.FieldDifficultyLevel:
		return m.AddedDifficultyLevel()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PracticeSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case practicesession.FieldQuestionsAttempted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionsAttempted(v)
		return nil
	case practicesession.FieldQuestionsCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionsCorrect(v)
		return nil
	case practicesession.FieldDifficultyLevel:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficultyLevel(v)
		return nil
	}
	return fmt.Errorf("unknown PracticeSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PracticeSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(practicesession.FieldEndedAt) {
		fields = append(fields, practicesession.FieldEndedAt)
	}
	if m.FieldCleared(practicesession.FieldTopics) {
		fields = append(fields, practicesession.FieldTopics)
	}
	if m.FieldCleared(practicesession.FieldPayload) {
		fields = append(fields, practicesession.FieldPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PracticeSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PracticeSessionMutation) ClearField(name string) error {
	switch name {
	case practicesession.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	case practicesession.FieldTopics:
		m.ClearTopics()
		return nil
	case practicesession.FieldPayload:
		m.ClearPayload()
		return nil
	}
	return fmt.Errorf("unknown PracticeSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PracticeSessionMutation) ResetField(name string) error {
	switch name {
	case practicesession.FieldRecordID:
		m.ResetRecordID()
		return nil
	case practicesession.FieldUserID:
		m.ResetUserID()
		return nil
	case practicesession.FieldSubject:
		m.ResetSubject()
		return nil
	case practicesession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case practicesession.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case practicesession.FieldQuestionsAttempted:
		m.ResetQuestionsAttempted()
		return nil
	case practicesession.FieldQuestionsCorrect:
		m.ResetQuestionsCorrect()
		return nil
	case practicesession.FieldTopics:
		m.ResetTopics()
		return nil
	case practicesession.FieldDifficultyLevel:
		m.ResetDifficultyLevel()
		return nil
	case practicesession.FieldPayload:
		m.ResetPayload()
		return nil
	}
	return fmt.Errorf("unknown PracticeSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PracticeSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PracticeSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PracticeSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PracticeSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PracticeSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PracticeSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PracticeSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PracticeSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PracticeSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PracticeSession edge %s", name)
}

// SubjectProgressMutation represents an operation that mutates the SubjectProgress nodes in the graph.
type SubjectProgressMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	user_id                *string
	subject                *string
	overall_score          *float64
	addoverall_score       *float64
	topic_scores           *map[string]float64
	weak_areas             *[]string
	appendweak_areas       []string
	strong_areas           *[]string
	appendstrong_areas     []string
	streak_days            *int
	addstreak_days         *int
	total_practice_time    *int
	addtotal_practice_time *int
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*SubjectProgress, error)
	predicates             []predicate.SubjectProgress
}

var _ ent.Mutation = (*SubjectProgressMutation)(nil)

// subjectprogressOption allows management of the mutation configuration using functional options.
type subjectprogressOption func(*SubjectProgressMutation)

// newSubjectProgressMutation creates new mutation for the SubjectProgress entity.
func newSubjectProgressMutation(c config, op Op, opts ...subjectprogressOption) *SubjectProgressMutation {
	m := &SubjectProgressMutation{
		config:        c,
		op:            op,
		typ:           TypeSubjectProgress,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubjectProgressID sets the ID field of the mutation.
func withSubjectProgressID(id int) subjectprogressOption {
	return func(m *SubjectProgressMutation) {
		var (
			err   error
			once  sync.Once
			value *SubjectProgress
		)
		m.oldValue = func(ctx context.Context) (*SubjectProgress, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SubjectProgress.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubjectProgress sets the old SubjectProgress of the mutation.
func withSubjectProgress(node *SubjectProgress) subjectprogressOption {
	return func(m *SubjectProgressMutation) {
		m.oldValue = func(context.Context) (*SubjectProgress, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubjectProgressMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubjectProgressMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubjectProgressMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubjectProgressMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SubjectProgress.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *SubjectProgressMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SubjectProgressMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the SubjectProgress entity.
// If the SubjectProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectProgressMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SubjectProgressMutation) ResetUserID() {
	m.user_id = nil
}

// SetSubject sets the "subject" field.
func (m *SubjectProgressMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *SubjectProgressMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the SubjectProgress entity.
// If the SubjectProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectProgressMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *SubjectProgressMutation) ResetSubject() {
	m.subject = nil
}

// SetOverallScore sets the "overall_score" field.
func (m *SubjectProgressMutation) SetOverallScore(f float64) {
	m.overall_score = &f
	m.addoverall_score = nil
}

// OverallScore returns the value of the "overall_score" field in the mutation.
func (m *SubjectProgressMutation) OverallScore() (r float64, exists bool) {
	v := m.overall_score
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallScore returns the old "overall_score" field's value of the SubjectProgress entity.
// If the SubjectProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectProgressMutation) OldOverallScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallScore: %w", err)
	}
	return oldValue.OverallScore, nil
}

// AddOverallScore adds f to the "overall_score" field.
func (m *SubjectProgressMutation) AddOverallScore(f float64) {
	if m.addoverall_score != nil {
		*m.addoverall_score += f
	} else {
		m.addoverall_score = &f
	}
}

// AddedOverallScore returns the value that was added to the "overall_score" field in this mutation.
func (m *SubjectProgressMutation) AddedOverallScore() (r float64, exists bool) {
	v := m.addoverall_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetOverallScore resets all changes to the "overall_score" field.
func (m *SubjectProgressMutation) ResetOverallScore() {
	m.overall_score = nil
	m.addoverall_score = nil
}

// SetTopicScores sets the "topic_scores" field.
func (m *SubjectProgressMutation) SetTopicScores(value map[string]float64) {
	m.topic_scores = &value
}

// TopicScores returns the value of the "topic_scores" field in the mutation.
func (m *SubjectProgressMutation) TopicScores() (r map[string]float64, exists bool) {
	v := m.topic_scores
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicScores returns the old "topic_scores" field's value of the SubjectProgress entity.
// If the SubjectProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectProgressMutation) OldTopicScores(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicScores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicScores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicScores: %w", err)
	}
	return oldValue.TopicScores, nil
}

// ClearTopicScores clears the value of the "topic_scores" field.
func (m *SubjectProgressMutation) ClearTopicScores() {
	m.topic_scores = nil
	m.clearedFields[subjectprogress.FieldTopicScores] = struct{}{}
}

// TopicScoresCleared returns if the "topic_scores" field was cleared in this mutation.
func (m *SubjectProgressMutation) TopicScoresCleared() bool {
	_, ok := m.clearedFields[subjectprogress.FieldTopicScores]
	return ok
}

// ResetTopicScores resets all changes to the "topic_scores" field.
func (m *SubjectProgressMutation) ResetTopicScores() {
	m.topic_scores = nil
	delete(m.clearedFields, subjectprogress.FieldTopicScores)
}

// SetWeakAreas sets the "weak_areas" field.
func (m *SubjectProgressMutation) SetWeakAreas(s []string) {
	m.weak_areas = &s
	m.appendweak_areas = nil
}

// WeakAreas returns the value of the "weak_areas" field in the mutation.
func (m *SubjectProgressMutation) WeakAreas() (r []string, exists bool) {
	v := m.weak_areas
	if v == nil {
		return
	}
	return *v, true
}

// OldWeakAreas returns the old "weak_areas" field's value of the SubjectProgress entity.
// If the SubjectProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectProgressMutation) OldWeakAreas(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeakAreas is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeakAreas requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeakAreas: %w", err)
	}
	return oldValue.WeakAreas, nil
}

// AppendWeakAreas adds s to the "weak_areas" field.
func (m *SubjectProgressMutation) AppendWeakAreas(s []string) {
	m.appendweak_areas = append(m.appendweak_areas, s...)
}

// AppendedWeakAreas returns the list of values that were appended to the "weak_areas" field in this mutation.
func (m *SubjectProgressMutation) AppendedWeakAreas() ([]string, bool) {
	if len(m.appendweak_areas) == 0 {
		return nil, false
	}
	return m.appendweak_areas, true
}

// ClearWeakAreas clears the value of the "weak_areas" field.
func (m *SubjectProgressMutation) ClearWeakAreas() {
	m.weak_areas = nil
	m.appendweak_areas = nil
	m.clearedFields[subjectprogress.FieldWeakAreas] = struct{}{}
}

// WeakAreasCleared returns if the "weak_areas" field was cleared in this mutation.
func (m *SubjectProgressMutation) WeakAreasCleared() bool {
	_, ok := m.clearedFields[subjectprogress.FieldWeakAreas]
	return ok
}

// ResetWeakAreas resets all changes to the "weak_areas" field.
func (m *SubjectProgressMutation) ResetWeakAreas() {
	m.weak_areas = nil
	m.appendweak_areas = nil
	delete(m.clearedFields, subjectprogress.FieldWeakAreas)
}

// SetStrongAreas sets the "strong_areas" field.
func (m *SubjectProgressMutation) SetStrongAreas(s []string) {
	m.strong_areas = &s
	m.appendstrong_areas = nil
}

// StrongAreas returns the value of the "strong_areas" field in the mutation.
func (m *SubjectProgressMutation) StrongAreas() (r []string, exists bool) {
	v := m.strong_areas
	if v == nil {
		return
	}
	return *v, true
}

// OldStrongAreas returns the old "strong_areas" field's value of the SubjectProgress entity.
// If the SubjectProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectProgressMutation) OldStrongAreas(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrongAreas is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrongAreas requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrongAreas: %w", err)
	}
	return oldValue.StrongAreas, nil
}

// AppendStrongAreas adds s to the "strong_areas" field.
func (m *SubjectProgressMutation) AppendStrongAreas(s []string) {
	m.appendstrong_areas = append(m.appendstrong_areas, s...)
}

// AppendedStrongAreas returns the list of values that were appended to the "strong_areas" field in this mutation.
func (m *SubjectProgressMutation) AppendedStrongAreas() ([]string, bool) {
	if len(m.appendstrong_areas) == 0 {
		return nil, false
	}
	return m.appendstrong_areas, true
}

// ClearStrongAreas clears the value of the "strong_areas" field.
func (m *SubjectProgressMutation) ClearStrongAreas() {
	m.strong_areas = nil
	m.appendstrong_areas = nil
	m.clearedFields[subjectprogress.FieldStrongAreas] = struct{}{}
}

// StrongAreasCleared returns if the "strong_areas" field was cleared in this mutation.
func (m *SubjectProgressMutation) StrongAreasCleared() bool {
	_, ok := m.clearedFields[subjectprogress.FieldStrongAreas]
	return ok
}

// ResetStrongAreas resets all changes to the "strong_areas" field.
func (m *SubjectProgressMutation) ResetStrongAreas() {
	m.strong_areas = nil
	m.appendstrong_areas = nil
	delete(m.clearedFields, subjectprogress.FieldStrongAreas)
}

// SetStreakDays sets the "streak_days" field.
func (m *SubjectProgressMutation) SetStreakDays(i int) {
	m.streak_days = &i
	m.addstreak_days = nil
}

// StreakDays returns the value of the "streak_days" field in the mutation.
func (m *SubjectProgressMutation) StreakDays() (r int, exists bool) {
	v := m.streak_days
	if v == nil {
		return
	}
	return *v, true
}

// OldStreakDays returns the old "streak_days" field's value of the SubjectProgress entity.
// If the SubjectProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectProgressMutation) OldStreakDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreakDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreakDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreakDays: %w", err)
	}
	return oldValue.StreakDays, nil
}

// AddStreakDays adds i to the "streak_days" field.
func (m *SubjectProgressMutation) AddStreakDays(i int) {
	if m.addstreak_days != nil {
		*m.addstreak_days += i
	} else {
		m.addstreak_days = &i
	}
}

// AddedStreakDays returns the value that was added to the "streak_days" field in this mutation.
func (m *SubjectProgressMutation) AddedStreakDays() (r int, exists bool) {
	v := m.addstreak_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetStreakDays resets all changes to the "streak_days" field.
func (m *SubjectProgressMutation) ResetStreakDays() {
	m.streak_days = nil
	m.addstreak_days = nil
}

// SetTotalPracticeTime sets the "total_practice_time" field.
func (m *SubjectProgressMutation) SetTotalPracticeTime(i int) {
	m.total_practice_time = &i
	m.addtotal_practice_time = nil
}

// TotalPracticeTime returns the value of the "total_practice_time" field in the mutation.
func (m *SubjectProgressMutation) TotalPracticeTime() (r int, exists bool) {
	v := m.total_practice_time
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalPracticeTime returns the old "total_practice_time" field's value of the SubjectProgress entity.
// If the SubjectProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectProgressMutation) OldTotalPracticeTime(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalPracticeTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalPracticeTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalPracticeTime: %w", err)
	}
	return oldValue.TotalPracticeTime, nil
}

// AddTotalPracticeTime adds i to the "total_practice_time" field.
func (m *SubjectProgressMutation) AddTotalPracticeTime(i int) {
	if m.addtotal_practice_time != nil {
		*m.addtotal_practice_time += i
	} else {
		m.addtotal_practice_time = &i
	}
}

// AddedTotalPracticeTime returns the value that was added to the "total_practice_time" field in this mutation.
func (m *SubjectProgressMutation) AddedTotalPracticeTime() (r int, exists bool) {
	v := m.addtotal_practice_time
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalPracticeTime resets all changes to the "total_practice_time" field.
func (m *SubjectProgressMutation) ResetTotalPracticeTime() {
	m.total_practice_time = nil
	m.addtotal_practice_time = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SubjectProgressMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SubjectProgressMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SubjectProgress entity.
// If the SubjectProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectProgressMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SubjectProgressMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SubjectProgressMutation builder.
func (m *SubjectProgressMutation) Where(ps ...predicate.SubjectProgress) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubjectProgressMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubjectProgressMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SubjectProgress, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubjectProgressMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubjectProgressMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SubjectProgress).
func (m *SubjectProgressMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubjectProgressMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.user_id != nil {
		fields = append(fields, subjectprogress.FieldUserID)
	}
	if m.subject != nil {
		fields = append(fields, subjectprogress.FieldSubject)
	}
	if m.overall_score != nil {
		fields = append(fields, subjectprogress.FieldOverallScore)
	}
	if m.topic_scores != nil {
		fields = append(fields, subjectprogress.FieldTopicScores)
	}
	if m.weak_areas != nil {
		fields = append(fields, subjectprogress.FieldWeakAreas)
	}
	if m.strong_areas != nil {
		fields = append(fields, subjectprogress.FieldStrongAreas)
	}
	if m.streak_days != nil {
		fields = append(fields, subjectprogress.FieldStreakDays)
	}
	if m.total_practice_time != nil {
		fields = append(fields, subjectprogress.FieldTotalPracticeTime)
	}
	if m.updated_at != nil {
		fields = append(fields, subjectprogress.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubjectProgressMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case subjectprogress.FieldUserID:
		return m.UserID()
	case subjectprogress.FieldSubject:
		return m.Subject()
	case subjectprogress.FieldOverallScore:
		return m.OverallScore()
	case subjectprogress.FieldTopicScores:
		return m.TopicScores()
	case subjectprogress.FieldWeakAreas:
		return m.WeakAreas()
	case subjectprogress.FieldStrongAreas:
		return m.StrongAreas()
	case subjectprogress.FieldStreakDays:
		return m.StreakDays()
	case subjectprogress.FieldTotalPracticeTime:
		return m.TotalPracticeTime()
	case subjectprogress.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubjectProgressMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case subjectprogress.FieldUserID:
		return m.OldUserID(ctx)
	case subjectprogress.FieldSubject:
		return m.OldSubject(ctx)
	case subjectprogress.FieldOverallScore:
		return m.OldOverallScore(ctx)
	case subjectprogress.FieldTopicScores:
		return m.OldTopicScores(ctx)
	case subjectprogress.FieldWeakAreas:
		return m.OldWeakAreas(ctx)
	case subjectprogress.FieldStrongAreas:
		return m.OldStrongAreas(ctx)
	case subjectprogress.FieldStreakDays:
		return m.OldStreakDays(ctx)
	case subjectprogress.FieldTotalPracticeTime:
		return m.OldTotalPracticeTime(ctx)
	case subjectprogress.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SubjectProgress field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubjectProgressMutation) SetField(name string, value ent.Value) error {
	switch name {
	case subjectprogress.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case subjectprogress.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case subjectprogress.FieldOverallScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallScore(v)
		return nil
	case subjectprogress.FieldTopicScores:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicScores(v)
		return nil
	case subjectprogress.FieldWeakAreas:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeakAreas(v)
		return nil
	case subjectprogress.FieldStrongAreas:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrongAreas(v)
		return nil
	case subjectprogress.FieldStreakDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreakDays(v)
		return nil
	case subjectprogress.FieldTotalPracticeTime:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalPracticeTime(v)
		return nil
	case subjectprogress.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SubjectProgress field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubjectProgressMutation) AddedFields() []string {
	var fields []string
	if m.addoverall_score != nil {
		fields = append(fields, subjectprogress.FieldOverallScore)
	}
	if m.addstreak_days != nil {
		fields = append(fields, subjectprogress.FieldStreakDays)
	}
	if m.addtotal_practice_time != nil {
		fields = append(fields, subjectprogress.FieldTotalPracticeTime)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubjectProgressMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case subjectprogress.FieldOverallScore:
		return m.AddedOverallScore()
	case subjectprogress.FieldStreakDays:
		return m.AddedStreakDays()
	case subjectprogress.FieldTotalPracticeTime:
		return m.AddedTotalPracticeTime()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubjectProgressMutation) AddField(name string, value ent.Value) error {
	switch name {
	case subjectprogress.FieldOverallScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverallScore(v)
		return nil
	case subjectprogress.FieldStreakDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStreakDays(v)
		return nil
	case subjectprogress.FieldTotalPracticeTime:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalPracticeTime(v)
		return nil
	}
	return fmt.Errorf("unknown SubjectProgress numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubjectProgressMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(subjectprogress.FieldTopicScores) {
		fields = append(fields, subjectprogress.FieldTopicScores)
	}
	if m.FieldCleared(subjectprogress.FieldWeakAreas) {
		fields = append(fields, subjectprogress.FieldWeakAreas)
	}
	if m.FieldCleared(subjectprogress.FieldStrongAreas) {
		fields = append(fields, subjectprogress.FieldStrongAreas)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubjectProgressMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubjectProgressMutation) ClearField(name string) error {
	switch name {
	case subjectprogress.FieldTopicScores:
		m.ClearTopicScores()
		return nil
	case subjectprogress.FieldWeakAreas:
		m.ClearWeakAreas()
		return nil
	case subjectprogress.FieldStrongAreas:
		m.ClearStrongAreas()
		return nil
	}
	return fmt.Errorf("unknown SubjectProgress nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubjectProgressMutation) ResetField(name string) error {
	switch name {
	case subjectprogress.FieldUserID:
		m.ResetUserID()
		return nil
	case subjectprogress.FieldSubject:
		m.ResetSubject()
		return nil
	case subjectprogress.FieldOverallScore:
		m.ResetOverallScore()
		return nil
	case subjectprogress.FieldTopicScores:
		m.ResetTopicScores()
		return nil
	case subjectprogress.FieldWeakAreas:
		m.ResetWeakAreas()
		return nil
	case subjectprogress.FieldStrongAreas:
		m.ResetStrongAreas()
		return nil
	case subjectprogress.FieldStreakDays:
		m.ResetStreakDays()
		return nil
	case subjectprogress.FieldTotalPracticeTime:
		m.ResetTotalPracticeTime()
		return nil
	case subjectprogress.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SubjectProgress field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubjectProgressMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubjectProgressMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubjectProgressMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubjectProgressMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubjectProgressMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubjectProgressMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubjectProgressMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SubjectProgress unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubjectProgressMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SubjectProgress edge %s", name)
}

// UserFactMutation represents an operation that mutates the UserFact nodes in the graph.
type UserFactMutation struct {
	config
	op             Op
	typ            string
	id             *int
	user_id        *string
	grade_level    *int
	addgrade_level *int
	exam_date      *time.Time
	preferences    *map[string]interface{}
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*UserFact, error)
	predicates     []predicate.UserFact
}

var _ ent.Mutation = (*UserFactMutation)(nil)

// userfactOption allows management of the mutation configuration using functional options.
type userfactOption func(*UserFactMutation)

// newUserFactMutation creates new mutation for the UserFact entity.
func newUserFactMutation(c config, op Op, opts ...userfactOption) *UserFactMutation {
	m := &UserFactMutation{
		config:        c,
		op:            op,
		typ:           TypeUserFact,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserFactID sets the ID field of the mutation.
func withUserFactID(id int) userfactOption {
	return func(m *UserFactMutation) {
		var (
			err   error
			once  sync.Once
			value *UserFact
		)
		m.oldValue = func(ctx context.Context) (*UserFact, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserFact.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserFact sets the old UserFact of the mutation.
func withUserFact(node *UserFact) userfactOption {
	return func(m *UserFactMutation) {
		m.oldValue = func(context.Context) (*UserFact, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserFactMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserFactMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserFactMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserFactMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserFact.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *UserFactMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UserFactMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UserFact entity.
// If the UserFact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserFactMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UserFactMutation) ResetUserID() {
	m.user_id = nil
}

// SetGradeLevel sets the "grade_level" field.
func (m *UserFactMutation) SetGradeLevel(i int) {
	m.grade_level = &i
	m.addgrade_level = nil
}

// GradeLevel returns the value of the "grade_level" field in the mutation.
func (m *UserFactMutation) GradeLevel() (r int, exists bool) {
	v := m.grade_level
	if v == nil {
		return
	}
	return *v, true
}

// OldGradeLevel returns the old "grade_level" field's value of the UserFact entity.
// If the UserFact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserFactMutation) OldGradeLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGradeLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGradeLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGradeLevel: %w", err)
	}
	return oldValue.GradeLevel, nil
}

// AddGradeLevel adds i to the "grade_level" field.
func (m *UserFactMutation) AddGradeLevel(i int) {
	if m.addgrade_level != nil {
		*m.addgrade_level += i
	} else {
		m.addgrade_level = &i
	}
}

// AddedGradeLevel returns the value that was added to the "grade_level" field in this mutation.
func (m *UserFactMutation) AddedGradeLevel() (r int, exists bool) {
	v := m.addgrade_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetGradeLevel resets all changes to the "grade_level" field.
func (m *UserFactMutation) ResetGradeLevel() {
	m.grade_level = nil
	m.addgrade_level = nil
}

// SetExamDate sets the "exam_date" field.
func (m *UserFactMutation) SetExamDate(t time.Time) {
	m.exam_date = &t
}

// ExamDate returns the value of the "exam_date" field in the mutation.
func (m *UserFactMutation) ExamDate() (r time.Time, exists bool) {
	v := m.exam_date
	if v == nil {
		return
	}
	return *v, true
}

// OldExamDate returns the old "exam_date" field's value of the UserFact entity.
// If the UserFact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserFactMutation) OldExamDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExamDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExamDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExamDate: %w", err)
	}
	return oldValue.ExamDate, nil
}

// ClearExamDate clears the value of the "exam_date" field.
func (m *UserFactMutation) ClearExamDate() {
	m.exam_date = nil
	m.clearedFields[userfact.FieldExamDate] = struct{}{}
}

// ExamDateCleared returns if the "exam_date" field was cleared in this mutation.
func (m *UserFactMutation) ExamDateCleared() bool {
	_, ok := m.clearedFields[userfact.FieldExamDate]
	return ok
}

// ResetExamDate resets all changes to the "exam_date" field.
func (m *UserFactMutation) ResetExamDate() {
	m.exam_date = nil
	delete(m.clearedFields, userfact.FieldExamDate)
}

// SetPreferences sets the "preferences" field.
func (m *UserFactMutation) SetPreferences(value map[string]interface{}) {
	m.preferences = &value
}

// Preferences returns the value of the "preferences" field in the mutation.
func (m *UserFactMutation) Preferences() (r map[string]interface{}, exists bool) {
	v := m.preferences
	if v == nil {
		return
	}
	return *v, true
}

// OldPreferences returns the old "preferences" field's value of the UserFact entity.
// If the UserFact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserFactMutation) OldPreferences(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreferences is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreferences requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreferences: %w", err)
	}
	return oldValue.Preferences, nil
}

// ClearPreferences clears the value of the "preferences" field.
func (m *UserFactMutation) ClearPreferences() {
	m.preferences = nil
	m.clearedFields[userfact.FieldPreferences] = struct{}{}
}

// PreferencesCleared returns if the "preferences" field was cleared in this mutation.
func (m *UserFactMutation) PreferencesCleared() bool {
	_, ok := m.clearedFields[userfact.FieldPreferences]
	return ok
}

// ResetPreferences resets all changes to the "preferences" field.
func (m *UserFactMutation) ResetPreferences() {
	m.preferences = nil
	delete(m.clearedFields, userfact.FieldPreferences)
}

// Where appends a list predicates to the UserFactMutation builder.
func (m *UserFactMutation) Where(ps ...predicate.UserFact) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserFactMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserFactMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserFact, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserFactMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserFactMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserFact).
func (m *UserFactMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserFactMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.user_id != nil {
		fields = append(fields, userfact.FieldUserID)
	}
	if m.grade_level != nil {
		fields = append(fields, userfact.FieldGradeLevel)
	}
	if m.exam_date != nil {
		fields = append(fields, userfact.FieldExamDate)
	}
	if m.preferences != nil {
		fields = append(fields, userfact.FieldPreferences)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserFactMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case userfact.FieldUserID:
		return m.UserID()
	case userfact.FieldGradeLevel:
		return m.GradeLevel()
	case userfact.FieldExamDate:
		return m.ExamDate()
	case userfact.FieldPreferences:
		return m.Preferences()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserFactMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case userfact.FieldUserID:
		return m.OldUserID(ctx)
	case userfact.FieldGradeLevel:
		return m.OldGradeLevel(ctx)
	case userfact.FieldExamDate:
		return m.OldExamDate(ctx)
	case userfact.FieldPreferences:
		return m.OldPreferences(ctx)
	}
	return nil, fmt.Errorf("unknown UserFact field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserFactMutation) SetField(name string, value ent.Value) error {
	switch name {
	case userfact.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case userfact.FieldGradeLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGradeLevel(v)
		return nil
	case userfact.FieldExamDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExamDate(v)
		return nil
	case userfact.FieldPreferences:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreferences(v)
		return nil
	}
	return fmt.Errorf("unknown UserFact field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserFactMutation) AddedFields() []string {
	var fields []string
	if m.addgrade_level != nil {
		fields = append(fields, userfact.FieldGradeLevel)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserFactMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case userfact.FieldGradeLevel:
		return m.AddedGradeLevel()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserFactMutation) AddField(name string, value ent.Value) error {
	switch name {
	case userfact.FieldGradeLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGradeLevel(v)
		return nil
	}
	return fmt.Errorf("unknown UserFact numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserFactMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(userfact.FieldExamDate) {
		fields = append(fields, userfact.FieldExamDate)
	}
	if m.FieldCleared(userfact.FieldPreferences) {
		fields = append(fields, userfact.FieldPreferences)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserFactMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserFactMutation) ClearField(name string) error {
	switch name {
	case userfact.FieldExamDate:
		m.ClearExamDate()
		return nil
	case userfact.FieldPreferences:
		m.ClearPreferences()
		return nil
	}
	return fmt.Errorf("unknown UserFact nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserFactMutation) ResetField(name string) error {
	switch name {
	case userfact.FieldUserID:
		m.ResetUserID()
		return nil
	case userfact.FieldGradeLevel:
		m.ResetGradeLevel()
		return nil
	case userfact.FieldExamDate:
		m.ResetExamDate()
		return nil
	case userfact.FieldPreferences:
		m.ResetPreferences()
		return nil
	}
	return fmt.Errorf("unknown UserFact field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserFactMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserFactMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserFactMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserFactMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserFactMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserFactMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserFactMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UserFact unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserFactMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UserFact edge %s", name)
}
