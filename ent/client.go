// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/tutorly/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/tutorly/ent/interactionevent"
	"github.com/abhisek/tutorly/ent/learningpattern"
	"github.com/abhisek/tutorly/ent/performancesnapshot"
	"github.com/abhisek/tutorly/ent/practicesession"
	"github.com/abhisek/tutorly/ent/subjectprogress"
	"github.com/abhisek/tutorly/ent/userfact"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// InteractionEvent is the client for interacting with the InteractionEvent builders.
	InteractionEvent *InteractionEventClient
	// LearningPattern is the client for interacting with the LearningPattern builders.
	LearningPattern *LearningPatternClient
	// PerformanceSnapshot is the client for interacting with the PerformanceSnapshot builders.
	PerformanceSnapshot *PerformanceSnapshotClient
	// PracticeSession is the client for interacting with the PracticeSession builders.
	PracticeSession *PracticeSessionClient
	// SubjectProgress is the client for interacting with the SubjectProgress builders.
	SubjectProgress *SubjectProgressClient
	// UserFact is the client for interacting with the UserFact builders.
	UserFact *UserFactClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.InteractionEvent = NewInteractionEventClient(c.config)
	c.LearningPattern = NewLearningPatternClient(c.config)
	c.PerformanceSnapshot = NewPerformanceSnapshotClient(c.config)
	c.PracticeSession = NewPracticeSessionClient(c.config)
	c.SubjectProgress = NewSubjectProgressClient(c.config)
	c.UserFact = NewUserFactClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                 ctx,
		config:              cfg,
		InteractionEvent:    NewInteractionEventClient(cfg),
		LearningPattern:     NewLearningPatternClient(cfg),
		PerformanceSnapshot: NewPerformanceSnapshotClient(cfg),
		PracticeSession:     NewPracticeSessionClient(cfg),
		SubjectProgress:     NewSubjectProgressClient(cfg),
		UserFact:            NewUserFactClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                 ctx,
		config:              cfg,
		InteractionEvent:    NewInteractionEventClient(cfg),
		LearningPattern:     NewLearningPatternClient(cfg),
		PerformanceSnapshot: NewPerformanceSnapshotClient(cfg),
		PracticeSession:     NewPracticeSessionClient(cfg),
		SubjectProgress:     NewSubjectProgressClient(cfg),
		UserFact:            NewUserFactClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		InteractionEvent.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.InteractionEvent, c.LearningPattern, c.PerformanceSnapshot, c.PracticeSession,
		c.SubjectProgress, c.UserFact,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.InteractionEvent, c.LearningPattern, c.PerformanceSnapshot, c.PracticeSession,
		c.SubjectProgress, c.UserFact,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *InteractionEventMutation:
		return c.InteractionEvent.mutate(ctx, m)
	case *LearningPatternMutation:
		return c.LearningPattern.mutate(ctx, m)
	case *PerformanceSnapshotMutation:
		return c.PerformanceSnapshot.mutate(ctx, m)
	case *PracticeSessionMutation:
		return c.PracticeSession.mutate(ctx, m)
	case *SubjectProgressMutation:
		return c.SubjectProgress.mutate(ctx, m)
	case *UserFactMutation:
		return c.UserFact.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// InteractionEventClient is a client for the InteractionEvent schema.
type InteractionEventClient struct {
	config
}

// NewInteractionEventClient returns a client for the InteractionEvent from the given config.
func NewInteractionEventClient(c config) *InteractionEventClient {
	return &InteractionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `interactionevent.Hooks(f(g(h())))`.
func (c *InteractionEventClient) Use(hooks ...Hook) {
	c.hooks.InteractionEvent = append(c.hooks.InteractionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `interactionevent.Intercept(f(g(h())))`.
func (c *InteractionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.InteractionEvent = append(c.inters.InteractionEvent, interceptors...)
}

// Create returns a builder for creating a InteractionEvent entity.
func (c *InteractionEventClient) Create() *InteractionEventCreate {
	mutation := newInteractionEventMutation(c.config, OpCreate)
	return &InteractionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InteractionEvent entities.
func (c *InteractionEventClient) CreateBulk(builders ...*InteractionEventCreate) *InteractionEventCreateBulk {
	return &InteractionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InteractionEventClient) MapCreateBulk(slice any, setFunc func(*InteractionEventCreate, int)) *InteractionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InteractionEventCreateBulk{err: fmt.Errorf("calling to InteractionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InteractionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InteractionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InteractionEvent.
func (c *InteractionEventClient) Update() *InteractionEventUpdate {
	mutation := newInteractionEventMutation(c.config, OpUpdate)
	return &InteractionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InteractionEventClient) UpdateOne(_m *InteractionEvent) *InteractionEventUpdateOne {
	mutation := newInteractionEventMutation(c.config, OpUpdateOne, withInteractionEvent(_m))
	return &InteractionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InteractionEventClient) UpdateOneID(id int) *InteractionEventUpdateOne {
	mutation := newInteractionEventMutation(c.config, OpUpdateOne, withInteractionEventID(id))
	return &InteractionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InteractionEvent.
func (c *InteractionEventClient) Delete() *InteractionEventDelete {
	mutation := newInteractionEventMutation(c.config, OpDelete)
	return &InteractionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InteractionEventClient) DeleteOne(_m *InteractionEvent) *InteractionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InteractionEventClient) DeleteOneID(id int) *InteractionEventDeleteOne {
	builder := c.Delete().Where(interactionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InteractionEventDeleteOne{builder}
}

// Query returns a query builder for InteractionEvent.
func (c *InteractionEventClient) Query() *InteractionEventQuery {
	return &InteractionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInteractionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a InteractionEvent entity by its id.
func (c *InteractionEventClient) Get(ctx context.Context, id int) (*InteractionEvent, error) {
	return c.Query().Where(interactionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InteractionEventClient) GetX(ctx context.Context, id int) *InteractionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *InteractionEventClient) Hooks() []Hook {
	return c.hooks.InteractionEvent
}

// Interceptors returns the client interceptors.
func (c *InteractionEventClient) Interceptors() []Interceptor {
	return c.inters.InteractionEvent
}

func (c *InteractionEventClient) mutate(ctx context.Context, m *InteractionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InteractionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InteractionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InteractionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InteractionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InteractionEvent mutation op: %q", m.Op())
	}
}

// LearningPatternClient is a client for the LearningPattern schema.
type LearningPatternClient struct {
	config
}

// NewLearningPatternClient returns a client for the LearningPattern from the given config.
func NewLearningPatternClient(c config) *LearningPatternClient {
	return &LearningPatternClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `learningpattern.Hooks(f(g(h())))`.
func (c *LearningPatternClient) Use(hooks ...Hook) {
	c.hooks.LearningPattern = append(c.hooks.LearningPattern, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `learningpattern.Intercept(f(g(h())))`.
func (c *LearningPatternClient) Intercept(interceptors ...Interceptor) {
	c.inters.LearningPattern = append(c.inters.LearningPattern, interceptors...)
}

// Create returns a builder for creating a LearningPattern entity.
func (c *LearningPatternClient) Create() *LearningPatternCreate {
	mutation := newLearningPatternMutation(c.config, OpCreate)
	return &LearningPatternCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LearningPattern entities.
func (c *LearningPatternClient) CreateBulk(builders ...*LearningPatternCreate) *LearningPatternCreateBulk {
	return &LearningPatternCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LearningPatternClient) MapCreateBulk(slice any, setFunc func(*LearningPatternCreate, int)) *LearningPatternCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LearningPatternCreateBulk{err: fmt.Errorf("calling to LearningPatternClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LearningPatternCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LearningPatternCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LearningPattern.
func (c *LearningPatternClient) Update() *LearningPatternUpdate {
	mutation := newLearningPatternMutation(c.config, OpUpdate)
	return &LearningPatternUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LearningPatternClient) UpdateOne(_m *LearningPattern) *LearningPatternUpdateOne {
	mutation := newLearningPatternMutation(c.config, OpUpdateOne, withLearningPattern(_m))
	return &LearningPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LearningPatternClient) UpdateOneID(id int) *LearningPatternUpdateOne {
	mutation := newLearningPatternMutation(c.config, OpUpdateOne, withLearningPatternID(id))
	return &LearningPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LearningPattern.
func (c *LearningPatternClient) Delete() *LearningPatternDelete {
	mutation := newLearningPatternMutation(c.config, OpDelete)
	return &LearningPatternDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LearningPatternClient) DeleteOne(_m *LearningPattern) *LearningPatternDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LearningPatternClient) DeleteOneID(id int) *LearningPatternDeleteOne {
	builder := c.Delete().Where(learningpattern.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LearningPatternDeleteOne{builder}
}

// Query returns a query builder for LearningPattern.
func (c *LearningPatternClient) Query() *LearningPatternQuery {
	return &LearningPatternQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLearningPattern},
		inters: c.Interceptors(),
	}
}

// Get returns a LearningPattern entity by its id.
func (c *LearningPatternClient) Get(ctx context.Context, id int) (*LearningPattern, error) {
	return c.Query().Where(learningpattern.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LearningPatternClient) GetX(ctx context.Context, id int) *LearningPattern {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LearningPatternClient) Hooks() []Hook {
	return c.hooks.LearningPattern
}

// Interceptors returns the client interceptors.
func (c *LearningPatternClient) Interceptors() []Interceptor {
	return c.inters.LearningPattern
}

func (c *LearningPatternClient) mutate(ctx context.Context, m *LearningPatternMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LearningPatternCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LearningPatternUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LearningPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LearningPatternDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LearningPattern mutation op: %q", m.Op())
	}
}

// PerformanceSnapshotClient is a client for the PerformanceSnapshot schema.
type PerformanceSnapshotClient struct {
	config
}

// NewPerformanceSnapshotClient returns a client for the PerformanceSnapshot from the given config.
func NewPerformanceSnapshotClient(c config) *PerformanceSnapshotClient {
	return &PerformanceSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `performancesnapshot.Hooks(f(g(h())))`.
func (c *PerformanceSnapshotClient) Use(hooks ...Hook) {
	c.hooks.PerformanceSnapshot = append(c.hooks.PerformanceSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `performancesnapshot.Intercept(f(g(h())))`.
func (c *PerformanceSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.PerformanceSnapshot = append(c.inters.PerformanceSnapshot, interceptors...)
}

// Create returns a builder for creating a PerformanceSnapshot entity.
func (c *PerformanceSnapshotClient) Create() *PerformanceSnapshotCreate {
	mutation := newPerformanceSnapshotMutation(c.config, OpCreate)
	return &PerformanceSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PerformanceSnapshot entities.
func (c *PerformanceSnapshotClient) CreateBulk(builders ...*PerformanceSnapshotCreate) *PerformanceSnapshotCreateBulk {
	return &PerformanceSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PerformanceSnapshotClient) MapCreateBulk(slice any, setFunc func(*PerformanceSnapshotCreate, int)) *PerformanceSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PerformanceSnapshotCreateBulk{err: fmt.Errorf("calling to PerformanceSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PerformanceSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PerformanceSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PerformanceSnapshot.
func (c *PerformanceSnapshotClient) Update() *PerformanceSnapshotUpdate {
	mutation := newPerformanceSnapshotMutation(c.config, OpUpdate)
	return &PerformanceSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PerformanceSnapshotClient) UpdateOne(_m *PerformanceSnapshot) *PerformanceSnapshotUpdateOne {
	mutation := newPerformanceSnapshotMutation(c.config, OpUpdateOne, withPerformanceSnapshot(_m))
	return &PerformanceSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PerformanceSnapshotClient) UpdateOneID(id int) *PerformanceSnapshotUpdateOne {
	mutation := newPerformanceSnapshotMutation(c.config, OpUpdateOne, withPerformanceSnapshotID(id))
	return &PerformanceSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PerformanceSnapshot.
func (c *PerformanceSnapshotClient) Delete() *PerformanceSnapshotDelete {
	mutation := newPerformanceSnapshotMutation(c.config, OpDelete)
	return &PerformanceSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PerformanceSnapshotClient) DeleteOne(_m *PerformanceSnapshot) *PerformanceSnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PerformanceSnapshotClient) DeleteOneID(id int) *PerformanceSnapshotDeleteOne {
	builder := c.Delete().Where(performancesnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PerformanceSnapshotDeleteOne{builder}
}

// Query returns a query builder for PerformanceSnapshot.
func (c *PerformanceSnapshotClient) Query() *PerformanceSnapshotQuery {
	return &PerformanceSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePerformanceSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a PerformanceSnapshot entity by its id.
func (c *PerformanceSnapshotClient) Get(ctx context.Context, id int) (*PerformanceSnapshot, error) {
	return c.Query().Where(performancesnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PerformanceSnapshotClient) GetX(ctx context.Context, id int) *PerformanceSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PerformanceSnapshotClient) Hooks() []Hook {
	return c.hooks.PerformanceSnapshot
}

// Interceptors returns the client interceptors.
func (c *PerformanceSnapshotClient) Interceptors() []Interceptor {
	return c.inters.PerformanceSnapshot
}

func (c *PerformanceSnapshotClient) mutate(ctx context.Context, m *PerformanceSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PerformanceSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PerformanceSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PerformanceSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PerformanceSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PerformanceSnapshot mutation op: %q", m.Op())
	}
}

// PracticeSessionClient is a client for the PracticeSession schema.
type PracticeSessionClient struct {
	config
}

// NewPracticeSessionClient returns a client for the PracticeSession from the given config.
func NewPracticeSessionClient(c config) *PracticeSessionClient {
	return &PracticeSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `practicesession.Hooks(f(g(h())))`.
func (c *PracticeSessionClient) Use(hooks ...Hook) {
	c.hooks.PracticeSession = append(c.hooks.PracticeSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `practicesession.Intercept(f(g(h())))`.
func (c *PracticeSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.PracticeSession = append(c.inters.PracticeSession, interceptors...)
}

// Create returns a builder for creating a PracticeSession entity.
func (c *PracticeSessionClient) Create() *PracticeSessionCreate {
	mutation := newPracticeSessionMutation(c.config, OpCreate)
	return &PracticeSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PracticeSession entities.
func (c *PracticeSessionClient) CreateBulk(builders ...*PracticeSessionCreate) *PracticeSessionCreateBulk {
	return &PracticeSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PracticeSessionClient) MapCreateBulk(slice any, setFunc func(*PracticeSessionCreate, int)) *PracticeSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PracticeSessionCreateBulk{err: fmt.Errorf("calling to PracticeSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PracticeSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PracticeSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PracticeSession.
func (c *PracticeSessionClient) Update() *PracticeSessionUpdate {
	mutation := newPracticeSessionMutation(c.config, OpUpdate)
	return &PracticeSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PracticeSessionClient) UpdateOne(_m *PracticeSession) *PracticeSessionUpdateOne {
	mutation := newPracticeSessionMutation(c.config, OpUpdateOne, withPracticeSession(_m))
	return &PracticeSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PracticeSessionClient) UpdateOneID(id int) *PracticeSessionUpdateOne {
	mutation := newPracticeSessionMutation(c.config, OpUpdateOne, withPracticeSessionID(id))
	return &PracticeSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PracticeSession.
func (c *PracticeSessionClient) Delete() *PracticeSessionDelete {
	mutation := newPracticeSessionMutation(c.config, OpDelete)
	return &PracticeSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PracticeSessionClient) DeleteOne(_m *PracticeSession) *PracticeSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PracticeSessionClient) DeleteOneID(id int) *PracticeSessionDeleteOne {
	builder := c.Delete().Where(practicesession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PracticeSessionDeleteOne{builder}
}

// Query returns a query builder for PracticeSession.
func (c *PracticeSessionClient) Query() *PracticeSessionQuery {
	return &PracticeSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePracticeSession},
		inters: c.Interceptors(),
	}
}

// Get returns a PracticeSession entity by its id.
func (c *PracticeSessionClient) Get(ctx context.Context, id int) (*PracticeSession, error) {
	return c.Query().Where(practicesession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PracticeSessionClient) GetX(ctx context.Context, id int) *PracticeSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PracticeSessionClient) Hooks() []Hook {
	return c.hooks.PracticeSession
}

// Interceptors returns the client interceptors.
func (c *PracticeSessionClient) Interceptors() []Interceptor {
	return c.inters.PracticeSession
}

func (c *PracticeSessionClient) mutate(ctx context.Context, m *PracticeSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PracticeSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PracticeSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PracticeSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PracticeSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PracticeSession mutation op: %q", m.Op())
	}
}

// SubjectProgressClient is a client for the SubjectProgress schema.
type SubjectProgressClient struct {
	config
}

// NewSubjectProgressClient returns a client for the SubjectProgress from the given config.
func NewSubjectProgressClient(c config) *SubjectProgressClient {
	return &SubjectProgressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `subjectprogress.Hooks(f(g(h())))`.
func (c *SubjectProgressClient) Use(hooks ...Hook) {
	c.hooks.SubjectProgress = append(c.hooks.SubjectProgress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `subjectprogress.Intercept(f(g(h())))`.
func (c *SubjectProgressClient) Intercept(interceptors ...Interceptor) {
	c.inters.SubjectProgress = append(c.inters.SubjectProgress, interceptors...)
}

// Create returns a builder for creating a SubjectProgress entity.
func (c *SubjectProgressClient) Create() *SubjectProgressCreate {
	mutation := newSubjectProgressMutation(c.config, OpCreate)
	return &SubjectProgressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SubjectProgress entities.
func (c *SubjectProgressClient) CreateBulk(builders ...*SubjectProgressCreate) *SubjectProgressCreateBulk {
	return &SubjectProgressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubjectProgressClient) MapCreateBulk(slice any, setFunc func(*SubjectProgressCreate, int)) *SubjectProgressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubjectProgressCreateBulk{err: fmt.Errorf("calling to SubjectProgressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubjectProgressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubjectProgressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SubjectProgress.
func (c *SubjectProgressClient) Update() *SubjectProgressUpdate {
	mutation := newSubjectProgressMutation(c.config, OpUpdate)
	return &SubjectProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubjectProgressClient) UpdateOne(_m *SubjectProgress) *SubjectProgressUpdateOne {
	mutation := newSubjectProgressMutation(c.config, OpUpdateOne, withSubjectProgress(_m))
	return &SubjectProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubjectProgressClient) UpdateOneID(id int) *SubjectProgressUpdateOne {
	mutation := newSubjectProgressMutation(c.config, OpUpdateOne, withSubjectProgressID(id))
	return &SubjectProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SubjectProgress.
func (c *SubjectProgressClient) Delete() *SubjectProgressDelete {
	mutation := newSubjectProgressMutation(c.config, OpDelete)
	return &SubjectProgressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubjectProgressClient) DeleteOne(_m *SubjectProgress) *SubjectProgressDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubjectProgressClient) DeleteOneID(id int) *SubjectProgressDeleteOne {
	builder := c.Delete().Where(subjectprogress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubjectProgressDeleteOne{builder}
}

// Query returns a query builder for SubjectProgress.
func (c *SubjectProgressClient) Query() *SubjectProgressQuery {
	return &SubjectProgressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubjectProgress},
		inters: c.Interceptors(),
	}
}

// Get returns a SubjectProgress entity by its id.
func (c *SubjectProgressClient) Get(ctx context.Context, id int) (*SubjectProgress, error) {
	return c.Query().Where(subjectprogress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubjectProgressClient) GetX(ctx context.Context, id int) *SubjectProgress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SubjectProgressClient) Hooks() []Hook {
	return c.hooks.SubjectProgress
}

// Interceptors returns the client interceptors.
func (c *SubjectProgressClient) Interceptors() []Interceptor {
	return c.inters.SubjectProgress
}

func (c *SubjectProgressClient) mutate(ctx context.Context, m *SubjectProgressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubjectProgressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubjectProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubjectProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubjectProgressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SubjectProgress mutation op: %q", m.Op())
	}
}

// UserFactClient is a client for the UserFact schema.
type UserFactClient struct {
	config
}

// NewUserFactClient returns a client for the UserFact from the given config.
func NewUserFactClient(c config) *UserFactClient {
	return &UserFactClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userfact.Hooks(f(g(h())))`.
func (c *UserFactClient) Use(hooks ...Hook) {
	c.hooks.UserFact = append(c.hooks.UserFact, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userfact.Intercept(f(g(h())))`.
func (c *UserFactClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserFact = append(c.inters.UserFact, interceptors...)
}

// Create returns a builder for creating a UserFact entity.
func (c *UserFactClient) Create() *UserFactCreate {
	mutation := newUserFactMutation(c.config, OpCreate)
	return &UserFactCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserFact entities.
func (c *UserFactClient) CreateBulk(builders ...*UserFactCreate) *UserFactCreateBulk {
	return &UserFactCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserFactClient) MapCreateBulk(slice any, setFunc func(*UserFactCreate, int)) *UserFactCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserFactCreateBulk{err: fmt.Errorf("calling to UserFactClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserFactCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserFactCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserFact.
func (c *UserFactClient) Update() *UserFactUpdate {
	mutation := newUserFactMutation(c.config, OpUpdate)
	return &UserFactUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserFactClient) UpdateOne(_m *UserFact) *UserFactUpdateOne {
	mutation := newUserFactMutation(c.config, OpUpdateOne, withUserFact(_m))
	return &UserFactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserFactClient) UpdateOneID(id int) *UserFactUpdateOne {
	mutation := newUserFactMutation(c.config, OpUpdateOne, withUserFactID(id))
	return &UserFactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserFact.
func (c *UserFactClient) Delete() *UserFactDelete {
	mutation := newUserFactMutation(c.config, OpDelete)
	return &UserFactDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserFactClient) DeleteOne(_m *UserFact) *UserFactDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserFactClient) DeleteOneID(id int) *UserFactDeleteOne {
	builder := c.Delete().Where(userfact.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserFactDeleteOne{builder}
}

// Query returns a query builder for UserFact.
func (c *UserFactClient) Query() *UserFactQuery {
	return &UserFactQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserFact},
		inters: c.Interceptors(),
	}
}

// Get returns a UserFact entity by its id.
func (c *UserFactClient) Get(ctx context.Context, id int) (*UserFact, error) {
	return c.Query().Where(userfact.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserFactClient) GetX(ctx context.Context, id int) *UserFact {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserFactClient) Hooks() []Hook {
	return c.hooks.UserFact
}

// Interceptors returns the client interceptors.
func (c *UserFactClient) Interceptors() []Interceptor {
	return c.inters.UserFact
}

func (c *UserFactClient) mutate(ctx context.Context, m *UserFactMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserFactCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserFactUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserFactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserFactDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserFact mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		InteractionEvent, LearningPattern, PerformanceSnapshot, PracticeSession,
		SubjectProgress, UserFact []ent.Hook
	}
	inters struct {
		InteractionEvent, LearningPattern, PerformanceSnapshot, PracticeSession,
		SubjectProgress, UserFact []ent.Interceptor
	}
)
