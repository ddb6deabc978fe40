// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/conclave-run/conclave/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/conclave-run/conclave/ent/actionrecord"
	"github.com/conclave-run/conclave/ent/agentrecord"
	"github.com/conclave-run/conclave/ent/costrecord"
	"github.com/conclave-run/conclave/ent/event"
	"github.com/conclave-run/conclave/ent/logentry"
	"github.com/conclave-run/conclave/ent/task"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ActionRecord is the client for interacting with the ActionRecord builders.
	ActionRecord *ActionRecordClient
	// AgentRecord is the client for interacting with the AgentRecord builders.
	AgentRecord *AgentRecordClient
	// CostRecord is the client for interacting with the CostRecord builders.
	CostRecord *CostRecordClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// LogEntry is the client for interacting with the LogEntry builders.
	LogEntry *LogEntryClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ActionRecord = NewActionRecordClient(c.config)
	c.AgentRecord = NewAgentRecordClient(c.config)
	c.CostRecord = NewCostRecordClient(c.config)
	c.Event = NewEventClient(c.config)
	c.LogEntry = NewLogEntryClient(c.config)
	c.Task = NewTaskClient(c.config)
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
		ctx:          ctx,
		config:       cfg,
		ActionRecord: NewActionRecordClient(cfg),
		AgentRecord:  NewAgentRecordClient(cfg),
		CostRecord:   NewCostRecordClient(cfg),
		Event:        NewEventClient(cfg),
		LogEntry:     NewLogEntryClient(cfg),
		Task:         NewTaskClient(cfg),
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
		ctx:          ctx,
		config:       cfg,
		ActionRecord: NewActionRecordClient(cfg),
		AgentRecord:  NewAgentRecordClient(cfg),
		CostRecord:   NewCostRecordClient(cfg),
		Event:        NewEventClient(cfg),
		LogEntry:     NewLogEntryClient(cfg),
		Task:         NewTaskClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ActionRecord.
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
		c.ActionRecord, c.AgentRecord, c.CostRecord, c.Event, c.LogEntry, c.Task,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ActionRecord, c.AgentRecord, c.CostRecord, c.Event, c.LogEntry, c.Task,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ActionRecordMutation:
		return c.ActionRecord.mutate(ctx, m)
	case *AgentRecordMutation:
		return c.AgentRecord.mutate(ctx, m)
	case *CostRecordMutation:
		return c.CostRecord.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *LogEntryMutation:
		return c.LogEntry.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ActionRecordClient is a client for the ActionRecord schema.
type ActionRecordClient struct {
	config
}

// NewActionRecordClient returns a client for the ActionRecord from the given config.
func NewActionRecordClient(c config) *ActionRecordClient {
	return &ActionRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `actionrecord.Hooks(f(g(h())))`.
func (c *ActionRecordClient) Use(hooks ...Hook) {
	c.hooks.ActionRecord = append(c.hooks.ActionRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `actionrecord.Intercept(f(g(h())))`.
func (c *ActionRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.ActionRecord = append(c.inters.ActionRecord, interceptors...)
}

// Create returns a builder for creating a ActionRecord entity.
func (c *ActionRecordClient) Create() *ActionRecordCreate {
	mutation := newActionRecordMutation(c.config, OpCreate)
	return &ActionRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ActionRecord entities.
func (c *ActionRecordClient) CreateBulk(builders ...*ActionRecordCreate) *ActionRecordCreateBulk {
	return &ActionRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ActionRecordClient) MapCreateBulk(slice any, setFunc func(*ActionRecordCreate, int)) *ActionRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ActionRecordCreateBulk{err: fmt.Errorf("calling to ActionRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ActionRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ActionRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ActionRecord.
func (c *ActionRecordClient) Update() *ActionRecordUpdate {
	mutation := newActionRecordMutation(c.config, OpUpdate)
	return &ActionRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ActionRecordClient) UpdateOne(_m *ActionRecord) *ActionRecordUpdateOne {
	mutation := newActionRecordMutation(c.config, OpUpdateOne, withActionRecord(_m))
	return &ActionRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ActionRecordClient) UpdateOneID(id string) *ActionRecordUpdateOne {
	mutation := newActionRecordMutation(c.config, OpUpdateOne, withActionRecordID(id))
	return &ActionRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ActionRecord.
func (c *ActionRecordClient) Delete() *ActionRecordDelete {
	mutation := newActionRecordMutation(c.config, OpDelete)
	return &ActionRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ActionRecordClient) DeleteOne(_m *ActionRecord) *ActionRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ActionRecordClient) DeleteOneID(id string) *ActionRecordDeleteOne {
	builder := c.Delete().Where(actionrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ActionRecordDeleteOne{builder}
}

// Query returns a query builder for ActionRecord.
func (c *ActionRecordClient) Query() *ActionRecordQuery {
	return &ActionRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeActionRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a ActionRecord entity by its id.
func (c *ActionRecordClient) Get(ctx context.Context, id string) (*ActionRecord, error) {
	return c.Query().Where(actionrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ActionRecordClient) GetX(ctx context.Context, id string) *ActionRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a ActionRecord.
func (c *ActionRecordClient) QueryTask(_m *ActionRecord) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(actionrecord.Table, actionrecord.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, actionrecord.TaskTable, actionrecord.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ActionRecordClient) Hooks() []Hook {
	return c.hooks.ActionRecord
}

// Interceptors returns the client interceptors.
func (c *ActionRecordClient) Interceptors() []Interceptor {
	return c.inters.ActionRecord
}

func (c *ActionRecordClient) mutate(ctx context.Context, m *ActionRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ActionRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ActionRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ActionRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ActionRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ActionRecord mutation op: %q", m.Op())
	}
}

// AgentRecordClient is a client for the AgentRecord schema.
type AgentRecordClient struct {
	config
}

// NewAgentRecordClient returns a client for the AgentRecord from the given config.
func NewAgentRecordClient(c config) *AgentRecordClient {
	return &AgentRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentrecord.Hooks(f(g(h())))`.
func (c *AgentRecordClient) Use(hooks ...Hook) {
	c.hooks.AgentRecord = append(c.hooks.AgentRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentrecord.Intercept(f(g(h())))`.
func (c *AgentRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentRecord = append(c.inters.AgentRecord, interceptors...)
}

// Create returns a builder for creating a AgentRecord entity.
func (c *AgentRecordClient) Create() *AgentRecordCreate {
	mutation := newAgentRecordMutation(c.config, OpCreate)
	return &AgentRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentRecord entities.
func (c *AgentRecordClient) CreateBulk(builders ...*AgentRecordCreate) *AgentRecordCreateBulk {
	return &AgentRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentRecordClient) MapCreateBulk(slice any, setFunc func(*AgentRecordCreate, int)) *AgentRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentRecordCreateBulk{err: fmt.Errorf("calling to AgentRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentRecord.
func (c *AgentRecordClient) Update() *AgentRecordUpdate {
	mutation := newAgentRecordMutation(c.config, OpUpdate)
	return &AgentRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentRecordClient) UpdateOne(_m *AgentRecord) *AgentRecordUpdateOne {
	mutation := newAgentRecordMutation(c.config, OpUpdateOne, withAgentRecord(_m))
	return &AgentRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentRecordClient) UpdateOneID(id string) *AgentRecordUpdateOne {
	mutation := newAgentRecordMutation(c.config, OpUpdateOne, withAgentRecordID(id))
	return &AgentRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentRecord.
func (c *AgentRecordClient) Delete() *AgentRecordDelete {
	mutation := newAgentRecordMutation(c.config, OpDelete)
	return &AgentRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentRecordClient) DeleteOne(_m *AgentRecord) *AgentRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentRecordClient) DeleteOneID(id string) *AgentRecordDeleteOne {
	builder := c.Delete().Where(agentrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentRecordDeleteOne{builder}
}

// Query returns a query builder for AgentRecord.
func (c *AgentRecordClient) Query() *AgentRecordQuery {
	return &AgentRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentRecord entity by its id.
func (c *AgentRecordClient) Get(ctx context.Context, id string) (*AgentRecord, error) {
	return c.Query().Where(agentrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentRecordClient) GetX(ctx context.Context, id string) *AgentRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a AgentRecord.
func (c *AgentRecordClient) QueryTask(_m *AgentRecord) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentrecord.Table, agentrecord.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentrecord.TaskTable, agentrecord.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentRecordClient) Hooks() []Hook {
	return c.hooks.AgentRecord
}

// Interceptors returns the client interceptors.
func (c *AgentRecordClient) Interceptors() []Interceptor {
	return c.inters.AgentRecord
}

func (c *AgentRecordClient) mutate(ctx context.Context, m *AgentRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentRecord mutation op: %q", m.Op())
	}
}

// CostRecordClient is a client for the CostRecord schema.
type CostRecordClient struct {
	config
}

// NewCostRecordClient returns a client for the CostRecord from the given config.
func NewCostRecordClient(c config) *CostRecordClient {
	return &CostRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `costrecord.Hooks(f(g(h())))`.
func (c *CostRecordClient) Use(hooks ...Hook) {
	c.hooks.CostRecord = append(c.hooks.CostRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `costrecord.Intercept(f(g(h())))`.
func (c *CostRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.CostRecord = append(c.inters.CostRecord, interceptors...)
}

// Create returns a builder for creating a CostRecord entity.
func (c *CostRecordClient) Create() *CostRecordCreate {
	mutation := newCostRecordMutation(c.config, OpCreate)
	return &CostRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CostRecord entities.
func (c *CostRecordClient) CreateBulk(builders ...*CostRecordCreate) *CostRecordCreateBulk {
	return &CostRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CostRecordClient) MapCreateBulk(slice any, setFunc func(*CostRecordCreate, int)) *CostRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CostRecordCreateBulk{err: fmt.Errorf("calling to CostRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CostRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CostRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CostRecord.
func (c *CostRecordClient) Update() *CostRecordUpdate {
	mutation := newCostRecordMutation(c.config, OpUpdate)
	return &CostRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CostRecordClient) UpdateOne(_m *CostRecord) *CostRecordUpdateOne {
	mutation := newCostRecordMutation(c.config, OpUpdateOne, withCostRecord(_m))
	return &CostRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CostRecordClient) UpdateOneID(id string) *CostRecordUpdateOne {
	mutation := newCostRecordMutation(c.config, OpUpdateOne, withCostRecordID(id))
	return &CostRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CostRecord.
func (c *CostRecordClient) Delete() *CostRecordDelete {
	mutation := newCostRecordMutation(c.config, OpDelete)
	return &CostRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CostRecordClient) DeleteOne(_m *CostRecord) *CostRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CostRecordClient) DeleteOneID(id string) *CostRecordDeleteOne {
	builder := c.Delete().Where(costrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CostRecordDeleteOne{builder}
}

// Query returns a query builder for CostRecord.
func (c *CostRecordClient) Query() *CostRecordQuery {
	return &CostRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCostRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a CostRecord entity by its id.
func (c *CostRecordClient) Get(ctx context.Context, id string) (*CostRecord, error) {
	return c.Query().Where(costrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CostRecordClient) GetX(ctx context.Context, id string) *CostRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a CostRecord.
func (c *CostRecordClient) QueryTask(_m *CostRecord) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(costrecord.Table, costrecord.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, costrecord.TaskTable, costrecord.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CostRecordClient) Hooks() []Hook {
	return c.hooks.CostRecord
}

// Interceptors returns the client interceptors.
func (c *CostRecordClient) Interceptors() []Interceptor {
	return c.inters.CostRecord
}

func (c *CostRecordClient) mutate(ctx context.Context, m *CostRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CostRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CostRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CostRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CostRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CostRecord mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a Event.
func (c *EventClient) QueryTask(_m *Event) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(event.Table, event.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, event.TaskTable, event.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// LogEntryClient is a client for the LogEntry schema.
type LogEntryClient struct {
	config
}

// NewLogEntryClient returns a client for the LogEntry from the given config.
func NewLogEntryClient(c config) *LogEntryClient {
	return &LogEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `logentry.Hooks(f(g(h())))`.
func (c *LogEntryClient) Use(hooks ...Hook) {
	c.hooks.LogEntry = append(c.hooks.LogEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `logentry.Intercept(f(g(h())))`.
func (c *LogEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.LogEntry = append(c.inters.LogEntry, interceptors...)
}

// Create returns a builder for creating a LogEntry entity.
func (c *LogEntryClient) Create() *LogEntryCreate {
	mutation := newLogEntryMutation(c.config, OpCreate)
	return &LogEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LogEntry entities.
func (c *LogEntryClient) CreateBulk(builders ...*LogEntryCreate) *LogEntryCreateBulk {
	return &LogEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LogEntryClient) MapCreateBulk(slice any, setFunc func(*LogEntryCreate, int)) *LogEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LogEntryCreateBulk{err: fmt.Errorf("calling to LogEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LogEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LogEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LogEntry.
func (c *LogEntryClient) Update() *LogEntryUpdate {
	mutation := newLogEntryMutation(c.config, OpUpdate)
	return &LogEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LogEntryClient) UpdateOne(_m *LogEntry) *LogEntryUpdateOne {
	mutation := newLogEntryMutation(c.config, OpUpdateOne, withLogEntry(_m))
	return &LogEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LogEntryClient) UpdateOneID(id int) *LogEntryUpdateOne {
	mutation := newLogEntryMutation(c.config, OpUpdateOne, withLogEntryID(id))
	return &LogEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LogEntry.
func (c *LogEntryClient) Delete() *LogEntryDelete {
	mutation := newLogEntryMutation(c.config, OpDelete)
	return &LogEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LogEntryClient) DeleteOne(_m *LogEntry) *LogEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LogEntryClient) DeleteOneID(id int) *LogEntryDeleteOne {
	builder := c.Delete().Where(logentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LogEntryDeleteOne{builder}
}

// Query returns a query builder for LogEntry.
func (c *LogEntryClient) Query() *LogEntryQuery {
	return &LogEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLogEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a LogEntry entity by its id.
func (c *LogEntryClient) Get(ctx context.Context, id int) (*LogEntry, error) {
	return c.Query().Where(logentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LogEntryClient) GetX(ctx context.Context, id int) *LogEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a LogEntry.
func (c *LogEntryClient) QueryTask(_m *LogEntry) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(logentry.Table, logentry.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, logentry.TaskTable, logentry.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LogEntryClient) Hooks() []Hook {
	return c.hooks.LogEntry
}

// Interceptors returns the client interceptors.
func (c *LogEntryClient) Interceptors() []Interceptor {
	return c.inters.LogEntry
}

func (c *LogEntryClient) mutate(ctx context.Context, m *LogEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LogEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LogEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LogEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LogEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LogEntry mutation op: %q", m.Op())
	}
}

// TaskClient is a client for the Task schema.
type TaskClient struct {
	config
}

// NewTaskClient returns a client for the Task from the given config.
func NewTaskClient(c config) *TaskClient {
	return &TaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `task.Hooks(f(g(h())))`.
func (c *TaskClient) Use(hooks ...Hook) {
	c.hooks.Task = append(c.hooks.Task, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `task.Intercept(f(g(h())))`.
func (c *TaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Task = append(c.inters.Task, interceptors...)
}

// Create returns a builder for creating a Task entity.
func (c *TaskClient) Create() *TaskCreate {
	mutation := newTaskMutation(c.config, OpCreate)
	return &TaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Task entities.
func (c *TaskClient) CreateBulk(builders ...*TaskCreate) *TaskCreateBulk {
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskClient) MapCreateBulk(slice any, setFunc func(*TaskCreate, int)) *TaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCreateBulk{err: fmt.Errorf("calling to TaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Task.
func (c *TaskClient) Update() *TaskUpdate {
	mutation := newTaskMutation(c.config, OpUpdate)
	return &TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskClient) UpdateOne(_m *Task) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTask(_m))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskClient) UpdateOneID(id string) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTaskID(id))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Task.
func (c *TaskClient) Delete() *TaskDelete {
	mutation := newTaskMutation(c.config, OpDelete)
	return &TaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskClient) DeleteOne(_m *Task) *TaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskClient) DeleteOneID(id string) *TaskDeleteOne {
	builder := c.Delete().Where(task.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDeleteOne{builder}
}

// Query returns a query builder for Task.
func (c *TaskClient) Query() *TaskQuery {
	return &TaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTask},
		inters: c.Interceptors(),
	}
}

// Get returns a Task entity by its id.
func (c *TaskClient) Get(ctx context.Context, id string) (*Task, error) {
	return c.Query().Where(task.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskClient) GetX(ctx context.Context, id string) *Task {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAgents queries the agents edge of a Task.
func (c *TaskClient) QueryAgents(_m *Task) *AgentRecordQuery {
	query := (&AgentRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(agentrecord.Table, agentrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.AgentsTable, task.AgentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryActions queries the actions edge of a Task.
func (c *TaskClient) QueryActions(_m *Task) *ActionRecordQuery {
	query := (&ActionRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(actionrecord.Table, actionrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.ActionsTable, task.ActionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCosts queries the costs edge of a Task.
func (c *TaskClient) QueryCosts(_m *Task) *CostRecordQuery {
	query := (&CostRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(costrecord.Table, costrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.CostsTable, task.CostsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLogs queries the logs edge of a Task.
func (c *TaskClient) QueryLogs(_m *Task) *LogEntryQuery {
	query := (&LogEntryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(logentry.Table, logentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.LogsTable, task.LogsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvents queries the events edge of a Task.
func (c *TaskClient) QueryEvents(_m *Task) *EventQuery {
	query := (&EventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.EventsTable, task.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskClient) Hooks() []Hook {
	return c.hooks.Task
}

// Interceptors returns the client interceptors.
func (c *TaskClient) Interceptors() []Interceptor {
	return c.inters.Task
}

func (c *TaskClient) mutate(ctx context.Context, m *TaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Task mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ActionRecord, AgentRecord, CostRecord, Event, LogEntry, Task []ent.Hook
	}
	inters struct {
		ActionRecord, AgentRecord, CostRecord, Event, LogEntry, Task []ent.Interceptor
	}
)
