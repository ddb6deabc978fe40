// Code generated by ent, DO NOT EDIT.

package agentrecord

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the agentrecord type in the database.
	Label = "agent_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "agent_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldParentID holds the string denoting the parent_id field in the database.
	FieldParentID = "parent_id"
	// FieldProfileName holds the string denoting the profile_name field in the database.
	FieldProfileName = "profile_name"
	// FieldModelPool holds the string denoting the model_pool field in the database.
	FieldModelPool = "model_pool"
	// FieldCapabilityGroups holds the string denoting the capability_groups field in the database.
	FieldCapabilityGroups = "capability_groups"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPromptFields holds the string denoting the prompt_fields field in the database.
	FieldPromptFields = "prompt_fields"
	// FieldModelHistories holds the string denoting the model_histories field in the database.
	FieldModelHistories = "model_histories"
	// FieldBudgetData holds the string denoting the budget_data field in the database.
	FieldBudgetData = "budget_data"
	// FieldActiveSkills holds the string denoting the active_skills field in the database.
	FieldActiveSkills = "active_skills"
	// FieldTodos holds the string denoting the todos field in the database.
	FieldTodos = "todos"
	// FieldChildren holds the string denoting the children field in the database.
	FieldChildren = "children"
	// FieldDismissing holds the string denoting the dismissing field in the database.
	FieldDismissing = "dismissing"
	// FieldInsertedAt holds the string denoting the inserted_at field in the database.
	FieldInsertedAt = "inserted_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeTask holds the string denoting the task edge name in mutations.
	EdgeTask = "task"
	// TaskFieldID holds the string denoting the ID field of the Task.
	TaskFieldID = "task_id"
	// Table holds the table name of the agentrecord in the database.
	Table = "agent_records"
	// TaskTable is the table that holds the task relation/edge.
	TaskTable = "agent_records"
	// TaskInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TaskInverseTable = "tasks"
	// TaskColumn is the table column denoting the task relation/edge.
	TaskColumn = "task_id"
)

// Columns holds all SQL columns for agentrecord fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldParentID,
	FieldProfileName,
	FieldModelPool,
	FieldCapabilityGroups,
	FieldStatus,
	FieldPromptFields,
	FieldModelHistories,
	FieldBudgetData,
	FieldActiveSkills,
	FieldTodos,
	FieldChildren,
	FieldDismissing,
	FieldInsertedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultDismissing holds the default value on creation for the "dismissing" field.
	DefaultDismissing bool
	// DefaultInsertedAt holds the default value on creation for the "inserted_at" field.
	DefaultInsertedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusStarting is the default value of the Status enum.
const DefaultStatus = StatusStarting

// Status values.
const (
	StatusStarting Status = "starting"
	StatusRunning  Status = "running"
	StatusIdle     Status = "idle"
	StatusPausing  Status = "pausing"
	StatusPaused   Status = "paused"
	StatusStopped  Status = "stopped"
	StatusFailed   Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusStarting, StatusRunning, StatusIdle, StatusPausing, StatusPaused, StatusStopped, StatusFailed:
		return nil
	default:
		return fmt.Errorf("agentrecord: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the AgentRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByParentID orders the results by the parent_id field.
func ByParentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentID, opts...).ToFunc()
}

// ByProfileName orders the results by the profile_name field.
func ByProfileName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfileName, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByDismissing orders the results by the dismissing field.
func ByDismissing(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDismissing, opts...).ToFunc()
}

// ByInsertedAt orders the results by the inserted_at field.
func ByInsertedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInsertedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTaskField orders the results by task field.
func ByTaskField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTaskStep(), sql.OrderByField(field, opts...))
	}
}
func newTaskStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TaskInverseTable, TaskFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
	)
}
