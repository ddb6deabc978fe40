// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/conclave-run/conclave/ent/agentrecord"
	"github.com/conclave-run/conclave/ent/task"
)

// AgentRecord is the model entity for the AgentRecord schema.
type AgentRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// Nil for root agents
	ParentID *string `json:"parent_id,omitempty"`
	// ProfileName holds the value of the "profile_name" field.
	ProfileName string `json:"profile_name,omitempty"`
	// Ordered model identifiers, duplicates allowed
	ModelPool []string `json:"model_pool,omitempty"`
	// CapabilityGroups holds the value of the "capability_groups" field.
	CapabilityGroups []string `json:"capability_groups,omitempty"`
	// Status holds the value of the "status" field.
	Status agentrecord.Status `json:"status,omitempty"`
	// Three-zone record: injected / provided / transformed
	PromptFields map[string]interface{} `json:"prompt_fields,omitempty"`
	// Per model-pool slot history entries
	ModelHistories map[string]interface{} `json:"model_histories,omitempty"`
	// BudgetData holds the value of the "budget_data" field.
	BudgetData map[string]interface{} `json:"budget_data,omitempty"`
	// ActiveSkills holds the value of the "active_skills" field.
	ActiveSkills []map[string]interface{} `json:"active_skills,omitempty"`
	// Todos holds the value of the "todos" field.
	Todos []map[string]interface{} `json:"todos,omitempty"`
	// Direct child agent ids, insertion-ordered
	Children []string `json:"children,omitempty"`
	// Dismissing holds the value of the "dismissing" field.
	Dismissing bool `json:"dismissing,omitempty"`
	// InsertedAt holds the value of the "inserted_at" field.
	InsertedAt time.Time `json:"inserted_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentRecordQuery when eager-loading is set.
	Edges        AgentRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentRecordEdges holds the relations/edges for other nodes in the graph.
type AgentRecordEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentRecordEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentrecord.FieldModelPool, agentrecord.FieldCapabilityGroups, agentrecord.FieldPromptFields, agentrecord.FieldModelHistories, agentrecord.FieldBudgetData, agentrecord.FieldActiveSkills, agentrecord.FieldTodos, agentrecord.FieldChildren:
			values[i] = new([]byte)
		case agentrecord.FieldDismissing:
			values[i] = new(sql.NullBool)
		case agentrecord.FieldID, agentrecord.FieldTaskID, agentrecord.FieldParentID, agentrecord.FieldProfileName, agentrecord.FieldStatus:
			values[i] = new(sql.NullString)
		case agentrecord.FieldInsertedAt, agentrecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentRecord fields.
func (_m *AgentRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentrecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentrecord.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case agentrecord.FieldParentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_id", values[i])
			} else if value.Valid {
				_m.ParentID = new(string)
				*_m.ParentID = value.String
			}
		case agentrecord.FieldProfileName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field profile_name", values[i])
			} else if value.Valid {
				_m.ProfileName = value.String
			}
		case agentrecord.FieldModelPool:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field model_pool", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ModelPool); err != nil {
					return fmt.Errorf("unmarshal field model_pool: %w", err)
				}
			}
		case agentrecord.FieldCapabilityGroups:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field capability_groups", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CapabilityGroups); err != nil {
					return fmt.Errorf("unmarshal field capability_groups: %w", err)
				}
			}
		case agentrecord.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = agentrecord.Status(value.String)
			}
		case agentrecord.FieldPromptFields:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_fields", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PromptFields); err != nil {
					return fmt.Errorf("unmarshal field prompt_fields: %w", err)
				}
			}
		case agentrecord.FieldModelHistories:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field model_histories", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ModelHistories); err != nil {
					return fmt.Errorf("unmarshal field model_histories: %w", err)
				}
			}
		case agentrecord.FieldBudgetData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field budget_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BudgetData); err != nil {
					return fmt.Errorf("unmarshal field budget_data: %w", err)
				}
			}
		case agentrecord.FieldActiveSkills:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field active_skills", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ActiveSkills); err != nil {
					return fmt.Errorf("unmarshal field active_skills: %w", err)
				}
			}
		case agentrecord.FieldTodos:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field todos", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Todos); err != nil {
					return fmt.Errorf("unmarshal field todos: %w", err)
				}
			}
		case agentrecord.FieldChildren:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field children", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Children); err != nil {
					return fmt.Errorf("unmarshal field children: %w", err)
				}
			}
		case agentrecord.FieldDismissing:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field dismissing", values[i])
			} else if value.Valid {
				_m.Dismissing = value.Bool
			}
		case agentrecord.FieldInsertedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field inserted_at", values[i])
			} else if value.Valid {
				_m.InsertedAt = value.Time
			}
		case agentrecord.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentRecord.
// This includes values selected through modifiers, order, etc.
func (_m *AgentRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the AgentRecord entity.
func (_m *AgentRecord) QueryTask() *TaskQuery {
	return NewAgentRecordClient(_m.config).QueryTask(_m)
}

// Update returns a builder for updating this AgentRecord.
// Note that you need to call AgentRecord.Unwrap() before calling this method if this AgentRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentRecord) Update() *AgentRecordUpdateOne {
	return NewAgentRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentRecord) Unwrap() *AgentRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentRecord) String() string {
	var builder strings.Builder
	builder.WriteString("AgentRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	if v := _m.ParentID; v != nil {
		builder.WriteString("parent_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("profile_name=")
	builder.WriteString(_m.ProfileName)
	builder.WriteString(", ")
	builder.WriteString("model_pool=")
	builder.WriteString(fmt.Sprintf("%v", _m.ModelPool))
	builder.WriteString(", ")
	builder.WriteString("capability_groups=")
	builder.WriteString(fmt.Sprintf("%v", _m.CapabilityGroups))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("prompt_fields=")
	builder.WriteString(fmt.Sprintf("%v", _m.PromptFields))
	builder.WriteString(", ")
	builder.WriteString("model_histories=")
	builder.WriteString(fmt.Sprintf("%v", _m.ModelHistories))
	builder.WriteString(", ")
	builder.WriteString("budget_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.BudgetData))
	builder.WriteString(", ")
	builder.WriteString("active_skills=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActiveSkills))
	builder.WriteString(", ")
	builder.WriteString("todos=")
	builder.WriteString(fmt.Sprintf("%v", _m.Todos))
	builder.WriteString(", ")
	builder.WriteString("children=")
	builder.WriteString(fmt.Sprintf("%v", _m.Children))
	builder.WriteString(", ")
	builder.WriteString("dismissing=")
	builder.WriteString(fmt.Sprintf("%v", _m.Dismissing))
	builder.WriteString(", ")
	builder.WriteString("inserted_at=")
	builder.WriteString(_m.InsertedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentRecords is a parsable slice of AgentRecord.
type AgentRecords []*AgentRecord
