// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActionRecordsColumns holds the columns for the "action_records" table.
	ActionRecordsColumns = []*schema.Column{
		{Name: "action_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "action_type", Type: field.TypeString},
		{Name: "params", Type: field.TypeJSON, Nullable: true},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed"}, Default: "pending"},
		{Name: "parent_action_id", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "task_id", Type: field.TypeString},
	}
	// ActionRecordsTable holds the schema information for the "action_records" table.
	ActionRecordsTable = &schema.Table{
		Name:       "action_records",
		Columns:    ActionRecordsColumns,
		PrimaryKey: []*schema.Column{ActionRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "action_records_tasks_actions",
				Columns:    []*schema.Column{ActionRecordsColumns[10]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "actionrecord_agent_id",
				Unique:  false,
				Columns: []*schema.Column{ActionRecordsColumns[1]},
			},
			{
				Name:    "actionrecord_task_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{ActionRecordsColumns[10], ActionRecordsColumns[7]},
			},
		},
	}
	// AgentRecordsColumns holds the columns for the "agent_records" table.
	AgentRecordsColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "parent_id", Type: field.TypeString, Nullable: true},
		{Name: "profile_name", Type: field.TypeString},
		{Name: "model_pool", Type: field.TypeJSON},
		{Name: "capability_groups", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"starting", "running", "idle", "pausing", "paused", "stopped", "failed"}, Default: "starting"},
		{Name: "prompt_fields", Type: field.TypeJSON},
		{Name: "model_histories", Type: field.TypeJSON, Nullable: true},
		{Name: "budget_data", Type: field.TypeJSON, Nullable: true},
		{Name: "active_skills", Type: field.TypeJSON, Nullable: true},
		{Name: "todos", Type: field.TypeJSON, Nullable: true},
		{Name: "children", Type: field.TypeJSON, Nullable: true},
		{Name: "dismissing", Type: field.TypeBool, Default: false},
		{Name: "inserted_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// AgentRecordsTable holds the schema information for the "agent_records" table.
	AgentRecordsTable = &schema.Table{
		Name:       "agent_records",
		Columns:    AgentRecordsColumns,
		PrimaryKey: []*schema.Column{AgentRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_records_tasks_agents",
				Columns:    []*schema.Column{AgentRecordsColumns[15]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentrecord_task_id",
				Unique:  false,
				Columns: []*schema.Column{AgentRecordsColumns[15]},
			},
			{
				Name:    "agentrecord_task_id_inserted_at",
				Unique:  false,
				Columns: []*schema.Column{AgentRecordsColumns[15], AgentRecordsColumns[13]},
			},
			{
				Name:    "agentrecord_parent_id",
				Unique:  false,
				Columns: []*schema.Column{AgentRecordsColumns[1]},
			},
		},
	}
	// CostRecordsColumns holds the columns for the "cost_records" table.
	CostRecordsColumns = []*schema.Column{
		{Name: "cost_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"llm", "embedding", "action", "recorded", "absorbed"}},
		{Name: "amount", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// CostRecordsTable holds the schema information for the "cost_records" table.
	CostRecordsTable = &schema.Table{
		Name:       "cost_records",
		Columns:    CostRecordsColumns,
		PrimaryKey: []*schema.Column{CostRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "cost_records_tasks_costs",
				Columns:    []*schema.Column{CostRecordsColumns[6]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "costrecord_agent_id",
				Unique:  false,
				Columns: []*schema.Column{CostRecordsColumns[1]},
			},
			{
				Name:    "costrecord_task_id",
				Unique:  false,
				Columns: []*schema.Column{CostRecordsColumns[6]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "topic", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_tasks_events",
				Columns:    []*schema.Column{EventsColumns[4]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_topic_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[0]},
			},
		},
	}
	// LogEntriesColumns holds the columns for the "log_entries" table.
	LogEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "agent_id", Type: field.TypeString, Nullable: true},
		{Name: "level", Type: field.TypeString, Default: "info"},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "fields", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// LogEntriesTable holds the schema information for the "log_entries" table.
	LogEntriesTable = &schema.Table{
		Name:       "log_entries",
		Columns:    LogEntriesColumns,
		PrimaryKey: []*schema.Column{LogEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "log_entries_tasks_logs",
				Columns:    []*schema.Column{LogEntriesColumns[6]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "logentry_task_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{LogEntriesColumns[6], LogEntriesColumns[5]},
			},
			{
				Name:    "logentry_agent_id",
				Unique:  false,
				Columns: []*schema.Column{LogEntriesColumns[1]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "pausing", "paused", "completed", "failed"}, Default: "running"},
		{Name: "global_context", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "initial_constraints", Type: field.TypeJSON, Nullable: true},
		{Name: "profile_name", Type: field.TypeString},
		{Name: "result", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[2]},
			},
			{
				Name:    "task_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActionRecordsTable,
		AgentRecordsTable,
		CostRecordsTable,
		EventsTable,
		LogEntriesTable,
		TasksTable,
	}
)

func init() {
	ActionRecordsTable.ForeignKeys[0].RefTable = TasksTable
	AgentRecordsTable.ForeignKeys[0].RefTable = TasksTable
	CostRecordsTable.ForeignKeys[0].RefTable = TasksTable
	EventsTable.ForeignKeys[0].RefTable = TasksTable
	LogEntriesTable.ForeignKeys[0].RefTable = TasksTable
}
