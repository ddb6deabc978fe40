package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LogEntry is an append-only per-agent structured log row. User-visible
// task messages are log entries with level "message" on the task channel.
type LogEntry struct {
	ent.Schema
}

// Fields of the LogEntry.
func (LogEntry) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.String("agent_id").
			Optional().
			Immutable().
			Comment("Empty for task-level messages"),
		field.String("level").
			Default("info"),
		field.Text("content"),
		field.JSON("fields", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the LogEntry.
func (LogEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("logs").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the LogEntry.
func (LogEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "created_at"),
		index.Fields("agent_id"),
	}
}
