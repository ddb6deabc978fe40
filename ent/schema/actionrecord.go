package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActionRecord is the append-only audit row for one dispatched action.
// Legal status transitions: pending → running → {completed, failed} and
// pending → failed (validation rejects before execution).
type ActionRecord struct {
	ent.Schema
}

// Fields of the ActionRecord.
func (ActionRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("action_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.String("action_type").
			Immutable(),
		field.JSON("params", map[string]interface{}{}).
			Optional(),
		field.JSON("result", map[string]interface{}{}).
			Optional(),
		field.Enum("status").
			Values("pending", "running", "completed", "failed").
			Default("pending"),
		field.String("parent_action_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Set for sub-actions of a batch"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
	}
}

// Edges of the ActionRecord.
func (ActionRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("actions").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ActionRecord.
func (ActionRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id"),
		index.Fields("task_id", "started_at"),
	}
}
