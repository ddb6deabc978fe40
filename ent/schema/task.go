package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity. A task owns the tree
// of agents spawned to carry it out; deleting a task cascades to everything.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.Text("prompt").
			Comment("Natural-language goal submitted by the user"),
		field.Enum("status").
			Values("running", "pausing", "paused", "completed", "failed").
			Default("running"),
		field.Text("global_context").
			Optional().
			Nillable(),
		field.JSON("initial_constraints", []string{}).
			Optional(),
		field.String("profile_name").
			Comment("Profile selecting model pool and capability groups"),
		field.Text("result").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("agents", AgentRecord.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("actions", ActionRecord.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("costs", CostRecord.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("logs", LogEntry.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("created_at"),
	}
}
