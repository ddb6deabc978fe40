package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentRecord holds the persisted state of one agent actor. The live actor
// writes through to this record on every action result and on graceful stop;
// restoration rebuilds the actor tree from these rows ordered by inserted_at
// (parents are always inserted before their children).
type AgentRecord struct {
	ent.Schema
}

// Fields of the AgentRecord.
func (AgentRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.String("parent_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Nil for root agents"),
		field.String("profile_name"),
		field.JSON("model_pool", []string{}).
			Comment("Ordered model identifiers, duplicates allowed"),
		field.JSON("capability_groups", []string{}),
		field.Enum("status").
			Values("starting", "running", "idle", "pausing", "paused", "stopped", "failed").
			Default("starting"),
		field.JSON("prompt_fields", map[string]interface{}{}).
			Comment("Three-zone record: injected / provided / transformed"),
		field.JSON("model_histories", map[string]interface{}{}).
			Optional().
			Comment("Per model-pool slot history entries"),
		field.JSON("budget_data", map[string]interface{}{}).
			Optional(),
		field.JSON("active_skills", []map[string]interface{}{}).
			Optional(),
		field.JSON("todos", []map[string]interface{}{}).
			Optional(),
		field.JSON("children", []string{}).
			Optional().
			Comment("Direct child agent ids, insertion-ordered"),
		field.Bool("dismissing").
			Default(false),
		field.Time("inserted_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the AgentRecord.
func (AgentRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("agents").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AgentRecord.
func (AgentRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id"),
		index.Fields("task_id", "inserted_at"),
		index.Fields("parent_id"),
	}
}
