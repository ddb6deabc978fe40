package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CostRecord is an append-only cost ledger row. LLM calls, explicit
// record_cost actions, and dismissal absorption all append here; subtree
// spend queries sum the amount column over a set of agent ids.
type CostRecord struct {
	ent.Schema
}

// Fields of the CostRecord.
func (CostRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("cost_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.String("agent_id").
			Immutable().
			Comment("Agent the cost is attributed to"),
		field.Enum("kind").
			Values("llm", "embedding", "action", "recorded", "absorbed").
			Comment("absorbed = unspent child budget returned to the parent on dismissal"),
		field.String("amount").
			Comment("Decimal amount serialized as string to avoid float drift"),
		field.String("description").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the CostRecord.
func (CostRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("costs").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the CostRecord.
func (CostRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id"),
		index.Fields("task_id"),
	}
}
