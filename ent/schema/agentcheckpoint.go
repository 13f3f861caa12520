package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentCheckpoint holds the schema definition for a lightweight recovery
// marker — never a full message history, which lives in the SQL message
// log instead.
type AgentCheckpoint struct {
	ent.Schema
}

func (AgentCheckpoint) Mixin() []ent.Mixin {
	return []ent.Mixin{EntityEnvelope{}}
}

func (AgentCheckpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("agent_id"),
		field.String("session_id").
			Optional().
			Nillable(),
		field.String("current_step").
			Optional().
			Nillable(),
		field.String("pending_approval_id").
			Optional().
			Nillable(),
		field.String("waiting_for_task_id").
			Optional().
			Nillable(),
	}
}

func (AgentCheckpoint) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent", AgentRecord.Type).
			Ref("checkpoints").
			Field("agent_id").
			Unique().
			Required().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (AgentCheckpoint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id", "agent_id", "created_at"),
	}
}
