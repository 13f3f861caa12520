package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorktreeRecord holds the schema definition for an isolated checkout+branch
// pair owned by at most one agent at a time (invariant #7).
type WorktreeRecord struct {
	ent.Schema
}

func (WorktreeRecord) Mixin() []ent.Mixin {
	return []ent.Mixin{EntityEnvelope{}}
}

func (WorktreeRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("task_id"),
		field.String("agent_id").
			Optional().
			Nillable(),
		field.String("path"),
		field.String("branch"),
		field.String("base_commit"),
		field.Enum("status").
			Values("active", "merged", "orphaned").
			Default("active"),
		field.Time("last_used"),
		field.Bool("has_uncommitted").
			Default(false),
	}
}

func (WorktreeRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("agents", AgentRecord.Type),
	}
}

func (WorktreeRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id", "task_id"),
		index.Fields("status"),
	}
}
