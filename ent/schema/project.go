package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Project holds the schema definition for the Project entity: the top-level
// status-bearing container Epics and Tasks belong to.
type Project struct {
	ent.Schema
}

func (Project) Mixin() []ent.Mixin {
	return []ent.Mixin{EntityEnvelope{}}
}

func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("status").
			Values("planning", "in_progress", "done", "archived").
			Default("planning"),
		field.Text("description").
			Optional(),
	}
}

func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("epics", Epic.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("tasks", Task.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("meta_orchestrator", MetaOrchestratorRecord.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Project) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id", "status"),
	}
}
