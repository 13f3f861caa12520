package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Epic holds the schema definition for the Epic entity. Belongs to a
// Project via BELONGS_TO; auto-starts (planning -> in_progress) per
// invariant P9 when any child Task enters doing|review|blocked.
type Epic struct {
	ent.Schema
}

func (Epic) Mixin() []ent.Mixin {
	return []ent.Mixin{EntityEnvelope{}}
}

func (Epic) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("status").
			Values("planning", "in_progress", "done", "archived").
			Default("planning"),
		field.String("project_id").
			Comment("BELONGS_TO Project"),
		field.Text("description").
			Optional(),
	}
}

func (Epic) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("epics").
			Field("project_id").
			Unique().
			Required().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("tasks", Task.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Epic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id", "project_id"),
		index.Fields("status"),
	}
}
