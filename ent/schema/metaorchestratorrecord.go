package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MetaOrchestratorRecord holds the schema definition for the project-level
// scheduler (C4) — one per project.
type MetaOrchestratorRecord struct {
	ent.Schema
}

func (MetaOrchestratorRecord) Mixin() []ent.Mixin {
	return []ent.Mixin{EntityEnvelope{}}
}

func (MetaOrchestratorRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("project_id").
			Unique(),
		field.Enum("status").
			Values("idle", "running", "paused").
			Default("idle"),
		field.Enum("strategy").
			Values("sequential", "parallel", "priority").
			Default("sequential"),
		field.Int("max_concurrent").
			Default(1),
		field.Strings("task_queue").
			Optional().
			Comment("ordered task ids awaiting a TaskOrchestrator spawn"),
		field.Strings("active_orchestrators").
			Optional().
			Comment("TaskOrchestratorRecord ids currently spawned"),
		field.Float("budget_usd").
			Default(0),
		field.Float("spent_usd").
			Default(0),
		field.Float("cost_alert_threshold").
			Default(0.8),
		field.Int("tasks_completed").
			Default(0),
		field.Int("tasks_failed").
			Default(0),
		field.Int("total_rework_cycles").
			Default(0),
		field.String("pause_reason").
			Optional().
			Nillable(),
	}
}

func (MetaOrchestratorRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("meta_orchestrator").
			Field("project_id").
			Unique().
			Required().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (MetaOrchestratorRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id", "status"),
	}
}
