package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TaskOrchestratorRecord holds the schema definition for the per-task build
// loop state machine (C3). rework_count must never exceed
// max_rework_attempts (invariant #4 / P5).
type TaskOrchestratorRecord struct {
	ent.Schema
}

func (TaskOrchestratorRecord) Mixin() []ent.Mixin {
	return []ent.Mixin{EntityEnvelope{}}
}

func (TaskOrchestratorRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("task_id").
			Unique(),
		field.String("meta_orchestrator_id").
			Optional().
			Nillable(),
		field.String("worker_id").
			Optional().
			Nillable(),
		field.String("worktree_id").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("active", "completed", "failed", "paused").
			Default("active"),
		field.Enum("current_phase").
			Values("initializing", "implementing", "reviewing", "reworking",
				"human_review", "merge", "complete", "failed").
			Default("initializing"),
		field.Int("rework_count").
			Default(0),
		field.Int("max_rework_attempts").
			Default(3),
		field.Strings("gate_config").
			Optional().
			Comment(`default ["LINT","TYPECHECK","TEST","AI_REVIEW"]`),
		field.JSON("gate_results", []map[string]interface{}{}).
			Optional(),
		field.String("pending_approval_id").
			Optional().
			Nillable(),
	}
}

func (TaskOrchestratorRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("task_orchestrator").
			Field("task_id").
			Unique().
			Required(),
	}
}

func (TaskOrchestratorRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id", "meta_orchestrator_id"),
		index.Fields("status"),
	}
}
