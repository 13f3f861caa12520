package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentRecord holds the schema definition for a single agent instance's
// durable record. Invariant #3: at most one non-terminal AgentRecord exists
// per task, enforced by the spawn:task:<task_id> lock at the Agent Runner
// layer, not by a DB constraint (the lock must reject concurrent spawners
// before either row is written).
type AgentRecord struct {
	ent.Schema
}

func (AgentRecord) Mixin() []ent.Mixin {
	return []ent.Mixin{EntityEnvelope{}}
}

func (AgentRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("agent_type"),
		field.Enum("spawn_source").
			Values("orchestrator", "api", "cli", "standalone").
			Default("standalone"),
		field.Enum("status").
			Values("initializing", "working", "paused", "waiting_approval",
				"waiting_dependency", "completed", "failed", "terminated").
			Default("initializing"),
		field.String("task_id").
			Optional().
			Nillable(),
		field.String("worktree_id").
			Optional().
			Nillable(),
		field.String("session_id").
			Optional().
			Nillable().
			Comment("resume key into the agent subprocess; absence forces restart, not resume"),
		field.Bool("standalone").
			Default(true),
		field.String("task_orchestrator_id").
			Optional().
			Nillable(),
		field.Int("tokens_used").
			Default(0),
		field.Float("cost_usd").
			Default(0),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("last_heartbeat").
			Optional().
			Nillable().
			Comment("written every 30s while streaming; staleness threshold 120s"),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (AgentRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("agent_records").
			Field("task_id").
			Unique(),
		edge.From("worktree", WorktreeRecord.Type).
			Ref("agents").
			Field("worktree_id").
			Unique(),
		edge.To("checkpoints", AgentCheckpoint.Type),
	}
}

func (AgentRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id", "task_id"),
		index.Fields("status", "last_heartbeat"),
	}
}
