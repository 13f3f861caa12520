package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity — the unit of work
// that flows through the Meta and Task Orchestrators.
type Task struct {
	ent.Schema
}

func (Task) Mixin() []ent.Mixin {
	return []ent.Mixin{EntityEnvelope{}}
}

func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("project_id"),
		field.String("epic_id").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("todo", "doing", "blocked", "review", "done", "archived").
			Default("todo"),
		field.Enum("priority").
			Values("low", "medium", "high", "critical").
			Default("medium"),
		field.Int("complexity").
			Optional().
			Nillable(),
		field.String("feature").
			Optional().
			Nillable(),
		field.Strings("assignees").
			Optional(),
		field.Time("due_date").
			Optional().
			Nillable(),
		field.Float("estimated_hours").
			Optional().
			Nillable(),
		field.Float("actual_hours").
			Optional().
			Nillable(),
		field.Strings("technologies").
			Optional(),
		field.String("branch_name").
			Optional().
			Nillable(),
		field.Strings("commit_shas").
			Optional(),
		field.String("pr_url").
			Optional().
			Nillable(),
		field.Text("learnings").
			Optional().
			Nillable(),
		field.String("assigned_agent").
			Optional().
			Nillable().
			Comment("AgentRecord id; non-null required while status in doing|review (invariant #2)"),
		field.Time("claimed_at").
			Optional().
			Nillable(),
	}
}

func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("tasks").
			Field("project_id").
			Unique().
			Required().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.From("epic", Epic.Type).
			Ref("tasks").
			Field("epic_id").
			Unique(),
		edge.To("agent_records", AgentRecord.Type),
		edge.To("worktrees", WorktreeRecord.Type),
		edge.To("task_orchestrator", TaskOrchestratorRecord.Type).
			Unique(),
	}
}

func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id", "project_id"),
		index.Fields("organization_id", "epic_id"),
		index.Fields("status", "priority"),
	}
}
