package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ApprovalRecord holds the schema definition for a human-in-the-loop
// approval barrier. Lifecycle is monotonic (invariant #9 / P3): pending ->
// {approved, denied, expired}, never back to pending.
type ApprovalRecord struct {
	ent.Schema
}

func (ApprovalRecord) Mixin() []ent.Mixin {
	return []ent.Mixin{EntityEnvelope{}}
}

func (ApprovalRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("project_id"),
		field.String("agent_id"),
		field.String("task_id").
			Optional().
			Nillable(),
		field.Enum("approval_type").
			Values("tool_use", "review_phase", "question", "deploy").
			Default("question"),
		field.Int("priority").
			Default(5),
		field.String("title"),
		field.Text("summary"),
		field.JSON("actions", []map[string]interface{}{}).
			Optional(),
		field.Enum("status").
			Values("pending", "approved", "denied", "expired").
			Default("pending"),
		field.Time("expires_at"),
		field.Time("responded_at").
			Optional().
			Nillable(),
		field.String("response_by").
			Optional().
			Nillable(),
		field.String("response_message").
			Optional().
			Nillable(),
	}
}

func (ApprovalRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id", "agent_id"),
		index.Fields("status", "expires_at"),
	}
}
