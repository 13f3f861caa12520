package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// EntityEnvelope carries the identity envelope every Sibyl entity shares per
// spec.md §3: organization_id is mandatory on every read and write; metadata
// is the free-form bag typed projections round-trip through (§4.1).
type EntityEnvelope struct {
	mixin.Schema
}

func (EntityEnvelope) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("organization_id").
			Immutable().
			Comment("tenancy scope; every read filters on this (invariant P1)"),
		field.String("name").
			Optional(),
		field.String("created_by").
			Optional().
			Nillable(),
		field.String("modified_by").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("free-form extension bag; typed fields project onto it on write and coerce back on read"),
	}
}

func (EntityEnvelope) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id"),
	}
}
