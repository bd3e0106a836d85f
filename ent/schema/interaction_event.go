package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InteractionEvent records a single tutoring interaction (hint shown,
// explanation requested, feedback given, chat exchange).
type InteractionEvent struct {
	ent.Schema
}

func (InteractionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("record_id").
			Unique().
			Immutable(),
		field.String("user_id").NotEmpty(),
		field.String("kind").
			NotEmpty().
			Comment("hint, explanation, feedback, or chat"),
		field.JSON("context", map[string]any{}).
			Optional().
			Comment("Kind-specific context payload"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (InteractionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("kind"),
		index.Fields("created_at"),
	}
}
