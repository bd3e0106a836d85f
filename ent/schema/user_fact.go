package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserFact holds slow-changing facts about a user that personalization
// draws on: grade level, upcoming exam date, and opaque UI preferences.
type UserFact struct {
	ent.Schema
}

func (UserFact) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Unique(),
		field.Int("grade_level").
			Default(0).
			Comment("0 means unknown"),
		field.Time("exam_date").
			Optional().
			Nillable(),
		field.JSON("preferences", map[string]any{}).
			Optional().
			Comment("Opaque preference map owned by the settings UI"),
	}
}

func (UserFact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
