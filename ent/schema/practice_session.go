package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PracticeSession records a single practice session for a user and subject.
// Sessions are created by the practice subsystem; the engine reads them only.
type PracticeSession struct {
	ent.Schema
}

func (PracticeSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("record_id").
			Unique().
			Immutable().
			Comment("UUID assigned by the practice subsystem"),
		field.String("user_id").NotEmpty(),
		field.String("subject").NotEmpty(),
		field.Time("started_at").
			Default(time.Now),
		field.Time("ended_at").
			Optional().
			Nillable().
			Comment("Unset while the session is in progress"),
		field.Int("questions_attempted").Default(0),
		field.Int("questions_correct").Default(0),
		field.JSON("topics", []string{}).
			Optional().
			Comment("Topics covered, in the order they were practiced"),
		field.Float("difficulty_level").Default(5),
		field.JSON("payload", map[string]any{}).
			Optional().
			Comment("Free-form session data owned by the practice subsystem"),
	}
}

func (PracticeSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "subject"),
		index.Fields("started_at"),
	}
}
