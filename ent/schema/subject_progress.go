package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SubjectProgress holds the current aggregate progress for a user and
// subject, maintained by the progress-tracking subsystem.
type SubjectProgress struct {
	ent.Schema
}

func (SubjectProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("subject").NotEmpty(),
		field.Float("overall_score").
			Default(0).
			Comment("Aggregate score in [0,100]"),
		field.JSON("topic_scores", map[string]float64{}).
			Optional().
			Comment("Per-topic scores in [0,100]"),
		field.JSON("weak_areas", []string{}).Optional(),
		field.JSON("strong_areas", []string{}).Optional(),
		field.Int("streak_days").Default(0),
		field.Int("total_practice_time").
			Default(0).
			Comment("Lifetime practice minutes"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (SubjectProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "subject").Unique(),
	}
}
