package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PerformanceSnapshot captures a user's aggregate performance at a point
// in time, enabling long-horizon trend detection without replaying the
// full session history.
type PerformanceSnapshot struct {
	ent.Schema
}

func (PerformanceSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("record_id").
			Unique().
			Immutable(),
		field.String("user_id").NotEmpty(),
		field.String("subject").NotEmpty(),
		field.Float("overall_score").
			Comment("Aggregate score in [0,100] at snapshot time"),
		field.JSON("topic_scores", map[string]float64{}).Optional(),
		field.Time("taken_at").
			Default(time.Now).
			Immutable(),
	}
}

func (PerformanceSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "subject"),
		index.Fields("taken_at"),
	}
}
