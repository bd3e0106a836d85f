package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LearningPattern is the cached result of pattern analysis for a user and
// subject. It is recomputed fresh on every request and upserted here on a
// best-effort basis; readers must tolerate stale or missing rows.
type LearningPattern struct {
	ent.Schema
}

func (LearningPattern) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("subject").NotEmpty(),
		field.String("style").
			Comment("visual, analytical, trial_and_error, or mixed"),
		field.String("preferred_hint_type").
			Comment("conceptual, procedural, or example_based"),
		field.String("attention_span").
			Comment("short, medium, or long"),
		field.JSON("error_patterns", []string{}).Optional(),
		field.JSON("mastery_levels", map[string]float64{}).
			Optional().
			Comment("Per-topic mastery in [0,1]"),
		field.Float("improvement_rate"),
		field.JSON("struggling_areas", []string{}).Optional(),
		field.JSON("improving_areas", []string{}).Optional(),
		field.Float("recommended_difficulty").
			Comment("In [1,10], multiples of 0.5"),
		field.Time("last_analyzed").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (LearningPattern) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "subject").Unique(),
	}
}
