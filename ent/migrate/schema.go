// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// InteractionEventsColumns holds the columns for the "interaction_events" table.
	InteractionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "record_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "context", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// InteractionEventsTable holds the schema information for the "interaction_events" table.
	InteractionEventsTable = &schema.Table{
		Name:       "interaction_events",
		Columns:    InteractionEventsColumns,
		PrimaryKey: []*schema.Column{InteractionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "interactionevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{InteractionEventsColumns[2]},
			},
			{
				Name:    "interactionevent_kind",
				Unique:  false,
				Columns: []*schema.Column{InteractionEventsColumns[3]},
			},
			{
				Name:    "interactionevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{InteractionEventsColumns[5]},
			},
		},
	}
	// LearningPatternsColumns holds the columns for the "learning_patterns" table.
	LearningPatternsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "style", Type: field.TypeString},
		{Name: "preferred_hint_type", Type: field.TypeString},
		{Name: "attention_span", Type: field.TypeString},
		{Name: "error_patterns", Type: field.TypeJSON, Nullable: true},
		{Name: "mastery_levels", Type: field.TypeJSON, Nullable: true},
		{Name: "improvement_rate", Type: field.TypeFloat64},
		{Name: "struggling_areas", Type: field.TypeJSON, Nullable: true},
		{Name: "improving_areas", Type: field.TypeJSON, Nullable: true},
		{Name: "recommended_difficulty", Type: field.TypeFloat64},
		{Name: "last_analyzed", Type: field.TypeTime},
	}
	// LearningPatternsTable holds the schema information for the "learning_patterns" table.
	LearningPatternsTable = &schema.Table{
		Name:       "learning_patterns",
		Columns:    LearningPatternsColumns,
		PrimaryKey: []*schema.Column{LearningPatternsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learningpattern_user_id_subject",
				Unique:  true,
				Columns: []*schema.Column{LearningPatternsColumns[1], LearningPatternsColumns[2]},
			},
		},
	}
	// PerformanceSnapshotsColumns holds the columns for the "performance_snapshots" table.
	PerformanceSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "record_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "overall_score", Type: field.TypeFloat64},
		{Name: "topic_scores", Type: field.TypeJSON, Nullable: true},
		{Name: "taken_at", Type: field.TypeTime},
	}
	// PerformanceSnapshotsTable holds the schema information for the "performance_snapshots" table.
	PerformanceSnapshotsTable = &schema.Table{
		Name:       "performance_snapshots",
		Columns:    PerformanceSnapshotsColumns,
		PrimaryKey: []*schema.Column{PerformanceSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "performancesnapshot_user_id_subject",
				Unique:  false,
				Columns: []*schema.Column{PerformanceSnapshotsColumns[2], PerformanceSnapshotsColumns[3]},
			},
			{
				Name:    "performancesnapshot_taken_at",
				Unique:  false,
				Columns: []*schema.Column{PerformanceSnapshotsColumns[6]},
			},
		},
	}
	// PracticeSessionsColumns holds the columns for the "practice_sessions" table.
	PracticeSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "record_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "questions_attempted", Type: field.TypeInt, Default: 0},
		{Name: "questions_correct", Type: field.TypeInt, Default: 0},
		{Name: "topics", Type: field.TypeJSON, Nullable: true},
		{Name: "difficulty_level", Type: field.TypeFloat64, Default: 5},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
	}
	// PracticeSessionsTable holds the schema information for the "practice_sessions" table.
	PracticeSessionsTable = &schema.Table{
		Name:       "practice_sessions",
		Columns:    PracticeSessionsColumns,
		PrimaryKey: []*schema.Column{PracticeSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "practicesession_user_id_subject",
				Unique:  false,
				Columns: []*schema.Column{PracticeSessionsColumns[2], PracticeSessionsColumns[3]},
			},
			{
				Name:    "practicesession_started_at",
				Unique:  false,
				Columns: []*schema.Column{PracticeSessionsColumns[4]},
			},
		},
	}
	// SubjectProgressesColumns holds the columns for the "subject_progresses" table.
	SubjectProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "overall_score", Type: field.TypeFloat64, Default: 0},
		{Name: "topic_scores", Type: field.TypeJSON, Nullable: true},
		{Name: "weak_areas", Type: field.TypeJSON, Nullable: true},
		{Name: "strong_areas", Type: field.TypeJSON, Nullable: true},
		{Name: "streak_days", Type: field.TypeInt, Default: 0},
		{Name: "total_practice_time", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SubjectProgressesTable holds the schema information for the "subject_progresses" table.
	SubjectProgressesTable = &schema.Table{
		Name:       "subject_progresses",
		Columns:    SubjectProgressesColumns,
		PrimaryKey: []*schema.Column{SubjectProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "subjectprogress_user_id_subject",
				Unique:  true,
				Columns: []*schema.Column{SubjectProgressesColumns[1], SubjectProgressesColumns[2]},
			},
		},
	}
	// UserFactsColumns holds the columns for the "user_facts" table.
	UserFactsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "grade_level", Type: field.TypeInt, Default: 0},
		{Name: "exam_date", Type: field.TypeTime, Nullable: true},
		{Name: "preferences", Type: field.TypeJSON, Nullable: true},
	}
	// UserFactsTable holds the schema information for the "user_facts" table.
	UserFactsTable = &schema.Table{
		Name:       "user_facts",
		Columns:    UserFactsColumns,
		PrimaryKey: []*schema.Column{UserFactsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "userfact_user_id",
				Unique:  false,
				Columns: []*schema.Column{UserFactsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		InteractionEventsTable,
		LearningPatternsTable,
		PerformanceSnapshotsTable,
		PracticeSessionsTable,
		SubjectProgressesTable,
		UserFactsTable,
	}
)

func init() {
}
