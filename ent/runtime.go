// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/tutorly/ent/interactionevent"
	"github.com/abhisek/tutorly/ent/learningpattern"
	"github.com/abhisek/tutorly/ent/performancesnapshot"
	"github.com/abhisek/tutorly/ent/practicesession"
	"github.com/abhisek/tutorly/ent/schema"
	"github.com/abhisek/tutorly/ent/subjectprogress"
	"github.com/abhisek/tutorly/ent/userfact"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	interactioneventFields := schema.InteractionEvent{}.Fields()
	_ = interactioneventFields
	// interactioneventDescUserID is the schema descriptor for user_id field.
	interactioneventDescUserID := interactioneventFields[1].Descriptor()
	// interactionevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	interactionevent.UserIDValidator = interactioneventDescUserID.Validators[0].(func(string) error)
	// interactioneventDescKind is the schema descriptor for kind field.
	interactioneventDescKind := interactioneventFields[2].Descriptor()
	// interactionevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	interactionevent.KindValidator = interactioneventDescKind.Validators[0].(func(string) error)
	// interactioneventDescCreatedAt is the schema descriptor for created_at field.
	interactioneventDescCreatedAt := interactioneventFields[4].Descriptor()
	// interactionevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	interactionevent.DefaultCreatedAt = interactioneventDescCreatedAt.Default.(func() time.Time)
	learningpatternFields := schema.LearningPattern{}.Fields()
	_ = learningpatternFields
	// learningpatternDescUserID is the schema descriptor for user_id field.
	learningpatternDescUserID := learningpatternFields[0].Descriptor()
	// learningpattern.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	learningpattern.UserIDValidator = learningpatternDescUserID.Validators[0].(func(string) error)
	// learningpatternDescSubject is the schema descriptor for subject field.
	learningpatternDescSubject := learningpatternFields[1].Descriptor()
	// learningpattern.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	learningpattern.SubjectValidator = learningpatternDescSubject.Validators[0].(func(string) error)
	// learningpatternDescLastAnalyzed is the schema descriptor for last_analyzed field.
	learningpatternDescLastAnalyzed := learningpatternFields[11].Descriptor()
	// learningpattern.DefaultLastAnalyzed holds the default value on creation for the last_analyzed field.
	learningpattern.DefaultLastAnalyzed = learningpatternDescLastAnalyzed.Default.(func() time.Time)
	// learningpattern.UpdateDefaultLastAnalyzed holds the default value on update for the last_analyzed field.
	learningpattern.UpdateDefaultLastAnalyzed = learningpatternDescLastAnalyzed.UpdateDefault.(func() time.Time)
	performancesnapshotFields := schema.PerformanceSnapshot{}.Fields()
	_ = performancesnapshotFields
	// performancesnapshotDescUserID is the schema descriptor for user_id field.
	performancesnapshotDescUserID := performancesnapshotFields[1].Descriptor()
	// performancesnapshot.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	performancesnapshot.UserIDValidator = performancesnapshotDescUserID.Validators[0].(func(string) error)
	// performancesnapshotDescSubject is the schema descriptor for subject field.
	performancesnapshotDescSubject := performancesnapshotFields[2].Descriptor()
	// performancesnapshot.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	performancesnapshot.SubjectValidator = performancesnapshotDescSubject.Validators[0].(func(string) error)
	// performancesnapshotDescTakenAt is the schema descriptor for taken_at field.
	performancesnapshotDescTakenAt := performancesnapshotFields[5].Descriptor()
	// performancesnapshot.DefaultTakenAt holds the default value on creation for the taken_at field.
	performancesnapshot.DefaultTakenAt = performancesnapshotDescTakenAt.Default.(func() time.Time)
	practicesessionFields := schema.PracticeSession{}.Fields()
	_ = practicesessionFields
	// practicesessionDescUserID is the schema descriptor for user_id field.
	practicesessionDescUserID := practicesessionFields[1].Descriptor()
	// practicesession.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	practicesession.UserIDValidator = practicesessionDescUserID.Validators[0].(func(string) error)
	// practicesessionDescSubject is the schema descriptor for subject field.
	practicesessionDescSubject := practicesessionFields[2].Descriptor()
	// practicesession.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	practicesession.SubjectValidator = practicesessionDescSubject.Validators[0].(func(string) error)
	// practicesessionDescStartedAt is the schema descriptor for started_at field.
	practicesessionDescStartedAt := practicesessionFields[3].Descriptor()
	// practicesession.DefaultStartedAt holds the default value on creation for the started_at field.
	practicesession.DefaultStartedAt = practicesessionDescStartedAt.Default.(func() time.Time)
	// practicesessionDescQuestionsAttempted is the schema descriptor for questions_attempted field.
	practicesessionDescQuestionsAttempted := practicesessionFields[5].Descriptor()
	// practicesession.DefaultQuestionsAttempted holds the default value on creation for the questions_attempted field.
	practicesession.DefaultQuestionsAttempted = practicesessionDescQuestionsAttempted.Default.(int)
	// practicesessionDescQuestionsCorrect is the schema descriptor for questions_correct field.
	practicesessionDescQuestionsCorrect := practicesessionFields[6].Descriptor()
	// practicesession.DefaultQuestionsCorrect holds the default value on creation for the questions_correct field.
	practicesession.DefaultQuestionsCorrect = practicesessionDescQuestionsCorrect.Default.(int)
	// practicesessionDescDifficultyLevel is the schema descriptor for difficulty_level field.
	practicesessionDescDifficultyLevel := practicesessionFields[8].Descriptor()
	// practicesession.DefaultDifficultyLevel holds the default value on creation for the difficulty_level field.
	practicesession.DefaultDifficultyLevel = practicesessionDescDifficultyLevel.Default.(float64)
	subjectprogressFields := schema.SubjectProgress{}.Fields()
	_ = subjectprogressFields
	// subjectprogressDescUserID is the schema descriptor for user_id field.
	subjectprogressDescUserID := subjectprogressFields[0].Descriptor()
	// subjectprogress.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	subjectprogress.UserIDValidator = subjectprogressDescUserID.Validators[0].(func(string) error)
	// subjectprogressDescSubject is the schema descriptor for subject field.
	subjectprogressDescSubject := subjectprogressFields[1].Descriptor()
	// subjectprogress.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	subjectprogress.SubjectValidator = subjectprogressDescSubject.Validators[0].(func(string) error)
	// subjectprogressDescOverallScore is the schema descriptor for overall_score field.
	subjectprogressDescOverallScore := subjectprogressFields[2].Descriptor()
	// subjectprogress.DefaultOverallScore holds the default value on creation for the overall_score field.
	subjectprogress.DefaultOverallScore = subjectprogressDescOverallScore.Default.(float64)
	// subjectprogressDescStreakDays is the schema descriptor for streak_days field.
	subjectprogressDescStreakDays := subjectprogressFields[6].Descriptor()
	// subjectprogress.DefaultStreakDays holds the default value on creation for the streak_days field.
	subjectprogress.DefaultStreakDays = subjectprogressDescStreakDays.Default.(int)
	// subjectprogressDescTotalPracticeTime is the schema descriptor for total_practice_time field.
	subjectprogressDescTotalPracticeTime := subjectprogressFields[7].Descriptor()
	// subjectprogress.DefaultTotalPracticeTime holds the default value on creation for the total_practice_time field.
	subjectprogress.DefaultTotalPracticeTime = subjectprogressDescTotalPracticeTime.Default.(int)
	// subjectprogressDescUpdatedAt is the schema descriptor for updated_at field.
	subjectprogressDescUpdatedAt := subjectprogressFields[8].Descriptor()
	// subjectprogress.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	subjectprogress.DefaultUpdatedAt = subjectprogressDescUpdatedAt.Default.(func() time.Time)
	// subjectprogress.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	subjectprogress.UpdateDefaultUpdatedAt = subjectprogressDescUpdatedAt.UpdateDefault.(func() time.Time)
	userfactFields := schema.UserFact{}.Fields()
	_ = userfactFields
	// userfactDescUserID is the schema descriptor for user_id field.
	userfactDescUserID := userfactFields[0].Descriptor()
	// userfact.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	userfact.UserIDValidator = userfactDescUserID.Validators[0].(func(string) error)
	// userfactDescGradeLevel is the schema descriptor for grade_level field.
	userfactDescGradeLevel := userfactFields[1].Descriptor()
	// userfact.DefaultGradeLevel holds the default value on creation for the grade_level field.
	userfact.DefaultGradeLevel = userfactDescGradeLevel.Default.(int)
}
