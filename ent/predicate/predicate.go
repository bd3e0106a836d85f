// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// InteractionEvent is the predicate function for interactionevent builders.
type InteractionEvent func(*sql.Selector)

// LearningPattern is the predicate function for learningpattern builders.
type LearningPattern func(*sql.Selector)

// PerformanceSnapshot is the predicate function for performancesnapshot builders.
type PerformanceSnapshot func(*sql.Selector)

// PracticeSession is the predicate function for practicesession builders.
type PracticeSession func(*sql.Selector)

// SubjectProgress is the predicate function for subjectprogress builders.
type SubjectProgress func(*sql.Selector)

// UserFact is the predicate function for userfact builders.
type UserFact func(*sql.Selector)
