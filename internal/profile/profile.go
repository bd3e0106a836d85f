// Package profile derives a personalization profile from an analyzed
// learning pattern plus raw sessions and user facts. Profiles are
// request-scoped; nothing here is persisted.
package profile

import (
	"time"

	"github.com/abhisek/tutorly/internal/pattern"
)

// PracticeTime is the preferred time-of-day bucket for practice.
type PracticeTime string

const (
	TimeMorning   PracticeTime = "morning"
	TimeAfternoon PracticeTime = "afternoon"
	TimeEvening   PracticeTime = "evening"
)

// AdaptationRecord is one logged difficulty or content adjustment.
type AdaptationRecord struct {
	AdjustedAt time.Time
	Change     string
	Reason     string
}

// Profile is the derived personalization bundle for a user and subject.
type Profile struct {
	UserID                 string
	Subject                string
	CurrentLevel           int // [1,10]
	TargetLevel            int // [1,10]
	LearningGoals          []string // <=5
	PreferredPracticeTypes []string
	OptimalSessionLength   int // minutes
	BestPracticeTime       PracticeTime
	MotivationalFactors    []string

	// AdaptationHistory is append-only via Append. The platform records
	// adjustments after applying them; the builder always starts empty.
	AdaptationHistory []AdaptationRecord
}

// Append adds a record to the adaptation history. History is append-only;
// records are never rewritten or removed.
func (p *Profile) Append(rec AdaptationRecord) {
	p.AdaptationHistory = append(p.AdaptationHistory, rec)
}

// Levels for learners with no usable signal.
const (
	DefaultCurrentLevel = 1
	DefaultTargetLevel  = 8

	// TargetGradeOffset lifts the target above the learner's grade.
	TargetGradeOffset = 2

	// ExamSoonWindow is how close an exam must be to raise the target.
	ExamSoonWindow = 30 * 24 * time.Hour

	MaxLevel = 10
	MaxGoals = 5
)

// currentLevel is ceil(mean mastery x 10) with a floor of 1.
func currentLevel(mastery map[string]float64) int {
	if len(mastery) == 0 {
		return DefaultCurrentLevel
	}
	var sum float64
	for _, v := range mastery {
		sum += v
	}
	mean := sum / float64(len(mastery))
	level := int(mean * 10)
	if mean*10 > float64(level) {
		level++
	}
	if level < 1 {
		level = 1
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	return level
}

// targetLevel derives the target from grade level and exam proximity.
func targetLevel(gradeLevel int, examDate *time.Time, now time.Time) int {
	if gradeLevel <= 0 {
		return DefaultTargetLevel
	}
	target := gradeLevel + TargetGradeOffset
	if examDate != nil && examDate.After(now) && examDate.Sub(now) <= ExamSoonWindow {
		target++
	}
	if target > MaxLevel {
		target = MaxLevel
	}
	if target < 1 {
		target = 1
	}
	return target
}

// ImprovementGoalThreshold: below this improvement rate, a consistency
// goal is added.
const ImprovementGoalThreshold = 0.1

func learningGoals(p *pattern.LearningPattern, target int) []string {
	var goals []string
	for _, area := range p.StrugglingAreas {
		goals = append(goals, "Raise accuracy in "+area+" to 75%")
		if len(goals) == MaxGoals {
			return goals
		}
	}
	if p.RecommendedDifficulty < float64(target) && len(goals) < MaxGoals {
		goals = append(goals, "Work up to higher difficulty levels")
	}
	if p.ImprovementRate < ImprovementGoalThreshold && len(goals) < MaxGoals {
		goals = append(goals, "Build a consistent practice habit")
	}
	return goals
}

// practiceTypes maps learning style to a base set of practice formats,
// with attention-span add-ons.
func practiceTypes(p *pattern.LearningPattern) []string {
	var types []string
	switch p.Style {
	case pattern.StyleVisual:
		types = []string{"diagram_problems", "visual_explanations"}
	case pattern.StyleAnalytical:
		types = []string{"step_by_step_problems", "concept_explanations"}
	case pattern.StyleTrialAndError:
		types = []string{"practice_drills", "immediate_feedback"}
	default:
		types = []string{"mixed_problems", "adaptive_hints"}
	}

	switch p.AttentionSpan {
	case pattern.SpanShort:
		types = append(types, "quick_sessions")
	case pattern.SpanLong:
		types = append(types, "comprehensive_sessions")
	}
	return types
}
