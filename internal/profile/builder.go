package profile

import (
	"time"

	"github.com/abhisek/tutorly/internal/history"
	"github.com/abhisek/tutorly/internal/pattern"
)

const (
	// SessionLengthMinSamples is the completed-session count below which
	// the optimal length falls back to the attention-span default.
	SessionLengthMinSamples = 5

	// Attention-span default session lengths in minutes.
	ShortSpanLength  = 15
	MediumSpanLength = 25
	LongSpanLength   = 45

	// Duration brackets compared when tuning session length.
	ShortBracketMaxMinutes = 20.0
	LongBracketMinMinutes  = 30.0

	// BracketAccuracyMargin is how much better one bracket's accuracy
	// must be before the optimal length is nudged toward it.
	BracketAccuracyMargin = 0.1

	// Optimal session length bounds in minutes.
	MinSessionLength = 10
	MaxSessionLength = 60

	// PracticeTimeMinSessions: a time-of-day bucket needs this many
	// sessions before its accuracy is trusted.
	PracticeTimeMinSessions = 3

	// PracticeTimeMinTotal: below this many sessions overall, the best
	// practice time defaults to afternoon.
	PracticeTimeMinTotal = 10

	// Motivational-factor thresholds.
	ExtendedPracticeMinutes = 30.0
	QuickSessionMinutes     = 15.0
	ConsistentDays          = 7
	ConsistencyWindow       = 10
)

// Baseline motivational factors every profile carries.
var baselineFactors = []string{
	"progress_tracking",
	"achievement_badges",
	"exam_preparation",
}

// Build assembles a Profile from an analyzed pattern, raw sessions
// (newest first), and optional user facts. AdaptationHistory starts
// empty; see Profile.Append.
func Build(p *pattern.LearningPattern, sessions []history.PracticeSession, facts *history.UserFacts) *Profile {
	now := time.Now()

	var gradeLevel int
	var examDate *time.Time
	if facts != nil {
		gradeLevel = facts.GradeLevel
		examDate = facts.ExamDate
	}

	target := targetLevel(gradeLevel, examDate, now)

	return &Profile{
		UserID:                 p.UserID,
		Subject:                p.Subject,
		CurrentLevel:           currentLevel(p.MasteryLevels),
		TargetLevel:            target,
		LearningGoals:          learningGoals(p, target),
		PreferredPracticeTypes: practiceTypes(p),
		OptimalSessionLength:   optimalSessionLength(sessions, p.AttentionSpan),
		BestPracticeTime:       bestPracticeTime(sessions),
		MotivationalFactors:    motivationalFactors(sessions),
	}
}

// optimalSessionLength starts from observed completed-session durations
// and nudges toward the duration bracket with meaningfully better
// accuracy. With too few samples it falls back to the attention-span
// default.
func optimalSessionLength(sessions []history.PracticeSession, span pattern.AttentionSpan) int {
	mean, completed := completedStats(sessions)
	if completed < SessionLengthMinSamples {
		switch span {
		case pattern.SpanShort:
			return ShortSpanLength
		case pattern.SpanLong:
			return LongSpanLength
		default:
			return MediumSpanLength
		}
	}

	length := mean

	shortAcc, shortMean, shortN := bracketStats(sessions, 0, ShortBracketMaxMinutes)
	longAcc, longMean, longN := bracketStats(sessions, LongBracketMinMinutes, 0)
	switch {
	case shortN > 0 && longN > 0 && shortAcc-longAcc > BracketAccuracyMargin:
		length = shortMean
	case shortN > 0 && longN > 0 && longAcc-shortAcc > BracketAccuracyMargin:
		length = longMean
	}

	minutes := int(length + 0.5)
	if minutes < MinSessionLength {
		minutes = MinSessionLength
	}
	if minutes > MaxSessionLength {
		minutes = MaxSessionLength
	}
	return minutes
}

// completedStats returns the mean duration in minutes of completed
// sessions and their count.
func completedStats(sessions []history.PracticeSession) (float64, int) {
	var total float64
	var n int
	for i := range sessions {
		if !sessions[i].Completed() {
			continue
		}
		total += sessions[i].Duration().Minutes()
		n++
	}
	if n == 0 {
		return 0, 0
	}
	return total / float64(n), n
}

// bracketStats aggregates accuracy and mean duration over completed
// sessions whose duration falls in (minMinutes, maxMinutes); a zero bound
// is open.
func bracketStats(sessions []history.PracticeSession, minMinutes, maxMinutes float64) (accuracy, meanMinutes float64, n int) {
	var accSum, durSum float64
	var scored int
	for i := range sessions {
		s := &sessions[i]
		if !s.Completed() {
			continue
		}
		minutes := s.Duration().Minutes()
		if minMinutes > 0 && minutes <= minMinutes {
			continue
		}
		if maxMinutes > 0 && minutes >= maxMinutes {
			continue
		}
		n++
		durSum += minutes
		if acc := s.Accuracy(); acc >= 0 {
			accSum += acc
			scored++
		}
	}
	if n == 0 {
		return 0, 0, 0
	}
	if scored > 0 {
		accuracy = accSum / float64(scored)
	}
	return accuracy, durSum / float64(n), n
}

// bestPracticeTime picks the time-of-day bucket with the highest accuracy
// among buckets with enough sessions.
func bestPracticeTime(sessions []history.PracticeSession) PracticeTime {
	if len(sessions) < PracticeTimeMinTotal {
		return TimeAfternoon
	}

	type bucket struct {
		accSum float64
		scored int
		total  int
	}
	buckets := map[PracticeTime]*bucket{
		TimeMorning:   {},
		TimeAfternoon: {},
		TimeEvening:   {},
	}

	for i := range sessions {
		s := &sessions[i]
		b := buckets[timeOfDay(s.StartedAt)]
		b.total++
		if acc := s.Accuracy(); acc >= 0 {
			b.accSum += acc
			b.scored++
		}
	}

	best := TimeAfternoon
	bestAcc := -1.0
	// Fixed iteration order keeps ties deterministic.
	for _, t := range []PracticeTime{TimeMorning, TimeAfternoon, TimeEvening} {
		b := buckets[t]
		if b.total < PracticeTimeMinSessions || b.scored == 0 {
			continue
		}
		if acc := b.accSum / float64(b.scored); acc > bestAcc {
			best = t
			bestAcc = acc
		}
	}
	return best
}

func timeOfDay(t time.Time) PracticeTime {
	switch h := t.Hour(); {
	case h < 12:
		return TimeMorning
	case h < 18:
		return TimeAfternoon
	default:
		return TimeEvening
	}
}

// motivationalFactors derives engagement signals from session habits and
// appends the platform's baseline factors.
func motivationalFactors(sessions []history.PracticeSession) []string {
	var factors []string

	if mean, n := completedStats(sessions); n > 0 {
		switch {
		case mean > ExtendedPracticeMinutes:
			factors = append(factors, "enjoys_extended_practice")
		case mean < QuickSessionMinutes:
			factors = append(factors, "prefers_quick_sessions")
		}
	}

	days := make(map[string]bool)
	for i := range sessions {
		if i == ConsistencyWindow {
			break
		}
		days[sessions[i].StartedAt.Format("2006-01-02")] = true
	}
	if len(days) >= ConsistentDays {
		factors = append(factors, "consistent_daily_practice")
	}

	return append(factors, baselineFactors...)
}
