// Package adjust decides difficulty changes from recent session
// performance, with an explicit confidence score per decision.
package adjust

import (
	"fmt"

	"github.com/abhisek/tutorly/internal/history"
	"github.com/abhisek/tutorly/internal/pattern"
)

// Adjustment is the outcome of a difficulty decision.
type Adjustment struct {
	CurrentDifficulty     float64
	RecommendedDifficulty float64
	Reason                string
	Confidence            float64 // [0,1]
}

const (
	// MinSessions is the session count below which no adjustment is made.
	MinSessions = 3

	// AssumedSessionMinutes stands in for the duration of a session with
	// no recorded end time when computing answer speed.
	AssumedSessionMinutes = 30.0

	// InsufficientDataConfidence backs the no-change decision when too
	// few sessions exist.
	InsufficientDataConfidence = 0.1

	// TrialErrorAccuracyThreshold: below this accuracy, trial-and-error
	// learners get an extra half-step reduction.
	TrialErrorAccuracyThreshold = 0.7
	trialErrorExtraStep         = 0.5
)

// rule is one row of the adjustment table. Rules are evaluated in order;
// the first match wins.
type rule struct {
	matches    func(accuracy, speed float64) bool
	step       float64
	confidence float64
	reason     string
}

var rules = []rule{
	{
		matches:    func(acc, speed float64) bool { return acc >= 0.85 && speed > 1.5 },
		step:       1,
		confidence: 0.8,
		reason:     "High accuracy and fast pace indicate readiness for harder material",
	},
	{
		matches:    func(acc, speed float64) bool { return acc >= 0.75 && speed > 1.0 },
		step:       0.5,
		confidence: 0.6,
		reason:     "Solid accuracy at a good pace supports a small step up",
	},
	{
		matches:    func(acc, speed float64) bool { return acc < 0.5 || speed < 0.5 },
		step:       -1,
		confidence: 0.9,
		reason:     "Low accuracy or very slow pace indicates material is too hard",
	},
	{
		matches:    func(acc, speed float64) bool { return acc < 0.65 },
		step:       -0.5,
		confidence: 0.7,
		reason:     "Below-target accuracy suggests easing difficulty slightly",
	},
}

// Decide evaluates the most recent sessions (newest first; at most the
// first MinSessions+2 are meaningful) against the rule table and applies
// the learning-style penalty. The result is rounded to the nearest 0.5
// and clamped to [1,10].
func Decide(sessions []history.PracticeSession, current float64, p *pattern.LearningPattern) *Adjustment {
	if len(sessions) < MinSessions {
		return &Adjustment{
			CurrentDifficulty:     current,
			RecommendedDifficulty: current,
			Reason:                "insufficient data for adjustment",
			Confidence:            InsufficientDataConfidence,
		}
	}

	accuracy, speed := recentPerformance(sessions)

	recommended := current
	reason := "Performance is stable at the current difficulty"
	confidence := 0.5
	for _, r := range rules {
		if r.matches(accuracy, speed) {
			recommended = current + r.step
			reason = r.reason
			confidence = r.confidence
			break
		}
	}

	if p != nil && p.Style == pattern.StyleTrialAndError && accuracy < TrialErrorAccuracyThreshold {
		recommended -= trialErrorExtraStep
		if recommended < pattern.MinDifficulty {
			recommended = pattern.MinDifficulty
		}
		reason += "; reduced further for trial-and-error learning style"
	}

	return &Adjustment{
		CurrentDifficulty:     current,
		RecommendedDifficulty: pattern.ClampDifficulty(pattern.RoundHalf(recommended)),
		Reason:                reason,
		Confidence:            confidence,
	}
}

// recentPerformance returns mean accuracy and mean answer speed
// (questions per minute) over the given sessions. Sessions without an end
// time contribute to speed with an assumed duration.
func recentPerformance(sessions []history.PracticeSession) (accuracy, speed float64) {
	var accSum, speedSum float64
	var accN, speedN int

	for i := range sessions {
		s := &sessions[i]
		if acc := s.Accuracy(); acc >= 0 {
			accSum += acc
			accN++
		}
		if s.QuestionsAttempted > 0 {
			minutes := AssumedSessionMinutes
			if s.Completed() {
				minutes = s.Duration().Minutes()
			}
			if minutes > 0 {
				speedSum += float64(s.QuestionsAttempted) / minutes
				speedN++
			}
		}
	}

	if accN > 0 {
		accuracy = accSum / float64(accN)
	}
	if speedN > 0 {
		speed = speedSum / float64(speedN)
	}
	return accuracy, speed
}

// Describe renders an adjustment for logs and CLI output.
func (a *Adjustment) Describe() string {
	return fmt.Sprintf("%.1f -> %.1f (confidence %.2f): %s",
		a.CurrentDifficulty, a.RecommendedDifficulty, a.Confidence, a.Reason)
}
