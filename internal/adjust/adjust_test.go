package adjust

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/tutorly/internal/history"
	"github.com/abhisek/tutorly/internal/pattern"
)

var base = time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)

// session builds a session with the given accuracy over attempted
// questions. minutes <= 0 leaves the session open (no end time).
func session(attempted, correct, minutes int) history.PracticeSession {
	s := history.PracticeSession{
		UserID:             "u1",
		Subject:            "math",
		StartedAt:          base,
		QuestionsAttempted: attempted,
		QuestionsCorrect:   correct,
	}
	if minutes > 0 {
		end := base.Add(time.Duration(minutes) * time.Minute)
		s.EndedAt = &end
	}
	return s
}

func TestDecide_InsufficientData(t *testing.T) {
	sessions := []history.PracticeSession{
		session(10, 8, 20),
		session(10, 7, 20),
	}

	adj := Decide(sessions, 6, nil)
	if adj.RecommendedDifficulty != 6 {
		t.Errorf("recommended = %f, want unchanged 6", adj.RecommendedDifficulty)
	}
	if adj.Confidence != InsufficientDataConfidence {
		t.Errorf("confidence = %f, want %f", adj.Confidence, InsufficientDataConfidence)
	}
	if !strings.Contains(adj.Reason, "insufficient data") {
		t.Errorf("reason %q should mention insufficient data", adj.Reason)
	}
}

func TestDecide_LowAccuracySlowPaceStepsDown(t *testing.T) {
	// Accuracy ~0.52 with open sessions: assumed 30min duration makes
	// speed 10/30 < 0.5, triggering the strong step-down rule.
	sessions := []history.PracticeSession{
		session(10, 5, 0),
		session(11, 6, 0),
		session(12, 6, 0),
	}

	adj := Decide(sessions, 5, nil)
	if adj.RecommendedDifficulty != 4 {
		t.Errorf("recommended = %f, want 4", adj.RecommendedDifficulty)
	}
	if adj.Confidence != 0.9 {
		t.Errorf("confidence = %f, want 0.9", adj.Confidence)
	}
	if !strings.Contains(adj.Reason, "Low accuracy") {
		t.Errorf("reason %q should mention low accuracy", adj.Reason)
	}
}

func TestDecide_HighAccuracyFastPaceStepsUp(t *testing.T) {
	// Accuracy >= 0.9 and speed > 2 questions/minute.
	var sessions []history.PracticeSession
	for i := 0; i < 5; i++ {
		sessions = append(sessions, session(30, 28, 10))
	}

	adj := Decide(sessions, 4, nil)
	if adj.RecommendedDifficulty != 5 {
		t.Errorf("recommended = %f, want 5", adj.RecommendedDifficulty)
	}
	if adj.Confidence != 0.8 {
		t.Errorf("confidence = %f, want 0.8", adj.Confidence)
	}
}

func TestDecide_SolidAccuracyHalfStepUp(t *testing.T) {
	// Accuracy 0.78, speed ~1.2.
	sessions := []history.PracticeSession{
		session(24, 19, 20),
		session(24, 19, 20),
		session(24, 18, 20),
	}

	adj := Decide(sessions, 5, nil)
	if adj.RecommendedDifficulty != 5.5 {
		t.Errorf("recommended = %f, want 5.5", adj.RecommendedDifficulty)
	}
	if adj.Confidence != 0.6 {
		t.Errorf("confidence = %f, want 0.6", adj.Confidence)
	}
}

func TestDecide_BelowTargetAccuracyHalfStepDown(t *testing.T) {
	// Accuracy 0.6, decent speed: the -0.5 rule, not the -1 rule.
	sessions := []history.PracticeSession{
		session(20, 12, 20),
		session(20, 12, 20),
		session(20, 12, 20),
	}

	adj := Decide(sessions, 5, nil)
	if adj.RecommendedDifficulty != 4.5 {
		t.Errorf("recommended = %f, want 4.5", adj.RecommendedDifficulty)
	}
	if adj.Confidence != 0.7 {
		t.Errorf("confidence = %f, want 0.7", adj.Confidence)
	}
}

func TestDecide_StableKeepsDifficulty(t *testing.T) {
	// Accuracy 0.7, speed ~0.7: no rule fires.
	sessions := []history.PracticeSession{
		session(20, 14, 30),
		session(20, 14, 30),
		session(20, 14, 30),
	}

	adj := Decide(sessions, 5, nil)
	if adj.RecommendedDifficulty != 5 {
		t.Errorf("recommended = %f, want 5", adj.RecommendedDifficulty)
	}
	if adj.Confidence != 0.5 {
		t.Errorf("confidence = %f, want 0.5", adj.Confidence)
	}
}

func TestDecide_TrialAndErrorPenalty(t *testing.T) {
	// Accuracy 0.6 normally yields -0.5; trial-and-error learners get
	// an extra half step down.
	sessions := []history.PracticeSession{
		session(20, 12, 20),
		session(20, 12, 20),
		session(20, 12, 20),
	}
	p := &pattern.LearningPattern{Style: pattern.StyleTrialAndError}

	adj := Decide(sessions, 5, p)
	if adj.RecommendedDifficulty != 4 {
		t.Errorf("recommended = %f, want 4", adj.RecommendedDifficulty)
	}
	if !strings.Contains(adj.Reason, "trial-and-error") {
		t.Errorf("reason %q should mention the learning style", adj.Reason)
	}
}

func TestDecide_TrialAndErrorPenaltyFloorsAtMinimum(t *testing.T) {
	sessions := []history.PracticeSession{
		session(10, 3, 0),
		session(10, 3, 0),
		session(10, 3, 0),
	}
	p := &pattern.LearningPattern{Style: pattern.StyleTrialAndError}

	adj := Decide(sessions, 1, p)
	if adj.RecommendedDifficulty != 1 {
		t.Errorf("recommended = %f, want floor 1", adj.RecommendedDifficulty)
	}
}

func TestDecide_ResultAlwaysBoundedHalfStep(t *testing.T) {
	accuracies := []float64{0, 0.3, 0.5, 0.65, 0.75, 0.85, 1}
	durations := []int{0, 5, 20, 60}
	currents := []float64{1, 5.5, 10}

	for _, acc := range accuracies {
		for _, dur := range durations {
			for _, cur := range currents {
				sessions := []history.PracticeSession{
					session(20, int(acc*20), dur),
					session(20, int(acc*20), dur),
					session(20, int(acc*20), dur),
				}
				adj := Decide(sessions, cur, nil)

				step := adj.RecommendedDifficulty - cur
				if step < -1.5 || step > 1 {
					t.Errorf("acc=%.2f dur=%d cur=%.1f: step %f out of range", acc, dur, cur, step)
				}
				got := adj.RecommendedDifficulty
				if got < pattern.MinDifficulty || got > pattern.MaxDifficulty {
					t.Errorf("recommended %f outside [1,10]", got)
				}
				if r := math.Mod(got*2, 1); r != 0 {
					t.Errorf("recommended %f not a multiple of 0.5", got)
				}
				if adj.Confidence < 0 || adj.Confidence > 1 {
					t.Errorf("confidence %f outside [0,1]", adj.Confidence)
				}
			}
		}
	}
}
