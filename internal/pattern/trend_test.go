package pattern

import (
	"math"
	"testing"

	"github.com/abhisek/tutorly/internal/history"
)

func makeSnapshot(daysAgo int, score float64) history.PerformanceSnapshot {
	return history.PerformanceSnapshot{
		UserID:       "u1",
		Subject:      "math",
		OverallScore: score,
		TakenAt:      testBase.AddDate(0, 0, -daysAgo),
	}
}

func TestImprovementRate_FromSnapshots(t *testing.T) {
	// Newest first: latest 72, earliest 60 -> (72-60)/60 = 0.2.
	snapshots := []history.PerformanceSnapshot{
		makeSnapshot(1, 72),
		makeSnapshot(15, 66),
		makeSnapshot(30, 60),
	}

	got := improvementRate(nil, snapshots)
	if math.Abs(got-0.2) > 1e-9 {
		t.Errorf("got %f, want 0.2", got)
	}
}

func TestImprovementRate_ZeroEarliestFallsThrough(t *testing.T) {
	snapshots := []history.PerformanceSnapshot{
		makeSnapshot(1, 50),
		makeSnapshot(30, 0),
	}
	if got := improvementRate(nil, snapshots); got != 0 {
		t.Errorf("got %f, want 0", got)
	}
}

func TestImprovementRate_FromSessionWindows(t *testing.T) {
	// Recent 5 at 80%, previous 5 at 60% -> (0.8-0.6)/0.6.
	var sessions []history.PracticeSession
	for i := 0; i < 5; i++ {
		sessions = append(sessions, makeSession(i, 20, 10, 8, "algebra"))
	}
	for i := 5; i < 10; i++ {
		sessions = append(sessions, makeSession(i, 20, 10, 6, "algebra"))
	}

	want := (0.8 - 0.6) / 0.6
	if got := improvementRate(sessions, nil); math.Abs(got-want) > 1e-9 {
		t.Errorf("got %f, want %f", got, want)
	}
}

func TestImprovementRate_InsufficientDataIsZero(t *testing.T) {
	sessions := []history.PracticeSession{
		makeSession(1, 20, 10, 8, "algebra"),
	}
	if got := improvementRate(sessions, nil); got != 0 {
		t.Errorf("got %f, want 0", got)
	}
	if got := improvementRate(nil, nil); got != 0 {
		t.Errorf("empty inputs: got %f, want 0", got)
	}
}

func TestClassifyAreas_RecentLowAccuracyIsStruggling(t *testing.T) {
	var sessions []history.PracticeSession
	for i := 0; i < 5; i++ {
		sessions = append(sessions, makeSession(i, 20, 10, 4, "fractions"))
	}

	struggling, _ := classifyAreas(sessions, nil)
	if len(struggling) != 1 || struggling[0] != "fractions" {
		t.Errorf("struggling = %v, want [fractions]", struggling)
	}
}

func TestClassifyAreas_WindowGainIsImproving(t *testing.T) {
	// algebra: 50% in previous window, 80% in recent window.
	var sessions []history.PracticeSession
	for i := 0; i < 5; i++ {
		sessions = append(sessions, makeSession(i, 20, 10, 8, "algebra"))
	}
	for i := 5; i < 10; i++ {
		sessions = append(sessions, makeSession(i, 20, 10, 5, "algebra"))
	}

	_, improving := classifyAreas(sessions, nil)
	if len(improving) != 1 || improving[0] != "algebra" {
		t.Errorf("improving = %v, want [algebra]", improving)
	}
}

func TestClassifyAreas_MergesStoredAreasFirst(t *testing.T) {
	progress := &history.SubjectProgress{
		WeakAreas:   []string{"geometry"},
		StrongAreas: []string{"arithmetic"},
	}
	var sessions []history.PracticeSession
	for i := 0; i < 5; i++ {
		sessions = append(sessions, makeSession(i, 20, 10, 4, "fractions"))
	}

	struggling, improving := classifyAreas(sessions, progress)
	if len(struggling) != 2 || struggling[0] != "geometry" || struggling[1] != "fractions" {
		t.Errorf("struggling = %v, want [geometry fractions]", struggling)
	}
	if len(improving) != 1 || improving[0] != "arithmetic" {
		t.Errorf("improving = %v, want [arithmetic]", improving)
	}
}

func TestClassifyAreas_DeduplicatedAndCapped(t *testing.T) {
	progress := &history.SubjectProgress{
		WeakAreas: []string{"t1", "t2", "t3", "t4", "t5", "t6", "t1"},
	}

	struggling, _ := classifyAreas(nil, progress)
	if len(struggling) > MaxAreas {
		t.Errorf("struggling has %d entries, cap is %d", len(struggling), MaxAreas)
	}
	seen := map[string]bool{}
	for _, a := range struggling {
		if seen[a] {
			t.Errorf("duplicate area %q", a)
		}
		seen[a] = true
	}
}
