package profile

import (
	"slices"
	"testing"
	"time"

	"github.com/abhisek/tutorly/internal/history"
	"github.com/abhisek/tutorly/internal/pattern"
)

var base = time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)

// timed builds a completed session starting at start with the given
// duration and accuracy fraction over 20 questions.
func timed(start time.Time, minutes int, accuracy float64) history.PracticeSession {
	end := start.Add(time.Duration(minutes) * time.Minute)
	return history.PracticeSession{
		UserID:             "u1",
		Subject:            "math",
		StartedAt:          start,
		EndedAt:            &end,
		QuestionsAttempted: 20,
		QuestionsCorrect:   int(accuracy * 20),
	}
}

func basePattern() *pattern.LearningPattern {
	return &pattern.LearningPattern{
		UserID:                "u1",
		Subject:               "math",
		Style:                 pattern.StyleMixed,
		AttentionSpan:         pattern.SpanMedium,
		RecommendedDifficulty: 5,
		ImprovementRate:       0.2,
	}
}

func TestBuild_DefaultsWithNoHistory(t *testing.T) {
	p := Build(basePattern(), nil, nil)

	if p.CurrentLevel != DefaultCurrentLevel {
		t.Errorf("CurrentLevel = %d, want %d", p.CurrentLevel, DefaultCurrentLevel)
	}
	if p.TargetLevel != DefaultTargetLevel {
		t.Errorf("TargetLevel = %d, want %d", p.TargetLevel, DefaultTargetLevel)
	}
	if p.OptimalSessionLength != MediumSpanLength {
		t.Errorf("OptimalSessionLength = %d, want %d", p.OptimalSessionLength, MediumSpanLength)
	}
	if p.BestPracticeTime != TimeAfternoon {
		t.Errorf("BestPracticeTime = %q, want afternoon", p.BestPracticeTime)
	}
	if len(p.AdaptationHistory) != 0 {
		t.Errorf("AdaptationHistory should start empty, got %d records", len(p.AdaptationHistory))
	}
}

func TestCurrentLevel(t *testing.T) {
	tests := []struct {
		name    string
		mastery map[string]float64
		want    int
	}{
		{"empty", nil, DefaultCurrentLevel},
		{"low", map[string]float64{"fractions": 0.05}, 1},
		{"rounds up", map[string]float64{"a": 0.4, "b": 0.5}, 5},
		{"fractional mean", map[string]float64{"a": 0.41}, 5},
		{"full mastery", map[string]float64{"a": 1.0}, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := currentLevel(tt.mastery); got != tt.want {
				t.Errorf("currentLevel() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTargetLevel(t *testing.T) {
	now := base
	soon := now.Add(10 * 24 * time.Hour)
	far := now.Add(90 * 24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	tests := []struct {
		name  string
		grade int
		exam  *time.Time
		want  int
	}{
		{"no grade", 0, nil, DefaultTargetLevel},
		{"grade only", 5, nil, 7},
		{"exam soon", 5, &soon, 8},
		{"exam far", 5, &far, 7},
		{"exam past", 5, &past, 7},
		{"capped", 9, &soon, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := targetLevel(tt.grade, tt.exam, now); got != tt.want {
				t.Errorf("targetLevel(%d) = %d, want %d", tt.grade, got, tt.want)
			}
		})
	}
}

func TestLearningGoals(t *testing.T) {
	p := basePattern()
	p.StrugglingAreas = []string{"fractions", "geometry"}
	p.RecommendedDifficulty = 4
	p.ImprovementRate = 0.05

	goals := learningGoals(p, 8)
	want := []string{
		"Raise accuracy in fractions to 75%",
		"Raise accuracy in geometry to 75%",
		"Work up to higher difficulty levels",
		"Build a consistent practice habit",
	}
	if !slices.Equal(goals, want) {
		t.Errorf("goals = %v, want %v", goals, want)
	}
}

func TestLearningGoals_CappedAtFive(t *testing.T) {
	p := basePattern()
	p.StrugglingAreas = []string{"a", "b", "c", "d", "e", "f"}
	p.RecommendedDifficulty = 1
	p.ImprovementRate = 0

	goals := learningGoals(p, 10)
	if len(goals) != MaxGoals {
		t.Errorf("len(goals) = %d, want %d", len(goals), MaxGoals)
	}
}

func TestPracticeTypes(t *testing.T) {
	tests := []struct {
		style pattern.Style
		span  pattern.AttentionSpan
		want  []string
	}{
		{pattern.StyleAnalytical, pattern.SpanMedium, []string{"step_by_step_problems", "concept_explanations"}},
		{pattern.StyleTrialAndError, pattern.SpanShort, []string{"practice_drills", "immediate_feedback", "quick_sessions"}},
		{pattern.StyleVisual, pattern.SpanLong, []string{"diagram_problems", "visual_explanations", "comprehensive_sessions"}},
		{pattern.StyleMixed, pattern.SpanMedium, []string{"mixed_problems", "adaptive_hints"}},
	}
	for _, tt := range tests {
		p := basePattern()
		p.Style = tt.style
		p.AttentionSpan = tt.span
		got := practiceTypes(p)
		if !slices.Equal(got, tt.want) {
			t.Errorf("practiceTypes(%s/%s) = %v, want %v", tt.style, tt.span, got, tt.want)
		}
	}
}

func TestOptimalSessionLength_SpanFallback(t *testing.T) {
	sessions := []history.PracticeSession{
		timed(base, 20, 0.8),
		timed(base.Add(-24*time.Hour), 20, 0.8),
	}

	if got := optimalSessionLength(sessions, pattern.SpanShort); got != ShortSpanLength {
		t.Errorf("short span fallback = %d, want %d", got, ShortSpanLength)
	}
	if got := optimalSessionLength(sessions, pattern.SpanLong); got != LongSpanLength {
		t.Errorf("long span fallback = %d, want %d", got, LongSpanLength)
	}
}

func TestOptimalSessionLength_PrefersStrongerBracket(t *testing.T) {
	// Short sessions (15min) at 0.9 accuracy, long sessions (40min) at
	// 0.5: the short bracket wins by more than the margin.
	var sessions []history.PracticeSession
	for i := 0; i < 4; i++ {
		sessions = append(sessions, timed(base.Add(-time.Duration(i)*24*time.Hour), 15, 0.9))
		sessions = append(sessions, timed(base.Add(-time.Duration(i)*24*time.Hour-6*time.Hour), 40, 0.5))
	}

	if got := optimalSessionLength(sessions, pattern.SpanMedium); got != 15 {
		t.Errorf("optimal length = %d, want 15", got)
	}
}

func TestOptimalSessionLength_MeanWhenBracketsComparable(t *testing.T) {
	var sessions []history.PracticeSession
	for i := 0; i < 3; i++ {
		sessions = append(sessions, timed(base.Add(-time.Duration(i)*24*time.Hour), 15, 0.8))
		sessions = append(sessions, timed(base.Add(-time.Duration(i)*24*time.Hour-6*time.Hour), 35, 0.8))
	}

	if got := optimalSessionLength(sessions, pattern.SpanMedium); got != 25 {
		t.Errorf("optimal length = %d, want mean 25", got)
	}
}

func TestBestPracticeTime(t *testing.T) {
	morning := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 2, 20, 0, 0, 0, time.UTC)

	var sessions []history.PracticeSession
	for i := 0; i < 5; i++ {
		sessions = append(sessions, timed(morning.Add(-time.Duration(i)*24*time.Hour), 20, 0.9))
		sessions = append(sessions, timed(evening.Add(-time.Duration(i)*24*time.Hour), 20, 0.6))
	}

	if got := bestPracticeTime(sessions); got != TimeMorning {
		t.Errorf("bestPracticeTime = %q, want morning", got)
	}
}

func TestBestPracticeTime_TooFewSessions(t *testing.T) {
	sessions := []history.PracticeSession{
		timed(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), 20, 1.0),
	}
	if got := bestPracticeTime(sessions); got != TimeAfternoon {
		t.Errorf("bestPracticeTime = %q, want afternoon default", got)
	}
}

func TestBestPracticeTime_IgnoresThinBuckets(t *testing.T) {
	morning := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 2, 20, 0, 0, 0, time.UTC)

	// Two perfect morning sessions are below the per-bucket minimum, so
	// the well-populated evening bucket wins despite lower accuracy.
	var sessions []history.PracticeSession
	sessions = append(sessions, timed(morning, 20, 1.0))
	sessions = append(sessions, timed(morning.Add(-24*time.Hour), 20, 1.0))
	for i := 0; i < 8; i++ {
		sessions = append(sessions, timed(evening.Add(-time.Duration(i)*24*time.Hour), 20, 0.7))
	}

	if got := bestPracticeTime(sessions); got != TimeEvening {
		t.Errorf("bestPracticeTime = %q, want evening", got)
	}
}

func TestMotivationalFactors(t *testing.T) {
	var long []history.PracticeSession
	for i := 0; i < 8; i++ {
		long = append(long, timed(base.Add(-time.Duration(i)*24*time.Hour), 40, 0.8))
	}

	factors := motivationalFactors(long)
	if !slices.Contains(factors, "enjoys_extended_practice") {
		t.Errorf("factors %v missing enjoys_extended_practice", factors)
	}
	if !slices.Contains(factors, "consistent_daily_practice") {
		t.Errorf("factors %v missing consistent_daily_practice", factors)
	}
	for _, f := range baselineFactors {
		if !slices.Contains(factors, f) {
			t.Errorf("factors %v missing baseline %q", factors, f)
		}
	}

	quick := []history.PracticeSession{
		timed(base, 10, 0.8),
		timed(base.Add(-2*time.Hour), 10, 0.8),
	}
	factors = motivationalFactors(quick)
	if !slices.Contains(factors, "prefers_quick_sessions") {
		t.Errorf("factors %v missing prefers_quick_sessions", factors)
	}
	if slices.Contains(factors, "consistent_daily_practice") {
		t.Errorf("factors %v should not include consistent_daily_practice", factors)
	}
}

func TestAppend(t *testing.T) {
	p := Build(basePattern(), nil, nil)
	p.Append(AdaptationRecord{AdjustedAt: base, Change: "difficulty 5 -> 4.5", Reason: "accuracy dip"})
	p.Append(AdaptationRecord{AdjustedAt: base.Add(time.Hour), Change: "difficulty 4.5 -> 5", Reason: "recovered"})

	if len(p.AdaptationHistory) != 2 {
		t.Fatalf("len(AdaptationHistory) = %d, want 2", len(p.AdaptationHistory))
	}
	if p.AdaptationHistory[0].Change != "difficulty 5 -> 4.5" {
		t.Errorf("records out of order: %v", p.AdaptationHistory)
	}
}
