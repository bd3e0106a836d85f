package store

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/tutorly/internal/history"
	"github.com/abhisek/tutorly/internal/pattern"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSessionsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		end := base.Add(time.Duration(-i)*24*time.Hour + 20*time.Minute)
		_, err := s.RecordSession(ctx, history.PracticeSession{
			UserID:             "u1",
			Subject:            "math",
			StartedAt:          base.Add(time.Duration(-i) * 24 * time.Hour),
			EndedAt:            &end,
			QuestionsAttempted: 10,
			QuestionsCorrect:   7 + i,
			Topics:             []string{"fractions"},
			DifficultyLevel:    5,
		})
		if err != nil {
			t.Fatalf("record session %d: %v", i, err)
		}
	}

	sessions, err := repo.RecentSessions(ctx, "u1", "math", 10)
	if err != nil {
		t.Fatalf("recent sessions: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("len(sessions) = %d, want 3", len(sessions))
	}
	// The newest session was inserted first with the lowest correct count.
	if sessions[0].QuestionsCorrect != 7 {
		t.Errorf("sessions[0].QuestionsCorrect = %d, want newest session first", sessions[0].QuestionsCorrect)
	}
	for i := 1; i < len(sessions); i++ {
		if sessions[i].StartedAt.After(sessions[i-1].StartedAt) {
			t.Errorf("sessions out of order at %d", i)
		}
	}
}

func TestSessionsScopedAndLimited(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 5; i++ {
		_, err := s.RecordSession(ctx, history.PracticeSession{
			UserID:    "u1",
			Subject:   "math",
			StartedAt: base.Add(time.Duration(-i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("record session %d: %v", i, err)
		}
	}
	if _, err := s.RecordSession(ctx, history.PracticeSession{
		UserID: "u1", Subject: "physics", StartedAt: base,
	}); err != nil {
		t.Fatalf("record other-subject session: %v", err)
	}
	if _, err := s.RecordSession(ctx, history.PracticeSession{
		UserID: "u2", Subject: "math", StartedAt: base,
	}); err != nil {
		t.Fatalf("record other-user session: %v", err)
	}

	sessions, err := repo.RecentSessions(ctx, "u1", "math", 3)
	if err != nil {
		t.Fatalf("recent sessions: %v", err)
	}
	if len(sessions) != 3 {
		t.Errorf("len(sessions) = %d, want limit 3", len(sessions))
	}
	for _, sess := range sessions {
		if sess.UserID != "u1" || sess.Subject != "math" {
			t.Errorf("leaked session %s/%s", sess.UserID, sess.Subject)
		}
	}
}

func TestInteractionContextRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()
	ctx := context.Background()

	_, err := s.RecordInteraction(ctx, history.Interaction{
		UserID:    "u1",
		Kind:      history.KindHint,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		Context: history.HintContext{
			Topic:         "fractions",
			HintType:      "conceptual",
			Confused:      true,
			AttemptNumber: 2,
		},
	})
	if err != nil {
		t.Fatalf("record interaction: %v", err)
	}

	interactions, err := repo.RecentInteractions(ctx, "u1", 10)
	if err != nil {
		t.Fatalf("recent interactions: %v", err)
	}
	if len(interactions) != 1 {
		t.Fatalf("len(interactions) = %d, want 1", len(interactions))
	}

	hc, ok := interactions[0].Context.(history.HintContext)
	if !ok {
		t.Fatalf("context decoded as %T, want HintContext", interactions[0].Context)
	}
	if hc.Topic != "fractions" || !hc.Confused || hc.AttemptNumber != 2 {
		t.Errorf("decoded context = %+v", hc)
	}
}

func TestProgressAbsentIsNil(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()

	progress, err := repo.Progress(context.Background(), "nobody", "math")
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if progress != nil {
		t.Errorf("progress = %+v, want nil for unknown user", progress)
	}
}

func TestProgressSetAndReplace(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()
	ctx := context.Background()

	err := s.SetProgress(ctx, "u1", "math", history.SubjectProgress{
		OverallScore: 62,
		WeakAreas:    []string{"fractions"},
	})
	if err != nil {
		t.Fatalf("set progress: %v", err)
	}
	err = s.SetProgress(ctx, "u1", "math", history.SubjectProgress{
		OverallScore: 71,
		WeakAreas:    []string{"geometry"},
		StrongAreas:  []string{"arithmetic"},
	})
	if err != nil {
		t.Fatalf("replace progress: %v", err)
	}

	progress, err := repo.Progress(ctx, "u1", "math")
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if progress == nil {
		t.Fatal("expected progress row")
	}
	if progress.OverallScore != 71 {
		t.Errorf("OverallScore = %f, want replaced value 71", progress.OverallScore)
	}
	if len(progress.WeakAreas) != 1 || progress.WeakAreas[0] != "geometry" {
		t.Errorf("WeakAreas = %v, want [geometry]", progress.WeakAreas)
	}
}

func TestUserFactsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()
	ctx := context.Background()

	facts, err := repo.UserFacts(ctx, "u1")
	if err != nil {
		t.Fatalf("user facts (empty): %v", err)
	}
	if facts != nil {
		t.Fatal("expected nil facts for unknown user")
	}

	exam := time.Now().UTC().Add(20 * 24 * time.Hour).Truncate(time.Second)
	err = s.SetUserFacts(ctx, "u1", history.UserFacts{GradeLevel: 5, ExamDate: &exam},
		map[string]any{"theme": "dark"})
	if err != nil {
		t.Fatalf("set user facts: %v", err)
	}

	facts, err = repo.UserFacts(ctx, "u1")
	if err != nil {
		t.Fatalf("user facts: %v", err)
	}
	if facts == nil || facts.GradeLevel != 5 {
		t.Fatalf("facts = %+v, want grade 5", facts)
	}
	if facts.ExamDate == nil || !facts.ExamDate.Equal(exam) {
		t.Errorf("ExamDate = %v, want %v", facts.ExamDate, exam)
	}

	prefs, err := repo.UserPreferences(ctx, "u1")
	if err != nil {
		t.Fatalf("user preferences: %v", err)
	}
	if prefs["theme"] != "dark" {
		t.Errorf("preferences = %v, want theme dark", prefs)
	}
}

func TestPatternUpsertAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.PatternRepo()
	ctx := context.Background()

	got, err := repo.Get(ctx, "u1", "math")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil pattern before upsert")
	}

	p := &pattern.LearningPattern{
		UserID:                "u1",
		Subject:               "math",
		Style:                 pattern.StyleAnalytical,
		PreferredHintType:     pattern.HintConceptual,
		AttentionSpan:         pattern.SpanMedium,
		MasteryLevels:         map[string]float64{"fractions": 0.6},
		RecommendedDifficulty: 5,
		LastAnalyzed:          time.Now().UTC().Truncate(time.Second),
	}
	if err := repo.Upsert(ctx, p); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err = repo.Get(ctx, "u1", "math")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected stored pattern")
	}
	if got.Style != pattern.StyleAnalytical || got.RecommendedDifficulty != 5 {
		t.Errorf("got %+v", got)
	}
	if got.MasteryLevels["fractions"] != 0.6 {
		t.Errorf("MasteryLevels = %v", got.MasteryLevels)
	}

	// Second upsert updates in place rather than adding a row.
	p.Style = pattern.StyleMixed
	p.RecommendedDifficulty = 5.5
	if err := repo.Upsert(ctx, p); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	count, err := s.Client().LearningPattern.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("pattern rows = %d, want 1", count)
	}

	got, err = repo.Get(ctx, "u1", "math")
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if got.Style != pattern.StyleMixed || got.RecommendedDifficulty != 5.5 {
		t.Errorf("updated pattern = %+v", got)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{
		"practice_sessions",
		"interaction_events",
		"subject_progresses",
		"performance_snapshots",
		"learning_patterns",
		"user_facts",
	} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}
