package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/abhisek/tutorly/internal/history"
	"github.com/abhisek/tutorly/internal/pattern"
)

var base = time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)

// fakeRepo serves canned history and lets individual fetches fail.
type fakeRepo struct {
	sessions     []history.PracticeSession
	interactions []history.Interaction
	progress     *history.SubjectProgress
	snapshots    []history.PerformanceSnapshot
	facts        *history.UserFacts

	sessionsErr     error
	interactionsErr error
	progressErr     error
	snapshotsErr    error
	factsErr        error

	sessionLimit int
}

func (f *fakeRepo) RecentSessions(ctx context.Context, userID, subject string, limit int) ([]history.PracticeSession, error) {
	f.sessionLimit = limit
	if f.sessionsErr != nil {
		return nil, f.sessionsErr
	}
	return f.sessions, nil
}

func (f *fakeRepo) RecentInteractions(ctx context.Context, userID string, limit int) ([]history.Interaction, error) {
	if f.interactionsErr != nil {
		return nil, f.interactionsErr
	}
	return f.interactions, nil
}

func (f *fakeRepo) Progress(ctx context.Context, userID, subject string) (*history.SubjectProgress, error) {
	if f.progressErr != nil {
		return nil, f.progressErr
	}
	return f.progress, nil
}

func (f *fakeRepo) Snapshots(ctx context.Context, userID, subject string, limit int) ([]history.PerformanceSnapshot, error) {
	if f.snapshotsErr != nil {
		return nil, f.snapshotsErr
	}
	return f.snapshots, nil
}

func (f *fakeRepo) UserFacts(ctx context.Context, userID string) (*history.UserFacts, error) {
	if f.factsErr != nil {
		return nil, f.factsErr
	}
	return f.facts, nil
}

func (f *fakeRepo) UserPreferences(ctx context.Context, userID string) (map[string]any, error) {
	return nil, nil
}

// failStore rejects every write so best-effort caching can be exercised.
type failStore struct {
	upserts int
}

func (s *failStore) Upsert(ctx context.Context, p *pattern.LearningPattern) error {
	s.upserts++
	return errors.New("store down")
}

func (s *failStore) Get(ctx context.Context, userID, subject string) (*pattern.LearningPattern, error) {
	return nil, errors.New("store down")
}

func completedSession(daysAgo, minutes, attempted, correct int) history.PracticeSession {
	start := base.Add(-time.Duration(daysAgo) * 24 * time.Hour)
	end := start.Add(time.Duration(minutes) * time.Minute)
	return history.PracticeSession{
		UserID:             "u1",
		Subject:            "math",
		StartedAt:          start,
		EndedAt:            &end,
		QuestionsAttempted: attempted,
		QuestionsCorrect:   correct,
		Topics:             []string{"fractions"},
	}
}

func testRepo() *fakeRepo {
	var sessions []history.PracticeSession
	for i := 0; i < 6; i++ {
		sessions = append(sessions, completedSession(i, 25, 20, 16))
	}
	return &fakeRepo{
		sessions: sessions,
		progress: &history.SubjectProgress{
			WeakAreas:   []string{"geometry"},
			StrongAreas: []string{"arithmetic"},
		},
		facts: &history.UserFacts{GradeLevel: 5},
	}
}

func TestAnalyze(t *testing.T) {
	repo := testRepo()
	e := New(repo, nil, zerolog.Nop())

	p, err := e.Analyze(context.Background(), "u1", "math")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if p.UserID != "u1" || p.Subject != "math" {
		t.Errorf("pattern for %s/%s, want u1/math", p.UserID, p.Subject)
	}
	if repo.sessionLimit != SessionLimit {
		t.Errorf("session fetch limit = %d, want %d", repo.sessionLimit, SessionLimit)
	}
}

func TestAnalyze_SessionFetchFailurePropagates(t *testing.T) {
	repo := testRepo()
	repo.sessionsErr = errors.New("db locked")
	e := New(repo, nil, zerolog.Nop())

	if _, err := e.Analyze(context.Background(), "u1", "math"); err == nil {
		t.Fatal("Analyze should fail when sessions cannot be fetched")
	}
}

func TestAnalyze_InteractionFetchFailurePropagates(t *testing.T) {
	repo := testRepo()
	repo.interactionsErr = errors.New("db locked")
	e := New(repo, nil, zerolog.Nop())

	if _, err := e.Analyze(context.Background(), "u1", "math"); err == nil {
		t.Fatal("Analyze should fail when interactions cannot be fetched")
	}
}

func TestAnalyze_OptionalFetchFailuresTolerated(t *testing.T) {
	repo := testRepo()
	repo.progressErr = errors.New("table missing")
	repo.snapshotsErr = errors.New("table missing")
	e := New(repo, nil, zerolog.Nop())

	p, err := e.Analyze(context.Background(), "u1", "math")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(p.StrugglingAreas) != 0 {
		t.Errorf("StrugglingAreas = %v, want none without progress or snapshots", p.StrugglingAreas)
	}
}

func TestAnalyze_StoreFailureSwallowed(t *testing.T) {
	repo := testRepo()
	store := &failStore{}
	e := New(repo, store, zerolog.Nop())

	if _, err := e.Analyze(context.Background(), "u1", "math"); err != nil {
		t.Fatalf("Analyze should succeed despite store failure: %v", err)
	}
	if store.upserts != 1 {
		t.Errorf("upserts = %d, want 1", store.upserts)
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	repo := testRepo()
	e := New(repo, nil, zerolog.Nop())

	a, err := e.Analyze(context.Background(), "u1", "math")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	b, err := e.Analyze(context.Background(), "u1", "math")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	b.LastAnalyzed = a.LastAnalyzed
	if a.Style != b.Style || a.AttentionSpan != b.AttentionSpan ||
		a.RecommendedDifficulty != b.RecommendedDifficulty {
		t.Errorf("repeat analysis diverged: %+v vs %+v", a, b)
	}
}

func TestBuildProfile(t *testing.T) {
	repo := testRepo()
	e := New(repo, nil, zerolog.Nop())

	prof, err := e.BuildProfile(context.Background(), "u1", "math")
	if err != nil {
		t.Fatalf("BuildProfile: %v", err)
	}
	if prof.UserID != "u1" || prof.Subject != "math" {
		t.Errorf("profile for %s/%s, want u1/math", prof.UserID, prof.Subject)
	}
	// Grade 5 yields a target of grade+2.
	if prof.TargetLevel != 7 {
		t.Errorf("TargetLevel = %d, want 7", prof.TargetLevel)
	}
}

func TestBuildProfile_FactsFailureTolerated(t *testing.T) {
	repo := testRepo()
	repo.factsErr = errors.New("table missing")
	e := New(repo, nil, zerolog.Nop())

	prof, err := e.BuildProfile(context.Background(), "u1", "math")
	if err != nil {
		t.Fatalf("BuildProfile: %v", err)
	}
	if prof.TargetLevel != 8 {
		t.Errorf("TargetLevel = %d, want default 8 without facts", prof.TargetLevel)
	}
}

func TestAdjustDifficulty(t *testing.T) {
	repo := testRepo()
	e := New(repo, &failStore{}, zerolog.Nop())

	adj, err := e.AdjustDifficulty(context.Background(), "u1", "math", 5)
	if err != nil {
		t.Fatalf("AdjustDifficulty: %v", err)
	}
	if adj.CurrentDifficulty != 5 {
		t.Errorf("CurrentDifficulty = %f, want 5", adj.CurrentDifficulty)
	}
	if adj.RecommendedDifficulty < pattern.MinDifficulty || adj.RecommendedDifficulty > pattern.MaxDifficulty {
		t.Errorf("RecommendedDifficulty %f outside [1,10]", adj.RecommendedDifficulty)
	}
	if adj.Confidence <= 0 || adj.Confidence > 1 {
		t.Errorf("Confidence %f outside (0,1]", adj.Confidence)
	}
}

func TestAdjustDifficulty_TooFewSessions(t *testing.T) {
	repo := testRepo()
	repo.sessions = repo.sessions[:2]
	e := New(repo, nil, zerolog.Nop())

	adj, err := e.AdjustDifficulty(context.Background(), "u1", "math", 6)
	if err != nil {
		t.Fatalf("AdjustDifficulty: %v", err)
	}
	if adj.RecommendedDifficulty != 6 {
		t.Errorf("RecommendedDifficulty = %f, want unchanged 6", adj.RecommendedDifficulty)
	}
}

func TestRecommend(t *testing.T) {
	repo := testRepo()
	e := New(repo, nil, zerolog.Nop())

	recs, err := e.Recommend(context.Background(), "u1", "math")
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(recs) == 0 || len(recs) > 5 {
		t.Fatalf("len(recs) = %d, want 1..5", len(recs))
	}
	// Stored weak and strong areas flow through to review and challenge
	// recommendations.
	var sawGeometry, sawArithmetic bool
	for _, r := range recs {
		for _, topic := range r.Topics {
			if topic == "geometry" {
				sawGeometry = true
			}
			if topic == "arithmetic" {
				sawArithmetic = true
			}
		}
	}
	if !sawGeometry {
		t.Errorf("recommendations %+v missing review of stored weak area", recs)
	}
	if !sawArithmetic {
		t.Errorf("recommendations %+v missing challenge of stored strong area", recs)
	}
}

func TestRecommend_NoHistory(t *testing.T) {
	e := New(&fakeRepo{}, nil, zerolog.Nop())

	recs, err := e.Recommend(context.Background(), "u1", "math")
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("len(recs) = %d, want 0 with no history", len(recs))
	}
}
