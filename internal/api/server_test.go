package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/abhisek/tutorly/internal/engine"
	"github.com/abhisek/tutorly/internal/history"
)

type stubRepo struct {
	sessions []history.PracticeSession
	fail     bool
}

func (r *stubRepo) RecentSessions(ctx context.Context, userID, subject string, limit int) ([]history.PracticeSession, error) {
	if r.fail {
		return nil, errors.New("db down")
	}
	return r.sessions, nil
}

func (r *stubRepo) RecentInteractions(ctx context.Context, userID string, limit int) ([]history.Interaction, error) {
	return nil, nil
}

func (r *stubRepo) Progress(ctx context.Context, userID, subject string) (*history.SubjectProgress, error) {
	return nil, nil
}

func (r *stubRepo) Snapshots(ctx context.Context, userID, subject string, limit int) ([]history.PerformanceSnapshot, error) {
	return nil, nil
}

func (r *stubRepo) UserFacts(ctx context.Context, userID string) (*history.UserFacts, error) {
	return nil, nil
}

func (r *stubRepo) UserPreferences(ctx context.Context, userID string) (map[string]any, error) {
	return nil, nil
}

func testServer(repo *stubRepo) *Server {
	eng := engine.New(repo, nil, zerolog.Nop())
	return New(":0", eng, zerolog.Nop())
}

func seededRepo() *stubRepo {
	base := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)
	var sessions []history.PracticeSession
	for i := 0; i < 4; i++ {
		start := base.Add(-time.Duration(i) * 24 * time.Hour)
		end := start.Add(25 * time.Minute)
		sessions = append(sessions, history.PracticeSession{
			UserID:             "u1",
			Subject:            "math",
			StartedAt:          start,
			EndedAt:            &end,
			QuestionsAttempted: 20,
			QuestionsCorrect:   15,
		})
	}
	return &stubRepo{sessions: sessions}
}

func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := doRequest(t, testServer(seededRepo()), http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestGetPattern(t *testing.T) {
	rec := doRequest(t, testServer(seededRepo()), http.MethodGet,
		"/api/v1/users/u1/subjects/math/pattern", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp patternResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.UserID != "u1" || resp.Subject != "math" {
		t.Errorf("pattern for %s/%s, want u1/math", resp.UserID, resp.Subject)
	}
	if resp.StrugglingAreas == nil {
		t.Error("struggling_areas should encode as [], not null")
	}
}

func TestGetProfile(t *testing.T) {
	rec := doRequest(t, testServer(seededRepo()), http.MethodGet,
		"/api/v1/users/u1/subjects/math/profile", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp profileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.CurrentLevel < 1 || resp.CurrentLevel > 10 {
		t.Errorf("current_level = %d, want 1..10", resp.CurrentLevel)
	}
	if resp.OptimalSessionLength <= 0 {
		t.Errorf("optimal_session_length = %d, want positive", resp.OptimalSessionLength)
	}
}

func TestGetRecommendations(t *testing.T) {
	rec := doRequest(t, testServer(seededRepo()), http.MethodGet,
		"/api/v1/users/u1/subjects/math/recommendations", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp []recommendationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp) > 5 {
		t.Errorf("len(recommendations) = %d, want at most 5", len(resp))
	}
}

func TestPostDifficulty(t *testing.T) {
	rec := doRequest(t, testServer(seededRepo()), http.MethodPost,
		"/api/v1/users/u1/subjects/math/difficulty", `{"current_difficulty": 5}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp difficultyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.CurrentDifficulty != 5 {
		t.Errorf("current_difficulty = %f, want 5", resp.CurrentDifficulty)
	}
	if resp.RecommendedDifficulty < 1 || resp.RecommendedDifficulty > 10 {
		t.Errorf("recommended_difficulty = %f outside [1,10]", resp.RecommendedDifficulty)
	}
}

func TestPostDifficulty_BadBody(t *testing.T) {
	rec := doRequest(t, testServer(seededRepo()), http.MethodPost,
		"/api/v1/users/u1/subjects/math/difficulty", `{"current_difficulty": "five"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHistoryFailureMapsToBadGateway(t *testing.T) {
	rec := doRequest(t, testServer(&stubRepo{fail: true}), http.MethodGet,
		"/api/v1/users/u1/subjects/math/pattern", "")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error != "history unavailable" {
		t.Errorf("error = %q, want history unavailable", resp.Error)
	}
}
