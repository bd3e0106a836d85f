package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/abhisek/tutorly/internal/adjust"
	"github.com/abhisek/tutorly/internal/pattern"
	"github.com/abhisek/tutorly/internal/profile"
	"github.com/abhisek/tutorly/internal/recommend"
)

// patternResponse is the wire form of a learning pattern.
type patternResponse struct {
	UserID                string             `json:"user_id"`
	Subject               string             `json:"subject"`
	LearningStyle         string             `json:"learning_style"`
	PreferredHintType     string             `json:"preferred_hint_type"`
	AttentionSpan         string             `json:"attention_span"`
	ErrorPatterns         []string           `json:"error_patterns"`
	MasteryLevels         map[string]float64 `json:"mastery_levels"`
	ImprovementRate       float64            `json:"improvement_rate"`
	StrugglingAreas       []string           `json:"struggling_areas"`
	ImprovingAreas        []string           `json:"improving_areas"`
	RecommendedDifficulty float64            `json:"recommended_difficulty"`
	LastAnalyzed          time.Time          `json:"last_analyzed"`
}

type profileResponse struct {
	UserID                 string   `json:"user_id"`
	Subject                string   `json:"subject"`
	CurrentLevel           int      `json:"current_level"`
	TargetLevel            int      `json:"target_level"`
	LearningGoals          []string `json:"learning_goals"`
	PreferredPracticeTypes []string `json:"preferred_practice_types"`
	OptimalSessionLength   int      `json:"optimal_session_length"`
	BestPracticeTime       string   `json:"best_practice_time"`
	MotivationalFactors    []string `json:"motivational_factors"`
}

type recommendationResponse struct {
	Topics          []string `json:"topics"`
	DifficultyLevel float64  `json:"difficulty_level"`
	PracticeType    string   `json:"practice_type"`
	EstimatedTime   int      `json:"estimated_time"`
	Priority        string   `json:"priority"`
	Reasoning       string   `json:"reasoning"`
}

type difficultyRequest struct {
	CurrentDifficulty float64 `json:"current_difficulty"`
}

type difficultyResponse struct {
	CurrentDifficulty     float64 `json:"current_difficulty"`
	RecommendedDifficulty float64 `json:"recommended_difficulty"`
	AdjustmentReason      string  `json:"adjustment_reason"`
	Confidence            float64 `json:"confidence"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handlePattern(w http.ResponseWriter, r *http.Request) {
	userID, subject := pathParams(r)

	p, err := s.engine.Analyze(r.Context(), userID, subject)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toPatternResponse(p))
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	userID, subject := pathParams(r)

	prof, err := s.engine.BuildProfile(r.Context(), userID, subject)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toProfileResponse(prof))
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	userID, subject := pathParams(r)

	recs, err := s.engine.Recommend(r.Context(), userID, subject)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	out := make([]recommendationResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toRecommendationResponse(rec))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleDifficulty(w http.ResponseWriter, r *http.Request) {
	userID, subject := pathParams(r)

	var req difficultyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	adj, err := s.engine.AdjustDifficulty(r.Context(), userID, subject, req.CurrentDifficulty)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toDifficultyResponse(adj))
}

func pathParams(r *http.Request) (userID, subject string) {
	return chi.URLParam(r, "userID"), chi.URLParam(r, "subject")
}

// writeError maps a repository failure to 502: the engine only returns
// errors when a required history fetch failed.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.Error().Err(err).Str("path", r.URL.Path).Msg("engine call failed")
	s.writeJSON(w, http.StatusBadGateway, errorResponse{Error: "history unavailable"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error().Err(err).Msg("encode response")
	}
}

func toPatternResponse(p *pattern.LearningPattern) patternResponse {
	return patternResponse{
		UserID:                p.UserID,
		Subject:               p.Subject,
		LearningStyle:         string(p.Style),
		PreferredHintType:     string(p.PreferredHintType),
		AttentionSpan:         string(p.AttentionSpan),
		ErrorPatterns:         emptyIfNil(p.ErrorPatterns),
		MasteryLevels:         p.MasteryLevels,
		ImprovementRate:       p.ImprovementRate,
		StrugglingAreas:       emptyIfNil(p.StrugglingAreas),
		ImprovingAreas:        emptyIfNil(p.ImprovingAreas),
		RecommendedDifficulty: p.RecommendedDifficulty,
		LastAnalyzed:          p.LastAnalyzed,
	}
}

func toProfileResponse(p *profile.Profile) profileResponse {
	return profileResponse{
		UserID:                 p.UserID,
		Subject:                p.Subject,
		CurrentLevel:           p.CurrentLevel,
		TargetLevel:            p.TargetLevel,
		LearningGoals:          emptyIfNil(p.LearningGoals),
		PreferredPracticeTypes: emptyIfNil(p.PreferredPracticeTypes),
		OptimalSessionLength:   p.OptimalSessionLength,
		BestPracticeTime:       string(p.BestPracticeTime),
		MotivationalFactors:    emptyIfNil(p.MotivationalFactors),
	}
}

func toRecommendationResponse(r recommend.Recommendation) recommendationResponse {
	return recommendationResponse{
		Topics:          emptyIfNil(r.Topics),
		DifficultyLevel: r.DifficultyLevel,
		PracticeType:    string(r.PracticeType),
		EstimatedTime:   r.EstimatedTime,
		Priority:        string(r.Priority),
		Reasoning:       r.Reasoning,
	}
}

func toDifficultyResponse(a *adjust.Adjustment) difficultyResponse {
	return difficultyResponse{
		CurrentDifficulty:     a.CurrentDifficulty,
		RecommendedDifficulty: a.RecommendedDifficulty,
		AdjustmentReason:      a.Reason,
		Confidence:            a.Confidence,
	}
}

// emptyIfNil keeps JSON arrays as [] rather than null.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
