// Package recommend produces ranked practice-content recommendations
// from an analyzed pattern, a personalization profile, and stored
// progress.
package recommend

import (
	"github.com/abhisek/tutorly/internal/history"
	"github.com/abhisek/tutorly/internal/pattern"
	"github.com/abhisek/tutorly/internal/profile"
)

// PracticeType classifies what a recommended block of content is for.
type PracticeType string

const (
	TypeReview      PracticeType = "review"
	TypeNewLearning PracticeType = "new_learning"
	TypeChallenge   PracticeType = "challenge"
)

// Priority orders recommendations for presentation.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Recommendation is one ranked piece of suggested practice content.
type Recommendation struct {
	Topics          []string
	DifficultyLevel float64
	PracticeType    PracticeType
	EstimatedTime   int // minutes
	Priority        Priority
	Reasoning       string
}

const (
	// MaxRecommendations caps the output per call.
	MaxRecommendations = 5

	// Per-band topic caps.
	maxReviewAreas    = 2
	maxNewAreas       = 2
	maxChallengeAreas = 2

	// Time shares of the optimal session length per band.
	reviewTimeShare    = 0.4
	newLearningShare   = 0.3
	challengeTimeShare = 0.3
)

// Build assembles recommendations in priority order: struggling areas to
// review, improving areas to push forward, strong areas to challenge.
// Empty inputs yield an empty list, never an error.
func Build(p *pattern.LearningPattern, prof *profile.Profile, progress *history.SubjectProgress) []Recommendation {
	var out []Recommendation

	for _, area := range capAreas(p.StrugglingAreas, maxReviewAreas) {
		out = append(out, Recommendation{
			Topics:          []string{area},
			DifficultyLevel: pattern.ClampDifficulty(p.RecommendedDifficulty - 1),
			PracticeType:    TypeReview,
			EstimatedTime:   share(prof.OptimalSessionLength, reviewTimeShare),
			Priority:        PriorityHigh,
			Reasoning:       "Focus on improving " + area,
		})
	}

	for _, area := range capAreas(p.ImprovingAreas, maxNewAreas) {
		out = append(out, Recommendation{
			Topics:          []string{area},
			DifficultyLevel: p.RecommendedDifficulty,
			PracticeType:    TypeNewLearning,
			EstimatedTime:   share(prof.OptimalSessionLength, newLearningShare),
			Priority:        PriorityMedium,
			Reasoning:       "Build on progress in " + area,
		})
	}

	var strong []string
	if progress != nil {
		strong = progress.StrongAreas
	}
	for _, area := range capAreas(strong, maxChallengeAreas) {
		out = append(out, Recommendation{
			Topics:          []string{area},
			DifficultyLevel: pattern.ClampDifficulty(p.RecommendedDifficulty + 1),
			PracticeType:    TypeChallenge,
			EstimatedTime:   share(prof.OptimalSessionLength, challengeTimeShare),
			Priority:        PriorityLow,
			Reasoning:       "Challenge yourself in mastered area " + area,
		})
	}

	if len(out) > MaxRecommendations {
		out = out[:MaxRecommendations]
	}
	return out
}

func capAreas(areas []string, n int) []string {
	var out []string
	for _, a := range areas {
		if a == "" {
			continue
		}
		out = append(out, a)
		if len(out) == n {
			break
		}
	}
	return out
}

func share(sessionLength int, fraction float64) int {
	return int(float64(sessionLength) * fraction)
}
