package pattern

import (
	"context"
	"time"
)

// Style is the coarse classification of how a student engages with help.
type Style string

const (
	StyleVisual        Style = "visual"
	StyleAnalytical    Style = "analytical"
	StyleTrialAndError Style = "trial_and_error"
	StyleMixed         Style = "mixed"
)

// HintType is the kind of hint a student responds to best.
type HintType string

const (
	HintConceptual   HintType = "conceptual"
	HintProcedural   HintType = "procedural"
	HintExampleBased HintType = "example_based"
)

// AttentionSpan is the coarse session-length bucket a student sustains.
type AttentionSpan string

const (
	SpanShort  AttentionSpan = "short"
	SpanMedium AttentionSpan = "medium"
	SpanLong   AttentionSpan = "long"
)

// LearningPattern is the computed learning profile for a user and subject.
// Recomputed fresh on every request, then upserted to the pattern store on
// a best-effort basis.
type LearningPattern struct {
	UserID                string
	Subject               string
	Style                 Style
	PreferredHintType     HintType
	AttentionSpan         AttentionSpan
	ErrorPatterns         []string
	MasteryLevels         map[string]float64 // topic -> [0,1]
	ImprovementRate       float64            // signed fraction
	StrugglingAreas       []string           // <=5, deduplicated
	ImprovingAreas        []string           // <=5, deduplicated
	RecommendedDifficulty float64            // [1,10], multiples of 0.5
	LastAnalyzed          time.Time
}

// Store caches computed patterns keyed by user and subject. Writes are
// last-writer-wins; callers treat Upsert as a non-critical side effect.
type Store interface {
	Upsert(ctx context.Context, p *LearningPattern) error

	// Get returns the cached pattern, or (nil, nil) when none is cached.
	Get(ctx context.Context, userID, subject string) (*LearningPattern, error)
}
