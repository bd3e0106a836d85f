package pattern

import (
	"time"

	"github.com/abhisek/tutorly/internal/history"
)

// Inputs holds the fetched history an analysis runs over. Progress and
// Snapshots are optional; nil/empty means "no data" and every classifier
// falls back to its documented default.
type Inputs struct {
	UserID       string
	Subject      string
	Sessions     []history.PracticeSession // newest first
	Interactions []history.Interaction
	Progress     *history.SubjectProgress
	Snapshots    []history.PerformanceSnapshot // newest first
}

// Analyze computes a LearningPattern from raw history. It is a pure
// function of its inputs except for the LastAnalyzed stamp.
func Analyze(in Inputs) *LearningPattern {
	struggling, improving := classifyAreas(in.Sessions, in.Progress)
	mastery := blendMastery(in.Sessions, in.Progress)

	return &LearningPattern{
		UserID:                in.UserID,
		Subject:               in.Subject,
		Style:                 classifyStyle(in.Interactions),
		PreferredHintType:     classifyHintType(in.Interactions),
		AttentionSpan:         classifySpan(in.Sessions),
		ErrorPatterns:         detectErrorPatterns(in.Sessions, in.Interactions),
		MasteryLevels:         mastery,
		ImprovementRate:       improvementRate(in.Sessions, in.Snapshots),
		StrugglingAreas:       struggling,
		ImprovingAreas:        improving,
		RecommendedDifficulty: recommendDifficulty(in.Sessions, mastery),
		LastAnalyzed:          time.Now().UTC(),
	}
}
