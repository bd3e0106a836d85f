package store

import (
	"context"
	"fmt"

	"github.com/abhisek/tutorly/ent"
	"github.com/abhisek/tutorly/ent/learningpattern"
	"github.com/abhisek/tutorly/internal/pattern"
)

// PatternRepo implements pattern.Store using the ent client. Upserts are
// last-writer-wins; no row locking, matching the engine's idempotent
// recompute semantics.
type PatternRepo struct {
	client *ent.Client
}

func (r *PatternRepo) Upsert(ctx context.Context, p *pattern.LearningPattern) error {
	existing, err := r.client.LearningPattern.Query().
		Where(
			learningpattern.UserID(p.UserID),
			learningpattern.Subject(p.Subject),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query pattern: %w", err)
	}

	if existing == nil {
		_, err = r.client.LearningPattern.Create().
			SetUserID(p.UserID).
			SetSubject(p.Subject).
			SetStyle(string(p.Style)).
			SetPreferredHintType(string(p.PreferredHintType)).
			SetAttentionSpan(string(p.AttentionSpan)).
			SetErrorPatterns(p.ErrorPatterns).
			SetMasteryLevels(p.MasteryLevels).
			SetImprovementRate(p.ImprovementRate).
			SetStrugglingAreas(p.StrugglingAreas).
			SetImprovingAreas(p.ImprovingAreas).
			SetRecommendedDifficulty(p.RecommendedDifficulty).
			SetLastAnalyzed(p.LastAnalyzed).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create pattern: %w", err)
		}
		return nil
	}

	_, err = existing.Update().
		SetStyle(string(p.Style)).
		SetPreferredHintType(string(p.PreferredHintType)).
		SetAttentionSpan(string(p.AttentionSpan)).
		SetErrorPatterns(p.ErrorPatterns).
		SetMasteryLevels(p.MasteryLevels).
		SetImprovementRate(p.ImprovementRate).
		SetStrugglingAreas(p.StrugglingAreas).
		SetImprovingAreas(p.ImprovingAreas).
		SetRecommendedDifficulty(p.RecommendedDifficulty).
		SetLastAnalyzed(p.LastAnalyzed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update pattern: %w", err)
	}
	return nil
}

func (r *PatternRepo) Get(ctx context.Context, userID, subject string) (*pattern.LearningPattern, error) {
	row, err := r.client.LearningPattern.Query().
		Where(
			learningpattern.UserID(userID),
			learningpattern.Subject(subject),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query pattern: %w", err)
	}

	return &pattern.LearningPattern{
		UserID:                row.UserID,
		Subject:               row.Subject,
		Style:                 pattern.Style(row.Style),
		PreferredHintType:     pattern.HintType(row.PreferredHintType),
		AttentionSpan:         pattern.AttentionSpan(row.AttentionSpan),
		ErrorPatterns:         row.ErrorPatterns,
		MasteryLevels:         row.MasteryLevels,
		ImprovementRate:       row.ImprovementRate,
		StrugglingAreas:       row.StrugglingAreas,
		ImprovingAreas:        row.ImprovingAreas,
		RecommendedDifficulty: row.RecommendedDifficulty,
		LastAnalyzed:          row.LastAnalyzed,
	}, nil
}
