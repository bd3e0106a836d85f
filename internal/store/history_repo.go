package store

import (
	"context"
	"fmt"

	"github.com/abhisek/tutorly/ent"
	"github.com/abhisek/tutorly/ent/interactionevent"
	"github.com/abhisek/tutorly/ent/performancesnapshot"
	"github.com/abhisek/tutorly/ent/practicesession"
	"github.com/abhisek/tutorly/ent/subjectprogress"
	"github.com/abhisek/tutorly/ent/userfact"
	"github.com/abhisek/tutorly/internal/history"
)

// HistoryRepo implements history.Repository using the ent client.
type HistoryRepo struct {
	client *ent.Client
}

func (r *HistoryRepo) RecentSessions(ctx context.Context, userID, subject string, limit int) ([]history.PracticeSession, error) {
	rows, err := r.client.PracticeSession.Query().
		Where(
			practicesession.UserID(userID),
			practicesession.Subject(subject),
		).
		Order(ent.Desc(practicesession.FieldStartedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}

	sessions := make([]history.PracticeSession, 0, len(rows))
	for _, row := range rows {
		sessions = append(sessions, history.PracticeSession{
			ID:                 row.RecordID,
			UserID:             row.UserID,
			Subject:            row.Subject,
			StartedAt:          row.StartedAt,
			EndedAt:            row.EndedAt,
			QuestionsAttempted: row.QuestionsAttempted,
			QuestionsCorrect:   row.QuestionsCorrect,
			Topics:             row.Topics,
			DifficultyLevel:    row.DifficultyLevel,
			Payload:            row.Payload,
		})
	}
	return sessions, nil
}

func (r *HistoryRepo) RecentInteractions(ctx context.Context, userID string, limit int) ([]history.Interaction, error) {
	rows, err := r.client.InteractionEvent.Query().
		Where(interactionevent.UserID(userID)).
		Order(ent.Desc(interactionevent.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query interactions: %w", err)
	}

	interactions := make([]history.Interaction, 0, len(rows))
	for _, row := range rows {
		kind := history.InteractionKind(row.Kind)
		interactions = append(interactions, history.Interaction{
			ID:        row.RecordID,
			UserID:    row.UserID,
			Kind:      kind,
			Context:   history.DecodeContext(kind, row.Context),
			CreatedAt: row.CreatedAt,
		})
	}
	return interactions, nil
}

func (r *HistoryRepo) Progress(ctx context.Context, userID, subject string) (*history.SubjectProgress, error) {
	row, err := r.client.SubjectProgress.Query().
		Where(
			subjectprogress.UserID(userID),
			subjectprogress.Subject(subject),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query progress: %w", err)
	}

	return &history.SubjectProgress{
		OverallScore:      row.OverallScore,
		TopicScores:       row.TopicScores,
		WeakAreas:         row.WeakAreas,
		StrongAreas:       row.StrongAreas,
		StreakDays:        row.StreakDays,
		TotalPracticeTime: row.TotalPracticeTime,
	}, nil
}

func (r *HistoryRepo) Snapshots(ctx context.Context, userID, subject string, limit int) ([]history.PerformanceSnapshot, error) {
	rows, err := r.client.PerformanceSnapshot.Query().
		Where(
			performancesnapshot.UserID(userID),
			performancesnapshot.Subject(subject),
		).
		Order(ent.Desc(performancesnapshot.FieldTakenAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}

	snapshots := make([]history.PerformanceSnapshot, 0, len(rows))
	for _, row := range rows {
		snapshots = append(snapshots, history.PerformanceSnapshot{
			ID:           row.RecordID,
			UserID:       row.UserID,
			Subject:      row.Subject,
			OverallScore: row.OverallScore,
			TopicScores:  row.TopicScores,
			TakenAt:      row.TakenAt,
		})
	}
	return snapshots, nil
}

func (r *HistoryRepo) UserFacts(ctx context.Context, userID string) (*history.UserFacts, error) {
	row, err := r.client.UserFact.Query().
		Where(userfact.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user facts: %w", err)
	}

	return &history.UserFacts{
		GradeLevel: row.GradeLevel,
		ExamDate:   row.ExamDate,
	}, nil
}

func (r *HistoryRepo) UserPreferences(ctx context.Context, userID string) (map[string]any, error) {
	row, err := r.client.UserFact.Query().
		Where(userfact.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("query user preferences: %w", err)
	}
	if row.Preferences == nil {
		return map[string]any{}, nil
	}
	return row.Preferences, nil
}
