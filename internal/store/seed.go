package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/tutorly/ent/subjectprogress"
	"github.com/abhisek/tutorly/ent/userfact"
	"github.com/abhisek/tutorly/internal/history"
)

// RecordSession persists a practice session, minting a record ID when the
// caller didn't set one. Used by ingestion and test seeding; the engine
// itself never writes sessions.
func (s *Store) RecordSession(ctx context.Context, sess history.PracticeSession) (string, error) {
	id := sess.ID
	if id == "" {
		id = uuid.NewString()
	}

	builder := s.client.PracticeSession.Create().
		SetRecordID(id).
		SetUserID(sess.UserID).
		SetSubject(sess.Subject).
		SetStartedAt(sess.StartedAt).
		SetQuestionsAttempted(sess.QuestionsAttempted).
		SetQuestionsCorrect(sess.QuestionsCorrect).
		SetDifficultyLevel(sess.DifficultyLevel)

	if sess.EndedAt != nil {
		builder = builder.SetEndedAt(*sess.EndedAt)
	}
	if len(sess.Topics) > 0 {
		builder = builder.SetTopics(sess.Topics)
	}
	if len(sess.Payload) > 0 {
		builder = builder.SetPayload(sess.Payload)
	}

	if _, err := builder.Save(ctx); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}
	return id, nil
}

// RecordInteraction persists a tutoring interaction.
func (s *Store) RecordInteraction(ctx context.Context, in history.Interaction) (string, error) {
	id := in.ID
	if id == "" {
		id = uuid.NewString()
	}

	builder := s.client.InteractionEvent.Create().
		SetRecordID(id).
		SetUserID(in.UserID).
		SetKind(string(in.Kind))

	if !in.CreatedAt.IsZero() {
		builder = builder.SetCreatedAt(in.CreatedAt)
	}
	if ctxMap := history.EncodeContext(in.Context); ctxMap != nil {
		builder = builder.SetContext(ctxMap)
	}

	if _, err := builder.Save(ctx); err != nil {
		return "", fmt.Errorf("save interaction: %w", err)
	}
	return id, nil
}

// RecordSnapshot persists a performance snapshot.
func (s *Store) RecordSnapshot(ctx context.Context, snap history.PerformanceSnapshot) (string, error) {
	id := snap.ID
	if id == "" {
		id = uuid.NewString()
	}

	builder := s.client.PerformanceSnapshot.Create().
		SetRecordID(id).
		SetUserID(snap.UserID).
		SetSubject(snap.Subject).
		SetOverallScore(snap.OverallScore)

	if !snap.TakenAt.IsZero() {
		builder = builder.SetTakenAt(snap.TakenAt)
	}
	if len(snap.TopicScores) > 0 {
		builder = builder.SetTopicScores(snap.TopicScores)
	}

	if _, err := builder.Save(ctx); err != nil {
		return "", fmt.Errorf("save snapshot: %w", err)
	}
	return id, nil
}

// SetProgress creates or replaces the progress row for a user+subject.
func (s *Store) SetProgress(ctx context.Context, userID, subject string, p history.SubjectProgress) error {
	_, err := s.client.SubjectProgress.Delete().
		Where(
			subjectprogress.UserID(userID),
			subjectprogress.Subject(subject),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear progress: %w", err)
	}

	builder := s.client.SubjectProgress.Create().
		SetUserID(userID).
		SetSubject(subject).
		SetOverallScore(p.OverallScore).
		SetStreakDays(p.StreakDays).
		SetTotalPracticeTime(p.TotalPracticeTime)

	if len(p.TopicScores) > 0 {
		builder = builder.SetTopicScores(p.TopicScores)
	}
	if len(p.WeakAreas) > 0 {
		builder = builder.SetWeakAreas(p.WeakAreas)
	}
	if len(p.StrongAreas) > 0 {
		builder = builder.SetStrongAreas(p.StrongAreas)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// SetUserFacts creates or replaces the facts row for a user.
func (s *Store) SetUserFacts(ctx context.Context, userID string, facts history.UserFacts, preferences map[string]any) error {
	_, err := s.client.UserFact.Delete().
		Where(userfact.UserID(userID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear user facts: %w", err)
	}

	builder := s.client.UserFact.Create().
		SetUserID(userID).
		SetGradeLevel(facts.GradeLevel)

	if facts.ExamDate != nil {
		builder = builder.SetExamDate(*facts.ExamDate)
	}
	if len(preferences) > 0 {
		builder = builder.SetPreferences(preferences)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save user facts: %w", err)
	}
	return nil
}
