package history

import (
	"context"
	"time"
)

// PracticeSession is one practice session as recorded by the practice
// subsystem. Read-only inside the engine.
type PracticeSession struct {
	ID                 string
	UserID             string
	Subject            string
	StartedAt          time.Time
	EndedAt            *time.Time // nil while in progress
	QuestionsAttempted int
	QuestionsCorrect   int
	Topics             []string // in practice order
	DifficultyLevel    float64
	Payload            map[string]any
}

// Completed reports whether the session has an end time.
func (s *PracticeSession) Completed() bool {
	return s.EndedAt != nil
}

// Duration returns the session length, or 0 if the session is incomplete.
func (s *PracticeSession) Duration() time.Duration {
	if s.EndedAt == nil {
		return 0
	}
	return s.EndedAt.Sub(s.StartedAt)
}

// Accuracy returns correct/attempted, or -1 when nothing was attempted so
// callers can exclude the session from accuracy means.
func (s *PracticeSession) Accuracy() float64 {
	if s.QuestionsAttempted == 0 {
		return -1
	}
	return float64(s.QuestionsCorrect) / float64(s.QuestionsAttempted)
}

// Interaction is one tutoring interaction (hint, explanation, feedback,
// or chat exchange).
type Interaction struct {
	ID        string
	UserID    string
	Kind      InteractionKind
	Context   InteractionContext
	CreatedAt time.Time
}

// SubjectProgress is the stored aggregate progress for a user and subject.
// Optional input: absence is represented by a nil pointer throughout.
type SubjectProgress struct {
	OverallScore      float64 // [0,100]
	TopicScores       map[string]float64
	WeakAreas         []string
	StrongAreas       []string
	StreakDays        int
	TotalPracticeTime int // lifetime minutes
}

// PerformanceSnapshot is a point-in-time copy of aggregate performance.
type PerformanceSnapshot struct {
	ID           string
	UserID       string
	Subject      string
	OverallScore float64
	TopicScores  map[string]float64
	TakenAt      time.Time
}

// UserFacts are the slow-changing user attributes personalization uses.
type UserFacts struct {
	GradeLevel int        // 0 = unknown
	ExamDate   *time.Time // nil = none scheduled
}

// Repository supplies the engine's historical inputs. Implementations are
// owned by the platform's persistence layer; the engine performs no
// validation on what it receives.
type Repository interface {
	// RecentSessions returns up to limit sessions for the user and
	// subject, newest first.
	RecentSessions(ctx context.Context, userID, subject string, limit int) ([]PracticeSession, error)

	// RecentInteractions returns up to limit interactions for the user
	// across all subjects, newest first.
	RecentInteractions(ctx context.Context, userID string, limit int) ([]Interaction, error)

	// Progress returns the stored progress, or (nil, nil) when the user
	// has no progress record for the subject.
	Progress(ctx context.Context, userID, subject string) (*SubjectProgress, error)

	// Snapshots returns up to limit performance snapshots, newest first.
	Snapshots(ctx context.Context, userID, subject string, limit int) ([]PerformanceSnapshot, error)

	// UserFacts returns stored user facts, or (nil, nil) when unknown.
	UserFacts(ctx context.Context, userID string) (*UserFacts, error)

	// UserPreferences returns the opaque preference map, possibly empty.
	UserPreferences(ctx context.Context, userID string) (map[string]any, error)
}
