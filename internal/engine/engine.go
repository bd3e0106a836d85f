// Package engine is the adaptive-learning entry point the rest of the
// platform calls. Each operation fetches its inputs from the history
// repository concurrently, joins, then runs synchronous CPU-bound
// computation. No state is shared across invocations; concurrent calls
// for the same user are safe and last-writer-wins on the pattern cache.
package engine

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/tutorly/internal/adjust"
	"github.com/abhisek/tutorly/internal/history"
	"github.com/abhisek/tutorly/internal/pattern"
	"github.com/abhisek/tutorly/internal/profile"
	"github.com/abhisek/tutorly/internal/recommend"
)

// Fetch limits per analysis request.
const (
	SessionLimit     = 30
	InteractionLimit = 100
	SnapshotLimit    = 10

	// AdjustSessionLimit is how many recent sessions a difficulty
	// decision considers.
	AdjustSessionLimit = 5
)

// Engine computes learning patterns, profiles, difficulty adjustments,
// and content recommendations for one user+subject at a time.
type Engine struct {
	repo  history.Repository
	store pattern.Store
	log   zerolog.Logger
}

// New creates an Engine. store may be nil, in which case computed
// patterns are simply not cached.
func New(repo history.Repository, store pattern.Store, log zerolog.Logger) *Engine {
	return &Engine{repo: repo, store: store, log: log}
}

// inputs is the joined result of the concurrent history fetches.
type inputs struct {
	sessions     []history.PracticeSession
	interactions []history.Interaction
	progress     *history.SubjectProgress
	snapshots    []history.PerformanceSnapshot
}

// fetchInputs issues the history fetches concurrently and joins them.
// Session and interaction fetch failures propagate; progress and snapshot
// failures downgrade to "no data".
func (e *Engine) fetchInputs(ctx context.Context, userID, subject string) (*inputs, error) {
	var in inputs

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sessions, err := e.repo.RecentSessions(gctx, userID, subject, SessionLimit)
		if err != nil {
			return fmt.Errorf("fetch sessions: %w", err)
		}
		in.sessions = sessions
		return nil
	})
	g.Go(func() error {
		interactions, err := e.repo.RecentInteractions(gctx, userID, InteractionLimit)
		if err != nil {
			return fmt.Errorf("fetch interactions: %w", err)
		}
		in.interactions = interactions
		return nil
	})
	g.Go(func() error {
		progress, err := e.repo.Progress(gctx, userID, subject)
		if err != nil {
			e.log.Debug().Err(err).Str("user", userID).Msg("progress unavailable, using defaults")
			return nil
		}
		in.progress = progress
		return nil
	})
	g.Go(func() error {
		snapshots, err := e.repo.Snapshots(gctx, userID, subject, SnapshotLimit)
		if err != nil {
			e.log.Debug().Err(err).Str("user", userID).Msg("snapshots unavailable, using defaults")
			return nil
		}
		in.snapshots = snapshots
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &in, nil
}

// Analyze computes a fresh LearningPattern from the user's history and
// upserts it to the pattern store on a best-effort basis. A store failure
// is logged and never surfaces to the caller.
func (e *Engine) Analyze(ctx context.Context, userID, subject string) (*pattern.LearningPattern, error) {
	in, err := e.fetchInputs(ctx, userID, subject)
	if err != nil {
		return nil, err
	}

	p := pattern.Analyze(pattern.Inputs{
		UserID:       userID,
		Subject:      subject,
		Sessions:     in.sessions,
		Interactions: in.interactions,
		Progress:     in.progress,
		Snapshots:    in.snapshots,
	})

	e.cachePattern(ctx, p)
	return p, nil
}

// BuildProfile computes a fresh pattern and derives a personalization
// profile from it plus session history and user facts.
func (e *Engine) BuildProfile(ctx context.Context, userID, subject string) (*profile.Profile, error) {
	in, err := e.fetchInputs(ctx, userID, subject)
	if err != nil {
		return nil, err
	}

	facts, err := e.repo.UserFacts(ctx, userID)
	if err != nil {
		e.log.Debug().Err(err).Str("user", userID).Msg("user facts unavailable, using defaults")
		facts = nil
	}

	p := e.analyzeAndCache(ctx, userID, subject, in)
	return profile.Build(p, in.sessions, facts), nil
}

// AdjustDifficulty evaluates recent performance against the current
// difficulty and returns a recommended difficulty with confidence.
func (e *Engine) AdjustDifficulty(ctx context.Context, userID, subject string, current float64) (*adjust.Adjustment, error) {
	in, err := e.fetchInputs(ctx, userID, subject)
	if err != nil {
		return nil, err
	}

	p := e.analyzeAndCache(ctx, userID, subject, in)

	recent := in.sessions
	if len(recent) > AdjustSessionLimit {
		recent = recent[:AdjustSessionLimit]
	}
	return adjust.Decide(recent, current, p), nil
}

// Recommend returns up to five ranked content recommendations.
func (e *Engine) Recommend(ctx context.Context, userID, subject string) ([]recommend.Recommendation, error) {
	in, err := e.fetchInputs(ctx, userID, subject)
	if err != nil {
		return nil, err
	}

	facts, err := e.repo.UserFacts(ctx, userID)
	if err != nil {
		facts = nil
	}

	p := e.analyzeAndCache(ctx, userID, subject, in)
	prof := profile.Build(p, in.sessions, facts)
	return recommend.Build(p, prof, in.progress), nil
}

// analyzeAndCache runs pattern analysis over already-fetched inputs and
// performs the best-effort cache write.
func (e *Engine) analyzeAndCache(ctx context.Context, userID, subject string, in *inputs) *pattern.LearningPattern {
	p := pattern.Analyze(pattern.Inputs{
		UserID:       userID,
		Subject:      subject,
		Sessions:     in.sessions,
		Interactions: in.interactions,
		Progress:     in.progress,
		Snapshots:    in.snapshots,
	})
	e.cachePattern(ctx, p)
	return p
}

func (e *Engine) cachePattern(ctx context.Context, p *pattern.LearningPattern) {
	if e.store == nil {
		return
	}
	if err := e.store.Upsert(ctx, p); err != nil {
		e.log.Warn().Err(err).
			Str("user", p.UserID).
			Str("subject", p.Subject).
			Msg("pattern cache write failed")
	}
}
