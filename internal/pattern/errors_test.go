package pattern

import (
	"slices"
	"testing"

	"github.com/abhisek/tutorly/internal/history"
)

func TestDetectErrorPatterns_FrequentErrorTopic(t *testing.T) {
	// fractions appears in three sessions below 60% accuracy.
	sessions := []history.PracticeSession{
		makeSession(1, 20, 10, 5, "fractions", "decimals"),
		makeSession(2, 20, 10, 4, "fractions"),
		makeSession(3, 20, 10, 5, "fractions"),
		makeSession(4, 20, 10, 9, "decimals"),
	}

	tags := detectErrorPatterns(sessions, nil)
	if !slices.Contains(tags, "frequent_errors_fractions") {
		t.Errorf("tags %v missing frequent_errors_fractions", tags)
	}
	if slices.Contains(tags, "frequent_errors_decimals") {
		t.Errorf("tags %v should not include decimals", tags)
	}
}

func TestDetectErrorPatterns_TwoLowSessionsNotEnough(t *testing.T) {
	sessions := []history.PracticeSession{
		makeSession(1, 20, 10, 4, "geometry"),
		makeSession(2, 20, 10, 5, "geometry"),
	}
	if tags := detectErrorPatterns(sessions, nil); len(tags) != 0 {
		t.Errorf("got tags %v, want none", tags)
	}
}

func TestDetectErrorPatterns_HighConfusionRate(t *testing.T) {
	sessions := []history.PracticeSession{
		makeSession(1, 20, 10, 9, "algebra"),
	}
	var interactions []history.Interaction
	for i := 0; i < 3; i++ {
		interactions = append(interactions, hintInteraction(true, false, 1))
	}

	tags := detectErrorPatterns(sessions, interactions)
	if !slices.Contains(tags, TagHighConfusion) {
		t.Errorf("tags %v missing %q", tags, TagHighConfusion)
	}
}

func TestDetectErrorPatterns_ConfusionAtBoundaryNotTagged(t *testing.T) {
	// Exactly 2x the session count does not exceed the threshold.
	sessions := []history.PracticeSession{
		makeSession(1, 20, 10, 9, "algebra"),
	}
	interactions := []history.Interaction{
		hintInteraction(true, false, 1),
		hintInteraction(false, true, 1),
	}

	tags := detectErrorPatterns(sessions, interactions)
	if slices.Contains(tags, TagHighConfusion) {
		t.Errorf("tags %v should not include %q", tags, TagHighConfusion)
	}
}

func TestDetectErrorPatterns_ZeroAttemptSessionsIgnored(t *testing.T) {
	var sessions []history.PracticeSession
	for i := 0; i < 5; i++ {
		sessions = append(sessions, makeSession(i, 20, 0, 0, "fractions"))
	}
	if tags := detectErrorPatterns(sessions, nil); len(tags) != 0 {
		t.Errorf("got tags %v, want none", tags)
	}
}
