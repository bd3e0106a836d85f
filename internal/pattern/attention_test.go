package pattern

import (
	"testing"

	"github.com/abhisek/tutorly/internal/history"
)

func sessionsWithMinutes(minutes ...int) []history.PracticeSession {
	var out []history.PracticeSession
	for i, m := range minutes {
		out = append(out, makeSession(i, m, 10, 7, "algebra"))
	}
	return out
}

func TestClassifySpan_TooFewCompletedDefaultsMedium(t *testing.T) {
	sessions := sessionsWithMinutes(5, 5, 5, 5)
	if got := classifySpan(sessions); got != SpanMedium {
		t.Errorf("got %q, want %q", got, SpanMedium)
	}
}

func TestClassifySpan_ShortSessions(t *testing.T) {
	sessions := sessionsWithMinutes(10, 12, 8, 11, 9)
	if got := classifySpan(sessions); got != SpanShort {
		t.Errorf("got %q, want %q", got, SpanShort)
	}
}

func TestClassifySpan_LongSessions(t *testing.T) {
	sessions := sessionsWithMinutes(40, 45, 35, 50, 38)
	if got := classifySpan(sessions); got != SpanLong {
		t.Errorf("got %q, want %q", got, SpanLong)
	}
}

func TestClassifySpan_MediumSessions(t *testing.T) {
	sessions := sessionsWithMinutes(20, 25, 22, 28, 24)
	if got := classifySpan(sessions); got != SpanMedium {
		t.Errorf("got %q, want %q", got, SpanMedium)
	}
}

func TestClassifySpan_IncompleteSessionsExcluded(t *testing.T) {
	// Five long completed sessions plus open ones; the open sessions
	// must not pull the mean down.
	sessions := sessionsWithMinutes(40, 45, 42, 41, 44)
	for i := 0; i < 10; i++ {
		sessions = append(sessions, makeOpenSession(i+10, 5, 2, "algebra"))
	}
	if got := classifySpan(sessions); got != SpanLong {
		t.Errorf("got %q, want %q", got, SpanLong)
	}
}
