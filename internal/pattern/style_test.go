package pattern

import (
	"testing"

	"github.com/abhisek/tutorly/internal/history"
)

func TestClassifyStyle_TooFewInteractionsAlwaysMixed(t *testing.T) {
	// 9 hints is a 100% hint ratio, but below the minimum sample size
	// the classifier must stay mixed.
	got := classifyStyle(repeatInteractions(history.KindHint, StyleMinInteractions-1))
	if got != StyleMixed {
		t.Errorf("got %q, want %q", got, StyleMixed)
	}
}

func TestClassifyStyle_ExplanationHeavyIsAnalytical(t *testing.T) {
	interactions := append(
		repeatInteractions(history.KindExplanation, 7),
		repeatInteractions(history.KindChat, 3)...,
	)
	if got := classifyStyle(interactions); got != StyleAnalytical {
		t.Errorf("got %q, want %q", got, StyleAnalytical)
	}
}

func TestClassifyStyle_HintHeavyIsTrialAndError(t *testing.T) {
	interactions := append(
		repeatInteractions(history.KindHint, 8),
		repeatInteractions(history.KindFeedback, 2)...,
	)
	if got := classifyStyle(interactions); got != StyleTrialAndError {
		t.Errorf("got %q, want %q", got, StyleTrialAndError)
	}
}

func TestClassifyStyle_BalancedIsMixed(t *testing.T) {
	interactions := append(
		repeatInteractions(history.KindHint, 5),
		repeatInteractions(history.KindExplanation, 5)...,
	)
	if got := classifyStyle(interactions); got != StyleMixed {
		t.Errorf("got %q, want %q", got, StyleMixed)
	}
}

func TestClassifyStyle_RatioAtThresholdIsMixed(t *testing.T) {
	// Exactly 60% explanations does not cross the strict threshold.
	interactions := append(
		repeatInteractions(history.KindExplanation, 6),
		repeatInteractions(history.KindChat, 4)...,
	)
	if got := classifyStyle(interactions); got != StyleMixed {
		t.Errorf("got %q, want %q", got, StyleMixed)
	}
}
