package pattern

import (
	"testing"

	"github.com/abhisek/tutorly/internal/history"
)

func TestClassifyHintType_TooFewSamplesDefaultsConceptual(t *testing.T) {
	interactions := []history.Interaction{
		hintInteraction(false, true, 2),
		hintInteraction(false, true, 3),
	}
	if got := classifyHintType(interactions); got != HintConceptual {
		t.Errorf("got %q, want %q", got, HintConceptual)
	}
}

func TestClassifyHintType_StuckDominantIsProcedural(t *testing.T) {
	var interactions []history.Interaction
	for i := 0; i < 6; i++ {
		interactions = append(interactions, hintInteraction(false, true, 1))
	}
	interactions = append(interactions, hintInteraction(true, false, 1))

	if got := classifyHintType(interactions); got != HintProcedural {
		t.Errorf("got %q, want %q", got, HintProcedural)
	}
}

func TestClassifyHintType_ConfusedDominantIsConceptual(t *testing.T) {
	var interactions []history.Interaction
	for i := 0; i < 6; i++ {
		interactions = append(interactions, hintInteraction(true, false, 1))
	}
	interactions = append(interactions, hintInteraction(false, true, 1))

	if got := classifyHintType(interactions); got != HintConceptual {
		t.Errorf("got %q, want %q", got, HintConceptual)
	}
}

func TestClassifyHintType_BalancedIsExampleBased(t *testing.T) {
	var interactions []history.Interaction
	for i := 0; i < 4; i++ {
		interactions = append(interactions, hintInteraction(true, false, 1))
		interactions = append(interactions, hintInteraction(false, true, 1))
	}
	if got := classifyHintType(interactions); got != HintExampleBased {
		t.Errorf("got %q, want %q", got, HintExampleBased)
	}
}

func TestClassifyHintType_RepeatAttemptCountsProcedural(t *testing.T) {
	var interactions []history.Interaction
	for i := 0; i < 6; i++ {
		interactions = append(interactions, hintInteraction(false, false, 2))
	}
	if got := classifyHintType(interactions); got != HintProcedural {
		t.Errorf("got %q, want %q", got, HintProcedural)
	}
}

func TestClassifyHintType_IgnoresNonHintInteractions(t *testing.T) {
	// Plenty of non-hint interactions but only two hint samples.
	interactions := repeatInteractions(history.KindChat, 20)
	interactions = append(interactions, hintInteraction(false, true, 2))
	interactions = append(interactions, hintInteraction(false, true, 2))

	if got := classifyHintType(interactions); got != HintConceptual {
		t.Errorf("got %q, want %q", got, HintConceptual)
	}
}
