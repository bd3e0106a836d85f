package pattern

import "github.com/abhisek/tutorly/internal/history"

// StyleMinInteractions is the minimum interaction count for the style
// classifier to fire; below it the result is always StyleMixed.
const StyleMinInteractions = 10

// StyleRatioThreshold is the share of one interaction kind (exclusive)
// needed to classify a dominant style.
const StyleRatioThreshold = 0.6

// classifyStyle derives a learning style from interaction mix. Heavy
// explanation use reads as analytical, heavy hint use as trial-and-error.
// This signal never yields StyleVisual; visual classification needs a UI
// telemetry source this engine does not consume.
func classifyStyle(interactions []history.Interaction) Style {
	if len(interactions) < StyleMinInteractions {
		return StyleMixed
	}

	var hints, explanations int
	for _, in := range interactions {
		switch in.Kind {
		case history.KindHint:
			hints++
		case history.KindExplanation:
			explanations++
		}
	}

	total := float64(len(interactions))
	switch {
	case float64(explanations)/total > StyleRatioThreshold:
		return StyleAnalytical
	case float64(hints)/total > StyleRatioThreshold:
		return StyleTrialAndError
	default:
		return StyleMixed
	}
}
