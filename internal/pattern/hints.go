package pattern

import "github.com/abhisek/tutorly/internal/history"

// HintMinSamples is the minimum hint-interaction count for the hint-type
// classifier to fire; below it the result is the conceptual default.
const HintMinSamples = 5

// HintDominanceFactor is how strongly one signal must outweigh the other
// before the classifier commits to it.
const HintDominanceFactor = 1.5

// classifyHintType weighs confusion signals (conceptual gaps) against
// stuck/repeat signals (procedural gaps) across hint interactions.
func classifyHintType(interactions []history.Interaction) HintType {
	var samples, conceptual, procedural int
	for _, in := range interactions {
		hc, ok := in.Context.(history.HintContext)
		if !ok {
			continue
		}
		samples++
		if hc.Confused {
			conceptual++
		}
		if hc.Stuck || hc.AttemptNumber >= 2 {
			procedural++
		}
	}

	if samples < HintMinSamples {
		return HintConceptual
	}

	switch {
	case float64(procedural) > float64(conceptual)*HintDominanceFactor:
		return HintProcedural
	case float64(conceptual) > float64(procedural)*HintDominanceFactor:
		return HintConceptual
	default:
		return HintExampleBased
	}
}
