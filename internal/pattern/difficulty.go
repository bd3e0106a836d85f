package pattern

import "github.com/abhisek/tutorly/internal/history"

const (
	// DifficultyMinSessions is the scored-session count below which the
	// base difficulty is DifficultyDefault.
	DifficultyMinSessions = 3

	// DifficultyDefault is the midpoint used with insufficient history.
	DifficultyDefault = 5.0

	// MasteryHighThreshold / MasteryLowThreshold bound the mean-mastery
	// adjustment of +-1 around the accuracy-derived base.
	MasteryHighThreshold = 0.8
	MasteryLowThreshold  = 0.5

	// MinDifficulty / MaxDifficulty bound every difficulty value.
	MinDifficulty = 1.0
	MaxDifficulty = 10.0
)

// recommendDifficulty derives a starting difficulty from recent mean
// accuracy, then adjusts one level by mean mastery. The bucket checks run
// in the original decision order, so sub-50% accuracy is decided before
// the sub-65% check.
func recommendDifficulty(sessions []history.PracticeSession, mastery map[string]float64) float64 {
	base := DifficultyDefault

	window := firstN(sessions, TrendWindow)
	var sum float64
	var scored int
	for i := range window {
		if acc := window[i].Accuracy(); acc >= 0 {
			sum += acc * 100
			scored++
		}
	}

	if scored >= DifficultyMinSessions {
		mean := sum / float64(scored)
		switch {
		case mean >= 85:
			base = 7
		case mean >= 75:
			base = 6
		case mean < 50:
			base = 3
		case mean < 65:
			base = 4
		}
	}

	if len(mastery) > 0 {
		var total float64
		for _, v := range mastery {
			total += v
		}
		switch meanMastery := total / float64(len(mastery)); {
		case meanMastery > MasteryHighThreshold:
			base++
		case meanMastery < MasteryLowThreshold:
			base--
		}
	}

	return ClampDifficulty(base)
}

// ClampDifficulty bounds v to [MinDifficulty, MaxDifficulty].
func ClampDifficulty(v float64) float64 {
	if v < MinDifficulty {
		return MinDifficulty
	}
	if v > MaxDifficulty {
		return MaxDifficulty
	}
	return v
}

// RoundHalf rounds v to the nearest 0.5 step.
func RoundHalf(v float64) float64 {
	doubled := v * 2
	rounded := float64(int(doubled + 0.5))
	if doubled < 0 {
		rounded = float64(int(doubled - 0.5))
	}
	return rounded / 2
}
