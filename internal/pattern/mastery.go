package pattern

import "github.com/abhisek/tutorly/internal/history"

const (
	// MasteryMinAttempts is the recent-attempt count a topic needs before
	// recent accuracy influences its mastery level.
	MasteryMinAttempts = 5

	// MasteryBlendExisting and MasteryBlendRecent weight the stored level
	// against recent performance when both exist.
	MasteryBlendExisting = 0.7
	MasteryBlendRecent   = 0.3
)

// blendMastery seeds per-topic mastery from stored topic scores and folds
// in recent session accuracy for topics with enough fresh evidence. Every
// value stays in [0,1]. A session's attempt counts accrue to each topic it
// covered.
func blendMastery(sessions []history.PracticeSession, progress *history.SubjectProgress) map[string]float64 {
	levels := make(map[string]float64)
	if progress != nil {
		for topic, score := range progress.TopicScores {
			levels[topic] = clamp01(score / 100)
		}
	}

	type tally struct{ attempted, correct int }
	recent := make(map[string]*tally)
	for i := range sessions {
		s := &sessions[i]
		if s.QuestionsAttempted == 0 {
			continue
		}
		for _, topic := range s.Topics {
			if topic == "" {
				continue
			}
			t := recent[topic]
			if t == nil {
				t = &tally{}
				recent[topic] = t
			}
			t.attempted += s.QuestionsAttempted
			t.correct += s.QuestionsCorrect
		}
	}

	for topic, t := range recent {
		if t.attempted < MasteryMinAttempts {
			continue
		}
		acc := float64(t.correct) / float64(t.attempted)
		if existing, ok := levels[topic]; ok {
			levels[topic] = clamp01(MasteryBlendExisting*existing + MasteryBlendRecent*acc)
		} else {
			levels[topic] = clamp01(acc)
		}
	}

	return levels
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
