package pattern

import (
	"sort"

	"github.com/abhisek/tutorly/internal/history"
)

const (
	// TrendWindow is the session-window size used for short-horizon
	// trend comparisons.
	TrendWindow = 5

	// RateMinSnapshots is the snapshot count needed to compute the
	// improvement rate from long-horizon snapshots.
	RateMinSnapshots = 2

	// RateMinSessions is the session count needed for the windowed
	// fallback comparison (two full TrendWindow windows).
	RateMinSessions = 10

	// StrugglingAccuracyPct is the recent-window topic accuracy
	// (exclusive, percent) below which a topic is struggling.
	StrugglingAccuracyPct = 60.0

	// ImprovingDeltaPct is the window-to-window accuracy gain (exclusive,
	// percentage points) above which a topic is improving.
	ImprovingDeltaPct = 15.0

	// MaxAreas caps the struggling and improving lists.
	MaxAreas = 5
)

// improvementRate measures overall progress as a signed fraction. It
// prefers long-horizon snapshots; with fewer than RateMinSnapshots it
// falls back to comparing two recent session windows, and with too little
// data of either kind it reports 0.
func improvementRate(sessions []history.PracticeSession, snapshots []history.PerformanceSnapshot) float64 {
	// Snapshots arrive newest first.
	if len(snapshots) >= RateMinSnapshots {
		latest := snapshots[0].OverallScore
		earliest := snapshots[len(snapshots)-1].OverallScore
		if earliest > 0 {
			return (latest - earliest) / earliest
		}
	}

	if len(sessions) >= RateMinSessions {
		recent := windowAccuracy(sessions[:TrendWindow])
		previous := windowAccuracy(sessions[TrendWindow : 2*TrendWindow])
		if previous > 0 {
			return (recent - previous) / previous
		}
	}

	return 0
}

// windowAccuracy is the mean accuracy over scored sessions in a window.
func windowAccuracy(window []history.PracticeSession) float64 {
	var sum float64
	var n int
	for i := range window {
		if acc := window[i].Accuracy(); acc >= 0 {
			sum += acc
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// classifyAreas merges stored weak/strong areas with per-topic trend
// detection over two recent session windows. Both lists are deduplicated
// and capped at MaxAreas, stored areas first.
func classifyAreas(sessions []history.PracticeSession, progress *history.SubjectProgress) (struggling, improving []string) {
	var weak, strong []string
	if progress != nil {
		weak = progress.WeakAreas
		strong = progress.StrongAreas
	}

	recent := topicAccuracyPct(firstN(sessions, TrendWindow))
	previous := topicAccuracyPct(windowAfter(sessions, TrendWindow))

	var trendStruggling, trendImproving []string
	for topic, acc := range recent {
		if acc < StrugglingAccuracyPct {
			trendStruggling = append(trendStruggling, topic)
		}
		if prev, ok := previous[topic]; ok && acc-prev > ImprovingDeltaPct {
			trendImproving = append(trendImproving, topic)
		}
	}
	sort.Strings(trendStruggling)
	sort.Strings(trendImproving)

	struggling = mergeAreas(weak, trendStruggling)
	improving = mergeAreas(strong, trendImproving)
	return struggling, improving
}

// topicAccuracyPct aggregates per-topic accuracy (percent) over a window.
func topicAccuracyPct(window []history.PracticeSession) map[string]float64 {
	type tally struct{ attempted, correct int }
	tallies := make(map[string]*tally)
	for i := range window {
		s := &window[i]
		if s.QuestionsAttempted == 0 {
			continue
		}
		for _, topic := range s.Topics {
			if topic == "" {
				continue
			}
			t := tallies[topic]
			if t == nil {
				t = &tally{}
				tallies[topic] = t
			}
			t.attempted += s.QuestionsAttempted
			t.correct += s.QuestionsCorrect
		}
	}

	out := make(map[string]float64, len(tallies))
	for topic, t := range tallies {
		out[topic] = 100 * float64(t.correct) / float64(t.attempted)
	}
	return out
}

func mergeAreas(stored, detected []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, lists := range [][]string{stored, detected} {
		for _, area := range lists {
			if area == "" || seen[area] {
				continue
			}
			seen[area] = true
			out = append(out, area)
			if len(out) == MaxAreas {
				return out
			}
		}
	}
	return out
}

func firstN(sessions []history.PracticeSession, n int) []history.PracticeSession {
	if len(sessions) < n {
		return sessions
	}
	return sessions[:n]
}

func windowAfter(sessions []history.PracticeSession, n int) []history.PracticeSession {
	if len(sessions) <= n {
		return nil
	}
	if len(sessions) < 2*n {
		return sessions[n:]
	}
	return sessions[n : 2*n]
}
