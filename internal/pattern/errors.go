package pattern

import (
	"sort"

	"github.com/abhisek/tutorly/internal/history"
)

const (
	// ErrorTopicMinSessions is how many low-accuracy sessions a topic
	// must appear in before it is tagged as a frequent-error topic.
	ErrorTopicMinSessions = 3

	// ErrorAccuracyThreshold is the session accuracy (exclusive) below
	// which the session counts against its topics.
	ErrorAccuracyThreshold = 0.60

	// ConfusionRateFactor: confusion-flagged interactions exceeding this
	// multiple of the session count tag a high confusion rate.
	ConfusionRateFactor = 2

	// TagHighConfusion marks a learner whose help requests signal
	// confusion far more often than their session volume explains.
	TagHighConfusion = "high_confusion_rate"

	// TagFrequentErrorsPrefix prefixes per-topic frequent-error tags.
	TagFrequentErrorsPrefix = "frequent_errors_"
)

// detectErrorPatterns tags recurring failure signals: topics repeatedly
// practiced at low accuracy, and an outsized confusion rate. Tags are
// sorted so repeated analyses over unchanged history are identical.
func detectErrorPatterns(sessions []history.PracticeSession, interactions []history.Interaction) []string {
	lowAccuracy := make(map[string]int)
	for i := range sessions {
		s := &sessions[i]
		acc := s.Accuracy()
		if acc < 0 || acc >= ErrorAccuracyThreshold {
			continue
		}
		seen := make(map[string]bool, len(s.Topics))
		for _, topic := range s.Topics {
			if topic == "" || seen[topic] {
				continue
			}
			seen[topic] = true
			lowAccuracy[topic]++
		}
	}

	var tags []string
	for topic, n := range lowAccuracy {
		if n >= ErrorTopicMinSessions {
			tags = append(tags, TagFrequentErrorsPrefix+topic)
		}
	}
	sort.Strings(tags)

	var confused int
	for _, in := range interactions {
		if hc, ok := in.Context.(history.HintContext); ok && (hc.Confused || hc.Stuck) {
			confused++
		}
	}
	if confused > ConfusionRateFactor*len(sessions) {
		tags = append(tags, TagHighConfusion)
	}

	return tags
}
