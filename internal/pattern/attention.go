package pattern

import "github.com/abhisek/tutorly/internal/history"

const (
	// SpanMinSessions is the minimum completed-session count for the
	// attention classifier to fire; below it the result is SpanMedium.
	SpanMinSessions = 5

	// ShortSpanMinutes is the mean duration (exclusive) below which a
	// learner is classified short-span.
	ShortSpanMinutes = 15.0

	// LongSpanMinutes is the mean duration (exclusive) above which a
	// learner is classified long-span.
	LongSpanMinutes = 30.0
)

// classifySpan buckets the mean duration of completed sessions.
func classifySpan(sessions []history.PracticeSession) AttentionSpan {
	mean, completed := meanSessionMinutes(sessions)
	if completed < SpanMinSessions {
		return SpanMedium
	}
	switch {
	case mean < ShortSpanMinutes:
		return SpanShort
	case mean > LongSpanMinutes:
		return SpanLong
	default:
		return SpanMedium
	}
}

// meanSessionMinutes returns the mean duration of completed sessions in
// minutes and how many sessions were completed.
func meanSessionMinutes(sessions []history.PracticeSession) (float64, int) {
	var total float64
	var completed int
	for i := range sessions {
		s := &sessions[i]
		if !s.Completed() {
			continue
		}
		completed++
		total += s.Duration().Minutes()
	}
	if completed == 0 {
		return 0, 0
	}
	return total / float64(completed), completed
}
