package pattern

import (
	"math"
	"testing"

	"github.com/abhisek/tutorly/internal/history"
)

func TestBlendMastery_SeedsFromStoredScores(t *testing.T) {
	progress := &history.SubjectProgress{
		TopicScores: map[string]float64{"algebra": 80, "geometry": 45},
	}

	levels := blendMastery(nil, progress)
	if got := levels["algebra"]; got != 0.8 {
		t.Errorf("algebra = %f, want 0.8", got)
	}
	if got := levels["geometry"]; got != 0.45 {
		t.Errorf("geometry = %f, want 0.45", got)
	}
}

func TestBlendMastery_BlendsRecentAccuracy(t *testing.T) {
	progress := &history.SubjectProgress{
		TopicScores: map[string]float64{"algebra": 50},
	}
	sessions := []history.PracticeSession{
		makeSession(1, 20, 10, 9, "algebra"),
	}

	levels := blendMastery(sessions, progress)
	want := 0.7*0.5 + 0.3*0.9
	if got := levels["algebra"]; math.Abs(got-want) > 1e-9 {
		t.Errorf("algebra = %f, want %f", got, want)
	}
}

func TestBlendMastery_UnseededTopicSetDirectly(t *testing.T) {
	sessions := []history.PracticeSession{
		makeSession(1, 20, 10, 6, "fractions"),
	}

	levels := blendMastery(sessions, nil)
	if got := levels["fractions"]; got != 0.6 {
		t.Errorf("fractions = %f, want 0.6", got)
	}
}

func TestBlendMastery_TooFewAttemptsLeavesSeed(t *testing.T) {
	progress := &history.SubjectProgress{
		TopicScores: map[string]float64{"algebra": 50},
	}
	sessions := []history.PracticeSession{
		makeSession(1, 20, 4, 4, "algebra"),
	}

	levels := blendMastery(sessions, progress)
	if got := levels["algebra"]; got != 0.5 {
		t.Errorf("algebra = %f, want 0.5 (unblended)", got)
	}
}

func TestBlendMastery_AllValuesInUnitInterval(t *testing.T) {
	progress := &history.SubjectProgress{
		TopicScores: map[string]float64{"a": 150, "b": -20, "c": 100},
	}
	sessions := []history.PracticeSession{
		makeSession(1, 20, 20, 20, "a", "b", "c", "d"),
	}

	for topic, v := range blendMastery(sessions, progress) {
		if v < 0 || v > 1 {
			t.Errorf("mastery[%s] = %f outside [0,1]", topic, v)
		}
	}
}
