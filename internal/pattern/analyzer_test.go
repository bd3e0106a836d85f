package pattern

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/tutorly/internal/history"
)

func TestAnalyze_IdempotentExceptTimestamp(t *testing.T) {
	in := Inputs{
		UserID:  "u1",
		Subject: "math",
		Sessions: []history.PracticeSession{
			makeSession(1, 25, 10, 8, "algebra", "fractions"),
			makeSession(2, 25, 10, 4, "fractions"),
			makeSession(3, 25, 10, 5, "fractions"),
			makeSession(4, 25, 10, 4, "fractions"),
			makeSession(5, 25, 10, 9, "algebra"),
		},
		Interactions: []history.Interaction{
			hintInteraction(true, false, 1),
			hintInteraction(false, true, 2),
		},
		Progress: &history.SubjectProgress{
			TopicScores: map[string]float64{"algebra": 70},
			WeakAreas:   []string{"fractions"},
		},
		Snapshots: []history.PerformanceSnapshot{
			makeSnapshot(1, 66),
			makeSnapshot(30, 60),
		},
	}

	first := Analyze(in)
	second := Analyze(in)

	second.LastAnalyzed = first.LastAnalyzed
	require.Equal(t, first, second)
}

func TestAnalyze_EmptyHistoryYieldsDefaults(t *testing.T) {
	p := Analyze(Inputs{UserID: "u1", Subject: "math"})

	if p.Style != StyleMixed {
		t.Errorf("style = %q, want %q", p.Style, StyleMixed)
	}
	if p.PreferredHintType != HintConceptual {
		t.Errorf("hint type = %q, want %q", p.PreferredHintType, HintConceptual)
	}
	if p.AttentionSpan != SpanMedium {
		t.Errorf("span = %q, want %q", p.AttentionSpan, SpanMedium)
	}
	if p.RecommendedDifficulty != DifficultyDefault {
		t.Errorf("difficulty = %f, want %f", p.RecommendedDifficulty, DifficultyDefault)
	}
	if p.ImprovementRate != 0 {
		t.Errorf("improvement rate = %f, want 0", p.ImprovementRate)
	}
	if len(p.StrugglingAreas) != 0 || len(p.ImprovingAreas) != 0 {
		t.Errorf("areas should be empty: %v / %v", p.StrugglingAreas, p.ImprovingAreas)
	}
	if p.LastAnalyzed.IsZero() {
		t.Error("LastAnalyzed not stamped")
	}
}

func TestAnalyze_AreaInvariants(t *testing.T) {
	progress := &history.SubjectProgress{
		WeakAreas:   []string{"a", "b", "c", "d", "e", "f", "a"},
		StrongAreas: []string{"x", "x", "y", "z", "w", "v", "u"},
	}
	p := Analyze(Inputs{UserID: "u1", Subject: "math", Progress: progress})

	for name, areas := range map[string][]string{
		"struggling": p.StrugglingAreas,
		"improving":  p.ImprovingAreas,
	} {
		if len(areas) > MaxAreas {
			t.Errorf("%s has %d entries, cap is %d", name, len(areas), MaxAreas)
		}
		seen := map[string]bool{}
		for _, a := range areas {
			if seen[a] {
				t.Errorf("%s contains duplicate %q", name, a)
			}
			seen[a] = true
		}
	}
}
