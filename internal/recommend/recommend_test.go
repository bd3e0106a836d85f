package recommend

import (
	"strings"
	"testing"

	"github.com/abhisek/tutorly/internal/history"
	"github.com/abhisek/tutorly/internal/pattern"
	"github.com/abhisek/tutorly/internal/profile"
)

func TestBuild_FullBands(t *testing.T) {
	p := &pattern.LearningPattern{
		UserID:                "u1",
		Subject:               "math",
		StrugglingAreas:       []string{"fractions", "geometry"},
		ImprovingAreas:        []string{"algebra"},
		RecommendedDifficulty: 5,
	}
	prof := &profile.Profile{OptimalSessionLength: 30}
	progress := &history.SubjectProgress{StrongAreas: []string{"arithmetic"}}

	recs := Build(p, prof, progress)
	if len(recs) != 4 {
		t.Fatalf("len(recs) = %d, want 4", len(recs))
	}

	for i, area := range []string{"fractions", "geometry"} {
		r := recs[i]
		if r.PracticeType != TypeReview {
			t.Errorf("recs[%d].PracticeType = %q, want review", i, r.PracticeType)
		}
		if len(r.Topics) != 1 || r.Topics[0] != area {
			t.Errorf("recs[%d].Topics = %v, want [%s]", i, r.Topics, area)
		}
		if r.DifficultyLevel != 4 {
			t.Errorf("recs[%d].DifficultyLevel = %f, want 4", i, r.DifficultyLevel)
		}
		if r.EstimatedTime != 12 {
			t.Errorf("recs[%d].EstimatedTime = %d, want 12", i, r.EstimatedTime)
		}
		if r.Priority != PriorityHigh {
			t.Errorf("recs[%d].Priority = %q, want high", i, r.Priority)
		}
		if !strings.Contains(r.Reasoning, area) {
			t.Errorf("recs[%d].Reasoning = %q, should mention %s", i, r.Reasoning, area)
		}
	}

	nl := recs[2]
	if nl.PracticeType != TypeNewLearning || nl.Topics[0] != "algebra" {
		t.Errorf("recs[2] = %+v, want new_learning for algebra", nl)
	}
	if nl.DifficultyLevel != 5 || nl.EstimatedTime != 9 || nl.Priority != PriorityMedium {
		t.Errorf("recs[2] = %+v, want difficulty 5, time 9, medium priority", nl)
	}

	ch := recs[3]
	if ch.PracticeType != TypeChallenge || ch.Topics[0] != "arithmetic" {
		t.Errorf("recs[3] = %+v, want challenge for arithmetic", ch)
	}
	if ch.DifficultyLevel != 6 || ch.EstimatedTime != 9 || ch.Priority != PriorityLow {
		t.Errorf("recs[3] = %+v, want difficulty 6, time 9, low priority", ch)
	}
}

func TestBuild_EmptyInputs(t *testing.T) {
	p := &pattern.LearningPattern{RecommendedDifficulty: 5}
	prof := &profile.Profile{OptimalSessionLength: 25}

	if recs := Build(p, prof, nil); len(recs) != 0 {
		t.Errorf("len(recs) = %d, want 0", len(recs))
	}
}

func TestBuild_CappedAtFive(t *testing.T) {
	p := &pattern.LearningPattern{
		StrugglingAreas:       []string{"a", "b", "c"},
		ImprovingAreas:        []string{"d", "e", "f"},
		RecommendedDifficulty: 5,
	}
	prof := &profile.Profile{OptimalSessionLength: 30}
	progress := &history.SubjectProgress{StrongAreas: []string{"g", "h", "i"}}

	recs := Build(p, prof, progress)
	if len(recs) != MaxRecommendations {
		t.Fatalf("len(recs) = %d, want %d", len(recs), MaxRecommendations)
	}
	// Two per band before the overall cap: review, review, new, new, challenge.
	wantTypes := []PracticeType{TypeReview, TypeReview, TypeNewLearning, TypeNewLearning, TypeChallenge}
	for i, want := range wantTypes {
		if recs[i].PracticeType != want {
			t.Errorf("recs[%d].PracticeType = %q, want %q", i, recs[i].PracticeType, want)
		}
	}
}

func TestBuild_DifficultyStaysInRange(t *testing.T) {
	prof := &profile.Profile{OptimalSessionLength: 30}
	progress := &history.SubjectProgress{StrongAreas: []string{"arithmetic"}}

	low := &pattern.LearningPattern{
		StrugglingAreas:       []string{"fractions"},
		RecommendedDifficulty: 1,
	}
	for _, r := range Build(low, prof, progress) {
		if r.DifficultyLevel < pattern.MinDifficulty || r.DifficultyLevel > pattern.MaxDifficulty {
			t.Errorf("%s difficulty %f outside [1,10]", r.PracticeType, r.DifficultyLevel)
		}
	}

	high := &pattern.LearningPattern{
		StrugglingAreas:       []string{"fractions"},
		RecommendedDifficulty: 10,
	}
	for _, r := range Build(high, prof, progress) {
		if r.DifficultyLevel < pattern.MinDifficulty || r.DifficultyLevel > pattern.MaxDifficulty {
			t.Errorf("%s difficulty %f outside [1,10]", r.PracticeType, r.DifficultyLevel)
		}
	}
}

func TestBuild_SkipsBlankAreas(t *testing.T) {
	p := &pattern.LearningPattern{
		StrugglingAreas:       []string{"", "fractions"},
		RecommendedDifficulty: 5,
	}
	prof := &profile.Profile{OptimalSessionLength: 30}

	recs := Build(p, prof, nil)
	if len(recs) != 1 || recs[0].Topics[0] != "fractions" {
		t.Errorf("recs = %+v, want single fractions review", recs)
	}
}
