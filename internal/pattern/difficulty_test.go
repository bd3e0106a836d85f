package pattern

import (
	"math"
	"testing"

	"github.com/abhisek/tutorly/internal/history"
)

func accuracySessions(accuracies ...float64) []history.PracticeSession {
	var out []history.PracticeSession
	for i, acc := range accuracies {
		correct := int(acc * 20)
		out = append(out, makeSession(i, 20, 20, correct, "algebra"))
	}
	return out
}

func TestRecommendDifficulty_Buckets(t *testing.T) {
	tests := []struct {
		name     string
		accuracy float64
		want     float64
	}{
		{"high accuracy", 0.90, 7},
		{"good accuracy", 0.80, 6},
		{"low accuracy", 0.45, 3},
		{"below target", 0.60, 4},
		{"middling", 0.70, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := accuracySessions(tt.accuracy, tt.accuracy, tt.accuracy)
			if got := recommendDifficulty(sessions, nil); got != tt.want {
				t.Errorf("got %f, want %f", got, tt.want)
			}
		})
	}
}

func TestRecommendDifficulty_TooFewSessionsDefaults(t *testing.T) {
	sessions := accuracySessions(0.95, 0.95)
	if got := recommendDifficulty(sessions, nil); got != DifficultyDefault {
		t.Errorf("got %f, want %f", got, DifficultyDefault)
	}
}

func TestRecommendDifficulty_MasteryAdjustment(t *testing.T) {
	sessions := accuracySessions(0.70, 0.70, 0.70) // base 5

	high := map[string]float64{"a": 0.9, "b": 0.85}
	if got := recommendDifficulty(sessions, high); got != 6 {
		t.Errorf("high mastery: got %f, want 6", got)
	}

	low := map[string]float64{"a": 0.3, "b": 0.4}
	if got := recommendDifficulty(sessions, low); got != 4 {
		t.Errorf("low mastery: got %f, want 4", got)
	}
}

func TestRecommendDifficulty_AlwaysInRangeAndHalfStep(t *testing.T) {
	accuracies := []float64{0, 0.25, 0.5, 0.65, 0.75, 0.85, 1}
	masteries := []map[string]float64{
		nil,
		{"a": 0},
		{"a": 1},
		{"a": 0.49, "b": 0.51},
	}

	for _, acc := range accuracies {
		for _, m := range masteries {
			got := recommendDifficulty(accuracySessions(acc, acc, acc, acc, acc), m)
			if got < MinDifficulty || got > MaxDifficulty {
				t.Errorf("accuracy %.2f: %f outside [1,10]", acc, got)
			}
			if r := math.Mod(got*2, 1); r != 0 {
				t.Errorf("accuracy %.2f: %f not a multiple of 0.5", acc, got)
			}
		}
	}
}

func TestRoundHalf(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{4.2, 4.0},
		{4.25, 4.5},
		{4.3, 4.5},
		{4.6, 4.5},
		{4.75, 5.0},
		{5.0, 5.0},
	}
	for _, tt := range tests {
		if got := RoundHalf(tt.in); got != tt.want {
			t.Errorf("RoundHalf(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}

func TestClampDifficulty(t *testing.T) {
	if got := ClampDifficulty(0); got != MinDifficulty {
		t.Errorf("got %f, want %f", got, MinDifficulty)
	}
	if got := ClampDifficulty(11.5); got != MaxDifficulty {
		t.Errorf("got %f, want %f", got, MaxDifficulty)
	}
	if got := ClampDifficulty(6.5); got != 6.5 {
		t.Errorf("got %f, want 6.5", got)
	}
}
