package pattern

import (
	"time"

	"github.com/abhisek/tutorly/internal/history"
)

// Helpers shared by the pattern package tests.

var testBase = time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)

// makeSession builds a completed session. Sessions made with decreasing
// daysAgo read newest-first when appended in order.
func makeSession(daysAgo int, minutes int, attempted, correct int, topics ...string) history.PracticeSession {
	start := testBase.AddDate(0, 0, -daysAgo)
	end := start.Add(time.Duration(minutes) * time.Minute)
	return history.PracticeSession{
		ID:                 "s",
		UserID:             "u1",
		Subject:            "math",
		StartedAt:          start,
		EndedAt:            &end,
		QuestionsAttempted: attempted,
		QuestionsCorrect:   correct,
		Topics:             topics,
		DifficultyLevel:    5,
	}
}

// makeOpenSession builds a session with no end time.
func makeOpenSession(daysAgo int, attempted, correct int, topics ...string) history.PracticeSession {
	s := makeSession(daysAgo, 0, attempted, correct, topics...)
	s.EndedAt = nil
	return s
}

func hintInteraction(confused, stuck bool, attempt int) history.Interaction {
	return history.Interaction{
		UserID: "u1",
		Kind:   history.KindHint,
		Context: history.HintContext{
			Topic:         "fractions",
			Confused:      confused,
			Stuck:         stuck,
			AttemptNumber: attempt,
		},
		CreatedAt: testBase,
	}
}

func interactionOfKind(kind history.InteractionKind) history.Interaction {
	return history.Interaction{
		UserID:    "u1",
		Kind:      kind,
		Context:   history.DecodeContext(kind, nil),
		CreatedAt: testBase,
	}
}

func repeatInteractions(kind history.InteractionKind, n int) []history.Interaction {
	out := make([]history.Interaction, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, interactionOfKind(kind))
	}
	return out
}
