package history

import (
	"reflect"
	"testing"
	"time"
)

func TestDecodeContext_Hint(t *testing.T) {
	raw := map[string]any{
		"topic":          "fractions",
		"hint_type":      "conceptual",
		"confused":       true,
		"stuck":          false,
		"attempt_number": 2,
	}

	got := DecodeContext(KindHint, raw)
	want := HintContext{
		Topic:         "fractions",
		HintType:      "conceptual",
		Confused:      true,
		AttemptNumber: 2,
	}
	if got != want {
		t.Errorf("DecodeContext = %+v, want %+v", got, want)
	}
}

func TestDecodeContext_JSONNumbersCoerce(t *testing.T) {
	// encoding/json decodes all numbers as float64.
	raw := map[string]any{"attempt_number": float64(3)}

	hc, ok := DecodeContext(KindHint, raw).(HintContext)
	if !ok {
		t.Fatalf("DecodeContext(hint) returned %T", DecodeContext(KindHint, raw))
	}
	if hc.AttemptNumber != 3 {
		t.Errorf("AttemptNumber = %d, want 3", hc.AttemptNumber)
	}

	fc, ok := DecodeContext(KindFeedback, map[string]any{"rating": float64(4)}).(FeedbackContext)
	if !ok || fc.Rating != 4 {
		t.Errorf("rating decoded as %+v, want 4", fc)
	}
}

func TestDecodeContext_NilMapYieldsEmptyShape(t *testing.T) {
	if got := DecodeContext(KindChat, nil); got != (ChatContext{}) {
		t.Errorf("DecodeContext(chat, nil) = %+v, want empty ChatContext", got)
	}
	if got := DecodeContext(KindExplanation, nil); got != (ExplanationContext{}) {
		t.Errorf("DecodeContext(explanation, nil) = %+v, want empty ExplanationContext", got)
	}
}

func TestDecodeContext_UnknownKindPreservesFields(t *testing.T) {
	raw := map[string]any{"voice": "enabled", "turns": float64(7)}

	got := DecodeContext(InteractionKind("voice_session"), raw)
	oc, ok := got.(OtherContext)
	if !ok {
		t.Fatalf("DecodeContext(unknown) returned %T, want OtherContext", got)
	}
	if !reflect.DeepEqual(oc.Fields, raw) {
		t.Errorf("Fields = %v, want %v", oc.Fields, raw)
	}
}

func TestEncodeContext_RoundTrips(t *testing.T) {
	tests := []struct {
		name string
		kind InteractionKind
		ctx  InteractionContext
	}{
		{"hint", KindHint, HintContext{Topic: "algebra", HintType: "procedural", Stuck: true, AttemptNumber: 1}},
		{"explanation", KindExplanation, ExplanationContext{Topic: "geometry", Depth: "detailed"}},
		{"feedback", KindFeedback, FeedbackContext{Rating: 5, Comment: "helpful"}},
		{"chat", KindChat, ChatContext{MessageCount: 12}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeContext(tt.kind, EncodeContext(tt.ctx))
			if got != tt.ctx {
				t.Errorf("round trip = %+v, want %+v", got, tt.ctx)
			}
		})
	}
}

func TestSessionAccessors(t *testing.T) {
	open := PracticeSession{QuestionsAttempted: 0}
	if open.Completed() {
		t.Error("session without end time should not be completed")
	}
	if acc := open.Accuracy(); acc != -1 {
		t.Errorf("Accuracy with no attempts = %f, want -1", acc)
	}

	end := open.StartedAt.Add(20 * time.Minute)
	done := PracticeSession{EndedAt: &end, QuestionsAttempted: 10, QuestionsCorrect: 7}
	if !done.Completed() {
		t.Error("session with end time should be completed")
	}
	if acc := done.Accuracy(); acc != 0.7 {
		t.Errorf("Accuracy = %f, want 0.7", acc)
	}
	if min := done.Duration().Minutes(); min != 20 {
		t.Errorf("Duration = %f minutes, want 20", min)
	}
}
