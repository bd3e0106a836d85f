package history

// InteractionKind identifies the type of a tutoring interaction.
type InteractionKind string

const (
	KindHint        InteractionKind = "hint"
	KindExplanation InteractionKind = "explanation"
	KindFeedback    InteractionKind = "feedback"
	KindChat        InteractionKind = "chat"
)

// InteractionContext is the kind-specific payload of an interaction.
// Exactly one concrete shape applies per kind; unknown kinds decode to
// OtherContext so no stored payload is ever dropped.
type InteractionContext interface {
	isInteractionContext()
}

// HintContext describes a hint interaction.
type HintContext struct {
	Topic         string
	HintType      string
	Confused      bool // learner flagged they didn't understand the concept
	Stuck         bool // learner flagged they couldn't proceed
	AttemptNumber int  // 1 for first attempt; >=2 indicates a repeat
}

// ExplanationContext describes an explanation request.
type ExplanationContext struct {
	Topic string
	Depth string
}

// FeedbackContext describes feedback the learner gave.
type FeedbackContext struct {
	Rating  int
	Comment string
}

// ChatContext describes a chat exchange with the tutor.
type ChatContext struct {
	MessageCount int
}

// OtherContext carries the raw fields of an unrecognized payload.
type OtherContext struct {
	Fields map[string]any
}

func (HintContext) isInteractionContext()        {}
func (ExplanationContext) isInteractionContext() {}
func (FeedbackContext) isInteractionContext()    {}
func (ChatContext) isInteractionContext()        {}
func (OtherContext) isInteractionContext()       {}

// DecodeContext builds the typed context for a kind from a stored payload
// map. Missing fields take zero values; a nil map yields the kind's empty
// shape so callers never see a nil context.
func DecodeContext(kind InteractionKind, raw map[string]any) InteractionContext {
	switch kind {
	case KindHint:
		return HintContext{
			Topic:         stringField(raw, "topic"),
			HintType:      stringField(raw, "hint_type"),
			Confused:      boolField(raw, "confused"),
			Stuck:         boolField(raw, "stuck"),
			AttemptNumber: intField(raw, "attempt_number"),
		}
	case KindExplanation:
		return ExplanationContext{
			Topic: stringField(raw, "topic"),
			Depth: stringField(raw, "depth"),
		}
	case KindFeedback:
		return FeedbackContext{
			Rating:  intField(raw, "rating"),
			Comment: stringField(raw, "comment"),
		}
	case KindChat:
		return ChatContext{
			MessageCount: intField(raw, "message_count"),
		}
	default:
		return OtherContext{Fields: raw}
	}
}

// EncodeContext is the inverse of DecodeContext, used when persisting
// interactions (seeding, tests).
func EncodeContext(c InteractionContext) map[string]any {
	switch v := c.(type) {
	case HintContext:
		return map[string]any{
			"topic":          v.Topic,
			"hint_type":      v.HintType,
			"confused":       v.Confused,
			"stuck":          v.Stuck,
			"attempt_number": v.AttemptNumber,
		}
	case ExplanationContext:
		return map[string]any{"topic": v.Topic, "depth": v.Depth}
	case FeedbackContext:
		return map[string]any{"rating": v.Rating, "comment": v.Comment}
	case ChatContext:
		return map[string]any{"message_count": v.MessageCount}
	case OtherContext:
		return v.Fields
	default:
		return nil
	}
}

func stringField(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

func boolField(m map[string]any, key string) bool {
	if b, ok := m[key].(bool); ok {
		return b
	}
	return false
}

// intField tolerates float64, the type encoding/json gives numbers.
func intField(m map[string]any, key string) int {
	switch v := m[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}
