package pattern

import (
	"context"
	"testing"
	"time"
)

func testPattern(difficulty float64) *LearningPattern {
	return &LearningPattern{
		UserID:                "u1",
		Subject:               "math",
		Style:                 StyleMixed,
		PreferredHintType:     HintConceptual,
		AttentionSpan:         SpanMedium,
		RecommendedDifficulty: difficulty,
		LastAnalyzed:          time.Now(),
	}
}

func TestMemoryStore_UpsertAndGet(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	ctx := context.Background()

	if err := s.Upsert(ctx, testPattern(5)); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := s.Get(ctx, "u1", "math")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.RecommendedDifficulty != 5 {
		t.Errorf("got %+v, want difficulty 5", got)
	}

	if got, _ := s.Get(ctx, "u1", "science"); got != nil {
		t.Errorf("unexpected hit for other subject: %+v", got)
	}
}

func TestMemoryStore_LastWriterWins(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	ctx := context.Background()

	_ = s.Upsert(ctx, testPattern(5))
	_ = s.Upsert(ctx, testPattern(7))

	got, _ := s.Get(ctx, "u1", "math")
	if got == nil || got.RecommendedDifficulty != 7 {
		t.Errorf("got %+v, want difficulty 7", got)
	}
}

func TestMemoryStore_EntriesExpire(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	now := time.Now()
	s.now = func() time.Time { return now }
	ctx := context.Background()

	_ = s.Upsert(ctx, testPattern(5))

	now = now.Add(2 * time.Minute)
	if got, _ := s.Get(ctx, "u1", "math"); got != nil {
		t.Errorf("expired entry still served: %+v", got)
	}
	if s.Len() != 0 {
		t.Errorf("expired entry not swept, len = %d", s.Len())
	}
}

func TestMemoryStore_ZeroTTLNeverExpires(t *testing.T) {
	s := NewMemoryStore(0)
	now := time.Now()
	s.now = func() time.Time { return now }
	ctx := context.Background()

	_ = s.Upsert(ctx, testPattern(5))
	now = now.Add(24 * time.Hour)

	if got, _ := s.Get(ctx, "u1", "math"); got == nil {
		t.Error("entry expired despite zero TTL")
	}
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	ctx := context.Background()

	_ = s.Upsert(ctx, testPattern(5))
	got, _ := s.Get(ctx, "u1", "math")
	got.RecommendedDifficulty = 9

	again, _ := s.Get(ctx, "u1", "math")
	if again.RecommendedDifficulty != 5 {
		t.Errorf("mutation leaked into store: %f", again.RecommendedDifficulty)
	}
}

func TestTieredStore_CacheOnlyAndRefill(t *testing.T) {
	persistent := NewMemoryStore(0)
	cache := NewMemoryStore(time.Minute)
	tiered := NewTiered(cache, persistent)
	ctx := context.Background()

	if err := tiered.Upsert(ctx, testPattern(6)); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	// Drop the cache entry; the persistent layer must refill it.
	cache.entries = map[string]memEntry{}

	got, err := tiered.Get(ctx, "u1", "math")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.RecommendedDifficulty != 6 {
		t.Errorf("got %+v, want difficulty 6", got)
	}
	if cache.Len() != 1 {
		t.Errorf("cache not refilled, len = %d", cache.Len())
	}
}
