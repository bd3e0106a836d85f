package pattern

import "context"

// TieredStore layers a fast TTL cache over a persistent store. Upserts
// write through to both; Gets prefer the cache and refill it on a
// persistent hit.
type TieredStore struct {
	cache      *MemoryStore
	persistent Store
}

// NewTiered creates a TieredStore. persistent may be nil, leaving a
// cache-only store.
func NewTiered(cache *MemoryStore, persistent Store) *TieredStore {
	return &TieredStore{cache: cache, persistent: persistent}
}

func (t *TieredStore) Upsert(ctx context.Context, p *LearningPattern) error {
	// The cache write cannot fail; the persistent write decides the
	// error the caller sees.
	_ = t.cache.Upsert(ctx, p)
	if t.persistent == nil {
		return nil
	}
	return t.persistent.Upsert(ctx, p)
}

func (t *TieredStore) Get(ctx context.Context, userID, subject string) (*LearningPattern, error) {
	if p, err := t.cache.Get(ctx, userID, subject); err == nil && p != nil {
		return p, nil
	}
	if t.persistent == nil {
		return nil, nil
	}

	p, err := t.persistent.Get(ctx, userID, subject)
	if err != nil || p == nil {
		return p, err
	}
	_ = t.cache.Upsert(ctx, p)
	return p, nil
}
