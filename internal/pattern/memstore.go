package pattern

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is a thread-safe in-memory pattern store with TTL expiry.
// Entries are last-writer-wins; expired entries read as absent and are
// dropped lazily on access.
type MemoryStore struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]memEntry

	now func() time.Time // overridable in tests
}

type memEntry struct {
	pattern   LearningPattern
	expiresAt time.Time
}

// NewMemoryStore creates a MemoryStore. A zero or negative ttl disables
// expiry.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]memEntry),
		now:     time.Now,
	}
}

func (m *MemoryStore) Upsert(_ context.Context, p *LearningPattern) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := memEntry{pattern: *p}
	if m.ttl > 0 {
		e.expiresAt = m.now().Add(m.ttl)
	}
	m.entries[m.key(p.UserID, p.Subject)] = e
	return nil
}

func (m *MemoryStore) Get(_ context.Context, userID, subject string) (*LearningPattern, error) {
	key := m.key(userID, subject)

	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	if !e.expiresAt.IsZero() && m.now().After(e.expiresAt) {
		m.mu.Lock()
		// Re-check under the write lock; a concurrent Upsert may have
		// refreshed the entry.
		if cur, ok := m.entries[key]; ok && !cur.expiresAt.IsZero() && m.now().After(cur.expiresAt) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return nil, nil
	}

	p := e.pattern
	return &p, nil
}

// Len reports the number of live entries, counting expired ones not yet
// swept.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

func (*MemoryStore) key(userID, subject string) string {
	return userID + "\x00" + subject
}
