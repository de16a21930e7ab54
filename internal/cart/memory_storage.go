package cart

import (
	"context"
	"sync"
)

// MemoryStorage is an in-memory Storage used by tests and short-lived
// sessions that do not need a durable cart.
type MemoryStorage struct {
	mu   sync.Mutex
	snap *Snapshot

	// SaveErr, when set, is returned by Save to simulate persistence failure.
	SaveErr error
	// LoadErr, when set, is returned by Load to simulate a corrupt snapshot.
	LoadErr error
}

// NewMemoryStorage creates an empty in-memory cart storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// Load returns the last saved snapshot, or nil when nothing was saved.
func (m *MemoryStorage) Load(_ context.Context) (*Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.snap == nil {
		return nil, nil
	}
	cp := *m.snap
	cp.Items = make([]LineItem, len(m.snap.Items))
	copy(cp.Items, m.snap.Items)
	return &cp, nil
}

// Save stores the snapshot.
func (m *MemoryStorage) Save(_ context.Context, snap Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.snap = &snap
	return nil
}

// Saved returns the last saved snapshot without copying, for assertions.
func (m *MemoryStorage) Saved() *Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap
}
