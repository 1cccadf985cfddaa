package snapshot

import (
	"context"
	"sync"

	"codeberg.org/skillsprint/webfront/internal/session"
)

// MemoryStore implements session.SnapshotStore using in-memory storage.
// Used in tests and single-process development runs.
type MemoryStore struct {
	mu    sync.RWMutex
	snaps map[string]session.Snapshot
}

// creates a new in-memory snapshot store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		snaps: make(map[string]session.Snapshot),
	}
}

// writes a session snapshot
func (s *MemoryStore) Save(_ context.Context, key string, snap session.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snaps[key] = snap
	return nil
}

// reads a session snapshot; the second return reports presence
func (s *MemoryStore) Load(_ context.Context, key string) (session.Snapshot, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, exists := s.snaps[key]
	return snap, exists, nil
}

// removes a session snapshot
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.snaps, key)
	return nil
}
