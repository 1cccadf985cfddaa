package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// one live store plus its idle deadline
type entry struct {
	store     *Store
	expiresAt time.Time
}

// Manager hands out one Store per browser session ID, creating them on
// demand and dropping them after the idle TTL. The persisted snapshot
// outlives the in-memory store, so an expired entry rehydrates on next use.
type Manager struct {
	mu      sync.RWMutex
	entries map[string]*entry
	ttl     time.Duration

	verifier   IdentityVerifier
	snapshots  SnapshotStore
	adminEmail string
}

// returns a new session manager
func NewManager(verifier IdentityVerifier, snapshots SnapshotStore, adminEmail string, ttl time.Duration) *Manager {
	m := &Manager{
		entries:    make(map[string]*entry),
		ttl:        ttl,
		verifier:   verifier,
		snapshots:  snapshots,
		adminEmail: adminEmail,
	}

	// start cleanup goroutine
	go m.cleanupExpiredEntries()

	return m
}

// returns a new random session ID
func NewSessionID() string {
	return uuid.NewString()
}

// returns the store for a session ID, creating it if needed and sliding
// its expiry
func (m *Manager) Get(sid string) *Store {
	now := time.Now()

	m.mu.RLock()
	e, exists := m.entries[sid]
	m.mu.RUnlock()

	if exists && now.Before(e.expiresAt) {
		m.mu.Lock()
		e.expiresAt = now.Add(m.ttl)
		m.mu.Unlock()
		return e.store
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// re-check under the write lock
	if e, exists := m.entries[sid]; exists && now.Before(e.expiresAt) {
		e.expiresAt = now.Add(m.ttl)
		return e.store
	}

	store := NewStore(sid, m.verifier, m.snapshots, m.adminEmail)
	m.entries[sid] = &entry{
		store:     store,
		expiresAt: now.Add(m.ttl),
	}

	return store
}

// removes a session's store
func (m *Manager) Delete(sid string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, sid)
}

// returns the number of live stores
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// runs periodically to drop idle stores
func (m *Manager) cleanupExpiredEntries() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		m.mu.Lock()
		now := time.Now()

		for sid, e := range m.entries {
			if now.After(e.expiresAt) {
				delete(m.entries, sid)
			}
		}

		m.mu.Unlock()
	}
}
