package auth

import (
	"sync"
	"time"
)

const stateTTL = 10 * time.Minute

type stateEntry struct {
	verifier  string
	expiresAt time.Time
}

// StateStore keeps OAuth state parameters and their PKCE verifiers between
// the authorization redirect and the provider callback.
type StateStore struct {
	mu      sync.Mutex
	entries map[string]stateEntry
}

func NewStateStore() *StateStore {
	return &StateStore{
		entries: make(map[string]stateEntry),
	}
}

func (s *StateStore) Put(state, verifier string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prune()
	s.entries[state] = stateEntry{
		verifier:  verifier,
		expiresAt: time.Now().Add(stateTTL),
	}
}

// Consume returns the verifier for a state and removes it. A state can be
// consumed at most once.
func (s *StateStore) Consume(state string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[state]
	if !ok {
		return "", false
	}
	delete(s.entries, state)

	if time.Now().After(entry.expiresAt) {
		return "", false
	}
	return entry.verifier, true
}

// prune drops expired entries. Caller must hold the lock.
func (s *StateStore) prune() {
	now := time.Now()
	for state, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, state)
		}
	}
}
