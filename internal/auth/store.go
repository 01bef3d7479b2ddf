package auth

import (
	"context"
	"sync"
	"time"
)

// TokenStore tracks which refresh tokens are currently accepted. Issued
// tokens are registered, logout and rotation revoke them, and Sweep drops
// entries whose expiry has passed so the registered set cannot grow without
// bound.
type TokenStore interface {
	Register(ctx context.Context, token, userID string, expiresAt time.Time) error
	Revoke(ctx context.Context, token string) error
	IsValid(ctx context.Context, token string) (bool, error)
	Sweep(ctx context.Context) (int64, error)
}

type memoryEntry struct {
	userID    string
	expiresAt time.Time
}

// MemoryTokenStore keeps the registered set in process memory. State is lost
// on restart, which logs every session out; the database-backed store in the
// repository package is the alternative when that matters.
type MemoryTokenStore struct {
	mu     sync.Mutex
	tokens map[string]memoryEntry
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{tokens: make(map[string]memoryEntry)}
}

func (s *MemoryTokenStore) Register(_ context.Context, token, userID string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = memoryEntry{userID: userID, expiresAt: expiresAt}
	return nil
}

func (s *MemoryTokenStore) Revoke(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
	return nil
}

func (s *MemoryTokenStore) IsValid(_ context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.tokens[token]
	if !ok {
		return false, nil
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.tokens, token)
		return false, nil
	}
	return true, nil
}

func (s *MemoryTokenStore) Sweep(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	var removed int64
	for token, entry := range s.tokens {
		if now.After(entry.expiresAt) {
			delete(s.tokens, token)
			removed++
		}
	}
	return removed, nil
}
