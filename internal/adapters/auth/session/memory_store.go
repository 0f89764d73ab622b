package session

import (
	"context"
	"sync"
	"time"

	"pet-clinic-admin/internal/ports/auth"

	"github.com/google/uuid"
)

type entry struct {
	email     string
	expiresAt time.Time
}

// MemoryStore guarda sesiones en el proceso. Se usa sin REDIS_ADDR.
type MemoryStore struct {
	mu      sync.Mutex
	byToken map[string]entry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byToken: make(map[string]entry), now: time.Now}
}

func (s *MemoryStore) Create(ctx context.Context, email string, ttl time.Duration) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictLocked()
	token := uuid.NewString()
	s.byToken[token] = entry{email: email, expiresAt: s.now().Add(ttl)}
	return token, nil
}

func (s *MemoryStore) Lookup(ctx context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.byToken[token]
	if !ok {
		return "", auth.ErrSessionNotFound
	}
	if !s.now().Before(e.expiresAt) {
		delete(s.byToken, token)
		return "", auth.ErrSessionNotFound
	}
	return e.email, nil
}

func (s *MemoryStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byToken[token]; !ok {
		return auth.ErrSessionNotFound
	}
	delete(s.byToken, token)
	return nil
}

func (s *MemoryStore) evictLocked() {
	now := s.now()
	for token, e := range s.byToken {
		if !now.Before(e.expiresAt) {
			delete(s.byToken, token)
		}
	}
}
