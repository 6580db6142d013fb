package session

import (
	"context"
	"sync"
	"time"

	"github.com/saim-honey388/BAKERY-CHAT/internal/conversation"
)

// memoryStore is the fallback when Redis is unreachable. Sessions live
// in a map guarded by a mutex; a janitor goroutine evicts expired ones.
type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	ttl      time.Duration
}

type memoryEntry struct {
	sess      *conversation.Session
	expiresAt time.Time
}

func NewMemoryStore(ttl time.Duration) Store {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	s := &memoryStore{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
	}
	go s.janitor()
	return s
}

func (s *memoryStore) Load(_ context.Context, id string) (*conversation.Session, error) {
	s.mu.RLock()
	entry, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, ErrSessionNotFound
	}
	return entry.sess, nil
}

func (s *memoryStore) Save(_ context.Context, sess *conversation.Session) error {
	s.mu.Lock()
	s.sessions[sess.ID] = memoryEntry{
		sess:      sess,
		expiresAt: time.Now().Add(s.ttl),
	}
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		now := time.Now()
		s.mu.Lock()
		for id, entry := range s.sessions {
			if now.After(entry.expiresAt) {
				delete(s.sessions, id)
			}
		}
		s.mu.Unlock()
	}
}
