package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryEntry struct {
	username  string
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory. Sessions do not survive a
// restart.
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]memoryEntry

	done      chan struct{}
	closeOnce sync.Once
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		ttl:      ttl,
		sessions: make(map[string]memoryEntry),
		done:     make(chan struct{}),
	}
	go s.sweep()
	return s
}

func (s *MemoryStore) Create(_ context.Context, username string) (string, error) {
	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = memoryEntry{
		username:  username,
		expiresAt: time.Now().Add(s.ttl),
	}
	s.mu.Unlock()
	return token, nil
}

func (s *MemoryStore) Resolve(_ context.Context, token string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[token]
	if !ok {
		return "", false, nil
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.sessions, token)
		return "", false, nil
	}
	return entry.username, true, nil
}

func (s *MemoryStore) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}

// Close stops the background sweeper.
func (s *MemoryStore) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

func (s *MemoryStore) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			now := time.Now()
			s.mu.Lock()
			for token, entry := range s.sessions {
				if now.After(entry.expiresAt) {
					delete(s.sessions, token)
				}
			}
			s.mu.Unlock()
		}
	}
}
