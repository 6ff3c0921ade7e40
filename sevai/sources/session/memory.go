package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// memoryStore implements Store with an in-process map. Sessions are stored
// as JSON blobs so callers never share mutable state with the store.
type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string][]byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{sessions: make(map[string][]byte)}
}

func (s *memoryStore) Get(ctx context.Context, id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, exists := s.sessions[id]
	if !exists {
		return nil, nil
	}
	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *memoryStore) Save(ctx context.Context, sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = now
	}
	sess.UpdatedAt = now

	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	s.sessions[sess.ID] = raw
	return nil
}

func (s *memoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

func (s *memoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions = nil
	return nil
}
