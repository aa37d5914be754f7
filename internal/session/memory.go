package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is a threadsafe in-memory session store for tests.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]Data
}

// NewMemoryStore returns an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Data)}
}

// Create implements Store.
func (s *MemoryStore) Create(ctx context.Context, data Data) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	token := uuid.NewString()
	s.sessions[token] = data
	return token, nil
}

// Get implements Store.
func (s *MemoryStore) Get(ctx context.Context, token string) (*Data, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.sessions[token]
	if !ok {
		return nil, ErrNotFound
	}
	copied := data
	return &copied, nil
}

// Delete implements Store.
func (s *MemoryStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

// AddFlash implements Store.
func (s *MemoryStore) AddFlash(ctx context.Context, token string, f Flash) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.sessions[token]
	if !ok {
		return ErrNotFound
	}
	data.Flashes = append(data.Flashes, f)
	s.sessions[token] = data
	return nil
}

// PopFlashes implements Store.
func (s *MemoryStore) PopFlashes(ctx context.Context, token string) ([]Flash, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.sessions[token]
	if !ok {
		return nil, ErrNotFound
	}
	flashes := data.Flashes
	data.Flashes = nil
	s.sessions[token] = data
	return flashes, nil
}
