package repository

import (
	"context"
	"sync"
	"time"

	"whatsapp-reviews/internal/domains/conversation/model"
)

// MemoryStateStore is a process local store. State is lost on restart.
type MemoryStateStore struct {
	mu     sync.Mutex
	states map[string]model.State
	ttl    time.Duration
	now    func() time.Time
}

func NewMemoryStateStore(ttl time.Duration) *MemoryStateStore {
	return &MemoryStateStore{
		states: make(map[string]model.State),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *MemoryStateStore) Get(_ context.Context, contact string) (*model.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.states[contact]
	if !ok {
		return nil, model.ErrStateNotFound
	}
	if state.Expired(s.ttl, s.now()) {
		delete(s.states, contact)
		return nil, model.ErrStateNotFound
	}
	return &state, nil
}

func (s *MemoryStateStore) Set(_ context.Context, contact string, state *model.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state.LastSeen = s.now()
	s.states[contact] = *state
	return nil
}

func (s *MemoryStateStore) Clear(_ context.Context, contact string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.states, contact)
	return nil
}

func (s *MemoryStateStore) CleanupExpired(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for contact, state := range s.states {
		if state.Expired(s.ttl, now) {
			delete(s.states, contact)
		}
	}
	return nil
}

// Len reports how many conversations are tracked, expired ones included
func (s *MemoryStateStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.states)
}
