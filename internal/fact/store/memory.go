package store

import (
	"context"
	"sync"

	"github.com/Veselin15/FactNode/internal/fact/models"
	id "github.com/Veselin15/FactNode/pkg/domain"
)

// InMemoryStore keeps facts in a map. Used by unit tests and dev mode.
type InMemoryStore struct {
	mu    sync.RWMutex
	facts map[id.FactID]models.Fact
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{facts: make(map[id.FactID]models.Fact)}
}

func (s *InMemoryStore) Save(_ context.Context, fact *models.Fact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.facts[fact.ID] = *fact
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, factID id.FactID) (*models.Fact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fact, ok := s.facts[factID]
	if !ok {
		return nil, ErrNotFound
	}
	return &fact, nil
}

func (s *InMemoryStore) UpdateTallies(_ context.Context, factID id.FactID, upvotes, downvotes int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	fact, ok := s.facts[factID]
	if !ok {
		return ErrNotFound
	}
	fact.Upvotes = upvotes
	fact.Downvotes = downvotes
	s.facts[factID] = fact
	return nil
}

func (s *InMemoryStore) GetTallies(_ context.Context, factID id.FactID) (models.Tallies, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fact, ok := s.facts[factID]
	if !ok {
		return models.Tallies{}, ErrNotFound
	}
	return models.Tallies{FactID: factID, Upvotes: fact.Upvotes, Downvotes: fact.Downvotes}, nil
}
