package store

import (
	"context"
	"sync"

	id "github.com/Veselin15/FactNode/pkg/domain"
)

// InMemoryStore keeps totals in a map. The mutex makes AddScore a
// read-modify-write under exclusion, matching the atomic contract.
type InMemoryStore struct {
	mu     sync.RWMutex
	scores map[id.UserID]int
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{scores: make(map[id.UserID]int)}
}

func (s *InMemoryStore) AddScore(_ context.Context, userID id.UserID, delta int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores[userID] += delta
	return s.scores[userID], nil
}

func (s *InMemoryStore) Get(_ context.Context, userID id.UserID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total, ok := s.scores[userID]
	if !ok {
		return 0, ErrNotFound
	}
	return total, nil
}

// Seed sets a user's total directly. Test helper.
func (s *InMemoryStore) Seed(userID id.UserID, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores[userID] = total
}
