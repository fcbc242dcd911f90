package audit

import (
	"context"
	"sync"

	id "github.com/Veselin15/FactNode/pkg/domain"
)

// InMemoryStore keeps audit entries per user, newest appended last.
type InMemoryStore struct {
	mu      sync.RWMutex
	entries map[id.UserID][]Entry
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{entries: make(map[id.UserID][]Entry)}
}

func (s *InMemoryStore) Append(_ context.Context, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.UserID] = append(s.entries[entry.UserID], entry)
	return nil
}

func (s *InMemoryStore) ListByUser(_ context.Context, userID id.UserID, page int) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.entries[userID]

	// Newest first.
	reversed := make([]Entry, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		reversed = append(reversed, all[i])
	}

	start := page * PageSize
	if start >= len(reversed) {
		return []Entry{}, nil
	}
	end := start + PageSize
	if end > len(reversed) {
		end = len(reversed)
	}
	return reversed[start:end], nil
}
