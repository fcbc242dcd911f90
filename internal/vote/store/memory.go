package store

import (
	"context"
	"sync"
	"time"

	"github.com/Veselin15/FactNode/internal/vote/models"
	id "github.com/Veselin15/FactNode/pkg/domain"
)

type voteKey struct {
	voterID id.UserID
	factID  id.FactID
}

// InMemoryStore keeps votes in a map guarded by a mutex. The single
// lock gives the same per-pair atomicity the Postgres unique
// constraint provides.
type InMemoryStore struct {
	mu    sync.RWMutex
	votes map[voteKey]models.Vote
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{votes: make(map[voteKey]models.Vote)}
}

func (s *InMemoryStore) Upsert(_ context.Context, vote *models.Vote) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := voteKey{voterID: vote.VoterID, factID: vote.FactID}
	now := time.Now()

	existing, ok := s.votes[key]
	if ok {
		existing.Direction = vote.Direction
		existing.UpdatedAt = now
		s.votes[key] = existing
		*vote = existing
		return false, nil
	}

	vote.CreatedAt = now
	vote.UpdatedAt = now
	s.votes[key] = *vote
	return true, nil
}

func (s *InMemoryStore) Delete(_ context.Context, voterID id.UserID, factID id.FactID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := voteKey{voterID: voterID, factID: factID}
	if _, ok := s.votes[key]; !ok {
		return false, nil
	}
	delete(s.votes, key)
	return true, nil
}

func (s *InMemoryStore) Find(_ context.Context, voterID id.UserID, factID id.FactID) (*models.Vote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vote, ok := s.votes[voteKey{voterID: voterID, factID: factID}]
	if !ok {
		return nil, ErrNotFound
	}
	return &vote, nil
}

func (s *InMemoryStore) CountByDirection(_ context.Context, factID id.FactID) (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var up, down int
	for key, vote := range s.votes {
		if key.factID != factID {
			continue
		}
		switch vote.Direction {
		case models.DirectionUp:
			up++
		case models.DirectionDown:
			down++
		}
	}
	return up, down, nil
}
