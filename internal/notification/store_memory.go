package notification

import (
	"context"
	"sort"
	"sync"

	id "github.com/Veselin15/FactNode/pkg/domain"
)

// InMemoryStore keeps notifications per recipient.
type InMemoryStore struct {
	mu    sync.RWMutex
	inbox map[id.UserID][]Notification
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{inbox: make(map[id.UserID][]Notification)}
}

func (s *InMemoryStore) Save(_ context.Context, n Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inbox[n.RecipientID] = append(s.inbox[n.RecipientID], n)
	return nil
}

func (s *InMemoryStore) ListByRecipient(_ context.Context, recipientID id.UserID) ([]Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := append([]Notification{}, s.inbox[recipientID]...)
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Read != list[j].Read {
			return !list[i].Read
		}
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

func (s *InMemoryStore) MarkRead(_ context.Context, recipientID id.UserID, notificationID id.NotificationID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.inbox[recipientID]
	for i := range list {
		if list[i].ID == notificationID {
			list[i].Read = true
			return nil
		}
	}
	return ErrNotFound
}
