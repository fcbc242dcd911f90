package notification

import (
	"context"

	id "github.com/Veselin15/FactNode/pkg/domain"
	dErrors "github.com/Veselin15/FactNode/pkg/domain-errors"
)

// ErrNotFound is returned when a notification does not exist for the
// recipient.
var ErrNotFound = dErrors.New(dErrors.CodeNotFound, "notification not found")

// Store is the persistence contract for the notification inbox.
type Store interface {
	Save(ctx context.Context, n Notification) error
	// ListByRecipient returns the recipient's notifications, unread
	// first, newest first within each group.
	ListByRecipient(ctx context.Context, recipientID id.UserID) ([]Notification, error)
	// MarkRead flips the read flag. Scoped to the recipient so a user
	// can only touch their own inbox.
	MarkRead(ctx context.Context, recipientID id.UserID, notificationID id.NotificationID) error
}

// StoreSink persists notifications into the inbox store, making them
// visible on the read path. This is the default sink.
type StoreSink struct {
	store Store
}

func NewStoreSink(store Store) *StoreSink {
	return &StoreSink{store: store}
}

func (s *StoreSink) Notify(ctx context.Context, n Notification) error {
	return s.store.Save(ctx, n)
}
