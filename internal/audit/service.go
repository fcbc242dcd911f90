// Package audit keeps the append-only trail of reputation changes.
// The cached total on the profile is the fast path; this ledger is the
// explanation for how it got there.
package audit

import (
	"context"
	"time"

	id "github.com/Veselin15/FactNode/pkg/domain"
	dErrors "github.com/Veselin15/FactNode/pkg/domain-errors"
)

// PageSize bounds ListByUser responses.
const PageSize = 50

// Store is the persistence contract for audit entries.
type Store interface {
	Append(ctx context.Context, entry Entry) error
	// ListByUser returns entries for the user ordered newest first.
	// page is zero-based.
	ListByUser(ctx context.Context, userID id.UserID, page int) ([]Entry, error)
}

// Service captures reputation change records. It is append-only and
// uses the storage layer for persistence so tests can swap sinks.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Append validates and records one entry. Validation is intentionally
// thin: the ledger records what happened, it does not second-guess it.
func (s *Service) Append(ctx context.Context, entry Entry) error {
	if entry.UserID.IsNil() {
		return dErrors.New(dErrors.CodeInvalidInput, "audit entry requires a user")
	}
	if entry.Reason == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "audit entry requires a reason")
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	return s.store.Append(ctx, entry)
}

// ListByUser returns a page of the user's entries, newest first.
func (s *Service) ListByUser(ctx context.Context, userID id.UserID, page int) ([]Entry, error) {
	if page < 0 {
		page = 0
	}
	return s.store.ListByUser(ctx, userID, page)
}
