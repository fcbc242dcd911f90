// Package store persists reputation totals.
//
// The one hard requirement is AddScore: concurrent voters hitting the
// same author must never lose an update, so every implementation
// performs the add atomically inside the store (SQL arithmetic update,
// Redis INCRBY, or a mutex for the in-memory map) and returns the
// post-mutation total from the same operation.
package store

import (
	"context"

	id "github.com/Veselin15/FactNode/pkg/domain"
	dErrors "github.com/Veselin15/FactNode/pkg/domain-errors"
)

// ErrNotFound is returned when the user has no reputation record yet.
var ErrNotFound = dErrors.New(dErrors.CodeNotFound, "reputation not found")

// Store is the persistence contract for reputation totals.
type Store interface {
	// AddScore atomically applies delta to the user's total, creating
	// the record at zero first if needed, and returns the new total.
	AddScore(ctx context.Context, userID id.UserID, delta int) (newTotal int, err error)

	// Get returns the user's current total.
	Get(ctx context.Context, userID id.UserID) (int, error)
}
