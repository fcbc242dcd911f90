// Package store persists the vote ledger: one row per (voter, fact).
package store

import (
	"context"

	"github.com/Veselin15/FactNode/internal/vote/models"
	id "github.com/Veselin15/FactNode/pkg/domain"
	dErrors "github.com/Veselin15/FactNode/pkg/domain-errors"
)

// ErrNotFound is returned when no vote exists for the (voter, fact) pair.
var ErrNotFound = dErrors.New(dErrors.CodeNotFound, "vote not found")

// Store is the persistence contract for votes. Uniqueness per
// (voter, fact) is enforced here, not in the service, so concurrent
// first-votes from the same voter collapse to one row.
type Store interface {
	// Upsert inserts the vote or replaces the direction of an existing
	// row. created reports whether a new row was inserted.
	Upsert(ctx context.Context, vote *models.Vote) (created bool, err error)

	// Delete removes the vote if present. existed reports whether a
	// row was actually deleted.
	Delete(ctx context.Context, voterID id.UserID, factID id.FactID) (existed bool, err error)

	Find(ctx context.Context, voterID id.UserID, factID id.FactID) (*models.Vote, error)

	// CountByDirection recounts the live vote rows for a fact. This is
	// the source of truth the tally aggregator materializes from.
	CountByDirection(ctx context.Context, factID id.FactID) (upvotes, downvotes int, err error)
}
