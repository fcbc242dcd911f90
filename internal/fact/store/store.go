// Package store persists facts and their cached tallies.
//
// Stores are interface-driven so the pipeline can run against the
// in-memory implementation in tests and Postgres in production.
package store

import (
	"context"

	"github.com/Veselin15/FactNode/internal/fact/models"
	id "github.com/Veselin15/FactNode/pkg/domain"
	dErrors "github.com/Veselin15/FactNode/pkg/domain-errors"
)

// ErrNotFound is returned when the fact does not exist.
var ErrNotFound = dErrors.New(dErrors.CodeNotFound, "fact not found")

// Store is the persistence contract for facts.
type Store interface {
	Save(ctx context.Context, fact *models.Fact) error
	FindByID(ctx context.Context, factID id.FactID) (*models.Fact, error)

	// UpdateTallies overwrites both cached counters in one write.
	// Callers always pass a full recount, never a delta, so a stale
	// concurrent writer can only be corrected by the next recount.
	UpdateTallies(ctx context.Context, factID id.FactID, upvotes, downvotes int) error

	GetTallies(ctx context.Context, factID id.FactID) (models.Tallies, error)
}
