// Package tally materializes per-fact vote counters from the vote
// ledger. Counters are always recomputed from the source rows rather
// than incremented, so replaying an event or racing another recount
// converges on the same truth.
package tally

import (
	"context"
	"fmt"
	"log/slog"

	factmodels "github.com/Veselin15/FactNode/internal/fact/models"
	factstore "github.com/Veselin15/FactNode/internal/fact/store"
	votestore "github.com/Veselin15/FactNode/internal/vote/store"
	id "github.com/Veselin15/FactNode/pkg/domain"
)

// Aggregator recounts a fact's tallies from the vote rows.
type Aggregator struct {
	votes  votestore.Store
	facts  factstore.Store
	logger *slog.Logger
}

// New constructs an Aggregator.
func New(votes votestore.Store, facts factstore.Store, logger *slog.Logger) *Aggregator {
	return &Aggregator{votes: votes, facts: facts, logger: logger}
}

// Recount recomputes both counters from the live vote rows and writes
// them in a single update. Two concurrent recounts for the same fact
// may race, but since each writes the full recounted truth the later
// write is at worst momentarily stale, never cumulatively wrong.
func (a *Aggregator) Recount(ctx context.Context, factID id.FactID) (factmodels.Tallies, error) {
	up, down, err := a.votes.CountByDirection(ctx, factID)
	if err != nil {
		return factmodels.Tallies{}, fmt.Errorf("recount votes for fact %s: %w", factID, err)
	}

	if err := a.facts.UpdateTallies(ctx, factID, up, down); err != nil {
		return factmodels.Tallies{}, fmt.Errorf("write tallies for fact %s: %w", factID, err)
	}

	a.logger.DebugContext(ctx, "tallies recounted",
		"fact_id", factID,
		"upvotes", up,
		"downvotes", down,
	)
	return factmodels.Tallies{FactID: factID, Upvotes: up, Downvotes: down}, nil
}
