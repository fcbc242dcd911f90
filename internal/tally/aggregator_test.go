package tally

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	factmodels "github.com/Veselin15/FactNode/internal/fact/models"
	factstore "github.com/Veselin15/FactNode/internal/fact/store"
	votemodels "github.com/Veselin15/FactNode/internal/vote/models"
	votestore "github.com/Veselin15/FactNode/internal/vote/store"
	id "github.com/Veselin15/FactNode/pkg/domain"
)

func TestRecount(t *testing.T) {
	ctx := context.Background()
	votes := votestore.NewInMemory()
	facts := factstore.NewInMemory()
	aggregator := New(votes, facts, slog.New(slog.NewTextHandler(io.Discard, nil)))

	factID := id.NewFactID()
	require.NoError(t, facts.Save(ctx, &factmodels.Fact{ID: factID, AuthorID: id.NewUserID()}))

	for _, direction := range []votemodels.Direction{
		votemodels.DirectionUp,
		votemodels.DirectionUp,
		votemodels.DirectionDown,
	} {
		_, err := votes.Upsert(ctx, &votemodels.Vote{
			VoterID:   id.NewUserID(),
			FactID:    factID,
			Direction: direction,
		})
		require.NoError(t, err)
	}

	tallies, err := aggregator.Recount(ctx, factID)
	require.NoError(t, err)
	require.Equal(t, 2, tallies.Upvotes)
	require.Equal(t, 1, tallies.Downvotes)
	require.Equal(t, 1, tallies.Score())

	// The counters are materialized on the fact.
	cached, err := facts.GetTallies(ctx, factID)
	require.NoError(t, err)
	require.Equal(t, tallies, cached)

	// Recounting without new votes converges on the same numbers.
	again, err := aggregator.Recount(ctx, factID)
	require.NoError(t, err)
	require.Equal(t, tallies, again)
}

func TestRecountUnknownFact(t *testing.T) {
	ctx := context.Background()
	aggregator := New(votestore.NewInMemory(), factstore.NewInMemory(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := aggregator.Recount(ctx, id.NewFactID())
	require.Error(t, err)
}
