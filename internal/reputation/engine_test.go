package reputation

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/Veselin15/FactNode/internal/audit"
	factmodels "github.com/Veselin15/FactNode/internal/fact/models"
	factstore "github.com/Veselin15/FactNode/internal/fact/store"
	"github.com/Veselin15/FactNode/internal/notification"
	"github.com/Veselin15/FactNode/internal/notification/mocks"
	"github.com/Veselin15/FactNode/internal/reputation/store"
	votemodels "github.com/Veselin15/FactNode/internal/vote/models"
	id "github.com/Veselin15/FactNode/pkg/domain"
)

// The engine is where the asymmetric reputation rules live, so the
// tests here pin them down: creation-only deltas, self-vote exclusion,
// and exactly-once promotion under concurrency.

type EngineSuite struct {
	suite.Suite
	facts  *factstore.InMemoryStore
	scores *store.InMemoryStore
	audits *audit.InMemoryStore
	inbox  *notification.InMemoryStore
	engine *Engine

	author id.UserID
	voter  id.UserID
	factID id.FactID
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) SetupTest() {
	s.facts = factstore.NewInMemory()
	s.scores = store.NewInMemory()
	s.audits = audit.NewInMemoryStore()
	s.inbox = notification.NewInMemoryStore()

	s.author = id.NewUserID()
	s.voter = id.NewUserID()
	s.factID = id.NewFactID()
	s.Require().NoError(s.facts.Save(context.Background(), &factmodels.Fact{
		ID:       s.factID,
		AuthorID: s.author,
		Title:    "Honey never spoils",
	}))

	s.engine = NewEngine(
		s.facts,
		s.scores,
		audit.NewService(s.audits),
		notification.Fanout{notification.NewStoreSink(s.inbox)},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		nil,
	)
}

func (s *EngineSuite) change(voter id.UserID, direction votemodels.Direction, created bool) votemodels.Changed {
	return votemodels.Changed{
		FactID:    s.factID,
		VoterID:   voter,
		Direction: direction,
		Created:   created,
	}
}

func (s *EngineSuite) TestDeltas() {
	ctx := context.Background()

	s.Run("upvote grants the author 10 points and one audit entry", func() {
		s.Require().NoError(s.engine.HandleVoteChanged(ctx, s.change(s.voter, votemodels.DirectionUp, true)))

		total, err := s.scores.Get(ctx, s.author)
		s.Require().NoError(err)
		s.Equal(10, total)

		entries, err := s.audits.ListByUser(ctx, s.author, 0)
		s.Require().NoError(err)
		s.Require().Len(entries, 1)
		s.Equal(audit.ReasonVoteReceived, entries[0].Reason)
		s.Equal(10, entries[0].Delta)
		s.Require().NotNil(entries[0].RelatedFactID)
		s.Equal(s.factID, *entries[0].RelatedFactID)
	})

	s.Run("downvote costs the author 2 points", func() {
		s.Require().NoError(s.engine.HandleVoteChanged(ctx, s.change(id.NewUserID(), votemodels.DirectionDown, true)))

		total, err := s.scores.Get(ctx, s.author)
		s.Require().NoError(err)
		s.Equal(8, total)
	})
}

func (s *EngineSuite) TestNonCreationEventsAreIgnored() {
	ctx := context.Background()

	// Direction changes and retractions dispatch Created=false; neither
	// may move the total or grow the ledger.
	s.Require().NoError(s.engine.HandleVoteChanged(ctx, s.change(s.voter, votemodels.DirectionDown, false)))
	s.Require().NoError(s.engine.HandleVoteChanged(ctx, votemodels.Changed{FactID: s.factID, VoterID: s.voter}))

	_, err := s.scores.Get(ctx, s.author)
	s.ErrorIs(err, store.ErrNotFound)

	entries, err := s.audits.ListByUser(ctx, s.author, 0)
	s.Require().NoError(err)
	s.Empty(entries)
}

func (s *EngineSuite) TestSelfVoteDoesNotMoveReputation() {
	ctx := context.Background()

	s.Require().NoError(s.engine.HandleVoteChanged(ctx, s.change(s.author, votemodels.DirectionUp, true)))

	_, err := s.scores.Get(ctx, s.author)
	s.ErrorIs(err, store.ErrNotFound)

	entries, err := s.audits.ListByUser(ctx, s.author, 0)
	s.Require().NoError(err)
	s.Empty(entries)
}

func (s *EngineSuite) TestUnknownFactFailsBeforeAnyWrite() {
	ctx := context.Background()

	change := votemodels.Changed{
		FactID:    id.NewFactID(),
		VoterID:   s.voter,
		Direction: votemodels.DirectionUp,
		Created:   true,
	}
	s.Error(s.engine.HandleVoteChanged(ctx, change))

	_, err := s.scores.Get(ctx, s.author)
	s.ErrorIs(err, store.ErrNotFound)
}

func (s *EngineSuite) TestPromotionNotifiedExactlyOnce() {
	ctx := context.Background()

	// 5 -> 15 crosses into Curious Mind.
	s.scores.Seed(s.author, 5)
	s.Require().NoError(s.engine.HandleVoteChanged(ctx, s.change(s.voter, votemodels.DirectionUp, true)))

	list, err := s.inbox.ListByRecipient(ctx, s.author)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal(notification.TypeRankUp, list[0].Type)
	s.Equal("Rank Up!", list[0].Title)
	s.Contains(list[0].Message, "Curious Mind")
	s.Require().NotNil(list[0].Target)
	s.Equal("fact", list[0].Target.Kind)
	s.Equal(s.factID.String(), list[0].Target.ID)

	// 15 -> 25 stays inside the tier; no second notification.
	s.Require().NoError(s.engine.HandleVoteChanged(ctx, s.change(id.NewUserID(), votemodels.DirectionUp, true)))

	list, err = s.inbox.ListByRecipient(ctx, s.author)
	s.Require().NoError(err)
	s.Len(list, 1)
}

func (s *EngineSuite) TestDownwardCrossingIsSilent() {
	ctx := context.Background()

	// 10 -> 8 drops below the Curious Mind threshold; demotions exist
	// in the rank math but never produce a notification.
	s.scores.Seed(s.author, 10)
	s.Require().NoError(s.engine.HandleVoteChanged(ctx, s.change(s.voter, votemodels.DirectionDown, true)))

	total, err := s.scores.Get(ctx, s.author)
	s.Require().NoError(err)
	s.Equal(8, total)

	list, err := s.inbox.ListByRecipient(ctx, s.author)
	s.Require().NoError(err)
	s.Empty(list)
}

func (s *EngineSuite) TestConcurrentVotersPromoteExactlyOncePerBoundary() {
	ctx := context.Background()

	// Five concurrent first upvotes take the author 0 -> 50. The windows
	// partition [0,50], so the 10 and 50 crossings each fire once no
	// matter how the adds interleave.
	var wg sync.WaitGroup
	errs := make(chan error, 5)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- s.engine.HandleVoteChanged(ctx, s.change(id.NewUserID(), votemodels.DirectionUp, true))
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		s.Require().NoError(err)
	}

	total, err := s.scores.Get(ctx, s.author)
	s.Require().NoError(err)
	s.Equal(50, total)

	list, err := s.inbox.ListByRecipient(ctx, s.author)
	s.Require().NoError(err)
	s.Len(list, 2)

	entries, err := s.audits.ListByUser(ctx, s.author, 0)
	s.Require().NoError(err)
	s.Len(entries, 5)
}

func (s *EngineSuite) TestSinkFailureIsSwallowed() {
	ctx := context.Background()
	ctrl := gomock.NewController(s.T())

	sink := mocks.NewMockSink(ctrl)
	sink.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	engine := NewEngine(
		s.facts,
		s.scores,
		audit.NewService(s.audits),
		sink,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		nil,
	)

	s.scores.Seed(s.author, 5)
	s.Require().NoError(engine.HandleVoteChanged(ctx, s.change(s.voter, votemodels.DirectionUp, true)))

	// The delta and its audit entry land even though delivery failed.
	total, err := s.scores.Get(ctx, s.author)
	s.Require().NoError(err)
	s.Equal(15, total)

	entries, err := s.audits.ListByUser(ctx, s.author, 0)
	s.Require().NoError(err)
	s.Len(entries, 1)
}

func (s *EngineSuite) TestGet() {
	ctx := context.Background()

	s.Run("unknown user is not found", func() {
		_, err := s.engine.Get(ctx, id.NewUserID())
		s.ErrorIs(err, store.ErrNotFound)
	})

	s.Run("known user carries total and rank title", func() {
		s.scores.Seed(s.author, 120)
		rep, err := s.engine.Get(ctx, s.author)
		s.Require().NoError(err)
		s.Equal(120, rep.Total)
		s.Equal(RankResearcher, rep.Rank)
	})
}
