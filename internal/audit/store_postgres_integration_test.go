//go:build integration

package audit_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/Veselin15/FactNode/internal/audit"
	id "github.com/Veselin15/FactNode/pkg/domain"
	"github.com/Veselin15/FactNode/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *audit.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.store = audit.NewPostgresStore(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "reputation_log"))
}

func (s *PostgresStoreSuite) TestAppendAndListPaging() {
	ctx := context.Background()
	userID := id.NewUserID()
	factID := id.NewFactID()
	base := time.Now().UTC().Truncate(time.Microsecond).Add(-time.Hour)

	for i := 0; i < audit.PageSize+5; i++ {
		s.Require().NoError(s.store.Append(ctx, audit.Entry{
			UserID:        userID,
			Reason:        audit.ReasonVoteReceived,
			Delta:         10,
			RelatedFactID: &factID,
			Timestamp:     base.Add(time.Duration(i) * time.Second),
		}))
	}

	page0, err := s.store.ListByUser(ctx, userID, 0)
	s.Require().NoError(err)
	s.Require().Len(page0, audit.PageSize)
	s.Equal(audit.ReasonVoteReceived, page0[0].Reason)
	s.Require().NotNil(page0[0].RelatedFactID)
	s.Equal(factID, *page0[0].RelatedFactID)
	// Newest first.
	s.True(page0[0].Timestamp.After(page0[1].Timestamp))

	page1, err := s.store.ListByUser(ctx, userID, 1)
	s.Require().NoError(err)
	s.Len(page1, 5)

	page2, err := s.store.ListByUser(ctx, userID, 2)
	s.Require().NoError(err)
	s.Empty(page2)
}

func (s *PostgresStoreSuite) TestNullRelatedFact() {
	ctx := context.Background()
	userID := id.NewUserID()

	s.Require().NoError(s.store.Append(ctx, audit.Entry{
		UserID:    userID,
		Reason:    audit.ReasonBonus,
		Delta:     25,
		Timestamp: time.Now(),
	}))

	entries, err := s.store.ListByUser(ctx, userID, 0)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Nil(entries[0].RelatedFactID)
	s.Equal(25, entries[0].Delta)
}
