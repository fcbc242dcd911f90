package audit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	id "github.com/Veselin15/FactNode/pkg/domain"
	dErrors "github.com/Veselin15/FactNode/pkg/domain-errors"
)

type ServiceSuite struct {
	suite.Suite
	store   *InMemoryStore
	service *Service
	userID  id.UserID
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.store = NewInMemoryStore()
	s.service = NewService(s.store)
	s.userID = id.NewUserID()
}

func (s *ServiceSuite) TestAppendValidation() {
	ctx := context.Background()

	s.Run("missing user is rejected", func() {
		err := s.service.Append(ctx, Entry{Reason: ReasonVoteReceived, Delta: 10})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	s.Run("missing reason is rejected", func() {
		err := s.service.Append(ctx, Entry{UserID: s.userID, Delta: 10})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	s.Run("zero timestamp is filled in", func() {
		s.Require().NoError(s.service.Append(ctx, Entry{
			UserID: s.userID,
			Reason: ReasonVoteReceived,
			Delta:  10,
		}))

		entries, err := s.service.ListByUser(ctx, s.userID, 0)
		s.Require().NoError(err)
		s.Require().Len(entries, 1)
		s.False(entries[0].Timestamp.IsZero())
	})
}

func (s *ServiceSuite) TestListByUserPaging() {
	ctx := context.Background()
	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < PageSize+10; i++ {
		s.Require().NoError(s.service.Append(ctx, Entry{
			UserID:    s.userID,
			Reason:    ReasonVoteReceived,
			Delta:     10,
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	page0, err := s.service.ListByUser(ctx, s.userID, 0)
	s.Require().NoError(err)
	s.Require().Len(page0, PageSize)
	// Newest first.
	s.Equal(base.Add(time.Duration(PageSize+9)*time.Minute), page0[0].Timestamp)
	s.True(page0[0].Timestamp.After(page0[PageSize-1].Timestamp))

	page1, err := s.service.ListByUser(ctx, s.userID, 1)
	s.Require().NoError(err)
	s.Require().Len(page1, 10)
	s.Equal(base, page1[9].Timestamp)

	page2, err := s.service.ListByUser(ctx, s.userID, 2)
	s.Require().NoError(err)
	s.Empty(page2)

	// Negative pages clamp to the first page.
	clamped, err := s.service.ListByUser(ctx, s.userID, -3)
	s.Require().NoError(err)
	s.Len(clamped, PageSize)
}

func (s *ServiceSuite) TestListByUserIsolation() {
	ctx := context.Background()

	s.Require().NoError(s.service.Append(ctx, Entry{
		UserID: s.userID,
		Reason: ReasonVoteReceived,
		Delta:  10,
	}))

	entries, err := s.service.ListByUser(ctx, id.NewUserID(), 0)
	s.Require().NoError(err)
	s.Empty(entries)
}
