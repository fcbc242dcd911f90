package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/Veselin15/FactNode/internal/audit"
	factmodels "github.com/Veselin15/FactNode/internal/fact/models"
	factstore "github.com/Veselin15/FactNode/internal/fact/store"
	"github.com/Veselin15/FactNode/internal/notification"
	"github.com/Veselin15/FactNode/internal/reputation"
	repstore "github.com/Veselin15/FactNode/internal/reputation/store"
	"github.com/Veselin15/FactNode/internal/tally"
	voteservice "github.com/Veselin15/FactNode/internal/vote/service"
	votestore "github.com/Veselin15/FactNode/internal/vote/store"
	id "github.com/Veselin15/FactNode/pkg/domain"
	"github.com/Veselin15/FactNode/pkg/testutil"
)

type nopFlagger struct{}

func (nopFlagger) Flag(id.FactID) {}

type voteFixture struct {
	router http.Handler
	voter  id.UserID
	factID id.FactID
}

// newVoteFixture builds the handler on the real pipeline with memory
// stores. Tests inject the authenticated voter per request.
func newVoteFixture(t *testing.T) voteFixture {
	t.Helper()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	votes := votestore.NewInMemory()
	facts := factstore.NewInMemory()
	factID := id.NewFactID()
	require.NoError(t, facts.Save(ctx, &factmodels.Fact{ID: factID, AuthorID: id.NewUserID()}))

	engine := reputation.NewEngine(
		facts,
		repstore.NewInMemory(),
		audit.NewService(audit.NewInMemoryStore()),
		notification.Fanout{notification.NewStoreSink(notification.NewInMemoryStore())},
		logger,
		nil,
	)
	svc := voteservice.New(votes, facts, tally.New(votes, facts, logger), engine, nopFlagger{}, logger, nil)

	r := chi.NewRouter()
	New(svc, logger).Register(r)

	return voteFixture{router: r, voter: id.NewUserID(), factID: factID}
}

func (fx voteFixture) cast(t *testing.T, factID, direction string) *http.Request {
	t.Helper()
	req := testutil.NewJSONRequest(t, http.MethodPost, "/facts/"+factID+"/vote",
		map[string]string{"direction": direction})
	return testutil.WithUserID(req, fx.voter)
}

func TestCastRequiresAuth(t *testing.T) {
	fx := newVoteFixture(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/facts/"+fx.factID.String()+"/vote",
		map[string]string{"direction": "UP"})
	rec := testutil.DoRequest(fx.router, req)

	testutil.AssertStatusAndError(t, rec, http.StatusUnauthorized, "unauthorized")
}

func TestCastVote(t *testing.T) {
	fx := newVoteFixture(t)

	rec := testutil.DoRequest(fx.router, fx.cast(t, fx.factID.String(), "UP"))
	require.Equal(t, http.StatusOK, rec.Code)

	resp := testutil.UnmarshalResponse[CastResponse](t, rec)
	require.Equal(t, "UP", resp.Direction)
	require.Equal(t, fx.factID.String(), resp.FactID)
	require.Equal(t, 1, resp.Upvotes)
	require.Equal(t, 0, resp.Downvotes)

	// Flip to DOWN; the response tallies move with it.
	rec = testutil.DoRequest(fx.router, fx.cast(t, fx.factID.String(), "down"))
	require.Equal(t, http.StatusOK, rec.Code)

	resp = testutil.UnmarshalResponse[CastResponse](t, rec)
	require.Equal(t, "DOWN", resp.Direction)
	require.Equal(t, 0, resp.Upvotes)
	require.Equal(t, 1, resp.Downvotes)
}

func TestCastRejectsBadInput(t *testing.T) {
	fx := newVoteFixture(t)

	t.Run("invalid direction", func(t *testing.T) {
		rec := testutil.DoRequest(fx.router, fx.cast(t, fx.factID.String(), "SIDEWAYS"))
		testutil.AssertStatusAndError(t, rec, http.StatusBadRequest, "invalid_input")
	})

	t.Run("malformed body", func(t *testing.T) {
		req := testutil.NewRequest(t, http.MethodPost, "/facts/"+fx.factID.String()+"/vote")
		rec := testutil.DoRequest(fx.router, testutil.WithUserID(req, fx.voter))
		testutil.AssertStatusAndError(t, rec, http.StatusBadRequest, "bad_request")
	})

	t.Run("malformed fact id", func(t *testing.T) {
		rec := testutil.DoRequest(fx.router, fx.cast(t, "not-a-uuid", "UP"))
		testutil.AssertStatusAndError(t, rec, http.StatusBadRequest, "invalid_input")
	})

	t.Run("unknown fact", func(t *testing.T) {
		rec := testutil.DoRequest(fx.router, fx.cast(t, id.NewFactID().String(), "UP"))
		testutil.AssertStatusAndError(t, rec, http.StatusNotFound, "not_found")
	})
}

func TestRetractVote(t *testing.T) {
	fx := newVoteFixture(t)

	rec := testutil.DoRequest(fx.router, fx.cast(t, fx.factID.String(), "UP"))
	require.Equal(t, http.StatusOK, rec.Code)

	retract := func() *http.Request {
		req := testutil.NewRequest(t, http.MethodDelete, "/facts/"+fx.factID.String()+"/vote")
		return testutil.WithUserID(req, fx.voter)
	}

	rec = testutil.DoRequest(fx.router, retract())
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "retracted")

	// Retracting again stays a 200 no-op.
	rec = testutil.DoRequest(fx.router, retract())
	require.Equal(t, http.StatusOK, rec.Code)
}
