// Package service owns the vote ledger and drives the downstream
// pipeline. A committed vote mutation is dispatched to the named
// handlers in a fixed order: tally recount first, then the reputation
// engine for creates. Each stage commits independently; failures after
// the vote commit are logged and flagged for reconciliation rather
// than surfaced to the voter.
package service

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	factmodels "github.com/Veselin15/FactNode/internal/fact/models"
	factstore "github.com/Veselin15/FactNode/internal/fact/store"
	"github.com/Veselin15/FactNode/internal/vote/metrics"
	"github.com/Veselin15/FactNode/internal/vote/models"
	votestore "github.com/Veselin15/FactNode/internal/vote/store"
	id "github.com/Veselin15/FactNode/pkg/domain"
	dErrors "github.com/Veselin15/FactNode/pkg/domain-errors"
)

var tracer trace.Tracer = otel.Tracer("factnode/vote")

// Recounter recomputes a fact's tallies from the ledger.
type Recounter interface {
	Recount(ctx context.Context, factID id.FactID) (factmodels.Tallies, error)
}

// ChangeHandler reacts to committed vote mutations. Implemented by the
// reputation engine.
type ChangeHandler interface {
	HandleVoteChanged(ctx context.Context, change models.Changed) error
}

// Flagger marks a fact for background reconciliation.
type Flagger interface {
	Flag(factID id.FactID)
}

// CastResult is returned to the caller after the pipeline settles.
type CastResult struct {
	FactID    id.FactID
	Direction models.Direction
	Created   bool
	Tallies   factmodels.Tallies
}

// Service is the vote ledger plus pipeline dispatch.
type Service struct {
	votes      votestore.Store
	facts      factstore.Store
	recounter  Recounter
	reputation ChangeHandler
	reconciler Flagger
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

// New constructs the vote service.
func New(
	votes votestore.Store,
	facts factstore.Store,
	recounter Recounter,
	reputation ChangeHandler,
	reconciler Flagger,
	logger *slog.Logger,
	m *metrics.Metrics,
) *Service {
	return &Service{
		votes:      votes,
		facts:      facts,
		recounter:  recounter,
		reputation: reputation,
		reconciler: reconciler,
		logger:     logger,
		metrics:    m,
	}
}

// Cast upserts the voter's vote on a fact. A repeat with the same
// direction is a no-op upsert; a different direction replaces it in
// place. Only a genuine insert triggers the reputation stage.
func (s *Service) Cast(ctx context.Context, voterID id.UserID, factID id.FactID, direction models.Direction) (CastResult, error) {
	ctx, span := tracer.Start(ctx, "vote.cast")
	defer span.End()
	start := time.Now()

	if direction != models.DirectionUp && direction != models.DirectionDown {
		return CastResult{}, dErrors.New(dErrors.CodeInvalidInput, "direction must be UP or DOWN")
	}

	// Reject before any write when the fact is unknown.
	if _, err := s.facts.FindByID(ctx, factID); err != nil {
		return CastResult{}, err
	}

	vote := &models.Vote{VoterID: voterID, FactID: factID, Direction: direction}
	created, err := s.votes.Upsert(ctx, vote)
	if err != nil {
		return CastResult{}, dErrors.Wrap(dErrors.CodeUnavailable, "vote could not be recorded", err)
	}
	s.metrics.IncrementCast(string(direction), created)

	change := models.Changed{
		FactID:    factID,
		VoterID:   voterID,
		Direction: direction,
		Created:   created,
	}
	tallies := s.dispatch(ctx, change)

	s.metrics.ObserveCastLatency(time.Since(start))
	return CastResult{FactID: factID, Direction: direction, Created: created, Tallies: tallies}, nil
}

// Retract deletes the voter's vote if present. Tallies recompute, but
// reputation is deliberately left alone: only vote creation moves it.
func (s *Service) Retract(ctx context.Context, voterID id.UserID, factID id.FactID) error {
	ctx, span := tracer.Start(ctx, "vote.retract")
	defer span.End()

	existed, err := s.votes.Delete(ctx, voterID, factID)
	if err != nil {
		return dErrors.Wrap(dErrors.CodeUnavailable, "vote could not be retracted", err)
	}
	if !existed {
		return nil
	}
	s.metrics.IncrementRetracted()

	s.dispatch(ctx, models.Changed{FactID: factID, VoterID: voterID, Created: false})
	return nil
}

// Find returns the voter's current vote on a fact, if any.
func (s *Service) Find(ctx context.Context, voterID id.UserID, factID id.FactID) (*models.Vote, error) {
	return s.votes.Find(ctx, voterID, factID)
}

// dispatch runs the downstream handlers in their fixed order. The vote
// row is already durable at this point, so stage failures degrade to
// logged reconciliation work instead of failing the request.
func (s *Service) dispatch(ctx context.Context, change models.Changed) factmodels.Tallies {
	tallies, err := s.recounter.Recount(ctx, change.FactID)
	if err != nil {
		s.metrics.IncrementPipelineFailure("tally")
		s.reconciler.Flag(change.FactID)
		s.logger.ErrorContext(ctx, "tally recount failed after vote commit",
			"fact_id", change.FactID,
			"error", err,
		)
		// Serve the cached counters; the reconciler will converge them.
		if stale, readErr := s.facts.GetTallies(ctx, change.FactID); readErr == nil {
			tallies = stale
		} else {
			tallies = factmodels.Tallies{FactID: change.FactID}
		}
	}

	if change.Created {
		if err := s.reputation.HandleVoteChanged(ctx, change); err != nil {
			s.metrics.IncrementPipelineFailure("reputation")
			s.logger.ErrorContext(ctx, "reputation stage failed after vote commit",
				"fact_id", change.FactID,
				"voter_id", change.VoterID,
				"error", err,
			)
		}
	}

	return tallies
}
