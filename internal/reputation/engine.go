// Package reputation converts qualifying vote events into author
// reputation changes, detects rank crossings, and fans promotions out
// to the notification sink.
package reputation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/Veselin15/FactNode/internal/audit"
	factstore "github.com/Veselin15/FactNode/internal/fact/store"
	"github.com/Veselin15/FactNode/internal/notification"
	"github.com/Veselin15/FactNode/internal/reputation/metrics"
	"github.com/Veselin15/FactNode/internal/reputation/store"
	votemodels "github.com/Veselin15/FactNode/internal/vote/models"
	id "github.com/Veselin15/FactNode/pkg/domain"
)

var tracer = otel.Tracer("factnode/reputation")

// deltaByDirection maps a vote direction to the signed reputation
// delta for the fact's author. An unmapped direction is a no-op, not
// an error.
var deltaByDirection = map[votemodels.Direction]int{
	votemodels.DirectionUp:   10,
	votemodels.DirectionDown: -2,
}

// Engine applies reputation deltas for newly created votes.
//
// Deliberate asymmetry, inherited from the product rules: only vote
// creation moves reputation. A voter flipping UP to DOWN leaves the
// author's +10 in place, and a retraction does not claw anything back.
// Do not "fix" this here without a product decision.
type Engine struct {
	facts   factstore.Store
	scores  store.Store
	audits  *audit.Service
	sink    notification.Sink
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewEngine constructs the engine with its collaborators.
func NewEngine(
	facts factstore.Store,
	scores store.Store,
	audits *audit.Service,
	sink notification.Sink,
	logger *slog.Logger,
	m *metrics.Metrics,
) *Engine {
	return &Engine{
		facts:   facts,
		scores:  scores,
		audits:  audits,
		sink:    sink,
		logger:  logger,
		metrics: m,
	}
}

// HandleVoteChanged reacts to a committed vote mutation. Only events
// with Created set qualify; everything else returns immediately.
func (e *Engine) HandleVoteChanged(ctx context.Context, change votemodels.Changed) error {
	if !change.Created {
		return nil
	}

	ctx, span := tracer.Start(ctx, "reputation.apply")
	defer span.End()

	fact, err := e.facts.FindByID(ctx, change.FactID)
	if err != nil {
		return fmt.Errorf("resolve fact author: %w", err)
	}

	// Self-votes count toward the public tally but never toward the
	// author's own reputation.
	if fact.AuthorID == change.VoterID {
		e.metrics.IncrementSelfVoteSkipped()
		return nil
	}

	delta, ok := deltaByDirection[change.Direction]
	if !ok || delta == 0 {
		return nil
	}

	// The atomic add returns the post-mutation total; deriving the old
	// total from it keeps the before/after pair consistent even while
	// other voters are mutating the same author. Each concurrent add
	// observes a distinct (old, new) window, so every crossing is
	// detected by exactly one of them.
	newTotal, err := e.scores.AddScore(ctx, fact.AuthorID, delta)
	if err != nil {
		return fmt.Errorf("apply reputation delta: %w", err)
	}
	oldTotal := newTotal - delta
	e.metrics.IncrementDelta(string(change.Direction))

	oldRank, newRank := RankFor(oldTotal), RankFor(newTotal)
	if newRank > oldRank && newTotal > oldTotal {
		e.notifyPromotion(ctx, fact.AuthorID, change.FactID, newRank)
	}

	entry := audit.Entry{
		UserID:        fact.AuthorID,
		Reason:        audit.ReasonVoteReceived,
		Delta:         delta,
		RelatedFactID: &change.FactID,
		Timestamp:     time.Now(),
	}
	if err := e.audits.Append(ctx, entry); err != nil {
		return fmt.Errorf("append audit entry: %w", err)
	}

	e.logger.InfoContext(ctx, "reputation delta applied",
		"author_id", fact.AuthorID,
		"fact_id", change.FactID,
		"delta", delta,
		"total", newTotal,
	)
	return nil
}

// notifyPromotion hands the rank-up event to the sink. Sink failures
// are logged and swallowed; delivery is best effort by contract.
func (e *Engine) notifyPromotion(ctx context.Context, authorID id.UserID, factID id.FactID, newRank Rank) {
	e.metrics.IncrementPromotion()

	n := notification.Notification{
		ID:          id.NewNotificationID(),
		RecipientID: authorID,
		Type:        notification.TypeRankUp,
		Title:       "Rank Up!",
		Message:     fmt.Sprintf("Congratulations! You reached the rank of %s.", newRank),
		Target:      &notification.TargetRef{Kind: "fact", ID: factID.String()},
		CreatedAt:   time.Now(),
	}
	if err := e.sink.Notify(ctx, n); err != nil {
		e.logger.WarnContext(ctx, "rank promotion notification failed",
			"recipient_id", authorID,
			"rank", newRank.String(),
			"error", err,
		)
	}
}

// Reputation is the read model for a user's total and rank title.
type Reputation struct {
	UserID id.UserID
	Total  int
	Rank   Rank
}

// Get returns the user's reputation and rank title.
func (e *Engine) Get(ctx context.Context, userID id.UserID) (Reputation, error) {
	total, err := e.scores.Get(ctx, userID)
	if err != nil {
		return Reputation{}, err
	}
	return Reputation{UserID: userID, Total: total, Rank: RankFor(total)}, nil
}
