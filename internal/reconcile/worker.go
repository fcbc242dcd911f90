// Package reconcile repairs tallies after partial pipeline failures.
// A vote that committed but whose recount failed leaves the cached
// counters stale; the worker re-runs the same recount-from-source
// logic until the materialized view matches the ledger again.
package reconcile

import (
	"context"
	"log/slog"

	factmodels "github.com/Veselin15/FactNode/internal/fact/models"
	id "github.com/Veselin15/FactNode/pkg/domain"
)

// Recounter is satisfied by the tally aggregator.
type Recounter interface {
	Recount(ctx context.Context, factID id.FactID) (factmodels.Tallies, error)
}

// Worker drains flagged fact IDs and recounts them in the background.
type Worker struct {
	recounter Recounter
	queue     chan id.FactID
	logger    *slog.Logger
}

// NewWorker constructs a worker with a bounded queue.
func NewWorker(recounter Recounter, logger *slog.Logger, buffer int) *Worker {
	if buffer <= 0 {
		buffer = 256
	}
	return &Worker{
		recounter: recounter,
		queue:     make(chan id.FactID, buffer),
		logger:    logger,
	}
}

// Flag enqueues a fact for recounting. Never blocks the request path:
// when the queue is full the flag is dropped and logged, and the next
// successful vote on the fact recounts it anyway.
func (w *Worker) Flag(factID id.FactID) {
	select {
	case w.queue <- factID:
	default:
		w.logger.Warn("reconcile queue full, dropping flag", "fact_id", factID)
	}
}

// Run consumes flagged facts until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case factID := <-w.queue:
			if _, err := w.recounter.Recount(ctx, factID); err != nil {
				// Requeue is pointless if storage is down; the flag
				// stays dropped and a later vote self-heals the fact.
				w.logger.ErrorContext(ctx, "reconcile recount failed",
					"fact_id", factID,
					"error", err,
				)
			}
		}
	}
}
