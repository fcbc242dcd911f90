package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the reputation engine.
type Metrics struct {
	DeltasApplied  *prometheus.CounterVec
	RankPromotions prometheus.Counter
	SelfVotesSkipped prometheus.Counter
}

// New creates a Metrics instance with all reputation metrics registered.
func New() *Metrics {
	return &Metrics{
		DeltasApplied: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "factnode_reputation_deltas_total",
			Help: "Total reputation deltas applied by vote direction",
		}, []string{"direction"}),

		RankPromotions: promauto.NewCounter(prometheus.CounterOpts{
			Name: "factnode_reputation_rank_promotions_total",
			Help: "Total rank promotions detected",
		}),

		SelfVotesSkipped: promauto.NewCounter(prometheus.CounterOpts{
			Name: "factnode_reputation_self_votes_skipped_total",
			Help: "Total votes excluded from reputation because voter is the author",
		}),
	}
}

// IncrementDelta records one applied delta.
func (m *Metrics) IncrementDelta(direction string) {
	if m != nil {
		m.DeltasApplied.WithLabelValues(direction).Inc()
	}
}

// IncrementPromotion records one detected rank crossing.
func (m *Metrics) IncrementPromotion() {
	if m != nil {
		m.RankPromotions.Inc()
	}
}

// IncrementSelfVoteSkipped records one excluded self-vote.
func (m *Metrics) IncrementSelfVoteSkipped() {
	if m != nil {
		m.SelfVotesSkipped.Inc()
	}
}
