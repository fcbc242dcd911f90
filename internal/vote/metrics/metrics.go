package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the vote ledger.
type Metrics struct {
	VotesCast        *prometheus.CounterVec
	VotesRetracted   prometheus.Counter
	CastLatency      prometheus.Histogram
	PipelineFailures *prometheus.CounterVec
}

// New creates a Metrics instance with all vote metrics registered.
func New() *Metrics {
	return &Metrics{
		VotesCast: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "factnode_votes_cast_total",
			Help: "Total vote casts by direction and whether a new row was created",
		}, []string{"direction", "created"}),

		VotesRetracted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "factnode_votes_retracted_total",
			Help: "Total vote retractions that removed a row",
		}),

		CastLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "factnode_vote_cast_duration_seconds",
			Help:    "Duration of the full cast pipeline including tally recount",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),

		PipelineFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "factnode_vote_pipeline_failures_total",
			Help: "Downstream stage failures after a committed vote, by stage",
		}, []string{"stage"}),
	}
}

// IncrementCast records one vote cast.
func (m *Metrics) IncrementCast(direction string, created bool) {
	if m != nil {
		label := "false"
		if created {
			label = "true"
		}
		m.VotesCast.WithLabelValues(direction, label).Inc()
	}
}

// IncrementRetracted records one effective retraction.
func (m *Metrics) IncrementRetracted() {
	if m != nil {
		m.VotesRetracted.Inc()
	}
}

// ObserveCastLatency records the duration of a cast pipeline run.
func (m *Metrics) ObserveCastLatency(d time.Duration) {
	if m != nil {
		m.CastLatency.Observe(d.Seconds())
	}
}

// IncrementPipelineFailure records a non-fatal downstream failure.
func (m *Metrics) IncrementPipelineFailure(stage string) {
	if m != nil {
		m.PipelineFailures.WithLabelValues(stage).Inc()
	}
}
