// Package notification defines the sink contract the reputation
// pipeline writes rank-promotion events to, plus the built-in sink
// implementations (inbox store, Kafka fan-out).
//
// Delivery is best effort by contract: the pipeline never rolls back a
// reputation or audit write because a sink failed.
package notification

import "context"

//go:generate mockgen -source=sink.go -destination=mocks/mocks.go -package=mocks Sink

// Sink receives structured notification events. Implementations must
// tolerate being called concurrently.
type Sink interface {
	Notify(ctx context.Context, n Notification) error
}

// Fanout forwards each notification to every sink. Individual sink
// failures are collected but do not stop the remaining sinks.
type Fanout []Sink

func (f Fanout) Notify(ctx context.Context, n Notification) error {
	var firstErr error
	for _, sink := range f {
		if err := sink.Notify(ctx, n); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
