// Package prom instruments futures with Prometheus counters. Instrumented
// futures stay pass-through: polling behavior and results are unchanged,
// only counted.
package prom

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/NetPo4ki/go-future/future"
)

// Metrics holds the poll counters for a set of instrumented futures.
type Metrics struct {
	polls       prometheus.Counter
	pending     prometheus.Counter
	completions prometheus.Counter
}

// New registers the counters with reg and returns the Metrics handle.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		polls: factory.NewCounter(prometheus.CounterOpts{
			Name: "future_polls_total",
			Help: "Polls delivered to instrumented futures.",
		}),
		pending: factory.NewCounter(prometheus.CounterOpts{
			Name: "future_polls_pending_total",
			Help: "Polls that left an instrumented future pending.",
		}),
		completions: factory.NewCounter(prometheus.CounterOpts{
			Name: "future_completions_total",
			Help: "Instrumented futures driven to completion.",
		}),
	}
}

type instrumented[T any] struct {
	m *Metrics
	f future.Future[T]
}

// Instrument wraps f so every poll and its final completion are counted
// in m. The wrapper delegates everything else to f unchanged.
func Instrument[T any](m *Metrics, f future.Future[T]) future.Future[T] {
	return &instrumented[T]{m: m, f: f}
}

func (i *instrumented[T]) Poll(ctx context.Context) (T, bool) {
	i.m.polls.Inc()
	v, done := i.f.Poll(ctx)
	if done {
		i.m.completions.Inc()
	} else {
		i.m.pending.Inc()
	}
	return v, done
}

func (i *instrumented[T]) IntoFuture() future.Future[T] { return i }
