package prom

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/NetPo4ki/go-future/future"
)

// pendingOnce is pending on the first poll and done on the second.
type pendingOnce struct {
	polls int
}

func (p *pendingOnce) Poll(context.Context) (int, bool) {
	p.polls++
	return 5, p.polls > 1
}

func TestInstrumentCountsPolls(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	m := New(reg)
	f := Instrument[int](m, &pendingOnce{})

	ctx := context.Background()
	if _, done := f.Poll(ctx); done {
		t.Fatal("expected pending on first poll")
	}
	v, done := f.Poll(ctx)
	if !done || v != 5 {
		t.Fatalf("expected (5, true), got (%d, %v)", v, done)
	}

	if got := testutil.ToFloat64(m.polls); got != 2 {
		t.Fatalf("polls counter: %v", got)
	}
	if got := testutil.ToFloat64(m.pending); got != 1 {
		t.Fatalf("pending counter: %v", got)
	}
	if got := testutil.ToFloat64(m.completions); got != 1 {
		t.Fatalf("completions counter: %v", got)
	}
}

func TestInstrumentTransparentOverTranspose(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	m := New(reg)
	of := future.TransposeOption[int](future.Some(future.Ready(3)))
	f := Instrument[future.Option[int]](m, of)

	v, done := f.Poll(context.Background())
	if !done || v != future.Some(3) {
		t.Fatalf("expected Some(3), got (%+v, %v)", v, done)
	}
	if got := testutil.ToFloat64(m.completions); got != 1 {
		t.Fatalf("completions counter: %v", got)
	}
}
