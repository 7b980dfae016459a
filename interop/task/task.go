// Package task bridges goroutine-backed work into the poll-driven future
// world. It enables incremental migration without pulling goroutine
// management into the core library.
package task

import (
	"context"

	"github.com/NetPo4ki/go-future/future"
)

// Task exposes the eventual outcome of a goroutine as a pollable future of
// future.Result[T]. Polling never blocks; it probes whether the goroutine
// has finished.
type Task[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Go runs fn in its own goroutine and returns a Task tracking it. fn
// receives ctx and must honor its cancellation so the goroutine cannot
// outlive the caller; cancelling ctx and abandoning the Task releases
// everything the work held.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Task[T] {
	t := &Task[T]{done: make(chan struct{})}
	go func() {
		t.val, t.err = fn(ctx)
		close(t.done)
	}()
	return t
}

// Poll reports the goroutine's outcome once it has finished. Before that it
// reports pending. ctx cancellation does not fail the poll; it is delivered
// to fn through the construction context.
func (t *Task[T]) Poll(context.Context) (future.Result[T], bool) {
	select {
	case <-t.done:
		if t.err != nil {
			return future.Err[T](t.err), true
		}
		return future.Ok(t.val), true
	default:
		return future.Result[T]{}, false
	}
}

// IntoFuture returns t itself.
func (t *Task[T]) IntoFuture() future.Future[future.Result[T]] { return t }
