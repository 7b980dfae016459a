package future

import "context"

// Future is a deferred computation driven by repeated polling. Poll never
// blocks: it either advances the computation and reports completion with the
// final value, or reports that the computation is still pending and must be
// polled again. ctx is the cancellation context supplied by the driver.
//
// A future must be polled by at most one caller at a time, and must not be
// polled again once it has reported completion.
type Future[T any] interface {
	Poll(ctx context.Context) (T, bool)
}

// IntoFuture is implemented by anything convertible into a Future.
// Concrete futures implement it by returning themselves.
type IntoFuture[T any] interface {
	IntoFuture() Future[T]
}

// FutureFunc adapts an ordinary poll function into a Future.
type FutureFunc[T any] func(ctx context.Context) (T, bool)

// Poll calls f.
func (f FutureFunc[T]) Poll(ctx context.Context) (T, bool) { return f(ctx) }

// IntoFuture returns f itself.
func (f FutureFunc[T]) IntoFuture() Future[T] { return f }

// ReadyFuture completes on the first poll with a fixed value.
type ReadyFuture[T any] struct {
	v T
}

// Ready returns a future that completes immediately with v.
func Ready[T any](v T) ReadyFuture[T] { return ReadyFuture[T]{v: v} }

// Poll completes with the stored value.
func (r ReadyFuture[T]) Poll(context.Context) (T, bool) { return r.v, true }

// IntoFuture returns r itself.
func (r ReadyFuture[T]) IntoFuture() Future[T] { return r }
