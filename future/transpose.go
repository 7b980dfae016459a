package future

import "context"

// OptionFuture adapts an optional future into a future optional: absent
// completes immediately with None, present passes every poll through to the
// wrapped future and wraps its final value in Some.
//
// The adapter owns the wrapped future exclusively. It must be driven by one
// caller at a time. A completed None-state adapter stays safe to poll and
// keeps answering None; polling a present-state adapter after completion
// follows the wrapped future's own contract.
type OptionFuture[T any] struct {
	inner Future[T]
}

// TransposeOption converts Option[F] into a future of Option[T]. A Some
// input is converted into its future form eagerly, before any poll;
// construction itself never suspends and never fails.
func TransposeOption[T any, F IntoFuture[T]](o Option[F]) *OptionFuture[T] {
	f, ok := o.Get()
	if !ok {
		return &OptionFuture[T]{}
	}
	return &OptionFuture[T]{inner: f.IntoFuture()}
}

// Poll completes with None when no future is wrapped, otherwise delegates
// one poll to the wrapped future.
func (of *OptionFuture[T]) Poll(ctx context.Context) (Option[T], bool) {
	if of.inner == nil {
		return None[T](), true
	}
	v, done := of.inner.Poll(ctx)
	if !done {
		return Option[T]{}, false
	}
	return Some(v), true
}

// IntoFuture returns of itself.
func (of *OptionFuture[T]) IntoFuture() Future[Option[T]] { return of }

// ResultFuture adapts a fallible future into a future result: an error
// completes immediately with Err, a value passes every poll through to the
// wrapped future and wraps its final value in Ok.
//
// The stored error is surrendered exactly once. Polling again after an Err
// completion is a contract violation by the driver and panics; the same
// discipline as re-polling any completed future, made detectable here.
type ResultFuture[T any] struct {
	inner Future[T]
	err   error
	taken bool
}

// TransposeResult converts Result[F] into a future of Result[T]. An Ok
// input is converted into its future form eagerly, before any poll;
// construction itself never suspends and never fails.
func TransposeResult[T any, F IntoFuture[T]](r Result[F]) *ResultFuture[T] {
	f, err := r.Get()
	if err != nil {
		return &ResultFuture[T]{err: err}
	}
	return &ResultFuture[T]{inner: f.IntoFuture()}
}

// Poll completes with the stored error when the input was Err, otherwise
// delegates one poll to the wrapped future.
func (rf *ResultFuture[T]) Poll(ctx context.Context) (Result[T], bool) {
	if rf.inner != nil {
		v, done := rf.inner.Poll(ctx)
		if !done {
			return Result[T]{}, false
		}
		return Ok(v), true
	}
	if rf.taken {
		panic("future: ResultFuture polled after completion")
	}
	rf.taken = true
	err := rf.err
	rf.err = nil
	return Err[T](err), true
}

// IntoFuture returns rf itself.
func (rf *ResultFuture[T]) IntoFuture() Future[Result[T]] { return rf }
