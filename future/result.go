package future

// Result represents either a value of type T or an error. The zero Result
// is Ok with the zero value of T.
type Result[T any] struct {
	v   T
	err error
}

// Ok returns a successful Result holding v.
func Ok[T any](v T) Result[T] { return Result[T]{v: v} }

// Err returns a failed Result holding err.
func Err[T any](err error) Result[T] { return Result[T]{err: err} }

// Get returns the value and the error, if any.
func (r Result[T]) Get() (T, error) { return r.v, r.err }

// IsOk reports whether the Result is a value.
func (r Result[T]) IsOk() bool { return r.err == nil }

// IsErr reports whether the Result is an error.
func (r Result[T]) IsErr() bool { return r.err != nil }
