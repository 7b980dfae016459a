package future

// Option represents an optional value: Some holds a value of type T,
// None holds nothing. The zero Option is None.
type Option[T any] struct {
	v  T
	ok bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] { return Option[T]{v: v, ok: true} }

// None returns an empty Option.
func None[T any]() Option[T] { return Option[T]{} }

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.v, o.ok }

// IsSome reports whether the Option holds a value.
func (o Option[T]) IsSome() bool { return o.ok }

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool { return !o.ok }

// Or returns the value if present, otherwise fallback.
func (o Option[T]) Or(fallback T) T {
	if !o.ok {
		return fallback
	}
	return o.v
}
