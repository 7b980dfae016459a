// Package future provides poll-driven futures for Go and the transpose
// combinator over them: an optional or fallible future becomes a single
// future whose eventual output carries the optional/fallible shape.
// The package consumes a driver contract (repeated polling) but ships no
// driver of its own.
package future
