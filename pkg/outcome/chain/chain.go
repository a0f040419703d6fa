package chain

import (
	"github.com/ib-77/outcome/pkg/outcome"
)

// Chain wraps a SimpleResult to enable fluent chaining.
type Chain[T, E, C any] struct {
	res outcome.SimpleResult[T, E, C]
}

// Start creates a new chain from a SimpleResult.
func Start[T, E, C any](r outcome.SimpleResult[T, E, C]) Chain[T, E, C] {
	return Chain[T, E, C]{res: r}
}

// FromValue creates a new chain from a successful value.
func FromValue[T, E, C any](v T) Chain[T, E, C] {
	return Chain[T, E, C]{res: outcome.Success[T, E, C](v)}
}

// Result returns the underlying SimpleResult.
func (c Chain[T, E, C]) Result() outcome.SimpleResult[T, E, C] {
	return c.res
}

// Then chains a function that returns a SimpleResult with a new success
// type.
func Then[T, U, E, C any](c Chain[T, E, C],
	onSuccess func(T) outcome.SimpleResult[U, E, C]) Chain[U, E, C] {

	return Chain[U, E, C]{res: outcome.Bind(c.res, onSuccess)}
}

// Map chains a pure transformation to a new success type.
func Map[T, U, E, C any](c Chain[T, E, C], onSuccess func(T) U) Chain[U, E, C] {
	return Chain[U, E, C]{res: outcome.MapSuccess(c.res, onSuccess)}
}

// Then chains a same-type, result-returning step.
func (c Chain[T, E, C]) Then(onSuccess func(T) outcome.SimpleResult[T, E, C]) Chain[T, E, C] {
	return Chain[T, E, C]{res: outcome.Bind(c.res, onSuccess)}
}

// Map chains a same-type pure transformation.
func (c Chain[T, E, C]) Map(onSuccess func(T) T) Chain[T, E, C] {
	return Chain[T, E, C]{res: outcome.MapSuccess(c.res, onSuccess)}
}

// Ensure performs a side effect on success without changing the result.
func (c Chain[T, E, C]) Ensure(onSuccess func(T)) Chain[T, E, C] {
	return Chain[T, E, C]{res: outcome.Tee(c.res, onSuccess)}
}

// Finally collapses the chain into a final value using outcome.Finally.
func Finally[T, E, C, U any](c Chain[T, E, C],
	onSuccess func(T) U,
	onFail func(E) U,
	onCritical func(C) U) U {

	return outcome.Finally(c.res, onSuccess, onFail, onCritical)
}
