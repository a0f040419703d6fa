// Package outcome defines SimpleResult[Ok, E, C], a minimal three-variant
// outcome type separating expected failures from critical ones, plus the
// pure combinators that operate on it.
//
// Highlights:
// - Success/Fail/Critical: construct a SimpleResult
// - Bind: chain result-returning functions, short-circuiting on non-success
// - MapSuccess: transform the success value only
// - Validate: turn a predicate into a Success/Fail decision
// - Tee: run a side effect on success without changing the result
// - Finally: collapse to a plain value via one handler per variant
// - Severity: the ordered OK < Info < Warning < Error < Critical scale
//
// The Error channel is for valid code operating on invalid input; the
// Critical channel is for defects in the program or its dependencies.
// For variants that carry diagnostic annotations, see package rich.
package outcome
