// Package chain provides a fluent wrapper around SimpleResult for building
// synchronous pipelines without branching on the result at every step.
//
// Key operations:
// - Start/FromValue: begin a chain from a SimpleResult or a value
// - Then (function): switch to a new success type via a result-returning step
// - Map (function): transform the successful value (T -> U)
// - Then/Map (methods): same-type steps for compact call sites
// - Ensure: run a side effect on success without changing the result
// - Finally: collapse the chain into a final value via handlers
//
// Type-changing steps are package functions because Go methods cannot
// introduce type parameters. Every step short-circuits on non-success.
package chain
