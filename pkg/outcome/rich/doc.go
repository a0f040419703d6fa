// Package rich defines Result, a five-variant outcome that pairs every
// non-plain variant with a typed diagnostic annotation: plain success,
// informative success, warned success, failure, and critical failure.
//
// Highlights:
// - OK/AddInfo/AddWarning/Fail/Critical: construct a Result
// - Bind: chain result-returning functions, short-circuiting on failure
// - Map: transform the success value, keeping its annotation
// - SuccessVal/ErrorVal: comma-ok access to the active payload
// - ToSimple/LiftSimple: convert to and from outcome.SimpleResult
// - Severity: classify the variant on the outcome.Severity scale
//
// Annotation type parameters are bounded by Combiner so that diagnostics
// collected across a chain can be merged instead of overwritten. Notes is a
// ready-made Combiner for the common string-diagnostics case.
package rich
