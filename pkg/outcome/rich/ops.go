package rich

import (
	"github.com/ib-77/outcome/pkg/outcome"
)

// UnspecifiedFailure is the placeholder annotation LiftSimple attaches to
// failure variants, which carry no annotation on the simple type.
const UnspecifiedFailure = "unspecified failure"

// failureFrom re-types the success parameter of a failure-variant result,
// keeping payload and annotation intact. Panics on success inputs: those
// carry no failure payload, so calling this is a bug in the caller.
func failureFrom[S1, S2 any, I Combiner[I], W Combiner[W], E any, EI Combiner[EI], C any, CI Combiner[CI]](
	from Result[S1, I, W, E, EI, C, CI]) Result[S2, I, W, E, EI, C, CI] {

	if from.IsSuccess() {
		panic("rich: failure re-type called on a success result")
	}
	return Result[S2, I, W, E, EI, C, CI]{
		kind:         from.kind,
		err:          from.err,
		errInfo:      from.errInfo,
		critical:     from.critical,
		criticalInfo: from.criticalInfo,
	}
}

// Bind chains a result-returning function onto a success. Fail and Critical
// short-circuit with payload and annotation intact; next is never called.
//
// Any Info or Warning annotation attached to the input success is DISCARDED,
// not merged into next's outcome. Callers who want accumulation must read
// the annotation (Info/Warning accessors) and Combine it into the next
// result themselves before chaining.
func Bind[S1, S2 any, I Combiner[I], W Combiner[W], E any, EI Combiner[EI], C any, CI Combiner[CI]](
	r Result[S1, I, W, E, EI, C, CI],
	next func(S1) Result[S2, I, W, E, EI, C, CI]) Result[S2, I, W, E, EI, C, CI] {

	if r.IsSuccess() {
		return next(r.value)
	}
	return failureFrom[S1, S2](r)
}

// Map transforms the success payload with f, keeping the variant and its
// annotation: an AddInfo stays an AddInfo with the same info, a warning
// stays warned. Failure variants pass through intact and f is never called.
// f must be pure and total; fallible steps belong in Bind.
func Map[S1, S2 any, I Combiner[I], W Combiner[W], E any, EI Combiner[EI], C any, CI Combiner[CI]](
	r Result[S1, I, W, E, EI, C, CI],
	f func(S1) S2) Result[S2, I, W, E, EI, C, CI] {

	switch r.kind {
	case outcome.SeverityOK:
		return OK[S2, I, W, E, EI, C, CI](f(r.value))
	case outcome.SeverityInfo:
		return AddInfo[S2, I, W, E, EI, C, CI](f(r.value), r.info)
	case outcome.SeverityWarning:
		return AddWarning[S2, I, W, E, EI, C, CI](f(r.value), r.warning)
	default:
		return failureFrom[S1, S2](r)
	}
}

// ToSimple downgrades to a SimpleResult, dropping every annotation. All
// three success variants collapse to Success. Total and lossy.
func (r Result[S, I, W, E, EI, C, CI]) ToSimple() outcome.SimpleResult[S, E, C] {
	switch r.kind {
	case outcome.SeverityError:
		return outcome.Fail[S, E, C](r.err)
	case outcome.SeverityCritical:
		return outcome.Critical[S, E, C](r.critical)
	default:
		return outcome.Success[S, E, C](r.value)
	}
}

// LiftSimple upgrades a SimpleResult, synthesizing the UnspecifiedFailure
// note on the failure variants since the simple type carries no annotation.
// Success lifts to a plain OK. ToSimple inverts it: payload and variant
// survive the round trip, the synthesized note does not.
func LiftSimple[S, E, C any](r outcome.SimpleResult[S, E, C]) Result[S, Notes, Notes, E, Notes, C, Notes] {
	switch {
	case r.IsSuccess():
		return OK[S, Notes, Notes, E, Notes, C, Notes](r.Value())
	case r.IsCritical():
		return Critical[S, Notes, Notes, E, Notes, C, Notes](Notes{UnspecifiedFailure}, r.CriticalErr())
	default:
		return Fail[S, Notes, Notes, E, Notes, C, Notes](Notes{UnspecifiedFailure}, r.Err())
	}
}
