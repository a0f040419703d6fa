package rich

import (
	"github.com/ib-77/outcome/pkg/outcome"
)

// Result is a five-variant outcome. Exactly one variant is active:
//
//	OK          success, no annotation
//	AddInfo     success with informational context (I)
//	AddWarning  success with a possible-latent-problem context (W)
//	Fail        expected failure E, explained by EI
//	Critical    defect-level failure C, explained by CI
//
// Values are immutable; every combinator returns a new instance. There is
// no implicit promotion between variants: a warned success never becomes a
// failure except through an explicit constructor call by the caller.
//
// The annotation parameters I, W, EI and CI must satisfy Combiner so that
// annotations gathered across chained operations can be merged by callers.
type Result[S any, I Combiner[I], W Combiner[W], E any, EI Combiner[EI], C any, CI Combiner[CI]] struct {
	kind         outcome.Severity
	value        S
	info         I
	warning      W
	err          E
	errInfo      EI
	critical     C
	criticalInfo CI
}

// OK constructs a plain success.
func OK[S any, I Combiner[I], W Combiner[W], E any, EI Combiner[EI], C any, CI Combiner[CI]](
	value S) Result[S, I, W, E, EI, C, CI] {

	return Result[S, I, W, E, EI, C, CI]{
		kind:  outcome.SeverityOK,
		value: value,
	}
}

// AddInfo constructs an informative success: value plus non-actionable
// context.
func AddInfo[S any, I Combiner[I], W Combiner[W], E any, EI Combiner[EI], C any, CI Combiner[CI]](
	value S, info I) Result[S, I, W, E, EI, C, CI] {

	return Result[S, I, W, E, EI, C, CI]{
		kind:  outcome.SeverityInfo,
		value: value,
		info:  info,
	}
}

// AddWarning constructs a warned success: value plus context suggesting a
// possible latent problem.
func AddWarning[S any, I Combiner[I], W Combiner[W], E any, EI Combiner[EI], C any, CI Combiner[CI]](
	value S, warning W) Result[S, I, W, E, EI, C, CI] {

	return Result[S, I, W, E, EI, C, CI]{
		kind:    outcome.SeverityWarning,
		value:   value,
		warning: warning,
	}
}

// Fail constructs an expected failure with its explanatory annotation.
func Fail[S any, I Combiner[I], W Combiner[W], E any, EI Combiner[EI], C any, CI Combiner[CI]](
	info EI, err E) Result[S, I, W, E, EI, C, CI] {

	return Result[S, I, W, E, EI, C, CI]{
		kind:    outcome.SeverityError,
		err:     err,
		errInfo: info,
	}
}

// Critical constructs a defect-level failure with its explanatory
// annotation.
func Critical[S any, I Combiner[I], W Combiner[W], E any, EI Combiner[EI], C any, CI Combiner[CI]](
	info CI, crit C) Result[S, I, W, E, EI, C, CI] {

	return Result[S, I, W, E, EI, C, CI]{
		kind:         outcome.SeverityCritical,
		critical:     crit,
		criticalInfo: info,
	}
}

// Severity classifies the active variant on the fixed
// OK < Info < Warning < Error < Critical scale. It is total over the five
// variants and never inspects payloads.
func (r Result[S, I, W, E, EI, C, CI]) Severity() outcome.Severity {
	return r.kind
}

// IsSuccess reports whether the active variant is one of the three success
// variants.
func (r Result[S, I, W, E, EI, C, CI]) IsSuccess() bool {
	return r.kind.IsSuccess()
}

// Value returns the success payload, or the zero S on failure variants.
func (r Result[S, I, W, E, EI, C, CI]) Value() S {
	return r.value
}

// Info returns the informational annotation of an AddInfo result, or the
// zero I otherwise.
func (r Result[S, I, W, E, EI, C, CI]) Info() I {
	return r.info
}

// Warning returns the annotation of an AddWarning result, or the zero W
// otherwise.
func (r Result[S, I, W, E, EI, C, CI]) Warning() W {
	return r.warning
}

// Err returns the failure payload, or the zero E for other variants.
func (r Result[S, I, W, E, EI, C, CI]) Err() E {
	return r.err
}

// FailInfo returns the annotation of a Fail result, or the zero EI
// otherwise.
func (r Result[S, I, W, E, EI, C, CI]) FailInfo() EI {
	return r.errInfo
}

// CriticalErr returns the critical payload, or the zero C for other
// variants.
func (r Result[S, I, W, E, EI, C, CI]) CriticalErr() C {
	return r.critical
}

// CriticalInfo returns the annotation of a Critical result, or the zero CI
// otherwise.
func (r Result[S, I, W, E, EI, C, CI]) CriticalInfo() CI {
	return r.criticalInfo
}

// SuccessVal returns the success payload and true for the three success
// variants, the zero S and false otherwise. Exactly one of SuccessVal and
// ErrorVal is present for any result.
func (r Result[S, I, W, E, EI, C, CI]) SuccessVal() (S, bool) {
	if r.IsSuccess() {
		return r.value, true
	}
	var zero S
	return zero, false
}

// ErrorVal returns the failure or critical payload (not its annotation) and
// true for the two failure variants, nil and false otherwise. The two
// failure channels are merged here; callers who need to tell a user error
// from a defect must branch on Severity, not on this helper alone.
func (r Result[S, I, W, E, EI, C, CI]) ErrorVal() (any, bool) {
	switch r.kind {
	case outcome.SeverityError:
		return r.err, true
	case outcome.SeverityCritical:
		return r.critical, true
	default:
		return nil, false
	}
}
