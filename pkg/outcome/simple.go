package outcome

// SimpleResult is a three-variant outcome: success carrying Ok, failure
// carrying E, or critical failure carrying C. Exactly one variant is active.
// Values are immutable; combinators always return a new instance.
//
// E describes expected, recoverable conditions (invalid input, violated
// business rules). C describes defects or broken dependencies and is not
// expected to be handled by ordinary business logic.
type SimpleResult[Ok, E, C any] struct {
	value      Ok
	err        E
	critical   C
	isSuccess  bool
	isCritical bool
}

func Success[Ok, E, C any](v Ok) SimpleResult[Ok, E, C] {
	return SimpleResult[Ok, E, C]{
		value:     v,
		isSuccess: true,
	}
}

func Fail[Ok, E, C any](err E) SimpleResult[Ok, E, C] {
	return SimpleResult[Ok, E, C]{
		err: err,
	}
}

func Critical[Ok, E, C any](crit C) SimpleResult[Ok, E, C] {
	return SimpleResult[Ok, E, C]{
		critical:   crit,
		isCritical: true,
	}
}

// FailureFrom re-types the success parameter of a non-success result,
// carrying the failure payload over unchanged. Calling it on a success
// result is a contract violation by the caller and panics; a success value
// has no failure payload to carry.
func FailureFrom[In, Out, E, C any](from SimpleResult[In, E, C]) SimpleResult[Out, E, C] {
	if from.isSuccess {
		panic("outcome: FailureFrom called on a success result")
	}
	return SimpleResult[Out, E, C]{
		err:        from.err,
		critical:   from.critical,
		isCritical: from.isCritical,
	}
}

// Value returns the success payload, or the zero Ok for non-success.
func (r SimpleResult[Ok, E, C]) Value() Ok {
	return r.value
}

// Err returns the failure payload, or the zero E for other variants.
func (r SimpleResult[Ok, E, C]) Err() E {
	return r.err
}

// CriticalErr returns the critical payload, or the zero C for other variants.
func (r SimpleResult[Ok, E, C]) CriticalErr() C {
	return r.critical
}

func (r SimpleResult[Ok, E, C]) IsSuccess() bool {
	return r.isSuccess
}

// IsFail reports whether the failure variant is active. It is false for
// critical failures; use IsCritical for those.
func (r SimpleResult[Ok, E, C]) IsFail() bool {
	return !r.isSuccess && !r.isCritical
}

func (r SimpleResult[Ok, E, C]) IsCritical() bool {
	return r.isCritical
}
