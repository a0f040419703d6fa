package outcome

// Bind chains a result-returning function onto a success. Failure and
// critical results short-circuit: next is never called and the payload is
// carried over unchanged, only the success type parameter is re-typed.
func Bind[In, Out, E, C any](r SimpleResult[In, E, C],
	next func(In) SimpleResult[Out, E, C]) SimpleResult[Out, E, C] {

	if r.IsSuccess() {
		return next(r.Value())
	}
	return FailureFrom[In, Out](r)
}

// MapSuccess transforms the success payload with f. Non-success results pass
// through unchanged and f is never called. f must be pure and total; a
// fallible step belongs in Bind, not here.
func MapSuccess[In, Out, E, C any](r SimpleResult[In, E, C],
	f func(In) Out) SimpleResult[Out, E, C] {

	if r.IsSuccess() {
		return Success[Out, E, C](f(r.Value()))
	}
	return FailureFrom[In, Out](r)
}

// Validate turns a predicate into a result: Success when valid, Fail with
// the returned payload when not.
func Validate[Ok, E, C any](v Ok, check func(Ok) (valid bool, err E)) SimpleResult[Ok, E, C] {
	if valid, err := check(v); !valid {
		return Fail[Ok, E, C](err)
	}
	return Success[Ok, E, C](v)
}

// Tee runs a side effect on the success payload and returns the input
// unchanged. Non-success results skip the effect.
func Tee[Ok, E, C any](r SimpleResult[Ok, E, C], onSuccess func(Ok)) SimpleResult[Ok, E, C] {
	if r.IsSuccess() && onSuccess != nil {
		onSuccess(r.Value())
	}
	return r
}

// Finally collapses a result to a plain value with one handler per variant.
func Finally[Ok, E, C, Out any](r SimpleResult[Ok, E, C],
	onSuccess func(Ok) Out,
	onFail func(E) Out,
	onCritical func(C) Out) Out {

	if r.IsSuccess() {
		return onSuccess(r.Value())
	}
	if r.IsCritical() {
		return onCritical(r.CriticalErr())
	}
	return onFail(r.Err())
}
