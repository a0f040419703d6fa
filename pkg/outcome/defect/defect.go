package defect

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Defect describes a programmer or environment error as a plain value.
// Instances are immutable once constructed; the incident id and capture
// time are stamped at construction and identify the occurrence, not the
// kind of defect (the code does that).
type Defect struct {
	code    string
	message string
	id      uuid.UUID
	at      time.Time
	cause   error
}

// New constructs a Defect with a stable code and a human message.
func New(code, message string) Defect {
	return Defect{
		code:    code,
		message: message,
		id:      uuid.New(),
		at:      time.Now().UTC(),
	}
}

// Wrap constructs a Defect carrying an underlying cause.
func Wrap(code, message string, cause error) Defect {
	d := New(code, message)
	d.cause = cause
	return d
}

// Recovered adapts a value returned by recover() into a Defect. An error
// value becomes the cause; anything else is formatted into the message.
// Intended for use at the boundary that turns a panic into a critical
// outcome:
//
//	defer func() {
//		if v := recover(); v != nil {
//			res = outcome.Critical[int, string](defect.Recovered("calc.panic", v))
//		}
//	}()
func Recovered(code string, v any) Defect {
	if err, ok := v.(error); ok {
		return Wrap(code, "recovered panic", err)
	}
	return New(code, fmt.Sprintf("recovered panic: %v", v))
}

func (d Defect) Code() string {
	return d.code
}

func (d Defect) Message() string {
	return d.message
}

// ID identifies this occurrence of the defect.
func (d Defect) ID() uuid.UUID {
	return d.id
}

// At returns the UTC capture time.
func (d Defect) At() time.Time {
	return d.at
}

// Error renders "<code>: <message>" or "<code>: <message>: <cause>" so a
// Defect can travel as an ordinary error where needed.
func (d Defect) Error() string {
	if d.cause != nil {
		return fmt.Sprintf("%s: %s: %v", d.code, d.message, d.cause)
	}
	return fmt.Sprintf("%s: %s", d.code, d.message)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As.
func (d Defect) Unwrap() error {
	return d.cause
}

// Causes returns the individual causes of the defect: empty when there is
// no cause, the unwrapped parts when the cause is a joined multi-error, and
// a single-element slice otherwise.
func (d Defect) Causes() []error {
	if d.cause == nil {
		return []error{}
	}
	if multi, ok := d.cause.(interface{ Unwrap() []error }); ok {
		return multi.Unwrap()
	}
	return []error{d.cause}
}
