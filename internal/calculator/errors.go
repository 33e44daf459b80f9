package calculator

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes calculator errors.
type ErrorKind string

const (
	// ErrKindNumberTooLong indicates an entry that would exceed the
	// display-length cap. The rejected input leaves state untouched.
	ErrKindNumberTooLong ErrorKind = "number_too_long"

	// ErrKindInvalidNumber indicates an operand that failed to parse.
	// Input adapters filter raw keys, so this is defense-in-depth.
	ErrKindInvalidNumber ErrorKind = "invalid_number"

	// ErrKindDivisionByZero indicates a divisor of exactly zero.
	ErrKindDivisionByZero ErrorKind = "division_by_zero"

	// ErrKindNonFiniteResult indicates a result that overflowed or is
	// undefined after rounding.
	ErrKindNonFiniteResult ErrorKind = "non_finite_result"
)

// Error is the error type surfaced by accumulator operations. Every kind is
// recoverable: the accumulator never ends up in a partially-updated state,
// and callers are expected to clear it after showing the message.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches errors of the same kind.
func (e *Error) Is(target error) bool {
	if te, ok := target.(*Error); ok {
		return e.Kind == te.Kind
	}
	return false
}

func newError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func newErrorWithCause(kind ErrorKind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// AsError extracts the calculator error from err, unwrapping as needed.
func AsError(err error) (*Error, bool) {
	var ce *Error
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// IsNumberTooLong checks if an error is a number-too-long error.
func IsNumberTooLong(err error) bool {
	ce, ok := AsError(err)
	return ok && ce.Kind == ErrKindNumberTooLong
}

// IsInvalidNumber checks if an error is an invalid-number error.
func IsInvalidNumber(err error) bool {
	ce, ok := AsError(err)
	return ok && ce.Kind == ErrKindInvalidNumber
}

// IsDivisionByZero checks if an error is a division-by-zero error.
func IsDivisionByZero(err error) bool {
	ce, ok := AsError(err)
	return ok && ce.Kind == ErrKindDivisionByZero
}

// IsNonFiniteResult checks if an error is a non-finite-result error.
func IsNonFiniteResult(err error) bool {
	ce, ok := AsError(err)
	return ok && ce.Kind == ErrKindNonFiniteResult
}
