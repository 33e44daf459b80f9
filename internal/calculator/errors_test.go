package calculator

import (
	"errors"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	err := newError(ErrKindDivisionByZero, "cannot divide by zero")
	if got := err.Error(); got != "cannot divide by zero" {
		t.Errorf("Expected plain message, got %q", got)
	}

	cause := errors.New("strconv: parse failed")
	wrapped := newErrorWithCause(ErrKindInvalidNumber, "invalid number", cause)
	if got := wrapped.Error(); got != "invalid number: strconv: parse failed" {
		t.Errorf("Expected message with cause, got %q", got)
	}
	if !errors.Is(wrapped, cause) {
		t.Error("Expected wrapped cause to be found by errors.Is")
	}
}

func TestErrorPredicates(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{"number too long matches", newError(ErrKindNumberTooLong, ""), IsNumberTooLong, true},
		{"invalid number matches", newError(ErrKindInvalidNumber, ""), IsInvalidNumber, true},
		{"division by zero matches", newError(ErrKindDivisionByZero, ""), IsDivisionByZero, true},
		{"non-finite result matches", newError(ErrKindNonFiniteResult, ""), IsNonFiniteResult, true},
		{"kind mismatch", newError(ErrKindNumberTooLong, ""), IsDivisionByZero, false},
		{"nil error", nil, IsDivisionByZero, false},
		{"foreign error", errors.New("boom"), IsInvalidNumber, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(tt.err); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestAsError(t *testing.T) {
	err := newError(ErrKindNumberTooLong, "too long")

	calcErr, ok := AsError(err)
	if !ok {
		t.Fatal("Expected AsError to match")
	}
	if calcErr.Kind != ErrKindNumberTooLong {
		t.Errorf("Expected kind %q, got %q", ErrKindNumberTooLong, calcErr.Kind)
	}

	if _, ok := AsError(errors.New("boom")); ok {
		t.Error("Expected AsError to reject a foreign error")
	}
	if _, ok := AsError(nil); ok {
		t.Error("Expected AsError to reject nil")
	}
}
