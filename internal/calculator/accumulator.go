// Package calculator implements the input accumulator at the heart of the
// calculator: a small state machine over three registers (previous operand,
// operator, current operand) plus a bounded history of completed
// calculations. It has no UI dependencies; input adapters feed it validated
// keys and presenters read it back through Display, Expression and State.
package calculator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Accumulator owns the calculator state. It is not safe for concurrent use;
// by construction it has a single writer (the event loop driving it).
type Accumulator struct {
	current   string
	previous  string
	op        Operator
	resetNext bool
	history   []HistoryEntry
}

// New returns an accumulator in its initial empty state.
func New() *Accumulator {
	return &Accumulator{}
}

// AppendDigit appends a digit or decimal point to the current entry.
// A second decimal point is silently ignored, a decimal point on an empty
// entry is seeded with a leading zero, and entries never grow past
// MaxInputLength characters.
func (a *Accumulator) AppendDigit(d rune) error {
	if d != '.' && (d < '0' || d > '9') {
		return newError(ErrKindInvalidNumber, fmt.Sprintf("invalid input %q", string(d)))
	}

	// A finalized result is replaced, not extended.
	if a.resetNext {
		a.current = ""
		a.resetNext = false
	}

	if d == '.' {
		if strings.ContainsRune(a.current, '.') {
			return nil
		}
		if a.current == "" {
			a.current = "0"
		}
	}

	if len(a.current)+1 > MaxInputLength {
		return newError(ErrKindNumberTooLong,
			fmt.Sprintf("entries are limited to %d characters", MaxInputLength))
	}

	a.current += string(d)
	return nil
}

// AppendOperator stages op as the pending operation. When a complete
// calculation is already pending (chained entry such as "3 + 4 +"), it is
// resolved first so the running total becomes the left operand. Entering an
// operator before any operand is a no-op, and entering one while the right
// operand is still empty just replaces the pending operator.
func (a *Accumulator) AppendOperator(op Operator) error {
	if op == OpNone {
		return nil
	}
	if a.current == "" && a.previous == "" {
		return nil
	}

	if a.op != OpNone && a.previous != "" && a.current != "" {
		if err := a.Calculate(); err != nil {
			return err
		}
	}

	a.op = op
	if a.current != "" {
		a.previous = a.current
		a.current = ""
	}
	return nil
}

// Calculate resolves the pending calculation. It is a no-op unless both
// operands and an operator are present. On success the result becomes the
// current entry, a history entry is recorded, and the next digit starts a
// fresh entry. On failure the registers are left untouched.
func (a *Accumulator) Calculate() error {
	if a.previous == "" || a.current == "" || a.op == OpNone {
		return nil
	}

	prev, err := strconv.ParseFloat(a.previous, 64)
	if err != nil {
		return newErrorWithCause(ErrKindInvalidNumber,
			fmt.Sprintf("invalid number %q", a.previous), err)
	}
	cur, err := strconv.ParseFloat(a.current, 64)
	if err != nil {
		return newErrorWithCause(ErrKindInvalidNumber,
			fmt.Sprintf("invalid number %q", a.current), err)
	}

	var result float64
	switch a.op {
	case OpAdd:
		result = prev + cur
	case OpSubtract:
		result = prev - cur
	case OpMultiply:
		result = prev * cur
	case OpDivide:
		if cur == 0 {
			return newError(ErrKindDivisionByZero, "cannot divide by zero")
		}
		result = prev / cur
	}

	result = roundResult(result)
	if math.IsInf(result, 0) || math.IsNaN(result) {
		return newError(ErrKindNonFiniteResult, "result is out of range")
	}

	a.pushHistory(HistoryEntry{
		Expression: fmt.Sprintf("%s %s %s", FormatOperand(a.previous), a.op.Symbol(), FormatOperand(a.current)),
		Result:     FormatValue(result),
	})

	a.current = strconv.FormatFloat(result, 'f', -1, 64)
	a.previous = ""
	a.op = OpNone
	a.resetNext = true
	return nil
}

// Backspace removes the last character of the current entry. A finalized
// result is not editable, so backspacing it clears the whole expression.
func (a *Accumulator) Backspace() {
	if a.resetNext {
		a.ClearAll()
		return
	}
	if a.current != "" {
		a.current = a.current[:len(a.current)-1]
	}
}

// ClearEntry clears only the current entry, keeping the staged operand and
// operator for a mid-expression correction.
func (a *Accumulator) ClearEntry() {
	a.current = ""
}

// ClearAll resets every register to the initial empty state. History is
// preserved.
func (a *Accumulator) ClearAll() {
	a.current = ""
	a.previous = ""
	a.op = OpNone
	a.resetNext = false
}

// ClearHistory empties the history.
func (a *Accumulator) ClearHistory() {
	a.history = nil
}

// Recall loads a past result as the current entry. The staged operand and
// operator are untouched, so a recalled value can complete a pending
// expression.
func (a *Accumulator) Recall(e HistoryEntry) {
	a.current = e.Result
	a.resetNext = true
}

// Display returns the string the presenter should show: the current entry,
// or "0" when nothing has been entered. Result values wider than the display
// are reformatted.
func (a *Accumulator) Display() string {
	if a.current == "" {
		return "0"
	}
	if len(a.current) > MaxInputLength {
		if v, err := strconv.ParseFloat(a.current, 64); err == nil {
			return FormatValue(v)
		}
	}
	return a.current
}

// Expression returns the staged left operand and operator ("12 +") for the
// presenter's preview line, or "" when no operation is pending.
func (a *Accumulator) Expression() string {
	if a.op == OpNone || a.previous == "" {
		return ""
	}
	return FormatOperand(a.previous) + " " + a.op.Symbol()
}

// State returns a snapshot of the registers.
func (a *Accumulator) State() State {
	return State{
		Current:   a.current,
		Previous:  a.previous,
		Op:        a.op,
		ResetNext: a.resetNext,
	}
}

// History returns a copy of the history, most recent first.
func (a *Accumulator) History() []HistoryEntry {
	out := make([]HistoryEntry, len(a.history))
	copy(out, a.history)
	return out
}

// pushHistory prepends an entry, evicting the oldest beyond MaxHistory.
func (a *Accumulator) pushHistory(e HistoryEntry) {
	a.history = append([]HistoryEntry{e}, a.history...)
	if len(a.history) > MaxHistory {
		a.history = a.history[:MaxHistory]
	}
}
