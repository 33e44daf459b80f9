package calculator

import "strings"

// Display and history bounds enforced by the accumulator, not the UI.
const (
	// MaxInputLength is the maximum number of characters accepted for a
	// single numeric entry before formatting kicks in.
	MaxInputLength = 12

	// MaxHistory is the maximum number of retained history entries.
	// Inserting beyond it evicts the oldest entry.
	MaxHistory = 10
)

// Operator identifies one of the four binary operations.
type Operator int

const (
	OpNone Operator = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

// Symbol returns the display glyph used in expressions and on the keypad.
func (o Operator) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	default:
		return ""
	}
}

// String returns the operator name for logs and serialized output.
func (o Operator) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	default:
		return "none"
	}
}

// ParseOperator maps raw input characters to operators: '*' and 'x' mean
// multiply, '/' means divide, '+' add, '-' subtract. The unicode glyphs
// produced by Symbol are accepted too, so recorded expressions round-trip.
func ParseOperator(s string) (Operator, bool) {
	switch strings.TrimSpace(s) {
	case "+":
		return OpAdd, true
	case "-":
		return OpSubtract, true
	case "*", "x", "X", "×":
		return OpMultiply, true
	case "/", "÷":
		return OpDivide, true
	default:
		return OpNone, false
	}
}

// HistoryEntry records one completed calculation. Entries are immutable
// once created.
type HistoryEntry struct {
	Expression string `json:"expression" yaml:"expression"`
	Result     string `json:"result" yaml:"result"`
}

// State is a read-only snapshot of the accumulator registers, exposed for
// presenters and tests.
type State struct {
	Current   string
	Previous  string
	Op        Operator
	ResetNext bool
}
