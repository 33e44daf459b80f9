package ui

import (
	"github.com/growwithdv/Modern-Calculator/internal/calculator"
)

// BindingKind classifies what a key press does in the calculator view.
type BindingKind int

const (
	BindNone BindingKind = iota
	BindDigit
	BindOperator
	BindCalculate
	BindBackspace
	BindClearEntry
	BindClearAll
	BindHistoryView
	BindHelpView
	BindThemeCycle
	BindQuit
)

// Binding is a decoded key press. Digit is set for BindDigit, Op for
// BindOperator; both are zero otherwise.
type Binding struct {
	Kind  BindingKind
	Digit rune
	Op    calculator.Operator
}

// Translate maps a raw terminal key to its calculator binding. Letter
// shortcuts are checked before operator aliases so that "x" still means
// multiply while "c" clears the entry.
func Translate(key string) Binding {
	switch key {
	case "q", "ctrl+c":
		return Binding{Kind: BindQuit}
	case "esc":
		return Binding{Kind: BindClearAll}
	case "enter", "=":
		return Binding{Kind: BindCalculate}
	case "backspace":
		return Binding{Kind: BindBackspace}
	case "c", "C":
		return Binding{Kind: BindClearEntry}
	case "h", "tab":
		return Binding{Kind: BindHistoryView}
	case "?":
		return Binding{Kind: BindHelpView}
	case "t":
		return Binding{Kind: BindThemeCycle}
	}

	if len([]rune(key)) == 1 {
		r := []rune(key)[0]
		if (r >= '0' && r <= '9') || r == '.' {
			return Binding{Kind: BindDigit, Digit: r}
		}
	}

	if op, ok := calculator.ParseOperator(key); ok {
		return Binding{Kind: BindOperator, Op: op}
	}

	return Binding{Kind: BindNone}
}

// keyID returns the canonical keypad cell identifier for a binding, used to
// highlight the matching cell after a key press. Bindings without a keypad
// cell return "".
func keyID(b Binding) string {
	switch b.Kind {
	case BindDigit:
		return string(b.Digit)
	case BindOperator:
		return b.Op.Symbol()
	case BindCalculate:
		return "="
	case BindBackspace:
		return "⌫"
	case BindClearEntry:
		return "CE"
	case BindClearAll:
		return "C"
	}
	return ""
}
