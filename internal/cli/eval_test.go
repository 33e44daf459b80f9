package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/growwithdv/Modern-Calculator/internal/calculator"
)

func TestEvaluateExpression(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want string
	}{
		{"simple addition", "3+4", "7"},
		{"explicit equals", "3 + 4 =", "7"},
		{"multiply alias", "12.5 x 3", "37.5"},
		{"left to right, no precedence", "2+3*4", "20"},
		{"division", "100/8", "12.5"},
		{"continue from result", "3+4=*2", "14"},
		{"bare number", "42", "42"},
		{"empty", "", "0"},
		{"float drift rounded", "0.1+0.2", "0.3"},
		{"leading operator ignored", "-5+3", "8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := calculator.New()
			got, err := evaluateExpression(acc, tt.expr)
			if err != nil {
				t.Fatalf("evaluateExpression(%q) error: %v", tt.expr, err)
			}
			if got != tt.want {
				t.Errorf("evaluateExpression(%q) = %q, want %q", tt.expr, got, tt.want)
			}
		})
	}
}

func TestEvaluateExpressionErrors(t *testing.T) {
	tests := []struct {
		name  string
		expr  string
		check func(error) bool
	}{
		{"division by zero", "5/0", calculator.IsDivisionByZero},
		{"garbage input", "1+abc", calculator.IsInvalidNumber},
		{"entry too long", "1234567890123", calculator.IsNumberTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := calculator.New()
			_, err := evaluateExpression(acc, tt.expr)
			if err == nil {
				t.Fatalf("evaluateExpression(%q) succeeded, want error", tt.expr)
			}
			if !tt.check(err) {
				t.Errorf("evaluateExpression(%q) wrong error kind: %v", tt.expr, err)
			}
		})
	}
}

func TestEvaluateExpressionSharedHistory(t *testing.T) {
	acc := calculator.New()

	if _, err := evaluateExpression(acc, "1+1"); err != nil {
		t.Fatal(err)
	}
	if _, err := evaluateExpression(acc, "2+2"); err != nil {
		t.Fatal(err)
	}

	history := acc.History()
	if len(history) != 2 {
		t.Fatalf("history has %d entries, want 2", len(history))
	}
	if history[0].Expression != "2 + 2" {
		t.Errorf("most recent entry = %q, want %q", history[0].Expression, "2 + 2")
	}
}

func TestReadExpressionLines(t *testing.T) {
	input := "3+4\n\n  5x2  \n\t\n100/4\n"

	lines, err := readExpressionLines(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"3+4", "5x2", "100/4"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i, line := range want {
		if lines[i] != line {
			t.Errorf("lines[%d] = %q, want %q", i, lines[i], line)
		}
	}
}

func TestWriteOutputBytesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	if err := writeOutputBytesToFile([]byte(`{"result":"7"}`), path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"result":"7"}` {
		t.Errorf("file contents = %q", string(data))
	}
}

func TestWriteOutputBytesToFileEmptyPath(t *testing.T) {
	if err := writeOutputBytesToFile([]byte("x"), ""); err == nil {
		t.Error("expected error for empty path")
	}
}
