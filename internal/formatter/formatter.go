package formatter

import (
	"fmt"

	"github.com/growwithdv/Modern-Calculator/internal/calculator"
)

// Session is a snapshot of calculator state for export: the value on the
// display and the recorded calculations, most recent first.
type Session struct {
	Result  string                    `json:"result" yaml:"result"`
	Entries []calculator.HistoryEntry `json:"entries" yaml:"entries"`
}

// Formatter defines the interface for output formatting
type Formatter interface {
	Format(session *Session) ([]byte, error)
}

// New returns the formatter for the named format. An empty name selects the
// text formatter.
func New(format string) (Formatter, error) {
	switch format {
	case "", "text":
		return NewText(), nil
	case "json":
		return NewJSON(), nil
	case "csv":
		return NewCSV(), nil
	case "markdown":
		return NewMarkdown(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (use text, json, csv, or markdown)", format)
	}
}
