package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/growwithdv/Modern-Calculator/internal/symbol"
)

// markdownFormatter formats output as Markdown
type markdownFormatter struct{}

// NewMarkdown creates a new Markdown formatter
func NewMarkdown() Formatter {
	return &markdownFormatter{}
}

func (f *markdownFormatter) Format(session *Session) ([]byte, error) {
	var b strings.Builder

	// Header with generation timestamp
	b.WriteString("# Calculator Session\n\n")
	b.WriteString(fmt.Sprintf("Exported: %s\n\n", time.Now().Format("2006-01-02 15:04:05")))

	f.writeSummaryTable(&b, session)
	f.writeHistoryTable(&b, session)

	b.WriteString("---\n")
	b.WriteString("*Exported by modcalc*\n")

	return []byte(b.String()), nil
}

// writeSummaryTable writes the summary table
func (f *markdownFormatter) writeSummaryTable(b *strings.Builder, session *Session) {
	b.WriteString("## Summary\n\n")

	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(b, "| Result | %s |\n", session.Result)
	fmt.Fprintf(b, "| Calculations | %d |\n\n", len(session.Entries))
}

// writeHistoryTable writes recorded calculations, most recent first
func (f *markdownFormatter) writeHistoryTable(b *strings.Builder, session *Session) {
	b.WriteString("## History\n\n")

	if len(session.Entries) == 0 {
		b.WriteString("No calculations recorded.\n\n")
		return
	}

	b.WriteString("| # | Expression | Result |\n")
	b.WriteString("|---|------------|--------|\n")
	for i, entry := range session.Entries {
		fmt.Fprintf(b, "| %d | %s | %s |\n", i+1, symbol.Render(entry.Expression), entry.Result)
	}
	b.WriteString("\n")
}
