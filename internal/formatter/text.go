package formatter

import (
	"fmt"
	"strings"

	"github.com/growwithdv/Modern-Calculator/internal/symbol"
)

// textFormatter formats a session as plain text for terminal display
type textFormatter struct{}

// NewText creates a new text formatter
func NewText() Formatter {
	return &textFormatter{}
}

func (f *textFormatter) Format(session *Session) ([]byte, error) {
	var b strings.Builder

	f.writeHeader(&b)
	f.writeResult(&b, session)
	f.writeHistory(&b, session)

	return []byte(b.String()), nil
}

// writeHeader writes a header with box drawing
func (f *textFormatter) writeHeader(b *strings.Builder) {
	header := "Calculator Session"
	headerLen := len(header)

	b.WriteString("╔" + strings.Repeat("═", headerLen+2) + "╗\n")
	b.WriteString("║ " + header + " ║\n")
	b.WriteString("╚" + strings.Repeat("═", headerLen+2) + "╝\n\n")
}

func (f *textFormatter) writeResult(b *strings.Builder, session *Session) {
	b.WriteString(symbol.Get("prompt") + " Result\n")
	fmt.Fprintf(b, "└─ %s\n\n", session.Result)
}

// writeHistory writes recorded calculations with tree-style formatting,
// most recent first
func (f *textFormatter) writeHistory(b *strings.Builder, session *Session) {
	fmt.Fprintf(b, "%s History (%d calculations)\n", symbol.Get("history"), len(session.Entries))

	if len(session.Entries) == 0 {
		b.WriteString("└─ no calculations recorded\n")
		return
	}

	for i, entry := range session.Entries {
		branch := "├─"
		if i == len(session.Entries)-1 {
			branch = "└─"
		}
		fmt.Fprintf(b, "%s %s = %s\n", branch, symbol.Render(entry.Expression), entry.Result)
	}
}
