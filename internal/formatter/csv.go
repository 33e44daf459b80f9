package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/growwithdv/Modern-Calculator/internal/symbol"
)

// csvFormatter formats recorded calculations as CSV
type csvFormatter struct{}

// NewCSV creates a new CSV formatter
func NewCSV() Formatter {
	return &csvFormatter{}
}

func (f *csvFormatter) Format(session *Session) ([]byte, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)

	// CSV headers
	headers := []string{
		"Expression",
		"Result",
	}

	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	// Write calculations, most recent first
	for _, entry := range session.Entries {
		record := []string{
			symbol.Render(entry.Expression),
			entry.Result,
		}

		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return b.Bytes(), nil
}
