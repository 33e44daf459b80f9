package formatter

import (
	"encoding/json"
	"time"

	"github.com/growwithdv/Modern-Calculator/internal/symbol"
)

// jsonFormatter formats output as JSON
type jsonFormatter struct{}

// NewJSON creates a new JSON formatter
func NewJSON() Formatter {
	return &jsonFormatter{}
}

func (f *jsonFormatter) Format(session *Session) ([]byte, error) {
	output := &JSONOutput{
		Summary:      createSummary(session),
		Calculations: createCalculationOutputs(session),
	}

	return json.MarshalIndent(output, "", "  ")
}

// JSONOutput represents the exported session structure
type JSONOutput struct {
	Summary      *SummaryOutput       `json:"summary"`
	Calculations []*CalculationOutput `json:"calculations"`
}

// SummaryOutput represents the summary section
type SummaryOutput struct {
	Result       string    `json:"result"`
	Calculations int       `json:"calculations"`
	ExportedAt   time.Time `json:"exported_at"`
}

// CalculationOutput represents a single recorded calculation
type CalculationOutput struct {
	Expression string `json:"expression"`
	Result     string `json:"result"`
}

// createSummary creates the summary output
func createSummary(session *Session) *SummaryOutput {
	return &SummaryOutput{
		Result:       session.Result,
		Calculations: len(session.Entries),
		ExportedAt:   time.Now().UTC(),
	}
}

// createCalculationOutputs creates calculation outputs, most recent first
func createCalculationOutputs(session *Session) []*CalculationOutput {
	outputs := make([]*CalculationOutput, 0, len(session.Entries))

	for _, entry := range session.Entries {
		outputs = append(outputs, &CalculationOutput{
			Expression: symbol.Render(entry.Expression),
			Result:     entry.Result,
		})
	}

	return outputs
}
