package output

import (
	"encoding/json"
	"fmt"

	"github.com/opsforge/vcrecon/internal/recon"
)

// JSONFormatter formats results as JSON.
type JSONFormatter struct{}

// FormatSummary formats a batch summary as an indented JSON object.
func (f *JSONFormatter) FormatSummary(summary *recon.BatchSummary) (string, error) {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal summary to JSON: %w", err)
	}
	return string(data) + "\n", nil
}
