package output

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/opsforge/vcrecon/internal/recon"
)

// YAMLFormatter formats results as YAML.
type YAMLFormatter struct{}

// FormatSummary formats a batch summary as a YAML document.
func (f *YAMLFormatter) FormatSummary(summary *recon.BatchSummary) (string, error) {
	data, err := yaml.Marshal(summary)
	if err != nil {
		return "", fmt.Errorf("failed to marshal summary to YAML: %w", err)
	}
	return string(data), nil
}
