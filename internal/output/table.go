package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/opsforge/vcrecon/internal/recon"
)

// TableFormatter formats results as human-readable tables.
type TableFormatter struct {
	// NoHeaders omits the header row.
	NoHeaders bool
}

// FormatSummary formats a batch summary as a table with a trailing count line.
func (f *TableFormatter) FormatSummary(summary *recon.BatchSummary) (string, error) {
	if summary.Total() == 0 {
		return "No VMs processed\n", nil
	}

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	if !f.NoHeaders {
		_, _ = fmt.Fprintln(w, "NAME\tSTATUS\tDETAIL")
	}

	for _, r := range summary.Results {
		detail := r.Detail
		if r.Warning != "" {
			detail = detail + " (warning: " + r.Warning + ")"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", r.Name, r.Status, detail)
	}

	_ = w.Flush()
	_, _ = fmt.Fprintf(&buf, "\nTotal: %d  Succeeded: %d  Failed: %d  Skipped: %d\n",
		summary.Total(), summary.Succeeded, summary.Failed, summary.Skipped)
	return buf.String(), nil
}
